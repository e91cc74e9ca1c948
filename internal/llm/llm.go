package llm

import (
	"context"
	"encoding/json"
	"time"

	"textcheck/internal/retry"
	"textcheck/internal/review"
)

// Classifier is a minimal LLM interface to allow pluggable providers.
// One operation: send a schema-constrained prompt, get back a validated
// classification or an error.
type Classifier interface {
	Classify(ctx context.Context, req review.Request) (review.Classification, error)
}

// Provider identifiers used in errors and persisted records.
const (
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

const (
	defaultChatTimeout = 30 * time.Second
	// Deterministic sampling; the same text should classify the same way.
	chatTemperature = 0.0
)

// ClassifyWithRetry calls the classifier with bounded retries and
// exponential backoff. Only transport failures are retried; validation
// and authentication errors surface immediately.
func ClassifyWithRetry(ctx context.Context, c Classifier, req review.Request, attempts int, base time.Duration) (review.Classification, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		result, err := c.Classify(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !IsRetryable(err) || attempt == attempts-1 {
			return review.Classification{}, err
		}
		select {
		case <-ctx.Done():
			return review.Classification{}, ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, base)):
		}
	}
	return review.Classification{}, lastErr
}

// decodeClassification parses a provider's JSON payload and enforces the
// declared constraints. Any failure is a ValidationError: the payload is
// malformed, not the transport.
func decodeClassification(provider string, data []byte) (review.Classification, error) {
	var c review.Classification
	if err := json.Unmarshal(data, &c); err != nil {
		return review.Classification{}, &ValidationError{Provider: provider, Err: err}
	}
	if err := c.Validate(); err != nil {
		return review.Classification{}, &ValidationError{Provider: provider, Err: err}
	}
	return c, nil
}
