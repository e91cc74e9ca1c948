package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"textcheck/internal/review"
)

// Cache stores classification results so identical texts are not sent
// to the backend twice.
type Cache interface {
	// GetClassification retrieves a cached result by key.
	// Returns nil if not found.
	GetClassification(ctx context.Context, key string) (*review.Classification, error)

	// SetClassification stores a result with TTL.
	SetClassification(ctx context.Context, key string, result *review.Classification, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// GenerateCacheKey derives a stable key from everything that influences
// the classification: the backend, the model, and the exact input pair.
func GenerateCacheKey(provider, model string, req review.Request) string {
	raw := fmt.Sprintf("%s:%s:%s:%s", provider, model, req.Language, req.Text)
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])
}
