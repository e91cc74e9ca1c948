package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"textcheck/internal/review"
)

var angryResult = review.Classification{
	Sentiment:      review.SentimentAngry,
	Aggressiveness: 2,
	Correctness:    7,
	Errors:         []string{"use estar not ser for temporary states"},
	Solution:       "Yo estoy enfadado",
	Language:       "Spanish",
}

var spanishReq = review.Request{Language: "Spanish", Text: "Yo soy enfadado"}

func TestClassifyWithRetrySuccess(t *testing.T) {
	m := &MockClassifier{}
	m.On("Classify", mock.Anything, spanishReq).Return(angryResult, nil).Once()

	got, err := ClassifyWithRetry(context.Background(), m, spanishReq, 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, angryResult, got, "result must pass through unchanged")
	m.AssertExpectations(t)
}

func TestClassifyWithRetryRetriesTransportErrors(t *testing.T) {
	m := &MockClassifier{}
	m.On("Classify", mock.Anything, spanishReq).
		Return(review.Classification{}, &TransportError{Provider: ProviderOpenAI, Err: errors.New("connection reset")}).
		Twice()
	m.On("Classify", mock.Anything, spanishReq).Return(angryResult, nil).Once()

	got, err := ClassifyWithRetry(context.Background(), m, spanishReq, 3, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, angryResult, got)
	m.AssertExpectations(t)
}

func TestClassifyWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	m := &MockClassifier{}
	m.On("Classify", mock.Anything, spanishReq).
		Return(review.Classification{}, &TransportError{Provider: ProviderOpenAI, Err: errors.New("rate limited")}).
		Times(3)

	_, err := ClassifyWithRetry(context.Background(), m, spanishReq, 3, time.Millisecond)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	m.AssertExpectations(t)
}

func TestClassifyWithRetryDoesNotRetryValidationErrors(t *testing.T) {
	m := &MockClassifier{}
	m.On("Classify", mock.Anything, spanishReq).
		Return(review.Classification{}, &ValidationError{Provider: ProviderOpenAI, Err: errors.New("aggressiveness out of range")}).
		Once()

	_, err := ClassifyWithRetry(context.Background(), m, spanishReq, 5, time.Millisecond)
	require.Error(t, err)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
	m.AssertExpectations(t)
}

func TestClassifyWithRetryDoesNotRetryAuthErrors(t *testing.T) {
	m := &MockClassifier{}
	m.On("Classify", mock.Anything, spanishReq).
		Return(review.Classification{}, &AuthError{Provider: ProviderVertex, Err: errors.New("invalid credential")}).
		Once()

	_, err := ClassifyWithRetry(context.Background(), m, spanishReq, 5, time.Millisecond)
	require.Error(t, err)
	var ae *AuthError
	assert.ErrorAs(t, err, &ae)
	m.AssertExpectations(t)
}

func TestDecodeClassification(t *testing.T) {
	payload, err := json.Marshal(angryResult)
	require.NoError(t, err)

	got, err := decodeClassification(ProviderOpenAI, payload)
	require.NoError(t, err)
	assert.Equal(t, angryResult, got)
}

func TestDecodeClassificationRejectsConstraintViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"aggressiveness above bound", `{"sentiment":"angry","aggressiveness":15,"correctness":7,"errors":[],"solution":"x","language":"Spanish"}`},
		{"unknown sentiment", `{"sentiment":"ecstatic","aggressiveness":2,"correctness":7,"errors":[],"solution":"x","language":"Spanish"}`},
		{"missing solution", `{"sentiment":"angry","aggressiveness":2,"correctness":7,"errors":[],"language":"Spanish"}`},
		{"not json at all", `the model apologizes for the inconvenience`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeClassification(ProviderOpenAI, []byte(tt.payload))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, ProviderOpenAI, ve.Provider)
			assert.False(t, IsRetryable(err), "validation failures must not be retried")
		})
	}
}
