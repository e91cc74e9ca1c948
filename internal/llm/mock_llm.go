package llm

import (
	"context"

	"github.com/stretchr/testify/mock"

	"textcheck/internal/review"
)

// MockClassifier is a mock implementation of Classifier using testify/mock.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, req review.Request) (review.Classification, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(review.Classification), args.Error(1)
}
