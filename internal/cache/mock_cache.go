package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"textcheck/internal/review"
)

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetClassification(ctx context.Context, key string) (*review.Classification, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Classification), args.Error(1)
}

func (m *MockCache) SetClassification(ctx context.Context, key string, result *review.Classification, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
