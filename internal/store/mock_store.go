package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveReview(ctx context.Context, rec Review) (Review, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(Review), args.Error(1)
}

func (m *MockStore) GetReview(ctx context.Context, id uuid.UUID) (Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Review), args.Error(1)
}

func (m *MockStore) ListRecent(ctx context.Context, limit int) ([]Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}
