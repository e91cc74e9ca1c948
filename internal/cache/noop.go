package cache

import (
	"context"
	"time"

	"textcheck/internal/review"
)

// NoOpCache is a cache implementation that does nothing.
// Used when no Redis address is configured - all operations succeed
// but no actual caching occurs (always cache miss).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetClassification always returns nil (cache miss)
func (c *NoOpCache) GetClassification(ctx context.Context, key string) (*review.Classification, error) {
	return nil, nil
}

// SetClassification does nothing and always succeeds
func (c *NoOpCache) SetClassification(ctx context.Context, key string, result *review.Classification, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
