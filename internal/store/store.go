package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"textcheck/internal/review"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a persisted classification together with the input that
// produced it.
type Review struct {
	ID        uuid.UUID             `json:"id"`
	Language  string                `json:"language"`
	Text      string                `json:"text"`
	Result    review.Classification `json:"result"`
	Provider  string                `json:"provider"`
	Model     string                `json:"model"`
	CreatedAt time.Time             `json:"created_at"`
}

// Store defines persistence contract; an external DB implementation can replace this.
type Store interface {
	SaveReview(ctx context.Context, rec Review) (Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (Review, error)
	ListRecent(ctx context.Context, limit int) ([]Review, error)
}
