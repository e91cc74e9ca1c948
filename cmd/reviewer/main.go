package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"textcheck/internal/app"
	"textcheck/internal/httputil"
	"textcheck/internal/llm"
	"textcheck/internal/queue"
	"textcheck/internal/review"
	"textcheck/internal/store"
)

type reviewTaskPayload struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Text     string    `json:"text"`
}

func main() {
	deps, err := app.BuildReviewer(context.Background())
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("reviewer worker starting")

	g, ctx := errgroup.WithContext(context.Background())

	// Run queue worker
	g.Go(func() error {
		return deps.Queue.Worker(ctx, queue.TaskTypeReview, func(ctx context.Context, task queue.Task) error {
			var payload reviewTaskPayload
			if err := json.Unmarshal(task.Payload, &payload); err != nil {
				return err
			}
			return handleReview(ctx, deps, payload)
		})
	})

	// Run health check server
	g.Go(func() error {
		return httputil.ServeHealth(deps.Log, "reviewer", deps.Config.Port)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("reviewer service stopped", "err", err)
	}
}

func handleReview(ctx context.Context, deps app.ReviewerDeps, payload reviewTaskPayload) error {
	req := review.Request{Language: payload.Language, Text: payload.Text}
	if err := req.Validate(); err != nil {
		// A malformed payload will never classify; drop it instead of
		// letting the queue retry forever.
		deps.Log.Error("dropping invalid review task", "id", payload.ID, "err", err)
		return nil
	}

	result, err := llm.ClassifyWithRetry(ctx, deps.LLM, req,
		deps.Config.LLMMaxAttempts, time.Duration(deps.Config.LLMRetryBaseMS)*time.Millisecond)
	if err != nil {
		return err
	}

	if _, err := deps.Store.SaveReview(ctx, store.Review{
		ID:       payload.ID,
		Language: payload.Language,
		Text:     payload.Text,
		Result:   result,
		Provider: deps.Provider,
		Model:    deps.Model,
	}); err != nil {
		return err
	}

	deps.Log.Info("review completed", "id", payload.ID, "sentiment", result.Sentiment)
	return nil
}
