package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"textcheck/internal/app"
	"textcheck/internal/cache"
	"textcheck/internal/httputil"
	"textcheck/internal/llm"
	"textcheck/internal/queue"
	"textcheck/internal/review"
	"textcheck/internal/store"
)

type reviewRequest struct {
	Language string `json:"language" validate:"required,min=2,max=64"`
	Text     string `json:"text" validate:"required,min=1,max=4000"`
}

type batchRequest struct {
	Items []reviewRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

type reviewTaskPayload struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Text     string    `json:"text"`
}

func main() {
	deps, err := app.BuildGateway(context.Background())
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Post("/api/reviews", reviewHandler(deps))
	r.Get("/api/reviews", listHandler(deps))
	r.Get("/api/reviews/{id}", getHandler(deps))
	r.Post("/api/reviews/batch", batchHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("gateway listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func reviewHandler(deps app.GatewayDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		ctx := r.Context()
		input := review.Request{Language: req.Language, Text: req.Text}

		// Check cache first
		cacheKey := cache.GenerateCacheKey(deps.Provider, deps.Model, input)
		if cached, err := deps.Cache.GetClassification(ctx, cacheKey); err == nil && cached != nil {
			deps.Log.Info("cache hit", "language", input.Language)
			httputil.WriteJSON(w, http.StatusOK, map[string]any{
				"result": cached,
				"cached": true,
			})
			return
		}

		result, err := llm.ClassifyWithRetry(ctx, deps.LLM, input,
			deps.Config.LLMMaxAttempts, time.Duration(deps.Config.LLMRetryBaseMS)*time.Millisecond)
		if err != nil {
			httputil.Fail(deps.Log, w, "classification failed", err, llmStatus(err))
			return
		}

		rec, err := deps.Store.SaveReview(ctx, store.Review{
			Language: input.Language,
			Text:     input.Text,
			Result:   result,
			Provider: deps.Provider,
			Model:    deps.Model,
		})
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to save review", err, http.StatusInternalServerError)
			return
		}

		cacheTTL := time.Duration(deps.Config.CacheTTL) * time.Second
		if err := deps.Cache.SetClassification(ctx, cacheKey, &result, cacheTTL); err != nil {
			// Log cache write failure but don't fail the request
			deps.Log.Warn("failed to cache result", "err", err)
		}

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"id":     rec.ID,
			"result": result,
			"cached": false,
		})
	}
}

func getHandler(deps app.GatewayDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Fail(deps.Log, w, "invalid review id", err, http.StatusBadRequest)
			return
		}
		rec, err := deps.Store.GetReview(r.Context(), id)
		if errors.Is(err, store.ErrReviewNotFound) {
			httputil.Fail(deps.Log, w, "review not found", err, http.StatusNotFound)
			return
		}
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to load review", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, rec)
	}
}

func listHandler(deps app.GatewayDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 100 {
				httputil.Fail(deps.Log, w, "limit must be an integer between 1 and 100", err, http.StatusBadRequest)
				return
			}
			limit = n
		}
		reviews, err := deps.Store.ListRecent(r.Context(), limit)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to list reviews", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
	}
}

func batchHandler(deps app.GatewayDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		ctx := r.Context()
		taskIDs := make([]uuid.UUID, 0, len(req.Items))
		for _, item := range req.Items {
			id := uuid.New()
			payload, err := json.Marshal(reviewTaskPayload{
				ID:       id,
				Language: item.Language,
				Text:     item.Text,
			})
			if err != nil {
				httputil.Fail(deps.Log, w, "failed to encode task", err, http.StatusInternalServerError)
				return
			}
			task := queue.Task{ID: id, Type: queue.TaskTypeReview, Payload: payload}
			if err := queue.EnqueueWithRetry(ctx, deps.Queue, task, 3, 100*time.Millisecond); err != nil {
				httputil.Fail(deps.Log, w, "failed to enqueue review", err, http.StatusServiceUnavailable)
				return
			}
			taskIDs = append(taskIDs, id)
		}

		httputil.WriteJSON(w, http.StatusAccepted, map[string]any{
			"accepted": len(taskIDs),
			"task_ids": taskIDs,
		})
	}
}

// llmStatus maps classifier errors onto HTTP statuses: transient
// transport trouble reads as 503, everything else the backend did
// wrong (bad payload, rejected credential) as 502.
func llmStatus(err error) int {
	if llm.IsRetryable(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}
