package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go/v3"

	"textcheck/internal/cache"
	"textcheck/internal/config"
	"textcheck/internal/llm"
	"textcheck/internal/logger"
	"textcheck/internal/queue"
	"textcheck/internal/store"
)

// Deps bundles the runtime dependencies every binary needs.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	LLM    llm.Classifier

	// Provider and Model name the selected backend, for cache keys and
	// persisted records.
	Provider string
	Model    string
}

// GatewayDeps adds the HTTP service dependencies.
type GatewayDeps struct {
	Deps
	Store store.Store
	Cache cache.Cache
	Queue queue.Queue
}

// ReviewerDeps adds the worker dependencies.
type ReviewerDeps struct {
	Deps
	Store store.Store
	Queue queue.Queue
}

// Build loads env, config, and the LLM client shared by all binaries.
func Build(ctx context.Context) (Deps, error) {
	// A .env file is a local convenience, not a requirement.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	client, provider, model, err := buildClassifier(ctx, cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}
	return Deps{
		Config:   cfg,
		Log:      log,
		LLM:      client,
		Provider: provider,
		Model:    model,
	}, nil
}

// BuildGateway wires the HTTP service: store, queue and cache on top of Build.
func BuildGateway(ctx context.Context) (GatewayDeps, error) {
	deps, err := Build(ctx)
	if err != nil {
		return GatewayDeps{}, err
	}
	st, err := buildStore(deps.Config, deps.Log)
	if err != nil {
		return GatewayDeps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	q, err := buildQueue(deps.Config, deps.Log)
	if err != nil {
		return GatewayDeps{}, fmt.Errorf("failed to initialize queue: %w", err)
	}
	c := buildCache(deps.Config, deps.Log)
	return GatewayDeps{Deps: deps, Store: st, Cache: c, Queue: q}, nil
}

// BuildReviewer wires the batch worker: store and queue on top of Build.
func BuildReviewer(ctx context.Context) (ReviewerDeps, error) {
	deps, err := Build(ctx)
	if err != nil {
		return ReviewerDeps{}, err
	}
	st, err := buildStore(deps.Config, deps.Log)
	if err != nil {
		return ReviewerDeps{}, fmt.Errorf("failed to initialize store: %w", err)
	}
	q, err := buildQueue(deps.Config, deps.Log)
	if err != nil {
		return ReviewerDeps{}, fmt.Errorf("failed to initialize queue: %w", err)
	}
	return ReviewerDeps{Deps: deps, Store: st, Queue: q}, nil
}

// NewClassifier exposes backend selection for binaries that manage
// their own config and logging (the check CLI keeps stdout clean for
// the result and logs to stderr).
func NewClassifier(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Classifier, string, string, error) {
	return buildClassifier(ctx, cfg, log)
}

// buildClassifier selects the backend from a closed set. Unknown values
// are a configuration error; there is no fallback provider.
func buildClassifier(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Classifier, string, string, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case llm.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, "", "", fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI classifier", "model", cfg.LLMModel)
		return client, llm.ProviderOpenAI, cfg.LLMModel, nil
	case llm.ProviderVertex:
		if cfg.VertexProject == "" {
			return nil, "", "", fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when LLM_PROVIDER=vertex")
		}
		client, err := llm.NewVertexClient(ctx, cfg.VertexProject, cfg.VertexRegion, cfg.VertexModel)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to initialize Vertex client: %w", err)
		}
		log.Info("using Vertex AI classifier", "model", cfg.VertexModel, "project", cfg.VertexProject, "region", cfg.VertexRegion)
		return client, llm.ProviderVertex, cfg.VertexModel, nil
	default:
		return nil, "", "", fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: openai, vertex)", cfg.LLMProvider)
	}
}

func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	db, err := store.NewPostgres(cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
	}
	log.Info("using Postgres store")
	return db, nil
}

func buildQueue(cfg config.Config, log *slog.Logger) (queue.Queue, error) {
	if cfg.QueueURL == "" {
		return nil, fmt.Errorf("QUEUE_URL is required")
	}
	nc, err := nats.Connect(cfg.QueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Info("using NATS queue")
	return queue.NewNATS(log, nc), nil
}

// buildCache never fails: with no Redis address configured the service
// just runs uncached.
func buildCache(cfg config.Config, log *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		log.Info("no REDIS_ADDR configured, caching disabled")
		return cache.NewNoOpCache()
	}
	c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable, caching disabled", "err", err)
		return cache.NewNoOpCache()
	}
	log.Info("using Redis cache", "addr", cfg.RedisAddr)
	return c
}
