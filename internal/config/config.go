package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM provider selection. Must be one of "openai" or "vertex";
	// anything else is rejected at wiring time rather than silently
	// falling back to a default backend.
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// OpenAI
	OpenAIKey string `env:"OPENAI_API_KEY"`
	LLMModel  string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// Vertex AI. Credentials come from GOOGLE_APPLICATION_CREDENTIALS,
	// which the Google SDK reads on its own.
	VertexModel   string `env:"VERTEX_MODEL" envDefault:"gemini-2.0-flash"`
	VertexProject string `env:"GOOGLE_CLOUD_PROJECT"`
	VertexRegion  string `env:"GOOGLE_CLOUD_REGION" envDefault:"us-central1"`

	// Retry policy for transport-level LLM failures.
	LLMMaxAttempts int `env:"LLM_MAX_ATTEMPTS" envDefault:"3"`
	LLMRetryBaseMS int `env:"LLM_RETRY_BASE_MS" envDefault:"500"`

	// Store
	DBURL string `env:"DB_URL"`

	// Queue
	QueueURL string `env:"QUEUE_URL"`

	// Cache. Empty REDIS_ADDR disables caching (no-op cache).
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" envDefault:"3600"` // seconds
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
