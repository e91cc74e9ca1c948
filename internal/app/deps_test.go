package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textcheck/internal/config"
	"textcheck/internal/llm"
)

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildClassifierSelectsOpenAI(t *testing.T) {
	cfg := config.Config{LLMProvider: "openai", OpenAIKey: "sk-test", LLMModel: "gpt-4o-mini"}

	client, provider, model, err := buildClassifier(context.Background(), cfg, testLog())
	require.NoError(t, err)
	assert.IsType(t, &llm.OpenAIClient{}, client)
	assert.Equal(t, llm.ProviderOpenAI, provider)
	assert.Equal(t, "gpt-4o-mini", model)
}

func TestBuildClassifierProviderIsCaseInsensitive(t *testing.T) {
	cfg := config.Config{LLMProvider: "OPENAI", OpenAIKey: "sk-test", LLMModel: "gpt-4o-mini"}

	client, provider, _, err := buildClassifier(context.Background(), cfg, testLog())
	require.NoError(t, err)
	assert.IsType(t, &llm.OpenAIClient{}, client)
	assert.Equal(t, llm.ProviderOpenAI, provider)
}

func TestBuildClassifierRejectsUnknownProvider(t *testing.T) {
	// The source of this tool treated "anything but OPENAI" as the
	// alternate backend, which silently misroutes typos. Here the set
	// is closed: unknown values fail loudly.
	for _, name := range []string{"openia", "gemini", "anthropic", ""} {
		cfg := config.Config{LLMProvider: name, OpenAIKey: "sk-test"}
		_, _, _, err := buildClassifier(context.Background(), cfg, testLog())
		assert.Error(t, err, "provider %q should be rejected", name)
	}
}

func TestBuildClassifierRequiresCredentials(t *testing.T) {
	_, _, _, err := buildClassifier(context.Background(),
		config.Config{LLMProvider: "openai"}, testLog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	_, _, _, err = buildClassifier(context.Background(),
		config.Config{LLMProvider: "vertex"}, testLog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_CLOUD_PROJECT")
}
