package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"textcheck/internal/app"
	"textcheck/internal/config"
	"textcheck/internal/llm"
	"textcheck/internal/logger"
	"textcheck/internal/review"
)

// check performs one classification and exits: resolve config, select
// the provider, bind one (language, text) pair to the prompt, make the
// call, print the structured result on stdout. Logs go to stderr so
// stdout carries nothing but the result object.
func main() {
	language := flag.String("language", "Spanish", "language the text should be written in")
	text := flag.String("text", "Yo soy enfadado", "text to review")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel)

	ctx := context.Background()
	client, _, model, err := app.NewClassifier(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize classifier", "err", err)
		os.Exit(1)
	}
	log.Debug("classifier ready", "model", model)

	req := review.Request{Language: *language, Text: *text}
	if err := run(ctx, client, cfg, req, os.Stdout); err != nil {
		log.Error("review failed", "err", err)
		os.Exit(1)
	}
}

// run performs the single classification and writes the result as
// indented JSON. Nothing is written on failure.
func run(ctx context.Context, client llm.Classifier, cfg config.Config, req review.Request, out io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}
	result, err := llm.ClassifyWithRetry(ctx, client, req,
		cfg.LLMMaxAttempts, time.Duration(cfg.LLMRetryBaseMS)*time.Millisecond)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
