package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	// Use advisory lock to prevent concurrent migrations from multiple services.
	// Note: In production, use dedicated migration tools (e.g., golang-migrate/migrate)
	// that run as a separate deployment step before app services start.
	const lockID = 424242001 // arbitrary number for this application's migration lock

	var acquired bool
	err := s.db.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, lockID).Scan(&acquired)
	if err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}

	if !acquired {
		// Another service is running migrations; wait briefly and skip
		time.Sleep(2 * time.Second)
		return nil
	}

	defer func() {
		_, _ = s.db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockID)
	}()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			language TEXT NOT NULL,
			text TEXT NOT NULL,
			sentiment TEXT NOT NULL,
			aggressiveness INT NOT NULL,
			correctness INT NOT NULL,
			errors TEXT[] NOT NULL DEFAULT '{}',
			solution TEXT NOT NULL,
			result_language TEXT NOT NULL,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS reviews_created_at_idx ON reviews (created_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) SaveReview(ctx context.Context, rec Review) (Review, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews
			(id, language, text, sentiment, aggressiveness, correctness, errors, solution, result_language, provider, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.Language, rec.Text,
		rec.Result.Sentiment, rec.Result.Aggressiveness, rec.Result.Correctness,
		pq.Array(rec.Result.Errors), rec.Result.Solution, rec.Result.Language,
		rec.Provider, rec.Model, rec.CreatedAt,
	)
	if err != nil {
		return Review{}, fmt.Errorf("failed to save review: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) GetReview(ctx context.Context, id uuid.UUID) (Review, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, language, text, sentiment, aggressiveness, correctness, errors, solution, result_language, provider, model, created_at
		FROM reviews WHERE id = $1`, id)

	rec, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Review{}, ErrReviewNotFound
	}
	if err != nil {
		return Review{}, err
	}
	return rec, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Review, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, language, text, sentiment, aggressiveness, correctness, errors, solution, result_language, provider, model, created_at
		FROM reviews ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		rec, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rec)
	}
	return reviews, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (Review, error) {
	var rec Review
	var errs []string
	err := row.Scan(
		&rec.ID, &rec.Language, &rec.Text,
		&rec.Result.Sentiment, &rec.Result.Aggressiveness, &rec.Result.Correctness,
		pq.Array(&errs), &rec.Result.Solution, &rec.Result.Language,
		&rec.Provider, &rec.Model, &rec.CreatedAt,
	)
	if err != nil {
		return Review{}, err
	}
	rec.Result.Errors = errs
	return rec, nil
}

var _ Store = (*PostgresStore)(nil)
