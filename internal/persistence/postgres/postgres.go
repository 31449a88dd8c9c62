// Package postgres provides pgx-backed repositories for exercisers and
// exercise sessions. All storage failures are normalised into failed results
// at this boundary: constraint violations, cancellation and unexpected faults
// each map to a distinct failure kind and are logged with context.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

const (
	fkViolationCode    = "23503"
	integrityClassCode = "23"
)

const schema = `
CREATE TABLE IF NOT EXISTS exercisers (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    birth_date   DATE NOT NULL,
    body_weight  DOUBLE PRECISION,
    fitness_goal TEXT
);

CREATE TABLE IF NOT EXISTS exercises (
    id            BIGSERIAL PRIMARY KEY,
    exerciser_id  BIGINT NOT NULL REFERENCES exercisers(id) ON DELETE CASCADE,
    start_time    TIMESTAMPTZ NOT NULL,
    end_time      TIMESTAMPTZ NOT NULL,
    exercise_type TEXT NOT NULL,
    comments      TEXT
);

CREATE INDEX IF NOT EXISTS idx_exercises_exerciser_id ON exercises (exerciser_id);
`

// EnsureSchema creates the two tables and the cascade-delete foreign key if
// they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// failure converts a storage error into a failed result with a descriptive
// message, logging it on the way out. operation names the attempt, e.g.
// "exerciser creation".
func failure[T any](ctx context.Context, logger *slog.Logger, err error, operation string) result.Result[T] {
	kind := classify(err)

	var message string
	switch kind {
	case result.KindCanceled:
		message = fmt.Sprintf("Operation canceled during %s: %v", operation, err)
	case result.KindStore, result.KindReferential:
		message = fmt.Sprintf("Database error during %s: %v", operation, err)
	default:
		message = fmt.Sprintf("An unexpected error has occurred during %s: %v", operation, err)
	}

	logger.ErrorContext(ctx, message, "kind", kind.String(), "operation", operation)
	return result.Fail[T](kind, message)
}

func classify(err error) result.Kind {
	if kind := result.ClassifyError(err, result.KindUnexpected); kind == result.KindCanceled {
		return kind
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == fkViolationCode {
			return result.KindReferential
		}
		if strings.HasPrefix(pgErr.Code, integrityClassCode) {
			return result.KindStore
		}
	}

	return result.KindUnexpected
}
