package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TerrenceLGee/ExerciseTracker/internal/domain"
	"github.com/TerrenceLGee/ExerciseTracker/internal/observability"
	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

// selectExerciseJoined pulls a session together with its owning exerciser.
const selectExerciseJoined = `SELECT e.id, e.exerciser_id, e.start_time, e.end_time, e.exercise_type, e.comments,
        x.id, x.name, x.birth_date, x.body_weight, x.fitness_goal
        FROM exercises e JOIN exercisers x ON x.id = e.exerciser_id`

// ExerciseRepository is the postgres-backed session store.
type ExerciseRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewExerciseRepository constructs an ExerciseRepository.
func NewExerciseRepository(pool *pgxpool.Pool, logger *slog.Logger) *ExerciseRepository {
	return &ExerciseRepository{pool: pool, logger: logger}
}

// Create inserts the session and returns its assigned id. A nonexistent
// exerciser surfaces as a referential failure via the foreign key.
func (r *ExerciseRepository) Create(ctx context.Context, exercise domain.Exercise) result.Result[int64] {
	const stmt = `INSERT INTO exercises (exerciser_id, start_time, end_time, exercise_type, comments)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, stmt,
		exercise.ExerciserID,
		exercise.StartTime,
		exercise.EndTime,
		exercise.Type.String(),
		exercise.Comments,
	).Scan(&id)
	if err != nil {
		return failure[int64](ctx, r.logger, err, "exercise session creation")
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Ok(id)
}

// Update persists the full session record.
func (r *ExerciseRepository) Update(ctx context.Context, exercise domain.Exercise) result.Result[result.Unit] {
	const stmt = `UPDATE exercises SET exerciser_id=$2, start_time=$3, end_time=$4, exercise_type=$5, comments=$6
        WHERE id=$1`

	tag, err := r.pool.Exec(ctx, stmt,
		exercise.ID,
		exercise.ExerciserID,
		exercise.StartTime,
		exercise.EndTime,
		exercise.Type.String(),
		exercise.Comments,
	)
	if err != nil {
		return failure[result.Unit](ctx, r.logger, err, "exercise session update")
	}
	if tag.RowsAffected() == 0 {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("Exercise session with id: %d not found.", exercise.ID))
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Done()
}

// Delete removes the session.
func (r *ExerciseRepository) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id=$1`, id)
	if err != nil {
		return failure[result.Unit](ctx, r.logger, err, fmt.Sprintf("deletion of exercise session: %d", id))
	}
	if tag.RowsAffected() == 0 {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exercise session with id: %d found. Nothing deleted", id))
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Done()
}

// GetByID fetches the session with its owning exerciser eagerly loaded.
func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) result.Result[domain.Exercise] {
	row := r.pool.QueryRow(ctx, selectExerciseJoined+` WHERE e.id=$1`, id)

	exercise, err := scanExerciseJoined(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return result.Fail[domain.Exercise](result.KindNotFound,
			fmt.Sprintf("Exercise session with id: %d not found.", id))
	}
	if err != nil {
		return failure[domain.Exercise](ctx, r.logger, err, fmt.Sprintf("retrieval of exercise session: %d", id))
	}
	return result.Ok(exercise)
}

// GetAll fetches every session with owners eagerly loaded.
func (r *ExerciseRepository) GetAll(ctx context.Context) result.Result[[]domain.Exercise] {
	return r.list(ctx, selectExerciseJoined+` ORDER BY e.id`, "retrieval of all exercise sessions")
}

// GetByExerciserID fetches every session owned by one exerciser.
func (r *ExerciseRepository) GetByExerciserID(ctx context.Context, exerciserID int64) result.Result[[]domain.Exercise] {
	return r.list(ctx, selectExerciseJoined+` WHERE e.exerciser_id=$1 ORDER BY e.id`,
		fmt.Sprintf("retrieval of exercise sessions for exerciser: %d", exerciserID), exerciserID)
}

func (r *ExerciseRepository) list(ctx context.Context, query, operation string, args ...any) result.Result[[]domain.Exercise] {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return failure[[]domain.Exercise](ctx, r.logger, err, operation)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		exercise, err := scanExerciseJoined(rows)
		if err != nil {
			return failure[[]domain.Exercise](ctx, r.logger, err, operation)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return failure[[]domain.Exercise](ctx, r.logger, err, operation)
	}

	return result.Ok(exercises)
}

func scanExerciseJoined(row pgx.Row) (domain.Exercise, error) {
	var exercise domain.Exercise
	var owner domain.Exerciser
	var typeName string
	if err := row.Scan(
		&exercise.ID,
		&exercise.ExerciserID,
		&exercise.StartTime,
		&exercise.EndTime,
		&typeName,
		&exercise.Comments,
		&owner.ID,
		&owner.Name,
		&owner.BirthDate,
		&owner.BodyWeight,
		&owner.FitnessGoal,
	); err != nil {
		return domain.Exercise{}, err
	}

	parsed, err := domain.ParseExerciseType(typeName)
	if err != nil {
		return domain.Exercise{}, err
	}
	exercise.Type = parsed
	exercise.Exerciser = &owner
	return exercise, nil
}
