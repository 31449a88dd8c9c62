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

// ExerciserRepository is the postgres-backed exerciser store.
type ExerciserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewExerciserRepository constructs an ExerciserRepository.
func NewExerciserRepository(pool *pgxpool.Pool, logger *slog.Logger) *ExerciserRepository {
	return &ExerciserRepository{pool: pool, logger: logger}
}

// Create inserts the exerciser and returns its assigned id.
func (r *ExerciserRepository) Create(ctx context.Context, exerciser domain.Exerciser) result.Result[int64] {
	const stmt = `INSERT INTO exercisers (name, birth_date, body_weight, fitness_goal)
        VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, stmt,
		exerciser.Name,
		exerciser.BirthDate,
		exerciser.BodyWeight,
		exerciser.FitnessGoal,
	).Scan(&id)
	if err != nil {
		return failure[int64](ctx, r.logger, err, "exerciser creation")
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Ok(id)
}

// Update persists the full exerciser record.
func (r *ExerciserRepository) Update(ctx context.Context, exerciser domain.Exerciser) result.Result[result.Unit] {
	const stmt = `UPDATE exercisers SET name=$2, birth_date=$3, body_weight=$4, fitness_goal=$5 WHERE id=$1`

	tag, err := r.pool.Exec(ctx, stmt,
		exerciser.ID,
		exerciser.Name,
		exerciser.BirthDate,
		exerciser.BodyWeight,
		exerciser.FitnessGoal,
	)
	if err != nil {
		return failure[result.Unit](ctx, r.logger, err, "exerciser update")
	}
	if tag.RowsAffected() == 0 {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found", exerciser.ID))
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Done()
}

// Delete removes the exerciser; owned sessions go with it via the cascade.
func (r *ExerciserRepository) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercisers WHERE id=$1`, id)
	if err != nil {
		return failure[result.Unit](ctx, r.logger, err, fmt.Sprintf("deletion of exerciser: %d", id))
	}
	if tag.RowsAffected() == 0 {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found. Nothing deleted", id))
	}

	observability.RecordWrite(time.Now().UTC())
	return result.Done()
}

// GetByID fetches the exerciser with its sessions eagerly loaded.
func (r *ExerciserRepository) GetByID(ctx context.Context, id int64) result.Result[domain.Exerciser] {
	const query = `SELECT id, name, birth_date, body_weight, fitness_goal FROM exercisers WHERE id=$1`

	var exerciser domain.Exerciser
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&exerciser.ID,
		&exerciser.Name,
		&exerciser.BirthDate,
		&exerciser.BodyWeight,
		&exerciser.FitnessGoal,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return result.Fail[domain.Exerciser](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found", id))
	}
	if err != nil {
		return failure[domain.Exerciser](ctx, r.logger, err, fmt.Sprintf("retrieval of exerciser: %d", id))
	}

	exercises, err := r.exercisesFor(ctx, []int64{id})
	if err != nil {
		return failure[domain.Exerciser](ctx, r.logger, err, fmt.Sprintf("retrieval of exerciser: %d", id))
	}
	exerciser.Exercises = exercises[id]

	return result.Ok(exerciser)
}

// GetAll fetches every exerciser with sessions eagerly loaded.
func (r *ExerciserRepository) GetAll(ctx context.Context) result.Result[[]domain.Exerciser] {
	const query = `SELECT id, name, birth_date, body_weight, fitness_goal FROM exercisers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return failure[[]domain.Exerciser](ctx, r.logger, err, "retrieval of all exercisers")
	}
	defer rows.Close()

	var exercisers []domain.Exerciser
	var ids []int64
	for rows.Next() {
		var exerciser domain.Exerciser
		if err := rows.Scan(
			&exerciser.ID,
			&exerciser.Name,
			&exerciser.BirthDate,
			&exerciser.BodyWeight,
			&exerciser.FitnessGoal,
		); err != nil {
			return failure[[]domain.Exerciser](ctx, r.logger, err, "retrieval of all exercisers")
		}
		exercisers = append(exercisers, exerciser)
		ids = append(ids, exerciser.ID)
	}
	if err := rows.Err(); err != nil {
		return failure[[]domain.Exerciser](ctx, r.logger, err, "retrieval of all exercisers")
	}

	owned, err := r.exercisesFor(ctx, ids)
	if err != nil {
		return failure[[]domain.Exerciser](ctx, r.logger, err, "retrieval of all exercisers")
	}
	for i := range exercisers {
		exercisers[i].Exercises = owned[exercisers[i].ID]
	}

	return result.Ok(exercisers)
}

// exercisesFor loads the owned sessions for the given exerciser ids, keyed by
// owner.
func (r *ExerciserRepository) exercisesFor(ctx context.Context, ids []int64) (map[int64][]domain.Exercise, error) {
	owned := make(map[int64][]domain.Exercise, len(ids))
	if len(ids) == 0 {
		return owned, nil
	}

	const query = `SELECT id, exerciser_id, start_time, end_time, exercise_type, comments
        FROM exercises WHERE exerciser_id = ANY($1) ORDER BY id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		owned[exercise.ExerciserID] = append(owned[exercise.ExerciserID], exercise)
	}
	return owned, rows.Err()
}

func scanExercise(row pgx.Row) (domain.Exercise, error) {
	var exercise domain.Exercise
	var typeName string
	if err := row.Scan(
		&exercise.ID,
		&exercise.ExerciserID,
		&exercise.StartTime,
		&exercise.EndTime,
		&typeName,
		&exercise.Comments,
	); err != nil {
		return domain.Exercise{}, err
	}

	parsed, err := domain.ParseExerciseType(typeName)
	if err != nil {
		return domain.Exercise{}, err
	}
	exercise.Type = parsed
	return exercise, nil
}
