package domain

import (
	"context"

	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

// ExerciserRepository captures durable persistence for exercisers. Reads load
// the owned exercise collection eagerly. Implementations normalise storage
// failures into failed results; no error crosses this boundary.
type ExerciserRepository interface {
	Create(ctx context.Context, exerciser Exerciser) result.Result[int64]
	Update(ctx context.Context, exerciser Exerciser) result.Result[result.Unit]
	Delete(ctx context.Context, id int64) result.Result[result.Unit]
	GetByID(ctx context.Context, id int64) result.Result[Exerciser]
	GetAll(ctx context.Context) result.Result[[]Exerciser]
}

// ExerciseRepository captures durable persistence for sessions. Reads load
// the owning exerciser eagerly.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise Exercise) result.Result[int64]
	Update(ctx context.Context, exercise Exercise) result.Result[result.Unit]
	Delete(ctx context.Context, id int64) result.Result[result.Unit]
	GetByID(ctx context.Context, id int64) result.Result[Exercise]
	GetAll(ctx context.Context) result.Result[[]Exercise]
	GetByExerciserID(ctx context.Context, exerciserID int64) result.Result[[]Exercise]
}
