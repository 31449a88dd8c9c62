package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/TerrenceLGee/ExerciseTracker/internal/observability"
	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

// ExerciserService orchestrates validation, merging and persistence for
// exercisers.
type ExerciserService struct {
	repo   ExerciserRepository
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewExerciserService constructs an ExerciserService.
func NewExerciserService(repo ExerciserRepository, clock clockwork.Clock, logger *slog.Logger) *ExerciserService {
	return &ExerciserService{repo: repo, clock: clock, logger: logger}
}

// Create validates the request and persists a new exerciser, returning its
// store-assigned id.
func (s *ExerciserService) Create(ctx context.Context, req CreateExerciserRequest) result.Result[int64] {
	if violations := req.Validate(s.clock.Now()); len(violations) > 0 {
		return logFail[int64](ctx, s.logger, result.KindValidation, JoinViolations(violations))
	}

	exerciser := Exerciser{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		BodyWeight:  req.BodyWeight,
		FitnessGoal: req.FitnessGoal,
	}

	res := s.repo.Create(ctx, exerciser)
	observability.RecordOperation("exerciser", "create", res.IsOk())
	return res
}

// Update validates the request, fetches the existing exerciser, merges only
// the provided fields onto it and persists the merged entity.
func (s *ExerciserService) Update(ctx context.Context, req UpdateExerciserRequest) result.Result[result.Unit] {
	if violations := req.Validate(s.clock.Now()); len(violations) > 0 {
		return logFail[result.Unit](ctx, s.logger, result.KindValidation, JoinViolations(violations))
	}

	existingRes := s.repo.GetByID(ctx, req.ID)
	if !existingRes.IsOk() {
		return logForward[Exerciser, result.Unit](ctx, s.logger, existingRes)
	}

	existing := existingRes.Value()
	req.ApplyTo(&existing)

	res := s.repo.Update(ctx, existing)
	observability.RecordOperation("exerciser", "update", res.IsOk())
	return res
}

// Delete removes an exerciser and, via the store's cascade, all its sessions.
// The fetch beforehand exists to produce a clear not-found message.
func (s *ExerciserService) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	if existing := s.repo.GetByID(ctx, id); !existing.IsOk() {
		return logForward[Exerciser, result.Unit](ctx, s.logger, existing)
	}

	res := s.repo.Delete(ctx, id)
	observability.RecordOperation("exerciser", "delete", res.IsOk())
	return res
}

// GetByID returns the exerciser's view with derived fields computed as of
// today.
func (s *ExerciserService) GetByID(ctx context.Context, id int64) result.Result[ExerciserView] {
	res := s.repo.GetByID(ctx, id)
	if !res.IsOk() {
		return logForward[Exerciser, ExerciserView](ctx, s.logger, res)
	}
	return result.Ok(NewExerciserView(res.Value(), s.clock.Now()))
}

// GetAll returns views for every exerciser.
func (s *ExerciserService) GetAll(ctx context.Context) result.Result[[]ExerciserView] {
	res := s.repo.GetAll(ctx)
	if !res.IsOk() {
		return logForward[[]Exerciser, []ExerciserView](ctx, s.logger, res)
	}

	today := s.clock.Now()
	views := make([]ExerciserView, 0, len(res.Value()))
	for _, exerciser := range res.Value() {
		views = append(views, NewExerciserView(exerciser, today))
	}
	return result.Ok(views)
}

// ExerciseService orchestrates validation, the referential check against the
// owning exerciser, merging and persistence for sessions.
type ExerciseService struct {
	repo       ExerciseRepository
	exercisers ExerciserRepository
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(repo ExerciseRepository, exercisers ExerciserRepository, clock clockwork.Clock, logger *slog.Logger) *ExerciseService {
	return &ExerciseService{repo: repo, exercisers: exercisers, clock: clock, logger: logger}
}

// Create validates the request, verifies the referenced exerciser exists and
// persists the new session. The session store is never touched when the
// parent is absent.
func (s *ExerciseService) Create(ctx context.Context, req CreateExerciseRequest) result.Result[int64] {
	if violations := req.Validate(s.clock.Now()); len(violations) > 0 {
		return logFail[int64](ctx, s.logger, result.KindValidation, JoinViolations(violations))
	}

	if parent := s.exercisers.GetByID(ctx, req.ExerciserID); !parent.IsOk() {
		if parent.Kind() == result.KindNotFound {
			return logFail[int64](ctx, s.logger, result.KindReferential,
				fmt.Sprintf("Exerciser with id %d does not exist.", req.ExerciserID))
		}
		return logForward[Exerciser, int64](ctx, s.logger, parent)
	}

	exercise := Exercise{
		ExerciserID: req.ExerciserID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Type:        req.Type,
		Comments:    req.Comments,
	}

	res := s.repo.Create(ctx, exercise)
	observability.RecordOperation("exercise", "create", res.IsOk())
	return res
}

// Update validates the request, fetches the existing session, merges the
// provided fields and persists the merged entity.
func (s *ExerciseService) Update(ctx context.Context, req UpdateExerciseRequest) result.Result[result.Unit] {
	if violations := req.Validate(s.clock.Now()); len(violations) > 0 {
		return logFail[result.Unit](ctx, s.logger, result.KindValidation, JoinViolations(violations))
	}

	existingRes := s.repo.GetByID(ctx, req.ID)
	if !existingRes.IsOk() {
		return logForward[Exercise, result.Unit](ctx, s.logger, existingRes)
	}

	existing := existingRes.Value()
	req.ApplyTo(&existing)

	res := s.repo.Update(ctx, existing)
	observability.RecordOperation("exercise", "update", res.IsOk())
	return res
}

// Delete removes a session, fetching it first for a clear not-found message.
func (s *ExerciseService) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	if existing := s.repo.GetByID(ctx, id); !existing.IsOk() {
		return logForward[Exercise, result.Unit](ctx, s.logger, existing)
	}

	res := s.repo.Delete(ctx, id)
	observability.RecordOperation("exercise", "delete", res.IsOk())
	return res
}

// GetByID returns the session's view with the owning exerciser denormalized.
func (s *ExerciseService) GetByID(ctx context.Context, id int64) result.Result[ExerciseView] {
	res := s.repo.GetByID(ctx, id)
	if !res.IsOk() {
		return logForward[Exercise, ExerciseView](ctx, s.logger, res)
	}
	return result.Ok(NewExerciseView(res.Value(), s.clock.Now()))
}

// GetAll returns views for every session.
func (s *ExerciseService) GetAll(ctx context.Context) result.Result[[]ExerciseView] {
	return s.views(ctx, s.repo.GetAll(ctx))
}

// GetByExerciserID returns views for every session owned by one exerciser.
func (s *ExerciseService) GetByExerciserID(ctx context.Context, exerciserID int64) result.Result[[]ExerciseView] {
	return s.views(ctx, s.repo.GetByExerciserID(ctx, exerciserID))
}

func (s *ExerciseService) views(ctx context.Context, res result.Result[[]Exercise]) result.Result[[]ExerciseView] {
	if !res.IsOk() {
		return logForward[[]Exercise, []ExerciseView](ctx, s.logger, res)
	}

	today := s.clock.Now()
	views := make([]ExerciseView, 0, len(res.Value()))
	for _, exercise := range res.Value() {
		views = append(views, NewExerciseView(exercise, today))
	}
	return result.Ok(views)
}

// logFail records the failure and returns it as a result.
func logFail[T any](ctx context.Context, logger *slog.Logger, kind result.Kind, message string) result.Result[T] {
	logger.ErrorContext(ctx, message, "kind", kind.String())
	return result.Fail[T](kind, message)
}

// logForward records a repository failure and re-types it, keeping the
// store's message verbatim.
func logForward[T, U any](ctx context.Context, logger *slog.Logger, res result.Result[T]) result.Result[U] {
	logger.ErrorContext(ctx, res.Message(), "kind", res.Kind().String())
	return result.Forward[T, U](res)
}
