// Package memory provides an in-process store implementing the same
// repository contracts as the postgres package, including cascade delete and
// the referential check on session inserts. It backs the "memory" storage
// driver and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/TerrenceLGee/ExerciseTracker/internal/domain"
	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

// Store holds both entity maps behind one mutex so cascade deletes stay
// consistent.
type Store struct {
	mu              sync.RWMutex
	exercisers      map[int64]domain.Exerciser
	exercises       map[int64]domain.Exercise
	nextExerciserID int64
	nextExerciseID  int64
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		exercisers:      make(map[int64]domain.Exerciser),
		exercises:       make(map[int64]domain.Exercise),
		nextExerciserID: 1,
		nextExerciseID:  1,
	}
}

// Exercisers returns the exerciser repository view of the store.
func (s *Store) Exercisers() domain.ExerciserRepository { return &exerciserStore{s} }

// Exercises returns the session repository view of the store.
func (s *Store) Exercises() domain.ExerciseRepository { return &exerciseStore{s} }

func canceled[T any](ctx context.Context, operation string) (result.Result[T], bool) {
	if err := ctx.Err(); err != nil {
		return result.Fail[T](result.KindCanceled,
			fmt.Sprintf("Operation canceled during %s: %v", operation, err)), true
	}
	var zero result.Result[T]
	return zero, false
}

type exerciserStore struct {
	store *Store
}

func (s *exerciserStore) Create(ctx context.Context, exerciser domain.Exerciser) result.Result[int64] {
	if res, stop := canceled[int64](ctx, "exerciser creation"); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	exerciser.ID = s.store.nextExerciserID
	s.store.nextExerciserID++
	exerciser.Exercises = nil
	s.store.exercisers[exerciser.ID] = exerciser
	return result.Ok(exerciser.ID)
}

func (s *exerciserStore) Update(ctx context.Context, exerciser domain.Exerciser) result.Result[result.Unit] {
	if res, stop := canceled[result.Unit](ctx, "exerciser update"); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.exercisers[exerciser.ID]; !ok {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found", exerciser.ID))
	}
	exerciser.Exercises = nil
	s.store.exercisers[exerciser.ID] = exerciser
	return result.Done()
}

func (s *exerciserStore) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	if res, stop := canceled[result.Unit](ctx, fmt.Sprintf("deletion of exerciser: %d", id)); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.exercisers[id]; !ok {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found. Nothing deleted", id))
	}

	delete(s.store.exercisers, id)
	// Cascade, matching the foreign key behaviour of the postgres schema.
	for exerciseID, exercise := range s.store.exercises {
		if exercise.ExerciserID == id {
			delete(s.store.exercises, exerciseID)
		}
	}
	return result.Done()
}

func (s *exerciserStore) GetByID(ctx context.Context, id int64) result.Result[domain.Exerciser] {
	if res, stop := canceled[domain.Exerciser](ctx, fmt.Sprintf("retrieval of exerciser: %d", id)); stop {
		return res
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	exerciser, ok := s.store.exercisers[id]
	if !ok {
		return result.Fail[domain.Exerciser](result.KindNotFound,
			fmt.Sprintf("No exerciser with id: %d found", id))
	}
	exerciser.Exercises = s.store.ownedExercisesLocked(id)
	return result.Ok(exerciser)
}

func (s *exerciserStore) GetAll(ctx context.Context) result.Result[[]domain.Exerciser] {
	if res, stop := canceled[[]domain.Exerciser](ctx, "retrieval of all exercisers"); stop {
		return res
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	exercisers := make([]domain.Exerciser, 0, len(s.store.exercisers))
	for _, exerciser := range s.store.exercisers {
		exerciser.Exercises = s.store.ownedExercisesLocked(exerciser.ID)
		exercisers = append(exercisers, exerciser)
	}
	sort.Slice(exercisers, func(i, j int) bool { return exercisers[i].ID < exercisers[j].ID })
	return result.Ok(exercisers)
}

type exerciseStore struct {
	store *Store
}

func (s *exerciseStore) Create(ctx context.Context, exercise domain.Exercise) result.Result[int64] {
	if res, stop := canceled[int64](ctx, "exercise session creation"); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.exercisers[exercise.ExerciserID]; !ok {
		return result.Fail[int64](result.KindReferential,
			fmt.Sprintf("Database error during exercise session creation: exerciser with id %d does not exist",
				exercise.ExerciserID))
	}

	exercise.ID = s.store.nextExerciseID
	s.store.nextExerciseID++
	exercise.Exerciser = nil
	s.store.exercises[exercise.ID] = exercise
	return result.Ok(exercise.ID)
}

func (s *exerciseStore) Update(ctx context.Context, exercise domain.Exercise) result.Result[result.Unit] {
	if res, stop := canceled[result.Unit](ctx, "exercise session update"); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.exercises[exercise.ID]; !ok {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("Exercise session with id: %d not found.", exercise.ID))
	}
	if _, ok := s.store.exercisers[exercise.ExerciserID]; !ok {
		return result.Fail[result.Unit](result.KindReferential,
			fmt.Sprintf("Database error during exercise session update: exerciser with id %d does not exist",
				exercise.ExerciserID))
	}
	exercise.Exerciser = nil
	s.store.exercises[exercise.ID] = exercise
	return result.Done()
}

func (s *exerciseStore) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	if res, stop := canceled[result.Unit](ctx, fmt.Sprintf("deletion of exercise session: %d", id)); stop {
		return res
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.exercises[id]; !ok {
		return result.Fail[result.Unit](result.KindNotFound,
			fmt.Sprintf("No exercise session with id: %d found. Nothing deleted", id))
	}
	delete(s.store.exercises, id)
	return result.Done()
}

func (s *exerciseStore) GetByID(ctx context.Context, id int64) result.Result[domain.Exercise] {
	if res, stop := canceled[domain.Exercise](ctx, fmt.Sprintf("retrieval of exercise session: %d", id)); stop {
		return res
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	exercise, ok := s.store.exercises[id]
	if !ok {
		return result.Fail[domain.Exercise](result.KindNotFound,
			fmt.Sprintf("Exercise session with id: %d not found.", id))
	}
	s.store.attachOwnerLocked(&exercise)
	return result.Ok(exercise)
}

func (s *exerciseStore) GetAll(ctx context.Context) result.Result[[]domain.Exercise] {
	if res, stop := canceled[[]domain.Exercise](ctx, "retrieval of all exercise sessions"); stop {
		return res
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return result.Ok(s.store.listExercisesLocked(func(domain.Exercise) bool { return true }))
}

func (s *exerciseStore) GetByExerciserID(ctx context.Context, exerciserID int64) result.Result[[]domain.Exercise] {
	operation := fmt.Sprintf("retrieval of exercise sessions for exerciser: %d", exerciserID)
	if res, stop := canceled[[]domain.Exercise](ctx, operation); stop {
		return res
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return result.Ok(s.store.listExercisesLocked(func(e domain.Exercise) bool {
		return e.ExerciserID == exerciserID
	}))
}

func (s *Store) listExercisesLocked(match func(domain.Exercise) bool) []domain.Exercise {
	var exercises []domain.Exercise
	for _, exercise := range s.exercises {
		if match(exercise) {
			s.attachOwnerLocked(&exercise)
			exercises = append(exercises, exercise)
		}
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].ID < exercises[j].ID })
	return exercises
}

func (s *Store) ownedExercisesLocked(exerciserID int64) []domain.Exercise {
	var owned []domain.Exercise
	for _, exercise := range s.exercises {
		if exercise.ExerciserID == exerciserID {
			owned = append(owned, exercise)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned
}

// attachOwnerLocked stitches a copy of the owning exerciser onto the session,
// without the owner's collection to keep the value acyclic.
func (s *Store) attachOwnerLocked(exercise *domain.Exercise) {
	if owner, ok := s.exercisers[exercise.ExerciserID]; ok {
		owner.Exercises = nil
		exercise.Exerciser = &owner
	}
}
