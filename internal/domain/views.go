package domain

import "time"

// UnknownExerciserName is the sentinel used on an exercise view when the
// owning relation was not loaded.
const UnknownExerciserName = "(unknown)"

// ExerciserView is the read model for an exerciser, with derived fields
// computed at read time.
type ExerciserView struct {
	ID            int64
	Name          string
	Age           int
	BodyWeight    *float64
	FitnessGoal   *string
	TotalDuration time.Duration
	SessionCount  int
	Exercises     []ExerciseView
}

// ExerciseView is the read model for a session, with the owning exerciser
// denormalized into it.
type ExerciseView struct {
	ID            int64
	ExerciserID   int64
	ExerciserName string
	ExerciserAge  int
	Type          string
	Comments      *string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// NewExerciserView maps an entity to its view. today is the reference date
// for the derived age.
func NewExerciserView(e Exerciser, today time.Time) ExerciserView {
	exercises := make([]ExerciseView, 0, len(e.Exercises))
	for _, ex := range e.Exercises {
		exercises = append(exercises, NewExerciseView(ex, today))
	}
	return ExerciserView{
		ID:            e.ID,
		Name:          e.Name,
		Age:           AgeAt(e.BirthDate, today),
		BodyWeight:    e.BodyWeight,
		FitnessGoal:   e.FitnessGoal,
		TotalDuration: TotalDuration(e.Exercises),
		SessionCount:  len(e.Exercises),
		Exercises:     exercises,
	}
}

// NewExerciseView maps an entity to its view, defaulting the denormalized
// exerciser fields when the relation is absent.
func NewExerciseView(e Exercise, today time.Time) ExerciseView {
	view := ExerciseView{
		ID:            e.ID,
		ExerciserID:   e.ExerciserID,
		ExerciserName: UnknownExerciserName,
		Type:          e.Type.String(),
		Comments:      e.Comments,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Duration:      e.Duration(),
	}
	if e.Exerciser != nil {
		view.ExerciserName = e.Exerciser.Name
		view.ExerciserAge = AgeAt(e.Exerciser.BirthDate, today)
	}
	return view
}
