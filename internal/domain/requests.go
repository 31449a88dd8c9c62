package domain

import "time"

// CreateExerciserRequest is the payload for registering a new exerciser.
type CreateExerciserRequest struct {
	Name        string
	BirthDate   time.Time
	BodyWeight  *float64
	FitnessGoal *string
}

// UpdateExerciserRequest is a partial update: nil fields leave the existing
// value untouched.
type UpdateExerciserRequest struct {
	ID          int64
	Name        *string
	BirthDate   *time.Time
	BodyWeight  *float64
	FitnessGoal *string
}

// ApplyTo merges the provided fields onto the existing entity.
func (r UpdateExerciserRequest) ApplyTo(existing *Exerciser) {
	if r.Name != nil {
		existing.Name = *r.Name
	}
	if r.BirthDate != nil {
		existing.BirthDate = *r.BirthDate
	}
	if r.BodyWeight != nil {
		existing.BodyWeight = r.BodyWeight
	}
	if r.FitnessGoal != nil {
		existing.FitnessGoal = r.FitnessGoal
	}
}

// CreateExerciseRequest is the payload for recording a new session.
type CreateExerciseRequest struct {
	ExerciserID int64
	StartTime   time.Time
	EndTime     time.Time
	Type        ExerciseType
	Comments    *string
}

// UpdateExerciseRequest is a partial update: nil fields leave the existing
// value untouched.
type UpdateExerciseRequest struct {
	ID        int64
	StartTime *time.Time
	EndTime   *time.Time
	Type      *ExerciseType
	Comments  *string
}

// ApplyTo merges the provided fields onto the existing entity.
func (r UpdateExerciseRequest) ApplyTo(existing *Exercise) {
	if r.StartTime != nil {
		existing.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		existing.EndTime = *r.EndTime
	}
	if r.Type != nil {
		existing.Type = *r.Type
	}
	if r.Comments != nil {
		existing.Comments = r.Comments
	}
}
