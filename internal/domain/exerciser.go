// Package domain defines the exercise tracker's entities, request validation,
// merge semantics and the services that orchestrate them against a store.
package domain

import "time"

// Exerciser is a tracked user of the fitness system. It owns a collection of
// Exercise sessions which are cascade-deleted with it.
type Exerciser struct {
	ID          int64
	Name        string
	BirthDate   time.Time
	BodyWeight  *float64
	FitnessGoal *string
	Exercises   []Exercise
}

// AgeAt computes a full-years age as of today, accounting for whether the
// birthday has occurred yet this year.
func AgeAt(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// TotalDuration sums the durations of the given sessions, zero if none.
func TotalDuration(exercises []Exercise) time.Duration {
	var total time.Duration
	for _, ex := range exercises {
		total += ex.Duration()
	}
	return total
}

// DateOnly truncates t to midnight in its location. Validation and age
// calculations compare calendar dates, not instants.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
