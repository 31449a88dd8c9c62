package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minNameLength    = 2
	maxNameLength    = 50
	maxTextLength    = 200
	maxAgeYears      = 120
	validTypeMessage = "Must be one of: Weights, Cardio, Yoga, Calisthenics, Other."
)

// Validate checks the request against the creation rules and returns the
// violations in rule order, empty when valid. now is the caller's reference
// time so validation stays deterministic.
func (r CreateExerciserRequest) Validate(now time.Time) []string {
	var violations []string

	if r.Name == "" {
		violations = append(violations, "Name cannot be empty.")
	} else if n := utf8.RuneCountInString(r.Name); n < minNameLength || n > maxNameLength {
		violations = append(violations, "Name must be between 2 and 50 characters.")
	}

	today := DateOnly(now)
	birthDate := DateOnly(r.BirthDate)
	if r.BirthDate.IsZero() {
		violations = append(violations, "Birth date is required.")
	} else if !birthDate.Before(today) {
		violations = append(violations, "Birth date must be in the past.")
	} else if birthDate.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		violations = append(violations, "Birth date is not valid.")
	}

	if r.BodyWeight != nil && *r.BodyWeight <= 0 {
		violations = append(violations, "Body weight must be greater than 0 if provided.")
	}

	if r.FitnessGoal != nil && utf8.RuneCountInString(*r.FitnessGoal) > maxTextLength {
		violations = append(violations, "Fitness goal cannot exceed 200 characters if provided.")
	}

	return violations
}

// Validate checks the update rules, including that at least one mutable field
// is provided.
func (r UpdateExerciserRequest) Validate(now time.Time) []string {
	var violations []string

	if r.ID <= 0 {
		violations = append(violations, "Exerciser id must be greater than 0.")
	}

	if r.Name != nil {
		if *r.Name == "" {
			violations = append(violations, "Name cannot be empty if provided.")
		} else if n := utf8.RuneCountInString(*r.Name); n < minNameLength || n > maxNameLength {
			violations = append(violations, "Name must be between 2 and 50 characters if provided.")
		}
	}

	if r.BirthDate != nil {
		today := DateOnly(now)
		birthDate := DateOnly(*r.BirthDate)
		if !birthDate.Before(today) {
			violations = append(violations, "Birth date must be in the past if provided.")
		} else if birthDate.Before(today.AddDate(-maxAgeYears, 0, 0)) {
			violations = append(violations, "Birth date is not valid.")
		}
	}

	if r.BodyWeight != nil && *r.BodyWeight <= 0 {
		violations = append(violations, "Body weight must be greater than 0 if provided.")
	}

	if r.FitnessGoal != nil && utf8.RuneCountInString(*r.FitnessGoal) > maxTextLength {
		violations = append(violations, "Fitness goal cannot exceed 200 characters if provided.")
	}

	if r.Name == nil && r.BirthDate == nil && r.BodyWeight == nil && r.FitnessGoal == nil {
		violations = append(violations,
			"At least one field (Name, BirthDate, BodyWeight, FitnessGoal) must be provided for update.")
	}

	return violations
}

// Validate checks the session creation rules.
func (r CreateExerciseRequest) Validate(now time.Time) []string {
	var violations []string

	if r.ExerciserID <= 0 {
		violations = append(violations, "Exerciser id must be greater than 0.")
	}

	if r.StartTime.After(now) {
		violations = append(violations, "Start time cannot be in the future.")
	}
	if r.EndTime.After(now) {
		violations = append(violations, "End time cannot be in the future.")
	}
	if !r.EndTime.After(r.StartTime) {
		violations = append(violations, "End time must be after start time.")
	}
	// Explicit guard kept alongside the ordering rule above.
	if r.EndTime.Sub(r.StartTime) <= 0 {
		violations = append(violations, "Exercise duration must be positive.")
	}

	if !r.Type.Valid() {
		violations = append(violations, fmt.Sprintf("Invalid exercise type provided. %s", validTypeMessage))
	}

	violations = append(violations, validateComments(r.Comments)...)

	return violations
}

// Validate checks the session update rules, including the at-least-one-field
// requirement.
func (r UpdateExerciseRequest) Validate(now time.Time) []string {
	var violations []string

	if r.ID <= 0 {
		violations = append(violations, "Exercise id must be greater than 0.")
	}

	if r.StartTime != nil && r.StartTime.After(now) {
		violations = append(violations, "Start time cannot be in the future if provided.")
	}
	if r.EndTime != nil && r.EndTime.After(now) {
		violations = append(violations, "End time cannot be in the future if provided.")
	}
	if r.StartTime != nil && r.EndTime != nil {
		if !r.EndTime.After(*r.StartTime) {
			violations = append(violations, "End time must be after start time if provided.")
		}
		if r.EndTime.Sub(*r.StartTime) <= 0 {
			violations = append(violations,
				"Exercise duration must be positive if start and end times are provided.")
		}
	}

	if r.Type != nil && !r.Type.Valid() {
		violations = append(violations, fmt.Sprintf("Invalid exercise type. If provided must be one of: %s.",
			strings.Join(ExerciseTypeNames(), ", ")))
	}

	violations = append(violations, validateComments(r.Comments)...)

	if r.StartTime == nil && r.EndTime == nil && r.Type == nil && r.Comments == nil {
		violations = append(violations,
			"At least one field (StartTime, EndTime, ExerciseType, Comments) must be provided for update.")
	}

	return violations
}

func validateComments(comments *string) []string {
	var violations []string
	if comments == nil {
		return violations
	}
	if *comments == "" {
		violations = append(violations, "Comments cannot be empty if provided.")
	}
	if utf8.RuneCountInString(*comments) > maxTextLength {
		violations = append(violations, "Comments cannot exceed 200 characters if provided.")
	}
	return violations
}

// JoinViolations flattens a violation list into the single message surfaced to
// callers.
func JoinViolations(violations []string) string {
	return strings.Join(violations, ", ")
}
