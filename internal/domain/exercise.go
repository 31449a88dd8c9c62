package domain

import (
	"fmt"
	"strings"
	"time"
)

// Exercise is a single recorded workout session owned by one Exerciser.
type Exercise struct {
	ID          int64
	ExerciserID int64
	StartTime   time.Time
	EndTime     time.Time
	Type        ExerciseType
	Comments    *string

	// Exerciser is the owning relation, populated by repositories on reads.
	Exerciser *Exerciser
}

// Duration is the derived session length, never persisted.
func (e Exercise) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// ExerciseType enumerates the kinds of tracked sessions.
type ExerciseType int

const (
	TypeWeights ExerciseType = iota
	TypeCardio
	TypeYoga
	TypeCalisthenics
	TypeOther
)

// ExerciseTypes is the closed set of valid members, used for both validation
// and display-name lookup.
var ExerciseTypes = []ExerciseType{TypeWeights, TypeCardio, TypeYoga, TypeCalisthenics, TypeOther}

var exerciseTypeNames = map[ExerciseType]string{
	TypeWeights:      "Weights",
	TypeCardio:       "Cardio",
	TypeYoga:         "Yoga",
	TypeCalisthenics: "Calisthenics",
	TypeOther:        "Other",
}

func (t ExerciseType) String() string {
	if name, ok := exerciseTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ExerciseType(%d)", int(t))
}

// Valid reports whether t is a member of the enumerated set.
func (t ExerciseType) Valid() bool {
	_, ok := exerciseTypeNames[t]
	return ok
}

// ExerciseTypeNames returns the display names of all valid members in order.
func ExerciseTypeNames() []string {
	names := make([]string, 0, len(ExerciseTypes))
	for _, t := range ExerciseTypes {
		names = append(names, t.String())
	}
	return names
}

// ParseExerciseType resolves a display name (case-insensitive) to its member.
func ParseExerciseType(name string) (ExerciseType, error) {
	for _, t := range ExerciseTypes {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown exercise type %q, must be one of: %s",
		name, strings.Join(ExerciseTypeNames(), ", "))
}
