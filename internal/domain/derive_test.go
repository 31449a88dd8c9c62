package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAgeAt(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      int
	}{
		{"birthday already occurred", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), 24},
		{"birthday not yet occurred", time.Date(2000, time.July, 1, 0, 0, 0, 0, time.UTC), 23},
		{"birthday today", time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC), 24},
		{"birthday tomorrow", time.Date(2000, time.June, 2, 0, 0, 0, 0, time.UTC), 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AgeAt(tc.birthDate, today))
		})
	}
}

func TestTotalDuration(t *testing.T) {
	base := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	sessions := []Exercise{
		{StartTime: base, EndTime: base.Add(time.Hour)},
		{StartTime: base.Add(24 * time.Hour), EndTime: base.Add(26 * time.Hour)},
	}

	require.Equal(t, 3*time.Hour, TotalDuration(sessions))
	require.Equal(t, time.Duration(0), TotalDuration(nil))
}

func TestNewExerciserView(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

	exerciser := Exerciser{
		ID:        7,
		Name:      "Alice",
		BirthDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Exercises: []Exercise{
			{ID: 1, ExerciserID: 7, StartTime: start, EndTime: start.Add(time.Hour), Type: TypeYoga},
			{ID: 2, ExerciserID: 7, StartTime: start.Add(48 * time.Hour), EndTime: start.Add(50 * time.Hour), Type: TypeWeights},
		},
	}

	view := NewExerciserView(exerciser, today)
	require.Equal(t, 24, view.Age)
	require.Equal(t, 2, view.SessionCount)
	require.Equal(t, 3*time.Hour, view.TotalDuration)
	require.Len(t, view.Exercises, 2)
	require.Equal(t, "Yoga", view.Exercises[0].Type)
}

func TestNewExerciseViewDenormalizesOwner(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)

	exercise := Exercise{
		ID:          3,
		ExerciserID: 7,
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
		Type:        TypeCardio,
		Exerciser: &Exerciser{
			ID:        7,
			Name:      "Alice",
			BirthDate: time.Date(2000, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	view := NewExerciseView(exercise, today)
	require.Equal(t, "Alice", view.ExerciserName)
	require.Equal(t, 23, view.ExerciserAge)
	require.Equal(t, 90*time.Minute, view.Duration)
}

func TestNewExerciseViewWithoutOwnerUsesSentinel(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	view := NewExerciseView(Exercise{ID: 1, ExerciserID: 9}, today)
	require.Equal(t, UnknownExerciserName, view.ExerciserName)
	require.Zero(t, view.ExerciserAge)
}

func TestUpdateRequestsMergeOnlyProvidedFields(t *testing.T) {
	weight := 180.0
	existing := Exerciser{
		ID:         1,
		Name:       "Alice",
		BirthDate:  time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		BodyWeight: &weight,
	}

	req := UpdateExerciserRequest{ID: 1, Name: ptr("Alicia")}
	req.ApplyTo(&existing)

	require.Equal(t, "Alicia", existing.Name)
	require.Equal(t, 2000, existing.BirthDate.Year())
	require.NotNil(t, existing.BodyWeight)
	require.Equal(t, 180.0, *existing.BodyWeight)
	require.Nil(t, existing.FitnessGoal)

	start := time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC)
	session := Exercise{
		ID:          2,
		ExerciserID: 1,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Type:        TypeOther,
		Comments:    ptr("easy day"),
	}

	newEnd := start.Add(2 * time.Hour)
	sessionReq := UpdateExerciseRequest{ID: 2, EndTime: &newEnd}
	sessionReq.ApplyTo(&session)

	require.Equal(t, start, session.StartTime)
	require.Equal(t, newEnd, session.EndTime)
	require.Equal(t, TypeOther, session.Type)
	require.Equal(t, "easy day", *session.Comments)
}

func TestParseExerciseType(t *testing.T) {
	parsed, err := ParseExerciseType("cardio")
	require.NoError(t, err)
	require.Equal(t, TypeCardio, parsed)

	_, err = ParseExerciseType("swimming")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Weights, Cardio, Yoga, Calisthenics, Other")
}
