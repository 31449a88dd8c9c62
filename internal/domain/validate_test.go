package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var validationNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestCreateExerciserRequestValidate(t *testing.T) {
	valid := CreateExerciserRequest{
		Name:      "Alice",
		BirthDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name    string
		mutate  func(*CreateExerciserRequest)
		wantAny string
	}{
		{"valid", func(r *CreateExerciserRequest) {}, ""},
		{"empty name", func(r *CreateExerciserRequest) { r.Name = "" }, "Name cannot be empty."},
		{"name too short", func(r *CreateExerciserRequest) { r.Name = "A" }, "between 2 and 50"},
		{"name too long", func(r *CreateExerciserRequest) { r.Name = strings.Repeat("a", 51) }, "between 2 and 50"},
		{"missing birth date", func(r *CreateExerciserRequest) { r.BirthDate = time.Time{} }, "Birth date is required."},
		{"birth date today", func(r *CreateExerciserRequest) {
			r.BirthDate = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		}, "must be in the past"},
		{"birth date in future", func(r *CreateExerciserRequest) {
			r.BirthDate = validationNow.AddDate(1, 0, 0)
		}, "must be in the past"},
		{"too old by one day", func(r *CreateExerciserRequest) {
			r.BirthDate = time.Date(1904, time.May, 31, 0, 0, 0, 0, time.UTC)
		}, "Birth date is not valid."},
		{"zero body weight", func(r *CreateExerciserRequest) { r.BodyWeight = ptr(0.0) }, "Body weight"},
		{"negative body weight", func(r *CreateExerciserRequest) { r.BodyWeight = ptr(-10.5) }, "Body weight"},
		{"goal too long", func(r *CreateExerciserRequest) {
			r.FitnessGoal = ptr(strings.Repeat("x", 201))
		}, "Fitness goal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			violations := req.Validate(validationNow)
			if tc.wantAny == "" {
				require.Empty(t, violations)
				return
			}
			require.NotEmpty(t, violations)
			require.Contains(t, JoinViolations(violations), tc.wantAny)
		})
	}
}

func TestCreateExerciserBirthDateBoundary(t *testing.T) {
	// Exactly 120 years before today is accepted.
	req := CreateExerciserRequest{
		Name:      "Methuselah",
		BirthDate: time.Date(1904, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	require.Empty(t, req.Validate(validationNow))

	// One day older is rejected.
	req.BirthDate = req.BirthDate.AddDate(0, 0, -1)
	violations := req.Validate(validationNow)
	require.Len(t, violations, 1)
	require.Equal(t, "Birth date is not valid.", violations[0])
}

func TestUpdateExerciserRequestValidate(t *testing.T) {
	t.Run("no fields provided", func(t *testing.T) {
		req := UpdateExerciserRequest{ID: 1}
		violations := req.Validate(validationNow)
		require.Len(t, violations, 1)
		require.Contains(t, violations[0], "At least one field")
	})

	t.Run("non-positive id", func(t *testing.T) {
		req := UpdateExerciserRequest{ID: 0, Name: ptr("Alice")}
		violations := req.Validate(validationNow)
		require.Contains(t, JoinViolations(violations), "Exerciser id must be greater than 0.")
	})

	t.Run("empty name provided", func(t *testing.T) {
		req := UpdateExerciserRequest{ID: 1, Name: ptr("")}
		violations := req.Validate(validationNow)
		require.Contains(t, JoinViolations(violations), "Name cannot be empty if provided.")
	})

	t.Run("single valid field", func(t *testing.T) {
		req := UpdateExerciserRequest{ID: 1, BodyWeight: ptr(180.0)}
		require.Empty(t, req.Validate(validationNow))
	})

	t.Run("birth date boundary honored on update", func(t *testing.T) {
		req := UpdateExerciserRequest{
			ID:        1,
			BirthDate: ptr(time.Date(1904, time.June, 1, 0, 0, 0, 0, time.UTC)),
		}
		require.Empty(t, req.Validate(validationNow))

		req.BirthDate = ptr(time.Date(1904, time.May, 31, 0, 0, 0, 0, time.UTC))
		require.NotEmpty(t, req.Validate(validationNow))
	})
}

func TestCreateExerciseRequestValidate(t *testing.T) {
	valid := CreateExerciseRequest{
		ExerciserID: 1,
		StartTime:   validationNow.Add(-2 * time.Hour),
		EndTime:     validationNow.Add(-1 * time.Hour),
		Type:        TypeCardio,
	}

	t.Run("valid", func(t *testing.T) {
		require.Empty(t, valid.Validate(validationNow))
	})

	t.Run("non-positive exerciser id", func(t *testing.T) {
		req := valid
		req.ExerciserID = 0
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Exerciser id must be greater than 0.")
	})

	t.Run("future start time", func(t *testing.T) {
		req := valid
		req.StartTime = validationNow.Add(time.Hour)
		req.EndTime = validationNow.Add(2 * time.Hour)
		msg := JoinViolations(req.Validate(validationNow))
		require.Contains(t, msg, "Start time cannot be in the future.")
		require.Contains(t, msg, "End time cannot be in the future.")
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		req := valid
		req.EndTime = req.StartTime
		msg := JoinViolations(req.Validate(validationNow))
		require.Contains(t, msg, "End time must be after start time.")
		require.Contains(t, msg, "Exercise duration must be positive.")
	})

	t.Run("end before start rejected", func(t *testing.T) {
		req := valid
		req.EndTime = req.StartTime.Add(-time.Minute)
		require.NotEmpty(t, req.Validate(validationNow))
	})

	t.Run("invalid type", func(t *testing.T) {
		req := valid
		req.Type = ExerciseType(99)
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Invalid exercise type")
	})

	t.Run("empty comments provided", func(t *testing.T) {
		req := valid
		req.Comments = ptr("")
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Comments cannot be empty if provided.")
	})

	t.Run("comments too long", func(t *testing.T) {
		req := valid
		req.Comments = ptr(strings.Repeat("x", 201))
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Comments cannot exceed 200 characters")
	})
}

func TestUpdateExerciseRequestValidate(t *testing.T) {
	t.Run("no fields provided", func(t *testing.T) {
		req := UpdateExerciseRequest{ID: 1}
		violations := req.Validate(validationNow)
		require.Len(t, violations, 1)
		require.Contains(t, violations[0], "At least one field")
	})

	t.Run("non-positive id", func(t *testing.T) {
		req := UpdateExerciseRequest{ID: -1, Comments: ptr("felt strong")}
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Exercise id must be greater than 0.")
	})

	t.Run("only start provided is fine", func(t *testing.T) {
		req := UpdateExerciseRequest{ID: 1, StartTime: ptr(validationNow.Add(-time.Hour))}
		require.Empty(t, req.Validate(validationNow))
	})

	t.Run("pair ordering checked when both provided", func(t *testing.T) {
		start := validationNow.Add(-time.Hour)
		req := UpdateExerciseRequest{ID: 1, StartTime: &start, EndTime: &start}
		msg := JoinViolations(req.Validate(validationNow))
		require.Contains(t, msg, "End time must be after start time if provided.")
		require.Contains(t, msg, "Exercise duration must be positive")
	})

	t.Run("future times rejected when provided", func(t *testing.T) {
		future := validationNow.Add(time.Hour)
		req := UpdateExerciseRequest{ID: 1, StartTime: &future}
		require.Contains(t, JoinViolations(req.Validate(validationNow)),
			"Start time cannot be in the future if provided.")
	})

	t.Run("invalid type rejected when provided", func(t *testing.T) {
		bad := ExerciseType(42)
		req := UpdateExerciseRequest{ID: 1, Type: &bad}
		require.Contains(t, JoinViolations(req.Validate(validationNow)), "Invalid exercise type")
	})
}
