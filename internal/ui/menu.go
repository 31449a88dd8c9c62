// Package ui implements the interactive console menu. It builds request
// payloads from prompts, invokes the services and renders their results; all
// business rules live below it.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TerrenceLGee/ExerciseTracker/internal/correlation"
	"github.com/TerrenceLGee/ExerciseTracker/internal/domain"
	"github.com/TerrenceLGee/ExerciseTracker/internal/result"
)

const menuText = `
Exercise Tracker
 1. Add exerciser
 2. Update exerciser
 3. Delete exerciser
 4. View exerciser by id
 5. View all exercisers
 6. Track exercise session
 7. Update exercise session
 8. Delete exercise session
 9. View exercise session by id
10. View exercise sessions by exerciser
11. View all exercise sessions
 0. Exit
`

// Menu drives the interactive loop.
type Menu struct {
	exercisers *domain.ExerciserService
	exercises  *domain.ExerciseService
	p          *prompter
	out        io.Writer
	handlers   map[int64]func(context.Context) error
}

// New constructs a Menu reading from in and writing to out.
func New(exercisers *domain.ExerciserService, exercises *domain.ExerciseService, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		exercisers: exercisers,
		exercises:  exercises,
		p:          newPrompter(in, out),
		out:        out,
	}
	m.handlers = map[int64]func(context.Context) error{
		1:  m.addExerciser,
		2:  m.updateExerciser,
		3:  m.deleteExerciser,
		4:  m.viewExerciserByID,
		5:  m.viewAllExercisers,
		6:  m.trackSession,
		7:  m.updateSession,
		8:  m.deleteSession,
		9:  m.viewSessionByID,
		10: m.viewSessionsByExerciser,
		11: m.viewAllSessions,
	}
	return m
}

// Run loops until the user exits, the input ends or the context is canceled.
// Each interaction gets its own correlation id.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			m.notice("Operation canceled. Exiting.")
			return nil
		}

		fmt.Fprint(m.out, menuText)
		choice, err := m.p.int64("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == 0 {
			m.success("Goodbye")
			return nil
		}

		handler, ok := m.handlers[choice]
		if !ok {
			m.notice(fmt.Sprintf("No option %d available.", choice))
			continue
		}

		interactionCtx := correlation.WithID(ctx, correlation.NewID())
		if err := handler(interactionCtx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) addExerciser(ctx context.Context) error {
	name, err := m.p.line("Enter name: ")
	if err != nil {
		return err
	}

	birthDate, err := m.p.date("Enter birth date")
	if err != nil {
		return err
	}

	req := domain.CreateExerciserRequest{Name: name, BirthDate: birthDate}

	if wants, err := m.p.yesNo("Enter body weight?"); err != nil {
		return err
	} else if wants {
		weight, err := m.p.float64("Enter body weight in pounds: ")
		if err != nil {
			return err
		}
		req.BodyWeight = &weight
	}

	if wants, err := m.p.yesNo("Enter fitness goal?"); err != nil {
		return err
	} else if wants {
		goal, err := m.p.line("Enter fitness goal: ")
		if err != nil {
			return err
		}
		req.FitnessGoal = &goal
	}

	if confirmed, err := m.p.yesNo(fmt.Sprintf("Confirm adding %s?", name)); err != nil {
		return err
	} else if !confirmed {
		m.notice("Addition canceled.")
		return nil
	}

	res := m.exercisers.Create(ctx, req)
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}
	m.success(fmt.Sprintf("Exerciser created with id %d.", res.Value()))
	return nil
}

func (m *Menu) updateExerciser(ctx context.Context) error {
	id, err := m.p.int64("Enter exerciser id: ")
	if err != nil {
		return err
	}
	req := domain.UpdateExerciserRequest{ID: id}

	if wants, err := m.p.yesNo("Update name?"); err != nil {
		return err
	} else if wants {
		name, err := m.p.line("Enter new name: ")
		if err != nil {
			return err
		}
		req.Name = &name
	}

	if wants, err := m.p.yesNo("Update birth date?"); err != nil {
		return err
	} else if wants {
		birthDate, err := m.p.date("Enter new birth date")
		if err != nil {
			return err
		}
		req.BirthDate = &birthDate
	}

	if wants, err := m.p.yesNo("Update body weight?"); err != nil {
		return err
	} else if wants {
		weight, err := m.p.float64("Enter new body weight in pounds: ")
		if err != nil {
			return err
		}
		req.BodyWeight = &weight
	}

	if wants, err := m.p.yesNo("Update fitness goal?"); err != nil {
		return err
	} else if wants {
		goal, err := m.p.line("Enter new fitness goal: ")
		if err != nil {
			return err
		}
		req.FitnessGoal = &goal
	}

	m.report(m.exercisers.Update(ctx, req), "Exerciser updated.")
	return nil
}

func (m *Menu) deleteExerciser(ctx context.Context) error {
	id, err := m.p.int64("Enter exerciser id: ")
	if err != nil {
		return err
	}

	if confirmed, err := m.p.yesNo("Deleting an exerciser also deletes all of their sessions. Continue?"); err != nil {
		return err
	} else if !confirmed {
		m.notice("Deletion canceled.")
		return nil
	}

	m.report(m.exercisers.Delete(ctx, id), "Exerciser deleted.")
	return nil
}

func (m *Menu) viewExerciserByID(ctx context.Context) error {
	id, err := m.p.int64("Enter exerciser id: ")
	if err != nil {
		return err
	}

	res := m.exercisers.GetByID(ctx, id)
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}

	view := res.Value()
	fmt.Fprintln(m.out, exerciserTable([]domain.ExerciserView{view}))
	if len(view.Exercises) > 0 {
		fmt.Fprintln(m.out, exerciseTable(view.Exercises))
	}
	return nil
}

func (m *Menu) viewAllExercisers(ctx context.Context) error {
	res := m.exercisers.GetAll(ctx)
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}
	if len(res.Value()) == 0 {
		m.notice("No exercisers found.")
		return nil
	}
	fmt.Fprintln(m.out, exerciserTable(res.Value()))
	return nil
}

func (m *Menu) trackSession(ctx context.Context) error {
	exerciserID, err := m.p.int64("Enter exerciser id: ")
	if err != nil {
		return err
	}

	start, err := m.p.dateTime("Enter start time")
	if err != nil {
		return err
	}
	end, err := m.p.dateTime("Enter end time")
	if err != nil {
		return err
	}

	exerciseType, err := m.promptType()
	if err != nil {
		return err
	}

	req := domain.CreateExerciseRequest{
		ExerciserID: exerciserID,
		StartTime:   start,
		EndTime:     end,
		Type:        exerciseType,
	}

	if wants, err := m.p.yesNo("Add comments?"); err != nil {
		return err
	} else if wants {
		comments, err := m.p.line("Enter comments: ")
		if err != nil {
			return err
		}
		req.Comments = &comments
	}

	res := m.exercises.Create(ctx, req)
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}
	m.success(fmt.Sprintf("Exercise session created with id %d.", res.Value()))
	return nil
}

func (m *Menu) updateSession(ctx context.Context) error {
	id, err := m.p.int64("Enter exercise session id: ")
	if err != nil {
		return err
	}
	req := domain.UpdateExerciseRequest{ID: id}

	if wants, err := m.p.yesNo("Update start time?"); err != nil {
		return err
	} else if wants {
		start, err := m.p.dateTime("Enter new start time")
		if err != nil {
			return err
		}
		req.StartTime = &start
	}

	if wants, err := m.p.yesNo("Update end time?"); err != nil {
		return err
	} else if wants {
		end, err := m.p.dateTime("Enter new end time")
		if err != nil {
			return err
		}
		req.EndTime = &end
	}

	if wants, err := m.p.yesNo("Update exercise type?"); err != nil {
		return err
	} else if wants {
		exerciseType, err := m.promptType()
		if err != nil {
			return err
		}
		req.Type = &exerciseType
	}

	if wants, err := m.p.yesNo("Update comments?"); err != nil {
		return err
	} else if wants {
		comments, err := m.p.line("Enter new comments: ")
		if err != nil {
			return err
		}
		req.Comments = &comments
	}

	m.report(m.exercises.Update(ctx, req), "Exercise session updated.")
	return nil
}

func (m *Menu) deleteSession(ctx context.Context) error {
	id, err := m.p.int64("Enter exercise session id: ")
	if err != nil {
		return err
	}

	if confirmed, err := m.p.yesNo("Confirm deletion?"); err != nil {
		return err
	} else if !confirmed {
		m.notice("Deletion canceled.")
		return nil
	}

	m.report(m.exercises.Delete(ctx, id), "Exercise session deleted.")
	return nil
}

func (m *Menu) viewSessionByID(ctx context.Context) error {
	id, err := m.p.int64("Enter exercise session id: ")
	if err != nil {
		return err
	}

	res := m.exercises.GetByID(ctx, id)
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}
	fmt.Fprintln(m.out, exerciseTable([]domain.ExerciseView{res.Value()}))
	return nil
}

func (m *Menu) viewSessionsByExerciser(ctx context.Context) error {
	exerciserID, err := m.p.int64("Enter exerciser id: ")
	if err != nil {
		return err
	}
	return m.renderSessions(m.exercises.GetByExerciserID(ctx, exerciserID))
}

func (m *Menu) viewAllSessions(ctx context.Context) error {
	return m.renderSessions(m.exercises.GetAll(ctx))
}

func (m *Menu) renderSessions(res result.Result[[]domain.ExerciseView]) error {
	if !res.IsOk() {
		m.failure(res.Message())
		return nil
	}
	if len(res.Value()) == 0 {
		m.notice("No exercise sessions found.")
		return nil
	}
	fmt.Fprintln(m.out, exerciseTable(res.Value()))
	return nil
}

func (m *Menu) promptType() (domain.ExerciseType, error) {
	for {
		text, err := m.p.line(fmt.Sprintf("Enter exercise type (%s): ",
			strings.Join(domain.ExerciseTypeNames(), ", ")))
		if err != nil {
			return 0, err
		}
		exerciseType, err := domain.ParseExerciseType(text)
		if err != nil {
			fmt.Fprintln(m.out, err.Error())
			continue
		}
		return exerciseType, nil
	}
}

func (m *Menu) report(res result.Result[result.Unit], okMessage string) {
	if res.IsOk() {
		m.success(okMessage)
		return
	}
	m.failure(res.Message())
}

func (m *Menu) success(message string) {
	fmt.Fprintln(m.out, successStyle.Render(message))
}

func (m *Menu) failure(message string) {
	fmt.Fprintln(m.out, failureStyle.Render(message))
}

func (m *Menu) notice(message string) {
	fmt.Fprintln(m.out, noticeStyle.Render(message))
}
