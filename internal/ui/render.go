package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TerrenceLGee/ExerciseTracker/internal/domain"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// formatDuration renders a duration as hh:mm, the way session lengths are
// shown everywhere in the menu.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func formatOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatWeight(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 1, 64)
}

func exerciserTable(views []domain.ExerciserView) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("ID", "Name", "Age", "Weight", "Goal", "Sessions", "Total Time")

	for _, v := range views {
		t.Row(
			strconv.FormatInt(v.ID, 10),
			v.Name,
			strconv.Itoa(v.Age),
			formatWeight(v.BodyWeight),
			formatOptional(v.FitnessGoal),
			strconv.Itoa(v.SessionCount),
			formatDuration(v.TotalDuration),
		)
	}
	return t.Render()
}

func exerciseTable(views []domain.ExerciseView) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("ID", "Exerciser", "Age", "Type", "Start", "End", "Duration", "Comments")

	for _, v := range views {
		t.Row(
			strconv.FormatInt(v.ID, 10),
			v.ExerciserName,
			strconv.Itoa(v.ExerciserAge),
			v.Type,
			v.StartTime.Format(DateTimeFormat),
			v.EndTime.Format(DateTimeFormat),
			formatDuration(v.Duration),
			formatOptional(v.Comments),
		)
	}
	return t.Render()
}
