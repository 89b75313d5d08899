package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRatio colors spending against a limit: green while comfortable,
// yellow from 70%, orange from 90% and red once the limit is exceeded.
func ColorForRatio(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio > 1:
		return t.Red
	case ratio >= 0.9:
		return t.Orange
	case ratio >= 0.7:
		return t.Yellow
	default:
		return t.Green
	}
}

// RatioBar renders a labeled bar for ratio (clamped to [0, 1] for drawing)
// followed by the unclamped percentage.
func RatioBar(label string, ratio float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	fill := min(max(ratio, 0), 1)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fill) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100))
}

// BudgetBar is a RatioBar colored by ColorForRatio.
func BudgetBar(label string, ratio float64, labelW, barWidth int) string {
	return RatioBar(label, ratio, ColorForRatio(ratio), labelW, barWidth)
}

// StepDots renders one dot per step with the current step highlighted and
// finished steps filled.
func StepDots(current, total int) string {
	t := theme.Active
	done := lipgloss.NewStyle().Foreground(t.Accent)
	active := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	todo := lipgloss.NewStyle().Foreground(t.TextDim)

	dots := make([]string, total)
	for i := range dots {
		switch {
		case i < current:
			dots[i] = done.Render("●")
		case i == current:
			dots[i] = active.Render("◉")
		default:
			dots[i] = todo.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
