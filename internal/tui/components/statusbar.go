package components

import (
	"strings"

	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// KeyHint is a key and what it does on the current screen.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the bottom status bar: key hints on the left and
// an optional notice (validation errors, toasts) on the right.
func RenderStatusBar(width int, hints []KeyHint, notice string) string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+space.Render(" ")+descStyle.Render(h.Desc))
	}
	left := space.Render(" ") + strings.Join(parts, space.Render("  "))

	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice) + space.Render(" ")
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + space.Render(strings.Repeat(" ", padding)) + right
}
