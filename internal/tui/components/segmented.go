package components

import (
	"strings"

	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one option of a segmented control.
type Segment struct {
	Label string
	Key   string // shortcut shown in brackets when inactive; may be empty
}

// RenderSegments renders a one-line segmented control with the active
// option highlighted.
func RenderSegments(segments []Segment, active int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	parts := make([]string, len(segments))
	for i, s := range segments {
		if i == active {
			parts[i] = activeStyle.Render(s.Label)
			continue
		}
		label := s.Label
		if s.Key != "" {
			label = keyStyle.Render("["+s.Key+"]") + lipgloss.NewStyle().Background(t.Surface).Render(" ") + s.Label
		}
		parts[i] = inactiveStyle.Render(label)
	}
	return strings.Join(parts, " ")
}

// Chip is a toggleable label such as a category filter.
type Chip struct {
	Label string
	On    bool
	Color lipgloss.Color
}

// RenderChips renders toggle chips; the chip under the cursor is
// underlined. A negative cursor disables the underline.
func RenderChips(chips []Chip, cursor int) string {
	t := theme.Active
	parts := make([]string, len(chips))
	for i, c := range chips {
		color := c.Color
		if color == "" {
			color = t.Accent
		}
		mark := "○ "
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
		if c.On {
			mark = "● "
			style = style.Foreground(color).Bold(true)
		}
		if i == cursor {
			style = style.Underline(true).Background(t.SurfaceHover)
		}
		parts[i] = style.Render(mark + c.Label)
	}
	return strings.Join(parts, " ")
}
