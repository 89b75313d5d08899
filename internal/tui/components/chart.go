package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// Resample spreads (x, y) samples over width columns by linear
// interpolation. xs must be ascending.
func Resample(xs, ys []float64, width int) []float64 {
	if len(xs) == 0 || len(xs) != len(ys) || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(xs) == 1 || width == 1 {
		for i := range out {
			out[i] = ys[len(ys)-1]
		}
		return out
	}
	lo, hi := xs[0], xs[len(xs)-1]
	j := 0
	for i := range out {
		x := lo + (hi-lo)*float64(i)/float64(width-1)
		for j < len(xs)-2 && x > xs[j+1] {
			j++
		}
		span := xs[j+1] - xs[j]
		if span <= 0 {
			out[i] = ys[j+1]
			continue
		}
		f := min(max((x-xs[j])/span, 0), 1)
		out[i] = ys[j] + (ys[j+1]-ys[j])*f
	}
	return out
}

// Bar is one row of HorizontalBars.
type Bar struct {
	Label string
	Value float64
	Text  string // right-hand annotation, e.g. a formatted amount
	Color lipgloss.Color
}

// HorizontalBars renders one proportional bar per row, scaled to the
// largest value.
func HorizontalBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	peak := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		textW = max(textW, lipgloss.Width(b.Text))
		peak = max(peak, b.Value)
	}
	if peak <= 0 {
		peak = 1
	}
	barMax := max(width-labelW-textW-2, 4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := int(b.Value / peak * float64(barMax))
		if b.Value > 0 {
			n = max(n, 1)
		}
		color := b.Color
		if color == "" {
			color = t.Accent
		}
		barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)) +
			space.Render(" ") +
			barStyle.Render(strings.Repeat("█", n)) +
			space.Render(strings.Repeat(" ", barMax-n+1)) +
			textStyle.Render(fmt.Sprintf("%*s", textW, b.Text))
	}
	return strings.Join(lines, "\n")
}
