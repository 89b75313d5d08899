package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/lima/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{10, 79, 80, 121} {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow(10, 0) != nil")
	}
}

func TestCardRowPadsShorterCards(t *testing.T) {
	theme.SetActive("lima-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)
	tallLines := lipgloss.Height(tallCard)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i, line := range lines {
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no ANSI codes: %q", i, line)
		}
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
	}
}

func TestAccountCard(t *testing.T) {
	card := AccountCard("Т-Банк", "28 204,43 ₽", "#EAB308", 30)
	if w := lipgloss.Width(card); w != 30 {
		t.Fatalf("width = %d, want 30", w)
	}
	if !strings.Contains(card, "Т-Банк") || !strings.Contains(card, "28 204,43 ₽") {
		t.Fatalf("card missing content:\n%s", card)
	}
}

func TestColorForRatio(t *testing.T) {
	th := theme.Active
	tests := []struct {
		ratio float64
		want  lipgloss.Color
	}{
		{0, th.Green},
		{0.69, th.Green},
		{0.7, th.Yellow},
		{0.95, th.Orange},
		{1, th.Orange},
		{1.01, th.Red},
	}
	for _, tt := range tests {
		if got := ColorForRatio(tt.ratio); got != tt.want {
			t.Errorf("ColorForRatio(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestBudgetBarShowsUnclampedPercent(t *testing.T) {
	bar := BudgetBar("Еда", 1.58, 10, 20)
	if !strings.Contains(bar, "158%") {
		t.Fatalf("bar = %q, want 158%%", bar)
	}
}

func TestStepDots(t *testing.T) {
	got := StepDots(1, 3)
	if strings.Count(got, "●") != 1 || strings.Count(got, "◉") != 1 || strings.Count(got, "○") != 1 {
		t.Fatalf("StepDots(1, 3) = %q", got)
	}
}

func TestResample(t *testing.T) {
	got := Resample([]float64{1, 30}, []float64{0, 290}, 30)
	if len(got) != 30 || got[0] != 0 || got[29] != 290 {
		t.Fatalf("Resample endpoints = %v", got)
	}
	if got[1] < 9.99 || got[1] > 10.01 {
		t.Fatalf("Resample[1] = %v, want 10", got[1])
	}
	if Resample(nil, nil, 10) != nil {
		t.Fatal("Resample(nil) != nil")
	}
	flat := Resample([]float64{5}, []float64{7}, 3)
	if flat[0] != 7 || flat[2] != 7 {
		t.Fatalf("single-point Resample = %v", flat)
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 50, 100}, theme.Active.Accent)
	if !strings.Contains(got, "▁") || !strings.Contains(got, "█") {
		t.Fatalf("Sparkline = %q", got)
	}
	if Sparkline(nil, theme.Active.Accent) != "" {
		t.Fatal("Sparkline(nil) not empty")
	}
}

func TestHorizontalBarsScaleToPeak(t *testing.T) {
	out := HorizontalBars([]Bar{
		{Label: "Еда", Value: 3020, Text: "3 020 ₽"},
		{Label: "Косметика", Value: 2940, Text: "2 940 ₽"},
		{Label: "Такси", Value: 0, Text: "0 ₽"},
	}, 50)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if strings.Count(lines[0], "█") < strings.Count(lines[1], "█") {
		t.Fatal("larger value drew a shorter bar")
	}
	if strings.Contains(lines[2], "█") {
		t.Fatal("zero value drew a bar")
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != lipgloss.Width(lines[0]) {
			t.Errorf("line %d width = %d, want %d", i, w, lipgloss.Width(lines[0]))
		}
	}
}

func TestRenderSegmentsAndChips(t *testing.T) {
	seg := RenderSegments([]Segment{{Label: "Все", Key: "1"}, {Label: "Доходы", Key: "2"}}, 0)
	if !strings.Contains(seg, "[2]") || strings.Contains(seg, "[1]") {
		t.Fatalf("segments = %q", seg)
	}
	chips := RenderChips([]Chip{{Label: "Еда", On: true}, {Label: "Косметика"}}, -1)
	if !strings.Contains(chips, "● Еда") || !strings.Contains(chips, "○ Косметика") {
		t.Fatalf("chips = %q", chips)
	}
	// The cursor chip is underlined rune by rune, so compare visible text only.
	if got := RenderChips([]Chip{{Label: "Еда"}}, 0); lipgloss.Width(got) != lipgloss.Width("○ Еда")+2 {
		t.Fatalf("cursor chip width = %d", lipgloss.Width(got))
	}
}

func TestRenderStatusBarFillsWidth(t *testing.T) {
	bar := RenderStatusBar(80, []KeyHint{{"enter", "далее"}, {"esc", "назад"}}, "Ошибка")
	if w := lipgloss.Width(bar); w != 80 {
		t.Fatalf("width = %d, want 80", w)
	}
}
