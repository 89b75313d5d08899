package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/pipeline"
	"github.com/theirongolddev/lima/internal/store"
	"github.com/theirongolddev/lima/internal/tui/components"
	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var sources = [...]struct {
	source store.Source
	label  string
}{
	{store.SourceAll, "Все"},
	{store.SourceIncome, "Доходы"},
	{store.SourceExpense, "Расходы"},
}

type txState struct {
	source     int
	categories map[string]bool
	cursor     int // category chip under the cursor
	searching  bool
	search     textinput.Model
	query      string
	scroll     int
	rows       []model.Transaction
}

func newTxState() txState {
	ti := textinput.New()
	ti.Placeholder = "магазин..."
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/ "
	return txState{categories: make(map[string]bool), search: ti}
}

func (s txState) filter() store.Filter {
	f := store.Filter{Source: sources[s.source].source}
	for name, on := range s.categories {
		if on {
			f.Categories = append(f.Categories, name)
		}
	}
	return f
}

// reloadTransactions queries the ledger with the current filters.
func (a *App) reloadTransactions() {
	rows, err := a.ledger.Transactions(a.tx.filter())
	if err != nil {
		a.logger.Error("loading transactions", zap.Error(err))
		a.notice = "Не удалось загрузить операции"
		rows = nil
	}
	a.tx.rows = rows
	a.tx.scroll = 0
}

func (a App) updateTransactions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.tx.searching {
		return a.updateSearch(msg)
	}

	cats := a.snap.Categories
	switch msg.String() {
	case "esc":
		if a.tx.query != "" {
			a.tx.query = ""
			a.tx.search.SetValue("")
			return a, nil
		}
		return a, a.step(a.nav.TransactionsBack())
	case "q":
		return a, tea.Quit
	case "1", "2", "3":
		a.tx.source = int(msg.String()[0] - '1')
		a.reloadTransactions()
	case "left", "h":
		if a.tx.cursor > 0 {
			a.tx.cursor--
		}
	case "right", "l":
		if a.tx.cursor < len(cats)-1 {
			a.tx.cursor++
		}
	case " ":
		if a.tx.cursor < len(cats) {
			name := cats[a.tx.cursor].Name
			next := make(map[string]bool, len(a.tx.categories)+1)
			for k, v := range a.tx.categories {
				next[k] = v
			}
			next[name] = !next[name]
			a.tx.categories = next
			a.reloadTransactions()
		}
	case "x":
		a.tx.categories = make(map[string]bool)
		a.reloadTransactions()
	case "/":
		a.tx.searching = true
		return a, a.tx.search.Focus()
	case "down", "j":
		a.tx.scroll++
	case "up", "k":
		if a.tx.scroll > 0 {
			a.tx.scroll--
		}
	}
	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.tx.searching = false
		a.tx.query = strings.TrimSpace(a.tx.search.Value())
		a.tx.scroll = 0
		a.tx.search.Blur()
		return a, nil
	case "esc":
		a.tx.searching = false
		a.tx.search.SetValue(a.tx.query)
		a.tx.search.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.tx.search, cmd = a.tx.search.Update(msg)
	return a, cmd
}

func (a App) viewTransactions(cw, h int) string {
	t := theme.Active

	segs := make([]components.Segment, len(sources))
	for i, s := range sources {
		segs[i] = components.Segment{Label: s.label, Key: fmt.Sprintf("%d", i+1)}
	}
	chips := make([]components.Chip, len(a.snap.Categories))
	for i, c := range a.snap.Categories {
		chips[i] = components.Chip{Label: c.Name, On: a.tx.categories[c.Name], Color: bankColor(c.Color)}
	}

	var header strings.Builder
	header.WriteString(components.RenderSegments(segs, a.tx.source))
	header.WriteString("\n")
	header.WriteString(components.RenderChips(chips, a.tx.cursor))
	header.WriteString("\n")
	if a.tx.searching || a.tx.query != "" {
		header.WriteString(a.tx.search.View())
		header.WriteString("\n")
	}

	stats := pipeline.SourceStats(a.tx.rows)
	header.WriteString(components.MetricCardRow([]components.Metric{
		{Label: fmt.Sprintf("Доходы · %d", stats.IncomeCount), Value: cli.FormatMoney(stats.IncomeTotal, a.currency), Color: t.Green},
		{Label: fmt.Sprintf("Расходы · %d", stats.ExpenseCount), Value: cli.FormatMoney(stats.ExpenseTotal, a.currency), Color: t.Orange},
	}, cw))

	listW := cw
	var breakdown string
	if cw >= 90 {
		split := components.LayoutRow(cw, 2)
		listW = split[0]
		breakdown = components.ContentCard("По категориям", a.renderBreakdown(components.CardInnerWidth(split[1])), split[1])
	}

	headerStr := header.String()
	listH := max(h-lipgloss.Height(headerStr)-3, 3)
	list := components.ContentCard("Операции", a.renderTxList(components.CardInnerWidth(listW), listH), listW)

	body := list
	if breakdown != "" {
		body = components.CardRow([]string{list, breakdown})
	}
	return headerStr + "\n" + body
}

// renderTxList lists the filtered rows grouped by day, or ranked by the
// merchant search when a query is set.
func (a App) renderTxList(w, h int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)

	var lines []string
	if a.tx.query != "" {
		for _, tx := range pipeline.SearchMerchants(a.tx.rows, a.tx.query) {
			lines = append(lines, a.txLine(tx, w))
		}
	} else {
		for _, g := range pipeline.GroupByDay(a.tx.rows, a.now()) {
			lines = append(lines, label.Render(g.Label))
			for _, tx := range g.Transactions {
				lines = append(lines, a.txLine(tx, w))
			}
		}
	}
	if len(lines) == 0 {
		return dim.Render("Ничего не найдено")
	}

	start := min(a.tx.scroll, max(len(lines)-h, 0))
	end := min(start+h, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (a App) renderBreakdown(w int) string {
	totals := pipeline.CategoryBreakdown(a.tx.rows)
	if len(totals) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("Нет расходов")
	}
	bars := make([]components.Bar, len(totals))
	for i, c := range totals {
		bars[i] = components.Bar{
			Label: c.Category,
			Value: c.Total.InexactFloat64(),
			Text:  cli.FormatPercent(c.Share),
			Color: bankColor(a.snap.CategoryColor(c.Category)),
		}
	}
	return components.HorizontalBars(bars, w)
}
