package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/pipeline"
	"github.com/theirongolddev/lima/internal/tui/components"
	"github.com/theirongolddev/lima/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return a, a.step(a.nav.DashboardAddBank())
	case "t", "enter":
		return a, a.step(a.nav.ViewTransactions())
	case "b":
		return a, a.step(a.nav.OpenSetBudget())
	case "g":
		return a, a.step(a.nav.OpenCreateGoal())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewDashboard(cw int) string {
	t := theme.Active
	snap := a.snap

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Общий баланс", Value: cli.FormatMoney(snap.TotalBalance, a.currency)},
		{Label: "Потрачено за месяц", Value: cli.FormatMoney(snap.MonthSpent, a.currency), Color: t.Orange},
	}, cw))
	b.WriteString("\n")

	if len(snap.Accounts) > 0 {
		widths := components.LayoutRow(cw, len(snap.Accounts))
		cards := make([]string, len(snap.Accounts))
		for i, acc := range snap.Accounts {
			cards[i] = components.AccountCard(acc.BankName,
				cli.FormatMoney(acc.Balance, a.currency), bankColor(acc.Color), widths[i])
		}
		b.WriteString(components.CardRow(cards))
		b.WriteString("\n")
	}

	half := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Последние операции", a.renderRecent(components.CardInnerWidth(half[0])), half[0]),
		components.ContentCard("Траты за месяц", a.renderSpendingChart(components.CardInnerWidth(half[1])), half[1]),
	}))

	if budgets := a.sessions.ListBudgets(); len(budgets) > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Бюджеты", a.renderBudgets(budgets, components.CardInnerWidth(cw)), cw))
	}
	if goals := a.sessions.ListGoals(); len(goals) > 0 {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Цели", a.renderGoals(goals, components.CardInnerWidth(cw)), cw))
	}
	return b.String()
}

func (a App) renderRecent(w int) string {
	if len(a.snap.Recent) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("Нет операций")
	}
	lines := make([]string, len(a.snap.Recent))
	for i, tx := range a.snap.Recent {
		lines[i] = a.txLine(tx, w)
	}
	return strings.Join(lines, "\n")
}

// txLine renders merchant and category on the left and the signed amount
// right-aligned within w.
func (a App) txLine(tx model.Transaction, w int) string {
	t := theme.Active
	amountColor := t.TextPrimary
	if tx.Type == model.TxIncome {
		amountColor = t.Green
	}
	amount := cli.FormatSignedMoney(tx.Amount, tx.Type == model.TxIncome, a.currency)
	dot := lipgloss.NewStyle().Foreground(bankColor(a.snap.CategoryColor(tx.Category))).Background(t.Surface).Render("●")
	left := dot + lipgloss.NewStyle().Background(t.Surface).Foreground(t.TextPrimary).Render(" "+tx.Merchant)
	right := lipgloss.NewStyle().Foreground(amountColor).Background(t.Surface).Render(amount)
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap)) + right
}

func (a App) renderSpendingChart(w int) string {
	t := theme.Active
	points := a.snap.Chart
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("Нет данных")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Day)
		ys[i] = p.Amount.InexactFloat64()
	}
	spark := components.Sparkline(components.Resample(xs, ys, w), t.Accent)
	axis := fmt.Sprintf("%d–%d число", points[0].Day, points[len(points)-1].Day)
	return spark + "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(axis)
}

func (a App) renderBudgets(budgets []model.Budget, w int) string {
	progress := pipeline.BudgetProgress(budgets, a.snap.Transactions)
	labelW := 0
	for _, p := range progress {
		labelW = max(labelW, lipgloss.Width(p.Budget.Category))
	}
	barW := max(w-labelW-8, 10)

	muted := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Background(theme.Active.Surface)
	lines := make([]string, 0, len(progress)*2)
	for _, p := range progress {
		lines = append(lines,
			components.BudgetBar(p.Budget.Category, p.Ratio, labelW, barW),
			muted.Render(fmt.Sprintf("%s из %s · %s – %s",
				cli.FormatMoney(p.Spent, a.currency),
				cli.FormatMoney(p.Budget.Amount, a.currency),
				cli.FormatDate(p.Budget.StartDate),
				cli.FormatDate(p.Budget.EndDate))),
		)
	}
	return strings.Join(lines, "\n")
}

func (a App) renderGoals(goals []model.Goal, w int) string {
	t := theme.Active
	now := a.now()
	labelW := 0
	for _, g := range goals {
		labelW = max(labelW, lipgloss.Width(g.Name))
	}
	barW := max(w-labelW-8, 10)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	lines := make([]string, 0, len(goals)*2)
	for _, g := range goals {
		p := pipeline.GoalProgress(g, now)
		lines = append(lines,
			components.RatioBar(g.Name, p.Ratio, t.Accent, labelW, barW),
			muted.Render(fmt.Sprintf("%s из %s · осталось дней: %d · %s",
				cli.FormatMoney(g.Current, a.currency),
				cli.FormatMoney(g.Target, a.currency),
				p.DaysLeft,
				g.AutoReplenishment.Label())),
		)
	}
	return strings.Join(lines, "\n")
}
