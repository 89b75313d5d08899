// Package pipeline turns ledger rows and session entities into the figures
// the dashboard and the CLI display.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/model"
)

// SourceStats totals incomes and expenses separately.
func SourceStats(txs []model.Transaction) model.SourceStats {
	var s model.SourceStats
	for _, t := range txs {
		switch t.Type {
		case model.TxIncome:
			s.IncomeTotal = s.IncomeTotal.Add(t.Amount)
			s.IncomeCount++
		case model.TxExpense:
			s.ExpenseTotal = s.ExpenseTotal.Add(t.Amount)
			s.ExpenseCount++
		}
	}
	return s
}

// CategoryBreakdown sums expenses per category, largest first.
func CategoryBreakdown(txs []model.Transaction) []model.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var all decimal.Decimal
	for _, t := range txs {
		if t.Type != model.TxExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		all = all.Add(t.Amount)
	}

	result := make([]model.CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		ct := model.CategoryTotal{Category: cat, Total: total}
		if all.IsPositive() {
			ct.Share = total.Div(all).InexactFloat64()
		}
		result = append(result, ct)
	}

	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// GroupByDay buckets transactions by calendar day, newest day first, keeping
// the input order inside a day. Labels are relative to now.
func GroupByDay(txs []model.Transaction, now time.Time) []model.DayGroup {
	today := dayOf(now)
	idx := make(map[time.Time]int)
	var groups []model.DayGroup

	for _, t := range txs {
		d := dayOf(t.Date)
		i, ok := idx[d]
		if !ok {
			i = len(groups)
			idx[d] = i
			groups = append(groups, model.DayGroup{Label: dayLabel(d, today), Date: d})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

func dayLabel(d, today time.Time) string {
	switch {
	case d.Equal(today):
		return "Сегодня"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Вчера"
	}
	return cli.FormatDayMonth(d)
}

// BudgetProgress compares each budget with the expenses of its category
// booked inside the budget's date range.
func BudgetProgress(budgets []model.Budget, txs []model.Transaction) []model.BudgetProgress {
	result := make([]model.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		start, end := dayOf(b.StartDate), dayOf(b.EndDate)
		var spent decimal.Decimal
		for _, t := range txs {
			if t.Type != model.TxExpense || t.Category != b.Category {
				continue
			}
			d := dayOf(t.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
			spent = spent.Add(t.Amount)
		}

		bp := model.BudgetProgress{
			Budget:    b,
			Spent:     spent,
			Remaining: decimal.Max(b.Amount.Sub(spent), decimal.Zero),
			Over:      spent.GreaterThan(b.Amount),
		}
		switch {
		case b.Amount.IsPositive():
			bp.Ratio = spent.Div(b.Amount).InexactFloat64()
		case spent.IsPositive():
			bp.Ratio = 1
		}
		result = append(result, bp)
	}
	return result
}

// GoalProgress reports how much of the goal is saved and how many days are
// left until its end date.
func GoalProgress(g model.Goal, now time.Time) model.GoalProgress {
	gp := model.GoalProgress{Goal: g}
	if g.Target.IsPositive() {
		gp.Ratio = g.Current.Div(g.Target).InexactFloat64()
	}
	today := dayOf(now)
	end := dayOf(g.EndDate)
	if end.After(today) {
		gp.DaysLeft = int(end.Sub(today).Hours()/24 + 0.5)
	}
	return gp
}

// TotalBalance sums the balances of all accounts.
func TotalBalance(accounts []model.Account) decimal.Decimal {
	var total decimal.Decimal
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
