package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/store"
)

// RecentLimit is how many transactions the dashboard lists.
const RecentLimit = 3

// Snapshot is everything the dashboard reads from the ledger.
type Snapshot struct {
	Accounts     []model.Account
	TotalBalance decimal.Decimal
	Recent       []model.Transaction
	Chart        []model.ChartPoint
	MonthSpent   decimal.Decimal
	Categories   []model.Category
	Transactions []model.Transaction
}

// CategoryColor returns the color of a category, or "" when unknown.
func (s *Snapshot) CategoryColor(name string) string {
	for _, c := range s.Categories {
		if c.Name == name {
			return c.Color
		}
	}
	return ""
}

// LoadDashboard reads the ledger once and derives the dashboard figures.
func LoadDashboard(l *store.Ledger) (*Snapshot, error) {
	accounts, err := l.Accounts()
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	txs, err := l.Transactions(store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	chart, err := l.ChartPoints()
	if err != nil {
		return nil, fmt.Errorf("loading chart: %w", err)
	}
	cats, err := l.Categories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	snap := &Snapshot{
		Accounts:     accounts,
		TotalBalance: TotalBalance(accounts),
		Chart:        chart,
		Categories:   cats,
		Transactions: txs,
	}
	for _, t := range txs {
		if len(snap.Recent) == RecentLimit {
			break
		}
		if t.Type == model.TxExpense {
			snap.Recent = append(snap.Recent, t)
		}
	}
	if n := len(chart); n > 0 {
		snap.MonthSpent = chart[n-1].Amount
	}
	return snap, nil
}
