package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/model"
)

// Fixtures is the data a ledger is seeded with.
type Fixtures struct {
	Accounts     []model.Account
	Categories   []model.Category
	Transactions []model.Transaction
	Chart        []model.ChartPoint
}

// DefaultFixtures returns the prototype's mock data with transaction dates
// relative to now, so "today" and "yesterday" always have entries.
func DefaultFixtures(now time.Time) Fixtures {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ago := func(days int) time.Time { return today.AddDate(0, 0, -days) }
	amt := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	expense := func(id, merchant, category, amount string, days int) model.Transaction {
		return model.Transaction{ID: id, Merchant: merchant, Category: category, Amount: amt(amount), Type: model.TxExpense, Date: ago(days)}
	}
	income := func(id, merchant, amount string, days int) model.Transaction {
		return model.Transaction{ID: id, Merchant: merchant, Category: "Доходы", Amount: amt(amount), Type: model.TxIncome, Date: ago(days)}
	}

	return Fixtures{
		Accounts: []model.Account{
			{BankName: "Озон Банк", Balance: amt("1146.28"), Color: "#2563EB"},
			{BankName: "Т-Банк", Balance: amt("28204.43"), Color: "#EAB308"},
			{BankName: "ВТБ", Balance: amt("6982.12"), Color: "#1D4ED8"},
		},
		Categories: []model.Category{
			{Name: "Еда", Color: "#9333EA"},
			{Name: "Косметика", Color: "#F97316"},
			{Name: "Доходы", Color: "#22C55E"},
			{Name: "Покупки", Color: "#3B82F6"},
		},
		Transactions: []model.Transaction{
			expense("1", "Вкусно и точка", "Еда", "140", 0),
			expense("2", "Золотое яблоко", "Косметика", "2940", 0),
			expense("3", "ВкусВилл", "Еда", "480", 1),
			expense("4", "ВкусВилл", "Еда", "480", 2),
			expense("5", "ВкусВилл", "Еда", "480", 2),
			expense("6", "ВкусВилл", "Еда", "480", 3),
			expense("7", "ВкусВилл", "Еда", "480", 3),
			expense("8", "ВкусВилл", "Еда", "480", 3),
			income("9", "Зарплата", "50000", 7),
			income("10", "Бонус", "5000", 5),
			income("11", "Подарок", "2000", 3),
		},
		Chart: []model.ChartPoint{
			{Day: 1, Amount: amt("800")},
			{Day: 6, Amount: amt("1200")},
			{Day: 11, Amount: amt("1500")},
			{Day: 16, Amount: amt("1800")},
			{Day: 21, Amount: amt("2100")},
			{Day: 26, Amount: amt("2450.31")},
			{Day: 30, Amount: amt("2450.31")},
		},
	}
}
