package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType distinguishes money coming in from money going out.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Account is a linked bank account shown on the dashboard.
type Account struct {
	BankName string
	Balance  decimal.Decimal
	Color    string
}

// Transaction is a single mocked bank operation.
type Transaction struct {
	ID       string
	Merchant string
	Category string
	Amount   decimal.Decimal // always positive; Type carries the sign
	Type     TxType
	Date     time.Time
}

// ChartPoint is one sample of the month-to-date spending curve.
type ChartPoint struct {
	Day    int
	Amount decimal.Decimal
}

// Category is a transaction category and the color it is drawn with.
type Category struct {
	Name  string
	Color string
}
