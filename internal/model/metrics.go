package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceStats holds income and expense totals for a set of transactions.
type SourceStats struct {
	IncomeTotal  decimal.Decimal
	IncomeCount  int
	ExpenseTotal decimal.Decimal
	ExpenseCount int
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Share    float64 // fraction of all expenses, 0-1
}

// DayGroup is a run of transactions that happened on the same day.
type DayGroup struct {
	Label        string
	Date         time.Time
	Transactions []Transaction
}

// BudgetProgress compares a budget with the matching expenses.
type BudgetProgress struct {
	Budget    Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Ratio     float64
	Over      bool
}

// GoalProgress tracks how far a savings goal is from its target.
type GoalProgress struct {
	Goal     Goal
	Ratio    float64
	DaysLeft int
}
