package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategories are the spending categories offered by the budget form.
var BudgetCategories = []string{"Еда", "Косметика", "Покупки", "Транспорт", "Развлечения"}

// AutoReplenishment selects how a savings goal is topped up.
type AutoReplenishment string

const (
	ReplenishPercent AutoReplenishment = "percent"
	ReplenishFixed   AutoReplenishment = "fixed"
	ReplenishNone    AutoReplenishment = "none"
)

// AutoReplenishments lists the replenishment modes in display order.
var AutoReplenishments = []AutoReplenishment{ReplenishPercent, ReplenishFixed, ReplenishNone}

// Valid reports whether r is one of the enumerated modes.
func (r AutoReplenishment) Valid() bool {
	switch r {
	case ReplenishPercent, ReplenishFixed, ReplenishNone:
		return true
	}
	return false
}

// Label returns the form label for r.
func (r AutoReplenishment) Label() string {
	switch r {
	case ReplenishPercent:
		return "% от дохода"
	case ReplenishFixed:
		return "Фиксированная сумма"
	case ReplenishNone:
		return "Без автопополнения"
	}
	return string(r)
}

// Budget caps spending in one category over a date range.
type Budget struct {
	ID        string
	Category  string
	StartDate time.Time
	EndDate   time.Time
	Amount    decimal.Decimal
}

// Goal is a savings target created from the dashboard.
type Goal struct {
	ID                string
	Name              string
	Target            decimal.Decimal
	Current           decimal.Decimal
	StartDate         time.Time
	EndDate           time.Time
	AutoReplenishment AutoReplenishment
}

// BudgetDraft is a submitted, parsed but not yet validated budget form.
type BudgetDraft struct {
	Category  string
	StartDate time.Time
	EndDate   time.Time
	Amount    decimal.Decimal
}

// GoalDraft is a submitted, parsed but not yet validated goal form.
type GoalDraft struct {
	Name              string
	Target            decimal.Decimal
	StartDate         time.Time
	EndDate           time.Time
	AutoReplenishment AutoReplenishment
}
