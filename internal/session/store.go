// Package session keeps the budgets and goals created during one run.
// Nothing is persisted; the store lives exactly as long as the process.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/model"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports which field of a submission was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Store is an append-only, in-memory collection of budgets and goals.
type Store struct {
	mu      sync.RWMutex
	budgets []model.Budget
	goals   []model.Goal
	newID   func() string
}

// New returns an empty store that assigns random UUIDs.
func New() *Store {
	return &Store{newID: uuid.NewString}
}

// AddBudget validates and appends a budget.
func (s *Store) AddBudget(category string, start, end time.Time, amount decimal.Decimal) (model.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return model.Budget{}, invalid("category", "must not be empty")
	}
	if amount.IsNegative() {
		return model.Budget{}, invalid("amount", "must not be negative")
	}
	start, end = midnight(start), midnight(end)
	if end.Before(start) {
		return model.Budget{}, invalid("end_date", "must not be before start date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b := model.Budget{
		ID:        s.newID(),
		Category:  category,
		StartDate: start,
		EndDate:   end,
		Amount:    amount,
	}
	s.budgets = append(s.budgets, b)
	return b, nil
}

// AddGoal validates and appends a goal with zero progress.
func (s *Store) AddGoal(name string, target decimal.Decimal, start, end time.Time, r model.AutoReplenishment) (model.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Goal{}, invalid("name", "must not be empty")
	}
	if !target.IsPositive() {
		return model.Goal{}, invalid("target", "must be greater than zero")
	}
	start, end = midnight(start), midnight(end)
	if end.Before(start) {
		return model.Goal{}, invalid("end_date", "must not be before start date")
	}
	if !r.Valid() {
		return model.Goal{}, invalid("auto_replenishment", fmt.Sprintf("unknown mode %q", r))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	g := model.Goal{
		ID:                s.newID(),
		Name:              name,
		Target:            target,
		Current:           decimal.Zero,
		StartDate:         start,
		EndDate:           end,
		AutoReplenishment: r,
	}
	s.goals = append(s.goals, g)
	return g, nil
}

// ListBudgets returns the budgets in insertion order.
func (s *Store) ListBudgets() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// ListGoals returns the goals in insertion order.
func (s *Store) ListGoals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
