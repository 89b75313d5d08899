package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/lima/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddBudget(t *testing.T) {
	s := New()
	b, err := s.AddBudget("Еда", day(2024, 11, 1), day(2024, 11, 30), decimal.NewFromInt(15000))
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, "Еда", b.Category)
	require.True(t, b.Amount.Equal(decimal.NewFromInt(15000)))
	require.Equal(t, []model.Budget{b}, s.ListBudgets())
}

func TestAddBudgetAcceptsZeroAmountAndSameDay(t *testing.T) {
	s := New()
	_, err := s.AddBudget("Еда", day(2024, 11, 5), day(2024, 11, 5), decimal.Zero)
	require.NoError(t, err)
}

func TestAddBudgetIgnoresTimeOfDay(t *testing.T) {
	s := New()
	start := time.Date(2024, 11, 5, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)
	b, err := s.AddBudget("Еда", start, end, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Equal(t, day(2024, 11, 5), b.StartDate)
}

func TestAddBudgetValidation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		start    time.Time
		end      time.Time
		amount   decimal.Decimal
		field    string
	}{
		{"negative amount", "Еда", day(2024, 11, 1), day(2024, 11, 30), decimal.NewFromInt(-1), "amount"},
		{"reversed dates", "Еда", day(2024, 11, 30), day(2024, 11, 1), decimal.NewFromInt(10), "end_date"},
		{"empty category", "  ", day(2024, 11, 1), day(2024, 11, 30), decimal.NewFromInt(10), "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, err := s.AddBudget(tt.category, tt.start, tt.end, tt.amount)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.field, verr.Field)
			require.Empty(t, s.ListBudgets())
		})
	}
}

func TestAddGoal(t *testing.T) {
	s := New()
	g, err := s.AddGoal("Отпуск", decimal.NewFromInt(100000), day(2024, 11, 1), day(2025, 6, 1), model.ReplenishPercent)
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)
	require.True(t, g.Current.IsZero())
	require.Equal(t, model.ReplenishPercent, g.AutoReplenishment)
	require.Len(t, s.ListGoals(), 1)
}

func TestAddGoalValidation(t *testing.T) {
	tests := []struct {
		name   string
		goal   string
		target decimal.Decimal
		end    time.Time
		mode   model.AutoReplenishment
		field  string
	}{
		{"zero target", "Отпуск", decimal.Zero, day(2025, 1, 1), model.ReplenishNone, "target"},
		{"empty name", "", decimal.NewFromInt(5), day(2025, 1, 1), model.ReplenishNone, "name"},
		{"end before start", "Отпуск", decimal.NewFromInt(5), day(2024, 10, 1), model.ReplenishNone, "end_date"},
		{"unknown mode", "Отпуск", decimal.NewFromInt(5), day(2025, 1, 1), "weekly", "auto_replenishment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, err := s.AddGoal(tt.goal, tt.target, day(2024, 11, 1), tt.end, tt.mode)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.field, verr.Field)
			require.Empty(t, s.ListGoals())
		})
	}
}

func TestListPreservesInsertionOrderAndIsACopy(t *testing.T) {
	s := New()
	for _, c := range []string{"Еда", "Покупки", "Транспорт"} {
		_, err := s.AddBudget(c, day(2024, 11, 1), day(2024, 11, 30), decimal.NewFromInt(100))
		require.NoError(t, err)
	}

	got := s.ListBudgets()
	require.Equal(t, "Еда", got[0].Category)
	require.Equal(t, "Транспорт", got[2].Category)

	got[0].Category = "changed"
	require.Equal(t, "Еда", s.ListBudgets()[0].Category)
}

func TestIDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := s.AddBudget("Еда", day(2024, 11, 1), day(2024, 11, 30), decimal.NewFromInt(int64(i)))
		require.NoError(t, err)
		require.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestConcurrentAppendsAndReads(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = s.AddGoal(fmt.Sprintf("goal-%d", i), decimal.NewFromInt(10), day(2024, 1, 1), day(2024, 2, 1), model.ReplenishNone)
		}(i)
		go func() {
			defer wg.Done()
			_ = s.ListGoals()
		}()
	}
	wg.Wait()
	require.Len(t, s.ListGoals(), 8)
}
