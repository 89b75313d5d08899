package nav

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/lima/internal/model"
)

var (
	// ErrInvalidTransition is returned for an event outside its From screen.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnknownBank is returned by bank_chosen for ids outside the catalog.
	ErrUnknownBank = errors.New("unknown bank")
	// ErrInvalidPayload is returned when an event carries unusable data.
	ErrInvalidPayload = errors.New("invalid event payload")
)

// Rules is the pure transition function. The zero value uses
// model.DefaultBanks.
type Rules struct {
	Banks model.Catalog
}

func (r Rules) catalog() model.Catalog {
	if len(r.Banks) == 0 {
		return model.DefaultBanks
	}
	return r.Banks
}

// Apply computes the state that follows ev. On error the input state is
// returned unchanged.
func (r Rules) Apply(s State, ev Event) (State, error) {
	t, ok := transitions[ev.Kind]
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrInvalidTransition, ev.Kind)
	}
	if s.Screen != t.from {
		return s, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev.Kind, s.Screen)
	}

	next := s.clone()
	next.Screen = t.to
	c := &next.Context

	switch ev.Kind {
	case EventRegistrationSubmit:
		email := strings.TrimSpace(ev.Email)
		if email == "" {
			return s, fmt.Errorf("%w: %s requires an email", ErrInvalidPayload, ev.Kind)
		}
		c.Email = email

	case EventGoalsSubmit:
		goals, err := normalizeGoals(ev.Goals)
		if err != nil {
			return s, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, ev.Kind, err)
		}
		c.SelectedGoals = goals

	case EventBanksBack:
		c.SelectedBankID = ""
		c.IsConnecting = false
		if c.CameFromDashboard {
			next.Screen = Dashboard
			c.CameFromDashboard = false
		}

	case EventDashboardAddBank:
		c.SelectedBankID = ""
		c.IsConnecting = false
		c.CameFromDashboard = true

	case EventBankChosen:
		if _, ok := r.catalog().Lookup(ev.BankID); !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownBank, ev.BankID)
		}
		c.SelectedBankID = ev.BankID

	case EventPermissionsConnect, EventErrorRetry:
		c.IsConnecting = true

	case EventConnectingComplete, EventConnectingError:
		c.IsConnecting = false

	case EventSuccessBack, EventBankSuccessBack, EventErrorBack:
		c.SelectedBankID = ""
		c.IsConnecting = false

	case EventBankSuccessToDashboard:
		c.SelectedBankID = ""
		c.IsConnecting = false
		c.CameFromDashboard = false
	}

	return next, nil
}

// normalizeGoals dedupes goals and orders them like model.GoalTags.
func normalizeGoals(goals []model.GoalTag) ([]model.GoalTag, error) {
	if len(goals) == 0 {
		return nil, errors.New("at least one goal is required")
	}
	for _, g := range goals {
		if !g.Valid() {
			return nil, fmt.Errorf("unknown goal %q", g)
		}
	}
	out := make([]model.GoalTag, 0, len(goals))
	for _, g := range model.GoalTags {
		if slices.Contains(goals, g) {
			out = append(out, g)
		}
	}
	return out, nil
}
