package nav

import (
	"slices"

	"github.com/theirongolddev/lima/internal/model"
)

// Context holds the values that travel alongside the active screen.
type Context struct {
	// Email is set on registration submit and never cleared.
	Email string
	// SelectedGoals are the onboarding goal tags, in catalog order.
	SelectedGoals []model.GoalTag
	// SelectedBankID is the bank being linked; empty outside the bank flow.
	SelectedBankID string
	// IsConnecting is true while the connecting animation is active.
	IsConnecting bool
	// CameFromDashboard records that bank selection was entered from the
	// dashboard, which makes the dashboard the back target.
	CameFromDashboard bool
}

func (c Context) clone() Context {
	c.SelectedGoals = slices.Clone(c.SelectedGoals)
	return c
}

// State is the complete navigation state: the active screen and its context.
type State struct {
	Screen  Screen
	Context Context
}

// Initial returns the state every session starts in.
func Initial() State {
	return State{Screen: Welcome}
}

func (s State) clone() State {
	s.Context = s.Context.clone()
	return s
}
