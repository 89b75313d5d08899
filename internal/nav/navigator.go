package nav

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/session"
)

// Recorder stores the budgets and goals submitted from the dashboard forms.
// *session.Store implements it.
type Recorder interface {
	AddBudget(category string, start, end time.Time, amount decimal.Decimal) (model.Budget, error)
	AddGoal(name string, target decimal.Decimal, start, end time.Time, r model.AutoReplenishment) (model.Goal, error)
}

// Observer is notified after every successful transition.
type Observer func(from, to State, ev Event)

// Option configures a Navigator.
type Option func(*Navigator)

// WithBanks restricts bank_chosen to the given catalog.
func WithBanks(c model.Catalog) Option {
	return func(n *Navigator) { n.rules.Banks = c }
}

// WithObserver installs a transition observer.
func WithObserver(o Observer) Option {
	return func(n *Navigator) { n.observer = o }
}

// WithState starts the navigator somewhere other than welcome.
func WithState(s State) Option {
	return func(n *Navigator) { n.state = s.clone() }
}

// Navigator owns the navigation state of one session. It is not safe for
// concurrent use; the TUI drives it from its update loop only.
type Navigator struct {
	rules    Rules
	state    State
	recorder Recorder
	observer Observer

	gen  uint64
	held bool
}

// New returns a navigator on the welcome screen. A nil recorder gets a fresh
// session store.
func New(rec Recorder, opts ...Option) *Navigator {
	if rec == nil {
		rec = session.New()
	}
	n := &Navigator{state: Initial(), recorder: rec}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Screen returns the active screen.
func (n *Navigator) Screen() Screen { return n.state.Screen }

// Context returns a copy of the navigation context.
func (n *Navigator) Context() Context { return n.state.Context.clone() }

// State returns a copy of the full state.
func (n *Navigator) State() State { return n.state.clone() }

// Catalog returns the banks bank_chosen accepts.
func (n *Navigator) Catalog() model.Catalog { return n.rules.catalog() }

// SelectedBank resolves the selected bank id against the catalog.
func (n *Navigator) SelectedBank() (model.Bank, bool) {
	return n.rules.catalog().Lookup(n.state.Context.SelectedBankID)
}

// Dispatch applies ev. Leaving a screen releases its lease.
func (n *Navigator) Dispatch(ev Event) error {
	next, err := n.rules.Apply(n.state, ev)
	if err != nil {
		return err
	}
	prev := n.state
	n.state = next
	if prev.Screen != next.Screen {
		n.Release()
	}
	if n.observer != nil {
		n.observer(prev.clone(), next.clone(), ev)
	}
	return nil
}

func (n *Navigator) fire(k EventKind) error { return n.Dispatch(Event{Kind: k}) }

func (n *Navigator) Start() error            { return n.fire(EventStart) }
func (n *Navigator) OnboardingDone() error   { return n.fire(EventOnboardingDone) }
func (n *Navigator) RegistrationBack() error { return n.fire(EventRegistrationBack) }

// RegistrationSubmit records the email and moves to SMS verification.
func (n *Navigator) RegistrationSubmit(email string) error {
	return n.Dispatch(Event{Kind: EventRegistrationSubmit, Email: email})
}

func (n *Navigator) SMSBack() error         { return n.fire(EventSMSBack) }
func (n *Navigator) SMSVerified() error     { return n.fire(EventSMSVerified) }
func (n *Navigator) SuccessBack() error     { return n.fire(EventSuccessBack) }
func (n *Navigator) SuccessContinue() error { return n.fire(EventSuccessContinue) }
func (n *Navigator) GoalsBack() error       { return n.fire(EventGoalsBack) }

// GoalsSubmit records the selected goal tags and opens bank selection.
func (n *Navigator) GoalsSubmit(goals []model.GoalTag) error {
	return n.Dispatch(Event{Kind: EventGoalsSubmit, Goals: goals})
}

// BanksBack returns to the dashboard when bank selection was opened from it,
// otherwise to goal selection.
func (n *Navigator) BanksBack() error        { return n.fire(EventBanksBack) }
func (n *Navigator) DashboardAddBank() error { return n.fire(EventDashboardAddBank) }

// BankChosen selects a bank from the catalog.
func (n *Navigator) BankChosen(id string) error {
	return n.Dispatch(Event{Kind: EventBankChosen, BankID: id})
}

func (n *Navigator) PermissionsBack() error        { return n.fire(EventPermissionsBack) }
func (n *Navigator) PermissionsConnect() error     { return n.fire(EventPermissionsConnect) }
func (n *Navigator) ConnectingComplete() error     { return n.fire(EventConnectingComplete) }
func (n *Navigator) ConnectingError() error        { return n.fire(EventConnectingError) }
func (n *Navigator) BankSuccessBack() error        { return n.fire(EventBankSuccessBack) }
func (n *Navigator) BankSuccessToDashboard() error { return n.fire(EventBankSuccessToDashboard) }
func (n *Navigator) ErrorBack() error              { return n.fire(EventErrorBack) }
func (n *Navigator) ErrorRetry() error             { return n.fire(EventErrorRetry) }
func (n *Navigator) ViewTransactions() error       { return n.fire(EventViewTransactions) }
func (n *Navigator) TransactionsBack() error       { return n.fire(EventTransactionsBack) }
func (n *Navigator) OpenSetBudget() error          { return n.fire(EventOpenSetBudget) }
func (n *Navigator) BudgetBack() error             { return n.fire(EventBudgetBack) }
func (n *Navigator) OpenCreateGoal() error         { return n.fire(EventOpenCreateGoal) }
func (n *Navigator) GoalBack() error               { return n.fire(EventGoalBack) }

// BudgetSave stores the budget and returns to the dashboard. When the store
// rejects the draft nothing changes.
func (n *Navigator) BudgetSave(d model.BudgetDraft) (model.Budget, error) {
	if err := n.expect(EventBudgetSave); err != nil {
		return model.Budget{}, err
	}
	b, err := n.recorder.AddBudget(d.Category, d.StartDate, d.EndDate, d.Amount)
	if err != nil {
		return model.Budget{}, fmt.Errorf("saving budget: %w", err)
	}
	return b, n.fire(EventBudgetSave)
}

// GoalSave stores the goal and returns to the dashboard. When the store
// rejects the draft nothing changes.
func (n *Navigator) GoalSave(d model.GoalDraft) (model.Goal, error) {
	if err := n.expect(EventGoalSave); err != nil {
		return model.Goal{}, err
	}
	g, err := n.recorder.AddGoal(d.Name, d.Target, d.StartDate, d.EndDate, d.AutoReplenishment)
	if err != nil {
		return model.Goal{}, fmt.Errorf("saving goal: %w", err)
	}
	return g, n.fire(EventGoalSave)
}

// ResolveConnection draws the outcome of the connecting animation and applies
// it. Nothing is drawn unless the connecting screen is active.
func (n *Navigator) ResolveConnection(src RandomSource, failureRate float64) (EventKind, error) {
	if err := n.expect(EventConnectingComplete); err != nil {
		return 0, err
	}
	k := Outcome(src, failureRate)
	return k, n.fire(k)
}

func (n *Navigator) expect(k EventKind) error {
	if from, _ := k.From(); n.state.Screen != from {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, k, n.state.Screen)
	}
	return nil
}
