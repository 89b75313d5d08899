package nav

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/session"
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// scenarioOne drives the onboarding path up to dashboard_add_bank.
func scenarioOne(t *testing.T, n *Navigator) {
	t.Helper()
	must(t, n.Start())
	must(t, n.OnboardingDone())
	must(t, n.RegistrationSubmit("a@b.com"))
	must(t, n.SMSVerified())
	must(t, n.SuccessContinue())
	must(t, n.GoalsSubmit([]model.GoalTag{model.GoalSavings}))
	// bank_selection is not the dashboard, so go through a connection first.
	must(t, n.BankChosen("ozon"))
	must(t, n.PermissionsConnect())
	must(t, n.ConnectingComplete())
	must(t, n.BankSuccessToDashboard())
	must(t, n.DashboardAddBank())
}

func TestScenarioOnboardingToAddBank(t *testing.T) {
	n := New(nil)
	scenarioOne(t, n)

	if n.Screen() != BankSelection {
		t.Fatalf("Screen() = %s, want bank_selection", n.Screen())
	}
	c := n.Context()
	if !c.CameFromDashboard {
		t.Fatal("CameFromDashboard = false, want true")
	}
	if c.Email != "a@b.com" {
		t.Fatalf("Email = %q, want a@b.com", c.Email)
	}
	if diff := cmp.Diff([]model.GoalTag{model.GoalSavings}, c.SelectedGoals); diff != "" {
		t.Fatalf("SelectedGoals (-want +got):\n%s", diff)
	}
}

func TestScenarioConnectSberFromDashboard(t *testing.T) {
	n := New(nil)
	scenarioOne(t, n)

	must(t, n.BankChosen("sber"))
	if b, ok := n.SelectedBank(); !ok || b.Name != "Сбер" {
		t.Fatalf("SelectedBank() = %+v, %v", b, ok)
	}
	must(t, n.PermissionsConnect())
	if !n.Context().IsConnecting {
		t.Fatal("IsConnecting = false after permissions_connect")
	}
	must(t, n.ConnectingComplete())
	must(t, n.BankSuccessToDashboard())

	want := State{Screen: Dashboard, Context: Context{
		Email:         "a@b.com",
		SelectedGoals: []model.GoalTag{model.GoalSavings},
	}}
	if diff := cmp.Diff(want, n.State()); diff != "" {
		t.Fatalf("State (-want +got):\n%s", diff)
	}
}

func TestScenarioBanksBackReturnsToDashboard(t *testing.T) {
	n := New(nil, WithState(at(Dashboard)))
	must(t, n.DashboardAddBank())
	must(t, n.BanksBack())

	if n.Screen() != Dashboard {
		t.Fatalf("Screen() = %s, want dashboard", n.Screen())
	}
	if n.Context().CameFromDashboard {
		t.Fatal("CameFromDashboard still set after banks_back")
	}
}

func TestScenarioBanksBackReturnsToGoalSelection(t *testing.T) {
	n := New(nil, WithState(at(GoalSelection)))
	must(t, n.GoalsSubmit([]model.GoalTag{model.GoalExpenseControl}))
	must(t, n.BanksBack())
	if n.Screen() != GoalSelection {
		t.Fatalf("Screen() = %s, want goal_selection", n.Screen())
	}
}

func TestProvenanceFlagDoesNotLeak(t *testing.T) {
	// Enter bank selection from the dashboard, leave through a completed
	// connection, then come back along the onboarding-style path.
	n := New(nil, WithState(at(Dashboard)))
	must(t, n.DashboardAddBank())
	must(t, n.BankChosen("vtb"))
	must(t, n.PermissionsConnect())
	must(t, n.ConnectingError())
	must(t, n.ErrorBack())
	must(t, n.BanksBack())
	if n.Screen() != Dashboard {
		t.Fatalf("Screen() = %s, want dashboard", n.Screen())
	}

	n = New(nil, WithState(State{Screen: GoalSelection}))
	must(t, n.GoalsSubmit([]model.GoalTag{model.GoalSavings}))
	must(t, n.BanksBack())
	if n.Screen() != GoalSelection {
		t.Fatalf("Screen() = %s, want goal_selection", n.Screen())
	}
}

func TestBudgetSaveRejectedByStoreKeepsScreen(t *testing.T) {
	store := session.New()
	n := New(store, WithState(at(SetBudget)))
	d1 := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	_, err := n.BudgetSave(model.BudgetDraft{Category: "Food", StartDate: d1, EndDate: d2, Amount: decimal.NewFromInt(-5)})
	if !errors.Is(err, session.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if n.Screen() != SetBudget {
		t.Fatalf("Screen() = %s, want set_budget", n.Screen())
	}
	if got := len(store.ListBudgets()); got != 0 {
		t.Fatalf("len(ListBudgets()) = %d, want 0", got)
	}

	b, err := n.BudgetSave(model.BudgetDraft{Category: "Food", StartDate: d1, EndDate: d2, Amount: decimal.NewFromInt(5)})
	must(t, err)
	if n.Screen() != Dashboard {
		t.Fatalf("Screen() = %s, want dashboard", n.Screen())
	}
	if got := store.ListBudgets(); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("ListBudgets() = %+v", got)
	}
}

func TestGoalSave(t *testing.T) {
	store := session.New()
	n := New(store, WithState(at(CreateGoal)))
	d := model.GoalDraft{
		Name:              "Отпуск",
		Target:            decimal.NewFromInt(100000),
		StartDate:         time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AutoReplenishment: model.ReplenishFixed,
	}
	g, err := n.GoalSave(d)
	must(t, err)
	if !g.Current.IsZero() || n.Screen() != Dashboard {
		t.Fatalf("GoalSave = %+v on %s", g, n.Screen())
	}
}

func TestSaveOutsideFormDoesNotRecord(t *testing.T) {
	store := session.New()
	n := New(store, WithState(at(Dashboard)))
	_, err := n.BudgetSave(model.BudgetDraft{Category: "Еда", Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if len(store.ListBudgets()) != 0 {
		t.Fatal("budget recorded outside set_budget")
	}
}

type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestResolveConnectionSplit(t *testing.T) {
	const runs = 10000
	vals := make([]float64, runs)
	for i := range vals {
		vals[i] = (float64(i) + 0.5) / runs
	}
	src := &sequence{vals: vals}

	var ok, failed int
	for i := 0; i < runs; i++ {
		n := New(nil, WithState(State{Screen: BankConnecting, Context: Context{SelectedBankID: "sber", IsConnecting: true}}))
		k, err := n.ResolveConnection(src, DefaultFailureRate)
		must(t, err)
		switch k {
		case EventConnectingComplete:
			ok++
			if n.Screen() != BankSuccess {
				t.Fatalf("complete landed on %s", n.Screen())
			}
		case EventConnectingError:
			failed++
			if n.Screen() != BankError {
				t.Fatalf("error landed on %s", n.Screen())
			}
		}
	}
	if ok != 9000 || failed != 1000 {
		t.Fatalf("complete=%d error=%d, want 9000/1000", ok, failed)
	}
}

func TestOutcomeBoundary(t *testing.T) {
	if got := Outcome(RandomFunc(func() float64 { return 0.1 }), 0.1); got != EventConnectingError {
		t.Fatalf("Outcome(0.1) = %s, want connecting_error", got)
	}
	if got := Outcome(RandomFunc(func() float64 { return 0.1000001 }), 0.1); got != EventConnectingComplete {
		t.Fatalf("Outcome(0.1000001) = %s, want connecting_complete", got)
	}
}

func TestResolveConnectionOffScreenDoesNotDraw(t *testing.T) {
	src := &sequence{vals: []float64{0.5}}
	n := New(nil, WithState(at(BankSuccess)))
	if _, err := n.ResolveConnection(src, DefaultFailureRate); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if src.i != 0 {
		t.Fatalf("drew %d values off screen", src.i)
	}
}

func TestLeases(t *testing.T) {
	n := New(nil, WithState(at(SMSVerification)))

	first := n.Acquire()
	if !n.Valid(first) {
		t.Fatal("fresh lease invalid")
	}
	second := n.Acquire()
	if n.Valid(first) {
		t.Fatal("re-acquire did not invalidate the first lease")
	}
	if !n.Valid(second) {
		t.Fatal("second lease invalid")
	}

	must(t, n.SMSBack())
	if n.Valid(second) {
		t.Fatal("lease survived leaving the screen")
	}

	// Coming back to the same screen must not revive old leases.
	must(t, n.RegistrationSubmit("a@b.com"))
	if n.Valid(second) {
		t.Fatal("old lease valid after re-entering the screen")
	}
	if n.Valid(Lease{}) {
		t.Fatal("zero lease valid")
	}

	third := n.Acquire()
	n.Release()
	if n.Valid(third) {
		t.Fatal("released lease valid")
	}
}

func TestRejectedEventKeepsLease(t *testing.T) {
	n := New(nil, WithState(at(GoalSelection)))
	l := n.Acquire()
	if err := n.GoalsSubmit(nil); err == nil {
		t.Fatal("GoalsSubmit(nil) succeeded")
	}
	if !n.Valid(l) {
		t.Fatal("rejected event released the lease")
	}
}

func TestObserver(t *testing.T) {
	type call struct {
		From, To Screen
		Kind     EventKind
	}
	var calls []call
	n := New(nil, WithObserver(func(from, to State, ev Event) {
		calls = append(calls, call{from.Screen, to.Screen, ev.Kind})
	}))
	must(t, n.Start())
	_ = n.Start() // rejected, not observed
	must(t, n.OnboardingDone())

	want := []call{
		{Welcome, Onboarding, EventStart},
		{Onboarding, Registration, EventOnboardingDone},
	}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("observer calls (-want +got):\n%s", diff)
	}
}

func TestSelectedBankGuard(t *testing.T) {
	n := New(nil, WithBanks(model.Catalog{{ID: "monzo", Name: "Monzo"}}),
		WithState(State{Screen: BankPermissions, Context: Context{SelectedBankID: "sber"}}))
	if _, ok := n.SelectedBank(); ok {
		t.Fatal("sber resolved against a catalog without it")
	}
}
