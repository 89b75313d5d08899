package nav

import (
	"fmt"

	"github.com/theirongolddev/lima/internal/model"
)

// EventKind names a transition of the state machine.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventOnboardingDone
	EventRegistrationBack
	EventRegistrationSubmit
	EventSMSBack
	EventSMSVerified
	EventSuccessBack
	EventSuccessContinue
	EventGoalsBack
	EventGoalsSubmit
	EventBanksBack
	EventDashboardAddBank
	EventBankChosen
	EventPermissionsBack
	EventPermissionsConnect
	EventConnectingComplete
	EventConnectingError
	EventBankSuccessBack
	EventBankSuccessToDashboard
	EventErrorBack
	EventErrorRetry
	EventViewTransactions
	EventTransactionsBack
	EventOpenSetBudget
	EventBudgetBack
	EventBudgetSave
	EventOpenCreateGoal
	EventGoalBack
	EventGoalSave
)

// transition describes the fixed part of a table row. banks_back has two
// possible targets and is resolved in Rules.Apply.
type transition struct {
	name string
	from Screen
	to   Screen
}

var transitions = map[EventKind]transition{
	EventStart:                  {"start", Welcome, Onboarding},
	EventOnboardingDone:         {"onboarding_done", Onboarding, Registration},
	EventRegistrationBack:       {"registration_back", Registration, Onboarding},
	EventRegistrationSubmit:     {"registration_submit", Registration, SMSVerification},
	EventSMSBack:                {"sms_back", SMSVerification, Registration},
	EventSMSVerified:            {"sms_verified", SMSVerification, RegistrationSuccess},
	EventSuccessBack:            {"success_back", RegistrationSuccess, Registration},
	EventSuccessContinue:        {"success_continue", RegistrationSuccess, GoalSelection},
	EventGoalsBack:              {"goals_back", GoalSelection, RegistrationSuccess},
	EventGoalsSubmit:            {"goals_submit", GoalSelection, BankSelection},
	EventBanksBack:              {"banks_back", BankSelection, GoalSelection},
	EventDashboardAddBank:       {"dashboard_add_bank", Dashboard, BankSelection},
	EventBankChosen:             {"bank_chosen", BankSelection, BankPermissions},
	EventPermissionsBack:        {"permissions_back", BankPermissions, BankSelection},
	EventPermissionsConnect:     {"permissions_connect", BankPermissions, BankConnecting},
	EventConnectingComplete:     {"connecting_complete", BankConnecting, BankSuccess},
	EventConnectingError:        {"connecting_error", BankConnecting, BankError},
	EventBankSuccessBack:        {"success_back2", BankSuccess, BankSelection},
	EventBankSuccessToDashboard: {"success_to_dashboard", BankSuccess, Dashboard},
	EventErrorBack:              {"error_back", BankError, BankSelection},
	EventErrorRetry:             {"error_retry", BankError, BankConnecting},
	EventViewTransactions:       {"dashboard_view_transactions", Dashboard, Transactions},
	EventTransactionsBack:       {"transactions_back", Transactions, Dashboard},
	EventOpenSetBudget:          {"dashboard_set_budget", Dashboard, SetBudget},
	EventBudgetBack:             {"budget_back", SetBudget, Dashboard},
	EventBudgetSave:             {"budget_save", SetBudget, Dashboard},
	EventOpenCreateGoal:         {"dashboard_create_goal", Dashboard, CreateGoal},
	EventGoalBack:               {"goal_back", CreateGoal, Dashboard},
	EventGoalSave:               {"goal_save", CreateGoal, Dashboard},
}

// EventKinds returns every event kind in table order.
func EventKinds() []EventKind {
	out := make([]EventKind, 0, len(transitions))
	for k := EventStart; k <= EventGoalSave; k++ {
		out = append(out, k)
	}
	return out
}

func (k EventKind) String() string {
	if t, ok := transitions[k]; ok {
		return t.name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// From returns the only screen the event is accepted in.
func (k EventKind) From() (Screen, bool) {
	t, ok := transitions[k]
	return t.from, ok
}

// Event is a transition request plus its payload. Only the payload field
// matching Kind is read.
type Event struct {
	Kind   EventKind
	Email  string          // registration_submit
	Goals  []model.GoalTag // goals_submit
	BankID string          // bank_chosen
}
