// Package nav implements the screen-navigation state machine of the app.
//
// The machine is a pure transition function (Rules.Apply) over a State made
// of the active Screen and a Context of ancillary values. Navigator wraps it
// with one method per user action, timer leases tied to the active screen and
// an observer hook for logging.
package nav

import "fmt"

// Screen is the single active step of the guided flow.
type Screen int

const (
	Welcome Screen = iota
	Onboarding
	Registration
	SMSVerification
	RegistrationSuccess
	GoalSelection
	BankSelection
	BankPermissions
	BankConnecting
	BankSuccess
	BankError
	Dashboard
	Transactions
	SetBudget
	CreateGoal
)

var screenNames = [...]string{
	Welcome:             "welcome",
	Onboarding:          "onboarding",
	Registration:        "registration",
	SMSVerification:     "sms_verification",
	RegistrationSuccess: "registration_success",
	GoalSelection:       "goal_selection",
	BankSelection:       "bank_selection",
	BankPermissions:     "bank_permissions",
	BankConnecting:      "bank_connecting",
	BankSuccess:         "bank_success",
	BankError:           "bank_error",
	Dashboard:           "dashboard",
	Transactions:        "transactions",
	SetBudget:           "set_budget",
	CreateGoal:          "create_goal",
}

// Screens returns every screen in declaration order.
func Screens() []Screen {
	out := make([]Screen, len(screenNames))
	for i := range screenNames {
		out[i] = Screen(i)
	}
	return out
}

// Valid reports whether s is a defined screen.
func (s Screen) Valid() bool {
	return s >= Welcome && int(s) < len(screenNames)
}

func (s Screen) String() string {
	if !s.Valid() {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// ParseScreen maps a snake_case screen name back to its Screen.
func ParseScreen(name string) (Screen, error) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q", name)
}
