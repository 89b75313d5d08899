package model

// GoalTag is a financial-goal category picked during onboarding.
// It is unrelated to the savings Goal entities created from the dashboard.
type GoalTag string

const (
	GoalExpenseControl GoalTag = "expense"
	GoalSavings        GoalTag = "savings"
	GoalInvestments    GoalTag = "investments"
)

// GoalTags lists the onboarding goals in display order.
var GoalTags = []GoalTag{GoalExpenseControl, GoalSavings, GoalInvestments}

// Title returns the display title of the goal tag.
func (g GoalTag) Title() string {
	switch g {
	case GoalExpenseControl:
		return "Контроль расходов"
	case GoalSavings:
		return "Сбережения"
	case GoalInvestments:
		return "Инвестиции"
	}
	return string(g)
}

// Valid reports whether g is one of the known goal tags.
func (g GoalTag) Valid() bool {
	for _, t := range GoalTags {
		if t == g {
			return true
		}
	}
	return false
}
