package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/session"
)

// Form values live behind pointers: App is copied on every Update while huh
// keeps writing through the pointers it was built with.

type registrationValues struct {
	email    string
	password string
}

type budgetValues struct {
	category string
	start    string
	end      string
	amount   string
}

type goalValues struct {
	name   string
	target string
	start  string
	end    string
	refill model.AutoReplenishment
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s: обязательное поле", field)
		}
		return nil
	}
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("введите email")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return errors.New("email должен содержать @")
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := cli.ParseAmount(s); err != nil {
		return errors.New("введите сумму, например 15 000")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := cli.ParseDate(s); err != nil {
		return fmt.Errorf("дата в формате %s", cli.DateLayout)
	}
	return nil
}

func newRegistrationForm(v *registrationValues, width int) *huh.Form {
	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("name@example.com").
			Value(&v.email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Пароль").
			EchoMode(huh.EchoModePassword).
			Value(&v.password).
			Validate(required("пароль")),
	)).WithShowHelp(false)
	return sized(f, width)
}

func newBudgetForm(v *budgetValues, width int) *huh.Form {
	opts := make([]huh.Option[string], len(model.BudgetCategories))
	for i, c := range model.BudgetCategories {
		opts[i] = huh.NewOption(c, c)
	}
	f := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Категория").
			Options(opts...).
			Value(&v.category),
		huh.NewInput().
			Title("Начало").
			Placeholder(cli.DateLayout).
			Value(&v.start).
			Validate(validateDate),
		huh.NewInput().
			Title("Окончание").
			Placeholder(cli.DateLayout).
			Value(&v.end).
			Validate(validateDate),
		huh.NewInput().
			Title("Лимит, ₽").
			Placeholder("15 000").
			Value(&v.amount).
			Validate(validateAmount),
	)).WithShowHelp(false)
	return sized(f, width)
}

func newGoalForm(v *goalValues, width int) *huh.Form {
	opts := make([]huh.Option[model.AutoReplenishment], len(model.AutoReplenishments))
	for i, r := range model.AutoReplenishments {
		opts[i] = huh.NewOption(r.Label(), r)
	}
	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Название цели").
			Placeholder("Отпуск").
			Value(&v.name).
			Validate(required("название")),
		huh.NewInput().
			Title("Сумма цели, ₽").
			Placeholder("100 000").
			Value(&v.target).
			Validate(validateAmount),
		huh.NewInput().
			Title("Начало").
			Placeholder(cli.DateLayout).
			Value(&v.start).
			Validate(validateDate),
		huh.NewInput().
			Title("Окончание").
			Placeholder(cli.DateLayout).
			Value(&v.end).
			Validate(validateDate),
		huh.NewSelect[model.AutoReplenishment]().
			Title("Автопополнение").
			Options(opts...).
			Value(&v.refill),
	)).WithShowHelp(false)
	return sized(f, width)
}

func sized(f *huh.Form, width int) *huh.Form {
	if width > 0 {
		f = f.WithWidth(min(width-4, 60))
	}
	return f
}

func defaultBudgetValues(now time.Time) *budgetValues {
	return &budgetValues{
		category: model.BudgetCategories[0],
		start:    cli.FormatDate(now),
		end:      cli.FormatDate(now.AddDate(0, 1, 0)),
	}
}

func defaultGoalValues(now time.Time) *goalValues {
	return &goalValues{
		start:  cli.FormatDate(now),
		end:    cli.FormatDate(now.AddDate(1, 0, 0)),
		refill: model.ReplenishNone,
	}
}

// draft parses the submitted form. Fields were validated by huh already,
// so an error here means the values were set programmatically.
func (v *budgetValues) draft() (model.BudgetDraft, error) {
	start, err := cli.ParseDate(v.start)
	if err != nil {
		return model.BudgetDraft{}, err
	}
	end, err := cli.ParseDate(v.end)
	if err != nil {
		return model.BudgetDraft{}, err
	}
	amount, err := cli.ParseAmount(v.amount)
	if err != nil {
		return model.BudgetDraft{}, err
	}
	return model.BudgetDraft{Category: v.category, StartDate: start, EndDate: end, Amount: amount}, nil
}

func (v *goalValues) draft() (model.GoalDraft, error) {
	start, err := cli.ParseDate(v.start)
	if err != nil {
		return model.GoalDraft{}, err
	}
	end, err := cli.ParseDate(v.end)
	if err != nil {
		return model.GoalDraft{}, err
	}
	target, err := cli.ParseAmount(v.target)
	if err != nil {
		return model.GoalDraft{}, err
	}
	return model.GoalDraft{
		Name:              strings.TrimSpace(v.name),
		Target:            target,
		StartDate:         start,
		EndDate:           end,
		AutoReplenishment: v.refill,
	}, nil
}

func (a App) updateBudgetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a, a.step(a.nav.BudgetBack())
	}
	if a.budgetForm == nil {
		return a, nil
	}

	updated, cmd := a.budgetForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		a.budgetForm = f
	}

	switch a.budgetForm.State {
	case huh.StateAborted:
		return a, a.step(a.nav.BudgetBack())
	case huh.StateCompleted:
		return a.saveBudget()
	}
	return a, cmd
}

func (a App) updateGoalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a, a.step(a.nav.GoalBack())
	}
	if a.goalForm == nil {
		return a, nil
	}

	updated, cmd := a.goalForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		a.goalForm = f
	}

	switch a.goalForm.State {
	case huh.StateAborted:
		return a, a.step(a.nav.GoalBack())
	case huh.StateCompleted:
		return a.saveGoal()
	}
	return a, cmd
}

// saveBudget stores the submitted budget. A rejected draft keeps the form
// open with the entered values.
func (a App) saveBudget() (tea.Model, tea.Cmd) {
	d, err := a.budget.draft()
	if err == nil {
		var b model.Budget
		b, err = a.nav.BudgetSave(d)
		if err == nil {
			a.logger.Info("budget saved", zap.String("id", b.ID), zap.String("category", b.Category))
		}
	}
	if rejectedDraft(err) {
		a.logger.Info("budget rejected", zap.Error(err))
		a.notice = noticeFor(err)
		a.budgetForm = newBudgetForm(a.budget, a.width)
		return a, a.budgetForm.Init()
	}
	return a, a.step(err)
}

// saveGoal stores the submitted goal. A rejected draft keeps the form open
// with the entered values.
func (a App) saveGoal() (tea.Model, tea.Cmd) {
	d, err := a.goal.draft()
	if err == nil {
		var g model.Goal
		g, err = a.nav.GoalSave(d)
		if err == nil {
			a.logger.Info("goal saved", zap.String("id", g.ID), zap.String("name", g.Name))
		}
	}
	if rejectedDraft(err) {
		a.logger.Info("goal rejected", zap.Error(err))
		a.notice = noticeFor(err)
		a.goalForm = newGoalForm(a.goal, a.width)
		return a, a.goalForm.Init()
	}
	return a, a.step(err)
}

func rejectedDraft(err error) bool {
	return errors.Is(err, session.ErrValidation) ||
		errors.Is(err, cli.ErrInvalidAmount) ||
		errors.Is(err, cli.ErrInvalidDate)
}
