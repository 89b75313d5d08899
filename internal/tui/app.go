// Package tui provides the interactive Bubble Tea app for lima.
package tui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/config"
	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/nav"
	"github.com/theirongolddev/lima/internal/pipeline"
	"github.com/theirongolddev/lima/internal/session"
	"github.com/theirongolddev/lima/internal/store"
	"github.com/theirongolddev/lima/internal/tui/components"
	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Options configures NewApp. Zero Logger, Random, Timings, Currency, Banks
// and Now get defaults. FailureRate is used as given, so zero means every
// connection succeeds.
type Options struct {
	Logger      *zap.Logger
	Random      nav.RandomSource
	Timings     config.Timings
	FailureRate float64
	Currency    string
	Banks       model.Catalog
	// Start skips the onboarding when set to nav.Dashboard.
	Start nav.Screen
	Now   func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	nav      *nav.Navigator
	ledger   *store.Ledger
	sessions *session.Store
	snap     *pipeline.Snapshot
	logger   *zap.Logger

	rng         nav.RandomSource
	timings     config.Timings
	failureRate float64
	currency    string
	now         func() time.Time

	// UI state
	width  int
	height int
	notice string

	// Per-screen state, reset by enter()
	story      int
	regForm    *huh.Form
	reg        *registrationValues
	sms        smsState
	goals      goalPickState
	bankCursor int
	conn       connectState
	spinner    spinner.Model
	tx         txState
	budgetForm *huh.Form
	budget     *budgetValues
	goalForm   *huh.Form
	goal       *goalValues
}

type smsState struct {
	code     textinput.Model
	filled   bool // auto-filled by the simulated SMS
	verified bool
}

type goalPickState struct {
	cursor   int
	selected map[model.GoalTag]bool
}

type connectState struct {
	stage  int
	fading bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
	minContentHeight = 5
)

// NewApp creates the app over a seeded ledger.
func NewApp(l *store.Ledger, opts Options) (App, error) {
	snap, err := pipeline.LoadDashboard(l)
	if err != nil {
		return App{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Random
	if rng == nil {
		rng = nav.RandomFunc(rand.Float64)
	}
	timings := opts.Timings
	if timings == (config.Timings{}) {
		timings = config.DefaultConfig().Flow.Timings(1)
	}
	currency := opts.Currency
	if currency == "" {
		currency = config.DefaultConfig().General.Currency
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sessions := session.New()
	navOpts := []nav.Option{
		nav.WithBanks(opts.Banks),
		nav.WithObserver(transitionLogger(logger)),
	}
	switch opts.Start {
	case nav.Welcome:
	case nav.Dashboard:
		navOpts = append(navOpts, nav.WithState(nav.State{Screen: nav.Dashboard}))
	default:
		return App{}, fmt.Errorf("cannot start on %s", opts.Start)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		nav:         nav.New(sessions, navOpts...),
		ledger:      l,
		sessions:    sessions,
		snap:        snap,
		logger:      logger,
		rng:         rng,
		timings:     timings,
		failureRate: opts.FailureRate,
		currency:    currency,
		now:         now,
		spinner:     sp,
		goals:       goalPickState{selected: make(map[model.GoalTag]bool)},
	}, nil
}

func transitionLogger(logger *zap.Logger) nav.Observer {
	return func(from, to nav.State, ev nav.Event) {
		logger.Debug("transition",
			zap.Stringer("event", ev.Kind),
			zap.Stringer("from", from.Screen),
			zap.Stringer("to", to.Screen),
			zap.String("bank_id", to.Context.SelectedBankID),
			zap.Bool("connecting", to.Context.IsConnecting),
			zap.Bool("came_from_dashboard", to.Context.CameFromDashboard),
		)
	}
}

// Screen returns the active screen.
func (a App) Screen() nav.Screen { return a.nav.Screen() }

// Sessions exposes the budgets and goals created so far.
func (a App) Sessions() *session.Store { return a.sessions }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, f := range []*huh.Form{a.regForm, a.budgetForm, a.goalForm} {
			if f != nil {
				f.WithWidth(min(msg.Width-4, 60))
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)

	case timerMsg:
		return a.updateTimer(msg)

	case spinner.TickMsg:
		if a.nav.Screen() != nav.BankConnecting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward everything else (cursor blinks, form internals) to the
	// active input.
	return a.forward(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.nav.Screen() {
	case nav.Welcome:
		return a.updateWelcome(msg)
	case nav.Onboarding:
		return a.updateOnboarding(msg)
	case nav.Registration:
		return a.updateRegistration(msg)
	case nav.SMSVerification:
		return a.updateSMS(msg)
	case nav.RegistrationSuccess:
		return a.updateRegistrationSuccess(msg)
	case nav.GoalSelection:
		return a.updateGoalSelection(msg)
	case nav.BankSelection:
		return a.updateBankSelection(msg)
	case nav.BankPermissions:
		return a.updateBankPermissions(msg)
	case nav.BankConnecting:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case nav.BankSuccess:
		return a.updateBankSuccess(msg)
	case nav.BankError:
		return a.updateBankError(msg)
	case nav.Dashboard:
		return a.updateDashboard(msg)
	case nav.Transactions:
		return a.updateTransactions(msg)
	case nav.SetBudget:
		return a.updateBudgetForm(msg)
	case nav.CreateGoal:
		return a.updateGoalForm(msg)
	}
	return a, nil
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.nav.Screen() {
	case nav.Registration:
		return a.updateRegistration(msg)
	case nav.SetBudget:
		return a.updateBudgetForm(msg)
	case nav.CreateGoal:
		return a.updateGoalForm(msg)
	case nav.SMSVerification:
		var cmd tea.Cmd
		a.sms.code, cmd = a.sms.code.Update(msg)
		return a, cmd
	case nav.Transactions:
		if a.tx.searching {
			var cmd tea.Cmd
			a.tx.search, cmd = a.tx.search.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// step applies the result of a navigator call: on success it sets up the
// new screen, on failure it shows the error and stays put.
func (a *App) step(err error) tea.Cmd {
	if err != nil {
		a.logger.Warn("transition rejected", zap.Stringer("screen", a.nav.Screen()), zap.Error(err))
		a.notice = noticeFor(err)
		return nil
	}
	a.notice = ""
	return a.enter()
}

func noticeFor(err error) string {
	var verr *session.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Проверьте поле «" + fieldTitle(verr.Field) + "»: " + verr.Reason
	case errors.Is(err, nav.ErrUnknownBank):
		return "Банк недоступен"
	case errors.Is(err, nav.ErrInvalidPayload):
		return "Заполните данные"
	case errors.Is(err, cli.ErrInvalidAmount):
		return "Неверная сумма"
	case errors.Is(err, cli.ErrInvalidDate):
		return "Неверная дата"
	}
	return "Действие недоступно"
}

func fieldTitle(field string) string {
	switch field {
	case "amount":
		return "Лимит"
	case "target":
		return "Сумма цели"
	case "end_date":
		return "Окончание"
	case "name":
		return "Название цели"
	case "category":
		return "Категория"
	}
	return field
}

// enter prepares the state of the screen just entered and starts its timers.
func (a *App) enter() tea.Cmd {
	switch a.nav.Screen() {
	case nav.Onboarding:
		a.story = 0

	case nav.Registration:
		if a.reg == nil {
			a.reg = &registrationValues{}
		}
		// Keep the typed email when coming back from the SMS screen.
		a.reg.password = ""
		a.regForm = newRegistrationForm(a.reg, a.width)
		return a.regForm.Init()

	case nav.SMSVerification:
		a.sms = newSMSState()
		lease := a.nav.Acquire()
		return tea.Batch(textinput.Blink, schedule(a.timings.SMSAutofill, lease, timerSMSAutofill))

	case nav.GoalSelection:
		a.goals.cursor = 0
		a.goals.selected = make(map[model.GoalTag]bool)
		for _, g := range a.nav.Context().SelectedGoals {
			a.goals.selected[g] = true
		}

	case nav.BankSelection:
		a.bankCursor = 0

	case nav.BankPermissions:
		if _, ok := a.nav.SelectedBank(); !ok {
			a.logger.DPanic("bank permissions without a known bank",
				zap.String("bank_id", a.nav.Context().SelectedBankID))
		}

	case nav.BankConnecting:
		a.conn = connectState{}
		lease := a.nav.Acquire()
		return tea.Batch(a.spinner.Tick, schedule(a.timings.Stage, lease, timerStageDone))

	case nav.Transactions:
		a.tx = newTxState()
		a.reloadTransactions()

	case nav.SetBudget:
		a.budget = defaultBudgetValues(a.now())
		a.budgetForm = newBudgetForm(a.budget, a.width)
		return a.budgetForm.Init()

	case nav.CreateGoal:
		a.goal = defaultGoalValues(a.now())
		a.goalForm = newGoalForm(a.goal, a.width)
		return a.goalForm.Init()
	}
	return nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	statusBar := components.RenderStatusBar(w, a.hints(), a.notice)
	contentH := max(a.height-lipgloss.Height(statusBar), minContentHeight)

	content := a.viewScreen(cw, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewScreen(cw, h int) string {
	switch a.nav.Screen() {
	case nav.Welcome:
		return a.viewWelcome(cw, h)
	case nav.Onboarding:
		return a.viewOnboarding(cw, h)
	case nav.Registration:
		return a.viewRegistration(cw)
	case nav.SMSVerification:
		return a.viewSMS(cw)
	case nav.RegistrationSuccess:
		return a.viewRegistrationSuccess(cw, h)
	case nav.GoalSelection:
		return a.viewGoalSelection(cw)
	case nav.BankSelection:
		return a.viewBankSelection(cw)
	case nav.BankPermissions:
		return a.viewBankPermissions(cw)
	case nav.BankConnecting:
		return a.viewBankConnecting(cw, h)
	case nav.BankSuccess:
		return a.viewBankSuccess(cw, h)
	case nav.BankError:
		return a.viewBankError(cw, h)
	case nav.Dashboard:
		return a.viewDashboard(cw)
	case nav.Transactions:
		return a.viewTransactions(cw, h)
	case nav.SetBudget:
		return a.viewForm("Установить бюджет", a.budgetForm, cw)
	case nav.CreateGoal:
		return a.viewForm("Новая цель", a.goalForm, cw)
	}
	return ""
}

func (a App) hints() []components.KeyHint {
	back := components.KeyHint{Key: "esc", Desc: "назад"}
	next := components.KeyHint{Key: "enter", Desc: "далее"}
	quit := components.KeyHint{Key: "q", Desc: "выход"}
	switch a.nav.Screen() {
	case nav.Welcome:
		return []components.KeyHint{{Key: "enter", Desc: "начать"}, quit}
	case nav.Onboarding:
		return []components.KeyHint{{Key: "← →", Desc: "истории"}, next, quit}
	case nav.Registration, nav.SetBudget, nav.CreateGoal:
		return []components.KeyHint{{Key: "tab", Desc: "поле"}, {Key: "enter", Desc: "готово"}, back}
	case nav.SMSVerification:
		return []components.KeyHint{{Key: "0-9", Desc: "код"}, back}
	case nav.GoalSelection:
		return []components.KeyHint{{Key: "↑↓", Desc: "выбор"}, {Key: "space", Desc: "отметить"}, next, back}
	case nav.BankSelection:
		return []components.KeyHint{{Key: "↑↓", Desc: "банк"}, {Key: "enter", Desc: "выбрать"}, back}
	case nav.BankPermissions:
		return []components.KeyHint{{Key: "enter", Desc: "подключить"}, back}
	case nav.BankConnecting:
		return []components.KeyHint{quit}
	case nav.BankSuccess:
		return []components.KeyHint{{Key: "enter", Desc: "на главную"}, {Key: "esc", Desc: "другой банк"}}
	case nav.BankError:
		return []components.KeyHint{{Key: "enter", Desc: "повторить"}, back}
	case nav.Dashboard:
		return []components.KeyHint{
			{Key: "a", Desc: "банк"}, {Key: "t", Desc: "операции"},
			{Key: "b", Desc: "бюджет"}, {Key: "g", Desc: "цель"}, quit,
		}
	case nav.Transactions:
		if a.tx.searching {
			return []components.KeyHint{{Key: "enter", Desc: "искать"}, {Key: "esc", Desc: "отмена"}}
		}
		return []components.KeyHint{
			{Key: "1-3", Desc: "тип"}, {Key: "← → space", Desc: "категории"},
			{Key: "/", Desc: "поиск"}, back,
		}
	}
	return nil
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  lima needs at least %d columns.\n",
		a.width, minTerminalWidth)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm(title string, f *huh.Form, cw int) string {
	if f == nil {
		return ""
	}
	body := f.View()
	return "\n" + components.ContentCard(title, body, min(cw, 70))
}

// centered places a card in the middle of the content area.
func centered(card string, cw, h int) string {
	return lipgloss.Place(cw, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(theme.Active.Background))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads every line to w so no cell is left without
// the theme background.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if gap := w - lipgloss.Width(line); gap > 0 {
			lines[i] = line + style.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}
