package tui

import (
	"strings"

	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/tui/components"
	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// smsDemoCode is the code the simulated SMS delivers.
const smsDemoCode = "3824"

var stories = [...]string{
	"Наведи порядок в финансах",
	"Подключи банк и следи за деньгами",
	"Достигай целей",
}

func newSMSState() smsState {
	ti := textinput.New()
	ti.Placeholder = "____"
	ti.CharLimit = len(smsDemoCode)
	ti.Width = 6
	ti.Prompt = ""
	ti.Focus()
	return smsState{code: ti}
}

// ─── Welcome / onboarding ───────────────────────────────────────

func (a App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return a, a.step(a.nav.Start())
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if a.story > 0 {
			a.story--
		}
	case "right", "l":
		if a.story < len(stories)-1 {
			a.story++
		}
	case "enter", " ":
		if a.story < len(stories)-1 {
			a.story++
			return a, nil
		}
		return a, a.step(a.nav.OnboardingDone())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewWelcome(cw, h int) string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("Lima")
	tagline := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Все банковские счета в одном приложении")
	button := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Accent).Bold(true).Padding(0, 3).Render("Начать")
	body := lipgloss.JoinVertical(lipgloss.Center, logo, "", tagline, "", "", button)
	return centered(body, cw, h)
}

func (a App) viewOnboarding(cw, h int) string {
	t := theme.Active
	text := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(stories[a.story])
	action := "→ дальше"
	if a.story == len(stories)-1 {
		action = "enter: продолжить"
	}
	hint := lipgloss.NewStyle().Foreground(t.TextMuted).Render(action)
	body := lipgloss.JoinVertical(lipgloss.Center,
		components.StepDots(a.story, len(stories)), "", "", text, "", "", hint)
	return centered(body, cw, h)
}

// ─── Registration ───────────────────────────────────────────────

func (a App) updateRegistration(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a, a.step(a.nav.RegistrationBack())
	}
	if a.regForm == nil {
		return a, nil
	}

	updated, cmd := a.regForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		a.regForm = f
	}

	switch a.regForm.State {
	case huh.StateCompleted:
		return a.submitRegistration()
	case huh.StateAborted:
		return a, a.step(a.nav.RegistrationBack())
	}
	return a, cmd
}

func (a App) submitRegistration() (tea.Model, tea.Cmd) {
	return a, a.step(a.nav.RegistrationSubmit(a.reg.email))
}

func (a App) viewRegistration(cw int) string {
	t := theme.Active
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Получите все преимущества Lima")
	form := ""
	if a.regForm != nil {
		form = a.regForm.View()
	}
	return "\n" + components.ContentCard("Зарегистрируйтесь", sub+"\n\n"+form, min(cw, 70))
}

// ─── SMS verification ───────────────────────────────────────────

func (a App) updateSMS(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.step(a.nav.SMSBack())
	case "q":
		return a, tea.Quit
	}
	if a.sms.verified || a.sms.filled {
		return a, nil
	}
	if msg.Type == tea.KeyRunes && !isDigits(string(msg.Runes)) {
		return a, nil
	}

	var cmd tea.Cmd
	a.sms.code, cmd = a.sms.code.Update(msg)
	if len(a.sms.code.Value()) == len(smsDemoCode) {
		a.sms.verified = true
		// A fresh lease retires the pending autofill.
		lease := a.nav.Acquire()
		return a, tea.Batch(cmd, schedule(a.timings.SMSVerify, lease, timerSMSVerify))
	}
	return a, cmd
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (a App) viewSMS(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	email := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(a.nav.Context().Email)

	var b strings.Builder
	b.WriteString(muted.Render("Введите код"))
	b.WriteString("\n")
	b.WriteString(muted.Render("Мы отправили код на ") + email)
	b.WriteString("\n\n")

	codeStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(0, 1)
	b.WriteString(codeStyle.Render(a.sms.code.View()))
	b.WriteString("\n\n")

	switch {
	case a.sms.verified:
		b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render("✓ Код подтверждён"))
	case a.sms.filled:
		b.WriteString(muted.Render("Код получен из SMS"))
	default:
		b.WriteString(muted.Render("Ожидаем SMS..."))
	}
	return "\n" + components.ContentCard("Регистрация", b.String(), min(cw, 70))
}

// ─── Registration success ───────────────────────────────────────

func (a App) updateRegistrationSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return a, a.step(a.nav.SuccessContinue())
	case "esc":
		return a, a.step(a.nav.SuccessBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewRegistrationSuccess(cw, h int) string {
	t := theme.Active
	check := lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("✓")
	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Вы зарегистрированы")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Осталось выбрать цели и подключить банк")
	return centered(lipgloss.JoinVertical(lipgloss.Center, check, "", title, sub), cw, h)
}

// ─── Goal selection ─────────────────────────────────────────────

func (a App) updateGoalSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tags := model.GoalTags
	switch msg.String() {
	case "up", "k":
		if a.goals.cursor > 0 {
			a.goals.cursor--
		}
	case "down", "j":
		if a.goals.cursor < len(tags)-1 {
			a.goals.cursor++
		}
	case " ", "x":
		return a.toggleGoal(tags[a.goals.cursor])
	case "enter":
		return a.submitGoals()
	case "esc":
		return a, a.step(a.nav.GoalsBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// toggleGoal flips one goal and restarts the auto-continue countdown, or
// cancels it when nothing is left selected.
func (a App) toggleGoal(tag model.GoalTag) (tea.Model, tea.Cmd) {
	selected := make(map[model.GoalTag]bool, len(a.goals.selected)+1)
	for k, v := range a.goals.selected {
		selected[k] = v
	}
	if selected[tag] {
		delete(selected, tag)
	} else {
		selected[tag] = true
	}
	a.goals.selected = selected

	if len(selected) == 0 {
		a.nav.Release()
		return a, nil
	}
	lease := a.nav.Acquire()
	return a, schedule(a.timings.GoalsAutoContinue, lease, timerGoalsContinue)
}

func (a App) selectedGoals() []model.GoalTag {
	var out []model.GoalTag
	for _, g := range model.GoalTags {
		if a.goals.selected[g] {
			out = append(out, g)
		}
	}
	return out
}

func (a App) submitGoals() (tea.Model, tea.Cmd) {
	goals := a.selectedGoals()
	if len(goals) == 0 {
		a.notice = "Выберите хотя бы одну цель"
		return a, nil
	}
	return a, a.step(a.nav.GoalsSubmit(goals))
}

func (a App) viewGoalSelection(cw int) string {
	t := theme.Active
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("Что для вас важно?"))
	b.WriteString("\n\n")
	for i, g := range model.GoalTags {
		mark := "[ ]"
		style := lipgloss.NewStyle().Foreground(t.TextMuted)
		if a.goals.selected[g] {
			mark = "[x]"
			style = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		}
		cursor := "  "
		if i == a.goals.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + style.Render(mark+" "+g.Title()))
		b.WriteString("\n")
	}
	return "\n" + components.ContentCard("Финансовые цели", b.String(), min(cw, 70))
}
