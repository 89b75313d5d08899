package tui

import (
	"strings"

	"github.com/theirongolddev/lima/internal/tui/components"
	"github.com/theirongolddev/lima/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var permissionRows = [...]struct{ title, desc string }{
	{"История транзакций", "Доступ к истории ваших операций"},
	{"Баланс", "Информация о текущем балансе"},
	{"Счета", "Список ваших счетов и карт"},
}

var connectStageText = [connectStages]string{
	"Анализируем ваши транзакции...",
	"Смотрим счета...",
	"Изучаем баланс...",
}

func (a App) updateBankSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	banks := a.nav.Catalog()
	switch msg.String() {
	case "up", "k":
		if a.bankCursor > 0 {
			a.bankCursor--
		}
	case "down", "j":
		if a.bankCursor < len(banks)-1 {
			a.bankCursor++
		}
	case "enter", " ":
		if a.bankCursor < len(banks) {
			return a, a.step(a.nav.BankChosen(banks[a.bankCursor].ID))
		}
	case "esc":
		return a, a.step(a.nav.BanksBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewBankSelection(cw int) string {
	t := theme.Active
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render("Выберите банк"))
	b.WriteString("\n\n")
	for i, bank := range a.nav.Catalog() {
		cursor := "  "
		name := lipgloss.NewStyle().Foreground(t.TextMuted)
		if i == a.bankCursor {
			cursor = "> "
			name = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
		}
		badge := lipgloss.NewStyle().Foreground(bankColor(bank.Color)).Render("●")
		b.WriteString(cursor + badge + " " + name.Render(bank.Name))
		b.WriteString("\n")
	}
	return "\n" + components.ContentCard("Подключите банк", b.String(), min(cw, 70))
}

func bankColor(hex string) lipgloss.Color {
	if hex == "" {
		return theme.Active.Accent
	}
	return lipgloss.Color(hex)
}

func (a App) updateBankPermissions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return a, a.step(a.nav.PermissionsConnect())
	case "esc":
		return a, a.step(a.nav.PermissionsBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewBankPermissions(cw int) string {
	t := theme.Active
	bank, ok := a.nav.SelectedBank()
	if !ok {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	title := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(bankColor(bank.Color)).Bold(true).Render("● " + bank.Name))
	b.WriteString("\n\n")
	b.WriteString(muted.Render("К какой информации мы хотим иметь доступ:"))
	b.WriteString("\n\n")
	for _, p := range permissionRows {
		b.WriteString(title.Render(p.title))
		b.WriteString("\n")
		b.WriteString(muted.Render(p.desc))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Accent).Padding(0, 2).Render("Подключить"))
	return "\n" + components.ContentCard("Разрешения", b.String(), min(cw, 70))
}

func (a App) viewBankConnecting(cw, h int) string {
	t := theme.Active
	text := connectStageText[min(a.conn.stage, connectStages-1)]
	color := t.TextPrimary
	if a.conn.fading {
		color = t.TextDim
	}
	line := a.spinner.View() + " " + lipgloss.NewStyle().Foreground(color).Render(text)
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render("Подключаем банк"),
		"",
		components.StepDots(a.conn.stage, connectStages),
		"",
		line,
	)
	return centered(body, cw, h)
}

func (a App) updateBankSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return a, a.step(a.nav.BankSuccessToDashboard())
	case "esc":
		return a, a.step(a.nav.BankSuccessBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewBankSuccess(cw, h int) string {
	t := theme.Active
	name := ""
	if bank, ok := a.nav.SelectedBank(); ok {
		name = bank.Name
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("✓"),
		"",
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Банк успешно подключён"),
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(name),
	)
	return centered(body, cw, h)
}

func (a App) updateBankError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		return a, a.step(a.nav.ErrorRetry())
	case "esc":
		return a, a.step(a.nav.ErrorBack())
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) viewBankError(cw, h int) string {
	t := theme.Active
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("✕"),
		"",
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("Не удалось подключить"),
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("Попробуйте ещё раз или выберите другой банк"),
	)
	return centered(body, cw, h)
}
