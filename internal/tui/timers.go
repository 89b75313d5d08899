package tui

import (
	"time"

	"github.com/theirongolddev/lima/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type timerKind int

const (
	timerSMSAutofill timerKind = iota
	timerSMSConfirmed
	timerSMSVerify
	timerGoalsContinue
	timerStageDone
	timerFadeDone
)

var timerNames = [...]string{
	timerSMSAutofill:   "sms_autofill",
	timerSMSConfirmed:  "sms_confirmed",
	timerSMSVerify:     "sms_verify",
	timerGoalsContinue: "goals_continue",
	timerStageDone:     "stage_done",
	timerFadeDone:      "fade_done",
}

func (k timerKind) String() string { return timerNames[k] }

// connectStages is the number of connecting steps. Each one fades out before
// the next starts, and the outcome is drawn after the last fade.
const connectStages = 3

// timerMsg is delivered when a scheduled delay elapses. It only acts if its
// lease is still the live lease of the current screen.
type timerMsg struct {
	lease nav.Lease
	kind  timerKind
}

func schedule(d time.Duration, lease nav.Lease, kind timerKind) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{lease: lease, kind: kind}
	})
}

func (a App) updateTimer(msg timerMsg) (tea.Model, tea.Cmd) {
	if !a.nav.Valid(msg.lease) {
		a.logger.Debug("stale timer dropped",
			zap.Stringer("timer", msg.kind),
			zap.Stringer("scheduled_on", msg.lease.Screen()),
			zap.Stringer("screen", a.nav.Screen()),
		)
		return a, nil
	}

	switch msg.kind {
	case timerSMSAutofill:
		a.sms.code.SetValue(smsDemoCode)
		a.sms.filled = true
		return a, schedule(a.timings.SMSConfirm, msg.lease, timerSMSConfirmed)

	case timerSMSConfirmed:
		a.sms.verified = true
		return a, schedule(a.timings.SMSVerify, msg.lease, timerSMSVerify)

	case timerSMSVerify:
		return a, a.step(a.nav.SMSVerified())

	case timerGoalsContinue:
		return a.submitGoals()

	case timerStageDone:
		a.conn.fading = true
		return a, schedule(a.timings.Fade, msg.lease, timerFadeDone)

	case timerFadeDone:
		a.conn.fading = false
		a.conn.stage++
		if a.conn.stage < connectStages {
			return a, schedule(a.timings.Stage, msg.lease, timerStageDone)
		}
		kind, err := a.nav.ResolveConnection(a.rng, a.failureRate)
		if err == nil {
			a.logger.Info("connection resolved",
				zap.Stringer("outcome", kind),
				zap.String("bank_id", a.nav.Context().SelectedBankID))
		}
		return a, a.step(err)
	}
	return a, nil
}
