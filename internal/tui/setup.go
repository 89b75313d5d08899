package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/lima/internal/config"
	"github.com/theirongolddev/lima/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// Flow speed presets offered by the setup form.
const (
	SpeedNormal = "normal"
	SpeedFast   = "fast"
)

// fastDivisor shortens every flow delay in the fast preset.
const fastDivisor = 4

// SetupValues are the answers of the setup form.
type SetupValues struct {
	Theme       string
	Speed       string
	FailureRate string
}

// SetupValuesFrom pre-fills the form from an existing config.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	speed := SpeedNormal
	if cfg.Flow.StageMS < config.DefaultConfig().Flow.StageMS {
		speed = SpeedFast
	}
	return &SetupValues{
		Theme:       cfg.Appearance.Theme,
		Speed:       speed,
		FailureRate: strconv.FormatFloat(cfg.Flow.FailureRate, 'f', -1, 64),
	}
}

func validateRate(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || f > 1 {
		return errors.New("число от 0 до 1")
	}
	return nil
}

// NewSetupForm builds the first-run setup form writing into v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themes := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themes[i] = huh.NewOption(th.Name, th.Name)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Цветовая тема").
				Options(themes...).
				Value(&v.Theme),
			huh.NewSelect[string]().
				Title("Скорость анимаций").
				Options(
					huh.NewOption("Как в прототипе", SpeedNormal),
					huh.NewOption("Быстро (для демо)", SpeedFast),
				).
				Value(&v.Speed),
			huh.NewInput().
				Title("Доля неудачных подключений").
				Description("0 — всегда успешно, 1 — всегда ошибка").
				Value(&v.FailureRate).
				Validate(validateRate),
		),
	)
}

// Apply writes the answers into cfg.
func (v *SetupValues) Apply(cfg config.Config) (config.Config, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(v.FailureRate), 64)
	if err != nil {
		return cfg, errors.New("failure rate must be a number")
	}

	cfg.Appearance.Theme = theme.ByName(v.Theme).Name

	cfg.Flow = config.DefaultConfig().Flow
	if v.Speed == SpeedFast {
		f := &cfg.Flow
		for _, ms := range []*int{&f.StageMS, &f.FadeMS, &f.SMSAutofillMS, &f.SMSConfirmMS, &f.SMSVerifyMS, &f.GoalsAutoContinueMS} {
			*ms = max(*ms/fastDivisor, 1)
		}
	}
	cfg.Flow.FailureRate = rate

	return cfg, cfg.Validate()
}
