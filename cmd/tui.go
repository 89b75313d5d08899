package cmd

import (
	"fmt"

	"github.com/theirongolddev/lima/internal/config"
	"github.com/theirongolddev/lima/internal/logging"
	"github.com/theirongolddev/lima/internal/nav"
	"github.com/theirongolddev/lima/internal/tui"
	"github.com/theirongolddev/lima/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fastSpeedup divides every flow delay under --fast.
const fastSpeedup = 10

var flagSkipOnboarding bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive prototype",
	RunE:  runTUI,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().BoolVar(&flagSkipOnboarding, "skip-onboarding", false, "Start on the dashboard")
	}
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger, err := logging.New(cfg.Log, config.GetLogLevel(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ledger, err := openLedger()
	if err != nil {
		return fmt.Errorf("opening mock ledger: %w", err)
	}
	defer func() { _ = ledger.Close() }()

	speedup := 1.0
	if flagFast {
		speedup = fastSpeedup
	}
	start := nav.Welcome
	if flagSkipOnboarding {
		start = nav.Dashboard
	}

	app, err := tui.NewApp(ledger, tui.Options{
		Logger:      logger,
		Random:      randomSource(),
		Timings:     cfg.Flow.Timings(speedup),
		FailureRate: cfg.Flow.FailureRate,
		Currency:    cfg.General.Currency,
		Banks:       config.Catalog(cfg),
		Start:       start,
	})
	if err != nil {
		return err
	}
	logger.Info("session started",
		zap.Stringer("start", start),
		zap.Float64("failure_rate", cfg.Flow.FailureRate),
		zap.Bool("fast", flagFast))

	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if a, ok := final.(tui.App); ok {
		logger.Info("session ended",
			zap.Stringer("screen", a.Screen()),
			zap.Int("budgets", len(a.Sessions().ListBudgets())),
			zap.Int("goals", len(a.Sessions().ListGoals())))
	}
	return nil
}
