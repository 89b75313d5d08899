// Package cmd implements the lima CLI commands.
package cmd

import (
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/theirongolddev/lima/internal/config"
	"github.com/theirongolddev/lima/internal/logging"
	"github.com/theirongolddev/lima/internal/nav"
	"github.com/theirongolddev/lima/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagFast        bool
	flagSeed        uint64
	flagFailureRate float64
	flagVerbose     bool
	flagLogFile     string
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "lima",
	Short: "Personal finance prototype in the terminal",
	Long:  "Walk through onboarding, link a mock bank and explore a dashboard of mocked accounts, budgets and goals.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagFast, "fast", false, "Shorten all flow delays for demos")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Seed for the connection outcome draws (0 = random)")
	rootCmd.PersistentFlags().Float64Var(&flagFailureRate, "failure-rate", nav.DefaultFailureRate, "Share of bank connections that fail")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write TUI logs to this file")
}

// loadConfig reads the config file and applies the flag overrides set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	cfg.Flow.FailureRate = failureRate(cmd, cfg)
	return cfg, cfg.Validate()
}

// failureRate prefers --failure-rate, then LIMA_FAILURE_RATE, then the config.
func failureRate(cmd *cobra.Command, cfg config.Config) float64 {
	if f := cmd.Flag("failure-rate"); f != nil && f.Changed {
		if r, err := strconv.ParseFloat(f.Value.String(), 64); err == nil {
			return r
		}
	}
	return config.GetFailureRate(cfg)
}

// randomSource returns a seeded generator when --seed is set, otherwise nil
// so callers fall back to the global source.
func randomSource() nav.RandomSource {
	if flagSeed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(flagSeed, flagSeed))
}

// openLedger opens the in-memory mock bank seeded relative to today.
func openLedger() (*store.Ledger, error) {
	return store.OpenSeeded(store.DefaultFixtures(nowFunc()))
}

// cliLogger is the stderr logger of the non-interactive commands.
func cliLogger() *zap.Logger {
	logger, err := logging.NewCLI(flagVerbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
