package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/nav"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var simulateRuns int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Draw bank connection outcomes and count them",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateRuns, "runs", "n", 1000, "Number of connection attempts")
	rootCmd.AddCommand(simulateCmd)
}

// SimulationResult counts connection outcomes.
type SimulationResult struct {
	Runs      int
	Completed int
	Failed    int
}

// simulate draws runs outcomes from src.
func simulate(src nav.RandomSource, failureRate float64, runs int) SimulationResult {
	res := SimulationResult{Runs: runs}
	for range runs {
		if nav.Outcome(src, failureRate) == nav.EventConnectingComplete {
			res.Completed++
		} else {
			res.Failed++
		}
	}
	return res
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if simulateRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", simulateRuns)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	src := randomSource()
	if src == nil {
		src = nav.RandomFunc(rand.Float64)
	}
	rate := cfg.Flow.FailureRate
	res := simulate(src, rate, simulateRuns)
	logger.Debug("simulation finished",
		zap.Uint64("seed", flagSeed),
		zap.Float64("failure_rate", rate),
		zap.Int("completed", res.Completed),
		zap.Int("failed", res.Failed))

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Подключения  failure_rate=%g", rate),
		Headers: []string{"Исход", "Кол-во", "Доля"},
		Rows: [][]string{
			{"bank_success", cli.FormatNumber(int64(res.Completed)), cli.FormatPercent(float64(res.Completed) / float64(res.Runs))},
			{"bank_error", cli.FormatNumber(int64(res.Failed)), cli.FormatPercent(float64(res.Failed) / float64(res.Runs))},
		},
	}))
	return nil
}
