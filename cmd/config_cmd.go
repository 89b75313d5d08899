package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lima/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Flow]")
	fmt.Printf("    Connecting stage: %d ms (fade %d ms)\n", cfg.Flow.StageMS, cfg.Flow.FadeMS)
	fmt.Printf("    SMS autofill:     %d ms, confirm %d ms, verify %d ms\n",
		cfg.Flow.SMSAutofillMS, cfg.Flow.SMSConfirmMS, cfg.Flow.SMSVerifyMS)
	fmt.Printf("    Goals continue:   %d ms\n", cfg.Flow.GoalsAutoContinueMS)
	fmt.Printf("    Failure rate:     %g\n", cfg.Flow.FailureRate)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	} else {
		fmt.Println("    File:  not set (TUI logging disabled)")
	}
	fmt.Printf("    Level: %s\n", config.GetLogLevel(cfg))
	fmt.Println()

	fmt.Println("  [Banks]")
	ids := config.Catalog(cfg).IDs()
	if len(cfg.Banks) == 0 {
		fmt.Printf("    default catalog: %s\n", strings.Join(ids, ", "))
	} else {
		fmt.Printf("    %s\n", strings.Join(ids, ", "))
	}
	fmt.Println()

	fmt.Println("  Run `lima setup` to reconfigure.")
	return nil
}
