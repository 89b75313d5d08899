package cmd

import (
	"fmt"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/config"

	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the banks offered for linking",
	RunE:  runBanks,
}

func init() {
	rootCmd.AddCommand(banksCmd)
}

func runBanks(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	source := "по умолчанию"
	if len(cfg.Banks) > 0 {
		source = config.ConfigPath()
	}

	catalog := config.Catalog(cfg)
	rows := make([][]string, len(catalog))
	for i, b := range catalog {
		rows[i] = []string{b.ID, b.Name, b.Color}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Банки (" + source + ")",
		Headers: []string{"ID", "Название", "Цвет"},
		Rows:    rows,
	}))
	return nil
}
