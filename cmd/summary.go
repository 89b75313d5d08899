package cmd

import (
	"fmt"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Accounts, balances and spending of the mock bank",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cliLogger()
	defer func() { _ = logger.Sync() }()

	ledger, err := openLedger()
	if err != nil {
		return fmt.Errorf("opening mock ledger: %w", err)
	}
	defer func() { _ = ledger.Close() }()

	snap, err := pipeline.LoadDashboard(ledger)
	if err != nil {
		return err
	}
	logger.Debug("dashboard loaded",
		zap.Int("accounts", len(snap.Accounts)),
		zap.Int("transactions", len(snap.Transactions)))

	cur := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("LIMA  Сводка"))
	fmt.Println()

	accounts := make([][]string, 0, len(snap.Accounts)+2)
	for _, a := range snap.Accounts {
		accounts = append(accounts, []string{a.BankName, cli.FormatMoney(a.Balance, cur)})
	}
	accounts = append(accounts,
		[]string{"---"},
		[]string{"Общий баланс", cli.FormatMoney(snap.TotalBalance, cur)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Счета",
		Headers: []string{"Банк", "Баланс"},
		Rows:    accounts,
	}))
	fmt.Println()

	stats := pipeline.SourceStats(snap.Transactions)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Операции",
		Headers: []string{"", "Кол-во", "Сумма"},
		Rows: [][]string{
			{"Доходы", cli.FormatNumber(int64(stats.IncomeCount)), cli.FormatMoney(stats.IncomeTotal, cur)},
			{"Расходы", cli.FormatNumber(int64(stats.ExpenseCount)), cli.FormatMoney(stats.ExpenseTotal, cur)},
			{"---"},
			{"Потрачено за месяц", "", cli.FormatMoney(snap.MonthSpent, cur)},
		},
	}))
	fmt.Println()

	breakdown := pipeline.CategoryBreakdown(snap.Transactions)
	rows := make([][]string, len(breakdown))
	for i, c := range breakdown {
		rows[i] = []string{c.Category, cli.FormatMoney(c.Total, cur), cli.FormatPercent(c.Share)}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Расходы по категориям",
		Headers: []string{"Категория", "Сумма", "Доля"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Println(cli.Muted("  Последние операции:"))
	for _, t := range snap.Recent {
		amount := cli.FormatSignedMoney(t.Amount, false, cur)
		fmt.Printf("    %-20s %s\n", t.Merchant, cli.Amount(amount, false))
	}
	fmt.Println()
	return nil
}
