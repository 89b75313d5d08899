package cmd

import (
	"fmt"

	"github.com/theirongolddev/lima/internal/cli"
	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/pipeline"
	"github.com/theirongolddev/lima/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	txSource     string
	txCategories []string
	txSearch     string
	txGrouped    bool
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List mock transactions",
	RunE:    runTransactions,
}

func init() {
	addTransactionsFlags(transactionsCmd)
	rootCmd.AddCommand(transactionsCmd)
}

func addTransactionsFlags(c *cobra.Command) {
	c.Flags().StringVar(&txSource, "source", "all", "Direction: all, income or expense")
	c.Flags().StringSliceVarP(&txCategories, "category", "c", nil, "Only these categories (repeatable)")
	c.Flags().StringVarP(&txSearch, "search", "s", "", "Fuzzy merchant search")
	c.Flags().BoolVarP(&txGrouped, "group", "g", false, "Group by day")
}

// queryTransactions applies the --source, --category and --search flags.
func queryTransactions(ledger *store.Ledger) ([]model.Transaction, error) {
	source, err := store.ParseSource(txSource)
	if err != nil {
		return nil, err
	}
	txs, err := ledger.Transactions(store.Filter{Source: source, Categories: txCategories})
	if err != nil {
		return nil, err
	}
	if txSearch != "" {
		txs = pipeline.SearchMerchants(txs, txSearch)
	}
	return txs, nil
}

func runTransactions(cmd *cobra.Command, _ []string) error {
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

	txs, err := queryTransactions(ledger)
	if err != nil {
		return err
	}
	logger.Debug("transactions filtered",
		zap.String("source", txSource),
		zap.Strings("categories", txCategories),
		zap.String("search", txSearch),
		zap.Int("matches", len(txs)))

	if len(txs) == 0 {
		fmt.Println("\n  Ничего не найдено.")
		return nil
	}

	cur := cfg.General.Currency
	row := func(t model.Transaction) []string {
		return []string{
			cli.FormatDate(t.Date),
			t.Merchant,
			t.Category,
			cli.FormatSignedMoney(t.Amount, t.Type == model.TxIncome, cur),
		}
	}

	fmt.Println()
	if !txGrouped {
		rows := make([][]string, len(txs))
		for i, t := range txs {
			rows[i] = row(t)
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Дата", "Магазин", "Категория", "Сумма"},
			Rows:    rows,
		}))
		return nil
	}

	for _, g := range pipeline.GroupByDay(txs, nowFunc()) {
		rows := make([][]string, len(g.Transactions))
		for i, t := range g.Transactions {
			rows[i] = row(t)
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   g.Label,
			Headers: []string{"Дата", "Магазин", "Категория", "Сумма"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	return nil
}
