package cmd

import (
	"testing"
	"time"

	"github.com/theirongolddev/lima/internal/model"
	"github.com/theirongolddev/lima/internal/store"

	"github.com/spf13/cobra"
)

func parseTransactionsFlags(t *testing.T, args ...string) {
	t.Helper()
	t.Cleanup(func() {
		txSource, txCategories, txSearch, txGrouped = "all", nil, "", false
	})
	c := &cobra.Command{Use: "transactions"}
	addTransactionsFlags(c)
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
}

func openTestLedger(t *testing.T) *store.Ledger {
	t.Helper()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	l, err := store.OpenSeeded(store.DefaultFixtures(now))
	if err != nil {
		t.Fatalf("OpenSeeded: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestTransactionsFlagsParse(t *testing.T) {
	parseTransactionsFlags(t, "--source", "expense", "-c", "Еда", "-c", "Косметика", "-g")

	if txSource != "expense" || !txGrouped {
		t.Fatalf("source = %q, grouped = %v", txSource, txGrouped)
	}
	if len(txCategories) != 2 || txCategories[0] != "Еда" || txCategories[1] != "Косметика" {
		t.Fatalf("categories = %q, want [Еда Косметика]", txCategories)
	}
}

func TestQueryTransactionsBySourceAndCategory(t *testing.T) {
	l := openTestLedger(t)

	parseTransactionsFlags(t, "--source=income")
	got, err := queryTransactions(l)
	if err != nil {
		t.Fatalf("queryTransactions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("income rows = %d, want 3", len(got))
	}
	for _, tx := range got {
		if tx.Type != model.TxIncome {
			t.Fatalf("income filter returned %+v", tx)
		}
	}

	parseTransactionsFlags(t, "--source=expense", "--category=Косметика")
	got, err = queryTransactions(l)
	if err != nil {
		t.Fatalf("queryTransactions: %v", err)
	}
	if len(got) != 1 || got[0].Merchant != "Золотое яблоко" {
		t.Fatalf("Косметика rows = %+v, want Золотое яблоко only", got)
	}
}

func TestQueryTransactionsSearch(t *testing.T) {
	l := openTestLedger(t)
	parseTransactionsFlags(t, "-s", "ВкусВилл")

	got, err := queryTransactions(l)
	if err != nil {
		t.Fatalf("queryTransactions: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("search rows = %d, want 6", len(got))
	}
}

func TestQueryTransactionsUnknownSource(t *testing.T) {
	l := openTestLedger(t)
	parseTransactionsFlags(t, "--source", "refund")

	if _, err := queryTransactions(l); err == nil {
		t.Fatal("queryTransactions accepted source refund")
	}
}
