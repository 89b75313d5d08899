package pipeline

import (
	"testing"
)

func merchants(t *testing.T, query string) []string {
	t.Helper()
	var out []string
	seen := make(map[string]bool)
	for _, tx := range SearchMerchants(fixtures(), query) {
		if !seen[tx.Merchant] {
			seen[tx.Merchant] = true
			out = append(out, tx.Merchant)
		}
	}
	return out
}

func TestSearchMerchants(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"вкус", []string{"Вкусно и точка", "ВкусВилл"}},
		{"ЯБЛОКО", []string{"Золотое яблоко"}},
		{"вкусвил", []string{"ВкусВилл"}},
		{"вкусвлл", []string{"ВкусВилл"}},
		{"зарплта", []string{"Зарплата"}},
		{"такси", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := merchants(t, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("merchants = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("merchants = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSearchMerchantsEmptyQuery(t *testing.T) {
	txs := fixtures()
	if got := SearchMerchants(txs, "  "); len(got) != len(txs) {
		t.Fatalf("len = %d, want %d", len(got), len(txs))
	}
}

func TestSearchMerchantsRanksExactBeforeFuzzy(t *testing.T) {
	got := SearchMerchants(fixtures(), "бонус")
	if len(got) == 0 || got[0].Merchant != "Бонус" {
		t.Fatalf("first = %+v, want Бонус", got)
	}
}
