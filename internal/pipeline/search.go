package pipeline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/theirongolddev/lima/internal/model"
)

// SearchMerchants returns the transactions whose merchant matches query,
// best match first. A substring match always wins; otherwise the merchant
// (or one of its words) must be within a typo budget of a third of the
// query length. An empty query returns txs unchanged.
func SearchMerchants(txs []model.Transaction, query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return txs
	}
	budget := max(1, utf8.RuneCountInString(q)/3)

	type hit struct {
		tx    model.Transaction
		score int
	}
	var hits []hit
	scores := make(map[string]int)
	for _, t := range txs {
		score, ok := scores[t.Merchant]
		if !ok {
			score = merchantScore(strings.ToLower(t.Merchant), q)
			scores[t.Merchant] = score
		}
		if score <= budget {
			hits = append(hits, hit{t, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })
	result := make([]model.Transaction, len(hits))
	for i, h := range hits {
		result[i] = h.tx
	}
	return result
}

func merchantScore(merchant, q string) int {
	if strings.Contains(merchant, q) {
		return 0
	}
	best := levenshtein.ComputeDistance(merchant, q)
	for _, w := range strings.Fields(merchant) {
		best = min(best, levenshtein.ComputeDistance(w, q))
	}
	return best
}
