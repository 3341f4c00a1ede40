package extract

import (
	"strings"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// dedupDescriptionLen bounds the description portion of the uniqueness
// key, so trailing reference noise does not defeat deduplication.
const dedupDescriptionLen = 50

// Normalize validates, canonicalizes and deduplicates raw candidates.
// Candidates missing a date or amount, or whose date fails parsing, are
// dropped without comment; that is expected behavior for noisy input,
// not an error. Output order is the order candidates were produced;
// later duplicates of a (date, description[:50], amount) key are
// discarded.
func Normalize(raws []statement.RawTransaction) []statement.Transaction {
	cleaned := make([]statement.Transaction, 0, len(raws))
	for _, raw := range raws {
		if raw.Date == "" || raw.Amount == nil {
			continue
		}
		date, ok := ParseDate(raw.Date)
		if !ok {
			continue
		}

		amount := *raw.Amount
		description := CleanText(raw.Description)
		if description == "" {
			description = "Unknown"
		}
		bank := raw.Bank
		if bank == "" {
			bank = "unknown"
		}

		cleaned = append(cleaned, statement.Transaction{
			Date:        date.Format("2006-01-02"),
			Description: description,
			Amount:      amount,
			Type:        canonicalType(raw.Type, amount),
			Balance:     raw.Balance,
			Bank:        bank,
			Raw:         raw,
		})
	}

	return dedupe(cleaned)
}

// canonicalType maps a raw debit/credit indicator to the canonical
// value, falling back to the amount's sign when the indicator is absent
// or unrecognized.
func canonicalType(raw string, amount float64) string {
	switch indicator := strings.ToLower(strings.TrimSpace(raw)); {
	case indicator == statement.TypeDebit || strings.HasPrefix(indicator, "dr"):
		return statement.TypeDebit
	case indicator == statement.TypeCredit || strings.HasPrefix(indicator, "cr"):
		return statement.TypeCredit
	}
	if amount < 0 {
		return statement.TypeDebit
	}
	return statement.TypeCredit
}

type dedupeKey struct {
	date        string
	description string
	amount      float64
}

func dedupe(txns []statement.Transaction) []statement.Transaction {
	seen := make(map[dedupeKey]struct{}, len(txns))
	out := make([]statement.Transaction, 0, len(txns))
	for _, txn := range txns {
		key := dedupeKey{
			date:        txn.Date,
			description: truncate(txn.Description, dedupDescriptionLen),
			amount:      txn.Amount,
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, txn)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
