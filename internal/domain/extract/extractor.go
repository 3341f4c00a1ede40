package extract

import (
	"strings"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// Extractor is one statement-layout strategy. Extract never fails: a
// page it cannot read contributes zero candidates. Over-detection is
// acceptable, duplicates are removed downstream; under-detection is the
// risk to guard against.
type Extractor interface {
	Bank() string
	Extract(doc *statement.ParsedDocument) []statement.RawTransaction
}

// DefaultHeaderMarkers are the column-name words used to recognize a
// transaction table. A table qualifies when at least 3 of them appear
// across its first two rows (case-sensitive substring match).
// Overridable via configuration.
func DefaultHeaderMarkers() []string {
	return []string{"Date", "Transaction", "Amount", "Balance", "Description"}
}

// transactionTableMinMarkers is the loose recognition threshold. False
// positives are filtered later by requiring date+amount per row.
const transactionTableMinMarkers = 3

// Registry maps detected bank tags to extractor strategies. Unknown
// tags fall back to the generic strategy; there is no cascading between
// named-bank strategies.
type Registry struct {
	strategies map[string]Extractor
	generic    Extractor
}

// NewRegistry creates a registry with the given generic fallback.
func NewRegistry(generic Extractor) *Registry {
	return &Registry{
		strategies: make(map[string]Extractor),
		generic:    generic,
	}
}

// Register adds a strategy. Panics on duplicate bank tag.
func (r *Registry) Register(e Extractor) {
	key := strings.ToLower(e.Bank())
	if _, ok := r.strategies[key]; ok {
		panic("duplicate extractor for bank: " + key)
	}
	r.strategies[key] = e
}

// Get returns the strategy for a bank tag, or the generic fallback.
func (r *Registry) Get(tag string) Extractor {
	if e, ok := r.strategies[strings.ToLower(tag)]; ok {
		return e
	}
	return r.generic
}

// DefaultRegistry returns a registry with all built-in strategies,
// using the given header markers for table recognition.
func DefaultRegistry(headerMarkers []string) *Registry {
	r := NewRegistry(NewGenericExtractor(headerMarkers))
	r.Register(NewAUBankExtractor(headerMarkers))
	r.Register(NewHDFCExtractor(headerMarkers))
	return r
}

// isTransactionTable applies the header heuristic: at least 3 marker
// words across the concatenated first two rows.
func isTransactionTable(rows [][]string, markers []string) bool {
	if len(rows) < 2 {
		return false
	}
	var sb strings.Builder
	for _, row := range rows[:2] {
		for _, cell := range row {
			if cell == "" {
				continue
			}
			sb.WriteString(cell)
			sb.WriteString(" ")
		}
	}
	header := sb.String()
	found := 0
	for _, marker := range markers {
		if strings.Contains(header, marker) {
			found++
		}
	}
	return found >= transactionTableMinMarkers
}

// parseColumnarTable extracts rows from a fixed columnar layout:
// [date, description, amount, balance, type]. The first two rows are
// headers; a row yields a candidate only when date, description and
// amount cells are all non-empty. Amounts carry Dr./Cr. indicators.
func parseColumnarTable(rows [][]string, bank string) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, row := range rows[2:] {
		if !anyNonEmpty(row) {
			continue
		}
		date := cellAt(row, 0)
		description := cellAt(row, 1)
		amount := cellAt(row, 2)
		balance := cellAt(row, 3)
		txnType := cellAt(row, 4)

		if date == "" || description == "" || amount == "" {
			continue
		}

		raw := statement.RawTransaction{
			Date:        CleanText(date),
			Description: CleanText(description),
			Type:        CleanText(txnType),
			Bank:        bank,
		}
		if v, ok := ParseSignedAmount(amount); ok {
			raw.Amount = floatPtr(v)
		}
		if balance != "" {
			if v, ok := ParseSignedAmount(balance); ok {
				raw.Balance = floatPtr(v)
			}
		}
		out = append(out, raw)
	}
	return out
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func anyNonEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
