package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
	"github.com/0xjaydeep/debrokly/pkg/money"
)

// WriteSummary writes a plain-text summary report: transaction count,
// total and average amounts, and the covered date range.
func (w *Writer) WriteSummary(txns []statement.Transaction, path string) error {
	if len(txns) == 0 {
		return ErrNoTransactions
	}

	var total float64
	earliest, latest := txns[0].Date, txns[0].Date
	for _, txn := range txns {
		total += txn.Amount
		if txn.Date < earliest {
			earliest = txn.Date
		}
		if txn.Date > latest {
			latest = txn.Date
		}
	}
	average := total / float64(len(txns))

	var sb strings.Builder
	rule := strings.Repeat("=", 40)
	sb.WriteString("Credit Card Statement Summary\n")
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "Total Transactions: %d\n", len(txns))
	fmt.Fprintf(&sb, "Total Amount: %s\n", money.Format(total))
	fmt.Fprintf(&sb, "Average Amount: %s\n", money.Format(average))
	fmt.Fprintf(&sb, "Date Range: %s to %s\n", earliest, latest)
	sb.WriteString("\n" + rule + "\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
