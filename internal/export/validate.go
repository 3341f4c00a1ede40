package export

import (
	"fmt"
	"math"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// ValidationReport summarizes data-quality checks run before export.
// Errors block a clean export; warnings are advisory.
type ValidationReport struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Count    int
}

// Validate checks a transaction list for export readiness. The engine's
// normalizer guarantees these invariants for its own output; this check
// guards lists assembled or modified by callers.
func Validate(txns []statement.Transaction) ValidationReport {
	report := ValidationReport{Count: len(txns)}
	if len(txns) == 0 {
		report.Errors = append(report.Errors, "no transactions provided")
		return report
	}

	for i, txn := range txns {
		n := i + 1
		if txn.Date == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("transaction %d: missing date", n))
		}
		if math.IsNaN(txn.Amount) || math.IsInf(txn.Amount, 0) {
			report.Errors = append(report.Errors, fmt.Sprintf("transaction %d: amount is not a number", n))
		}
		if txn.Description == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("transaction %d: empty description", n))
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
