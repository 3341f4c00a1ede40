// Package export writes normalized transaction lists to row-oriented
// tabular formats. It sits on the far side of the extraction engine's
// output contract: it consumes final Transactions and never reaches
// back into extraction.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// Supported output formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// ErrNoTransactions is returned when asked to export an empty list.
// The engine legitimately produces empty lists; writing an empty file
// is a caller decision, not a default.
var ErrNoTransactions = errors.New("no transactions to export")

// Writer exports transactions under a base output directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a writer rooted at baseDir (used by organized
// exports; explicit paths bypass it).
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Export writes transactions to an explicit path in the given format.
func (w *Writer) Export(txns []statement.Transaction, path, format string) error {
	if len(txns) == 0 {
		return ErrNoTransactions
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(txns, path)
	case FormatExcel, "xlsx":
		return writeExcel(txns, path)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// ExportOrganized writes under <baseDir>/<bank>/<period>/ and returns
// the created path. When period is empty it falls back to the month of
// the latest transaction date; same-month statements can collide under
// that fallback, so callers that know the statement period should pass
// it explicitly.
func (w *Writer) ExportOrganized(txns []statement.Transaction, format, baseFilename, period string) (string, error) {
	if len(txns) == 0 {
		return "", ErrNoTransactions
	}

	bank := txns[0].Bank
	if bank == "" {
		bank = "unknown"
	}
	if period == "" {
		period = latestMonth(txns)
	}

	if baseFilename == "" {
		baseFilename = fmt.Sprintf("%s_transactions_%s", bank, period)
	}

	ext := FormatCSV
	if f := strings.ToLower(format); f == FormatExcel || f == "xlsx" {
		ext = "xlsx"
	}

	path := filepath.Join(w.baseDir, bank, period, baseFilename+"."+ext)
	if err := w.Export(txns, path, format); err != nil {
		return "", err
	}
	return path, nil
}

// latestMonth returns the YYYY-MM of the latest transaction date.
// Dates are ISO strings, so lexical comparison orders them correctly.
func latestMonth(txns []statement.Transaction) string {
	latest := ""
	for _, txn := range txns {
		if txn.Date > latest {
			latest = txn.Date
		}
	}
	if len(latest) >= 7 {
		return latest[:7]
	}
	return "unknown"
}
