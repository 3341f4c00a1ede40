package export

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// exportRow is the flat row shape shared by the CSV and Excel writers.
// Balance serializes empty when absent rather than as a zero, which
// would read as a real balance.
type exportRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	Balance     string `csv:"balance"`
	Bank        string `csv:"bank"`
}

func toRows(txns []statement.Transaction) []exportRow {
	rows := make([]exportRow, 0, len(txns))
	for _, txn := range txns {
		row := exportRow{
			Date:        txn.Date,
			Description: txn.Description,
			Amount:      formatAmount(txn.Amount),
			Type:        txn.Type,
			Bank:        txn.Bank,
		}
		if txn.Balance != nil {
			row.Balance = formatAmount(*txn.Balance)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func writeCSV(txns []statement.Transaction, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	rows := toRows(txns)
	if err := gocsv.Marshal(&rows, f); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}
