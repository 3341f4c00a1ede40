package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

const (
	sheetName   = "Transactions"
	maxColWidth = 50
)

var excelHeaders = []string{"date", "description", "amount", "type", "balance", "bank"}

func writeExcel(txns []statement.Transaction, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	widths := make([]int, len(excelHeaders))
	setCell := func(col, rowIdx int, value string) error {
		cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
		if err != nil {
			return err
		}
		if len(value) > widths[col] {
			widths[col] = len(value)
		}
		return f.SetCellValue(sheetName, cell, value)
	}

	for col, h := range excelHeaders {
		if err := setCell(col, 0, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, row := range toRows(txns) {
		cells := []string{row.Date, row.Description, row.Amount, row.Type, row.Balance, row.Bank}
		for col, value := range cells {
			if err := setCell(col, i+1, value); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	for col := range excelHeaders {
		width := widths[col] + 2
		if width > maxColWidth {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("sizing column %d: %w", col, err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing Excel file: %w", err)
	}
	return nil
}
