package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Run(t *testing.T) {
	svc := NewDefaultService(testLogger())

	t.Run("detects the bank and routes to its strategy", func(t *testing.T) {
		doc := &statement.ParsedDocument{Pages: []statement.PageData{{
			PageNumber: 1,
			Text: "AU SMALL FINANCE BANK\n" +
				"Transaction Summary\n" +
				"01/02/2024 COFFEE DAY 4.50Dr. 03/02/2024 CARD PAYMENT 10.00Cr.",
		}}}

		txns := svc.Run(doc)
		require.Len(t, txns, 2)
		assert.Equal(t, "aubank", txns[0].Bank)
		assert.Equal(t, "2024-01-02", txns[0].Date)
		assert.InDelta(t, -4.50, txns[0].Amount, 1e-9)
		assert.Equal(t, statement.TypeDebit, txns[0].Type)
		assert.InDelta(t, 10.00, txns[1].Amount, 1e-9)
	})

	t.Run("unknown statements run the generic strategy", func(t *testing.T) {
		doc := &statement.ParsedDocument{Pages: []statement.PageData{{
			PageNumber: 1,
			Tables: []statement.TableData{{Rows: [][]string{
				{"Date", "Description", "Amount"},
				{"01/02/2024", "COFFEE SHOP", "4.50"},
			}}},
		}}}

		txns := svc.Run(doc)
		require.Len(t, txns, 1)
		assert.Equal(t, GenericBank, txns[0].Bank)
		assert.Equal(t, "2024-01-02", txns[0].Date)
		assert.Equal(t, "COFFEE SHOP", txns[0].Description)
	})

	t.Run("duplicates across channels collapse", func(t *testing.T) {
		// The same transaction appears in the HDFC section text twice,
		// once per OCR rescan of the page.
		doc := &statement.ParsedDocument{Pages: []statement.PageData{
			{PageNumber: 1, Text: "HDFC Bank\nDomestic Transactions\n01/02/2024 COFFEE SHOP 450.00"},
			{PageNumber: 2, Text: "Domestic Transactions\n01/02/2024 COFFEE SHOP 450.00"},
		}}

		txns := svc.Run(doc)
		require.Len(t, txns, 1)
		assert.Equal(t, "hdfc", txns[0].Bank)
	})

	t.Run("zero transactions is a valid outcome", func(t *testing.T) {
		txns := svc.Run(&statement.ParsedDocument{Pages: []statement.PageData{
			{PageNumber: 1, Text: "marketing flyer with no transactions"},
		}})
		assert.Empty(t, txns)
	})

	t.Run("empty and nil documents", func(t *testing.T) {
		assert.Empty(t, svc.Run(&statement.ParsedDocument{}))
		assert.Empty(t, svc.Run(nil))
	})

	t.Run("runs are deterministic", func(t *testing.T) {
		doc := &statement.ParsedDocument{Pages: []statement.PageData{{
			PageNumber: 1,
			Text: "HDFC Bank\nDomestic Transactions\n" +
				"01/02/2024 COFFEE SHOP 450.00\n" +
				"05/02/2024 PAYMENT RECEIVED 1,000.00 Cr",
		}}}

		first := svc.Run(doc)
		second := svc.Run(doc)
		assert.Equal(t, first, second)
	})
}
