package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

func TestHDFCExtractor_SectionText(t *testing.T) {
	e := NewHDFCExtractor(DefaultHeaderMarkers())

	t.Run("parses only inside the section", func(t *testing.T) {
		text := "HDFC Bank Credit Card Statement\n" +
			"01/01/2024 PRE-SECTION NOISE 999.00\n" +
			"Domestic Transactions\n" +
			"01/02/2024 COFFEE SHOP MUMBAI 450.00\n" +
			"05/02/2024 PAYMENT RECEIVED 1,000.00 Cr\n" +
			"Cash points earned this cycle\n" +
			"07/02/2024 AFTER-SECTION NOISE 100.00\n"
		raws := e.Extract(docWithText(text))
		require.Len(t, raws, 2)

		assert.Equal(t, "01/02/2024", raws[0].Date)
		assert.Equal(t, "COFFEE SHOP MUMBAI", raws[0].Description)
		require.NotNil(t, raws[0].Amount)
		assert.InDelta(t, -450.00, *raws[0].Amount, 1e-9, "no Cr marker means debit")
		assert.Equal(t, statement.TypeDebit, raws[0].Type)
		assert.Equal(t, "hdfc", raws[0].Bank)

		assert.Equal(t, "PAYMENT RECEIVED", raws[1].Description)
		require.NotNil(t, raws[1].Amount)
		assert.InDelta(t, 1000.00, *raws[1].Amount, 1e-9)
		assert.Equal(t, statement.TypeCredit, raws[1].Type)
	})

	t.Run("page footer closes the section", func(t *testing.T) {
		text := "Domestic Transactions\n" +
			"01/02/2024 COFFEE SHOP 450.00\n" +
			"Page 1 of 3\n" +
			"02/02/2024 LEAKED FOOTER LINE 75.00\n"
		raws := e.Extract(docWithText(text))
		require.Len(t, raws, 1)
		assert.Equal(t, "01/02/2024", raws[0].Date)
	})

	t.Run("section reopens after a boundary", func(t *testing.T) {
		text := "Domestic Transactions\n" +
			"01/02/2024 FIRST BLOCK 10.00\n" +
			"International Transactions\n" +
			"Domestic Transactions\n" +
			"02/02/2024 SECOND BLOCK 20.00\n"
		raws := e.Extract(docWithText(text))
		require.Len(t, raws, 2)
	})

	t.Run("no start marker means nothing parses", func(t *testing.T) {
		text := "01/02/2024 COFFEE SHOP 450.00\n05/02/2024 PAYMENT 1,000.00 Cr\n"
		assert.Empty(t, e.Extract(docWithText(text)))
	})

	t.Run("section lines without a date or amount are skipped", func(t *testing.T) {
		text := "Domestic Transactions\n" +
			"Date Description Amount\n" +
			"01/02/2024 NOTE WITHOUT A TRAILING AMOUNT\n"
		assert.Empty(t, e.Extract(docWithText(text)))
	})
}

func TestHDFCExtractor_TableChannel(t *testing.T) {
	e := NewHDFCExtractor(DefaultHeaderMarkers())

	doc := &statement.ParsedDocument{Pages: []statement.PageData{{
		PageNumber: 1,
		Tables: []statement.TableData{{Rows: [][]string{
			{"Date", "Description", "Amount", "Balance"},
			{"", "", "", ""},
			{"01/02/2024", "SWIGGY ORDER", "350.00Dr.", "1,650.00"},
		}}},
	}}}

	raws := e.Extract(doc)
	require.Len(t, raws, 1)
	assert.Equal(t, "SWIGGY ORDER", raws[0].Description)
	require.NotNil(t, raws[0].Amount)
	assert.InDelta(t, -350.00, *raws[0].Amount, 1e-9)
	assert.Equal(t, "hdfc", raws[0].Bank)
}
