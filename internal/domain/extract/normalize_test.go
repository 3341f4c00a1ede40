package extract

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

func TestNormalize_Validation(t *testing.T) {
	t.Run("drops candidates missing a date or amount", func(t *testing.T) {
		raws := []statement.RawTransaction{
			{Date: "", Description: "NO DATE", Amount: floatPtr(10)},
			{Date: "01/02/2024", Description: "NO AMOUNT"},
			{Date: "garbage", Description: "BAD DATE", Amount: floatPtr(10)},
			{Date: "01/02/2024", Description: "KEEPER", Amount: floatPtr(10)},
		}
		txns := Normalize(raws)
		require.Len(t, txns, 1)
		assert.Equal(t, "KEEPER", txns[0].Description)
	})

	t.Run("dates come out in canonical form", func(t *testing.T) {
		txns := Normalize([]statement.RawTransaction{
			{Date: "01/02/2024", Description: "COFFEE", Amount: floatPtr(4.5)},
		})
		require.Len(t, txns, 1)
		assert.Equal(t, "2024-01-02", txns[0].Date)
	})

	t.Run("defaults for blank description and bank", func(t *testing.T) {
		txns := Normalize([]statement.RawTransaction{
			{Date: "01/02/2024", Description: "   ", Amount: floatPtr(4.5)},
		})
		require.Len(t, txns, 1)
		assert.Equal(t, "Unknown", txns[0].Description)
		assert.Equal(t, "unknown", txns[0].Bank)
	})

	t.Run("raw candidate is preserved", func(t *testing.T) {
		raw := statement.RawTransaction{Date: "01/02/2024", Description: "COFFEE", Amount: floatPtr(4.5), Bank: "hdfc"}
		txns := Normalize([]statement.RawTransaction{raw})
		require.Len(t, txns, 1)
		assert.Equal(t, raw, txns[0].Raw)
	})
}

func TestNormalize_TypeCanonicalization(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		amount float64
		want   string
	}{
		{"debit indicator", "Dr.", 100, statement.TypeDebit},
		{"credit indicator", "CR", -100, statement.TypeCredit},
		{"already canonical", "debit", 100, statement.TypeDebit},
		{"negative amount fallback", "", -100, statement.TypeDebit},
		{"positive amount fallback", "", 100, statement.TypeCredit},
		{"unrecognized indicator falls back to sign", "withdrawal", -100, statement.TypeDebit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := Normalize([]statement.RawTransaction{
				{Date: "01/02/2024", Description: "X Y Z", Amount: floatPtr(tt.amount), Type: tt.raw},
			})
			require.Len(t, txns, 1)
			assert.Equal(t, tt.want, txns[0].Type)
		})
	}
}

func TestNormalize_Dedupe(t *testing.T) {
	t.Run("exact duplicates collapse to the first", func(t *testing.T) {
		raws := []statement.RawTransaction{
			{Date: "01/02/2024", Description: "COFFEE DAY", Amount: floatPtr(4.5), Bank: "aubank"},
			{Date: "01/02/2024", Description: "COFFEE DAY", Amount: floatPtr(4.5), Bank: "generic"},
		}
		txns := Normalize(raws)
		require.Len(t, txns, 1)
		assert.Equal(t, "aubank", txns[0].Bank, "first seen wins")
	})

	t.Run("descriptions differing past 50 chars are duplicates", func(t *testing.T) {
		prefix := strings.Repeat("A", 50)
		raws := []statement.RawTransaction{
			{Date: "01/02/2024", Description: prefix + " REF 001", Amount: floatPtr(4.5)},
			{Date: "01/02/2024", Description: prefix + " REF 002", Amount: floatPtr(4.5)},
		}
		txns := Normalize(raws)
		require.Len(t, txns, 1)
	})

	t.Run("any key field difference keeps both", func(t *testing.T) {
		raws := []statement.RawTransaction{
			{Date: "01/02/2024", Description: "COFFEE DAY", Amount: floatPtr(4.5)},
			{Date: "02/02/2024", Description: "COFFEE DAY", Amount: floatPtr(4.5)},
			{Date: "01/02/2024", Description: "COFFEE BAR", Amount: floatPtr(4.5)},
			{Date: "01/02/2024", Description: "COFFEE DAY", Amount: floatPtr(5.5)},
		}
		assert.Len(t, Normalize(raws), 4)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		f := gofakeit.New(7)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		var raws []statement.RawTransaction
		for i := 0; i < 50; i++ {
			raws = append(raws, statement.RawTransaction{
				Date:        f.DateRange(start, end).Format("2006-01-02"),
				Description: fmt.Sprintf("%s #%03d", strings.ToUpper(f.Company()), i),
				Amount:      floatPtr(f.Float64Range(-500, 500)),
			})
		}
		// Replaying the whole list must drop the replay and keep order.
		txns := Normalize(append(raws, raws...))
		require.Len(t, txns, len(raws))
		for i, txn := range txns {
			assert.Equal(t, raws[i].Description, txn.Description)
		}
	})
}
