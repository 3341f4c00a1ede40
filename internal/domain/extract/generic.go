package extract

import (
	"regexp"
	"strings"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// minDescriptionLen is the shortest cell treated as a description
// candidate when guessing generic table columns.
const minDescriptionLen = 5

// trailingAmountRe removes amount tokens from a free-text description.
var trailingAmountRe = regexp.MustCompile(`[\d,]+\.\d{2}`)

// GenericExtractor is the fallback strategy for unrecognized statement
// layouts. It has no positional knowledge: table columns are guessed
// per row by what their cells parse as, and free text is gated by the
// line-likelihood test before any parse is attempted.
type GenericExtractor struct {
	headerMarkers []string
}

// NewGenericExtractor creates the fallback strategy.
func NewGenericExtractor(headerMarkers []string) *GenericExtractor {
	return &GenericExtractor{headerMarkers: headerMarkers}
}

// Bank returns the generic tag.
func (e *GenericExtractor) Bank() string { return GenericBank }

// Extract runs both channels over every page.
func (e *GenericExtractor) Extract(doc *statement.ParsedDocument) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if len(table.Rows) > 1 && isTransactionTable(table.Rows, e.headerMarkers) {
				out = append(out, e.parseTable(table.Rows)...)
			}
		}
		out = append(out, e.parseText(page.Text)...)
	}
	return out
}

// parseTable guesses, per data row, which cell holds a date and which
// an amount; the longest remaining cell is the description. Rows with
// no parseable date or no parseable amount are dropped.
func (e *GenericExtractor) parseTable(rows [][]string) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}

		dateCol, amountCol := -1, -1
		for i, cell := range row {
			if cell == "" {
				continue
			}
			if _, ok := ParseDate(cell); ok {
				dateCol = i
			} else if _, ok := ExtractAmount(cell); ok {
				amountCol = i
			}
		}
		if dateCol < 0 || amountCol < 0 {
			continue
		}

		description := ""
		for i, cell := range row {
			if i == dateCol || i == amountCol {
				continue
			}
			trimmed := strings.TrimSpace(cell)
			if len(trimmed) > minDescriptionLen && len(trimmed) > len(description) {
				description = trimmed
			}
		}
		if description == "" {
			description = "Unknown"
		}

		raw := statement.RawTransaction{
			Date:        row[dateCol],
			Description: description,
			Bank:        e.Bank(),
		}
		if v, ok := ExtractAmount(row[amountCol]); ok {
			raw.Amount = floatPtr(v)
		}
		out = append(out, raw)
	}
	return out
}

// parseText extracts from transaction-like free-text lines: the first
// date token anchors the candidate, the extracted amount prices it, and
// the line minus both becomes the description.
func (e *GenericExtractor) parseText(text string) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, line := range strings.Split(text, "\n") {
		if !IsLikelyTransaction(line) {
			continue
		}
		date := numericDateRe.FindString(line)
		amount, ok := ExtractAmount(line)
		if date == "" || !ok {
			continue
		}

		description := strings.Replace(line, date, "", 1)
		description = strings.TrimSpace(trailingAmountRe.ReplaceAllString(description, ""))

		out = append(out, statement.RawTransaction{
			Date:        date,
			Description: description,
			Amount:      floatPtr(amount),
			Bank:        e.Bank(),
		})
	}
	return out
}
