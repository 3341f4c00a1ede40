package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// summaryAnchor introduces the compressed transaction summary block;
// summaryScanWindow caps how many lines after it are examined.
const (
	summaryAnchor     = "Transaction Summary"
	summaryScanWindow = 9
)

var (
	// summaryDateRe splits a compressed line into per-transaction
	// anchors; incidental whitespace around the separators is allowed.
	summaryDateRe = regexp.MustCompile(`\b\d{1,2}\s*/\s*\d{1,2}\s*/\s*\d{2,4}\b`)

	// summaryAmountRe matches an inline amount with an optional
	// debit/credit suffix token.
	summaryAmountRe = regexp.MustCompile(`(\d+\.\d+)(Dr\.|Cr\.)?`)
)

// AUBankExtractor handles AU Small Finance Bank statements. The layout
// carries transactions two ways: a fixed columnar transaction table
// and a compressed summary block encoding several transactions per
// physical line, delimited only by date tokens.
type AUBankExtractor struct {
	headerMarkers []string
}

// NewAUBankExtractor creates the AU Bank strategy.
func NewAUBankExtractor(headerMarkers []string) *AUBankExtractor {
	return &AUBankExtractor{headerMarkers: headerMarkers}
}

// Bank returns the strategy's bank tag.
func (e *AUBankExtractor) Bank() string { return "aubank" }

// Extract runs both channels over every page and concatenates the
// results; duplicates between channels are removed downstream.
func (e *AUBankExtractor) Extract(doc *statement.ParsedDocument) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if isTransactionTable(table.Rows, e.headerMarkers) {
				out = append(out, parseColumnarTable(table.Rows, e.Bank())...)
			}
		}
		out = append(out, e.parseSummary(page.Text)...)
	}
	return out
}

// parseSummary locates the compressed summary block and parses the
// digit-bearing lines that follow its anchor.
func (e *AUBankExtractor) parseSummary(text string) []statement.RawTransaction {
	var out []statement.RawTransaction
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, summaryAnchor) {
			continue
		}
		limit := i + 1 + summaryScanWindow
		if limit > len(lines) {
			limit = len(lines)
		}
		for j := i + 1; j < limit; j++ {
			if lines[j] != "" && containsDigit(lines[j]) {
				out = append(out, e.parseSummaryLine(lines[j])...)
			}
		}
	}
	return out
}

// parseSummaryLine splits one compressed line on its date anchors. The
// whole line is rejected when the anchors do not map 1:1 onto the text
// segments between and after them (a blank gap between two dates means
// the layout was not understood); partial salvage would guess at
// pairings, so a mismatch skips the entire line.
func (e *AUBankExtractor) parseSummaryLine(line string) []statement.RawTransaction {
	dates := summaryDateRe.FindAllString(line, -1)
	parts := summaryDateRe.Split(line, -1)

	segments := make([]string, 0, len(parts))
	segments = append(segments, parts[0])
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) != "" {
			segments = append(segments, part)
		}
	}
	if len(dates) != len(segments)-1 {
		return nil
	}

	var out []statement.RawTransaction
	for i, date := range dates {
		segment := strings.TrimSpace(segments[i+1])
		m := summaryAmountRe.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		d, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		amount, _ := d.Float64()
		txnType := statement.TypeCredit
		if strings.Contains(m[2], "Dr") {
			amount = -amount
			txnType = statement.TypeDebit
		}

		description := strings.TrimSpace(summaryAmountRe.ReplaceAllString(segment, ""))
		out = append(out, statement.RawTransaction{
			Date:        strings.TrimSpace(date),
			Description: description,
			Amount:      floatPtr(amount),
			Type:        txnType,
			Bank:        e.Bank(),
		})
	}
	return out
}
