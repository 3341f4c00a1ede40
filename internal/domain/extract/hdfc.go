package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// Section markers bounding the transaction listing on an HDFC page.
// An end marker closes the section even before another start marker is
// seen, so trailing page furniture is never parsed.
var (
	hdfcSectionStart = "Domestic Transactions"
	hdfcSectionEnds  = []string{"Cash points", "International Transactions", "Page"}

	hdfcDateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
	// Trailing thousands-separated amount with an optional credit
	// marker at end of line. Absence of the marker means debit.
	hdfcAmountRe = regexp.MustCompile(`([\d,]+\.\d{2})\s*(Cr)?\s*$`)
)

// sectionState tracks whether the line scanner is inside the
// transaction section while walking a page top to bottom.
type sectionState int

const (
	outsideSection sectionState = iota
	insideSection
)

// next returns the state after seeing a line, plus whether the line
// itself should be parsed. Start-marker lines open the section but are
// not parsed; end-marker lines close it unconditionally.
func (s sectionState) next(line string) (sectionState, bool) {
	if strings.Contains(line, hdfcSectionStart) {
		return insideSection, false
	}
	for _, end := range hdfcSectionEnds {
		if strings.Contains(line, end) {
			return outsideSection, false
		}
	}
	return s, s == insideSection && line != ""
}

// HDFCExtractor handles HDFC Bank statements: one transaction per line
// in the form "DD/MM/YYYY description amount [Cr]", confined to a
// marker-bounded section of each page. Pages that carry a recognizable
// transaction table are additionally run through the table channel.
type HDFCExtractor struct {
	headerMarkers []string
}

// NewHDFCExtractor creates the HDFC strategy.
func NewHDFCExtractor(headerMarkers []string) *HDFCExtractor {
	return &HDFCExtractor{headerMarkers: headerMarkers}
}

// Bank returns the strategy's bank tag.
func (e *HDFCExtractor) Bank() string { return "hdfc" }

// Extract runs the section-bounded text channel and the table channel
// over every page.
func (e *HDFCExtractor) Extract(doc *statement.ParsedDocument) []statement.RawTransaction {
	var out []statement.RawTransaction
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if isTransactionTable(table.Rows, e.headerMarkers) {
				out = append(out, parseColumnarTable(table.Rows, e.Bank())...)
			}
		}
		out = append(out, e.parseText(page.Text)...)
	}
	return out
}

func (e *HDFCExtractor) parseText(text string) []statement.RawTransaction {
	var out []statement.RawTransaction
	state := outsideSection
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		var parse bool
		state, parse = state.next(line)
		if !parse {
			continue
		}
		if raw, ok := e.parseLine(line); ok {
			out = append(out, raw)
		}
	}
	return out
}

// parseLine extracts one transaction from a section line: the first
// date-shaped token anchors it, everything up to the trailing amount is
// the description.
func (e *HDFCExtractor) parseLine(line string) (statement.RawTransaction, bool) {
	dateLoc := hdfcDateRe.FindStringIndex(line)
	if dateLoc == nil {
		return statement.RawTransaction{}, false
	}
	date := line[dateLoc[0]:dateLoc[1]]
	remaining := strings.TrimSpace(line[dateLoc[1]:])

	m := hdfcAmountRe.FindStringSubmatchIndex(remaining)
	if m == nil {
		return statement.RawTransaction{}, false
	}
	amountStr := strings.ReplaceAll(remaining[m[2]:m[3]], ",", "")
	isCredit := m[4] >= 0

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return statement.RawTransaction{}, false
	}
	amount, _ := d.Float64()
	txnType := statement.TypeCredit
	if !isCredit {
		amount = -amount
		txnType = statement.TypeDebit
	}

	return statement.RawTransaction{
		Date:        date,
		Description: strings.TrimSpace(remaining[:m[0]]),
		Amount:      floatPtr(amount),
		Type:        txnType,
		Bank:        e.Bank(),
	}, true
}
