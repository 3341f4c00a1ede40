// Package statement defines the data contracts shared across the
// extraction pipeline: the parsed document a document reader produces,
// the raw candidates extractor strategies emit, and the canonical
// transaction the normalizer mints. Values are created once and never
// mutated; each pipeline stage consumes one shape and produces the next.
package statement

// TableData is one table detected on a page. Rows are ordered top to
// bottom; row 0 (and often row 1) is a header candidate, not a
// transaction. Cells may be empty strings.
type TableData struct {
	Rows [][]string `json:"rows"`
}

// RowCount returns the number of rows in the table.
func (t TableData) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the width of the widest row.
func (t TableData) ColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// PageData is the extracted content of a single document page. OCRText
// is only populated when primary text extraction yielded nothing; any
// non-empty one of Text/OCRText suffices for bank detection.
type PageData struct {
	PageNumber int         `json:"page_number"`
	Text       string      `json:"text"`
	OCRText    string      `json:"ocr_text,omitempty"`
	Tables     []TableData `json:"tables,omitempty"`
}

// ParsedDocument is the engine's only input: the ordered pages of one
// statement document, produced upstream by a document reader. It is
// immutable for the lifetime of an extraction run.
type ParsedDocument struct {
	Pages []PageData `json:"pages"`
}

// RawTransaction is an unvalidated candidate produced by an extractor
// strategy. Date is the pre-parse string exactly as seen on the page;
// Amount and Balance are nil when the strategy could not derive them;
// Type may be a raw indicator rather than a canonical value. Candidates
// that fail normalization are silently dropped.
type RawTransaction struct {
	Date        string   `json:"date,omitempty"`
	Description string   `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
	Type        string   `json:"type,omitempty"`
	Bank        string   `json:"bank,omitempty"`
}

// Transaction is the canonical output record. Date is an ISO calendar
// date (YYYY-MM-DD); Amount is signed, negative for debits/outflows.
// Raw retains the originating candidate for diagnostics. No two
// transactions in an output list share (Date, Description[:50], Amount).
type Transaction struct {
	Date        string         `json:"date"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Type        string         `json:"type"`
	Balance     *float64       `json:"balance,omitempty"`
	Bank        string         `json:"bank"`
	Raw         RawTransaction `json:"raw"`
}

// TypeDebit and TypeCredit are the canonical transaction type values.
const (
	TypeDebit  = "debit"
	TypeCredit = "credit"
)
