package extract

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// GenericBank is the tag returned when no bank marker matches; the
// generic extractor strategy handles it.
const GenericBank = "generic"

// BankMarkers binds a bank tag to the marker substrings that identify
// its statements. The order of a BankMarkers slice is the detection
// priority: earlier entries win when a document carries markers for
// more than one bank.
type BankMarkers struct {
	Tag     string   `json:"tag"`
	Markers []string `json:"markers"`
}

// DefaultBankMarkers returns the built-in detection priority list.
// Overridable via configuration to onboard new statement formats
// without touching extraction logic.
func DefaultBankMarkers() []BankMarkers {
	return []BankMarkers{
		{Tag: "aubank", Markers: []string{"AU BANK", "AU SMALL FINANCE BANK", "AUSFB"}},
		{Tag: "hdfc", Markers: []string{"HDFC BANK", "HDFC", "MILLENNIA CREDIT CARD"}},
		{Tag: "icici", Markers: []string{"ICICI BANK", "ICICI"}},
		{Tag: "sbi", Markers: []string{"STATE BANK OF INDIA", "SBI"}},
		{Tag: "axis", Markers: []string{"AXIS BANK", "AXIS"}},
	}
}

// fuzzyMinMarkerLen limits the OCR fallback to markers long enough that
// an edit distance of 1 cannot produce accidental matches.
const fuzzyMinMarkerLen = 6

// Detector scans aggregated page text for bank-identifying markers.
// The exact pass runs all markers in a single Aho-Corasick automaton;
// when it finds nothing and the document carries OCR-recovered text, a
// fuzzy pass tolerates single-character OCR errors in long markers.
type Detector struct {
	banks   []BankMarkers
	matcher *ahocorasick.Matcher
	owner   []int // automaton pattern index -> index into banks
}

// NewDetector builds a detector over the given priority list.
func NewDetector(banks []BankMarkers) *Detector {
	var patterns [][]byte
	var owner []int
	for bi, bank := range banks {
		for _, marker := range bank.Markers {
			patterns = append(patterns, []byte(strings.ToUpper(marker)))
			owner = append(owner, bi)
		}
	}
	return &Detector{
		banks:   banks,
		matcher: ahocorasick.NewMatcher(patterns),
		owner:   owner,
	}
}

// Detect returns the bank tag for a document, or GenericBank when no
// marker matches. There is no error path.
func (d *Detector) Detect(doc *statement.ParsedDocument) string {
	if doc == nil {
		return GenericBank
	}

	var all, ocr strings.Builder
	for _, page := range doc.Pages {
		all.WriteString(page.Text)
		all.WriteString(" ")
		all.WriteString(page.OCRText)
		all.WriteString(" ")
		ocr.WriteString(page.OCRText)
		ocr.WriteString(" ")
	}

	text := strings.ToUpper(all.String())
	best := len(d.banks)
	for _, hit := range d.matcher.Match([]byte(text)) {
		if d.owner[hit] < best {
			best = d.owner[hit]
		}
	}
	if best < len(d.banks) {
		return d.banks[best].Tag
	}

	if ocrText := strings.ToUpper(strings.TrimSpace(ocr.String())); ocrText != "" {
		if tag, ok := d.fuzzyDetect(ocrText); ok {
			return tag
		}
	}

	return GenericBank
}

// fuzzyDetect scans OCR text for markers with at most one character of
// error, preserving the configured priority order.
func (d *Detector) fuzzyDetect(text string) (string, bool) {
	for _, bank := range d.banks {
		for _, marker := range bank.Markers {
			m := strings.ToUpper(marker)
			if len(m) < fuzzyMinMarkerLen {
				continue
			}
			if fuzzyContains(text, m) {
				return bank.Tag, true
			}
		}
	}
	return "", false
}

// fuzzyContains reports whether any window of text is within edit
// distance 1 of the marker.
func fuzzyContains(text, marker string) bool {
	w := len(marker)
	if len(text) <= w {
		return fuzzy.LevenshteinDistance(text, marker) <= 1
	}
	for i := 0; i+w <= len(text); i++ {
		if fuzzy.LevenshteinDistance(text[i:i+w], marker) <= 1 {
			return true
		}
	}
	return false
}
