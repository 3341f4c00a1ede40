// Package extract implements the transaction extraction engine: bank
// detection, per-format extractor strategies, and the normalization and
// deduplication pass that turns noisy page text and tables into a
// canonical transaction list.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateFormats is the fixed priority list for statement dates.
// Month-first forms come before day-first, so an ambiguous 01/02/2024
// parses as January 2nd. First full match wins.
var dateFormats = []string{
	"01/02/2006", // MM/DD/YYYY
	"01/02/06",   // MM/DD/YY
	"02/01/2006", // DD/MM/YYYY
	"02/01/06",   // DD/MM/YY
	"2006-01-02", // ISO
	"2 Jan 2006",
	"Jan 2 2006",
	"02-01-2006",
	"01-02-2006",
}

// amountPatterns are tried in order of specificity; within the first
// pattern that yields any match, the rightmost match wins. Statement
// lines often carry reference numbers or running totals before the real
// amount, so the last occurrence is assumed most relevant.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$?\s*-?\d{1,3}(?:,\d{3})*\.\d{2}`),
	regexp.MustCompile(`\$?\s*-?\d+\.\d{2}`),
	regexp.MustCompile(`\$?\s*-?\d+`),
}

var (
	amountStripper = regexp.MustCompile(`[$\s,]`)
	signedAmountRe = regexp.MustCompile(`[\d,]+\.?\d*`)

	numericDateRe = regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`)
	textualDateRe = regexp.MustCompile(`\b\d{1,2}\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{2,4}\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
	ellipsisRe   = regexp.MustCompile(`\.{3,}`)
)

// ParseDate attempts the fixed format list against a date string. A
// false return is a signal that the string is not a calendar date, not
// an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractAmount pulls a monetary amount out of free text. It tries the
// amount patterns in order and, within the first pattern that matches at
// all, converts the rightmost occurrence after stripping currency
// symbol, whitespace and thousands separators.
func ExtractAmount(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	for _, pat := range amountPatterns {
		matches := pat.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		cleaned := amountStripper.ReplaceAllString(matches[len(matches)-1], "")
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			continue
		}
		f, _ := d.Float64()
		return f, true
	}
	return 0, false
}

// ParseSignedAmount parses an amount string carrying a Dr./Cr.
// indicator. Debit indicators flip the sign negative; credit or no
// indicator leaves it positive.
func ParseSignedAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	match := signedAmountRe.FindString(s)
	if match == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if strings.Contains(s, "Dr") {
		return -f, true
	}
	return f, true
}

// CleanText normalizes extracted page text: runs of whitespace collapse
// to a single space, null and Unicode replacement characters are
// stripped, and runs of 3+ periods collapse to exactly three.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "�", "")
	return ellipsisRe.ReplaceAllString(text, "...")
}

// IsLikelyTransaction gates free-text lines before the generic text
// channel attempts a full parse: the line must be at least 10
// characters after trimming and carry both a recognizable date and an
// extractable amount.
func IsLikelyTransaction(line string) bool {
	if len(strings.TrimSpace(line)) < 10 {
		return false
	}
	if !numericDateRe.MatchString(line) && !textualDateRe.MatchString(line) {
		return false
	}
	_, ok := ExtractAmount(line)
	return ok
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func floatPtr(f float64) *float64 {
	return &f
}
