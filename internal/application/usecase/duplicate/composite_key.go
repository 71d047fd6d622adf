// Package duplicate flags bank statement entries that were likely imported
// before and records the human rulings on them.
package duplicate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// compositeKeyMaxDescription caps the normalized description so minor
// formatting noise at the tail of long narratives does not change the key.
const compositeKeyMaxDescription = 50

var (
	embeddedDatePattern = regexp.MustCompile(`\b\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}\b`)
	referencePattern    = regexp.MustCompile(`(?:\b(?:ref|no)\.?|#)\s*:?\s*\d+\b|\b\d{6,}\b`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// CompositeKey builds the stable identity of a bank entry:
// YYYY-MM-DD|cents|normalized-description.
func CompositeKey(date time.Time, amountCents int64, description string) string {
	return fmt.Sprintf("%s|%d|%s",
		date.Format("2006-01-02"), amountCents, normalizeDescription(description))
}

// normalizeDescription lowercases, strips embedded dates and reference-number
// tokens, collapses whitespace, and truncates.
func normalizeDescription(description string) string {
	s := strings.ToLower(description)
	s = embeddedDatePattern.ReplaceAllString(s, " ")
	s = referencePattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if len(runes) > compositeKeyMaxDescription {
		s = strings.TrimSpace(string(runes[:compositeKeyMaxDescription]))
	}
	return s
}
