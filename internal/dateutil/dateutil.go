// Package dateutil provides date parsing and formatting for invoice
// display dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFormat indicates an invalid date format string.
var ErrInvalidFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultFormat is the display format used when none is configured.
const DefaultFormat = "MMM DD, YYYY"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// inputLayouts are tried in order when parsing a user-supplied date.
var inputLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// ParseFormat converts a user-friendly format string to Go's time
// layout. Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Use brackets to
// escape literal text: [Date] preserves "Date" literally. Any
// non-token characters outside brackets are preserved as literals.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidFormat, MaxFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Format parses a user-supplied date string and re-renders it in the
// given display format. A value that matches none of the known input
// layouts is returned unchanged rather than failing: front-matter
// dates are user prose, not data to reject an invoice over.
func Format(value, format string) (string, error) {
	goFmt, err := ParseFormat(format)
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, parseErr := time.Parse(layout, value); parseErr == nil {
			return t.Format(goFmt), nil
		}
	}

	return value, nil
}

// Current returns the current date rendered in the given format.
// The now parameter allows injecting a fixed time for testing.
func Current(format string, now time.Time) (string, error) {
	goFmt, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(goFmt), nil
}
