// Package numutil provides numeric parsing and percentage math for
// invoice values.
package numutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for numeric operations.
var (
	ErrEmptyValue = errors.New("value is empty")
	ErrNotANumber = errors.New("value is not a number")
	ErrNotAnInt   = errors.New("value is not an integer")
)

// ParsePrice parses a monetary value from a cell or field.
// Empty input returns ErrEmptyValue; anything that does not parse as a
// finite number returns ErrNotANumber.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	return v, nil
}

// ParseQuantity parses an integer quantity from a cell or field.
// Empty input returns ErrEmptyValue; anything that does not parse as a
// finite integer returns ErrNotAnInt.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInt, s)
	}

	return n, nil
}

// Percentage returns value*percent/100.
// Non-finite operands indicate a logic or configuration defect rather
// than user data, so they fail immediately with ErrNotANumber.
func Percentage(value, percent float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: value %v", ErrNotANumber, value)
	}
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0, fmt.Errorf("%w: percent %v", ErrNotANumber, percent)
	}
	return value * percent / 100, nil
}

// LenientNumber parses a configured numeric field such as a tax rate or
// discount. A trailing "%" (or any other non-numeric suffix) is
// stripped before conversion. Absent, unparsable, and non-positive
// values all resolve to 0: configuration treats "not specified" and
// "explicitly zero or less" the same way.
func LenientNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s[:end]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}

	return v
}
