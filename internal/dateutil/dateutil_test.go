package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "YYYY converts to Go year format", format: "YYYY", want: "2006"},
		{name: "YY converts to short year format", format: "YY", want: "06"},
		{name: "MMMM converts to full month name", format: "MMMM", want: "January"},
		{name: "MMM converts to short month name", format: "MMM", want: "Jan"},
		{name: "MM converts to zero-padded month", format: "MM", want: "01"},
		{name: "DD converts to zero-padded day", format: "DD", want: "02"},
		{name: "default display format", format: "MMM DD, YYYY", want: "Jan 02, 2006"},
		{name: "ISO format", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "preserves literal separators", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "brackets preserve literal text", format: "[Date]: YYYY", want: "Date: 2006"},
		{name: "empty format", format: "", wantErr: ErrInvalidFormat},
		{name: "unclosed bracket", format: "[Date: YYYY", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "ISO date", value: "2024-03-09", want: "Mar 09, 2024"},
		{name: "slash date", value: "2024/03/09", want: "Mar 09, 2024"},
		{name: "US date", value: "03/09/2024", want: "Mar 09, 2024"},
		{name: "long form", value: "March 9, 2024", want: "Mar 09, 2024"},
		{name: "short form", value: "Mar 9, 2024", want: "Mar 09, 2024"},
		{name: "surrounding whitespace", value: "  2024-03-09  ", want: "Mar 09, 2024"},
		{name: "unparsable value passes through", value: "sometime next week", want: "sometime next week"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.value, DefaultFormat)
			if err != nil {
				t.Fatalf("Format(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatInvalidFormat(t *testing.T) {
	t.Parallel()

	if _, err := Format("2024-03-09", ""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Format with empty format error = %v, want ErrInvalidFormat", err)
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

	got, err := Current(DefaultFormat, now)
	if err != nil {
		t.Fatalf("Current unexpected error: %v", err)
	}
	if got != "Mar 09, 2024" {
		t.Errorf("Current = %q, want %q", got, "Mar 09, 2024")
	}
}
