package currency

import "testing"

func TestSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "usd", code: "usd", want: "$"},
		{name: "gbp", code: "gbp", want: "£"},
		{name: "eur", code: "eur", want: "€"},
		{name: "inr", code: "inr", want: "₹"},
		{name: "uppercase code", code: "GBP", want: "£"},
		{name: "mixed case code", code: "UsD", want: "$"},
		{name: "unknown code", code: "xyz", want: ""},
		{name: "empty code", code: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Symbol(tt.code); got != tt.want {
				t.Errorf("Symbol(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestSymbolCoversAllSupportedCodes(t *testing.T) {
	t.Parallel()

	codes := []string{
		"usd", "aud", "gbp", "eur", "inr", "brl", "cad", "hkd", "ils",
		"jpy", "mxn", "twd", "nzd", "php", "sgd", "thb", "kes", "ngn",
	}

	for _, code := range codes {
		if Symbol(code) == "" {
			t.Errorf("Symbol(%q) = empty, want a symbol", code)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		code  string
		want  string
	}{
		{name: "rounds to 2 decimals", value: 19.999, code: "gbp", want: "£20.00"},
		{name: "pads to 2 decimals", value: 5, code: "usd", want: "$5.00"},
		{name: "unknown code omits symbol", value: 5, code: "xyz", want: "5.00"},
		{name: "zero", value: 0, code: "usd", want: "$0.00"},
		{name: "negative", value: -12.5, code: "eur", want: "€-12.50"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Format(tt.value, tt.code); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.value, tt.code, got, tt.want)
			}
		})
	}
}
