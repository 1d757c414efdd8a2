// Package currency provides the static currency symbol table and price
// formatting used across the invoice.
package currency

import (
	"fmt"
	"strings"
)

// DefaultCode is used when no currency is configured.
const DefaultCode = "usd"

// symbols maps lowercase ISO 4217 codes to display symbols.
// Built once at init; never mutated.
var symbols = map[string]string{
	"usd": "$",
	"aud": "A$",
	"gbp": "£",
	"eur": "€",
	"inr": "₹",
	"brl": "R$",
	"cad": "C$",
	"hkd": "HK$",
	"ils": "₪",
	"jpy": "¥",
	"mxn": "Mex$",
	"twd": "NT$",
	"nzd": "NZ$",
	"php": "₱",
	"sgd": "S$",
	"thb": "฿",
	"kes": "KSh",
	"ngn": "₦",
}

// Symbol returns the display symbol for a currency code.
// Lookup is case-insensitive; unknown codes return an empty string.
func Symbol(code string) string {
	return symbols[strings.ToLower(code)]
}

// Format renders a monetary value with 2 decimal places, prefixed by
// the currency symbol. Unknown codes render the bare amount; Format
// never fails.
func Format(v float64, code string) string {
	return Symbol(code) + fmt.Sprintf("%.2f", v)
}
