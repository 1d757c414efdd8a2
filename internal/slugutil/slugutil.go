// Package slugutil generates URL-safe hyphenated tokens.
// Used for canonicalizing table column names and building output
// filenames.
package slugutil

import "strings"

// translit maps common non-ASCII characters to ASCII equivalents.
// Covers Latin-1 supplement plus a few frequent extras; anything not
// listed and not alphanumeric is dropped.
var translit = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'ç': "c", 'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ì': "i", 'í': "i",
	'î': "i", 'ï': "i", 'ð': "d", 'ñ': "n", 'ò': "o", 'ó': "o", 'ô': "o",
	'õ': "o", 'ö': "o", 'ø': "o", 'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y", 'ÿ': "y", 'þ': "th", 'ß': "ss",
	'À': "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A", 'Æ': "AE",
	'Ç': "C", 'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E", 'Ì': "I", 'Í': "I",
	'Î': "I", 'Ï': "I", 'Ð': "D", 'Ñ': "N", 'Ò': "O", 'Ó': "O", 'Ô': "O",
	'Õ': "O", 'Ö': "O", 'Ø': "O", 'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U",
	'Ý': "Y", 'Þ': "TH",
	'œ': "oe", 'Œ': "OE", 'š': "s", 'Š': "S", 'ž': "z", 'Ž': "Z",
	'€': "euro", '£': "pound", '$': "dollar", '&': "and",
}

// Slug transliterates non-ASCII characters to ASCII and produces a
// hyphenated, URL-safe token. Underscores and whitespace become
// hyphens; other punctuation is dropped; consecutive hyphens collapse.
// When lower is true the result is lowercased.
func Slug(text string, lower bool) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == ' ', r == '\t', r == '\n':
			b.WriteByte('-')
		default:
			if repl, ok := translit[r]; ok {
				b.WriteString(repl)
			}
		}
	}

	s := b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if lower {
		s = strings.ToLower(s)
	}
	return s
}
