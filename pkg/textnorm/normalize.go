package textnorm

import (
	"strings"
	"unicode"
)

// charMap maps separator and punctuation variants that show up in
// user-typed dates to their canonical ASCII form.
var charMap = map[rune]rune{
	// Decimal/group separators
	'٫': '.', // Arabic decimal separator
	'٬': '.', // Arabic thousands separator
	',': '.',
	// Slash variants
	'／': '/', // full-width slash
	'⁄': '/', // fraction slash
	'∕': '/', // division slash
	// Dash variants
	'‐': '-', // hyphen
	'‑': '-', // non-breaking hyphen
	'–': '-', // en dash
	'—': '-', // em dash
	'−': '-', // minus sign
}

// Normalize maps Persian and Arabic-Indic digits to ASCII digits, canonicalizes
// separator variants, and folds all whitespace (including zero-width
// non-joiner) into single spaces. Characters outside these classes pass
// through unchanged, so Persian words adjacent to the numeric date survive.
// Example: "۱۴۰۳⁄۰۸⁄۰۹" -> "1403/08/09"
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch {
		case r >= '۰' && r <= '۹': // Persian digits
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩': // Arabic-Indic digits
			b.WriteRune('0' + (r - '٠'))
		case r == '‌' || unicode.IsSpace(r): // ZWNJ and whitespace
			b.WriteRune(' ')
		default:
			if mapped, ok := charMap[r]; ok {
				b.WriteRune(mapped)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return collapseSpaces(b.String())
}

// NormalizeForDate runs Normalize and then strips every character that cannot
// appear in the numeric date grammar, so embedded words (e.g. the Persian
// "ساعت" before a time) do not break pattern matching.
// Example: "۱۴۰۲/۰۵/۱۱ ساعت ۱۲:۰۵" -> "1402/05/11 12:05"
func NormalizeForDate(input string) string {
	normalized := Normalize(input)

	var b strings.Builder
	b.Grow(len(normalized))

	for _, r := range normalized {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '/' || r == '-' || r == '.' || r == ':' || r == ' ':
			b.WriteRune(r)
		}
	}

	return collapseSpaces(b.String())
}

// collapseSpaces reduces runs of spaces to one space and trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
