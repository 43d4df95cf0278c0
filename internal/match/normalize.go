package match

import (
	"strings"
	"unicode"
)

// Normalize prepares a name for fuzzy comparison: CamelCase is split,
// everything is lower-cased, and separators are removed.
//
//	"firstName"   -> "firstname"
//	"first_name"  -> "firstname"
//	"$defs/Order" -> "defsorder"
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Tokenize splits s into words at separators and CamelCase boundaries.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "definitions/line-item" -> ["definitions", "line", "item"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator reports runes that separate words in identifiers, pointers
// and URIs.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', '/', '#', '$', ':', '~':
		return true
	default:
		return false
	}
}

// startsWord reports whether a new word starts at runes[i].
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	// "orderId": lower to upper.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word.
	return unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
