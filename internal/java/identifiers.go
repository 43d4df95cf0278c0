package java

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedWords are Java keywords and literals that cannot be identifiers.
var reservedWords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

var (
	upperCaser = cases.Upper(language.English)
	titleCaser = cases.Title(language.English, cases.NoLower)
)

// IsIdentifierStart reports whether r may start a Java identifier.
func IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

// IsIdentifierPart reports whether r may appear in a Java identifier.
func IsIdentifierPart(r rune) bool {
	return IsIdentifierStart(r) || unicode.IsDigit(r)
}

// IsReserved reports whether name is a Java keyword or literal.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// Identifier turns an arbitrary property name into a valid Java identifier:
// invalid runes are dropped, a leading digit gets an underscore, and
// reserved words get a trailing underscore.
//
//	"first-name" -> "firstname"
//	"2fa"        -> "_2fa"
//	"class"      -> "class_"
//	"-"          -> "property"
func Identifier(name string) string {
	var sb strings.Builder

	for _, r := range name {
		if IsIdentifierPart(r) {
			sb.WriteRune(r)
		}
	}

	id := sb.String()
	if id == "" {
		return "property"
	}

	if first, _ := utf8.DecodeRuneInString(id); !IsIdentifierStart(first) {
		id = "_" + id
	}

	if IsReserved(id) {
		id += "_"
	}

	return id
}

// ConstantName upper-cases value for use as an enum constant. Runes that
// cannot appear in identifiers become underscores.
//
//	"in-progress" -> "IN_PROGRESS"
//	"1st"         -> "_1ST"
//	""            -> "EMPTY"
func ConstantName(value string) string {
	var sb strings.Builder

	for _, r := range upperCaser.String(value) {
		if IsIdentifierPart(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	id := sb.String()
	if id == "" {
		return "EMPTY"
	}

	if first, _ := utf8.DecodeRuneInString(id); !IsIdentifierStart(first) {
		id = "_" + id
	}

	if IsReserved(id) {
		id += "_"
	}

	return id
}

// Capitalize title-cases the first rune of s and keeps the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)

	return titleCaser.String(string(first)) + s[size:]
}

// AccessorName builds "getX"/"setX" style names from a property identifier.
func AccessorName(prefix, property string) string {
	return prefix + Capitalize(strings.TrimLeft(property, "_"))
}

// Quote returns s as a Java string literal. Non-ASCII runes are written as
// \u escapes so that the output does not depend on the source encoding.
func Quote(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r >= 0x20 && r < 0x7f {
				sb.WriteRune(r)
				continue
			}

			writeUnicodeEscape(&sb, r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	units := []rune{r}
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		units = []rune{hi, lo}
	}

	for _, u := range units {
		hex := strconv.FormatInt(int64(u), 16)
		sb.WriteString(`\u` + strings.Repeat("0", 4-len(hex)) + hex)
	}
}
