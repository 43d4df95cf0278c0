package gen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-openapi/inflect"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/mapping"
	"jsonschema-bean-generator/internal/schema"
)

// fallbackClassName names types whose location yields no usable segment.
const fallbackClassName = "Type"

// structuralSegments never contribute to synthesized names.
var structuralSegments = map[string]bool{
	"":            true,
	"properties":  true,
	"definitions": true,
	"$defs":       true,
}

// synthesizeMapping creates the mapping of an unmapped schema location.
func (g *Generator) synthesizeMapping(ref schema.Ref) (mapping.Mapping, error) {
	switch g.config.NameStrategy {
	case NameStrategyCamelCase:
	case NameStrategyDollar:
		return mapping.Mapping{}, &generrors.ConfigError{
			Ref:     ref.String(),
			Option:  "nameStrategy",
			Message: "the dollar name strategy is reserved",
		}
	default:
		return mapping.Mapping{}, &generrors.ConfigError{
			Ref:     ref.String(),
			Option:  "nameStrategy",
			Message: fmt.Sprintf("unknown name strategy %q", g.config.NameStrategy),
		}
	}

	pkg := g.packageOf(ref)
	name := java.NewClassName(pkg, g.uniqueName(pkg, className(ref, g.config.SingularizeItems)))

	g.logger.Debug("synthesized mapping", "ref", ref.String(), "class", name.String())

	return mapping.Mapping{Target: ref, ClassName: name, GeneratedClassName: name}, nil
}

// packageOf returns the default package registered for ref or one of its
// ancestors, falling back to the configured default package.
func (g *Generator) packageOf(ref schema.Ref) string {
	pkg, ok := g.registry.DefaultPackage(ref)
	if ok {
		return pkg
	}

	g.logger.Warn("no default package registered, using fallback",
		"ref", ref.String(), "package", g.config.DefaultPackageName)
	g.diags.AddWarning(diagnostic.CodeDefaultPackage,
		"no default package registered, using "+g.config.DefaultPackageName, ref.String(), "")

	return g.config.DefaultPackageName
}

// uniqueName appends $N to raw until the qualified name is unclaimed.
func (g *Generator) uniqueName(pkg, raw string) string {
	name := raw
	for g.claimed[java.NewClassName(pkg, name).QualifiedName()] {
		g.counter++
		name = raw + "$" + strconv.Itoa(g.counter)
	}

	g.claimed[java.NewClassName(pkg, name).QualifiedName()] = true

	return name
}

// className derives a raw class name from the pointer of ref. Each
// non-structural segment is capitalized and stripped of characters that
// cannot appear in identifiers.
//
//	#/definitions/address          -> Address
//	#/properties/home/properties/x -> HomeX
//	#/properties/tags/items        -> TagsItems, or Tag when singularizing
//	#                              -> document name
func className(ref schema.Ref, singularize bool) string {
	var segments []string

	for _, token := range ref.Tokens() {
		for _, s := range strings.FieldsFunc(token, isSegmentSeparator) {
			if !structuralSegments[s] {
				segments = append(segments, s)
			}
		}
	}

	if singularize {
		segments = singularizeItems(segments)
	}

	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(classSegment(s))
	}

	if sb.Len() == 0 {
		sb.WriteString(classSegment(ref.DocumentName()))
	}

	if sb.Len() == 0 {
		return fallbackClassName
	}

	return sb.String()
}

func isSegmentSeparator(r rune) bool {
	return r == '/' || r == ':'
}

// singularizeItems folds "<plural>/items" into "<singular>".
func singularizeItems(segments []string) []string {
	out := make([]string, 0, len(segments))

	for _, s := range segments {
		if s == "items" && len(out) > 0 {
			out[len(out)-1] = inflect.Singularize(out[len(out)-1])
			continue
		}

		out = append(out, s)
	}

	return out
}

// classSegment capitalizes s. Segments that cannot start an identifier get
// a leading underscore.
func classSegment(s string) string {
	if s == "" {
		return ""
	}

	first, _ := utf8.DecodeRuneInString(s)
	if java.IsIdentifierStart(first) {
		s = java.Capitalize(s)
	} else {
		s = "_" + s
	}

	return strings.Map(func(r rune) rune {
		if java.IsIdentifierPart(r) {
			return r
		}

		return -1
	}, s)
}
