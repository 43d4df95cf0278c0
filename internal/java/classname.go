package java

import (
	"fmt"
	"slices"
	"strings"
)

// ClassName is an immutable Java type name: package, raw (simple) name and
// optional generic type arguments. The zero value is an invalid name.
type ClassName struct {
	pkg  string
	raw  string
	args []ClassName
}

// NewClassName creates a ClassName. Primitive and default-package types use
// an empty package.
func NewClassName(pkg, raw string, args ...ClassName) ClassName {
	return ClassName{pkg: pkg, raw: raw, args: slices.Clone(args)}
}

// Package returns the package name, empty for primitives and the default package.
func (c ClassName) Package() string { return c.pkg }

// Raw returns the raw class name without package and type arguments.
func (c ClassName) Raw() string { return c.raw }

// TypeArguments returns a copy of the generic type arguments.
func (c ClassName) TypeArguments() []ClassName { return slices.Clone(c.args) }

// IsZero reports whether c is the zero value.
func (c ClassName) IsZero() bool { return c.raw == "" && c.pkg == "" && len(c.args) == 0 }

// QualifiedName returns package and raw name joined by a dot, without type arguments.
func (c ClassName) QualifiedName() string {
	if c.pkg == "" {
		return c.raw
	}

	return c.pkg + "." + c.raw
}

// WithRaw returns a copy of c with a different raw name.
func (c ClassName) WithRaw(raw string) ClassName {
	return ClassName{pkg: c.pkg, raw: raw, args: c.args}
}

// WithTypeArguments returns a copy of c with the given type arguments.
func (c ClassName) WithTypeArguments(args ...ClassName) ClassName {
	return ClassName{pkg: c.pkg, raw: c.raw, args: slices.Clone(args)}
}

// Erasure returns c without its type arguments.
func (c ClassName) Erasure() ClassName {
	return ClassName{pkg: c.pkg, raw: c.raw}
}

// String formats c as `pkg.Raw<arg1,arg2>`; Parse is its inverse.
func (c ClassName) String() string {
	var sb strings.Builder
	c.appendTo(&sb)

	return sb.String()
}

func (c ClassName) appendTo(sb *strings.Builder) {
	if c.pkg != "" {
		sb.WriteString(c.pkg)
		sb.WriteByte('.')
	}

	sb.WriteString(c.raw)

	if len(c.args) > 0 {
		sb.WriteByte('<')

		for i, arg := range c.args {
			if i > 0 {
				sb.WriteByte(',')
			}

			arg.appendTo(sb)
		}

		sb.WriteByte('>')
	}
}

// Equal reports structural equality of package, raw name and type arguments.
func (c ClassName) Equal(other ClassName) bool {
	return c.pkg == other.pkg && c.raw == other.raw &&
		slices.EqualFunc(c.args, other.args, ClassName.Equal)
}

// Parse parses the textual form produced by String. Whitespace around the
// name and around type arguments is ignored.
func Parse(value string) (ClassName, error) {
	fqcn := strings.TrimSpace(value)
	if fqcn == "" {
		return ClassName{}, fmt.Errorf("empty class name")
	}

	end := len(fqcn)

	var args []ClassName

	if bracket := strings.IndexByte(fqcn, '<'); bracket != -1 {
		if fqcn[len(fqcn)-1] != '>' {
			return ClassName{}, fmt.Errorf("class name %q: unterminated type arguments", value)
		}

		parsed, err := parseTypeArguments(fqcn[bracket+1 : len(fqcn)-1])
		if err != nil {
			return ClassName{}, fmt.Errorf("class name %q: %w", value, err)
		}

		args = parsed
		end = bracket
	} else if strings.ContainsAny(fqcn, ">,") {
		return ClassName{}, fmt.Errorf("class name %q: unexpected type argument delimiter", value)
	}

	name := strings.TrimSpace(fqcn[:end])

	var pkg, raw string

	if dot := strings.LastIndexByte(name, '.'); dot == -1 {
		raw = name
	} else {
		pkg, raw = name[:dot], name[dot+1:]
	}

	if raw == "" {
		return ClassName{}, fmt.Errorf("class name %q: missing raw name", value)
	}

	return ClassName{pkg: pkg, raw: raw, args: args}, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants.
func MustParse(value string) ClassName {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return c
}

// parseTypeArguments splits the text between the outer angle brackets at
// depth-0 commas.
func parseTypeArguments(text string) ([]ClassName, error) {
	var (
		args  []ClassName
		depth int
		start int
	)

	for i := 0; i <= len(text); i++ {
		if i < len(text) {
			switch text[i] {
			case '<':
				depth++
				continue
			case '>':
				depth--
				if depth < 0 {
					return nil, fmt.Errorf("unbalanced '>' at offset %d", i)
				}

				continue
			case ',':
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}

		if depth != 0 {
			return nil, fmt.Errorf("unbalanced '<'")
		}

		arg, err := Parse(text[start:i])
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
		start = i + 1
	}

	return args, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c ClassName) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so that class names can
// be read directly from mapping files.
func (c *ClassName) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
