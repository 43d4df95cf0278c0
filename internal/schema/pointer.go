package schema

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
)

// Keywords whose value maps names to subschemas.
var mapKeywords = map[string]func(*jsonschema.Schema) map[string]*jsonschema.Schema{
	"properties":        func(s *jsonschema.Schema) map[string]*jsonschema.Schema { return s.Properties },
	"patternProperties": func(s *jsonschema.Schema) map[string]*jsonschema.Schema { return s.PatternProperties },
	"$defs":             func(s *jsonschema.Schema) map[string]*jsonschema.Schema { return s.Defs },
	"definitions":       func(s *jsonschema.Schema) map[string]*jsonschema.Schema { return s.Definitions },
	"dependentSchemas":  func(s *jsonschema.Schema) map[string]*jsonschema.Schema { return s.DependentSchemas },
}

// Keywords whose value is a single subschema.
var schemaKeywords = map[string]func(*jsonschema.Schema) *jsonschema.Schema{
	"items":                 func(s *jsonschema.Schema) *jsonschema.Schema { return s.Items },
	"additionalItems":       func(s *jsonschema.Schema) *jsonschema.Schema { return s.AdditionalItems },
	"additionalProperties":  func(s *jsonschema.Schema) *jsonschema.Schema { return s.AdditionalProperties },
	"not":                   func(s *jsonschema.Schema) *jsonschema.Schema { return s.Not },
	"if":                    func(s *jsonschema.Schema) *jsonschema.Schema { return s.If },
	"then":                  func(s *jsonschema.Schema) *jsonschema.Schema { return s.Then },
	"else":                  func(s *jsonschema.Schema) *jsonschema.Schema { return s.Else },
	"contains":              func(s *jsonschema.Schema) *jsonschema.Schema { return s.Contains },
	"propertyNames":         func(s *jsonschema.Schema) *jsonschema.Schema { return s.PropertyNames },
	"unevaluatedItems":      func(s *jsonschema.Schema) *jsonschema.Schema { return s.UnevaluatedItems },
	"unevaluatedProperties": func(s *jsonschema.Schema) *jsonschema.Schema { return s.UnevaluatedProperties },
}

// Keywords whose value is an array of subschemas.
var listKeywords = map[string]func(*jsonschema.Schema) []*jsonschema.Schema{
	"allOf":       func(s *jsonschema.Schema) []*jsonschema.Schema { return s.AllOf },
	"anyOf":       func(s *jsonschema.Schema) []*jsonschema.Schema { return s.AnyOf },
	"oneOf":       func(s *jsonschema.Schema) []*jsonschema.Schema { return s.OneOf },
	"prefixItems": func(s *jsonschema.Schema) []*jsonschema.Schema { return s.PrefixItems },
}

// walkError reports the first pointer token that could not be followed,
// with the names that were available at that position.
type walkError struct {
	// depth is the number of tokens consumed successfully.
	depth      int
	token      string
	candidates []string
}

func (e *walkError) Error() string {
	return fmt.Sprintf("no subschema %q", e.token)
}

// walk follows tokens from root through the schema keywords that hold
// subschemas.
func walk(root *jsonschema.Schema, tokens []string) (*jsonschema.Schema, error) {
	current := root

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if get, ok := schemaKeywords[token]; ok {
			next := get(current)
			if next == nil {
				return nil, &walkError{depth: i, token: token, candidates: presentKeywords(current)}
			}

			current = next

			continue
		}

		if get, ok := mapKeywords[token]; ok {
			children := get(current)
			if i+1 == len(tokens) {
				return nil, &walkError{depth: i, token: token, candidates: slices.Sorted(maps.Keys(children))}
			}

			name := tokens[i+1]

			next, ok := children[name]
			if !ok || next == nil {
				return nil, &walkError{depth: i + 1, token: name, candidates: slices.Sorted(maps.Keys(children))}
			}

			current = next
			i++

			continue
		}

		if get, ok := listKeywords[token]; ok {
			items := get(current)
			if i+1 == len(tokens) {
				return nil, &walkError{depth: i, token: token, candidates: indexNames(len(items))}
			}

			index, err := strconv.Atoi(tokens[i+1])
			if err != nil || index < 0 || index >= len(items) || items[index] == nil {
				return nil, &walkError{depth: i + 1, token: tokens[i+1], candidates: indexNames(len(items))}
			}

			current = items[index]
			i++

			continue
		}

		return nil, &walkError{depth: i, token: token, candidates: presentKeywords(current)}
	}

	return current, nil
}

// presentKeywords lists the subschema keywords set on s.
func presentKeywords(s *jsonschema.Schema) []string {
	var names []string

	for name, get := range schemaKeywords {
		if get(s) != nil {
			names = append(names, name)
		}
	}

	for name, get := range mapKeywords {
		if len(get(s)) > 0 {
			names = append(names, name)
		}
	}

	for name, get := range listKeywords {
		if len(get(s)) > 0 {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

func indexNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}

	return names
}
