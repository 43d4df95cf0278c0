package mapping

import (
	"maps"
	"slices"
	"strings"

	"jsonschema-bean-generator/internal/schema"
)

// Registry holds the mappings and default packages of one run. It is not
// safe for concurrent use.
type Registry struct {
	mappings map[schema.Ref]Mapping
	packages map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		mappings: make(map[schema.Ref]Mapping),
		packages: make(map[string]string),
	}
}

// AddMapping registers m for ref, replacing any previous mapping.
func (r *Registry) AddMapping(ref schema.Ref, m Mapping) {
	m.Target = ref
	if m.GeneratedClassName.IsZero() {
		m.GeneratedClassName = m.ClassName
	}

	r.mappings[ref] = m
}

// Mapping returns the mapping registered for ref.
func (r *Registry) Mapping(ref schema.Ref) (Mapping, bool) {
	m, ok := r.mappings[ref]
	return m, ok
}

// Mappings returns all mappings ordered by target.
func (r *Registry) Mappings() []Mapping {
	refs := slices.SortedFunc(maps.Keys(r.mappings), func(a, b schema.Ref) int {
		return strings.Compare(a.String(), b.String())
	})

	out := make([]Mapping, 0, len(refs))
	for _, ref := range refs {
		out = append(out, r.mappings[ref])
	}

	return out
}

// AddDefaultPackage makes pkg the package of unmapped types at or below
// location. location is either a schema location or a directory-like URI
// prefix such as "http://x/schemas/".
func (r *Registry) AddDefaultPackage(location schema.Ref, pkg string) {
	r.packages[packageKey(location)] = pkg
}

// DefaultPackage returns the default package of the nearest enclosing
// location of ref: first the pointer ancestors, then the document and its
// parent directories.
func (r *Registry) DefaultPackage(ref schema.Ref) (string, bool) {
	for cur, ok := ref, true; ok; {
		if pkg, found := r.packages[packageKey(cur)]; found {
			return pkg, true
		}

		if !cur.IsRoot() {
			cur, ok = cur.Parent()
			continue
		}

		cur, ok = cur.DocumentParent()
	}

	return "", false
}

// packageKey ignores the trailing slash of directory prefixes so that
// "http://x/schemas" and "http://x/schemas/" are the same location.
func packageKey(ref schema.Ref) string {
	if !ref.IsRoot() {
		return ref.String()
	}

	return strings.TrimSuffix(ref.Document(), "/")
}
