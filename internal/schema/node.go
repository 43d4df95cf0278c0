package schema

import (
	"maps"
	"slices"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// Node is a read-only view of the schema at a Ref.
type Node struct {
	ref    Ref
	schema *jsonschema.Schema
	layout *layout
}

// Ref returns the location of the node.
func (n *Node) Ref() Ref { return n.ref }

// Schema returns the decoded schema. Callers must not modify it.
func (n *Node) Schema() *jsonschema.Schema { return n.schema }

// Keywords returns the keywords of the node in declaration order.
func (n *Node) Keywords() []string {
	if n.layout == nil {
		return nil
	}

	return slices.Clone(n.layout.order[n.ref.pointer])
}

// Has reports whether keyword is declared on the node, even with an empty
// value such as "allOf": [].
func (n *Node) Has(keyword string) bool {
	return slices.Contains(n.Keywords(), keyword)
}

// IsAlias reports whether the node carries a $ref.
func (n *Node) IsAlias() bool {
	return n.schema.Ref != ""
}

// AliasTarget resolves the $ref of the node against its document.
func (n *Node) AliasTarget() (Ref, error) {
	return n.ref.Resolve(n.schema.Ref)
}

// Siblings returns the keywords declared next to $ref.
func (n *Node) Siblings() []string {
	var out []string

	for _, k := range n.Keywords() {
		if k != "$ref" {
			out = append(out, k)
		}
	}

	return out
}

// PropertyNames returns the property names in declaration order. Without
// layout information they are sorted.
func (n *Node) PropertyNames() []string {
	if n.layout != nil {
		if order, ok := n.layout.order[n.ref.Child("properties").pointer]; ok {
			return slices.Clone(order)
		}
	}

	return slices.Sorted(maps.Keys(n.schema.Properties))
}

// Literal reports whether the subschema under keyword was written as the
// boolean literal true or false. ok is false for object subschemas and
// absent keywords.
func (n *Node) Literal(keyword string) (value, ok bool) {
	if n.layout == nil {
		return false, false
	}

	value, ok = n.layout.bools[n.ref.Child(keyword).pointer]

	return value, ok
}

// Types returns the declared type names: the single "type" string or the
// "type" array.
func (n *Node) Types() []string {
	if n.schema.Type != "" {
		return []string{n.schema.Type}
	}

	return slices.Clone(n.schema.Types)
}

// DefaultValue decodes the "default" keyword. ok is false when absent.
func (n *Node) DefaultValue() (value any, ok bool, err error) {
	if !n.Has("default") && n.schema.Default == nil {
		return nil, false, nil
	}

	raw, err := json.Marshal(n.schema.Default)
	if err != nil {
		return nil, true, err
	}

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return nil, true, err
	}

	return value, true, nil
}
