package schema

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-openapi/jsonpointer"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// layout records what the decoded schema model forgets: the declared key
// order of every object and the boolean literals, both keyed by escaped
// JSON pointer.
type layout struct {
	order map[string][]string
	bools map[string]bool
}

func newLayout() *layout {
	return &layout{
		order: make(map[string][]string),
		bools: make(map[string]bool),
	}
}

// scanJSON walks the token stream of a JSON document.
func scanJSON(data []byte) (*layout, error) {
	l := newLayout()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	token, err := dec.Token()
	if err == nil {
		err = l.scanJSONValue(dec, token, "")
	}

	if err != nil {
		return nil, fmt.Errorf("scanning JSON layout: %w", err)
	}

	return l, nil
}

// scanJSONValue consumes the value starting with token.
func (l *layout) scanJSONValue(dec *json.Decoder, token json.Token, pointer string) error {
	switch t := token.(type) {
	case bool:
		l.bools[pointer] = t
	case json.Delim:
		switch t {
		case '{':
			return l.scanJSONObject(dec, pointer)
		case '[':
			return l.scanJSONArray(dec, pointer)
		default:
			return fmt.Errorf("unexpected %q at %q", t, pointer)
		}
	}

	return nil
}

func (l *layout) scanJSONObject(dec *json.Decoder, pointer string) error {
	keys := []string{}

	for {
		token, err := dec.Token()
		if err != nil {
			return err
		}

		if token == json.Delim('}') {
			break
		}

		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v at %q", token, pointer)
		}

		keys = append(keys, key)

		value, err := dec.Token()
		if err != nil {
			return err
		}

		err = l.scanJSONValue(dec, value, pointer+"/"+jsonpointer.Escape(key))
		if err != nil {
			return err
		}
	}

	l.order[pointer] = keys

	return nil
}

func (l *layout) scanJSONArray(dec *json.Decoder, pointer string) error {
	for i := 0; ; i++ {
		token, err := dec.Token()
		if err != nil {
			return err
		}

		if token == json.Delim(']') {
			return nil
		}

		err = l.scanJSONValue(dec, token, pointer+"/"+strconv.Itoa(i))
		if err != nil {
			return err
		}
	}
}

// scanYAML walks a decoded YAML node tree.
func scanYAML(root *yaml.Node) *layout {
	l := newLayout()
	l.scanYAMLNode(root, "")

	return l
}

func (l *layout) scanYAMLNode(n *yaml.Node, pointer string) {
	if n == nil {
		return
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			l.scanYAMLNode(n.Content[0], pointer)
		}
	case yaml.AliasNode:
		l.scanYAMLNode(n.Alias, pointer)
	case yaml.MappingNode:
		keys := make([]string, 0, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			keys = append(keys, key)
			l.scanYAMLNode(n.Content[i+1], pointer+"/"+jsonpointer.Escape(key))
		}

		l.order[pointer] = keys
	case yaml.SequenceNode:
		for i, item := range n.Content {
			l.scanYAMLNode(item, pointer+"/"+strconv.Itoa(i))
		}
	case yaml.ScalarNode:
		if n.ShortTag() == "!!bool" {
			var b bool
			if n.Decode(&b) == nil {
				l.bools[pointer] = b
			}
		}
	}
}
