package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"jsonschema-bean-generator/internal/common"
)

// MappingFile represents the root of a mapping file.
type MappingFile struct {
	// Version of the mapping file format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// BaseURI is the URI targets are resolved against.
	BaseURI string `yaml:"baseUri,omitempty"`

	// DefaultPackageName is the package of unmapped types under BaseURI.
	DefaultPackageName string `yaml:"defaultPackageName,omitempty"`

	// Mappings pins schema locations to classes.
	Mappings []Entry `yaml:"mappings"`
}

// Entry is one mapping as written in the file. Values are kept verbatim so
// that Validate can report every problem; Mapping converts them.
type Entry struct {
	// Target is the schema location, possibly relative to the base URI.
	Target string `yaml:"target"`

	// ClassName is the class used at reference sites.
	ClassName string `yaml:"className"`

	// GeneratedClassName is the class that is emitted, if it differs.
	GeneratedClassName string `yaml:"generatedClassName,omitempty"`

	// Extends is the superclass of the emitted class.
	Extends string `yaml:"extends,omitempty"`

	// Implements lists interfaces of the emitted class.
	Implements StringOrArray `yaml:"implements,omitempty"`

	// Modifiers lists extra class modifiers.
	Modifiers StringOrArray `yaml:"modifiers,omitempty"`

	// IgnoreAdditionalProperties disables the synthesized map supertype.
	IgnoreAdditionalProperties bool `yaml:"ignoreAdditionalProperties,omitempty"`

	// EnumStyle overrides the enum emission style: "enum" or "class".
	EnumStyle string `yaml:"enumStyle,omitempty"`
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
