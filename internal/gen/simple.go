package gen

import (
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
)

// stringFormats maps string formats to Java types when Config.FormatTypes
// is set.
var stringFormats = map[string]java.ClassName{
	"date":      java.NewClassName("java.time", "LocalDate"),
	"date-time": java.NewClassName("java.time", "OffsetDateTime"),
	"time":      java.NewClassName("java.time", "LocalTime"),
	"uuid":      java.NewClassName("java.util", "UUID"),
	"uri":       java.NewClassName("java.net", "URI"),
}

func (g *Generator) generateInteger(t *task) (*java.ClassName, error) {
	c := java.Int
	if g.config.FormatTypes && t.node.Schema().Format == "int64" {
		c = java.Long
	}

	return &c, nil
}

func (g *Generator) generateNumber(t *task) (*java.ClassName, error) {
	c := java.Double
	if g.config.FormatTypes && t.node.Schema().Format == "float" {
		c = java.Float
	}

	return &c, nil
}

func (g *Generator) generateBoolean(*task) (*java.ClassName, error) {
	c := java.Boolean
	return &c, nil
}

// plainString returns the type of a string schema without enumeration.
func (g *Generator) plainString(t *task) *java.ClassName {
	c := java.String

	if g.config.FormatTypes && !g.config.SimplePlainTypes {
		if formatted, ok := stringFormats[t.node.Schema().Format]; ok {
			c = formatted
		}
	}

	return &c
}

// generateArray maps arrays to List, or Set for unique items. Elements are
// boxed; arrays without items hold Object.
func (g *Generator) generateArray(t *task) (*java.ClassName, error) {
	s := t.node.Schema()
	element := java.Object

	if _, literal := t.node.Literal("items"); !literal && s.Items != nil {
		target, err := childTarget(t.ref.Child("items"), s.Items)
		if err != nil {
			return nil, err
		}

		c, err := g.Generate(target)
		if err != nil {
			return nil, err
		}

		if c == nil {
			return nil, &generrors.InvalidTypeReferenceError{Ref: target.String(), Owner: t.ref.String()}
		}

		element = *c
	}

	container := java.List
	if s.UniqueItems {
		container = java.Set
	}

	c := container.WithTypeArguments(java.Boxed(element))

	return &c, nil
}
