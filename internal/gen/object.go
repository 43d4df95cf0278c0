package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/schema"
)

// additionalPropertiesField holds the values of undeclared properties.
const additionalPropertiesField = "additionalPropertiesMap"

// reservedAccessors are accessor suffixes that would clash with final
// java.lang.Object methods or leave a bare get/set.
var reservedAccessors = []string{"", "Class"}

// property is one declared property of an object schema.
type property struct {
	name  string
	field string
	class java.ClassName
	// value is the decoded "default", nil when absent.
	value any
	ref   schema.Ref
}

// generateObject writes a bean with one field and accessor pair per
// property. Objects with additional properties extend AbstractMap.
func (g *Generator) generateObject(t *task) (*java.ClassName, error) {
	props, err := g.properties(t)
	if err != nil {
		return nil, err
	}

	valueType, err := g.additionalProperties(t)
	if err != nil {
		return nil, err
	}

	if valueType != nil && t.mapping.Extends != nil {
		return nil, &generrors.ConfigError{
			Ref:    t.ref.String(),
			Option: "extends",
			Message: fmt.Sprintf("cannot extend %s and map additional properties at the same time",
				t.mapping.Extends),
		}
	}

	var reserved []string
	if valueType != nil {
		reserved = append(reserved, additionalPropertiesField)
	}

	assignFields(props, reserved...)

	w := t.w
	generated := t.mapping.GeneratedClassName
	extends := t.mapping.Extends

	w.WritePackage(generated)

	for _, p := range props {
		w.WriteImport(p.class)
	}

	var mapType, hashMapType, entrySetType java.ClassName

	if valueType != nil {
		value := java.Boxed(*valueType)
		base := java.AbstractMap.WithTypeArguments(java.String, value)
		extends = &base
		mapType = java.Map.WithTypeArguments(java.String, value)
		hashMapType = java.HashMap.WithTypeArguments(java.String, value)
		entrySetType = java.Set.WithTypeArguments(java.MapEntry.WithTypeArguments(java.String, value))

		w.WriteImport(mapType)
		w.WriteImport(hashMapType)
		w.WriteImport(entrySetType)
	}

	importHeader(w, extends, t.mapping.Implements)
	writeJavadoc(w, t.node)
	w.WriteClassStart(java.ClassDecl{
		Name:       generated,
		Extends:    extends,
		Implements: t.mapping.Implements,
		Kind:       java.KindClass,
		Visibility: java.VisibilityPublic,
		Modifiers:  t.mapping.Modifiers,
	})

	for _, p := range props {
		w.WriteField(java.Field{
			Visibility:  java.VisibilityPrivate,
			Type:        p.class,
			Name:        p.field,
			Initializer: g.initializer(t, p),
		})
	}

	if valueType != nil {
		w.WriteField(java.Field{
			Visibility:  java.VisibilityPrivate,
			Type:        mapType,
			Name:        additionalPropertiesField,
			Initializer: "new " + w.ShortName(hashMapType) + "()",
		})
	}

	void := java.Void

	for _, p := range props {
		w.WriteMethodStart(java.Method{
			Visibility: java.VisibilityPublic,
			Returns:    &p.class,
			Name:       java.AccessorName("get", p.field),
		})
		w.WriteCode("return " + p.field + ";")
		w.WriteMethodEnd()

		w.WriteMethodStart(java.Method{
			Visibility: java.VisibilityPublic,
			Returns:    &void,
			Name:       java.AccessorName("set", p.field),
			Params:     []java.Param{{Type: p.class, Name: "value"}},
		})
		w.WriteCode("this." + p.field + " = value;")
		w.WriteMethodEnd()
	}

	if valueType != nil {
		w.WriteAnnotation(java.Override, "")
		w.WriteMethodStart(java.Method{
			Visibility: java.VisibilityPublic,
			Returns:    &entrySetType,
			Name:       "entrySet",
		})
		w.WriteCode("return " + additionalPropertiesField + ".entrySet();")
		w.WriteMethodEnd()
	}

	w.WriteClassEnd()

	c := t.mapping.ClassName

	return &c, nil
}

// properties resolves the declared properties in declaration order.
func (g *Generator) properties(t *task) ([]property, error) {
	s := t.node.Schema()
	names := t.node.PropertyNames()
	props := make([]property, 0, len(names))

	for _, name := range names {
		loc := t.ref.Child("properties", name)

		target, err := childTarget(loc, s.Properties[name])
		if err != nil {
			return nil, fmt.Errorf("property %q of %s: %w", name, t.ref, err)
		}

		c, err := g.Generate(target)
		if err != nil {
			return nil, err
		}

		if c == nil {
			return nil, &generrors.InvalidTypeReferenceError{Ref: target.String(), Owner: t.ref.String()}
		}

		value, err := g.defaultValue(loc)
		if err != nil {
			return nil, err
		}

		props = append(props, property{name: name, class: *c, value: value, ref: loc})
	}

	return props, nil
}

// assignFields gives every property a field identifier. Fields never repeat
// each other or the reserved names, and no two fields share an accessor.
func assignFields(props []property, reserved ...string) {
	fields := make(map[string]bool, len(props)+len(reserved))
	accessors := make(map[string]bool, len(props)+len(reservedAccessors))

	for _, name := range reserved {
		fields[name] = true
	}

	for _, suffix := range reservedAccessors {
		accessors[suffix] = true
	}

	for i := range props {
		base := java.Identifier(props[i].name)

		field := base
		for n := 2; fields[field] || accessors[accessorSuffix(field)]; n++ {
			field = base + strconv.Itoa(n)
		}

		fields[field] = true
		accessors[accessorSuffix(field)] = true
		props[i].field = field
	}
}

// accessorSuffix is the part of the getter and setter names after get/set.
func accessorSuffix(field string) string {
	return strings.TrimPrefix(java.AccessorName("get", field), "get")
}

// additionalProperties returns the value type of undeclared properties, or
// nil when they are not mapped.
func (g *Generator) additionalProperties(t *task) (*java.ClassName, error) {
	if t.mapping.IgnoreAdditionalProperties {
		return nil, nil
	}

	if allowed, ok := t.node.Literal("additionalProperties"); ok {
		if !allowed {
			return nil, nil
		}

		c := java.Object

		return &c, nil
	}

	ap := t.node.Schema().AdditionalProperties
	if ap == nil {
		return nil, nil
	}

	loc := t.ref.Child("additionalProperties")

	if ap.Ref == "" {
		node, err := g.source.Resolve(loc)
		if err != nil {
			return nil, err
		}

		if len(node.Keywords()) == 0 {
			c := java.Object
			return &c, nil
		}
	}

	target, err := childTarget(loc, ap)
	if err != nil {
		return nil, fmt.Errorf("additionalProperties of %s: %w", t.ref, err)
	}

	c, err := g.Generate(target)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, &generrors.InvalidTypeReferenceError{Ref: target.String(), Owner: t.ref.String()}
	}

	return c, nil
}

// defaultValue decodes the default of the property schema at loc.
func (g *Generator) defaultValue(loc schema.Ref) (any, error) {
	node, err := g.source.Resolve(loc)
	if err != nil {
		return nil, err
	}

	value, ok, err := node.DefaultValue()
	if err != nil {
		return nil, &generrors.GenerationError{
			Ref:     loc.String(),
			Message: "invalid default",
			Cause:   fmt.Errorf("%w: %w", generrors.ErrInvalidSchema, err),
		}
	}

	if !ok {
		return nil, nil
	}

	return value, nil
}

// initializer renders the default of p as a Java expression, or "" when
// there is none or it cannot be expressed.
func (g *Generator) initializer(t *task, p property) string {
	switch v := p.value.(type) {
	case nil:
		return ""
	case string:
		switch {
		case g.enums[p.class.QualifiedName()]:
			return t.w.ShortName(p.class) + ".parse(" + java.Quote(v) + ")"
		case p.class.Equal(java.String) || p.class.Equal(java.Object):
			return java.Quote(v)
		}
	case bool:
		return strconv.FormatBool(v)
	case float64, json.Number:
		raw, err := json.Marshal(v)
		if err != nil {
			break
		}

		return string(raw) + numberSuffix(p.class)
	}

	g.logger.Warn("ignoring default value", "ref", p.ref.String(), "class", p.class.String())
	g.diags.AddWarning(diagnostic.CodeIgnoredDefault,
		fmt.Sprintf("default of property %q cannot be written as %s", p.name, p.class), p.ref.String(), "")

	return ""
}

// numberSuffix returns the literal suffix that keeps a default assignable
// to class.
func numberSuffix(class java.ClassName) string {
	switch java.Boxed(class).Raw() {
	case "Long":
		return "L"
	case "Float":
		return "f"
	default:
		return ""
	}
}

// childTarget returns the location a subschema stands for: the target of
// its $ref when it is an alias, loc itself otherwise.
func childTarget(loc schema.Ref, child *jsonschema.Schema) (schema.Ref, error) {
	if child == nil || child.Ref == "" {
		return loc, nil
	}

	return loc.Resolve(child.Ref)
}

// importHeader imports the supertypes ahead of the doc comment, which
// flushes the import block.
func importHeader(w *java.Writer, extends *java.ClassName, implements []java.ClassName) {
	if extends != nil {
		w.WriteImport(*extends)
	}

	for _, iface := range implements {
		w.WriteImport(iface)
	}
}

// writeJavadoc documents the type with the schema title and description.
func writeJavadoc(w *java.Writer, node *schema.Node) {
	s := node.Schema()

	var lines []string
	if s.Title != "" {
		lines = append(lines, s.Title)
	}

	if s.Description != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, strings.Split(s.Description, "\n")...)
	}

	if len(lines) > 0 {
		w.WriteJavadoc(lines...)
	}
}
