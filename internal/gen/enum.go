package gen

import (
	"fmt"
	"strconv"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
)

// constant is one enumerated value and its Java identifier.
type constant struct {
	name  string
	value string
}

// generateString maps plain strings to String and writes string
// enumerations as a Java enum or as a class with constants.
func (g *Generator) generateString(t *task) (*java.ClassName, error) {
	s := t.node.Schema()
	if g.config.SimplePlainTypes || (s.Enum == nil && !t.node.Has("enum")) {
		return g.plainString(t), nil
	}

	style := t.mapping.EnumStyle
	if style == 0 {
		style = g.config.EnumStyle
	}

	switch style {
	case java.KindEnum:
		if t.mapping.Extends != nil {
			return nil, &generrors.ConfigError{
				Ref:     t.ref.String(),
				Option:  "extends",
				Message: "a Java enum cannot extend " + t.mapping.Extends.String(),
			}
		}
	case java.KindClass:
	default:
		return nil, &generrors.ConfigError{
			Ref:     t.ref.String(),
			Option:  "enumStyle",
			Message: fmt.Sprintf("enum style must be enum or class, got %s", style),
		}
	}

	constants, err := g.constants(t)
	if err != nil {
		return nil, err
	}

	w := t.w
	generated := t.mapping.GeneratedClassName

	w.WritePackage(generated)

	if style == java.KindClass {
		w.WriteImport(java.Objects)
		w.WriteImport(java.Arrays)
		w.WriteImport(java.List)
	}

	importHeader(w, t.mapping.Extends, t.mapping.Implements)
	writeJavadoc(w, t.node)
	w.WriteClassStart(java.ClassDecl{
		Name:       generated,
		Extends:    t.mapping.Extends,
		Implements: t.mapping.Implements,
		Kind:       style,
		Visibility: java.VisibilityPublic,
		Modifiers:  t.mapping.Modifiers,
	})

	self := w.ShortName(generated)
	value := java.Param{Type: java.String, Name: "value"}

	if style == java.KindEnum {
		writeEnumConstants(w, constants)
		w.WriteEmptyLine()
		w.WriteField(java.Field{
			Visibility: java.VisibilityPrivate,
			Modifiers:  []java.Modifier{java.ModifierFinal},
			Type:       java.String,
			Name:       "value",
		})
		w.WriteConstructorStart(java.VisibilityPrivate, generated, value)
	} else {
		for _, c := range constants {
			w.WriteField(java.Field{
				Visibility:  java.VisibilityPublic,
				Modifiers:   []java.Modifier{java.ModifierStatic, java.ModifierFinal},
				Type:        generated,
				Name:        c.name,
				Initializer: "new " + self + "(" + java.Quote(c.value) + ")",
			})
		}

		w.WriteEmptyLine()
		w.WriteField(java.Field{
			Visibility: java.VisibilityPrivate,
			Modifiers:  []java.Modifier{java.ModifierFinal},
			Type:       java.String,
			Name:       "value",
		})
		w.WriteConstructorStart(java.VisibilityPublic, generated, value)
	}

	w.WriteCode("this.value = value;")
	w.WriteMethodEnd()

	writeValueAccessors(w, generated)

	if style == java.KindClass {
		writeClassConstantMethods(w, generated, constants)
	}

	w.WriteClassEnd()

	g.enums[t.mapping.ClassName.QualifiedName()] = true

	c := t.mapping.ClassName

	return &c, nil
}

// constants validates the enumerated values and derives unique constant
// names for them.
func (g *Generator) constants(t *task) ([]constant, error) {
	values := t.node.Schema().Enum
	constants := make([]constant, 0, len(values))
	taken := make(map[string]bool, len(values))

	for i, v := range values {
		text, ok := v.(string)
		if !ok {
			return nil, &generrors.GenerationError{
				Ref:     t.ref.String(),
				Message: fmt.Sprintf("enum value %d is %T, only strings are supported", i, v),
				Cause:   generrors.ErrInvalidSchema,
			}
		}

		base := java.ConstantName(text)
		name := base

		for n := 2; taken[name]; n++ {
			name = base + "_" + strconv.Itoa(n)
		}

		if name != base {
			g.logger.Warn("duplicate enum constant", "ref", t.ref.String(), "value", text, "constant", name)
			g.diags.AddWarning(diagnostic.CodeDuplicateEnumConstant,
				fmt.Sprintf("value %q maps to %s, renamed to %s", text, base, name), t.ref.String(), "")
		}

		taken[name] = true
		constants = append(constants, constant{name: name, value: text})
	}

	return constants, nil
}

func writeEnumConstants(w *java.Writer, constants []constant) {
	if len(constants) == 0 {
		w.WriteCode(";")
		return
	}

	for i, c := range constants {
		sep := ","
		if i == len(constants)-1 {
			sep = ";"
		}

		w.WriteCode(c.name + "(" + java.Quote(c.value) + ")" + sep)
	}
}

// writeValueAccessors writes getValue, toString and parse.
func writeValueAccessors(w *java.Writer, class java.ClassName) {
	self := w.ShortName(class)
	str := java.String

	w.WriteMethodStart(java.Method{Visibility: java.VisibilityPublic, Returns: &str, Name: "getValue"})
	w.WriteCode("return value;")
	w.WriteMethodEnd()

	w.WriteAnnotation(java.Override, "")
	w.WriteMethodStart(java.Method{Visibility: java.VisibilityPublic, Returns: &str, Name: "toString"})
	w.WriteCode("return getValue();")
	w.WriteMethodEnd()

	w.WriteMethodStart(java.Method{
		Visibility: java.VisibilityPublic,
		Modifiers:  []java.Modifier{java.ModifierStatic},
		Returns:    &class,
		Name:       "parse",
		Params:     []java.Param{{Type: java.String, Name: "stringValue"}},
	})
	w.WriteCode("for (" + self + " value : values()) {")
	w.PushIndent()
	w.WriteCode("if (value.value.equals(stringValue)) {")
	w.PushIndent()
	w.WriteCode("return value;")
	w.PopIndent()
	w.WriteCode("}")
	w.PopIndent()
	w.WriteCode("}")
	w.WriteCode(`throw new IllegalArgumentException("Unknown value " + stringValue);`)
	w.WriteMethodEnd()
}

// writeClassConstantMethods writes hashCode, equals and values for the
// class style; enums get them from java.lang.Enum.
func writeClassConstantMethods(w *java.Writer, class java.ClassName, constants []constant) {
	self := w.ShortName(class)
	integer := java.Int
	boolean := java.Boolean
	list := java.List.WithTypeArguments(class)

	w.WriteAnnotation(java.Override, "")
	w.WriteMethodStart(java.Method{Visibility: java.VisibilityPublic, Returns: &integer, Name: "hashCode"})
	w.WriteCode("return " + w.ShortName(java.Objects) + ".hash(value);")
	w.WriteMethodEnd()

	w.WriteAnnotation(java.Override, "")
	w.WriteMethodStart(java.Method{
		Visibility: java.VisibilityPublic,
		Returns:    &boolean,
		Name:       "equals",
		Params:     []java.Param{{Type: java.Object, Name: "obj"}},
	})
	w.WriteCode("if (!(obj instanceof " + self + ")) {")
	w.PushIndent()
	w.WriteCode("return false;")
	w.PopIndent()
	w.WriteCode("}")
	w.WriteCode("return " + w.ShortName(java.Objects) + ".equals(value, ((" + self + ") obj).value);")
	w.WriteMethodEnd()

	w.WriteMethodStart(java.Method{
		Visibility: java.VisibilityPublic,
		Modifiers:  []java.Modifier{java.ModifierStatic},
		Returns:    &list,
		Name:       "values",
	})

	if len(constants) == 0 {
		w.WriteCode("return " + w.ShortName(java.Arrays) + ".asList();")
	} else {
		w.WriteCode("return " + w.ShortName(java.Arrays) + ".asList(")
		w.PushIndent()

		for i, c := range constants {
			sep := ","
			if i == len(constants)-1 {
				sep = ""
			}

			w.WriteCode(c.name + sep)
		}

		w.PopIndent()
		w.WriteCode(");")
	}

	w.WriteMethodEnd()
}
