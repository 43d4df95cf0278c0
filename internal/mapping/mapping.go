package mapping

import (
	"fmt"

	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/schema"
)

// Mapping is a resolved generation directive for one schema location.
// Mappings are values; the Registry hands out copies.
type Mapping struct {
	// Target is the schema location the directive applies to.
	Target schema.Ref

	// ClassName is the class used where the type is referenced.
	ClassName java.ClassName

	// GeneratedClassName is the class that is emitted. It defaults to
	// ClassName when registered.
	GeneratedClassName java.ClassName

	// Extends is the superclass of the emitted class, if any.
	Extends *java.ClassName

	// Implements lists interfaces of the emitted class.
	Implements []java.ClassName

	// Modifiers lists extra class modifiers.
	Modifiers []java.Modifier

	// IgnoreAdditionalProperties disables the synthesized map supertype.
	IgnoreAdditionalProperties bool

	// EnumStyle selects KindEnum or KindClass for string enumerations. The
	// zero value defers to the generator configuration.
	EnumStyle java.Kind
}

// TargetRef resolves the target of e against the base URI of the file.
func (mf *MappingFile) TargetRef(e Entry) (schema.Ref, error) {
	if mf.BaseURI == "" {
		return schema.ParseRef(e.Target)
	}

	base, err := schema.ParseRef(mf.BaseURI)
	if err != nil {
		return schema.Ref{}, err
	}

	return base.Resolve(e.Target)
}

// BaseRef returns the parsed base URI. ok is false when the file has none.
func (mf *MappingFile) BaseRef() (ref schema.Ref, ok bool, err error) {
	if mf.BaseURI == "" {
		return schema.Ref{}, false, nil
	}

	ref, err = schema.ParseRef(mf.BaseURI)

	return ref, err == nil, err
}

// Mapping converts e into a Mapping for target. A missing className, an
// unparsable class name, an unknown modifier and an unknown enum style are
// configuration conflicts.
func (e Entry) Mapping(target schema.Ref) (Mapping, error) {
	conflict := func(option, format string, args ...any) error {
		return &generrors.ConfigError{Ref: target.String(), Option: option, Message: fmt.Sprintf(format, args...)}
	}

	if e.ClassName == "" {
		return Mapping{}, conflict("className", "mapping has no className")
	}

	m := Mapping{Target: target, IgnoreAdditionalProperties: e.IgnoreAdditionalProperties}

	var err error

	m.ClassName, err = java.Parse(e.ClassName)
	if err != nil {
		return Mapping{}, conflict("className", "%v", err)
	}

	m.GeneratedClassName = m.ClassName
	if e.GeneratedClassName != "" {
		m.GeneratedClassName, err = java.Parse(e.GeneratedClassName)
		if err != nil {
			return Mapping{}, conflict("generatedClassName", "%v", err)
		}
	}

	if e.Extends != "" {
		extends, err := java.Parse(e.Extends)
		if err != nil {
			return Mapping{}, conflict("extends", "%v", err)
		}

		m.Extends = &extends
	}

	for _, iface := range e.Implements {
		c, err := java.Parse(iface)
		if err != nil {
			return Mapping{}, conflict("implements", "%v", err)
		}

		m.Implements = append(m.Implements, c)
	}

	for _, mod := range e.Modifiers {
		parsed, err := java.ParseModifier(mod)
		if err != nil {
			return Mapping{}, conflict("modifiers", "%v", err)
		}

		m.Modifiers = append(m.Modifiers, parsed)
	}

	if e.EnumStyle != "" {
		m.EnumStyle, err = ParseEnumStyle(e.EnumStyle)
		if err != nil {
			return Mapping{}, conflict("enumStyle", "%v", err)
		}
	}

	return m, nil
}

// EnumStyles lists the accepted enum style spellings.
func EnumStyles() []string {
	return []string{java.KindEnum.String(), java.KindClass.String()}
}

// ParseEnumStyle accepts "enum" and "class", in any case.
func ParseEnumStyle(s string) (java.Kind, error) {
	kind, err := java.ParseKind(s)
	if err != nil || (kind != java.KindEnum && kind != java.KindClass) {
		return 0, fmt.Errorf("unknown enum style %q", s)
	}

	return kind, nil
}
