package java

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind,Visibility,Modifier -linecomment -output=kind_string.go

// Kind is the kind of a type declaration.
type Kind int

const (
	_ Kind = iota // zero value is "unset"

	KindClass      // class
	KindEnum       // enum
	KindInterface  // interface
	KindAnnotation // @interface
)

// Visibility is a Java access modifier.
type Visibility int

const (
	_ Visibility = iota

	VisibilityPublic    // public
	VisibilityProtected // protected
	VisibilityPrivate   // private
	VisibilityPackage   // package
)

// Modifier is a non-access Java modifier.
type Modifier int

const (
	_ Modifier = iota

	ModifierAbstract     // abstract
	ModifierFinal        // final
	ModifierStatic       // static
	ModifierTransient    // transient
	ModifierVolatile     // volatile
	ModifierSynchronized // synchronized
	ModifierNative       // native
	ModifierStrictfp     // strictfp
)

// ParseKind parses a kind keyword. Both the Java keyword ("enum") and the
// upper-case constant spelling ("ENUM") are accepted.
func ParseKind(s string) (Kind, error) {
	for k := KindClass; k <= KindAnnotation; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown kind %q", s)
}

// KindKeywords returns the accepted kind spellings.
func KindKeywords() []string {
	return []string{KindClass.String(), KindEnum.String(), KindInterface.String(), KindAnnotation.String()}
}

// ParseModifier parses a modifier keyword, case-insensitively.
func ParseModifier(s string) (Modifier, error) {
	for m := ModifierAbstract; m <= ModifierStrictfp; m++ {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown modifier %q", s)
}

// ModifierKeywords returns the accepted modifier spellings.
func ModifierKeywords() []string {
	keywords := make([]string, 0, int(ModifierStrictfp))
	for m := ModifierAbstract; m <= ModifierStrictfp; m++ {
		keywords = append(keywords, m.String())
	}

	return keywords
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Modifier) UnmarshalText(text []byte) error {
	parsed, err := ParseModifier(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
