package gen

import (
	"fmt"
	"log/slog"
	"slices"

	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
)

// Name strategies for synthesized class names.
const (
	// NameStrategyCamelCase joins the capitalized pointer segments.
	NameStrategyCamelCase = "camel-case"
	// NameStrategyDollar is reserved and rejected when used.
	NameStrategyDollar = "dollar"
)

// NameStrategies lists the accepted values of Config.NameStrategy.
func NameStrategies() []string {
	return []string{NameStrategyCamelCase, NameStrategyDollar}
}

// Config holds configuration for code generation.
type Config struct {
	// DefaultPackageName is the package of types without a registered
	// default package.
	DefaultPackageName string
	// IgnoreMissingTypes downgrades tolerable failures to warnings.
	IgnoreMissingTypes bool
	// NameStrategy selects how unmapped types are named.
	NameStrategy string
	// SimplePlainTypes maps plain strings to java.lang.String without
	// looking at enum or format.
	SimplePlainTypes bool
	// EnumStyle is KindEnum or KindClass. Mappings may override it.
	EnumStyle java.Kind
	// AssumeObjectWhenUntyped treats schemas without shape keywords as
	// objects. Otherwise they are unsupported.
	AssumeObjectWhenUntyped bool
	// FormatTypes maps "format" values to richer Java types.
	FormatTypes bool
	// SingularizeItems names array items after the singular form of the
	// array property.
	SingularizeItems bool
	// ExistingTypes are classes that are never generated.
	ExistingTypes []java.ClassName
	// GeneratedBy is the @Generated value. Empty disables the annotation.
	GeneratedBy string
	// Indent is one level of indentation in the output.
	Indent string
	// Logger receives progress and warnings. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		DefaultPackageName:      "anonymous",
		NameStrategy:            NameStrategyCamelCase,
		EnumStyle:               java.KindEnum,
		AssumeObjectWhenUntyped: true,
		GeneratedBy:             java.DefaultGeneratedBy,
		Indent:                  "\t",
	}
}

// Validate checks option values that can be checked without a schema.
func (c Config) Validate() error {
	if !slices.Contains(NameStrategies(), c.NameStrategy) {
		return &generrors.ConfigError{
			Option:  "nameStrategy",
			Message: fmt.Sprintf("unknown name strategy %q", c.NameStrategy),
		}
	}

	if c.EnumStyle != java.KindEnum && c.EnumStyle != java.KindClass {
		return &generrors.ConfigError{
			Option:  "enumStyle",
			Message: fmt.Sprintf("enum style must be enum or class, got %s", c.EnumStyle),
		}
	}

	return nil
}

func (c Config) isExisting(name java.ClassName) bool {
	erasure := name.Erasure()

	return slices.ContainsFunc(c.ExistingTypes, erasure.Equal)
}
