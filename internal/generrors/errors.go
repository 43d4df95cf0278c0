package generrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMissingSchema indicates that a document or pointer could not be found.
	ErrMissingSchema = errors.New("missing schema")

	// ErrInvalidTypeReference indicates that a reference resolved to no type
	// where one is required.
	ErrInvalidTypeReference = errors.New("invalid type reference")

	// ErrCycleDetected indicates re-entrant resolution of a reference.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrConfigurationConflict indicates malformed configuration or mappings.
	ErrConfigurationConflict = errors.New("configuration conflict")

	// ErrUnsupportedShape indicates a schema shape without a kind generator.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrInvalidSchema indicates schema content the generator cannot use.
	ErrInvalidSchema = errors.New("invalid schema")
)

// MissingSchemaError reports a reference without a backing schema.
type MissingSchemaError struct {
	// Ref is the reference that failed to resolve.
	Ref string
	// Suggestions lists nearby locations that do exist.
	Suggestions []string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *MissingSchemaError) Error() string {
	msg := "missing schema for " + e.Ref
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MissingSchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MissingSchemaError) Is(target error) bool {
	return target == ErrMissingSchema
}

// InvalidTypeReferenceError reports a property or array element whose
// schema resolved to the null type.
type InvalidTypeReferenceError struct {
	// Ref is the reference of the property or element schema.
	Ref string
	// Owner is the type that needed it.
	Owner string
}

func (e *InvalidTypeReferenceError) Error() string {
	if e.Owner == "" {
		return fmt.Sprintf("invalid type reference %s: resolves to no type", e.Ref)
	}

	return fmt.Sprintf("invalid type reference %s in %s: resolves to no type", e.Ref, e.Owner)
}

// Is reports whether target matches this error type.
func (e *InvalidTypeReferenceError) Is(target error) bool {
	return target == ErrInvalidTypeReference
}

// CycleError reports re-entrant resolution of Ref.
type CycleError struct {
	// Ref is the reference that was re-entered.
	Ref string
	// Stack is the resolution stack, outermost first.
	Stack []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected while generating %s: %s", e.Ref, strings.Join(e.Stack, " -> "))
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// ConfigError reports malformed configuration, mappings or schema
// combinations that cannot be generated by construction.
type ConfigError struct {
	// Ref is the affected reference, if any.
	Ref string
	// Option names the offending option or keyword, if any.
	Option string
	// Message describes the conflict.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *ConfigError) Error() string {
	msg := "configuration conflict"
	if e.Ref != "" {
		msg += " in " + e.Ref
	}

	if e.Option != "" {
		msg += fmt.Sprintf(" (%s)", e.Option)
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigurationConflict
}

// GenerationError wraps any other failure raised while generating Ref.
type GenerationError struct {
	// Ref is the reference being generated.
	Ref string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *GenerationError) Error() string {
	msg := "cannot generate " + e.Ref
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Tolerable reports whether err may be downgraded to a warning when the
// generator runs with missing types tolerated.
func Tolerable(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, ErrCycleDetected) && !errors.Is(err, ErrConfigurationConflict)
}
