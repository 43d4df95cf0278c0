package generrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_IsSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"missing", &MissingSchemaError{Ref: "http://x/#/a"}, ErrMissingSchema},
		{"invalid", &InvalidTypeReferenceError{Ref: "http://x/#/a"}, ErrInvalidTypeReference},
		{"cycle", &CycleError{Ref: "http://x/#/a"}, ErrCycleDetected},
		{"config", &ConfigError{Message: "bad"}, ErrConfigurationConflict},
		{"generation", &GenerationError{Ref: "r", Cause: ErrUnsupportedShape}, ErrUnsupportedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestErrors_As(t *testing.T) {
	err := fmt.Errorf("generating: %w", &CycleError{
		Ref:   "http://x/#/definitions/a",
		Stack: []string{"http://x/#/definitions/a", "http://x/#/definitions/b"},
	})

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "http://x/#/definitions/a", cycle.Ref)
	assert.Len(t, cycle.Stack, 2)
	assert.Contains(t, err.Error(), "http://x/#/definitions/a -> http://x/#/definitions/b")
}

func TestErrors_Messages(t *testing.T) {
	missing := &MissingSchemaError{Ref: "http://x/#/definitions/adress", Suggestions: []string{"/definitions/address"}}
	assert.Equal(t, "missing schema for http://x/#/definitions/adress (did you mean /definitions/address?)", missing.Error())

	cfg := &ConfigError{Ref: "http://x/#", Option: "extends", Message: "additionalProperties is incompatible with extends"}
	assert.Equal(t, "configuration conflict in http://x/# (extends): additionalProperties is incompatible with extends", cfg.Error())

	gen := &GenerationError{Ref: "http://x/#", Cause: io.ErrShortWrite}
	assert.ErrorIs(t, gen, io.ErrShortWrite)
	assert.Equal(t, "cannot generate http://x/#: short write", gen.Error())
}

func TestTolerable(t *testing.T) {
	assert.False(t, Tolerable(nil))
	assert.True(t, Tolerable(&MissingSchemaError{Ref: "r"}))
	assert.True(t, Tolerable(&InvalidTypeReferenceError{Ref: "r"}))
	assert.True(t, Tolerable(&GenerationError{Ref: "r", Cause: ErrUnsupportedShape}))
	assert.True(t, Tolerable(errors.New("io")))
	assert.False(t, Tolerable(fmt.Errorf("x: %w", &CycleError{Ref: "r"})))
	assert.False(t, Tolerable(&ConfigError{Message: "m"}))
}
