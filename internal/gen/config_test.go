package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/java"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, "anonymous", config.DefaultPackageName)
	assert.Equal(t, java.KindEnum, config.EnumStyle)
	assert.False(t, config.IgnoreMissingTypes)
	assert.True(t, config.AssumeObjectWhenUntyped)
}

func TestConfig_IsExisting(t *testing.T) {
	config := DefaultConfig()
	config.ExistingTypes = []java.ClassName{java.MustParse("com.acme.Box")}

	assert.True(t, config.isExisting(java.MustParse("com.acme.Box")))
	assert.True(t, config.isExisting(java.MustParse("com.acme.Box<java.lang.String>")))
	assert.False(t, config.isExisting(java.MustParse("com.acme.Crate")))
}

func TestParseShape(t *testing.T) {
	s, ok := ParseShape("integer")
	assert.True(t, ok)
	assert.Equal(t, ShapeInteger, s)
	assert.Equal(t, "integer", s.String())

	_, ok = ParseShape("allOf")
	assert.False(t, ok)

	assert.Equal(t, "oneOf", ShapeOneOf.String())
	assert.Equal(t, "Shape(0)", Shape(0).String())
}
