package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/schema"
)

func TestMappingFile_TargetRef(t *testing.T) {
	mf := &MappingFile{BaseURI: "http://example.com/schemas/"}

	ref, err := mf.TargetRef(Entry{Target: "person.json#/definitions/address"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/schemas/person.json#/definitions/address", ref.String())

	ref, err = (&MappingFile{}).TargetRef(Entry{Target: "http://x/a.json"})
	require.NoError(t, err)
	assert.Equal(t, "http://x/a.json#", ref.String())

	_, err = mf.TargetRef(Entry{Target: "person.json#anchor"})
	require.ErrorIs(t, err, generrors.ErrConfigurationConflict)
}

func TestEntry_Mapping(t *testing.T) {
	target := schema.MustParseRef("http://x/a.json#/definitions/person")

	m, err := Entry{
		ClassName:                  "com.example.Person",
		GeneratedClassName:         "com.example.AbstractPerson",
		Extends:                    "com.example.Base",
		Implements:                 StringOrArray{"java.io.Serializable"},
		Modifiers:                  StringOrArray{"abstract"},
		IgnoreAdditionalProperties: true,
		EnumStyle:                  "CLASS",
	}.Mapping(target)
	require.NoError(t, err)

	assert.Equal(t, target, m.Target)
	assert.Equal(t, "com.example.Person", m.ClassName.String())
	assert.Equal(t, "com.example.AbstractPerson", m.GeneratedClassName.String())
	require.NotNil(t, m.Extends)
	assert.Equal(t, "com.example.Base", m.Extends.String())
	assert.Equal(t, []java.ClassName{java.MustParse("java.io.Serializable")}, m.Implements)
	assert.Equal(t, []java.Modifier{java.ModifierAbstract}, m.Modifiers)
	assert.True(t, m.IgnoreAdditionalProperties)
	assert.Equal(t, java.KindClass, m.EnumStyle)
}

func TestEntry_MappingDefaultsGeneratedClassName(t *testing.T) {
	m, err := Entry{ClassName: "java.math.BigDecimal"}.Mapping(schema.MustParseRef("http://x/a.json"))
	require.NoError(t, err)

	assert.True(t, m.ClassName.Equal(m.GeneratedClassName))
	assert.Nil(t, m.Extends)
	assert.Equal(t, java.Kind(0), m.EnumStyle)
}

func TestEntry_MappingConflicts(t *testing.T) {
	target := schema.MustParseRef("http://x/a.json")

	tests := []struct {
		name   string
		entry  Entry
		option string
	}{
		{"missing class name", Entry{}, "className"},
		{"bad class name", Entry{ClassName: "com.example.Foo<"}, "className"},
		{"bad extends", Entry{ClassName: "a.B", Extends: "a.>"}, "extends"},
		{"unknown modifier", Entry{ClassName: "a.B", Modifiers: StringOrArray{"sealed"}}, "modifiers"},
		{"unknown enum style", Entry{ClassName: "a.B", EnumStyle: "interface"}, "enumStyle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.entry.Mapping(target)
			require.ErrorIs(t, err, generrors.ErrConfigurationConflict)

			var cfg *generrors.ConfigError
			require.ErrorAs(t, err, &cfg)
			assert.Equal(t, tt.option, cfg.Option)
			assert.Equal(t, target.String(), cfg.Ref)
		})
	}
}

func TestParseEnumStyle(t *testing.T) {
	kind, err := ParseEnumStyle("enum")
	require.NoError(t, err)
	assert.Equal(t, java.KindEnum, kind)

	kind, err = ParseEnumStyle("Class")
	require.NoError(t, err)
	assert.Equal(t, java.KindClass, kind)

	_, err = ParseEnumStyle("@interface")
	require.Error(t, err)
}
