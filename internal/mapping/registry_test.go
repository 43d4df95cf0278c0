package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/schema"
)

func TestRegistry_MappingLookupNormalizes(t *testing.T) {
	r := NewRegistry()
	r.AddMapping(schema.MustParseRef("HTTP://X/a.json#"), Mapping{ClassName: java.MustParse("com.example.A")})

	m, ok := r.Mapping(schema.MustParseRef("http://x/./a.json"))
	require.True(t, ok)
	assert.Equal(t, "com.example.A", m.GeneratedClassName.String())
	assert.Equal(t, "http://x/a.json#", m.Target.String())

	_, ok = r.Mapping(schema.MustParseRef("http://x/b.json"))
	assert.False(t, ok)
}

func TestRegistry_Mappings(t *testing.T) {
	r := NewRegistry()
	r.AddMapping(schema.MustParseRef("http://x/b.json"), Mapping{ClassName: java.MustParse("B")})
	r.AddMapping(schema.MustParseRef("http://x/a.json"), Mapping{ClassName: java.MustParse("A")})

	all := r.Mappings()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].ClassName.String())
	assert.Equal(t, "B", all[1].ClassName.String())
}

func TestRegistry_DefaultPackageInheritedFromPointerAncestor(t *testing.T) {
	r := NewRegistry()
	r.AddDefaultPackage(schema.MustParseRef("http://x/#/definitions/foo"), "com.example.pkg")

	pkg, ok := r.DefaultPackage(schema.MustParseRef("http://x/#/definitions/foo/properties/bar"))
	require.True(t, ok)
	assert.Equal(t, "com.example.pkg", pkg)

	_, ok = r.DefaultPackage(schema.MustParseRef("http://x/#/definitions/other"))
	assert.False(t, ok)
}

func TestRegistry_DefaultPackageFromDirectory(t *testing.T) {
	r := NewRegistry()
	r.AddDefaultPackage(schema.MustParseRef("http://x/schemas/"), "com.example")
	r.AddDefaultPackage(schema.MustParseRef("http://x/schemas/billing/"), "com.example.billing")
	r.AddDefaultPackage(schema.MustParseRef("http://x/schemas/billing/invoice.json#/definitions/line"), "com.example.lines")

	tests := []struct {
		ref      string
		expected string
	}{
		{"http://x/schemas/person.json#/definitions/address", "com.example"},
		{"http://x/schemas/billing/invoice.json", "com.example.billing"},
		{"http://x/schemas/billing/invoice.json#/definitions/line/properties/amount", "com.example.lines"},
		{"http://x/schemas/billing/deep/tax.json#/definitions/rate", "com.example.billing"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			pkg, ok := r.DefaultPackage(schema.MustParseRef(tt.ref))
			require.True(t, ok)
			assert.Equal(t, tt.expected, pkg)
		})
	}

	_, ok := r.DefaultPackage(schema.MustParseRef("http://other/a.json"))
	assert.False(t, ok)
}

func TestRegistry_DefaultPackageTrailingSlash(t *testing.T) {
	r := NewRegistry()
	r.AddDefaultPackage(schema.MustParseRef("http://x/schemas"), "com.example")

	pkg, ok := r.DefaultPackage(schema.MustParseRef("http://x/schemas/a.json"))
	require.True(t, ok)
	assert.Equal(t, "com.example", pkg)
}
