package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/generrors"
)

func TestParseRef_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fragment", "http://x/a.json", "http://x/a.json#"},
		{"empty fragment", "http://x/a.json#", "http://x/a.json#"},
		{"scheme and host case", "HTTP://Example.COM/Schemas/A.json#/definitions/foo", "http://example.com/Schemas/A.json#/definitions/foo"},
		{"dot segments", "http://x/a/./b/../c.json#/properties/n", "http://x/a/c.json#/properties/n"},
		{"trailing slash kept", "http://x/schemas/#", "http://x/schemas/#"},
		{"escaped tokens", "http://x/a.json#/definitions/a~1b~0c", "http://x/a.json#/definitions/a~1b~0c"},
		{"percent encoded fragment", "http://x/a.json#/definitions/a%20b", "http://x/a.json#/definitions/a b"},
		{"file uri", "file:///tmp/s/a.json#/definitions/x", "file:///tmp/s/a.json#/definitions/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRef(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref.String())
		})
	}
}

func TestParseRef_EqualLocations(t *testing.T) {
	a := MustParseRef("http://x/a.json")
	b := MustParseRef("HTTP://X/./a.json#")

	assert.Equal(t, a, b)
	assert.True(t, a.IsRoot())
}

func TestParseRef_AnchorFragmentIsConfigConflict(t *testing.T) {
	_, err := ParseRef("http://x/a.json#foo")

	require.Error(t, err)
	require.ErrorIs(t, err, generrors.ErrConfigurationConflict)

	var cfg *generrors.ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "fragment", cfg.Option)
}

func TestRef_ChildParentTokens(t *testing.T) {
	root := MustParseRef("http://x/a.json")
	child := root.Child("definitions", "a/b", "properties", "n~m")

	assert.Equal(t, "/definitions/a~1b/properties/n~0m", child.Pointer())
	assert.Equal(t, []string{"definitions", "a/b", "properties", "n~m"}, child.Tokens())

	parent, ok := child.Parent()
	require.True(t, ok)
	assert.Equal(t, "http://x/a.json#/definitions/a~1b/properties", parent.String())

	_, ok = root.Parent()
	assert.False(t, ok)
	assert.Nil(t, root.Tokens())
}

func TestRef_DocumentParent(t *testing.T) {
	ref := MustParseRef("http://x/schemas/a/b.json#/definitions/x")

	var chain []string
	for cur, ok := ref.DocumentRef(), true; ok; cur, ok = cur.DocumentParent() {
		chain = append(chain, cur.String())
	}

	assert.Equal(t, []string{
		"http://x/schemas/a/b.json#",
		"http://x/schemas/a/#",
		"http://x/schemas/#",
		"http://x/#",
	}, chain)
}

func TestRef_Resolve(t *testing.T) {
	base := MustParseRef("http://x/schemas/a.json#/properties/b")

	tests := []struct {
		ref      string
		expected string
	}{
		{"#/definitions/c", "http://x/schemas/a.json#/definitions/c"},
		{"b.json", "http://x/schemas/b.json#"},
		{"../common/c.json#/definitions/d", "http://x/common/c.json#/definitions/d"},
		{"http://other/z.json#", "http://other/z.json#"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := base.Resolve(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestRef_DocumentName(t *testing.T) {
	assert.Equal(t, "person", MustParseRef("http://x/schemas/person.schema.json").DocumentName())
	assert.Equal(t, "order", MustParseRef("file:///tmp/order.yaml#/definitions/a").DocumentName())
	assert.Equal(t, "", MustParseRef("http://x/").DocumentName())
}

func TestRef_TextRoundTrip(t *testing.T) {
	ref := MustParseRef("http://x/a.json#/definitions/foo")

	text, err := ref.MarshalText()
	require.NoError(t, err)

	var back Ref
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, ref, back)
}

func TestNewRef(t *testing.T) {
	ref, err := NewRef("http://x/a.json", "definitions", "foo")
	require.NoError(t, err)
	assert.Equal(t, "http://x/a.json#/definitions/foo", ref.String())

	_, err = NewRef("http://x/a.json#/definitions")
	require.ErrorIs(t, err, generrors.ErrConfigurationConflict)
}
