package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"name":       "name",
		"first-name": "firstname",
		"first_name": "first_name",
		"2fa":        "_2fa",
		"class":      "class_",
		"$ref":       "$ref",
		"":           "property",
		"---":        "property",
		"_":          "__",
		"größe":      "größe",
	}

	for input, want := range tests {
		assert.Equal(t, want, Identifier(input), "input %q", input)
	}
}

func TestConstantName(t *testing.T) {
	tests := map[string]string{
		"A":           "A",
		"active":      "ACTIVE",
		"in-progress": "IN_PROGRESS",
		"1st":         "_1ST",
		"a b":         "A_B",
		"":            "EMPTY",
		"-":           "__",
	}

	for input, want := range tests {
		assert.Equal(t, want, ConstantName(input), "input %q", input)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "FirstName", Capitalize("firstName"))
	assert.Equal(t, "X", Capitalize("x"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Élan", Capitalize("élan"))
}

func TestAccessorName(t *testing.T) {
	assert.Equal(t, "getName", AccessorName("get", "name"))
	assert.Equal(t, "setName", AccessorName("set", "name"))
	assert.Equal(t, "get2fa", AccessorName("get", "_2fa"))
	assert.Equal(t, "getClass_", AccessorName("get", "class_"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"say \"hi\"\n"`, Quote("say \"hi\"\n"))
	assert.Equal(t, `"back\\slash"`, Quote(`back\slash`))
	assert.Equal(t, `"caf\u00e9"`, Quote("café"))
	assert.Equal(t, `"\ud83d\ude00"`, Quote("😀"))
}
