package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/gen"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/mapping"
	"jsonschema-bean-generator/internal/schema"
)

const rootURI = "http://example.com/schemas/"

const personJSON = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "address": {"$ref": "common/address.json#"},
    "status": {"$ref": "#/definitions/status"}
  },
  "definitions": {
    "status": {"type": "string", "enum": ["active", "retired"]}
  }
}`

const addressJSON = `{
  "type": "object",
  "properties": {"street": {"type": "string"}}
}`

const mappingYAML = `
baseUri: http://example.com/schemas/
defaultPackageName: com.example.model
mappings:
  - target: person.json#/definitions/status
    className: com.example.model.PersonStatus
    enumStyle: class
`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// setup writes the schemas and the mapping file and returns options
// generating person.json.
func setup(t *testing.T) Options {
	t.Helper()

	dir := t.TempDir()
	base := filepath.Join(dir, "schemas")

	person := writeFile(t, filepath.Join(base, "person.json"), personJSON)
	writeFile(t, filepath.Join(base, "common", "address.json"), addressJSON)
	mappingFile := writeFile(t, filepath.Join(dir, "mapping.yaml"), mappingYAML)

	return Options{
		RootURI:         rootURI,
		BaseDirectory:   base,
		OutputDirectory: filepath.Join(dir, "out"),
		Mappings:        []string{mappingFile},
		Schemas:         []string{person},
		Config:          gen.DefaultConfig(),
	}
}

func TestDocumentURI(t *testing.T) {
	base := t.TempDir()

	uri, err := DocumentURI(rootURI, base, filepath.Join(base, "a", "b.json"))
	require.NoError(t, err)
	assert.Equal(t, rootURI+"a/b.json", uri)

	_, err = DocumentURI(rootURI, base, filepath.Join(base, "..", "elsewhere.json"))
	assert.ErrorIs(t, err, generrors.ErrConfigurationConflict)
}

func TestInitialTypes(t *testing.T) {
	base := t.TempDir()

	refs, err := InitialTypes(rootURI, base, []string{
		filepath.Join(base, "sub", "b.yaml"),
		filepath.Join(base, "a.json"),
	})
	require.NoError(t, err)

	require.Len(t, refs, 2)
	assert.Equal(t, rootURI+"a.json#", refs[0].String())
	assert.Equal(t, rootURI+"sub/b.yaml#", refs[1].String())
	assert.True(t, refs[0].IsRoot())
}

func TestAddMappings(t *testing.T) {
	store := schema.NewStore()
	require.NoError(t, store.Add(rootURI+"person.json", []byte(personJSON)))
	require.NoError(t, store.Add(rootURI+"common/address.json", []byte(addressJSON)))

	g, err := gen.NewGenerator(gen.DefaultConfig(), store)
	require.NoError(t, err)

	mf, err := mapping.Parse([]byte(mappingYAML))
	require.NoError(t, err)
	require.NoError(t, AddMappings(g, mf, nil))

	status, err := g.Generate(schema.MustParseRef(rootURI + "person.json#/definitions/status"))
	require.NoError(t, err)
	assert.Equal(t, "com.example.model.PersonStatus", status.String())

	address, err := g.Generate(schema.MustParseRef(rootURI + "common/address.json#"))
	require.NoError(t, err)
	assert.Equal(t, "com.example.model.Address", address.String())
}

func TestAddMappings_MissingBaseURI(t *testing.T) {
	g, err := gen.NewGenerator(gen.DefaultConfig(), schema.NewStore())
	require.NoError(t, err)

	mf := &mapping.MappingFile{DefaultPackageName: "com.example"}
	require.NoError(t, AddMappings(g, mf, nil))

	require.Len(t, g.Diagnostics().Warnings, 1)
	assert.Equal(t, diagnostic.CodeMissingBaseURI, g.Diagnostics().Warnings[0].Code)
}

func TestAddMappings_MissingClassName(t *testing.T) {
	g, err := gen.NewGenerator(gen.DefaultConfig(), schema.NewStore())
	require.NoError(t, err)

	mf := &mapping.MappingFile{Mappings: []mapping.Entry{{Target: rootURI + "person.json"}}}

	err = AddMappings(g, mf, nil)
	assert.ErrorIs(t, err, generrors.ErrConfigurationConflict)
}

func TestRun(t *testing.T) {
	opts := setup(t)

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, res.Generated, 1)
	assert.Equal(t, "com.example.model.Person", res.Generated[0].Class.String())

	var paths []string
	for _, a := range res.Artifacts {
		paths = append(paths, a.Path)
	}

	assert.ElementsMatch(t, []string{
		"com/example/model/Person.java",
		"com/example/model/Address.java",
		"com/example/model/PersonStatus.java",
	}, paths, spew.Sdump(res.Artifacts))

	for _, p := range paths {
		_, err := os.Stat(filepath.Join(opts.OutputDirectory, filepath.FromSlash(p)))
		assert.NoError(t, err, p)
	}

	person, err := os.ReadFile(filepath.Join(opts.OutputDirectory, "com", "example", "model", "Person.java"))
	require.NoError(t, err)
	assert.Contains(t, string(person), "private PersonStatus status;")
	assert.Contains(t, string(person), "private Address address;")
}

func TestRun_ExplicitTypes(t *testing.T) {
	opts := setup(t)
	opts.Schemas = nil
	opts.Types = []string{rootURI + "common/address.json#", rootURI + "common/address.json"}

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, res.Generated, 1)
	assert.Equal(t, "com.example.model.Address", res.Generated[0].Class.String())
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{RootURI: "http://example.com/schemas"})
	require.Error(t, err)
	assert.ErrorIs(t, err, generrors.ErrConfigurationConflict)
	assert.Contains(t, err.Error(), "must end with /")
	assert.Contains(t, err.Error(), "no schema files")
	assert.Contains(t, err.Error(), "output directory")
}

func TestRun_InvalidMappingFile(t *testing.T) {
	opts := setup(t)
	writeFile(t, opts.Mappings[0], "mappings:\n  - target: person.json\n")

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mapping file")
}

func TestRun_GenerationFailure(t *testing.T) {
	opts := setup(t)
	writeFile(t, opts.Schemas[0], `{"type": "object", "properties": {"gone": {"$ref": "missing.json#"}}}`)

	_, err := Run(context.Background(), opts)
	assert.ErrorIs(t, err, generrors.ErrMissingSchema)

	opts.Config.IgnoreMissingTypes = true

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, res.Artifacts)
	assert.NotEmpty(t, res.Diagnostics.Warnings)
}
