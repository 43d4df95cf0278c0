package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/gen"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/mapping"
	"jsonschema-bean-generator/internal/schema"
)

// Options configures a run.
type Options struct {
	// RootURI is the URI of the base directory, e.g. "http://x/schemas/".
	RootURI string
	// BaseDirectory holds the schema documents below RootURI.
	BaseDirectory string
	// OutputDirectory receives the generated sources unless Sink is set.
	OutputDirectory string
	// Mappings are paths of mapping files.
	Mappings []string
	// Schemas are paths of schema files whose root types are generated.
	Schemas []string
	// Types are additional references to generate.
	Types []string
	// Config configures the generator.
	Config gen.Config
	// Sink overrides the file sink at OutputDirectory.
	Sink gen.Sink
}

// Validate checks that the options describe a run.
func (o Options) Validate() error {
	var errs []error

	if o.RootURI == "" {
		errs = append(errs, &generrors.ConfigError{Option: "root", Message: "root URI is required"})
	} else if !strings.HasSuffix(o.RootURI, "/") {
		errs = append(errs, &generrors.ConfigError{Option: "root", Message: "root URI must end with /"})
	}

	if len(o.Schemas) == 0 && len(o.Types) == 0 {
		errs = append(errs, &generrors.ConfigError{Option: "schemas", Message: "no schema files or types given"})
	}

	if o.Sink == nil && o.OutputDirectory == "" {
		errs = append(errs, &generrors.ConfigError{Option: "output-directory", Message: "output directory is required"})
	}

	return errors.Join(errs...)
}

// Generated is a requested type and its class.
type Generated struct {
	Ref   schema.Ref
	Class java.ClassName
}

// Result summarizes a run.
type Result struct {
	// Generated lists the requested types that resolved to a class.
	Generated []Generated
	// Artifacts lists the written sources.
	Artifacts []gen.Artifact
	// Diagnostics holds mapping warnings and generator warnings.
	Diagnostics *diagnostic.Diagnostics
}

// Run loads the schemas and mappings and generates the requested types in
// sorted order. The result is returned together with an error when
// generation fails part way.
func Run(ctx context.Context, opts Options) (*Result, error) {
	err := opts.Validate()
	if err != nil {
		return nil, err
	}

	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	baseDir, err := filepath.Abs(opts.BaseDirectory)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory: %w", err)
	}

	store := schema.NewStore(schema.WithLogger(logger), schema.WithRoot(opts.RootURI, baseDir))

	files, err := documentFiles(opts.RootURI, baseDir, opts.Schemas)
	if err != nil {
		return nil, err
	}

	err = store.Preload(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("loading schemas: %w", err)
	}

	sink := opts.Sink
	if sink == nil {
		sink = gen.NewFileSink(opts.OutputDirectory, logger)
	}

	g, err := gen.NewGenerator(opts.Config, store, gen.WithSink(sink))
	if err != nil {
		return nil, err
	}

	for _, path := range opts.Mappings {
		err = loadMappings(g, path, logger)
		if err != nil {
			return nil, err
		}
	}

	types, err := requestedTypes(opts.RootURI, baseDir, opts.Schemas, opts.Types)
	if err != nil {
		return nil, err
	}

	res := &Result{Diagnostics: g.Diagnostics()}

	for _, ref := range types {
		err = ctx.Err()
		if err != nil {
			return res, err
		}

		c, err := g.Generate(ref)
		if err != nil {
			res.Artifacts = g.Artifacts()
			return res, fmt.Errorf("generating %s: %w", ref, err)
		}

		if c != nil {
			logger.Info("generated type", "ref", ref.String(), "class", c.String())
			res.Generated = append(res.Generated, Generated{Ref: ref, Class: *c})
		}
	}

	res.Artifacts = g.Artifacts()

	return res, nil
}

// loadMappings validates the mapping file at path and registers it.
func loadMappings(g *gen.Generator, path string, logger *slog.Logger) error {
	mf, err := mapping.LoadFile(path)
	if err != nil {
		return err
	}

	diags := mapping.Validate(mf)
	if diags.HasErrors() {
		return fmt.Errorf("invalid mapping file %s: %w", path, diags.Error())
	}

	for _, w := range diags.Warnings {
		w.Location = path + ": " + w.Location
		g.Diagnostics().Add(w)
	}

	logger.Debug("loaded mappings", "path", path, "count", len(mf.Mappings))

	return AddMappings(g, mf, logger)
}

// AddMappings registers the entries of mf with g. Targets are resolved
// against the base URI of the file, whose default package is registered
// for everything below it.
func AddMappings(g *gen.Generator, mf *mapping.MappingFile, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	base, hasBase, err := mf.BaseRef()
	if err != nil {
		return &generrors.ConfigError{Option: "baseUri", Message: "invalid base URI", Cause: err}
	}

	for i, e := range mf.Mappings {
		target, err := mf.TargetRef(e)
		if err != nil {
			return fmt.Errorf("mappings[%d]: %w", i, err)
		}

		m, err := e.Mapping(target)
		if err != nil {
			return fmt.Errorf("mappings[%d]: %w", i, err)
		}

		g.AddMapping(target, m)
	}

	if mf.DefaultPackageName == "" {
		return nil
	}

	if !hasBase {
		logger.Warn("missing baseUri for default package", "package", mf.DefaultPackageName)
		g.Diagnostics().AddWarning(diagnostic.CodeMissingBaseURI,
			"defaultPackageName "+mf.DefaultPackageName+" is ignored without baseUri", "", "defaultPackageName")

		return nil
	}

	g.AddDefaultPackage(base, mf.DefaultPackageName)

	return nil
}

// InitialTypes returns the root type of every schema file, sorted.
func InitialTypes(rootURI, baseDir string, files []string) ([]schema.Ref, error) {
	refs := make([]schema.Ref, 0, len(files))

	for _, file := range files {
		uri, err := DocumentURI(rootURI, baseDir, file)
		if err != nil {
			return nil, err
		}

		ref, err := schema.ParseRef(uri + "#")
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return sortRefs(refs), nil
}

// DocumentURI names file by its path below baseDir, appended to rootURI.
func DocumentURI(rootURI, baseDir, file string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", err
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &generrors.ConfigError{
			Option:  "base-directory",
			Message: fmt.Sprintf("schema %s is outside of %s", file, baseDir),
		}
	}

	return rootURI + filepath.ToSlash(rel), nil
}

func documentFiles(rootURI, baseDir string, files []string) (map[string]string, error) {
	out := make(map[string]string, len(files))

	for _, file := range files {
		uri, err := DocumentURI(rootURI, baseDir, file)
		if err != nil {
			return nil, err
		}

		out[uri] = file
	}

	return out, nil
}

// requestedTypes merges the root types of files with the explicit types.
func requestedTypes(rootURI, baseDir string, files, types []string) ([]schema.Ref, error) {
	refs, err := InitialTypes(rootURI, baseDir, files)
	if err != nil {
		return nil, err
	}

	for _, t := range types {
		ref, err := schema.ParseRef(t)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t, err)
		}

		refs = append(refs, ref)
	}

	return slices.CompactFunc(sortRefs(refs), func(a, b schema.Ref) bool { return a == b }), nil
}

func sortRefs(refs []schema.Ref) []schema.Ref {
	slices.SortFunc(refs, func(a, b schema.Ref) int {
		return strings.Compare(a.String(), b.String())
	})

	return refs
}
