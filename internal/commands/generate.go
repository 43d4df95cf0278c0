package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"jsonschema-bean-generator/internal/driver"
	"jsonschema-bean-generator/internal/gen"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/mapping"
)

type generateOptions struct {
	root          string
	baseDirectory string
	output        string
	mappings      []string
	types         []string

	defaultPackage     string
	ignoreMissingTypes bool
	simplePlainTypes   bool
	enumStyle          string
	nameStrategy       string
	assumeObject       bool
	formatTypes        bool
	singularizeItems   bool
	existingTypes      []string

	watch bool
}

func registerGenerateCmd(parent *cobra.Command, a *app) {
	defaults := gen.DefaultConfig()
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [schema files...]",
		Short: "Generate Java classes for schema files and types",
		Long: `Generate Java classes for schema files and types.

Every schema file is named by its path below the base directory, appended to
the root URI. The root type of each file is generated, together with every
type given with --type and everything they reference.`,
		Example: `  # Generate the root types of two schemas
  jsonschema-bean-generator generate --root http://example.com/schemas/ \
    --base-directory schemas --output-directory src/main/java \
    --mapping mapping.yaml schemas/person.json schemas/order.json

  # Generate a single definition and keep regenerating on changes
  jsonschema-bean-generator generate --root http://example.com/schemas/ \
    --base-directory schemas --output-directory out \
    --type http://example.com/schemas/common.json#/definitions/money --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", "", "URI of the base directory, ending with /")
	flags.StringVar(&opts.baseDirectory, "base-directory", ".", "Directory holding the schemas below the root URI")
	flags.StringVarP(&opts.output, "output-directory", "o", "", "Directory for the generated sources")
	flags.StringArrayVar(&opts.mappings, "mapping", nil, "Mapping file (repeatable)")
	flags.StringArrayVar(&opts.types, "type", nil, "Type URI to generate (repeatable)")

	flags.StringVar(&opts.defaultPackage, "default-package", defaults.DefaultPackageName,
		"Package of types without a mapped default package")
	flags.BoolVar(&opts.ignoreMissingTypes, "ignore-missing-types", true,
		"Warn instead of failing when a type cannot be generated")
	flags.BoolVar(&opts.simplePlainTypes, "simple-plain-types", false,
		"Map all strings to java.lang.String")
	flags.StringVar(&opts.enumStyle, "enum-style", defaults.EnumStyle.String(),
		"Style of string enumerations: "+strings.Join(mapping.EnumStyles(), " or "))
	flags.StringVar(&opts.nameStrategy, "name-strategy", defaults.NameStrategy,
		"Naming of unmapped types: "+strings.Join(gen.NameStrategies(), " or "))
	flags.BoolVar(&opts.assumeObject, "assume-object", defaults.AssumeObjectWhenUntyped,
		"Treat schemas without type as objects")
	flags.BoolVar(&opts.formatTypes, "format-types", false,
		"Map formats such as date-time and int64 to matching Java types")
	flags.BoolVar(&opts.singularizeItems, "singularize-items", false,
		"Name array items after the singular of the array")
	flags.StringArrayVar(&opts.existingTypes, "existing-type", nil,
		"Class that exists already and is never generated (repeatable)")
	flags.BoolVar(&opts.watch, "watch", false, "Regenerate whenever schemas or mappings change")

	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("output-directory")

	parent.AddCommand(cmd)
}

func (o *generateOptions) config(a *app) (gen.Config, error) {
	config := gen.DefaultConfig()
	config.Logger = a.logger
	config.DefaultPackageName = o.defaultPackage
	config.IgnoreMissingTypes = o.ignoreMissingTypes
	config.SimplePlainTypes = o.simplePlainTypes
	config.NameStrategy = o.nameStrategy
	config.AssumeObjectWhenUntyped = o.assumeObject
	config.FormatTypes = o.formatTypes
	config.SingularizeItems = o.singularizeItems

	style, err := mapping.ParseEnumStyle(o.enumStyle)
	if err != nil {
		return gen.Config{}, err
	}

	config.EnumStyle = style

	for _, name := range o.existingTypes {
		c, err := java.Parse(name)
		if err != nil {
			return gen.Config{}, fmt.Errorf("--existing-type %s: %w", name, err)
		}

		config.ExistingTypes = append(config.ExistingTypes, c)
	}

	return config, config.Validate()
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions, args []string) error {
	config, err := opts.config(a)
	if err != nil {
		return err
	}

	runOpts := driver.Options{
		RootURI:         opts.root,
		BaseDirectory:   opts.baseDirectory,
		OutputDirectory: opts.output,
		Mappings:        opts.mappings,
		Schemas:         args,
		Types:           opts.types,
		Config:          config,
	}

	out := cmd.OutOrStdout()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.watch {
		return driver.Watch(ctx, runOpts, driver.DefaultDebounce, func(res *driver.Result, err error) {
			report(out, res, err)
		})
	}

	res, err := driver.Run(ctx, runOpts)
	if err != nil {
		return err
	}

	report(out, res, nil)

	return nil
}

// report prints the warnings and a summary of a run.
func report(w io.Writer, res *driver.Result, err error) {
	if res != nil && res.Diagnostics != nil {
		for _, d := range res.Diagnostics.All() {
			_, _ = fmt.Fprintf(w, "%s\n", d)
		}
	}

	if err != nil {
		_, _ = fmt.Fprintf(w, "Generation failed: %v\n", err)
		return
	}

	_, _ = fmt.Fprintf(w, "Generated %d type(s), wrote %d file(s)\n", len(res.Generated), len(res.Artifacts))
}
