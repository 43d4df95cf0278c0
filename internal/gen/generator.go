package gen

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"jsonschema-bean-generator/internal/diagnostic"
	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/mapping"
	"jsonschema-bean-generator/internal/schema"
)

// Source provides schema nodes by location. *schema.Store implements it.
type Source interface {
	Resolve(ref schema.Ref) (*schema.Node, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry uses registry instead of an empty one.
func WithRegistry(registry *mapping.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// WithSink sends artifacts to sink instead of an in-memory sink.
func WithSink(sink Sink) Option {
	return func(g *Generator) {
		if sink != nil {
			g.sink = sink
		}
	}
}

// state is the resolution state of one reference. References without an
// entry are unseen.
type state int

const (
	stateInProgress state = iota + 1
	stateResolved
	stateNull
	stateFailed
)

type entry struct {
	state state
	class java.ClassName
	err   error
}

// kindFunc generates the class of one shape.
type kindFunc func(g *Generator, t *task) (*java.ClassName, error)

// task is the input of a kind generator.
type task struct {
	ref     schema.Ref
	node    *schema.Node
	mapping mapping.Mapping
	w       *java.Writer
}

// Generator generates Java classes for schema locations. It is not safe for
// concurrent use.
type Generator struct {
	config   Config
	source   Source
	registry *mapping.Registry
	sink     Sink
	logger   *slog.Logger
	kinds    map[Shape]kindFunc

	entries map[schema.Ref]entry
	stack   []schema.Ref
	// reported is set once the failing stack has been logged.
	reported bool

	// claimed holds the qualified names that are taken.
	claimed map[string]bool
	counter int
	// enums holds the qualified names of generated enumerations.
	enums map[string]bool

	artifacts []Artifact
	diags     diagnostic.Diagnostics
}

// NewGenerator creates a Generator reading schemas from source.
func NewGenerator(config Config, source Source, opts ...Option) (*Generator, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		config:   config,
		source:   source,
		registry: mapping.NewRegistry(),
		sink:     NewMemorySink(),
		logger:   config.Logger,
		entries:  make(map[schema.Ref]entry),
		claimed:  make(map[string]bool),
		enums:    make(map[string]bool),
	}

	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}

	for _, opt := range opts {
		opt(g)
	}

	g.kinds = map[Shape]kindFunc{
		ShapeObject:  (*Generator).generateObject,
		ShapeArray:   (*Generator).generateArray,
		ShapeString:  (*Generator).generateString,
		ShapeInteger: (*Generator).generateInteger,
		ShapeNumber:  (*Generator).generateNumber,
		ShapeBoolean: (*Generator).generateBoolean,
	}

	for _, m := range g.registry.Mappings() {
		g.claimed[m.GeneratedClassName.Erasure().QualifiedName()] = true
	}

	return g, nil
}

// AddMapping registers an explicit mapping for ref.
func (g *Generator) AddMapping(ref schema.Ref, m mapping.Mapping) {
	g.registry.AddMapping(ref, m)

	registered, _ := g.registry.Mapping(ref)
	g.claimed[registered.GeneratedClassName.Erasure().QualifiedName()] = true
}

// AddDefaultPackage makes pkg the package of unmapped types at or below
// location.
func (g *Generator) AddDefaultPackage(location schema.Ref, pkg string) {
	g.registry.AddDefaultPackage(location, pkg)
}

// Registry returns the mapping registry.
func (g *Generator) Registry() *mapping.Registry {
	return g.registry
}

// Artifacts returns the artifacts written so far, in write order.
func (g *Generator) Artifacts() []Artifact {
	return slices.Clone(g.artifacts)
}

// Diagnostics returns the warnings collected so far.
func (g *Generator) Diagnostics() *diagnostic.Diagnostics {
	return &g.diags
}

// Generate returns the class of the schema at ref, generating it and the
// classes it depends on first. A nil class means the schema is the null
// type. Repeated calls return the cached result.
func (g *Generator) Generate(ref schema.Ref) (*java.ClassName, error) {
	var aliases []schema.Ref

	for {
		if e, ok := g.entries[ref]; ok {
			return g.cached(ref, e)
		}

		if m, ok := g.registry.Mapping(ref); ok {
			return g.generateMapped(ref, m, nil)
		}

		node, err := g.source.Resolve(ref)
		if err != nil {
			return nil, err
		}

		if !node.IsAlias() {
			m, err := g.synthesizeMapping(ref)
			if err != nil {
				return nil, err
			}

			g.AddMapping(ref, m)

			return g.generateMapped(ref, m, node)
		}

		if slices.Contains(aliases, ref) {
			return nil, &generrors.CycleError{Ref: ref.String(), Stack: refStrings(append(aliases, ref))}
		}

		aliases = append(aliases, ref)

		target, err := node.AliasTarget()
		if err != nil {
			return nil, fmt.Errorf("resolving $ref of %s: %w", ref, err)
		}

		if siblings := node.Siblings(); len(siblings) > 0 {
			g.logger.Warn("ignoring keywords next to $ref", "ref", ref.String(), "keywords", siblings)
			g.diags.AddWarning(diagnostic.CodeRefSiblings,
				"keywords next to $ref are ignored: "+strings.Join(siblings, ", "), ref.String(), "")
		}

		g.logger.Debug("following alias", "ref", ref.String(), "target", target.String())
		ref = target
	}
}

func (g *Generator) cached(ref schema.Ref, e entry) (*java.ClassName, error) {
	switch e.state {
	case stateResolved:
		c := e.class
		return &c, nil
	case stateNull:
		return nil, nil
	case stateFailed:
		return nil, e.err
	default:
		return nil, &generrors.CycleError{Ref: ref.String(), Stack: refStrings(append(slices.Clone(g.stack), ref))}
	}
}

// generateMapped generates ref according to m and records the outcome.
// node may be nil when it has not been looked up yet.
func (g *Generator) generateMapped(ref schema.Ref, m mapping.Mapping, node *schema.Node) (*java.ClassName, error) {
	g.entries[ref] = entry{state: stateInProgress}
	g.stack = append(g.stack, ref)

	defer func() {
		g.stack = g.stack[:len(g.stack)-1]
		if len(g.stack) == 0 {
			g.reported = false
		}
	}()

	c, err := g.generateInternal(ref, m, node)
	if err != nil {
		if g.config.IgnoreMissingTypes && generrors.Tolerable(err) {
			g.logger.Warn("cannot generate type, using placeholder",
				"ref", ref.String(), "class", m.ClassName.String(), "error", err)
			g.diags.AddWarning(diagnostic.CodeToleratedFailure, err.Error(), ref.String(), m.ClassName.String())
			g.reported = false

			placeholder := m.ClassName
			g.entries[ref] = entry{state: stateResolved, class: placeholder}

			return &placeholder, nil
		}

		if !g.reported {
			g.logger.Error("cannot generate type", "ref", ref.String(), "stack", refStrings(g.stack), "error", err)
			g.reported = true
		}

		g.entries[ref] = entry{state: stateFailed, err: err}

		return nil, err
	}

	if c == nil {
		g.entries[ref] = entry{state: stateNull}
		return nil, nil
	}

	g.entries[ref] = entry{state: stateResolved, class: *c}

	return c, nil
}

func (g *Generator) generateInternal(ref schema.Ref, m mapping.Mapping, node *schema.Node) (*java.ClassName, error) {
	wanted := m.GeneratedClassName
	if java.IsPrimitive(wanted) || java.IsKnownType(wanted) || g.config.isExisting(wanted) {
		c := m.ClassName
		return &c, nil
	}

	if node == nil {
		var err error

		node, err = g.source.Resolve(ref)
		if err != nil {
			return nil, err
		}
	}

	shape, err := g.shapeOf(ref, node)
	if err != nil {
		return nil, err
	}

	if shape == ShapeNull {
		return nil, nil
	}

	kind, ok := g.kinds[shape]
	if !ok {
		return nil, &generrors.GenerationError{
			Ref:     ref.String(),
			Message: "no generator for " + shape.String(),
			Cause:   generrors.ErrUnsupportedShape,
		}
	}

	var buf bytes.Buffer

	w := java.NewWriter(&buf,
		java.WithLogger(g.logger.With("ref", ref.String())),
		java.WithIndent(g.config.Indent),
		java.WithGeneratedBy(g.config.GeneratedBy),
	)

	c, err := kind(g, &task{ref: ref, node: node, mapping: m, w: w})
	if err != nil {
		return nil, err
	}

	err = w.Err()
	if err != nil {
		return nil, &generrors.GenerationError{Ref: ref.String(), Message: "writing source", Cause: err}
	}

	for _, late := range w.LateImports() {
		g.diags.AddWarning(diagnostic.CodeLateImport,
			"import of "+late.QualifiedName()+" requested after the import block", ref.String(), wanted.String())
	}

	if buf.Len() > 0 {
		err = g.emit(ref, wanted, buf.Bytes())
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// shapeOf determines the shape keyword of node.
func (g *Generator) shapeOf(ref schema.Ref, node *schema.Node) (Shape, error) {
	types := node.Types()
	if len(types) > 0 {
		return typeShape(ref, types)
	}

	var declared []string

	for _, s := range aggregations {
		if node.Has(s.String()) {
			declared = append(declared, s.String())
		}
	}

	switch len(declared) {
	case 0:
	case 1:
		s, _ := aggregationShape(declared[0])
		return s, nil
	default:
		return 0, &generrors.ConfigError{
			Ref:     ref.String(),
			Option:  strings.Join(declared, "/"),
			Message: "schema declares more than one of allOf, anyOf and oneOf",
		}
	}

	if !g.config.AssumeObjectWhenUntyped {
		return 0, &generrors.GenerationError{
			Ref:     ref.String(),
			Message: "schema has no type",
			Cause:   generrors.ErrUnsupportedShape,
		}
	}

	g.logger.Warn("schema has no type, assuming object", "ref", ref.String())
	g.diags.AddWarning(diagnostic.CodeMissingType, "schema has no type, assuming object", ref.String(), "")

	return ShapeObject, nil
}

// typeShape picks the shape of a "type" keyword. "null" only matters when
// it is the sole type.
func typeShape(ref schema.Ref, types []string) (Shape, error) {
	var named []string

	for _, t := range types {
		if t != "null" {
			named = append(named, t)
		}
	}

	switch len(named) {
	case 0:
		return ShapeNull, nil
	case 1:
		s, ok := ParseShape(named[0])
		if !ok {
			return 0, &generrors.GenerationError{
				Ref:     ref.String(),
				Message: fmt.Sprintf("unknown type %q", named[0]),
				Cause:   generrors.ErrUnsupportedShape,
			}
		}

		return s, nil
	default:
		return 0, &generrors.GenerationError{
			Ref:     ref.String(),
			Message: "multiple types " + strings.Join(named, ", "),
			Cause:   generrors.ErrUnsupportedShape,
		}
	}
}

func aggregationShape(keyword string) (Shape, bool) {
	for _, s := range aggregations {
		if s.String() == keyword {
			return s, true
		}
	}

	return 0, false
}

// emit hands the source of class to the sink.
func (g *Generator) emit(ref schema.Ref, class java.ClassName, content []byte) error {
	a := Artifact{
		Ref:     ref,
		Class:   class,
		Path:    ArtifactPath(class),
		Content: bytes.Clone(content),
	}

	err := g.sink.Write(a)
	if err != nil {
		return &generrors.GenerationError{Ref: ref.String(), Message: "writing " + a.Path, Cause: err}
	}

	g.logger.Info("generated class", "class", class.String(), "path", a.Path)
	g.artifacts = append(g.artifacts, a)

	return nil
}

func refStrings(refs []schema.Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.String()
	}

	return out
}
