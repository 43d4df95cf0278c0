package schema

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"jsonschema-bean-generator/internal/generrors"
	"jsonschema-bean-generator/internal/match"
)

// maxSuggestions bounds the near misses attached to a missing schema.
const maxSuggestions = 3

type document struct {
	root   *jsonschema.Schema
	layout *layout
}

// root maps a URI prefix onto a local directory.
type root struct {
	prefix string
	dir    string
}

// Store holds decoded schema documents keyed by document URI. Documents
// that were not added explicitly are read on first use: file: URIs from
// their path, URIs under a registered root from the root directory.
//
// A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	docs   map[string]*document
	roots  []root
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRoot serves documents whose URI starts with prefix from dir.
func WithRoot(prefix, dir string) Option {
	return func(s *Store) {
		s.roots = append(s.roots, root{prefix: prefix, dir: dir})
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		docs:   make(map[string]*document),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add decodes data and registers it as the document at uri, replacing any
// previous version. YAML is recognized by a .yaml or .yml extension or, for
// other names, by content that does not start like JSON.
func (s *Store) Add(uri string, data []byte) error {
	ref, err := ParseRef(uri)
	if err != nil {
		return err
	}

	doc, err := decode(ref.Document(), data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", ref.Document(), err)
	}

	s.mu.Lock()
	s.docs[ref.Document()] = doc
	s.mu.Unlock()

	return nil
}

// LoadFile reads path and registers it as the document at uri.
func (s *Store) LoadFile(uri, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema %s: %w", path, err)
	}

	s.logger.Debug("loading schema", "path", path, "ref", uri)

	return s.Add(uri, data)
}

// Preload reads and decodes files, a map from document URI to local path,
// concurrently. It returns the first error.
func (s *Store) Preload(ctx context.Context, files map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, uri := range slices.Sorted(maps.Keys(files)) {
		path := files[uri]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return s.LoadFile(uri, path)
		})
	}

	return g.Wait()
}

// Documents returns the URIs of the loaded documents, sorted.
func (s *Store) Documents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.docs))
}

// Resolve returns the node at ref. A missing document or pointer yields a
// *generrors.MissingSchemaError with the closest existing locations.
func (s *Store) Resolve(ref Ref) (*Node, error) {
	doc, err := s.document(ref.Document())
	if err != nil {
		return nil, &generrors.MissingSchemaError{
			Ref:         ref.String(),
			Suggestions: s.suggestDocuments(ref.Document()),
			Cause:       err,
		}
	}

	tokens := ref.Tokens()

	sch, err := walk(doc.root, tokens)
	if err != nil {
		return nil, &generrors.MissingSchemaError{
			Ref:         ref.String(),
			Suggestions: suggestPointers(ref.DocumentRef(), tokens, err),
		}
	}

	return &Node{ref: ref, schema: sch, layout: doc.layout}, nil
}

func (s *Store) document(uri string) (*document, error) {
	s.mu.RLock()
	doc, ok := s.docs[uri]
	s.mu.RUnlock()

	if ok {
		return doc, nil
	}

	path, err := s.locate(uri)
	if err != nil {
		return nil, err
	}

	err = s.LoadFile(uri, path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.docs[uri], nil
}

// locate maps a document URI onto a local file.
func (s *Store) locate(uri string) (string, error) {
	for _, r := range s.roots {
		if rest, ok := strings.CutPrefix(uri, r.prefix); ok {
			unescaped, err := url.PathUnescape(rest)
			if err != nil {
				return "", err
			}

			return filepath.Join(r.dir, filepath.FromSlash(unescaped)), nil
		}
	}

	u, err := url.Parse(uri)
	if err == nil && u.Scheme == "file" {
		return filepath.FromSlash(u.Path), nil
	}

	return "", fmt.Errorf("no source for document %s", uri)
}

func (s *Store) suggestDocuments(uri string) []string {
	return match.Suggest(uri, s.Documents(), maxSuggestions)
}

func suggestPointers(doc Ref, tokens []string, err error) []string {
	we, ok := err.(*walkError)
	if !ok {
		return nil
	}

	parent := doc.Child(tokens[:we.depth]...)

	var out []string
	for _, name := range match.Suggest(we.token, we.candidates, maxSuggestions) {
		out = append(out, parent.Child(name).String())
	}

	return out
}

// decode parses a JSON or YAML schema document and scans its layout.
func decode(name string, data []byte) (*document, error) {
	if isYAML(name, data) {
		return decodeYAML(data)
	}

	var sch jsonschema.Schema

	err := json.Unmarshal(data, &sch)
	if err != nil {
		return nil, err
	}

	l, err := scanJSON(data)
	if err != nil {
		return nil, err
	}

	return &document{root: &sch, layout: l}, nil
}

func decodeYAML(data []byte) (*document, error) {
	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, err
	}

	var value any

	err = node.Decode(&value)
	if err != nil {
		return nil, err
	}

	// The schema model only decodes JSON, so go through it.
	raw, err := json.Marshal(jsonCompatible(value))
	if err != nil {
		return nil, err
	}

	var sch jsonschema.Schema

	err = json.Unmarshal(raw, &sch)
	if err != nil {
		return nil, err
	}

	return &document{root: &sch, layout: scanYAML(&node)}, nil
}

func isYAML(name string, data []byte) bool {
	u, err := url.Parse(name)
	if err == nil {
		switch strings.ToLower(filepath.Ext(u.Path)) {
		case ".yaml", ".yml":
			return true
		case ".json":
			return false
		}
	}

	trimmed := bytes.TrimSpace(data)

	return len(trimmed) > 0 && trimmed[0] != '{' && trimmed[0] != '['
}

// jsonCompatible converts map[any]any values produced by YAML into
// map[string]any.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = jsonCompatible(item)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = jsonCompatible(item)
		}

		return out
	case []any:
		for i, item := range t {
			t[i] = jsonCompatible(item)
		}

		return t
	default:
		return v
	}
}
