package gen

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sync"

	"jsonschema-bean-generator/internal/common"
	"jsonschema-bean-generator/internal/java"
	"jsonschema-bean-generator/internal/schema"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Artifact is the source of one generated class.
type Artifact struct {
	// Ref is the schema location the class was generated for.
	Ref schema.Ref
	// Class is the generated class.
	Class java.ClassName
	// Path is the slash-separated path of the source file, e.g.
	// "com/example/Person.java".
	Path string
	// Content is the Java source.
	Content []byte
}

// Sink persists artifacts.
type Sink interface {
	Write(a Artifact) error
}

// ArtifactPath returns the source file path of c: package segments become
// directories.
func ArtifactPath(c java.ClassName) string {
	file := c.Erasure().Raw() + ".java"
	if c.Package() == "" {
		return file
	}

	return path.Join(common.PackagePath(c.Package()), file)
}

// FileSink writes artifacts below a directory.
type FileSink struct {
	dir    string
	logger *slog.Logger
}

// NewFileSink creates a FileSink rooted at dir. A nil logger discards.
func NewFileSink(dir string, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &FileSink{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Write writes a through a temporary file in the target directory, so
// that readers never observe partial output.
func (s *FileSink) Write(a Artifact) error {
	target := filepath.Join(s.dir, filepath.FromSlash(a.Path))

	err := os.MkdirAll(filepath.Dir(target), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", a.Path, err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(a.Content)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}

	err = os.Chmod(tmp.Name(), filePerm)
	if err != nil {
		return fmt.Errorf("setting permissions of %s: %w", a.Path, err)
	}

	err = os.Rename(tmp.Name(), target)
	if err != nil {
		return fmt.Errorf("moving %s into place: %w", a.Path, err)
	}

	s.logger.Debug("wrote file", "path", target)

	return nil
}

// MemorySink keeps artifacts in memory. Later writes to the same path
// replace earlier ones.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// Write stores a copy of the content of a.
func (s *MemorySink) Write(a Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[a.Path] = slices.Clone(a.Content)

	return nil
}

// Paths returns the stored paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.files))
}

// File returns the content stored at p.
func (s *MemorySink) File(p string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.files[p]

	return string(content), ok
}
