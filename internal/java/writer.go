package java

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// DefaultGeneratedBy is the value of the @Generated annotation written on
// top-level types.
const DefaultGeneratedBy = "jsonschema-bean-generator"

// Writer emits Java source incrementally. It tracks the indentation level,
// the package being written, the enclosing type declarations and an import
// table.
//
// Imports are buffered and flushed exactly once, right before the first type
// header or doc comment. Imports requested after that point cannot be added
// anymore: they are reported through the logger and LateImports, and the type
// is written fully qualified wherever it is used.
//
// Write errors of the underlying io.Writer are sticky: after the first
// failure every call is a no-op and Err returns the failure.
type Writer struct {
	out    io.Writer
	err    error
	logger *slog.Logger

	indent      string
	level       int
	pkg         string
	generatedBy string
	classes     []ClassName

	// imports maps qualified names to the raw name they make available.
	imports map[string]string
	// claimed maps raw names to the qualified name owning them.
	claimed map[string]string

	flushed       bool
	skipEmptyLine bool
	lateImports   []ClassName
	written       int64
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithLogger sets the logger used for warnings.
func WithLogger(logger *slog.Logger) WriterOption {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithIndent replaces the default tab indentation.
func WithIndent(indent string) WriterOption {
	return func(w *Writer) {
		w.indent = indent
	}
}

// WithGeneratedBy sets the @Generated annotation value. An empty value
// suppresses the annotation.
func WithGeneratedBy(value string) WriterOption {
	return func(w *Writer) {
		w.generatedBy = value
	}
}

// NewWriter returns a Writer emitting to out.
func NewWriter(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:         out,
		logger:      slog.New(slog.DiscardHandler),
		indent:      "\t",
		generatedBy: DefaultGeneratedBy,
		imports:     make(map[string]string),
		claimed:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// LateImports returns the imports that were requested after the flush point.
func (w *Writer) LateImports() []ClassName {
	return slices.Clone(w.lateImports)
}

// Imports returns the imported qualified names in flush order.
func (w *Writer) Imports() []string {
	return slices.Sorted(maps.Keys(w.imports))
}

// Write emits text verbatim.
func (w *Writer) Write(text string) {
	if w.err != nil || text == "" {
		return
	}

	n, err := io.WriteString(w.out, text)
	w.written += int64(n)
	w.err = err
	w.skipEmptyLine = false
}

// PushIndent increases the indentation level.
func (w *Writer) PushIndent() {
	w.level++
}

// PopIndent decreases the indentation level.
func (w *Writer) PopIndent() {
	if w.level > 0 {
		w.level--
	}
}

// WriteIndent emits the indentation of the current level.
func (w *Writer) WriteIndent() {
	w.Write(strings.Repeat(w.indent, w.level))
}

// WriteEmptyLine emits a blank line unless the previous element asked to be
// followed directly by the next one (doc comments, annotations, type headers).
func (w *Writer) WriteEmptyLine() {
	if w.skipEmptyLine {
		w.skipEmptyLine = false
		return
	}

	w.Write("\n")
}

// WritePackage writes the package declaration of c and remembers the
// package and the raw name of c so that neither gets imported.
func (w *Writer) WritePackage(c ClassName) {
	if c.pkg != "" {
		w.Write("package " + c.pkg + ";\n")
	}

	w.pkg = c.pkg
	w.claimed[c.raw] = c.QualifiedName()
}

// WriteImport requests an import for c and, transitively, for its type
// arguments.
func (w *Writer) WriteImport(c ClassName) {
	for _, arg := range c.args {
		w.WriteImport(arg)
	}

	qualified := c.QualifiedName()

	if !w.needsImport(c) {
		// Types visible without an import still own their raw name: an
		// import of the same raw name would shadow them.
		if _, ok := w.claimed[c.raw]; !ok && c.pkg != "" && !w.flushed {
			w.claimed[c.raw] = qualified
		}

		return
	}

	if _, ok := w.imports[qualified]; ok {
		return
	}

	if w.flushed {
		w.lateImports = append(w.lateImports, c.Erasure())
		w.logger.Warn("cannot add import: imports have been flushed already", "class", qualified)

		return
	}

	if owner, ok := w.claimed[c.raw]; ok && owner != qualified {
		// The short name belongs to someone else, c stays qualified.
		return
	}

	w.imports[qualified] = c.raw
	w.claimed[c.raw] = qualified
}

// needsImport reports whether c is neither a primitive, in the default
// package, in the current package nor in java.lang.
func (w *Writer) needsImport(c ClassName) bool {
	switch c.pkg {
	case "", w.pkg, "java.lang":
		return false
	default:
		return true
	}
}

// flushImports writes the import block once, sorted by qualified name.
func (w *Writer) flushImports() {
	if w.flushed {
		return
	}

	w.flushed = true
	if len(w.imports) == 0 {
		return
	}

	w.WriteEmptyLine()

	for _, qualified := range w.Imports() {
		w.Write("import " + qualified + ";\n")
	}
}

// ShortName returns the shortest valid spelling of c at this point of the
// output: the raw name when c is visible without qualification, the qualified
// name otherwise. Type arguments are shortened recursively.
func (w *Writer) ShortName(c ClassName) string {
	var sb strings.Builder

	name := c.QualifiedName()
	if !w.needsImport(c) {
		if owner, ok := w.claimed[c.raw]; !ok || owner == name || c.pkg == "" {
			name = c.raw
		}
	} else if raw, ok := w.imports[name]; ok {
		name = raw
	}

	sb.WriteString(name)

	if len(c.args) > 0 {
		sb.WriteByte('<')

		for i, arg := range c.args {
			if i > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(w.ShortName(arg))
		}

		sb.WriteByte('>')
	}

	return sb.String()
}

// WriteClassName writes c using ShortName.
func (w *Writer) WriteClassName(c ClassName) {
	w.Write(w.ShortName(c))
}

// ClassDecl describes a type header.
type ClassDecl struct {
	Name       ClassName
	Extends    *ClassName
	Implements []ClassName
	Kind       Kind
	Visibility Visibility
	Modifiers  []Modifier
}

// WriteClassStart imports everything the header refers to, flushes the
// import block, and opens the type body. Top-level types get a @Generated
// annotation.
func (w *Writer) WriteClassStart(decl ClassDecl) {
	topLevel := len(w.classes) == 0
	annotate := topLevel && w.generatedBy != ""

	if annotate {
		w.WriteImport(Generated)
	}

	if decl.Extends != nil {
		w.WriteImport(*decl.Extends)
	}

	for _, iface := range decl.Implements {
		w.WriteImport(iface)
	}

	w.flushImports()

	if annotate {
		w.WriteAnnotation(Generated, Quote(w.generatedBy))
	} else if w.written > 0 {
		w.WriteEmptyLine()
	}

	w.WriteIndent()
	w.writeVisibility(decl.Visibility)
	w.writeModifiers(decl.Modifiers, decl.Name.raw)

	kind := decl.Kind
	if kind == 0 {
		kind = KindClass
	}

	w.Write(kind.String() + " " + decl.Name.raw)

	if decl.Extends != nil {
		w.Write(" extends ")
		w.WriteClassName(*decl.Extends)
	}

	if len(decl.Implements) > 0 {
		w.Write(" implements ")

		for i, iface := range decl.Implements {
			if i > 0 {
				w.Write(", ")
			}

			w.WriteClassName(iface)
		}
	}

	w.Write(" {\n")
	w.PushIndent()
	w.classes = append(w.classes, decl.Name)
	w.skipEmptyLine = true
}

// WriteClassEnd closes the innermost type body.
func (w *Writer) WriteClassEnd() {
	w.PopIndent()
	w.WriteIndent()
	w.Write("}\n")

	if len(w.classes) > 0 {
		w.classes = w.classes[:len(w.classes)-1]
	}
}

// Field describes a field declaration.
type Field struct {
	Visibility Visibility
	Modifiers  []Modifier
	Type       ClassName
	Name       string
	// Initializer is an optional expression written after " = ".
	Initializer string
}

// WriteField writes a field declaration on its own line.
func (w *Writer) WriteField(f Field) {
	w.WriteIndent()
	w.writeVisibility(f.Visibility)
	w.writeModifiers(f.Modifiers, f.Name)
	w.WriteClassName(f.Type)
	w.Write(" " + f.Name)

	if f.Initializer != "" {
		w.Write(" = " + f.Initializer)
	}

	w.Write(";\n")
}

// Param is a formal method parameter.
type Param struct {
	Type ClassName
	Name string
}

// Method describes a method or constructor header. A nil Returns denotes a
// constructor.
type Method struct {
	Visibility Visibility
	Modifiers  []Modifier
	Returns    *ClassName
	Name       string
	Params     []Param
}

// WriteMethodStart writes a blank line and the method header, and opens the
// method body.
func (w *Writer) WriteMethodStart(m Method) {
	w.WriteEmptyLine()
	w.WriteIndent()
	w.writeVisibility(m.Visibility)
	w.writeModifiers(m.Modifiers, m.Name)

	if m.Returns != nil {
		w.WriteClassName(*m.Returns)
		w.Write(" ")
	}

	w.Write(m.Name + "(")

	for i, p := range m.Params {
		if i > 0 {
			w.Write(", ")
		}

		w.WriteClassName(p.Type)
		w.Write(" " + p.Name)
	}

	w.Write(") {\n")
	w.PushIndent()
}

// WriteConstructorStart opens a constructor of class c.
func (w *Writer) WriteConstructorStart(visibility Visibility, c ClassName, params ...Param) {
	w.WriteMethodStart(Method{Visibility: visibility, Name: c.raw, Params: params})
}

// WriteCode writes each line indented and terminated by a newline.
func (w *Writer) WriteCode(lines ...string) {
	for _, line := range lines {
		w.WriteIndent()
		w.Write(line + "\n")
	}
}

// WriteMethodEnd closes the current method body.
func (w *Writer) WriteMethodEnd() {
	w.PopIndent()
	w.WriteIndent()
	w.Write("}\n")
}

// WriteJavadoc writes a doc comment. It flushes the imports first since doc
// comments only ever precede declarations. Types named in a following type
// header must have been imported before.
func (w *Writer) WriteJavadoc(lines ...string) {
	if len(w.classes) == 0 && w.generatedBy != "" {
		w.WriteImport(Generated)
	}

	w.flushImports()
	w.WriteEmptyLine()
	w.WriteIndent()
	w.Write("/**\n")

	for _, line := range lines {
		w.WriteIndent()

		if line == "" {
			w.Write(" *\n")
			continue
		}

		w.Write(" * " + strings.ReplaceAll(line, "*/", "*&#47;") + "\n")
	}

	w.WriteIndent()
	w.Write(" */\n")
	w.skipEmptyLine = true
}

// WriteAnnotation writes @annotation, with params in parentheses when
// non-empty.
func (w *Writer) WriteAnnotation(annotation ClassName, params string) {
	w.WriteEmptyLine()
	w.WriteIndent()
	w.Write("@")
	w.WriteClassName(annotation)

	if params != "" {
		w.Write("(" + params + ")")
	}

	w.Write("\n")
	w.skipEmptyLine = true
}

func (w *Writer) writeVisibility(v Visibility) {
	if v == 0 || v == VisibilityPackage {
		return
	}

	w.Write(v.String() + " ")
}

// writeModifiers writes each modifier once, warning about duplicates.
func (w *Writer) writeModifiers(modifiers []Modifier, owner string) {
	seen := make(map[Modifier]bool, len(modifiers))

	for _, m := range modifiers {
		if seen[m] {
			w.logger.Warn("duplicate modifier", "modifier", m.String(), "owner", owner)
			continue
		}

		seen[m] = true
		w.Write(m.String() + " ")
	}
}
