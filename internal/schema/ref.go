package schema

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/go-openapi/jsonpointer"

	"jsonschema-bean-generator/internal/generrors"
)

// Ref is a normalized reference to a schema location: a document URI and a
// JSON pointer into that document. Refs are comparable and can be used as
// map keys; two refs are equal iff they denote the same location.
type Ref struct {
	doc     string
	pointer string
}

// ParseRef parses an absolute or relative URI reference. The scheme and host
// are lower-cased, dot segments are removed from the path, and an empty
// fragment is the same as no fragment. A fragment that is not a JSON pointer
// is a configuration conflict.
func ParseRef(raw string) (Ref, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Ref{}, &generrors.ConfigError{Ref: raw, Option: "uri", Message: "cannot parse URI", Cause: err}
	}

	return refFromURL(u, raw)
}

// MustParseRef is like ParseRef but panics on error.
func MustParseRef(raw string) Ref {
	ref, err := ParseRef(raw)
	if err != nil {
		panic(err)
	}

	return ref
}

func refFromURL(u *url.URL, raw string) (Ref, error) {
	pointer, err := normalizePointer(u.Fragment)
	if err != nil {
		return Ref{}, &generrors.ConfigError{Ref: raw, Option: "fragment", Message: "fragment is not a JSON pointer", Cause: err}
	}

	doc := *u
	doc.Fragment = ""
	doc.RawFragment = ""
	doc.Scheme = strings.ToLower(doc.Scheme)
	doc.Host = strings.ToLower(doc.Host)

	if doc.Opaque == "" && doc.Path != "" {
		doc.Path = removeDotSegments(doc.Path)
		doc.RawPath = ""
	}

	return Ref{doc: doc.String(), pointer: pointer}, nil
}

// NewRef builds a Ref from a document URI and unescaped pointer tokens.
func NewRef(doc string, tokens ...string) (Ref, error) {
	ref, err := ParseRef(doc)
	if err != nil {
		return Ref{}, err
	}

	if ref.pointer != "" {
		return Ref{}, &generrors.ConfigError{Ref: doc, Option: "uri", Message: "document URI must not have a fragment"}
	}

	return ref.Child(tokens...), nil
}

func normalizePointer(fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}

	if !strings.HasPrefix(fragment, "/") {
		return "", fmt.Errorf("%q does not start with /", fragment)
	}

	ptr, err := jsonpointer.New(fragment)
	if err != nil {
		return "", err
	}

	return joinTokens(ptr.DecodedTokens()), nil
}

func joinTokens(tokens []string) string {
	var sb strings.Builder

	for _, t := range tokens {
		sb.WriteByte('/')
		sb.WriteString(jsonpointer.Escape(t))
	}

	return sb.String()
}

// removeDotSegments cleans "." and ".." out of p, keeping a trailing slash.
func removeDotSegments(p string) string {
	cleaned := path.Clean(p)
	if cleaned == "." {
		cleaned = ""
	}

	if strings.HasSuffix(p, "/") && !strings.HasSuffix(cleaned, "/") {
		cleaned += "/"
	}

	return cleaned
}

// Document returns the document URI without fragment.
func (r Ref) Document() string { return r.doc }

// Pointer returns the escaped JSON pointer, empty for the document root.
func (r Ref) Pointer() string { return r.pointer }

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool { return r.doc == "" && r.pointer == "" }

// IsRoot reports whether r points at the root of its document.
func (r Ref) IsRoot() bool { return r.pointer == "" }

// String formats r as "document#pointer".
func (r Ref) String() string { return r.doc + "#" + r.pointer }

// DocumentRef returns the root of the document r points into.
func (r Ref) DocumentRef() Ref { return Ref{doc: r.doc} }

// Tokens returns the unescaped pointer tokens.
func (r Ref) Tokens() []string {
	if r.pointer == "" {
		return nil
	}

	parts := strings.Split(r.pointer[1:], "/")
	for i, p := range parts {
		parts[i] = jsonpointer.Unescape(p)
	}

	return parts
}

// Child appends unescaped tokens to the pointer.
func (r Ref) Child(tokens ...string) Ref {
	return Ref{doc: r.doc, pointer: r.pointer + joinTokens(tokens)}
}

// Parent drops the last pointer token. It returns false at the document root.
func (r Ref) Parent() (Ref, bool) {
	if r.pointer == "" {
		return r, false
	}

	i := strings.LastIndexByte(r.pointer, '/')

	return Ref{doc: r.doc, pointer: r.pointer[:i]}, true
}

// DocumentParent trims the last path segment of the document URI, turning
// "http://x/a/b.json" into "http://x/a/" and "http://x/a/" into "http://x/".
// It returns false once the path is empty or "/".
func (r Ref) DocumentParent() (Ref, bool) {
	u, err := url.Parse(r.doc)
	if err != nil || u.Opaque != "" {
		return r, false
	}

	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return r, false
	}

	u.Path = p[:strings.LastIndexByte(p, '/')+1]
	u.RawPath = ""

	return Ref{doc: u.String()}, true
}

// DocumentName returns the file name of the document without extension,
// e.g. "person" for "http://x/schemas/person.schema.json".
func (r Ref) DocumentName() string {
	u, err := url.Parse(r.doc)
	if err != nil {
		return ""
	}

	p := u.Path
	if u.Opaque != "" {
		p = u.Opaque
	}

	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}

	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}

	return name
}

// Resolve resolves a possibly relative reference against the document of r.
func (r Ref) Resolve(reference string) (Ref, error) {
	base, err := url.Parse(r.doc)
	if err != nil {
		return Ref{}, &generrors.ConfigError{Ref: r.String(), Option: "uri", Message: "cannot parse document URI", Cause: err}
	}

	rel, err := url.Parse(strings.TrimSpace(reference))
	if err != nil {
		return Ref{}, &generrors.ConfigError{Ref: reference, Option: "$ref", Message: "cannot parse reference", Cause: err}
	}

	return refFromURL(base.ResolveReference(rel), reference)
}

// MarshalText implements encoding.TextMarshaler.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Ref) UnmarshalText(text []byte) error {
	ref, err := ParseRef(string(text))
	if err != nil {
		return err
	}

	*r = ref

	return nil
}
