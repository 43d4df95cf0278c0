package java

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_SimpleClass(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	foo := MustParse("com.example.Foo")
	bars := MustParse("java.util.List<com.other.Bar>")

	w.WritePackage(foo)
	w.WriteImport(bars)
	w.WriteClassStart(ClassDecl{Name: foo, Kind: KindClass, Visibility: VisibilityPublic})
	w.WriteField(Field{Visibility: VisibilityPrivate, Type: bars, Name: "bars"})
	w.WriteMethodStart(Method{Visibility: VisibilityPublic, Returns: &bars, Name: "getBars"})
	w.WriteCode("return bars;")
	w.WriteMethodEnd()
	w.WriteClassEnd()

	require.NoError(t, w.Err())

	expected := `package com.example;

import com.other.Bar;
import java.util.List;
import javax.annotation.Generated;

@Generated("jsonschema-bean-generator")
public class Foo {
	private List<Bar> bars;

	public List<Bar> getBars() {
		return bars;
	}
}
`
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, int64(buf.Len()), w.written)
	assert.Empty(t, w.LateImports())
}

func TestWriter_JavadocBeforeClass(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf, WithGeneratedBy(""))
	foo := MustParse("com.example.Foo")

	w.WritePackage(foo)
	w.WriteJavadoc("Title", "", "Line with */ inside")
	w.WriteClassStart(ClassDecl{Name: foo, Visibility: VisibilityPublic, Modifiers: []Modifier{ModifierFinal, ModifierFinal}})
	w.WriteClassEnd()

	expected := `package com.example;

/**
 * Title
 *
 * Line with *&#47; inside
 */
public final class Foo {
}
`
	assert.Equal(t, expected, buf.String())
}

func TestWriter_JavadocKeepsGeneratedImport(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	foo := MustParse("com.example.Foo")

	w.WritePackage(foo)
	w.WriteJavadoc("Title")
	w.WriteClassStart(ClassDecl{Name: foo, Visibility: VisibilityPublic})
	w.WriteClassEnd()

	expected := `package com.example;

import javax.annotation.Generated;

/**
 * Title
 */
@Generated("jsonschema-bean-generator")
public class Foo {
}
`
	assert.Equal(t, expected, buf.String())
	assert.Empty(t, w.LateImports())
}

func TestWriter_LateImport(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	foo := MustParse("com.example.Foo")
	late := MustParse("com.late.Baz")

	w.WritePackage(foo)
	w.WriteClassStart(ClassDecl{Name: foo, Visibility: VisibilityPublic})
	w.WriteImport(late)
	w.WriteImport(String)
	w.WriteField(Field{Visibility: VisibilityPrivate, Type: late, Name: "baz"})
	w.WriteClassEnd()

	require.Len(t, w.LateImports(), 1)
	assert.Equal(t, "com.late.Baz", w.LateImports()[0].String())
	assert.NotContains(t, buf.String(), "import com.late.Baz;")
	assert.Contains(t, buf.String(), "\tprivate com.late.Baz baz;\n")
}

func TestWriter_FirstShortNameWins(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Foo"))

	w.WriteImport(MustParse("com.a.Item"))
	w.WriteImport(MustParse("com.b.Item"))
	w.WriteImport(MustParse("com.a.Item"))

	assert.Equal(t, []string{"com.a.Item"}, w.Imports())
	assert.Equal(t, "Item", w.ShortName(MustParse("com.a.Item")))
	assert.Equal(t, "com.b.Item", w.ShortName(MustParse("com.b.Item")))
	assert.Equal(t, "java.util.Map<Item,com.b.Item>", w.ShortName(MustParse("java.util.Map<com.a.Item,com.b.Item>")))
}

func TestWriter_SkipsImplicitImports(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Foo"))

	w.WriteImport(String)
	w.WriteImport(Int)
	w.WriteImport(MustParse("com.example.Sibling"))
	w.WriteImport(MustParse("Local"))

	assert.Empty(t, w.Imports())
	assert.Equal(t, "String", w.ShortName(String))
	assert.Equal(t, "Sibling", w.ShortName(MustParse("com.example.Sibling")))
	assert.Equal(t, "com.other.Sibling", w.ShortName(MustParse("com.other.Sibling")))
}

func TestWriter_OwnNameBlocksImport(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Map"))

	m := MustParse("java.util.Map<java.lang.String,java.lang.Object>")
	w.WriteImport(m)

	assert.Empty(t, w.Imports())
	assert.Equal(t, "java.util.Map<String,Object>", w.ShortName(m))
}

func TestWriter_SamePackageOwnsRawName(t *testing.T) {
	local := MustParse("com.example.Bar")
	other := MustParse("com.other.Bar")

	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Holder"))
	w.WriteImport(local)
	w.WriteImport(other)

	assert.Empty(t, w.Imports())
	assert.Equal(t, "Bar", w.ShortName(local))
	assert.Equal(t, "com.other.Bar", w.ShortName(other))

	w = NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Holder"))
	w.WriteImport(other)
	w.WriteImport(local)

	assert.Equal(t, []string{"com.other.Bar"}, w.Imports())
	assert.Equal(t, "Bar", w.ShortName(other))
	assert.Equal(t, "com.example.Bar", w.ShortName(local))
}

func TestWriter_ImportShadowsJavaLang(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Holder"))
	w.WriteImport(MustParse("com.other.String"))
	w.WriteImport(String)

	assert.Equal(t, []string{"com.other.String"}, w.Imports())
	assert.Equal(t, "String", w.ShortName(MustParse("com.other.String")))
	assert.Equal(t, "java.lang.String", w.ShortName(String))
}

func TestWriter_TypeArgumentsImported(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.WritePackage(MustParse("com.example.Foo"))

	w.WriteImport(MustParse("java.util.Map<java.lang.String,java.util.List<com.other.Bar>>"))

	assert.Equal(t, []string{"com.other.Bar", "java.util.List", "java.util.Map"}, w.Imports())
}

func TestWriter_NestedClassIsNotAnnotated(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	outer := MustParse("com.example.Outer")
	inner := MustParse("com.example.Outer.Inner")

	w.WritePackage(outer)
	w.WriteClassStart(ClassDecl{Name: outer, Visibility: VisibilityPublic})
	w.WriteField(Field{Visibility: VisibilityPrivate, Type: Int, Name: "n"})
	w.WriteClassStart(ClassDecl{Name: inner, Visibility: VisibilityPublic, Modifiers: []Modifier{ModifierStatic}})

	require.Len(t, w.classes, 2)
	assert.Equal(t, "Inner", w.classes[1].Raw())

	w.WriteClassEnd()
	w.WriteClassEnd()

	assert.Empty(t, w.classes)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("@Generated")))
	assert.Contains(t, buf.String(), "\tprivate int n;\n\n\tpublic static class Inner {\n\t}\n}\n")
}

func TestWriter_ConstructorAndAnnotation(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf, WithIndent("    "), WithGeneratedBy(""))
	foo := MustParse("com.example.Foo")

	w.WritePackage(foo)
	w.WriteClassStart(ClassDecl{Name: foo, Visibility: VisibilityPublic})
	w.WriteConstructorStart(VisibilityPrivate, foo, Param{Type: String, Name: "value"}, Param{Type: Int, Name: "n"})
	w.WriteMethodEnd()
	w.WriteAnnotation(Override, "")
	w.WriteMethodStart(Method{Visibility: VisibilityPublic, Returns: &String, Name: "toString"})
	w.WriteCode("return \"\";")
	w.WriteMethodEnd()
	w.WriteClassEnd()

	expected := `package com.example;

public class Foo {
    private Foo(String value, int n) {
    }

    @Override
    public String toString() {
        return "";
    }
}
`
	assert.Equal(t, expected, buf.String())
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBroken
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.WritePackage(MustParse("com.example.Foo"))
	w.WriteClassStart(ClassDecl{Name: MustParse("com.example.Foo")})
	w.WriteClassEnd()

	assert.ErrorIs(t, w.Err(), errBroken)
	assert.Zero(t, w.written)
}
