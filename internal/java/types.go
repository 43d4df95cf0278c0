package java

// Well-known class names used by the generators.
var (
	Object      = NewClassName("java.lang", "Object")
	String      = NewClassName("java.lang", "String")
	Override    = NewClassName("java.lang", "Override")
	Void        = NewClassName("", "void")
	Boolean     = NewClassName("", "boolean")
	Int         = NewClassName("", "int")
	Long        = NewClassName("", "long")
	Float       = NewClassName("", "float")
	Double      = NewClassName("", "double")
	Generated   = NewClassName("javax.annotation", "Generated")
	List        = NewClassName("java.util", "List")
	Set         = NewClassName("java.util", "Set")
	Map         = NewClassName("java.util", "Map")
	MapEntry    = NewClassName("java.util.Map", "Entry")
	HashMap     = NewClassName("java.util", "HashMap")
	AbstractMap = NewClassName("java.util", "AbstractMap")
	Arrays      = NewClassName("java.util", "Arrays")
	Objects     = NewClassName("java.util", "Objects")
)

// primitiveWrappers maps each primitive to its java.lang wrapper.
var primitiveWrappers = map[string]string{
	"boolean": "Boolean",
	"char":    "Character",
	"byte":    "Byte",
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
	"void":    "Void",
}

// IsPrimitive reports whether c names a primitive type: an empty package
// and one of the eight primitive keywords.
func IsPrimitive(c ClassName) bool {
	if c.pkg != "" || len(c.args) > 0 || c.raw == "void" {
		return false
	}

	_, ok := primitiveWrappers[c.raw]

	return ok
}

// Boxed returns the wrapper class for primitives and c itself otherwise.
// Generic type arguments must be reference types.
func Boxed(c ClassName) ClassName {
	if c.pkg != "" {
		return c
	}

	if wrapper, ok := primitiveWrappers[c.raw]; ok {
		return NewClassName("java.lang", wrapper)
	}

	return c
}

// knownTypes lists JDK types that never need generating.
var knownTypes = map[string]struct{}{
	"java.lang.Object":           {},
	"java.lang.String":           {},
	"java.lang.CharSequence":     {},
	"java.lang.Number":           {},
	"java.lang.Boolean":          {},
	"java.lang.Character":        {},
	"java.lang.Byte":             {},
	"java.lang.Short":            {},
	"java.lang.Integer":          {},
	"java.lang.Long":             {},
	"java.lang.Float":            {},
	"java.lang.Double":           {},
	"java.lang.Void":             {},
	"java.lang.Enum":             {},
	"java.lang.Comparable":       {},
	"java.lang.Cloneable":        {},
	"java.lang.Iterable":         {},
	"java.io.Serializable":       {},
	"java.math.BigDecimal":       {},
	"java.math.BigInteger":       {},
	"java.net.URI":               {},
	"java.net.URL":               {},
	"java.util.AbstractMap":      {},
	"java.util.ArrayList":        {},
	"java.util.Collection":       {},
	"java.util.Date":             {},
	"java.util.HashMap":          {},
	"java.util.HashSet":          {},
	"java.util.LinkedHashMap":    {},
	"java.util.List":             {},
	"java.util.Locale":           {},
	"java.util.Map":              {},
	"java.util.Map.Entry":        {},
	"java.util.Optional":         {},
	"java.util.Set":              {},
	"java.util.UUID":             {},
	"java.time.Duration":         {},
	"java.time.Instant":          {},
	"java.time.LocalDate":        {},
	"java.time.LocalDateTime":    {},
	"java.time.LocalTime":        {},
	"java.time.OffsetDateTime":   {},
	"java.time.ZonedDateTime":    {},
	"javax.annotation.Generated": {},
}

// IsKnownType reports whether c (ignoring type arguments) is one of the
// JDK types the generator knows to exist.
func IsKnownType(c ClassName) bool {
	_, ok := knownTypes[c.QualifiedName()]

	return ok
}
