// Package gen turns JSON schema locations into Java classes.
//
// The Generator resolves one schema reference at a time. Resolution is
// recursive: the object generator asks for its property types, the array
// generator for its element type, and so on. Every reference is generated
// at most once per Generator; later requests return the cached class name.
//
// Resolution steps:
//   - Explicit mappings from the Registry win. Unmapped pure aliases ($ref)
//     are followed, everything else gets a synthesized mapping named after
//     its pointer path.
//   - Mappings naming primitives, well-known JDK types or configured existing
//     types bind to that type without emitting code.
//   - The shape ("type" keyword) selects a kind generator. Generators write
//     through a java.Writer into a buffer; non-empty buffers become artifacts
//     of the configured Sink.
//
// Re-entering a reference that is still being generated is a cycle error.
// With Config.IgnoreMissingTypes, failures other than cycles and
// configuration conflicts are downgraded to warnings and the intended class
// name is used as a placeholder.
package gen
