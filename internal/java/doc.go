// Package java models Java type names and writes Java source text.
//
// ClassName is the value type used everywhere a generated or referenced type
// is named. Its textual form is `package.Raw<Arg1,Arg2>`, and Parse and
// ClassName.String are inverses of each other.
//
// Writer is an incremental emitter that knows just enough Java to get
// imports and qualification right without building a syntax tree:
//   - imports are deduplicated by raw name, the first requester wins
//   - the import block is flushed once, before the first type header
//   - names are shortened when imported, in java.lang or in the same package
//   - late imports are observable instead of silently producing bad output
package java
