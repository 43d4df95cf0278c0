// Package generrors defines the error taxonomy of the bean generator.
//
// Every failure carries the offending type reference and, where it helps,
// the resolution stack active at the time. Callers branch on the category
// with errors.Is against the sentinels, or extract details with errors.As:
//
//	_, err := g.Generate(ref)
//	var cycle *generrors.CycleError
//	if errors.As(err, &cycle) {
//	    fmt.Println(cycle.Stack)
//	}
//
// # Categories
//
//   - MissingSchemaError: a reference has no backing schema
//   - InvalidTypeReferenceError: a property or element resolved to no type
//   - CycleError: a reference was re-entered while still being resolved
//   - ConfigError: malformed mappings or options
//   - GenerationError: any other failure while generating one type
//
// Only MissingSchemaError, InvalidTypeReferenceError and GenerationError can
// be tolerated by the generator; cycles and configuration conflicts always
// abort the run (see Tolerable).
package generrors
