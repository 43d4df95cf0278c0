// Package diagnostic provides structured findings for the bean generator:
// mapping file validation results, tolerated generation failures and
// warnings about schemas the generator had to guess about.
//
// Each finding has a stable code, the type reference it concerns and,
// where possible, suggestions for a fix.
package diagnostic
