// Package match ranks names by similarity. The generator uses it to attach
// "did you mean" suggestions to missing schema locations, unknown enum
// styles and unknown modifiers.
//
// Key functions:
//   - Normalize: folds case and separators out of names, pointers and URIs
//   - Levenshtein: computes the edit distance between strings
//   - Rank and Suggest: order candidates by normalized similarity
package match
