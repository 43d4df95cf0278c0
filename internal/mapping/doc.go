// Package mapping reads mapping files and keeps the generation directives
// of a run.
//
// A mapping file pins schema locations to Java classes, so that generated
// names, packages and supertypes are stable and reviewable instead of being
// derived from pointer paths.
//
// # File format
//
// Mapping files are YAML; JSON files are accepted as well.
//
//	baseUri: http://example.com/schemas/
//	defaultPackageName: com.example.model
//	mappings:
//	  - target: person.json#/definitions/address
//	    className: com.example.model.Address
//	    implements: java.io.Serializable
//	    modifiers: [final]
//	  - target: person.json#/definitions/color
//	    className: com.example.model.Color
//	    enumStyle: class
//	  - target: common.json#/definitions/money
//	    className: java.math.BigDecimal
//
// Targets are resolved against baseUri. Every type under baseUri that has
// no explicit mapping is generated into defaultPackageName.
//
// # Fields
//
//   - target: schema location, relative to baseUri
//   - className: the class used where the type is referenced
//   - generatedClassName: the class that is emitted (defaults to className)
//   - extends, implements: supertypes of the emitted class
//   - modifiers: extra class modifiers such as final or abstract
//   - ignoreAdditionalProperties: do not synthesize a map supertype
//   - enumStyle: "enum" or "class" for string enumerations
//
// # Registry
//
// The Registry holds the resolved mappings and default packages of a run.
// DefaultPackage finds the nearest enclosing default package of a location:
// it walks up the JSON pointer one token at a time and then up the document
// path one segment at a time.
package mapping
