// Package schema gives the generator read access to JSON Schema documents.
//
// Documents are decoded into github.com/google/jsonschema-go schemas and
// addressed by Ref, an absolute document URI plus a JSON pointer. The Store
// loads JSON and YAML documents, lazily or up front with Preload, and
// remembers what the decoded model loses: the declared order of object keys
// and which subschemas were written as the literals true or false.
package schema
