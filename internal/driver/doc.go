// Package driver wires schema loading, mapping files and the generator into
// one run.
//
// Schema files given on the command line are named by their path below the
// base directory, appended to the root URI: with root "http://x/schemas/"
// and base directory "schemas", the file schemas/a/b.json is the document
// "http://x/schemas/a/b.json" and its root type "http://x/schemas/a/b.json#".
// Documents under the root URI that are not given explicitly are loaded
// from the base directory on first use.
package driver
