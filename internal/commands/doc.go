// Package commands contains the CLI command definitions.
package commands
