// Package main provides the CLI entrypoint for jsonschema-bean-generator.
//
// jsonschema-bean-generator reads JSON schemas and writes one Java class per
// generated type:
//   - objects become beans with private fields and accessors
//   - string enumerations become enums or constant classes
//   - mapping files choose class names, packages and supertypes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"jsonschema-bean-generator/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.Run(ctx, os.Getenv)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
