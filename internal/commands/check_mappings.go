package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonschema-bean-generator/internal/mapping"
)

func registerCheckMappingsCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "check-mappings <files...>",
		Short: "Validate mapping files",
		Example: `  jsonschema-bean-generator check-mappings mapping.yaml common-mapping.yaml`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckMappings(cmd, a, args)
		},
	}

	parent.AddCommand(cmd)
}

func runCheckMappings(cmd *cobra.Command, a *app, files []string) error {
	out := cmd.OutOrStdout()
	invalid := 0

	for _, file := range files {
		mf, err := mapping.LoadFile(file)
		if err != nil {
			_, _ = fmt.Fprintf(out, "%s: %v\n", file, err)
			invalid++

			continue
		}

		diags := mapping.Validate(mf)
		for _, d := range diags.All() {
			_, _ = fmt.Fprintf(out, "%s: %s\n", file, d)
		}

		if diags.HasErrors() {
			invalid++
			continue
		}

		a.logger.Debug("mapping file is valid", "path", file, "mappings", len(mf.Mappings))
		_, _ = fmt.Fprintf(out, "%s: ok (%d mappings)\n", file, len(mf.Mappings))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d mapping file(s) invalid", invalid, len(files))
	}

	return nil
}
