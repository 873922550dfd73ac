package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vehicle-assistant-cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version and commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line := fmt.Sprintf("va %s (commit %s)", version.Version, version.Commit)
			if short {
				line = version.Version
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")

	return cmd
}
