package main

import (
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <srcDir> <destDir>",
		Short: "Import pictures from an external source into the camera roll",
		Long: `Scan srcDir and copy its files into date directories under destDir.
The source is never modified; verify the import, then clear the card
yourself.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(args[0], args[1], capabilityFor("copy"))
		},
	}
}
