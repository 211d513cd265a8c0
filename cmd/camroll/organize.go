package main

import (
	"github.com/spf13/cobra"
)

// NewOrganizeCmd creates the organize command
func NewOrganizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organize [directory]",
		Short: "Sort a camera roll in place",
		Long: `Scan the camera roll, group files by capture date, and move each one
into its date directory. Files already in the right place are left alone,
and nothing is ever overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}

			return runPipeline(dir, dir, capabilityFor(cfg.Settings.Transfer))
		},
	}
}
