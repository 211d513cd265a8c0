package main

import (
	"camroll/internal/config"
	"camroll/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dryRun  bool
	verbose bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "camroll",
		Short: "Organize a camera roll into capture-date directories",
		Long: `camroll sorts a photo library by capture date.

Raw files and their editor sidecars land in MM-DD-YYYY directories at the
library root; out-of-camera JPEGs go into a jpg subdirectory below each date.
The capture date comes from the image metadata, never from file names or
modification times, so a re-run never moves a correctly placed file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dry-run") {
				cfg.Settings.DryRun = dryRun
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Settings.Verbose = verbose
			}
			// A dry run exists to show its work.
			log.SetVerbose(cfg.Settings.Verbose || cfg.Settings.DryRun)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/camroll/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "log planned operations without touching the filesystem")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(NewOrganizeCmd())
	rootCmd.AddCommand(NewImportCmd())
	rootCmd.AddCommand(NewCleanupCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}
