package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"camroll/internal/classify"
	"camroll/internal/log"
	"camroll/internal/watch"
	"camroll/pkg/types"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch the camera roll and organize new files as they arrive",
		Long: `Monitor the camera roll root for new raw, preview, or sidecar files.
Once a burst of arrivals settles, the organize pass runs automatically.
Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}

			watcher, err := watch.New()
			if err != nil {
				return err
			}
			if err := watcher.AddDirectory(dir); err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigs
				log.Info("stopping watcher")
				watcher.Stop()
			}()

			classifier := classify.NewWithConfig(cfg)
			settle := time.Duration(cfg.WatchMode.Settle) * time.Second

			log.Info("watching %s (settle %s)", dir, settle)
			watch.RunSettled(watcher.Arrivals(), settle, func(path string) bool {
				return classifier.Classify(path) != types.RoleUnrecognized
			}, func() {
				if err := runPipeline(dir, dir, capabilityFor(cfg.Settings.Transfer)); err != nil {
					log.Error("organize pass failed: %v", err)
				}
			})

			return nil
		},
	}
}
