package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/pkg/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/tui"
)

// rootCmd launches the interactive wizard when called without a
// subcommand; organize/undo/dedup exist for scripted use.
var rootCmd = &cobra.Command{
	Use:   "file-organizer",
	Short: "Organize messy folders by type or date, find duplicates, undo safely",
	Long: `File Organizer reorganizes a directory by moving files into
classification-derived subfolders and records every move in a
transaction log so the whole run can be reverted.

Main features:
- Organize files by category, modification date or sniffed content type
- Preview any organization before applying it
- Undo the last organization run exactly
- Detect duplicate files by content hash`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
			return err
		}
		return tui.Run(cfg)
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
