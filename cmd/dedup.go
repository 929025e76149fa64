package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/database"
	"github.com/moyu-x/file-organizer/pkg/deduplicator"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup <directory>",
	Short: "Find files with identical content",
	Long: `Dedup recursively hashes every file under the directory with xxHash
and lists the groups that share a digest. Nothing is deleted or moved;
the output is a report only.

Digests are cached in a small SQLite database keyed by path, size and
mtime, so unchanged files are not re-hashed on the next scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runDedup,
}

func runDedup(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")

	dedup := deduplicator.New(afero.NewOsFs(), cfg.Performance.Workers)

	if !noCache {
		cache, err := database.Open(cfg.Cache.Path)
		if err != nil {
			logger.Get().Warn().Err(err).Msg("hash cache unavailable, hashing everything")
		} else {
			defer cache.Close()
			dedup = dedup.WithCache(cache)
		}
	}

	report, err := dedup.FindDuplicates(args[0])
	if err != nil {
		return err
	}

	if len(report.Groups) == 0 {
		fmt.Printf("No duplicates found among %d files.\n", report.Scanned)
		printFailures(report.Failures)
		return nil
	}

	fmt.Printf("Found %d sets of duplicate files:\n\n", len(report.Groups))
	for i, group := range report.Groups {
		fmt.Printf("Duplicate set #%d (%s):\n", i+1, internal.FormatBytes(group.Size))
		for _, path := range group.Paths {
			fmt.Printf("  - %s\n", path)
		}
		fmt.Println()
	}
	fmt.Printf("Reclaimable space: %s\n", internal.FormatBytes(report.Reclaimable))
	printFailures(report.Failures)
	return nil
}

func init() {
	dedupCmd.Flags().Bool("no-cache", false, "skip the persistent hash cache")

	rootCmd.AddCommand(dedupCmd)
}
