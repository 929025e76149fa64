package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, err
	}
	return cfg, nil
}

// confirm asks before a destructive operation. The engines themselves
// never prompt.
func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}

func printReport(report *internal.Report) {
	if report.DryRun {
		fmt.Printf("Preview of organizing %s by %s\n", report.Root, report.Mode)
	} else {
		fmt.Printf("Organized %s by %s\n", report.Root, report.Mode)
	}
	fmt.Printf("Total files: %d (%s)\n\n", report.TotalFiles, internal.FormatBytes(report.TotalSize))

	for _, bucket := range report.Buckets {
		fmt.Printf("%s/\n", bucket.Name)
		fmt.Printf("  Files: %d | Size: %s\n", bucket.Files, internal.FormatBytes(bucket.Size))
		for _, name := range bucket.Samples {
			fmt.Printf("  - %s\n", name)
		}
		if bucket.Files > len(bucket.Samples) {
			fmt.Printf("  ... and %d more\n", bucket.Files-len(bucket.Samples))
		}
	}

	if !report.DryRun {
		fmt.Printf("\nMoved %d files.\n", report.Moved)
	}
	printFailures(report.Failures)
}

func printFailures(failures []internal.Failure) {
	if len(failures) == 0 {
		return
	}
	fmt.Printf("\n%d files could not be processed:\n", len(failures))
	for _, failure := range failures {
		fmt.Printf("  %s: %s\n", failure.Path, failure.Reason)
	}
}
