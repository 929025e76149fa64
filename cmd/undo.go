package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

var undoCmd = &cobra.Command{
	Use:   "undo <directory>",
	Short: "Revert the last organization run in a directory",
	Long: `Undo replays the directory's transaction log in reverse, moving every
file back where it came from. Files that were moved or deleted since
the run are reported as unrestorable. Emptied bucket folders directly
under the directory are removed; the log is cleared afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !confirm(fmt.Sprintf("Undo the last organization of %s?", args[0])) {
		fmt.Println("Cancelled.")
		return nil
	}

	result, err := organizer.NewDefault().Undo(args[0])
	if err != nil {
		switch {
		case errors.Is(err, internal.ErrNoHistory):
			return fmt.Errorf("no history found for %s, nothing to undo", args[0])
		case errors.Is(err, internal.ErrEmptyHistory):
			return fmt.Errorf("history for %s contains no moves", args[0])
		}
		return err
	}

	fmt.Printf("Restored %d files.\n", result.Restored)
	for _, dir := range result.RemovedDirs {
		fmt.Printf("Removed empty folder: %s\n", dir)
	}
	printFailures(result.Unrestorable)
	return nil
}

func init() {
	undoCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(undoCmd)
}
