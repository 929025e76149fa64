package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/classifier"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Move files into subfolders by category, date or content type",
	Long: `Organize moves the direct children of a directory into subfolders.
The bucket is derived from the extension category table (--by category),
the modification date as <year>/<month> (--by date), or the sniffed
content type (--by content).

Every successful move is written to a hidden transaction log in the
directory, so the run can be reverted with "undo". Use --dry-run to
preview the grouping without changing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	modeStr, _ := cmd.Flags().GetString("by")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	mode, err := internal.ParseMode(modeStr)
	if err != nil {
		return err
	}

	if !dryRun && !yes {
		if !confirm(fmt.Sprintf("This will move files in %s. Continue?", args[0])) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	org := organizer.New(afero.NewOsFs(), classifier.New(cfg.Table()))
	report, err := org.Run(args[0], mode, dryRun)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func init() {
	organizeCmd.Flags().String("by", "category", "bucket derivation: category, date or content")
	organizeCmd.Flags().Bool("dry-run", false, "preview the grouping without moving anything")
	organizeCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(organizeCmd)
}
