package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
)

var buildForce bool

func init() {
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "Rebuild the index from scratch")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <project>",
	Short: "Build or refresh a project's meeting index",
	Long: `Build or refresh a project's meeting index.

Scans the notes directory for meeting artifacts and indexes each one.
Without --force, only artifacts newer than the existing index are
reprocessed. Unreadable artifacts are reported and skipped; they never
abort the build.

Examples:
  meetingsearch build website-redesign
  meetingsearch build website-redesign --force`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	c := mustWire()

	report, err := c.indexService.Build(cmd.Context(), args[0], buildForce)
	if err != nil {
		exitWithError(ExitError, "building index: %v", err)
	}

	resp := presenter.ToBuildResponse(report)
	if !humanOutput {
		return outputJSON(resp)
	}

	fmt.Printf("Indexed %d meetings for %s (%d processed, %d skipped)\n",
		resp.TotalMeetings, resp.ProjectName, resp.Processed, resp.Skipped)
	for _, f := range resp.Failures {
		fmt.Printf("  skipped %s: %s\n", f.MeetingID, f.Reason)
	}
	return nil
}
