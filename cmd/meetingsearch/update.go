package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <project> <meeting-id> <notes-path> [transcript-path]",
	Short: "Upsert one meeting into a project's index",
	Args:  cobra.RangeArgs(3, 4),
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	c := mustWire()

	transcriptPath := ""
	if len(args) == 4 {
		transcriptPath = args[3]
	}

	updated, err := c.indexService.UpdateSingle(cmd.Context(), args[0], args[1], args[2], transcriptPath)
	if err != nil {
		exitWithError(ExitError, "updating index: %v", err)
	}

	if !humanOutput {
		return outputJSON(meeting.UpdateResponse{MeetingID: args[1], Updated: updated})
	}

	if updated {
		fmt.Printf("Indexed %s\n", args[1])
	} else {
		fmt.Printf("Skipped %s: artifact could not be read\n", args[1])
	}
	return nil
}
