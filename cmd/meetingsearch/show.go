package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <project> <meeting-id>",
	Short: "Show one indexed meeting in full",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	c := mustWire()

	record, err := c.searchService.GetMeeting(cmd.Context(), args[0], args[1])
	if err != nil {
		exitWithError(ExitError, "looking up meeting: %v", err)
	}

	resp := presenter.ToMeetingResponse(record)
	if !humanOutput {
		return outputJSON(resp)
	}

	fmt.Printf("%s\n%s  %s  %d words\n\n", resp.MeetingName, resp.MeetingID, resp.Date, resp.WordCount)
	printSection("Decisions", resp.Decisions)
	printSection("Action Items", resp.ActionItems)
	printSection("Risks", resp.Risks)
	printSection("Open Questions", resp.OpenQuestions)
	printSection("Keywords", resp.Keywords)
	return nil
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}
