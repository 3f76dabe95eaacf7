package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultAskLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <project> <query>",
	Short: "Search a project's meetings by keyword",
	Long: `Search a project's meetings by keyword.

Same ranking as ask, but prints a compact result list without excerpts.

Examples:
  meetingsearch search website-redesign "logo colors"`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c := mustWire()

	answer, err := c.searchService.Ask(cmd.Context(), args[0], args[1], searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	resp := presenter.ToAskResponse(answer)
	if !humanOutput {
		return outputJSON(resp)
	}

	if len(resp.Results) == 0 {
		fmt.Println(resp.Message)
		return nil
	}

	fmt.Printf("Found %d meetings:\n\n", resp.TotalMatches)
	for i, r := range resp.Results {
		fmt.Printf("[%d] %s\n", i+1, r.MeetingID)
		fmt.Printf("    %s (%s)  score %.1f\n", truncateString(r.MeetingName, SummaryNameLen), r.Date, r.Score)
	}
	return nil
}
