package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
	"github.com/jordansepetys/AibaTS/internal/adapter/presenter"
)

var askLimit int

func init() {
	askCmd.Flags().IntVar(&askLimit, "limit", DefaultAskLimit, "Maximum results to return")
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <project> <question>",
	Short: "Ask a question about a project's meetings",
	Long: `Ask a natural-language question about a project's meetings.

The question is classified by intent (decision, action, risk, question,
status, discussion) and results are ranked accordingly, with excerpts
from the matched fields.

Examples:
  meetingsearch ask website-redesign "What did we decide about the logo?"
  meetingsearch ask website-redesign "What is Sarah working on?" --limit 3`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	c := mustWire()

	answer, err := c.searchService.Ask(cmd.Context(), args[0], args[1], askLimit)
	if err != nil {
		exitWithError(ExitError, "answering question: %v", err)
	}

	resp := presenter.ToAskResponse(answer)
	if !humanOutput {
		return outputJSON(resp)
	}

	printAnswerHuman(resp)
	return nil
}

func printAnswerHuman(resp *meeting.AskResponse) {
	fmt.Printf("Question: %s\n", resp.Question)
	fmt.Printf("Intent: %s", resp.Intent)
	if len(resp.Keywords) > 0 {
		fmt.Printf("  Keywords: %s", strings.Join(resp.Keywords, ", "))
	}
	if len(resp.People) > 0 {
		fmt.Printf("  People: %s", strings.Join(resp.People, ", "))
	}
	fmt.Println()
	fmt.Println()

	if len(resp.Results) == 0 {
		fmt.Println(resp.Message)
		return
	}

	for i, r := range resp.Results {
		fmt.Printf("[%d] %s (%s)  score %.1f\n", i+1, truncateString(r.MeetingName, SummaryNameLen), r.Date, r.Score)
		for _, ex := range r.Excerpts {
			fmt.Printf("    %s: %s\n", ex.Label, truncateString(ex.Text, ExcerptPrintLen))
		}
		fmt.Println()
	}

	if resp.MoreResults > 0 {
		fmt.Printf("...and %d more matching meetings\n", resp.MoreResults)
	}
}
