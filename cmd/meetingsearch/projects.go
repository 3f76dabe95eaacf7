package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
)

func init() {
	rootCmd.AddCommand(projectsCmd)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects with a built index",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func runProjects(cmd *cobra.Command, args []string) error {
	c := mustWire()

	projects, err := c.indexService.ListProjects(cmd.Context())
	if err != nil {
		exitWithError(ExitError, "listing projects: %v", err)
	}
	if projects == nil {
		projects = []string{}
	}

	if !humanOutput {
		return outputJSON(meeting.ProjectListResponse{Projects: projects})
	}

	if len(projects) == 0 {
		fmt.Println("No indexed projects found")
		return nil
	}
	for _, p := range projects {
		fmt.Println(p)
	}
	return nil
}
