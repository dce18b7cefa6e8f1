package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/web-platform-dx/web-features-release/pkg/github"
	"github.com/web-platform-dx/web-features-release/pkg/release"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List open release pull requests",
	Long: `List open pull requests on the target repository whose head branch
was created by "wf-release init" (release-<timestamp>). Use the PR number
with the update and publish subcommands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := release.LoadConfig(configPath)
		if err != nil {
			return err
		}

		owner, repo, err := github.SplitRepo(cfg.Repo)
		if err != nil {
			return err
		}

		r := runner.New()
		client, err := github.NewClient(github.ResolveToken(cmd.Context(), r))
		if err != nil {
			return err
		}

		prs, err := client.ListReleasePRs(cmd.Context(), owner, repo)
		if err != nil {
			return err
		}

		if len(prs) == 0 {
			fmt.Printf("no open release pull requests on %s\n", cfg.Repo)
			return nil
		}
		for _, pr := range prs {
			fmt.Printf("#%d\t%s\t%s\t%s\n", pr.Number, pr.HeadRef, pr.Title, pr.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
