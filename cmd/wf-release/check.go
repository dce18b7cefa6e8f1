package main

import (
	"github.com/spf13/cobra"
	"github.com/web-platform-dx/web-features-release/pkg/preflight"
	"github.com/web-platform-dx/web-features-release/pkg/release"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the release preflight checks without changing anything",
	Long: `Verify the working environment: git, npm, jq, an authenticated gh
CLI, and whether the working tree is on the base branch. All checks are
read-only. Being off the base branch is a warning; a missing or
unauthenticated tool fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := release.LoadConfig(configPath)
		if err != nil {
			return err
		}

		checker := preflight.NewChecker(preflight.Config{
			Runner:     runner.New(),
			BaseBranch: cfg.BaseBranch,
		})
		return checker.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
