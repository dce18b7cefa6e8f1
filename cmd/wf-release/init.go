package main

import (
	"github.com/spf13/cobra"
	"github.com/web-platform-dx/web-features-release/pkg/npm"
)

var semverLevel string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a release branch, bump the version, and open the release PR",
	Long: `Prepare a web-features release end to end:

preflight checks, a diff of the published data.json against the freshly
built one, a timestamped release branch, the npm version bump, a commit
and push, and finally a pull request with the diff in its description.

The first failing step aborts the rest. Nothing is rolled back; a branch
created before a later failure is left in place for manual recovery.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := npm.ParseLevel(semverLevel)
		if err != nil {
			return err
		}

		w, err := loadWorkflow()
		if err != nil {
			return err
		}
		return w.Init(cmd.Context(), level)
	},
}

func init() {
	initCmd.Flags().StringVar(&semverLevel, "semver-level", "patch",
		"Version increment: major, minor, patch, or prerelease")
	rootCmd.AddCommand(initCmd)
}
