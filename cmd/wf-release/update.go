package main

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <pr>",
	Short: "Rebase and rebuild an existing release PR (not implemented)",
	Long: `Rebase the release pull request's branch onto the base branch,
rebuild the generated data file, and commit the result.

Not implemented yet: this command always fails so the gap is explicit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow()
		if err != nil {
			return err
		}
		return w.Update(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
