package main

import (
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <pr>",
	Short: "Publish the package for a merged release PR (not implemented)",
	Long: `Run npm publish for a merged release pull request.

Not implemented yet: this command always fails so the gap is explicit.
Publishing still happens manually.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow()
		if err != nil {
			return err
		}
		return w.Publish(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
