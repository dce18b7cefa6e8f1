package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Print the diff between the published and freshly built data files",
	Long: `Install the currently published web-features package into a temp
directory, build the working tree's package, pretty-print both generated
data files with jq, and print their unified diff to stdout.

An empty output means the published and built files are identical.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorkflow()
		if err != nil {
			return err
		}

		diff, err := w.Diff(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(diff)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
