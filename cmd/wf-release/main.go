package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/web-platform-dx/web-features-release/pkg/log"
	"github.com/web-platform-dx/web-features-release/pkg/release"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "wf-release",
	Short: "Prepare, inspect, and publish web-features package releases",
	Long: `wf-release sequences the external tools a web-features release needs:
git for branching and commits, npm for the version bump and build, jq and
diff for the generated-data comparison, and gh for the pull request.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(log.Level(logLevel))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", release.DefaultConfigPath,
		"Path to the release config file")
}

// loadWorkflow builds the release workflow from config and the real
// subprocess runner.
func loadWorkflow() (*release.Workflow, error) {
	cfg, err := release.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return release.New(cfg, runner.New()), nil
}

func main() {
	defer func() { _ = log.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
