package github

import (
	"context"
	"os"
	"strings"

	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

// ResolveToken finds a GitHub API token: GITHUB_TOKEN, then GH_TOKEN,
// then whatever the gh CLI has stored. An empty result means no token is
// available; callers may still proceed unauthenticated.
func ResolveToken(ctx context.Context, r runner.Runner) string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	if _, err := r.LookPath("gh"); err != nil {
		return ""
	}
	res, err := r.Run(ctx, "", "gh", "auth", "token")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}
