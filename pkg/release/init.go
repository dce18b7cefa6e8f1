package release

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/web-platform-dx/web-features-release/pkg/log"
	"github.com/web-platform-dx/web-features-release/pkg/npm"
	"github.com/web-platform-dx/web-features-release/pkg/preflight"
)

// Init runs the full release-preparation sequence: preflight, diff,
// release branch, version bump, commit, push, and pull request. The
// first failing step aborts the rest; any branch or partial changes
// already made are left in place for manual recovery.
func (w *Workflow) Init(ctx context.Context, level npm.Level) error {
	checker := preflight.NewChecker(preflight.Config{
		Runner:     w.Runner,
		BaseBranch: w.Config.BaseBranch,
	})
	if err := checker.Run(ctx); err != nil {
		return err
	}

	diff, err := w.Diff(ctx)
	if err != nil {
		return err
	}
	if diff == "" {
		log.Warn("published and built data files are identical")
	}

	branch := BranchName(w.Now())
	log.Info("creating release branch", "branch", branch)
	if _, err := w.Runner.Run(ctx, "", "git", "checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create release branch %s: %w", branch, err)
	}

	if _, err := w.Npm.Version(ctx, w.Config.PackageDir, level); err != nil {
		return err
	}

	// Read the manifest back rather than trusting npm's stdout.
	manifest, err := npm.ReadManifest(w.Config.PackageDir)
	if err != nil {
		return err
	}
	version := manifest.Version

	message := fmt.Sprintf("Increment %s version to v%s", level, version)
	log.Info("committing version bump", "message", message)
	if _, err := w.Runner.Run(ctx, "", "git", "commit", "--all", "--message", message); err != nil {
		return fmt.Errorf("failed to commit version bump: %w", err)
	}

	if _, err := w.Runner.Run(ctx, "", "git", "push", "--set-upstream", "origin", branch); err != nil {
		return fmt.Errorf("failed to push %s: %w", branch, err)
	}

	bodyPath, err := w.writePRBody(diff)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("📦 Release %s@%s", w.Config.Package, version)
	res, err := w.Runner.Run(ctx, "", "gh", "pr", "create",
		"--title", title,
		"--reviewer", w.Config.Reviewer,
		"--base", w.Config.BaseBranch,
		"--head", branch,
		"--body-file", bodyPath,
		"--repo", w.Config.Repo,
	)
	if err != nil {
		return fmt.Errorf("failed to create pull request: %w", err)
	}

	log.Info("pull request created", "title", title, "url", strings.TrimSpace(res.Stdout))
	return nil
}

// writePRBody copies the PR description template to a fresh temp file
// and appends the diff fenced as a diff code block. The template itself
// is never mutated.
func (w *Workflow) writePRBody(diff string) (string, error) {
	template, err := w.prTemplate()
	if err != nil {
		return "", err
	}

	var body strings.Builder
	body.WriteString(template)
	if !strings.HasSuffix(template, "\n") {
		body.WriteString("\n")
	}
	body.WriteString("\n```diff\n")
	body.WriteString(diff)
	if diff != "" && !strings.HasSuffix(diff, "\n") {
		body.WriteString("\n")
	}
	body.WriteString("```\n")

	f, err := os.CreateTemp("", "wf-release-pr-body-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create PR body file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(body.String()); err != nil {
		return "", fmt.Errorf("failed to write PR body file: %w", err)
	}
	return f.Name(), nil
}

func (w *Workflow) prTemplate() (string, error) {
	if w.Config.TemplatePath == "" {
		return defaultPRTemplate, nil
	}
	data, err := os.ReadFile(w.Config.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read PR template %s: %w", w.Config.TemplatePath, err)
	}
	return string(data), nil
}
