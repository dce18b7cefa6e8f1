// Package preflight verifies the working environment before the release
// workflow mutates anything. Every check is read-only: tool probes,
// HEAD ref lookup, and the gh authentication status query.
package preflight

import (
	"context"
	"fmt"
	"strings"

	"github.com/web-platform-dx/web-features-release/pkg/log"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

// CheckLevel represents the severity of a preflight check result.
type CheckLevel int

const (
	// LevelError indicates a failure that prevents the release workflow.
	LevelError CheckLevel = iota
	// LevelWarn indicates something worth noting that doesn't block.
	LevelWarn
	// LevelInfo indicates informational output.
	LevelInfo
)

// CheckResult is the outcome of a single preflight check.
type CheckResult struct {
	Name    string
	Level   CheckLevel
	Message string
	Error   error
}

// Check is a single preflight check.
type Check interface {
	// Name returns the check name.
	Name() string
	// Run executes the check.
	Run(ctx context.Context) CheckResult
}

// Config configures which checks a Checker runs.
type Config struct {
	// Runner executes the read-only probe commands.
	Runner runner.Runner

	// BaseBranch is the branch releases are expected to start from.
	// Empty skips the branch check.
	BaseBranch string

	// RepoDir is the working tree the branch check inspects.
	RepoDir string
}

// Checker runs a collection of preflight checks.
type Checker struct {
	checks []Check
}

// NewChecker assembles the release tool's preflight checks.
func NewChecker(cfg Config) *Checker {
	r := cfg.Runner
	c := &Checker{
		checks: []Check{
			&GitCheck{Runner: r},
			&NpmCheck{Runner: r},
			&GhAuthCheck{Runner: r},
			&JqCheck{Runner: r},
		},
	}
	if cfg.BaseBranch != "" {
		c.checks = append(c.checks, &BaseBranchCheck{
			Runner: r,
			Base:   cfg.BaseBranch,
			Dir:    cfg.RepoDir,
		})
	}
	return c
}

// Run executes all checks and returns an error if any of them failed at
// error level. Warnings are logged and do not block.
func (c *Checker) Run(ctx context.Context) error {
	log.Debug("running preflight checks", "count", len(c.checks))

	var failures []string

	for _, check := range c.checks {
		result := check.Run(ctx)

		switch result.Level {
		case LevelError:
			log.Error("preflight check failed", "check", result.Name, "message", result.Message)
			if result.Error != nil {
				failures = append(failures, fmt.Sprintf("%s: %s (%v)", result.Name, result.Message, result.Error))
			} else {
				failures = append(failures, fmt.Sprintf("%s: %s", result.Name, result.Message))
			}
		case LevelWarn:
			log.Warn("preflight check warning", "check", result.Name, "message", result.Message)
		case LevelInfo:
			log.Info("preflight check", "check", result.Name, "message", result.Message)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("preflight checks failed:\n  - %s", strings.Join(failures, "\n  - "))
	}

	log.Debug("preflight checks passed")
	return nil
}

// GitCheck verifies git is installed.
type GitCheck struct {
	Runner runner.Runner
}

func (c *GitCheck) Name() string {
	return "git"
}

func (c *GitCheck) Run(ctx context.Context) CheckResult {
	if _, err := c.Runner.LookPath("git"); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "git command not found. Install Git from https://git-scm.com/downloads",
			Error:   err,
		}
	}

	res, err := c.Runner.Run(ctx, "", "git", "--version")
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelWarn,
			Message: "git is installed but may not be working correctly",
			Error:   err,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: fmt.Sprintf("git is available (%s)", strings.TrimSpace(res.Stdout)),
	}
}

// NpmCheck verifies npm is installed.
type NpmCheck struct {
	Runner runner.Runner
}

func (c *NpmCheck) Name() string {
	return "npm"
}

func (c *NpmCheck) Run(ctx context.Context) CheckResult {
	if _, err := c.Runner.LookPath("npm"); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "npm command not found. Install Node.js from https://nodejs.org/",
			Error:   err,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: "npm is available",
	}
}

// GhAuthCheck verifies the gh CLI is installed and authenticated.
type GhAuthCheck struct {
	Runner runner.Runner
}

func (c *GhAuthCheck) Name() string {
	return "gh-auth"
}

func (c *GhAuthCheck) Run(ctx context.Context) CheckResult {
	if _, err := c.Runner.LookPath("gh"); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "gh command not found. Install the GitHub CLI from https://cli.github.com/",
			Error:   err,
		}
	}

	res, err := c.Runner.Run(ctx, "", "gh", "auth", "status")
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "gh is not authenticated. Run 'gh auth login' and try again.",
			Error:   err,
		}
	}

	log.Debug("gh auth status", "output", strings.TrimSpace(res.Stdout+res.Stderr))
	return CheckResult{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: "gh is installed and authenticated",
	}
}

// JqCheck verifies jq is installed.
type JqCheck struct {
	Runner runner.Runner
}

func (c *JqCheck) Name() string {
	return "jq"
}

func (c *JqCheck) Run(ctx context.Context) CheckResult {
	if _, err := c.Runner.LookPath("jq"); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelError,
			Message: "jq command not found. Install jq from https://jqlang.github.io/jq/download/",
			Error:   err,
		}
	}

	res, err := c.Runner.Run(ctx, "", "jq", "--version")
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelWarn,
			Message: "jq is installed but may not be working correctly",
			Error:   err,
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: fmt.Sprintf("jq is available (%s)", strings.TrimSpace(res.Stdout)),
	}
}

// BaseBranchCheck warns when the working tree is not on the expected
// base branch. A mismatch never blocks the release.
type BaseBranchCheck struct {
	Runner runner.Runner
	Base   string
	Dir    string
}

func (c *BaseBranchCheck) Name() string {
	return "base-branch"
}

func (c *BaseBranchCheck) Run(ctx context.Context) CheckResult {
	res, err := c.Runner.Run(ctx, c.Dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelWarn,
			Message: "could not determine the current branch",
			Error:   err,
		}
	}

	current := strings.TrimSpace(res.Stdout)
	if current != c.Base {
		return CheckResult{
			Name:    c.Name(),
			Level:   LevelWarn,
			Message: fmt.Sprintf("current branch is %q, expected %q", current, c.Base),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Level:   LevelInfo,
		Message: fmt.Sprintf("on base branch %q", c.Base),
	}
}
