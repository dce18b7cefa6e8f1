// Package npm wraps the npm CLI operations the release workflow needs:
// installing a published package into a prefix, bumping the manifest
// version, and running the package build script.
package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/web-platform-dx/web-features-release/pkg/log"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

// Level is a semantic-versioning increment level accepted by npm version.
type Level string

const (
	LevelMajor      Level = "major"
	LevelMinor      Level = "minor"
	LevelPatch      Level = "patch"
	LevelPrerelease Level = "prerelease"
)

// Levels lists the accepted semver levels, in decreasing order of impact.
var Levels = []Level{LevelMajor, LevelMinor, LevelPatch, LevelPrerelease}

// ParseLevel validates a semver level string.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if s == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid semver level %q (expected one of: major, minor, patch, prerelease)", s)
}

// Manifest is the subset of package.json the workflow reads back.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Client runs npm commands through a Runner.
type Client struct {
	Runner runner.Runner
}

// NewClient returns an npm client using the given runner.
func NewClient(r runner.Runner) *Client {
	return &Client{Runner: r}
}

// Install installs pkgSpec (e.g. "web-features@latest") into prefix,
// leaving the published artifact unmodified under
// <prefix>/node_modules/<name>.
func (c *Client) Install(ctx context.Context, prefix, pkgSpec string) error {
	log.Debug("installing published package", "spec", pkgSpec, "prefix", prefix)
	if _, err := c.Runner.Run(ctx, "", "npm", "install", pkgSpec, "--prefix", prefix); err != nil {
		return fmt.Errorf("npm install %s failed: %w", pkgSpec, err)
	}
	return nil
}

// Version bumps the manifest version in dir by the given level without
// creating a git tag. It returns the new version string as reported by
// npm (without the leading "v").
func (c *Client) Version(ctx context.Context, dir string, level Level) (string, error) {
	log.Debug("bumping package version", "dir", dir, "level", level)
	res, err := c.Runner.Run(ctx, dir, "npm", "version", string(level), "--no-git-tag-version")
	if err != nil {
		return "", fmt.Errorf("npm version %s failed: %w", level, err)
	}
	return strings.TrimPrefix(strings.TrimSpace(res.Stdout), "v"), nil
}

// RunScript runs an npm script (e.g. "build") in dir.
func (c *Client) RunScript(ctx context.Context, dir, script string) error {
	log.Debug("running npm script", "dir", dir, "script", script)
	if _, err := c.Runner.Run(ctx, dir, "npm", "run", script); err != nil {
		return fmt.Errorf("npm run %s failed: %w", script, err)
	}
	return nil
}

// Publish is not implemented; publishing still happens manually.
// TODO(release automation): wire this to "npm publish" once the publish
// subcommand is designed.
func (c *Client) Publish(ctx context.Context, dir string) error {
	return fmt.Errorf("npm publish: not implemented")
}

// ReadManifest reads the package.json in dir.
func ReadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if m.Version == "" {
		return Manifest{}, fmt.Errorf("manifest %s has no version field", path)
	}
	return m, nil
}
