package release

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the optional per-checkout config file.
const DefaultConfigPath = ".wf-release.yaml"

// Config is the explicit context threaded through every release step.
// All fields have working defaults; a checkout can override them in
// .wf-release.yaml.
type Config struct {
	// Repo is the owner/name the pull request is opened against.
	// TODO(release automation): switch the default to
	// web-platform-dx/web-features once the workflow is trusted there.
	Repo string `yaml:"repo"`

	// BaseBranch is the branch releases start from and target.
	BaseBranch string `yaml:"base_branch"`

	// Reviewer is the GitHub login requested as PR reviewer.
	Reviewer string `yaml:"reviewer"`

	// Package is the npm package name being released.
	Package string `yaml:"package"`

	// PackageDir is the package's directory within the working tree.
	PackageDir string `yaml:"package_dir"`

	// DistTag is the npm distribution tag the published artifact is
	// installed from when producing the diff.
	DistTag string `yaml:"dist_tag"`

	// DataFile is the generated data file compared across versions,
	// relative to the package root.
	DataFile string `yaml:"data_file"`

	// BuildScript is the npm script that regenerates DataFile.
	BuildScript string `yaml:"build_script"`

	// TemplatePath points at a PR description template file. Empty uses
	// the embedded default.
	TemplatePath string `yaml:"template_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Repo:        "jamesnw/wf-test",
		BaseBranch:  "main",
		Reviewer:    "ddbeck",
		Package:     "web-features",
		PackageDir:  "packages/web-features",
		DistTag:     "latest",
		DataFile:    "data.json",
		BuildScript: "build",
	}
}

// LoadConfig reads path and overlays it on the defaults. A missing file
// is not an error: the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
