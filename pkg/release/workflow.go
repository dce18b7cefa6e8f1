// Package release orchestrates the web-features release workflow:
// preflight checks, the published-vs-built data diff, and the release
// branch / version bump / pull request sequence. All external tools run
// through a runner.Runner; each step is fatal on failure and nothing is
// retried or rolled back.
package release

import (
	"errors"
	"time"

	"github.com/web-platform-dx/web-features-release/pkg/npm"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

// ErrNotImplemented signals a declared but unbuilt workflow capability.
// It is deliberate and fires regardless of input, distinct from
// incidental subprocess failures.
var ErrNotImplemented = errors.New("not implemented")

// Workflow executes release operations against one working tree.
type Workflow struct {
	Config Config
	Runner runner.Runner
	Npm    *npm.Client

	// Now supplies the timestamp for release branch names.
	Now func() time.Time
}

// New returns a Workflow over the given runner.
func New(cfg Config, r runner.Runner) *Workflow {
	return &Workflow{
		Config: cfg,
		Runner: r,
		Npm:    npm.NewClient(r),
		Now:    time.Now,
	}
}
