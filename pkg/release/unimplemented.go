package release

import (
	"context"
	"fmt"
)

// Update will rebase an existing release PR's branch, rebuild the
// generated data file, and commit the result. It is declared but not
// built yet; it always fails and performs no side effects.
func (w *Workflow) Update(ctx context.Context, pr string) error {
	return fmt.Errorf("update %s: %w", pr, ErrNotImplemented)
}

// Publish will run npm publish for a merged release PR. It is declared
// but not built yet; it always fails and performs no side effects.
func (w *Workflow) Publish(ctx context.Context, pr string) error {
	return fmt.Errorf("publish %s: %w", pr, ErrNotImplemented)
}
