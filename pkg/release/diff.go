package release

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/web-platform-dx/web-features-release/pkg/log"
	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

// Diff produces a unified diff between the currently published package's
// generated data file and the one built from the working tree. An empty
// string means the two are identical.
//
// The temp directory holding the installed package and both
// pretty-printed files is left in place so a failed or surprising diff
// can be inspected afterwards.
func (w *Workflow) Diff(ctx context.Context) (string, error) {
	tmpDir, err := os.MkdirTemp("", "wf-release-diff-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	log.Debug("diff workspace", "dir", tmpDir)

	pkgSpec := w.Config.Package + "@" + w.Config.DistTag
	if err := w.Npm.Install(ctx, tmpDir, pkgSpec); err != nil {
		return "", err
	}

	published := filepath.Join(tmpDir, "node_modules", w.Config.Package, w.Config.DataFile)
	publishedPretty, err := w.prettyPrint(ctx, published, filepath.Join(tmpDir, "published.pretty.json"))
	if err != nil {
		return "", err
	}

	if err := w.Npm.RunScript(ctx, w.Config.PackageDir, w.Config.BuildScript); err != nil {
		return "", err
	}

	built := filepath.Join(w.Config.PackageDir, w.Config.DataFile)
	builtPretty, err := w.prettyPrint(ctx, built, filepath.Join(tmpDir, "built.pretty.json"))
	if err != nil {
		return "", err
	}

	return unifiedDiff(ctx, w.Runner, publishedPretty, builtPretty)
}

// unifiedDiff compares two files with diff -u. diff exits 1 when the
// files differ; that is the result, not a failure. Any other non-zero
// status propagates.
func unifiedDiff(ctx context.Context, r runner.Runner, a, b string) (string, error) {
	res, err := r.Run(ctx, "", "diff", "-u", a, b)
	if err != nil {
		if res.ExitCode == 1 {
			return res.Stdout, nil
		}
		return "", fmt.Errorf("diff failed: %w", err)
	}
	return res.Stdout, nil
}

// prettyPrint normalizes a JSON file through jq and persists the result
// to dst, so the diff is stable against formatting differences.
func (w *Workflow) prettyPrint(ctx context.Context, src, dst string) (string, error) {
	res, err := w.Runner.Run(ctx, "", "jq", ".", src)
	if err != nil {
		return "", fmt.Errorf("failed to pretty-print %s: %w", src, err)
	}
	if err := os.WriteFile(dst, []byte(res.Stdout), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return dst, nil
}
