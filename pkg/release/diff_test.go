package release

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/web-platform-dx/web-features-release/pkg/runner"
)

func newTestWorkflow(fake *runner.Fake) *Workflow {
	return New(DefaultConfig(), fake)
}

func TestUnifiedDiffWithRealTool(t *testing.T) {
	real := runner.New()
	if _, err := real.LookPath("diff"); err != nil {
		t.Skip("diff not installed")
	}
	ctx := context.Background()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("identical files produce an empty diff", func(t *testing.T) {
		a := write("same-a.json", "{\n  \"a\": 1\n}\n")
		b := write("same-b.json", "{\n  \"a\": 1\n}\n")

		got, err := unifiedDiff(ctx, real, a, b)
		if err != nil {
			t.Fatalf("unifiedDiff() error = %v", err)
		}
		if got != "" {
			t.Errorf("unifiedDiff() = %q, want empty", got)
		}
	})

	t.Run("changed value appears in unified format", func(t *testing.T) {
		a := write("old.json", "{\n  \"a\": 1\n}\n")
		b := write("new.json", "{\n  \"a\": 2\n}\n")

		got, err := unifiedDiff(ctx, real, a, b)
		if err != nil {
			t.Fatalf("unifiedDiff() error = %v", err)
		}
		if !strings.Contains(got, "-  \"a\": 1") || !strings.Contains(got, "+  \"a\": 2") {
			t.Errorf("unifiedDiff() = %q, want removed 1 and added 2 lines", got)
		}
		if !strings.Contains(got, "@@") {
			t.Errorf("unifiedDiff() = %q, want unified hunk markers", got)
		}
	})

	t.Run("missing file is a real failure", func(t *testing.T) {
		a := write("exists.json", "{}\n")
		if _, err := unifiedDiff(ctx, real, a, filepath.Join(dir, "missing.json")); err == nil {
			t.Error("unifiedDiff() error = nil, want failure for diff status 2")
		}
	})
}

func TestUnifiedDiffExitCodeConvention(t *testing.T) {
	ctx := context.Background()

	t.Run("status 1 is differences, not failure", func(t *testing.T) {
		fake := runner.NewFake()
		fake.Stub("diff -u", runner.Result{Stdout: "--- a\n+++ b\n", ExitCode: 1},
			errors.New("diff exited with status 1"))

		got, err := unifiedDiff(ctx, fake, "a", "b")
		if err != nil {
			t.Fatalf("unifiedDiff() error = %v, want nil for status 1", err)
		}
		if got != "--- a\n+++ b\n" {
			t.Errorf("unifiedDiff() = %q, want captured stdout", got)
		}
	})

	t.Run("status 2 propagates", func(t *testing.T) {
		fake := runner.NewFake()
		fake.Stub("diff -u", runner.Result{ExitCode: 2}, errors.New("diff exited with status 2"))

		if _, err := unifiedDiff(ctx, fake, "a", "b"); err == nil {
			t.Error("unifiedDiff() error = nil, want propagated failure")
		}
	})
}

func TestDiffSequencesExternalTools(t *testing.T) {
	fake := runner.NewFake()
	fake.Stub("jq .", runner.Result{Stdout: "{\n  \"a\": 1\n}\n"}, nil)
	fake.Stub("diff -u", runner.Result{Stdout: "the diff\n", ExitCode: 1},
		errors.New("diff exited with status 1"))

	w := newTestWorkflow(fake)
	got, err := w.Diff(context.Background())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if got != "the diff\n" {
		t.Errorf("Diff() = %q, want diff output", got)
	}

	want := []string{"npm install", "jq .", "npm run", "jq .", "diff -u"}
	lines := fake.CommandLines()
	if len(lines) != len(want) {
		t.Fatalf("ran %d commands (%v), want %d", len(lines), lines, len(want))
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("command %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}

	// The published artifact must be installed from the configured
	// dist-tag into an isolated prefix.
	install := fake.Calls[0]
	if install.Args[1] != "web-features@latest" {
		t.Errorf("install spec = %q, want web-features@latest", install.Args[1])
	}
	if install.Args[2] != "--prefix" {
		t.Errorf("install args = %v, want --prefix flag", install.Args)
	}
}

func TestDiffInstallFailureIsFatal(t *testing.T) {
	fake := runner.NewFake()
	fake.Stub("npm install", runner.Result{ExitCode: 1}, errors.New("registry unreachable"))

	w := newTestWorkflow(fake)
	if _, err := w.Diff(context.Background()); err == nil {
		t.Fatal("Diff() error = nil, want install failure")
	}

	for _, line := range fake.CommandLines() {
		if strings.HasPrefix(line, "diff") || strings.HasPrefix(line, "npm run") {
			t.Errorf("command %q ran after the install failure", line)
		}
	}
}

func TestDiffBuildFailureIsFatal(t *testing.T) {
	fake := runner.NewFake()
	fake.Stub("jq .", runner.Result{Stdout: "{}\n"}, nil)
	fake.Stub("npm run", runner.Result{ExitCode: 1}, errors.New("build broke"))

	w := newTestWorkflow(fake)
	if _, err := w.Diff(context.Background()); err == nil {
		t.Fatal("Diff() error = nil, want build failure")
	}

	for _, line := range fake.CommandLines() {
		if strings.HasPrefix(line, "diff") {
			t.Errorf("diff ran after the build failure: %q", line)
		}
	}
}
