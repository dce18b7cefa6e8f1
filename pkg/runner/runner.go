// Package runner provides a substitutable subprocess runner.
// Every external tool the release workflow touches (git, gh, npm, jq,
// diff) goes through the Runner interface, so orchestration logic can be
// tested against a scripted fake without spawning processes.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result captures the outcome of a completed subprocess.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status. It is populated even when the
	// command exits non-zero, so callers can recognize conventions like
	// diff's "status 1 means differences were found".
	ExitCode int
}

// Runner executes external commands.
type Runner interface {
	// Run executes name with args in dir (the process working directory
	// when dir is empty) and waits for it to exit. A non-zero exit status
	// yields a non-nil error alongside a populated Result.
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)

	// LookPath reports where name resolves on PATH, or an error if it is
	// not installed.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec. It is the only Runner used
// outside of tests.
type ExecRunner struct{}

// New returns a Runner backed by os/exec.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures its output. The subprocess
// inherits the parent environment; stdin is not connected.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("%s exited with status %d: %w: %s",
				CommandLine(name, args), res.ExitCode, err, strings.TrimSpace(res.Stderr))
		}
		// The command never ran (not found, context canceled, ...).
		res.ExitCode = -1
		return res, fmt.Errorf("failed to run %s: %w", CommandLine(name, args), err)
	}

	return res, nil
}

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandLine renders a command for log and error messages.
func CommandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
