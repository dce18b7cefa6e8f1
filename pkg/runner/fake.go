package runner

import (
	"context"
	"fmt"
)

// Call records one command executed through a Fake.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Response scripts the outcome of a command in a Fake.
type Response struct {
	Result Result
	Err    error
}

// Fake is a scripted Runner for tests. Commands are matched on the
// command name plus its first argument (e.g. "git checkout", "npm
// install", "diff -u"), which keeps stubs stable across temp-file paths
// in later arguments. Unmatched commands succeed with an empty Result.
type Fake struct {
	// Responses maps a command key to its scripted outcome.
	Responses map[string]Response

	// Missing marks tool names that LookPath should report as absent.
	Missing map[string]bool

	// Calls accumulates every command run, in order.
	Calls []Call
}

// NewFake returns an empty Fake where every command succeeds.
func NewFake() *Fake {
	return &Fake{
		Responses: map[string]Response{},
		Missing:   map[string]bool{},
	}
}

// Stub scripts the outcome for a command key ("name" or "name firstArg").
func (f *Fake) Stub(key string, res Result, err error) {
	f.Responses[key] = Response{Result: res, Err: err}
}

// Run records the call and returns the scripted response, if any.
func (f *Fake) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: args})

	if resp, ok := f.Responses[fakeKey(name, args)]; ok {
		return resp.Result, resp.Err
	}
	return Result{}, nil
}

// LookPath resolves every tool unless it is marked Missing.
func (f *Fake) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines renders the recorded calls for assertions.
func (f *Fake) CommandLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, CommandLine(c.Name, c.Args))
	}
	return lines
}

func fakeKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + args[0]
}
