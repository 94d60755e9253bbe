package vcs

import (
	"context"
	"strings"
)

// Call is one recorded FakeRunner invocation
type Call struct {
	Dir  string
	Args []string
}

// FakeRunner records invocations and replays canned results keyed by the
// space-joined argument list. Unknown commands succeed with no output.
type FakeRunner struct {
	Calls   []Call
	Results map[string]Result
}

// NewFakeRunner returns an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Results: make(map[string]Result)}
}

// On registers the result returned for args
func (f *FakeRunner) On(res Result, args ...string) *FakeRunner {
	res.Args = args
	f.Results[strings.Join(args, " ")] = res
	return f
}

// Run implements Runner
func (f *FakeRunner) Run(_ context.Context, dir string, args ...string) Result {
	f.Calls = append(f.Calls, Call{Dir: dir, Args: args})
	if res, ok := f.Results[strings.Join(args, " ")]; ok {
		return res
	}
	return Result{Args: args}
}

// Commands returns the recorded argument lists, joined with spaces
func (f *FakeRunner) Commands() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, strings.Join(c.Args, " "))
	}
	return out
}
