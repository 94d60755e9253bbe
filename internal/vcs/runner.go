// Package vcs runs the version-control executable against the forgekit
// install root and inspects that repository with go-git.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after a cancelled
// process is killed
const waitDelay = 2 * time.Second

// Result is the outcome of one version-control invocation
type Result struct {
	Args     []string
	ExitCode int // -1 when the process could not be started
	Stdout   string
	Stderr   string
	Err      error // start failure or context cancellation; nil for a plain non-zero exit
}

// OK reports whether the command started and exited with status 0
func (r Result) OK() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Text is what gets shown to the user: stdout, else stderr, else the start error
func (r Result) Text() string {
	if r.Stdout != "" {
		return r.Stdout
	}
	if r.Stderr != "" {
		return r.Stderr
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// Failure describes a non-OK result, or returns "" when r is OK
func (r Result) Failure() string {
	if r.OK() {
		return ""
	}
	cmd := strings.Join(r.Args, " ")
	if r.Err != nil {
		return fmt.Sprintf("git %s failed: %v", cmd, r.Err)
	}
	return fmt.Sprintf("git %s exited with status %d", cmd, r.ExitCode)
}

// Runner executes a version-control command with dir as its working directory
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) Result
}

// ExecRunner runs a real executable
type ExecRunner struct {
	Binary string
	Logger *slog.Logger
}

// NewExecRunner returns a runner for binary, logging through logger
func NewExecRunner(binary string, logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{Binary: binary, Logger: logger}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) Result {
	res := Result{Args: args}

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err
		if ctx.Err() != nil {
			res.Err = ctx.Err()
		}
	}

	r.Logger.Debug("vcs command",
		"binary", r.Binary,
		"args", args,
		"dir", dir,
		"exit_code", res.ExitCode,
		"stdout_bytes", len(res.Stdout),
		"stderr_bytes", len(res.Stderr),
	)
	return res
}
