package vcs

import "context"

// Git issues the fixed set of commands forgekit proxies, always in Dir
type Git struct {
	Runner Runner
	Dir    string
}

// NewGit binds runner to the install root
func NewGit(runner Runner, dir string) *Git {
	return &Git{Runner: runner, Dir: dir}
}

func (g *Git) run(ctx context.Context, args ...string) Result {
	return g.Runner.Run(ctx, g.Dir, args...)
}

// Pull runs `git pull`
func (g *Git) Pull(ctx context.Context) Result {
	return g.run(ctx, "pull")
}

// StatusShort runs `git status --short`
func (g *Git) StatusShort(ctx context.Context) Result {
	return g.run(ctx, "status", "--short")
}

// Diff runs `git diff`
func (g *Git) Diff(ctx context.Context) Result {
	return g.run(ctx, "diff")
}

// AddAll runs `git add -A`
func (g *Git) AddAll(ctx context.Context) Result {
	return g.run(ctx, "add", "-A")
}

// Commit runs `git commit -m <message>`. The message is passed through as-is.
func (g *Git) Commit(ctx context.Context, message string) Result {
	return g.run(ctx, "commit", "-m", message)
}

// Push runs `git push`
func (g *Git) Push(ctx context.Context) Result {
	return g.run(ctx, "push")
}
