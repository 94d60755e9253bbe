// Package link manages the .claude/skills and .claude/commands symlinks that
// connect a project to the forgekit install root.
//
// A path is only ever replaced or removed when it is itself a symlink. Any
// other file or directory at a link path is reported back as a conflict and
// left untouched.
package link

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgekit/forgekit/internal/config"
)

// Outcome describes what Install or Remove did to a link path
type Outcome string

const (
	Linked   Outcome = "linked"   // symlink created where nothing existed
	Replaced Outcome = "replaced" // existing symlink removed and recreated
	Conflict Outcome = "conflict" // non-symlink in the way, nothing changed
	Removed  Outcome = "removed"  // symlink deleted
	Skipped  Outcome = "skipped"  // not a symlink, nothing changed
)

// Target is one member of the link pair
type Target struct {
	Name   string // "skills" or "commands"
	Source string // <install root>/<name>
	Dest   string // <project>/.claude/<name>
}

// Rel returns the destination relative to the project, e.g. ".claude/skills"
func (t Target) Rel() string {
	return filepath.Join(config.ClaudeDirName, t.Name)
}

// Targets returns the link pair in a fixed order: skills, then commands.
// installRoot may be empty for operations that only look at destinations.
func Targets(installRoot, projectDir string) []Target {
	claudeDir := config.ClaudeDir(projectDir)
	names := []string{config.SkillsDirName, config.CommandsDirName}

	targets := make([]Target, 0, len(names))
	for _, name := range names {
		t := Target{
			Name: name,
			Dest: filepath.Join(claudeDir, name),
		}
		if installRoot != "" {
			t.Source = filepath.Join(installRoot, name)
		}
		targets = append(targets, t)
	}
	return targets
}

// EnsureClaudeDir creates <project>/.claude if needed
func EnsureClaudeDir(projectDir string) error {
	return os.MkdirAll(config.ClaudeDir(projectDir), 0755)
}

// IsSymlink reports whether path exists and is a symlink, without following it.
// Dangling links count as present.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// Install points t.Dest at t.Source
func Install(t Target) (Outcome, error) {
	if t.Source == "" {
		return "", fmt.Errorf("no source for %s", t.Name)
	}

	outcome := Linked
	info, err := os.Lstat(t.Dest)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		if err := os.Remove(t.Dest); err != nil {
			return "", fmt.Errorf("removing existing %s symlink: %w", t.Name, err)
		}
		outcome = Replaced
	case err == nil:
		return Conflict, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("inspecting %s: %w", t.Dest, err)
	}

	if err := os.Symlink(t.Source, t.Dest); err != nil {
		return "", fmt.Errorf("linking %s: %w", t.Rel(), err)
	}
	return outcome, nil
}

// Remove deletes t.Dest if and only if it is a symlink
func Remove(t Target) (Outcome, error) {
	if !IsSymlink(t.Dest) {
		return Skipped, nil
	}
	if err := os.Remove(t.Dest); err != nil {
		return "", fmt.Errorf("removing %s: %w", t.Rel(), err)
	}
	return Removed, nil
}

// State is a snapshot of one link path
type State struct {
	Exists    bool   // something is at Dest
	IsSymlink bool   // Dest is a symlink
	LinkTo    string // raw symlink target
	Resolves  bool   // the symlink target exists
	Expected  bool   // the symlink resolves to Source
}

// Inspect reports what is at t.Dest without modifying anything
func Inspect(t Target) State {
	var s State

	info, err := os.Lstat(t.Dest)
	if err != nil {
		return s
	}
	s.Exists = true
	if info.Mode()&os.ModeSymlink == 0 {
		return s
	}
	s.IsSymlink = true

	if linkTo, err := os.Readlink(t.Dest); err == nil {
		s.LinkTo = linkTo
	}

	resolved, err := filepath.EvalSymlinks(t.Dest)
	if err != nil {
		return s
	}
	s.Resolves = true

	if t.Source != "" {
		if want, err := filepath.EvalSymlinks(t.Source); err == nil {
			s.Expected = resolved == want
		}
	}
	return s
}
