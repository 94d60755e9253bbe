// Package inventory counts the skills and commands shipped in an install root.
package inventory

import (
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Patterns, relative to the install root
const (
	SkillPattern   = "skills/**/SKILL.md"
	CommandPattern = "commands/**/*.md"
)

// Inventory lists what an install root provides
type Inventory struct {
	Skills   []string // skill directory names, e.g. "tdd" or "review/security"
	Commands []string // command paths without the .md suffix, e.g. "review"
}

// String renders "3 skills, 5 commands"
func (inv Inventory) String() string {
	return fmt.Sprintf("%d skills, %d commands", len(inv.Skills), len(inv.Commands))
}

// Empty reports whether neither subtree has content
func (inv Inventory) Empty() bool {
	return len(inv.Skills) == 0 && len(inv.Commands) == 0
}

// Scan globs the install root. A missing subtree contributes nothing.
func Scan(root string) (Inventory, error) {
	var inv Inventory
	fsys := os.DirFS(root)

	skills, err := doublestar.Glob(fsys, SkillPattern)
	if err != nil {
		return inv, fmt.Errorf("scanning skills: %w", err)
	}
	for _, match := range skills {
		dir := path.Dir(match)
		if dir == "skills" {
			continue // a SKILL.md directly under skills/ is not a skill
		}
		inv.Skills = append(inv.Skills, dir[len("skills/"):])
	}

	commands, err := doublestar.Glob(fsys, CommandPattern)
	if err != nil {
		return inv, fmt.Errorf("scanning commands: %w", err)
	}
	for _, match := range commands {
		name := match[len("commands/"):]
		inv.Commands = append(inv.Commands, name[:len(name)-len(".md")])
	}

	sort.Strings(inv.Skills)
	sort.Strings(inv.Commands)
	return inv, nil
}
