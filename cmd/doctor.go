package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/config"
	"github.com/forgekit/forgekit/internal/inventory"
	"github.com/forgekit/forgekit/internal/link"
	"github.com/forgekit/forgekit/internal/ui"
	"github.com/forgekit/forgekit/internal/vcs"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the install root and project links",
		Long: `Verify that ForgeKit is set up correctly.

Checks that git is available, that the install root has skills/ and
commands/, that the project's symlinks point at them, and that the
.forgekit marker matches the current install root.

Exits 0 even when problems are found, unless --strict is given.`,
		Args: cobra.NoArgs,
		RunE: a.run(runDoctor),
	}
}

// diagnosis is one doctor check
type diagnosis struct {
	ok      bool
	message string
	hint    string
}

func runDoctor(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.SectionHeader("Diagnosing"))
	fmt.Fprintln(out)

	var checks []diagnosis
	checks = append(checks, checkGit(a.settings.GitBinary))
	checks = append(checks, checkInstallRoot(a.settings)...)
	checks = append(checks, checkLinks(a.settings)...)
	checks = append(checks, checkMarker(a.settings))

	problems := 0
	for _, c := range checks {
		fmt.Fprintln(out, ui.Check(c.ok, c.message))
		if !c.ok {
			problems++
			if c.hint != "" {
				fmt.Fprintln(out, ui.RenderMuted("      "+c.hint))
			}
		}
	}

	fmt.Fprintln(out)
	if problems == 0 {
		fmt.Fprintln(out, ui.SuccessLine("All checks passed"))
		return nil
	}

	fmt.Fprintln(out, ui.WarningLine(fmt.Sprintf("%d problem(s) found", problems)))
	if a.settings.Strict {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	return nil
}

func checkGit(binary string) diagnosis {
	path, err := exec.LookPath(binary)
	if err != nil {
		return diagnosis{
			message: fmt.Sprintf("git executable %q not found", binary),
			hint:    "install git or set `git:` in the forgekit config",
		}
	}
	return diagnosis{ok: true, message: "git: " + path}
}

func checkInstallRoot(s *config.Settings) []diagnosis {
	root, err := s.RequireRoot()
	if err != nil {
		return []diagnosis{{
			message: "install root: " + err.Error(),
			hint:    "pass --root, set $" + config.RootEnv + ", or set install_path in the config",
		}}
	}

	checks := []diagnosis{{ok: true, message: fmt.Sprintf("install root: %s (from %s)", root, s.RootSource)}}

	for _, name := range []string{config.SkillsDirName, config.CommandsDirName} {
		dir := filepath.Join(root, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			checks = append(checks, diagnosis{message: fmt.Sprintf("%s/ missing from install root", name)})
			continue
		}
		checks = append(checks, diagnosis{ok: true, message: fmt.Sprintf("%s/ present", name)})
	}

	if inv, err := inventory.Scan(root); err == nil {
		checks = append(checks, diagnosis{
			ok:      !inv.Empty(),
			message: "content: " + inv.String(),
			hint:    "add skills/<name>/SKILL.md or commands/<name>.md",
		})
	}

	if info, err := vcs.Describe(root); err == nil {
		checks = append(checks, diagnosis{ok: true, message: "repository: " + info.String()})
	} else if errors.Is(err, vcs.ErrNotRepository) {
		checks = append(checks, diagnosis{
			message: "install root is not a git repository",
			hint:    "update, diff, commit and push will not work",
		})
	} else {
		checks = append(checks, diagnosis{message: "repository: " + err.Error()})
	}

	return checks
}

func checkLinks(s *config.Settings) []diagnosis {
	var checks []diagnosis
	for _, t := range link.Targets(s.InstallRoot, s.ProjectDir) {
		st := link.Inspect(t)
		switch {
		case !st.Exists:
			checks = append(checks, diagnosis{
				message: fmt.Sprintf("%s not linked", t.Rel()),
				hint:    "run forgekit init",
			})
		case !st.IsSymlink:
			checks = append(checks, diagnosis{
				message: fmt.Sprintf("%s is a regular file or directory", t.Rel()),
				hint:    "move it aside, then run forgekit init",
			})
		case !st.Resolves:
			checks = append(checks, diagnosis{
				message: fmt.Sprintf("%s is a dangling symlink -> %s", t.Rel(), st.LinkTo),
				hint:    "run forgekit init",
			})
		case t.Source != "" && !st.Expected:
			checks = append(checks, diagnosis{
				message: fmt.Sprintf("%s points to %s, not %s", t.Rel(), st.LinkTo, t.Source),
				hint:    "run forgekit init to relink",
			})
		default:
			checks = append(checks, diagnosis{ok: true, message: fmt.Sprintf("%s -> %s", t.Rel(), st.LinkTo)})
		}
	}
	return checks
}

func checkMarker(s *config.Settings) diagnosis {
	m, err := config.ReadMarker(s.ProjectDir)
	switch {
	case errors.Is(err, config.ErrNoMarker):
		return diagnosis{message: config.MarkerFile + " marker missing", hint: "run forgekit init"}
	case err != nil:
		return diagnosis{message: fmt.Sprintf("%s unreadable: %v", config.MarkerFile, err)}
	case s.InstallRoot != "" && m.InstallPath != s.InstallRoot:
		return diagnosis{
			message: fmt.Sprintf("%s records %s, current root is %s", config.MarkerFile, m.InstallPath, s.InstallRoot),
			hint:    "run forgekit init",
		}
	}
	return diagnosis{ok: true, message: fmt.Sprintf("%s marker v%s", config.MarkerFile, m.Version)}
}
