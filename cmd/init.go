package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/config"
	"github.com/forgekit/forgekit/internal/link"
	"github.com/forgekit/forgekit/internal/ui"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize forgekit in current project",
		Long: `Link the ForgeKit skills and commands into the current project.

Creates .claude/ if needed, then:
  .claude/skills    -> <install root>/skills
  .claude/commands  -> <install root>/commands

Existing symlinks are replaced. A real file or directory at either path is
left alone with a warning. A .forgekit marker recording the version and
install root is always written.

Examples:
  forgekit init
  forgekit init -C ../other-project`,
		Args: cobra.NoArgs,
		RunE: a.run(runInit),
	}
}

func runInit(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := a.settings.RequireRoot()
	if err != nil {
		return err
	}
	project := a.settings.ProjectDir

	if err := link.EnsureClaudeDir(project); err != nil {
		return fmt.Errorf("failed to create .claude directory: %w", err)
	}

	for _, t := range link.Targets(root, project) {
		if _, err := os.Stat(t.Source); err != nil {
			fmt.Fprintln(out, ui.WarningLine(fmt.Sprintf("%s does not exist; the link will dangle until it does", t.Source)))
		}

		outcome, err := link.Install(t)
		if err != nil {
			return err
		}
		a.logger.Debug("link", "name", t.Name, "dest", t.Dest, "outcome", outcome)

		switch outcome {
		case link.Conflict:
			fmt.Fprintln(out, ui.WarningLine(fmt.Sprintf("%s exists and is not a symlink. Back it up first.", t.Dest)))
			continue
		case link.Replaced:
			fmt.Fprintln(out, ui.InfoLine(fmt.Sprintf("Replaced existing %s symlink", t.Name)))
		}
		fmt.Fprintln(out, ui.SuccessLine(fmt.Sprintf("Linked %s/ -> %s", t.Rel(), t.Source)))
	}

	marker := config.Marker{Version: Version, InstallPath: root}
	if err := config.WriteMarker(project, marker); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.MarkerFile, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderTitle(fmt.Sprintf("ForgeKit initialized in %s", project)))
	return nil
}
