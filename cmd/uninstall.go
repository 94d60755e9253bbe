package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/config"
	"github.com/forgekit/forgekit/internal/link"
	"github.com/forgekit/forgekit/internal/ui"
)

func newUninstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Aliases: []string{"remove", "rm"},
		Short:   "Remove symlinks from current project",
		Long: `Remove the .claude/skills and .claude/commands symlinks and the
.forgekit marker from the current project.

Only symlinks are removed; real files and directories are skipped. The
.claude directory itself is kept.`,
		Args: cobra.NoArgs,
		RunE: a.run(runUninstall),
	}
}

func runUninstall(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	project := a.settings.ProjectDir

	// Destinations only; the install root is not needed to unlink
	for _, t := range link.Targets("", project) {
		outcome, err := link.Remove(t)
		if err != nil {
			return err
		}
		a.logger.Debug("unlink", "name", t.Name, "dest", t.Dest, "outcome", outcome)

		if outcome == link.Removed {
			fmt.Fprintln(out, ui.SuccessLine(fmt.Sprintf("Removed %s symlink", t.Rel())))
		} else {
			fmt.Fprintln(out, ui.InfoLine(fmt.Sprintf("%s is not a symlink, skipping", t.Rel())))
		}
	}

	if _, err := config.RemoveMarker(project); err != nil {
		return fmt.Errorf("failed to remove %s: %w", config.MarkerFile, err)
	}

	fmt.Fprintln(out, ui.RenderTitle("ForgeKit uninstalled from this project."))
	return nil
}
