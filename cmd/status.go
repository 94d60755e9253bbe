package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/config"
	"github.com/forgekit/forgekit/internal/inventory"
	"github.com/forgekit/forgekit/internal/link"
	"github.com/forgekit/forgekit/internal/ui"
	"github.com/forgekit/forgekit/internal/vcs"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show forgekit status",
		Long: `Show the ForgeKit version and install root, uncommitted changes in the
install root, and whether the current project has its symlinks in place.`,
		Args: cobra.NoArgs,
		RunE: a.run(runStatus),
	}
}

func runStatus(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.RenderTitle(fmt.Sprintf("ForgeKit v%s", Version)))

	root, rootErr := a.settings.RequireRoot()
	if rootErr != nil {
		fmt.Fprintf(out, "Install: %s\n", ui.RenderError("not found"))
		fmt.Fprintln(out, ui.WarningLine(rootErr.Error()))
	} else {
		fmt.Fprintf(out, "Install: %s\n", ui.RenderHighlight(root))
		if err := printInstallDetails(a, cmd, root); err != nil {
			return err
		}
	}

	project := a.settings.ProjectDir
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Current project: %s\n", ui.RenderHighlight(project))

	labels := map[string]string{
		config.SkillsDirName:   "Skills symlink:  ",
		config.CommandsDirName: "Commands symlink:",
	}
	for _, t := range link.Targets(root, project) {
		fmt.Fprintf(out, "  %s %s\n", labels[t.Name], ui.YesNo(link.IsSymlink(t.Dest)))
	}

	marker, err := config.ReadMarker(project)
	switch {
	case errors.Is(err, config.ErrNoMarker):
		fmt.Fprintf(out, "  Marker:           %s\n", ui.RenderMuted("none"))
	case err != nil:
		fmt.Fprintln(out, ui.WarningLine(fmt.Sprintf("unreadable %s: %v", config.MarkerFile, err)))
	default:
		fmt.Fprintf(out, "  Marker:           v%s (%s)\n", marker.Version, marker.InstallPath)
		if root != "" && marker.InstallPath != root {
			fmt.Fprintln(out, ui.WarningLine("marker install_path differs from the current install root; re-run forgekit init"))
		}
	}

	return nil
}

// printInstallDetails shows repository, content and working-tree state of the install root
func printInstallDetails(a *app, cmd *cobra.Command, root string) error {
	out := cmd.OutOrStdout()

	if info, err := vcs.Describe(root); err == nil {
		fmt.Fprintf(out, "Branch:  %s\n", info)
	} else {
		a.logger.Debug("describe install root", "error", err)
	}

	if inv, err := inventory.Scan(root); err == nil {
		fmt.Fprintf(out, "Content: %s\n", inv)
	} else {
		a.logger.Debug("scan install root", "error", err)
	}

	g, err := a.git()
	if err != nil {
		return err
	}
	res := g.StatusShort(cmd.Context())
	switch {
	case !res.OK():
		if text := res.Text(); text != "" {
			printOutput(out, text)
		}
		return a.check(cmd, res)
	case strings.TrimSpace(res.Stdout) != "":
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.RenderWarning("Uncommitted changes:"))
		printOutput(out, res.Stdout)
	default:
		fmt.Fprintln(out, ui.RenderSuccess("Clean (no uncommitted changes)"))
	}
	return nil
}
