package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/ui"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show uncommitted changes",
		Long:  `Show git diff for the ForgeKit install root.`,
		Args:  cobra.NoArgs,
		RunE:  a.run(runDiff),
	}
}

func runDiff(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	g, err := a.git()
	if err != nil {
		return err
	}

	res := g.Diff(cmd.Context())
	switch {
	case res.Stdout != "":
		printOutput(out, res.Stdout)
	case res.OK():
		fmt.Fprintln(out, ui.RenderMuted("No changes"))
	default:
		if text := res.Text(); text != "" {
			printOutput(out, text)
		}
	}
	return a.check(cmd, res)
}
