package cmd

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Aliases: []string{"pull"},
		Short:   "Pull latest from remote",
		Long: `Run git pull in the ForgeKit install root.

Every linked project sees the new skills and commands immediately.`,
		Args: cobra.NoArgs,
		RunE: a.run(runUpdate),
	}
}

func runUpdate(a *app, cmd *cobra.Command, args []string) error {
	g, err := a.git()
	if err != nil {
		return err
	}
	return a.report(cmd, g.Pull(cmd.Context()))
}
