package cmd

import (
	"github.com/spf13/cobra"
)

func newPushCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push to remote",
		Long:  `Run git push in the ForgeKit install root.`,
		Args:  cobra.NoArgs,
		RunE:  a.run(runPush),
	}
}

func runPush(a *app, cmd *cobra.Command, args []string) error {
	g, err := a.git()
	if err != nil {
		return err
	}
	return a.report(cmd, g.Push(cmd.Context()))
}
