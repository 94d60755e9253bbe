package cmd

import (
	"github.com/spf13/cobra"
)

func newCommitCmd(a *app) *cobra.Command {
	var message string

	commitCmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Commit forgekit changes",
		Long: `Stage everything in the ForgeKit install root (git add -A) and commit it.

Examples:
  forgekit commit -m "Add security review skill"`,
		Args: cobra.NoArgs,
		RunE: a.run(func(a *app, cmd *cobra.Command, args []string) error {
			return runCommit(a, cmd, message)
		}),
	}

	commitCmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	_ = commitCmd.MarkFlagRequired("message")

	return commitCmd
}

func runCommit(a *app, cmd *cobra.Command, message string) error {
	g, err := a.git()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := a.check(cmd, g.AddAll(ctx)); err != nil {
		return err
	}
	return a.report(cmd, g.Commit(ctx, message))
}
