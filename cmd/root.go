package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgekit/forgekit/internal/config"
	"github.com/forgekit/forgekit/internal/logging"
	"github.com/forgekit/forgekit/internal/ui"
	"github.com/forgekit/forgekit/internal/vcs"
)

var (
	// Version is set at build time
	Version = "0.1.0"
)

// app carries everything resolved once at startup
type app struct {
	opts     config.Options
	settings *config.Settings
	logger   *slog.Logger
	runner   vcs.Runner
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd(&app{}).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forgekit",
		Short: "ForgeKit - AI Engineering Skills Toolkit",
		Long: ui.Logo() + `
  Share one skills/commands tree across projects.
  Links .claude/skills and .claude/commands to the ForgeKit install
  and keeps the install itself under version control.`,
		Version:           Version,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetVersionTemplate("forgekit {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.Root, "root", "", "ForgeKit install root (default: $"+config.RootEnv+", config, or the binary's location)")
	flags.StringVarP(&a.opts.ProjectDir, "dir", "C", "", "project directory (default: current)")
	flags.StringVar(&a.opts.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/forgekit/config.yaml)")
	flags.BoolVar(&a.opts.Strict, "strict", false, "exit non-zero when git fails or doctor finds problems")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newCommitCmd(a))
	rootCmd.AddCommand(newPushCmd(a))
	rootCmd.AddCommand(newUninstallCmd(a))
	rootCmd.AddCommand(newDoctorCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "forgekit %s\n", Version)
		},
	}
}

// setup resolves settings once, before any handler runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Resolve(a.opts)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logging.New(cmd.ErrOrStderr(), settings.LogLevel)

	if a.runner == nil {
		a.runner = vcs.NewExecRunner(settings.GitBinary, a.logger)
	}

	a.logger.Debug("resolved settings",
		"install_root", settings.InstallRoot,
		"root_source", settings.RootSource,
		"root_error", settings.RootErr,
		"project", settings.ProjectDir,
		"config", settings.ConfigPath,
		"git", settings.GitBinary,
		"strict", settings.Strict,
	)
	return nil
}

// run adapts a handler to cobra. Usage is only printed for parse errors,
// which cobra reports before RunE is reached.
func (a *app) run(fn func(*app, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return fn(a, cmd, args)
	}
}

// git returns the proxy bound to the install root
func (a *app) git() (*vcs.Git, error) {
	root, err := a.settings.RequireRoot()
	if err != nil {
		return nil, err
	}
	return vcs.NewGit(a.runner, root), nil
}

// report prints a git result the way every proxy command does: its output
// text, a note when there was none, and a warning when it failed.
func (a *app) report(cmd *cobra.Command, res vcs.Result) error {
	out := cmd.OutOrStdout()

	text := res.Text()
	switch {
	case text != "":
		printOutput(out, text)
	case res.OK():
		fmt.Fprintln(out, ui.RenderMuted(fmt.Sprintf("(no output from git %s)", strings.Join(res.Args, " "))))
	}

	return a.check(cmd, res)
}

// check surfaces a failed result as a warning, or as an error under --strict
func (a *app) check(cmd *cobra.Command, res vcs.Result) error {
	if res.OK() {
		return nil
	}
	failure := res.Failure()
	fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningLine(failure))
	if a.settings.Strict {
		return fmt.Errorf("%s", failure)
	}
	return nil
}

// printOutput writes tool output verbatim, ensuring a trailing newline
func printOutput(w io.Writer, text string) {
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}
