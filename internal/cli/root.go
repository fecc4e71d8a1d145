package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gg/internal/appConfig"
	"gg/internal/color"
	"gg/internal/getCommand"
	"gg/internal/log"
	"gg/internal/setup"
	"gg/internal/shell"
	"gg/internal/view"
)

var versionStr = "dev"

// SetVersionInfo sets the version reported by --version
func SetVersionInfo(version string) {
	versionStr = version
}

type options struct {
	dryRun  bool
	debug   int
	install string
	get     bool
	prefix  string
}

const longHelp = `gg makes it easy to find, fetch and work with your git repos.

Repos live at <root>/<host>/<org>/<repo>. "gg github.com/org/repo" clones the
repo if it is missing or fetches it if it is already there, then changes into
it. SSH (git@host:org/repo) and HTTPS URLs are accepted as well, and anything
after the repo name is kept as a subdirectory to change into.

Run gg without arguments to set up shell integration, or add
    eval "$(gg -i zsh)"
to ~/.zshrc yourself. "gg -i zsh ghg github.com" defines a command ghg that
prefixes its argument with github.com.

Environment:
  GGROOT        root directory for all repos (default ~/work)
  GGHTTP=1      use https:// URLs for host/org/repo references (default ssh)
  GGDIRVIEWER   command that opens the target directory; - for none
  GGNOAUTOCD=1  do not cd into the target directory
  GGPROBE       how new hosts are checked: git (default) or go-git
  GGCONFIG      YAML config file (default ~/.gg.yaml)
  GGLOG         file that receives debug logs`

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "gg [TARGET] [ALIAS_PREFIX]",
		Short:         "Clone or fetch git repos into a standard layout",
		Long:          longHelp,
		Version:       versionStr,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()
			color.SetEnabled(isTerminal(stderr))
			closeLog, err := logger.InitLogger(opts.debug, stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print actions to perform but do nothing")
	flags.CountVarP(&opts.debug, "debug", "d", "Turn debugging information on (repeat for more)")
	flags.StringVarP(&opts.install, "install", "i", "", "Emit shell integration code for SHELL (zsh, bash); optionally define an alias command with a prefix")
	flags.BoolVar(&opts.get, "get", false, "Get a repo (used by the shell function)")
	flags.StringVar(&opts.prefix, "prefix", "", "Repo reference prefix for alias commands")
	_ = flags.MarkHidden("get")
	_ = flags.MarkHidden("prefix")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	switch {
	case opts.get:
		if len(args) != 1 {
			return errors.New("usage: gg <repo>")
		}
		config, err := appConfig.Load()
		if err != nil {
			return err
		}
		logger.Log.Debugf("Workspace root %s", config.Root)
		return getCommand.ExecuteGetCommand(cmd.Context(), config, getCommand.GetRequest{
			Reference: args[0],
			Prefix:    opts.prefix,
			DryRun:    opts.dryRun,
		}, stdout, stderr)

	case opts.install != "":
		config, err := appConfig.Load()
		if err != nil {
			return err
		}
		exePath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("gg executable not found: %w", err)
		}
		integration := shell.Integration{Shell: opts.install, ExePath: exePath, Root: config.Root}
		if len(args) > 0 {
			integration.Command = args[0]
		}
		if len(args) > 1 {
			integration.Prefix = args[1]
		}
		return shell.Write(stdout, integration)

	case len(args) > 0:
		return fmt.Errorf("gg %s needs the shell integration; run gg without arguments to set it up", args[0])

	default:
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("home directory not found: %w", err)
		}
		exePath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("gg executable not found: %w", err)
		}
		return setup.NewWizard(home, exePath, appConfig.VSCodeInstalled(), cmd.InOrStdin(), stdout, stderr).Run()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ExecuteContext runs gg with the process arguments. Any error has already been reported on stderr
// as a single line when it returns.
func ExecuteContext(ctx context.Context) error {
	return execute(ctx, newRootCmd(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		if renderErr := view.NewErrorView(err, stderr).Render(); renderErr != nil {
			return errors.Join(err, renderErr)
		}
	}
	return err
}
