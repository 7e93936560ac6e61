// Package cli wires the aitodo command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/aitodo/internal/api"
	"github.com/idilsaglam/aitodo/internal/config"
	"github.com/idilsaglam/aitodo/internal/logging"
	"github.com/idilsaglam/aitodo/internal/ui"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// usageError marks bad invocations; they exit with code 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{msg: err.Error()}
		}
		return nil
	}
}

// app holds what every subcommand shares: resolved config, logger, output.
type app struct {
	stdout, stderr io.Writer

	configPath string
	overrides  config.Overrides

	cfg *config.Config
	log *log.Logger
}

// setup resolves configuration and applies the theme. Commands call it
// lazily so `version` and `help` work with a broken config file.
func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.configPath, a.overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	a.log = logging.New(a.stderr, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return nil
}

// client validates the base URL and returns a gateway logging through l.
func (a *app) client(l *log.Logger) (*api.Client, error) {
	if err := a.setup(); err != nil {
		return nil, err
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = a.log
	}
	return api.New(a.cfg.API, api.WithLogger(l), api.WithUserAgent("aitodo/"+Version)), nil
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aitodo",
		Short: "Terminal client for the AI todo service",
		Long: `aitodo - create todos by hand or by asking the AI assistant.

Run without a subcommand to open the interactive client.`,
		Example: `  aitodo --api http://localhost:3000
  aitodo add "Buy milk"
  aitodo ask "remind me to call mom tomorrow"
  aitodo ls --json`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), a, "")
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/aitodo/config.yaml)")
	pf.StringVar(&a.overrides.API, "api", "", "todo service base URL (env AITODO_API)")
	pf.StringVar(&a.overrides.Theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.overrides.LogLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		uiCmd(a),
		listCmd(a),
		addCmd(a),
		askCmd(a),
		configCmd(a),
		versionCmd(a),
	)
	return root
}

// Run executes the command tree and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRoot(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		ui.Fail(stderr, ue.msg)
		fmt.Fprintln(stderr, ui.HelpStyle().Render("Run `aitodo --help` for usage."))
		return 2
	}
	ui.Fail(stderr, describe(err))
	return 1
}

// Generic texts for HTTP failures without a server message, keyed by the
// gateway operation. They match the interactive client.
var failureText = map[string]string{
	"list todos":  "Failed to fetch todos",
	"create todo": "Failed to create todo",
	"ai request":  "Failed to process AI request",
}

// describe renders gateway failures the way the interactive client words
// them.
func describe(err error) string {
	var se *api.StatusError
	var ne *api.NetworkError
	switch {
	case errors.As(err, &se):
		if se.Message != "" {
			return "Error: " + se.Message
		}
		if text, ok := failureText[se.Op]; ok {
			return "Error: " + text
		}
		return "Error: " + se.Error()
	case errors.As(err, &ne):
		return "Network error occurred: " + ne.Err.Error()
	}
	return err.Error()
}
