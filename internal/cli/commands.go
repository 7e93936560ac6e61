package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/aitodo/internal/config"
	"github.com/idilsaglam/aitodo/internal/logging"
	"github.com/idilsaglam/aitodo/internal/model"
	"github.com/idilsaglam/aitodo/internal/tui"
	"github.com/idilsaglam/aitodo/internal/ui"
)

const (
	maxTextWidth = 80
	renderWidth  = 80
)

func uiCmd(a *app) *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive client (default)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), a, tab)
		},
	}
	cmd.Flags().StringVar(&tab, "tab", "manual", "tab to open on: manual, ai or todos")
	return cmd
}

// runUI logs to a file: anything written to the terminal would paint over
// the alt screen.
func runUI(ctx context.Context, a *app, tab string) error {
	if err := a.setup(); err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(a.cfg.LogFile(), logging.Options{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	gw, err := a.client(logger)
	if err != nil {
		return err
	}
	logger.Info("starting interactive client", "api", a.cfg.API, "tab", tab)

	err = tui.Run(ctx, gw, tui.Options{Logger: logger, InitialTab: model.ParseTab(tab)})
	if err != nil && ctx.Err() != nil {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func listCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			gw, err := a.client(nil)
			if err != nil {
				return err
			}
			todos, err := gw.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list todos: %w", err)
			}
			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(todos)
			}
			fmt.Fprintln(a.stdout, ui.Panel(listLines(todos)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw list as JSON")
	return cmd
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Create a todo",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				return usagef("add: empty text")
			}
			gw, err := a.client(nil)
			if err != nil {
				return err
			}
			msg, err := gw.CreateManual(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("create todo: %w", err)
			}
			if msg == "" {
				msg = "Todo created successfully!"
			}
			ui.OK(a.stdout, msg)
			reportCount(cmd.Context(), a, gw)
			return nil
		},
	}
}

func askCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt...>",
		Short: "Ask the AI assistant",
		Long: `Send a natural-language request to the AI assistant.

The assistant can create todos, list todos, take notes and look up user
information. When it reports a created todo the list is fetched again.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if strings.TrimSpace(prompt) == "" {
				return usagef("ask: empty prompt")
			}
			gw, err := a.client(nil)
			if err != nil {
				return err
			}
			resp, err := gw.CreateViaPrompt(cmd.Context(), prompt)
			if err != nil {
				return fmt.Errorf("ask: %w", err)
			}
			if badge := ui.ToolBadge(resp); badge != "" {
				fmt.Fprintln(a.stdout, badge)
			}
			fmt.Fprintln(a.stdout, strings.TrimRight(ui.RenderMarkdown(resp.Output, renderWidth), "\n"))
			if resp.CreatedTodo() {
				reportCount(cmd.Context(), a, gw)
			}
			return nil
		},
	}
}

type lister interface {
	List(ctx context.Context) ([]model.Todo, error)
}

// reportCount refetches after a create. A failed refetch does not fail the
// command: the create already went through.
func reportCount(ctx context.Context, a *app, gw lister) {
	todos, err := gw.List(ctx)
	if err != nil {
		a.log.Warn("failed to fetch todos", "err", err)
		return
	}
	fmt.Fprintln(a.stdout, ui.MutedStyle().Render(fmt.Sprintf("%d todos", len(todos))))
}

func listLines(todos []model.Todo) []string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d",
		ui.TitleStyle().Render("Todos"),
		ui.AccentStyle().Render("Total"), len(todos))

	lines := []string{header, ""}
	if len(todos) == 0 {
		lines = append(lines, ui.MutedStyle().Render("No todos yet. Add one with `aitodo add \"Buy milk\"`."))
		return lines
	}
	for i, td := range todos {
		text := collapse(td.Text)
		if r := []rune(text); len(r) > maxTextWidth {
			text = string(r[:maxTextWidth-3]) + "..."
		}
		line := fmt.Sprintf("%s %s %s",
			ui.HelpStyle().Render(fmt.Sprintf("%2d.", i+1)),
			ui.PendingStyle().Render(t.Bullet), text)
		if when := td.CreatedAt.Display(); when != "" {
			line += "  " + ui.MutedStyle().Render(when)
		}
		lines = append(lines, line)
	}
	return lines
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			c := a.cfg
			source := c.Source
			if source == "" {
				source = "(none)"
			}
			api := c.API
			if api == "" {
				api = "(unset)"
			}
			rows := [][2]string{
				{"source", source},
				{"api", api},
				{"theme", c.Theme},
				{"log.level", c.Log.Level},
				{"log.format", c.Log.Format},
				{"log.file", c.LogFile()},
			}
			for _, r := range rows {
				fmt.Fprintf(a.stdout, "%-11s %s\n", r[0], r[1])
			}
			if err := c.Validate(); err != nil {
				a.log.Warn("configuration is not usable", "err", err)
			}
			return nil
		},
	}
	cmd.AddCommand(setAPICmd(a))
	return cmd
}

func setAPICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-api <url>",
		Short: "Save the service base URL to the config file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			cfg, err := config.ReadFile(path)
			if err != nil {
				return err
			}
			cfg.API = strings.TrimRight(strings.TrimSpace(args[0]), "/")
			if err := cfg.Validate(); err != nil {
				return &usageError{msg: err.Error()}
			}
			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			ui.OK(a.stdout, "saved "+path)
			return nil
		},
	}
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(a.stdout, "aitodo "+Version)
		},
	}
}
