package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/config"
	"github.com/diogo/folderchat/internal/render"
)

func (c *cli) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
		Long: `Show or change folderchat settings.

Values are resolved from defaults, then the config file, then FOLDERCHAT_*
environment variables (markdown.style -> FOLDERCHAT_MARKDOWN_STYLE).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.showConfig()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.showConfig()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.deps.ConfigPath()
			if err != nil {
				return err
			}
			if _, err := config.SetValue(path, args[0], args[1]); err != nil {
				return err
			}
			c.log.Debug("saved config", "path", path, "key", args[0])
			c.success(fmt.Sprintf("%s = %s", args[0], args[1]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.deps.ConfigPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.deps.Stdout, path)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List terminal styles and bubble palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listThemes()
		},
	})

	return cmd
}

func (c *cli) showConfig() error {
	w := tabwriter.NewWriter(c.deps.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tVALUE\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "---\t-----\t-----------")

	for _, o := range config.GetConfigOptions() {
		v, _ := c.cfg.Value(o.Key)
		_, _ = fmt.Fprintf(w, "%s\t%v\t%s\n", o.Key, v, o.Comment)
	}
	return w.Flush()
}

func (c *cli) listThemes() error {
	w := tabwriter.NewWriter(c.deps.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "MARKDOWN STYLE\tDESCRIPTION")
	for _, t := range render.AvailableThemes() {
		name := t.Name
		if name == c.cfg.Markdown.Style {
			name += " *"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, t.Description)
	}

	_, _ = fmt.Fprintln(w, "\t")
	_, _ = fmt.Fprintln(w, "TUI THEME\tDESCRIPTION")
	for _, t := range render.AvailableTUIThemes() {
		name := t.Name
		if name == c.cfg.TUITheme {
			name += " *"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, t.Description)
	}

	return w.Flush()
}
