package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/config"
	apierrors "github.com/diogo/folderchat/internal/errors"
	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
	"github.com/diogo/folderchat/internal/transcript"
)

type historyOptions struct {
	to       string
	folder   string
	output   string
	width    int
	sanitize bool
	list     bool
}

func (c *cli) newHistoryCmd() *cobra.Command {
	var o historyOptions

	cmd := &cobra.Command{
		Use:   "history <export.json>",
		Short: "Render a saved folder chat history",
		Long: `Render every message of a saved /api/chat/history response.
Use "-" to read the response from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sanitize") {
				o.sanitize = c.cfg.Sanitize
			}
			return c.runHistory(args[0], o)
		},
	}

	cmd.Flags().StringVarP(&o.to, "to", "t", "", "Output format: terminal, html, markdown or json (default from config)")
	cmd.Flags().StringVar(&o.folder, "folder", "", "Folder id (default: from the file)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the result to a file")
	cmd.Flags().IntVarP(&o.width, "width", "w", 0, "Terminal wrap width (default: terminal width)")
	cmd.Flags().BoolVar(&o.sanitize, "sanitize", false, "Pass HTML output through the allow-list sanitizer")
	cmd.Flags().BoolVarP(&o.list, "list", "l", false, "List messages instead of rendering them")

	return cmd
}

func (c *cli) loadTranscript(path, folder string) (*models.Transcript, error) {
	if path != "-" {
		return transcript.Load(path, folder)
	}
	data, err := io.ReadAll(c.deps.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return transcript.Parse(data, folder)
}

func (c *cli) runHistory(path string, o historyOptions) error {
	t, err := c.loadTranscript(path, o.folder)
	if err != nil {
		return err
	}
	c.log.Debug("loaded history", "folder", t.FolderID, "messages", t.Len())

	if o.list {
		return listMessages(c.deps.Stdout, t)
	}

	to, width, err := c.exportTarget(o.to, o.width)
	if err != nil {
		return err
	}
	opts := transcript.ExportOptions{
		Format:   to,
		Sanitize: o.sanitize,
		Width:    width,
		Terminal: render.OptionsFromConfig(c.cfg),
		Theme:    render.TUIThemeFromConfig(c.cfg),
	}

	err = c.export(o.output, func(w io.Writer) error {
		return transcript.Export(w, t, opts)
	})
	if err != nil {
		return err
	}
	if o.output != "" {
		c.success(fmt.Sprintf("Saved %d messages to %s", t.Len(), o.output))
	}
	return nil
}

// listMessages prints one row per message
func listMessages(out io.Writer, t *models.Transcript) error {
	if t.Len() == 0 {
		_, err := fmt.Fprintln(out, "No messages found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tROLE\tPROVIDER\tTIME\tBLOCKS\tPREVIEW")
	_, _ = fmt.Fprintln(w, "-\t----\t--------\t----\t------\t-------")

	for i := range t.Messages {
		msg := &t.Messages[i]
		ts := "-"
		if !msg.Timestamp.IsZero() {
			ts = msg.Timestamp.Format("2006-01-02 15:04")
		}
		provider := msg.Provider
		if provider == "" {
			provider = "-"
		}
		doc := format.FormatMessage(msg)
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			i+1, msg.Role.Label(), provider, ts, len(doc.Blocks), truncate(doc.PlainText(), 40))
	}

	return w.Flush()
}

// exportTarget resolves the --to and --width flags against the config and
// the terminal.
func (c *cli) exportTarget(to string, width int) (string, int, error) {
	if to == "" {
		to = c.cfg.OutputFormat
	}
	if !isOutputFormat(to) {
		return "", 0, apierrors.NewConfigError("to",
			fmt.Sprintf("unsupported value %q (want terminal, html, markdown or json)", to))
	}
	if width <= 0 {
		width = c.cfg.Markdown.Width
	}
	if width <= 0 {
		width = c.deps.TerminalWidth()
	}
	return to, width, nil
}

func isOutputFormat(s string) bool {
	for _, f := range config.AvailableOutputFormats() {
		if f == s {
			return true
		}
	}
	return false
}
