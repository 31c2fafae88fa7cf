package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/config"
	apierrors "github.com/diogo/folderchat/internal/errors"
	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
)

type formatOptions struct {
	to       string
	role     string
	file     string
	output   string
	width    int
	sanitize bool
	wrap     bool
	copy     bool
}

func (c *cli) newFormatCmd() *cobra.Command {
	var o formatOptions

	cmd := &cobra.Command{
		Use:   "format [text]",
		Short: "Format a single chat message",
		Long: `Format one message and print it as terminal output, HTML, Markdown or JSON.

The message is read from --file, the argument or stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.readInput(args, o.file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sanitize") {
				o.sanitize = c.cfg.Sanitize
			}
			if !cmd.Flags().Changed("copy") {
				o.copy = c.cfg.CopyToClipboard
			}
			return c.runFormat(text, o)
		},
	}

	cmd.Flags().StringVarP(&o.to, "to", "t", "", "Output format: terminal, html, markdown or json (default from config)")
	cmd.Flags().StringVarP(&o.role, "role", "r", string(models.RoleAssistant), "Message role: user or assistant")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "Read the message from a file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the result to a file")
	cmd.Flags().IntVarP(&o.width, "width", "w", 0, "Terminal wrap width (default: terminal width)")
	cmd.Flags().BoolVar(&o.sanitize, "sanitize", false, "Pass HTML output through the allow-list sanitizer")
	cmd.Flags().BoolVar(&o.wrap, "wrap", false, "Wrap output in the role container (HTML div or terminal bubble)")
	cmd.Flags().BoolVar(&o.copy, "copy", false, "Copy the result to the clipboard")

	return cmd
}

func (c *cli) runFormat(text string, o formatOptions) error {
	role, err := models.ParseRole(o.role)
	if err != nil {
		return apierrors.NewConfigError("role", fmt.Sprintf("unsupported value %q (want user or assistant)", o.role))
	}

	to := o.to
	if to == "" {
		to = c.cfg.OutputFormat
	}

	doc := format.Format(text)
	c.log.Debug("formatted message", "blocks", len(doc.Blocks), "to", to, "role", role)

	var out, clip string
	switch to {
	case config.FormatHTML:
		out = render.HTML(doc, render.HTMLOptions{Wrap: o.wrap, Role: role, Sanitize: o.sanitize})
		clip = out
	case config.FormatMarkdown:
		out = render.Markdown(doc)
		clip = out
	case config.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		out = string(data)
		clip = out
	case config.FormatTerminal:
		out, err = c.renderTerminal(doc, text, role, o)
		if err != nil {
			return err
		}
		// the clipboard gets Markdown, not escape codes
		clip = render.Markdown(doc)
	default:
		return apierrors.NewConfigError("to",
			fmt.Sprintf("unsupported value %q (want terminal, html, markdown or json)", to))
	}

	if err := c.emit(out, o.output); err != nil {
		return err
	}
	if o.copy {
		c.copyToClipboard(clip)
	}
	return nil
}

func (c *cli) renderTerminal(doc *format.Document, text string, role models.Role, o formatOptions) (string, error) {
	opts := render.OptionsFromConfig(c.cfg)

	width := o.width
	if width <= 0 && c.cfg.Markdown.Width > 0 {
		width = c.cfg.Markdown.Width
	}
	if width <= 0 {
		width = c.deps.TerminalWidth()
	}

	if o.wrap {
		msg := &models.Message{Role: role, Content: text}
		return render.MessageBubble(msg, width, opts, render.TUIThemeFromConfig(c.cfg))
	}
	return render.Terminal(doc, opts.WithWidth(width))
}
