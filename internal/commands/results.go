package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
	"github.com/diogo/folderchat/internal/results"
)

type resultsOptions struct {
	to       string
	folder   string
	output   string
	width    int
	sanitize bool
	list     bool
}

func (c *cli) newResultsCmd() *cobra.Command {
	var o resultsOptions

	cmd := &cobra.Command{
		Use:   "results <results.json>",
		Short: "Render the saved results of a folder",
		Long: `Render the search results saved into a folder, with their AI summaries
and notes formatted, from a saved /api/folders/<folder>/results response.
Use "-" to read the response from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sanitize") {
				o.sanitize = c.cfg.Sanitize
			}
			return c.runResults(args[0], o)
		},
	}

	cmd.Flags().StringVarP(&o.to, "to", "t", "", "Output format: terminal, html, markdown or json (default from config)")
	cmd.Flags().StringVar(&o.folder, "folder", "", "Folder id (default: from the file)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the result to a file")
	cmd.Flags().IntVarP(&o.width, "width", "w", 0, "Terminal wrap width (default: terminal width)")
	cmd.Flags().BoolVar(&o.sanitize, "sanitize", false, "Pass HTML summaries and notes through the allow-list sanitizer")
	cmd.Flags().BoolVarP(&o.list, "list", "l", false, "List results instead of rendering them")

	return cmd
}

func (c *cli) loadResults(path, folder string) (*models.FolderResults, error) {
	if path != "-" {
		return results.Load(path, folder)
	}
	data, err := io.ReadAll(c.deps.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return results.Parse(data, folder)
}

func (c *cli) runResults(path string, o resultsOptions) error {
	f, err := c.loadResults(path, o.folder)
	if err != nil {
		return err
	}
	c.log.Debug("loaded folder results", "folder", f.FolderID, "results", f.Len())

	if o.list {
		return listResults(c.deps.Stdout, f)
	}

	to, width, err := c.exportTarget(o.to, o.width)
	if err != nil {
		return err
	}
	opts := results.ExportOptions{
		Format:   to,
		Sanitize: o.sanitize,
		Width:    width,
		Terminal: render.OptionsFromConfig(c.cfg),
		Theme:    render.TUIThemeFromConfig(c.cfg),
	}

	err = c.export(o.output, func(w io.Writer) error {
		return results.Export(w, f, opts)
	})
	if err != nil {
		return err
	}
	if o.output != "" {
		c.success(fmt.Sprintf("Saved %d results to %s", f.Len(), o.output))
	}
	return nil
}

// listResults prints one row per saved result
func listResults(out io.Writer, f *models.FolderResults) error {
	if f.Len() == 0 {
		_, err := fmt.Fprintln(out, "No saved results.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tTITLE\tENGINE\tSAVED\tSUMMARY")
	_, _ = fmt.Fprintln(w, "-\t-----\t------\t-----\t-------")

	for i := range f.Results {
		r := &f.Results[i]
		engine := r.Engine
		if engine == "" {
			engine = "-"
		}
		saved := "-"
		if !r.SavedAt.IsZero() {
			saved = r.SavedAt.Format("2006-01-02 15:04")
		}
		summary := "-"
		if r.HasSummary() {
			summary = truncate(format.Format(r.Summary).PlainText(), 40)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, truncate(r.Title, 40), engine, saved, summary)
	}

	return w.Flush()
}
