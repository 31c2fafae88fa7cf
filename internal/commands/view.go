package commands

import (
	"github.com/spf13/cobra"

	"github.com/diogo/folderchat/internal/render"
)

func (c *cli) newViewCmd() *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "view <export.json>",
		Short: "Browse a saved folder chat history in a scrollable viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.loadTranscript(args[0], folder)
			if err != nil {
				return err
			}
			c.log.Debug("opening viewer", "folder", t.FolderID, "messages", t.Len())
			return c.deps.Viewer(t, render.OptionsFromConfig(c.cfg), render.TUIThemeFromConfig(c.cfg))
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "Folder id (default: from the file)")
	return cmd
}
