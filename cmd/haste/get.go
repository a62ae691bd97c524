package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/haste"
	"github.com/aretw0/haste/pkg/adapters/fs"
)

var (
	getHTML      bool
	getHighlight string
	getStyle     string
	getOutFile   string
)

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a document",
	Long: `Load a document by its key and print it.
With --highlight or --html the content is rendered as HTML markup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		c, err := newClient(func(cfg *haste.Config) {
			if cmd.Flags().Changed("html") {
				cfg.HTML = getHTML
			}
			if cmd.Flags().Changed("highlight") {
				cfg.Highlight = getHighlight
			}
			if cmd.Flags().Changed("style") {
				cfg.HighlightStyle = getStyle
			}
		})
		if err != nil {
			return err
		}

		c.session.LoadDocument(cmd.Context(), key)
		if !c.session.Document().Locked() {
			return fmt.Errorf("document %s could not be loaded", key)
		}

		value := c.session.View().Get()
		if getOutFile != "" {
			if err := fs.WriteFile(getOutFile, value, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Document '%s' written to %s.\n", key, getOutFile)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getHTML, "html", false, "Wrap every line in a line span")
	getCmd.Flags().StringVar(&getHighlight, "highlight", "", `Highlight syntax: "auto" or a language name`)
	getCmd.Flags().StringVar(&getStyle, "style", "", "Highlight style (default from config)")
	getCmd.Flags().StringVarP(&getOutFile, "output-file", "O", "", "Write to a file instead of stdout")
}
