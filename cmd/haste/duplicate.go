package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/haste/pkg/core"
)

var duplicateRaw bool

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [key]",
	Short: "Publish a copy of a document",
	Long: `Load a document, duplicate it into a new editable document and publish the copy.
The copy gets its own key; the original is left as it is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		ctx := cmd.Context()

		c, err := newClient(func(cfg *core.Config) {
			// The copy must be the stored text, not its rendering.
			cfg.Highlight = core.HighlightNone
			cfg.HTML = false
		})
		if err != nil {
			return err
		}

		c.session.LoadDocument(ctx, key)
		if !c.session.Document().Locked() {
			return fmt.Errorf("document %s could not be loaded", key)
		}

		if ok, _ := c.toolbar.Click(ctx, core.ButtonDuplicate); !ok {
			return fmt.Errorf("document %s cannot be duplicated", key)
		}
		if _, err := c.toolbar.Click(ctx, core.ButtonSave); err != nil {
			return fmt.Errorf("failed to publish copy of %s: %w", key, err)
		}

		newKey := c.session.Document().Key()
		if newKey == "" || newKey == key {
			return fmt.Errorf("copy of %s was not published", key)
		}

		if _, err := c.toolbar.Click(ctx, core.ButtonRaw); err != nil {
			return err
		}
		if duplicateRaw {
			fmt.Fprintln(cmd.OutOrStdout(), c.rawURL)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), c.recorder.URL())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
	duplicateCmd.Flags().BoolVar(&duplicateRaw, "raw", false, "Print the raw URL")
}
