package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/aretw0/haste"
	"github.com/aretw0/haste/pkg/adapters/fs"
	"github.com/aretw0/haste/pkg/ui"
)

var (
	saveRaw    bool
	saveCopy   bool
	saveOutput string
)

type source struct {
	name    string
	content string
}

var saveCmd = &cobra.Command{
	Use:   "save [files or globs...]",
	Short: "Publish text and print its URL",
	Long: `Publish standard input, or every file matched by the arguments, as new documents.
Globs support ** to match across directories. Each document prints its URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := readSources(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		c, err := newClient(nil)
		if err != nil {
			return err
		}

		results := make([]result, 0, len(sources))
		for _, src := range sources {
			r, err := publish(cmd, c, src)
			if err != nil {
				return err
			}
			results = append(results, r)
		}

		if err := printResults(cmd.OutOrStdout(), saveOutput, saveRaw, results); err != nil {
			return err
		}

		if saveCopy && len(results) > 0 {
			link := results[len(results)-1].link(saveRaw)
			if err := clipboard.WriteAll(link); err != nil {
				slog.Warn("failed to copy to clipboard", "error", err)
			} else {
				slog.Info("copied to clipboard", "url", link)
			}
		}
		return nil
	},
}

func readSources(stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []source{{content: string(data)}}, nil
	}

	files, err := fs.Expand(args...)
	if err != nil {
		return nil, err
	}
	sources := make([]source, 0, len(files))
	for _, f := range files {
		content, err := fs.ReadFile(f)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{name: f, content: content})
	}
	return sources, nil
}

// publish locks src as a new document of c's session.
func publish(cmd *cobra.Command, c *client, src source) (result, error) {
	label := src.name
	if label == "" {
		label = "stdin"
	}
	if strings.TrimSpace(src.content) == "" {
		return result{}, fmt.Errorf("%s: refusing to publish a blank document", label)
	}

	c.session.NewDocument()
	c.session.View().Set(src.content, haste.ModeWrite)

	key, err := c.session.LockDocument(cmd.Context())
	if err != nil {
		var storeErr *haste.StoreError
		if errors.As(err, &storeErr) {
			return result{}, fmt.Errorf("%s: %s", label, storeErr.Message())
		}
		return result{}, fmt.Errorf("%s: %w", label, err)
	}

	base := c.session.Config().BaseURL
	slog.Debug("published", "source", label, "key", key)
	return result{
		Source: src.name,
		Key:    key,
		URL:    ui.DocumentURL(base, key),
		Raw:    ui.RawURL(base, key),
	}, nil
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().BoolVar(&saveRaw, "raw", false, "Print raw URLs")
	saveCmd.Flags().BoolVar(&saveCopy, "copy", false, "Copy the last URL to the clipboard")
	saveCmd.Flags().StringVarP(&saveOutput, "output", "o", "text", "Output format: text, json or yaml")
}
