package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/haste/pkg/adapters/fs"
	hlifecycle "github.com/aretw0/haste/pkg/adapters/lifecycle"
)

var watchRaw bool

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Publish a file again every time it changes",
	Long: `Publish a file, then keep watching it. Every change publishes the new content
as a new document and prints its URL. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := newClient(nil)
		if err != nil {
			return err
		}

		republish := func() {
			content, err := fs.ReadFile(path)
			if err != nil {
				slog.Error("read failed", "path", path, "error", err)
				return
			}
			r, err := publish(cmd, c, source{name: path, content: content})
			if err != nil {
				slog.Error("publish failed", "error", err)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.link(watchRaw))
		}

		events, err := fs.Watch(ctx, path, fs.WatchConfig{Logger: slog.Default()})
		if err != nil {
			return err
		}

		src := hlifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		republish()
		for e := range src.Events() {
			slog.Debug("change detected", "event", e.String())
			republish()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchRaw, "raw", false, "Print raw URLs")
}
