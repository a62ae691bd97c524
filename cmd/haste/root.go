package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/haste/internal/config"
	"github.com/aretw0/haste/pkg/core"
)

var (
	verbose bool
	cfgFile string

	settings = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "haste",
	Short: "Share text through a hastebin-style document store",
	Long: `haste publishes text to a hastebin-style server and reads it back.
Published documents are immutable: editing one means duplicating it first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		return config.Init(settings, cfgFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is .haste.yaml or "+config.ConfigFile()+")")
	flags.String("url", core.DefaultBaseURL, "Base URL of the document store")
	flags.Bool("trim", false, "Trim surrounding whitespace before saving")

	_ = settings.BindPFlag("url", flags.Lookup("url"))
	_ = settings.BindPFlag("trim", flags.Lookup("trim"))
}
