package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/haste"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of haste",
	// No config is needed to print the version.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "haste version %s\n", strings.TrimSpace(haste.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
