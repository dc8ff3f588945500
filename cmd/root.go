// Package cmd implements the CLI commands for the site build using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uwsite",
	Short: "uwsite — build the Unger Warburg offers page",
	Long: `uwsite is the static build step for the Unger Warburg website.
It reads the offer content files, normalizes the historical record
formats, and renders the offers page.

Usage:
  uwsite build [flags]
  uwsite check [pages...]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
