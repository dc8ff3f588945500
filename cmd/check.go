// Package cmd — check command.
// Verifies the built pages: the id/class hooks the client-side scripts
// need must exist, and every offer image must resolve to a file.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkobusch-privat/unger-warburg-website/check"
)

var flagCheckRoot string

var checkCmd = &cobra.Command{
	Use:   "check [pages...]",
	Short: "Verify the built pages",
	Long: `Check parses the built pages and verifies the fixed markup hooks the
client-side scripts depend on (mobile menu, lightbox, contact anchor),
plus the offer image references.

Examples:
  uwsite check
  uwsite check index.html angebote.html --root ./public`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&flagCheckRoot, "root", ".", "Site root directory")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pages := args
	if len(pages) == 0 {
		pages = []string{"index.html", "angebote.html"}
	}

	var total int
	for _, page := range pages {
		problems, err := check.Page(flagCheckRoot, page)
		if err != nil {
			return err
		}
		if len(problems) == 0 {
			fmt.Fprintf(os.Stdout, "✓ %s\n", page)
			continue
		}
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "✗ %s\n", p)
		}
		total += len(problems)
	}

	if total > 0 {
		return fmt.Errorf("%d problem(s) found", total)
	}
	return nil
}
