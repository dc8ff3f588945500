// Package cmd — build command.
// This is the main command that orchestrates the pipeline:
// load → normalize → select → render → write.
//
// Per-record problems are reported as warnings and never abort the
// run; only a missing page template is fatal.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/config"
	"github.com/rkobusch-privat/unger-warburg-website/core/detail"
	"github.com/rkobusch-privat/unger-warburg-website/core/load"
	"github.com/rkobusch-privat/unger-warburg-website/core/normalize"
	"github.com/rkobusch-privat/unger-warburg-website/core/output"
	"github.com/rkobusch-privat/unger-warburg-website/core/price"
	"github.com/rkobusch-privat/unger-warburg-website/core/render"
	"github.com/rkobusch-privat/unger-warburg-website/core/selection"
)

// Flag variables.
var (
	flagRoot       string
	flagContentDir string
	flagTemplate   string
	flagOut        []string
	flagDate       string
	flagKeywords   string
	flagReport     bool
	flagPreview    bool
	flagFlyer      bool
)

// Side artifact names, relative to the site root.
const (
	reportName  = "offers-report.json"
	previewName = "offers-preview.md"
	flyerName   = "angebote-flyer.pdf"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the offers page from the content directory",
	Long: `Build reads every offer file under the content directory, normalizes
the historical record formats, drops inactive and expired offers, and
renders the remaining offers into the page template.

Examples:
  uwsite build
  uwsite build --date 2026-09-01
  uwsite build --report --flyer
  uwsite build --content_dir content/offers --out index.html --out angebote.html`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&flagRoot, "root", ".", "Site root directory")
	buildCmd.Flags().StringVar(&flagContentDir, "content_dir", "content/offers", "Offer content directory (relative to root)")
	buildCmd.Flags().StringVar(&flagTemplate, "template", "templates/offers-page.html", "Page template (relative to root)")
	buildCmd.Flags().StringSliceVar(&flagOut, "out", []string{"index.html", "angebote.html"}, "Output page paths (relative to root, repeatable)")
	buildCmd.Flags().StringVar(&flagDate, "date", "", "Reference date for expiry filtering (YYYY-MM-DD, default: today)")
	buildCmd.Flags().StringVar(&flagKeywords, "keywords", "", "JSON file overriding the segmentation keyword list")

	// Side artifacts.
	buildCmd.Flags().BoolVar(&flagReport, "report", false, "Write the JSON build report ("+reportName+")")
	buildCmd.Flags().BoolVar(&flagPreview, "preview", false, "Write a Markdown preview of the offers fragment ("+previewName+")")
	buildCmd.Flags().BoolVar(&flagFlyer, "flyer", false, "Write a printable PDF flyer ("+flyerName+")")
}

func runBuild(cmd *cobra.Command, args []string) error {
	site, err := config.Load()
	if err != nil {
		return err
	}

	today, err := referenceDate()
	if err != nil {
		return err
	}

	segOpts, err := segmenterOptions()
	if err != nil {
		return err
	}

	writer, err := output.New(flagRoot)
	if err != nil {
		return fmt.Errorf("initializing writer: %w", err)
	}

	// A build without a template cannot produce anything meaningful.
	template, err := os.ReadFile(joinRoot(flagTemplate))
	if err != nil {
		return fmt.Errorf("reading page template: %w", err)
	}

	// --- Pipeline ---

	loader := load.New()
	records, warnings, err := loader.Load(joinRoot(flagContentDir))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	normalizer := normalize.New(site)
	offers := make([]core.Offer, 0, len(records))
	for _, rec := range records {
		o, ws := normalizer.Normalize(rec)
		offers = append(offers, o)
		warnings = append(warnings, ws...)
	}

	selected := selection.New().Select(offers, today)

	renderer := render.NewHTMLRenderer(detail.New(segOpts), site)
	pageHTML, fragment := renderer.RenderPage(selected, string(template))

	written, err := writer.WritePage([]byte(pageHTML), flagOut...)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// --- Diagnostics ---

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "⚠ %s: %s\n", w.File, w.Message)
	}
	for _, p := range written {
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", p)
	}
	fmt.Fprintf(os.Stdout, "✓ Angebote gebaut: %d\n", len(selected))

	page := core.Page{
		HTML:     pageHTML,
		Fragment: fragment,
		Offers:   selected,
		Warnings: warnings,
		BuiltAt:  price.FormatDateDE(today.Format("2006-01-02")),
	}
	return writeArtifacts(writer, site, page)
}

// writeArtifacts runs the requested side renderers.
func writeArtifacts(writer *output.Writer, site config.Site, page core.Page) error {
	artifacts := []struct {
		enabled  bool
		name     string
		renderer core.Renderer
	}{
		{flagReport, reportName, render.NewJSONRenderer()},
		{flagPreview, previewName, render.NewMarkdownRenderer()},
		{flagFlyer, flyerName, render.NewPDFRenderer(site)},
	}

	for _, a := range artifacts {
		if !a.enabled {
			continue
		}
		data, err := a.renderer.Render(page)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", a.name, err)
		}
		p, err := writer.WriteArtifact(a.name, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", p)
	}
	return nil
}

// referenceDate resolves the --date flag, defaulting to the wall clock.
// Expiry filtering itself always receives the date as a parameter.
func referenceDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", flagDate, err)
	}
	return t, nil
}

// segmenterOptions resolves the --keywords flag.
func segmenterOptions() (*detail.Options, error) {
	if flagKeywords == "" {
		return nil, nil
	}
	keywords, err := detail.LoadKeywords(joinRoot(flagKeywords))
	if err != nil {
		return nil, err
	}
	return &detail.Options{Keywords: keywords}, nil
}

func joinRoot(p string) string {
	return filepath.Join(flagRoot, p)
}
