// Package check verifies built pages after a run.
// The client-side scripts (mobile menu, lightbox, contact form) hang
// off fixed id/class hooks in the markup; check parses the written
// pages and reports any hook that went missing, plus offer images that
// do not resolve to a file on disk.
package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// requiredHooks are the selectors the client-side scripts depend on.
// Renaming any of these in the template breaks page interactivity.
var requiredHooks = []string{
	"#navToggle",
	"#navMenu",
	"#kontakt",
	"#lightbox",
	"#lightboxImg",
}

// Problem describes one verification finding for a page.
type Problem struct {
	Page    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Page, p.Message)
}

// Page verifies one built page. The returned problems are findings,
// not errors; only an unreadable or unparseable page is an error.
func Page(root, page string) ([]Problem, error) {
	full := filepath.Join(root, page)
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("opening page %s: %w", full, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing page %s: %w", full, err)
	}

	var problems []Problem
	report := func(format string, args ...any) {
		problems = append(problems, Problem{Page: page, Message: fmt.Sprintf(format, args...)})
	}

	for _, sel := range requiredHooks {
		if doc.Find(sel).Length() == 0 {
			report("missing hook %s", sel)
		}
	}

	// Either the offer grid or the no-offers placeholder must exist.
	if doc.Find(".offers-grid").Length() == 0 &&
		!strings.Contains(doc.Text(), "Aktuell keine Angebote") {
		report("neither offer grid nor placeholder present")
	}

	// Every offer image must resolve to a real image file.
	doc.Find("img.offer-img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			report("offer image without src")
			return
		}
		if problem := checkImage(root, src); problem != "" {
			report("%s", problem)
		}
	})

	return problems, nil
}
