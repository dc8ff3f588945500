// Package detail implements the detail-text segmenter.
// It decides how an offer's secondary content is laid out: structured
// features win over legacy highlight text, short highlights are shown
// directly, long passages move into the expandable block, and a single
// long passage may be decomposed into named blocks along known
// marketing-keyword anchors.
//
// The keyword decomposition is best-effort and may misfire on
// unanticipated vendor phrasing; the fallback is always plain
// paragraph rendering, which is safe.
package detail

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

// DefaultKeywords are the marketing-section anchors seen in vendor
// texts so far. The list is configuration, not logic: extend it via
// Options (or the --keywords flag) without touching the segmenter.
var DefaultKeywords = []string{
	"Ausstattung",
	"Bedienung",
	"Besonderheiten",
	"Design",
	"Energieeffizienz",
	"Garantie",
	"Komfort",
	"Leistung",
	"Lieferumfang",
	"Material",
	"Montage",
	"Qualität",
	"Sicherheit",
	"Service",
	"Technik",
	"Zubehör",
}

// Options configure a TextSegmenter. The zero value of any field
// falls back to the shipped default.
type Options struct {
	// Keywords are the anchor terms for long-text decomposition.
	Keywords []string
	// ShortMax is the maximum rune length of a "short" highlight.
	ShortMax int
	// ShortCap is how many short highlights are shown directly;
	// the rest are reclassified as long (never dropped).
	ShortCap int
}

// TextSegmenter implements the Segmenter interface.
type TextSegmenter struct {
	keywords []string
	shortMax int
	shortCap int
}

// New creates a TextSegmenter.
func New(opts *Options) *TextSegmenter {
	s := &TextSegmenter{
		keywords: DefaultKeywords,
		shortMax: 130,
		shortCap: 4,
	}
	if opts != nil {
		if len(opts.Keywords) > 0 {
			s.keywords = opts.Keywords
		}
		if opts.ShortMax > 0 {
			s.shortMax = opts.ShortMax
		}
		if opts.ShortCap > 0 {
			s.shortCap = opts.ShortCap
		}
	}
	return s
}

// LoadKeywords reads an anchor list from a JSON file (a plain array
// of strings).
func LoadKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword file: %w", err)
	}
	var keywords []string
	if err := json.Unmarshal(data, &keywords); err != nil {
		return nil, fmt.Errorf("parsing keyword file %s: %w", path, err)
	}
	return keywords, nil
}

// Segment lays out one offer's secondary content.
//
// Bullets always go inside the expandable block; this is the one
// consistent placement policy across all records. Structured features
// supersede legacy highlights entirely, so content is never duplicated
// between the two.
func (s *TextSegmenter) Segment(o core.Offer) core.Details {
	d := core.Details{Bullets: o.Bullets}

	if len(o.Features) > 0 {
		d.Features = o.Features
		return d
	}

	for _, h := range o.Highlights {
		h = normalizeText(h)
		if h == "" {
			continue
		}
		if len([]rune(h)) <= s.shortMax && len(d.Shorts) < s.shortCap {
			d.Shorts = append(d.Shorts, h)
		} else {
			// Over-cap shorts are demoted, not dropped.
			d.Longs = append(d.Longs, h)
		}
	}

	if len(d.Longs) == 1 {
		if intro, blocks := s.decompose(d.Longs[0]); len(blocks) >= 2 {
			d.Longs = nil
			if intro != "" {
				d.Longs = []string{intro}
			}
			d.Blocks = blocks
		}
	}

	return d
}

// decompose splits a single long passage at keyword anchors, in order
// of appearance. The span between one anchor and the next becomes that
// block's body, the anchor term itself its title. Text before the
// first anchor is returned as intro. Fewer than two usable blocks
// means no decomposition.
func (s *TextSegmenter) decompose(text string) (intro string, blocks []core.Feature) {
	anchors := s.findAnchors(text)
	if len(anchors) < 2 {
		return "", nil
	}

	intro = strings.TrimSpace(text[:anchors[0].start])

	for i, a := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1].start
		}
		body := trimBlockBody(text[a.end:end])
		if body == "" {
			continue
		}
		blocks = append(blocks, core.Feature{
			Title:       text[a.start:a.end],
			Description: body,
		})
	}
	if len(blocks) < 2 {
		return "", nil
	}
	return intro, blocks
}

// anchor is one keyword occurrence within the passage.
type anchor struct {
	start, end int
}

// findAnchors locates whole-word, case-insensitive keyword occurrences
// and returns them in order of appearance. Occurrences inside an
// earlier anchor's span are skipped.
func (s *TextSegmenter) findAnchors(text string) []anchor {
	lower := strings.ToLower(text)

	var found []anchor
	for pos := 0; pos < len(lower); {
		next := anchor{start: -1}
		for _, kw := range s.keywords {
			k := strings.ToLower(kw)
			idx := strings.Index(lower[pos:], k)
			for idx >= 0 {
				abs := pos + idx
				if wholeWord(text, abs, abs+len(k)) {
					if next.start == -1 || abs < next.start {
						next = anchor{start: abs, end: abs + len(k)}
					}
					break
				}
				more := strings.Index(lower[abs+len(k):], k)
				if more < 0 {
					idx = -1
				} else {
					idx = abs + len(k) + more - pos
				}
			}
		}
		if next.start == -1 {
			break
		}
		found = append(found, next)
		pos = next.end
	}
	return found
}

// wholeWord reports whether text[start:end] is not embedded in a
// larger word.
func wholeWord(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// trimBlockBody strips the separators left over between an anchor term
// and its body text.
func trimBlockBody(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), ":–—-,"))
}

var spacedDash = regexp.MustCompile(`\s[–—-]\s`)

// normalizeText collapses whitespace runs to single spaces and unifies
// spaced dash sequences to a single " – " form.
func normalizeText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return spacedDash.ReplaceAllString(s, " – ")
}
