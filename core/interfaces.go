// Package core defines the pipeline types and interfaces for the offer
// build. Each stage of the pipeline is a clean, testable interface.
package core

// RawRecord is the untyped content of a single offer file, as decoded
// from JSON. Its shape varies across the historical schema generations.
type RawRecord map[string]any

// SourceRecord pairs a RawRecord with the file it was loaded from,
// so later stages can attribute warnings to a source.
type SourceRecord struct {
	File string
	Raw  RawRecord
}

// PriceValue holds one of the two historical price representations:
// a numeric amount in EUR, or an author-formatted display string.
// The representations are mutually exclusive and resolved at format time.
type PriceValue struct {
	Amount  float64
	Numeric bool
	Text    string
}

// IsZero reports whether no price was given at all.
func (p PriceValue) IsZero() bool {
	return !p.Numeric && p.Text == ""
}

// Feature is one structured detail entry (newest schema generation).
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Offer is the canonical, normalized record the pipeline operates on.
// Offers are built fresh on every run and never mutated afterwards.
type Offer struct {
	File       string     `json:"file"`
	Title      string     `json:"title"`
	Category   string     `json:"category,omitempty"`
	Price      PriceValue `json:"-"`
	UVP        PriceValue `json:"-"`
	Bullets    []string   `json:"bullets,omitempty"`
	Features   []Feature  `json:"features,omitempty"`
	Highlights []string   `json:"highlights,omitempty"`
	Image      string     `json:"image,omitempty"`
	ValidTo    string     `json:"valid_to,omitempty"` // ISO YYYY-MM-DD, empty = no expiry
	Featured   bool       `json:"featured"`
	Note       string     `json:"note,omitempty"`
	CTALink    string     `json:"cta_link"`
	Active     bool       `json:"active"`
}

// Warning is a non-fatal, per-record diagnostic. Warnings go to the
// diagnostic stream and never exclude a record from the build.
type Warning struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Details is the segmented secondary content of one offer, ready for
// the renderer: short highlights shown directly, everything else
// inside the expandable block.
type Details struct {
	Bullets  []string  // always inside the expandable block
	Features []Feature // primary structured body
	Shorts   []string  // short legacy highlights, shown directly
	Longs    []string  // long-form passages, expandable
	Blocks   []Feature // keyword-decomposed blocks from a single long passage
}

// Empty reports whether there is no detail content at all, in which
// case no expandable block is emitted.
func (d Details) Empty() bool {
	return len(d.Bullets) == 0 && len(d.Features) == 0 &&
		len(d.Shorts) == 0 && len(d.Longs) == 0 && len(d.Blocks) == 0
}

// Page is the complete result of one pipeline pass. Side renderers
// (Markdown preview, PDF flyer, JSON report) consume it.
type Page struct {
	HTML     string    `json:"-"`
	Fragment string    `json:"-"` // offers fragment only, without the shell
	Offers   []Offer   `json:"offers"`
	Warnings []Warning `json:"warnings"`
	BuiltAt  string    `json:"built_at"` // display date of the build run
}

// Loader enumerates and decodes the offer files of a content directory.
// A missing directory yields zero records; a broken file yields a
// warning, never an error.
type Loader interface {
	Load(dir string) ([]SourceRecord, []Warning, error)
}

// Normalizer maps one raw record onto the canonical Offer, applying
// the per-field fallback rules of the historical schema generations.
type Normalizer interface {
	Normalize(rec SourceRecord) (Offer, []Warning)
}

// Segmenter splits an offer's secondary content into the detail layout.
type Segmenter interface {
	Segment(o Offer) Details
}

// Renderer converts a built Page into a side output format.
type Renderer interface {
	Render(page Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
