// Package normalize implements the Normalizer interface.
// It maps the historical offer schema generations onto the canonical
// Offer, with field-level fallbacks: a record may mix fields from
// several generations and still normalize. Unknown shapes map to the
// emptiest valid Offer, never to an error.
package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/config"
)

// Bullet counts outside this range draw a content-quality warning.
const (
	minBullets  = 5
	maxBullets  = 10
	maxFeatures = 10
)

// SchemaNormalizer maps raw records to Offers using the site defaults
// for image base and call-to-action link.
type SchemaNormalizer struct {
	site config.Site
}

// New creates a SchemaNormalizer.
func New(site config.Site) *SchemaNormalizer {
	return &SchemaNormalizer{site: site}
}

// Normalize maps one raw record to one Offer. It never fails: missing
// or malformed fields fall back to the safest default. The returned
// warnings are informational and never exclude the record.
//
// Boolean defaults are intentionally asymmetric: active is true unless
// explicitly false, featured is true only if explicitly true.
func (n *SchemaNormalizer) Normalize(rec core.SourceRecord) (core.Offer, []core.Warning) {
	raw := rec.Raw

	o := core.Offer{
		File:       rec.File,
		Title:      stringField(raw, "title"),
		Category:   stringField(raw, "category"),
		Price:      priceField(raw, "price"),
		UVP:        firstPrice(raw, "uvp", "rrp"),
		Bullets:    bullets(raw["bullets"]),
		Features:   features(raw["features"]),
		Highlights: highlights(raw["highlights"]),
		Image:      n.resolveImage(stringField(raw, "image")),
		ValidTo:    firstString(raw, "valid_to", "valid_until"),
		Featured:   raw["featured"] == true,
		Note:       stringField(raw, "note"),
		CTALink:    firstString(raw, "cta_link", "link"),
		Active:     raw["active"] != false,
	}
	if o.CTALink == "" {
		o.CTALink = n.site.CTALink
	}

	return o, n.inspect(o)
}

// inspect emits content-quality warnings for one normalized offer.
func (n *SchemaNormalizer) inspect(o core.Offer) []core.Warning {
	var ws []core.Warning
	warn := func(format string, args ...any) {
		ws = append(ws, core.Warning{File: o.File, Message: fmt.Sprintf(format, args...)})
	}

	if o.Title == "" {
		warn("missing title")
	}
	if o.Price.IsZero() {
		warn("missing price")
	}
	if o.Image == "" {
		warn("missing image")
	}
	if c := len(o.Bullets); c > 0 && (c < minBullets || c > maxBullets) {
		warn("%d bullets, recommended range is %d-%d", c, minBullets, maxBullets)
	}
	if c := len(o.Features); c > maxFeatures {
		warn("%d features, more than %d", c, maxFeatures)
	}
	return ws
}

// resolveImage prefixes relative image paths with the configured base.
// Absolute paths and URLs pass through untouched.
func (n *SchemaNormalizer) resolveImage(img string) string {
	if img == "" || strings.HasPrefix(img, "/") || strings.Contains(img, "://") {
		return img
	}
	if strings.HasPrefix(img, n.site.ImageBase) {
		return img
	}
	return n.site.ImageBase + img
}

// --- field extraction helpers ---

// stringField returns the trimmed string value of a key, or "" when
// the key is absent or not a string.
func stringField(raw core.RawRecord, key string) string {
	s, _ := raw[key].(string)
	return strings.TrimSpace(s)
}

// firstString tries the given keys in order and returns the first
// non-empty trimmed string value.
func firstString(raw core.RawRecord, keys ...string) string {
	for _, k := range keys {
		if s := stringField(raw, k); s != "" {
			return s
		}
	}
	return ""
}

// priceField reads a dual-representation price value. Malformed values
// are preserved as text for format-time handling, not rejected here.
func priceField(raw core.RawRecord, key string) core.PriceValue {
	switch v := raw[key].(type) {
	case float64:
		return core.PriceValue{Amount: v, Numeric: true}
	case string:
		return core.PriceValue{Text: strings.TrimSpace(v)}
	default:
		return core.PriceValue{}
	}
}

// firstPrice tries the given keys in order; the first key that is
// present at all wins, even if its value turns out empty.
func firstPrice(raw core.RawRecord, keys ...string) core.PriceValue {
	for _, k := range keys {
		if _, ok := raw[k]; ok {
			return priceField(raw, k)
		}
	}
	return core.PriceValue{}
}

// bullets accepts a plain string array or an array of single-key
// wrapper objects holding the text. Empty and non-string entries are
// dropped; order and duplicates are preserved.
func bullets(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range arr {
		var s string
		switch t := item.(type) {
		case string:
			s = t
		case map[string]any:
			s = firstStringValue(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// features accepts an array of {title, description} objects. Entries
// missing either field are dropped entirely; there are no partial
// features.
func features(v any) []core.Feature {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []core.Feature
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := core.Feature{
			Title:       stringField(core.RawRecord(obj), "title"),
			Description: stringField(core.RawRecord(obj), "description"),
		}
		if f.Title != "" && f.Description != "" {
			out = append(out, f)
		}
	}
	return out
}

// highlights accepts the full zoo of legacy shapes: a single string,
// an array of strings, or an array of wrapper objects where the first
// string-valued field carries the text. Anything else normalizes to
// an empty sequence.
func highlights(v any) []string {
	var arr []any
	switch t := v.(type) {
	case string:
		arr = []any{t}
	case []any:
		arr = t
	default:
		return nil
	}

	var out []string
	for _, item := range arr {
		var s string
		switch t := item.(type) {
		case string:
			s = t
		case map[string]any:
			s = firstStringValue(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstStringValue picks the text out of a legacy wrapper object.
// The historical key "item" wins, then "text"; otherwise the first
// string value in key order, so the choice is deterministic.
func firstStringValue(obj map[string]any) string {
	for _, k := range []string{"item", "text"} {
		if s, ok := obj[k].(string); ok {
			return s
		}
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			return s
		}
	}
	return ""
}
