package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/config"
)

func testSite() config.Site {
	return config.Site{
		ImageBase: "assets/",
		CTALink:   "https://unger-warburg.de/#kontakt",
	}
}

func normalizeRaw(t *testing.T, raw core.RawRecord) (core.Offer, []core.Warning) {
	t.Helper()
	return New(testSite()).Normalize(core.SourceRecord{File: "offer.json", Raw: raw})
}

func TestNormalizeFullRecord(t *testing.T) {
	o, _ := normalizeRaw(t, core.RawRecord{
		"title":    "  Waschmaschine  ",
		"category": "Haushaltsgeräte",
		"price":    549.0,
		"uvp":      "749 €",
		"image":    "wm.jpg",
		"valid_to": "2026-10-31",
		"featured": true,
		"note":     "Lieferung inklusive.",
		"cta_link": "https://example.com/anfrage",
	})

	assert.Equal(t, "Waschmaschine", o.Title)
	assert.Equal(t, "Haushaltsgeräte", o.Category)
	assert.True(t, o.Price.Numeric)
	assert.Equal(t, 549.0, o.Price.Amount)
	assert.Equal(t, "749 €", o.UVP.Text)
	assert.Equal(t, "assets/wm.jpg", o.Image)
	assert.Equal(t, "2026-10-31", o.ValidTo)
	assert.True(t, o.Featured)
	assert.True(t, o.Active)
	assert.Equal(t, "https://example.com/anfrage", o.CTALink)
}

func TestBooleanDefaultsAreAsymmetric(t *testing.T) {
	// active defaults to true, featured defaults to false.
	o, _ := normalizeRaw(t, core.RawRecord{"title": "X"})
	assert.True(t, o.Active)
	assert.False(t, o.Featured)

	// Only explicit values flip them.
	o, _ = normalizeRaw(t, core.RawRecord{"title": "X", "active": false, "featured": true})
	assert.False(t, o.Active)
	assert.True(t, o.Featured)

	// Non-boolean junk falls back to the defaults.
	o, _ = normalizeRaw(t, core.RawRecord{"title": "X", "active": "no", "featured": "yes"})
	assert.True(t, o.Active)
	assert.False(t, o.Featured)
}

func TestReferencePriceAliases(t *testing.T) {
	o, _ := normalizeRaw(t, core.RawRecord{"rrp": 399.0})
	assert.Equal(t, 399.0, o.UVP.Amount)

	// uvp wins over rrp when both are present.
	o, _ = normalizeRaw(t, core.RawRecord{"uvp": 749.0, "rrp": 399.0})
	assert.Equal(t, 749.0, o.UVP.Amount)
}

func TestBulletsShapes(t *testing.T) {
	t.Run("plain strings keep order and duplicates", func(t *testing.T) {
		o, _ := normalizeRaw(t, core.RawRecord{
			"bullets": []any{"x", "y", "x"},
		})
		assert.Equal(t, []string{"x", "y", "x"}, o.Bullets)
	})

	t.Run("wrapper objects and junk entries", func(t *testing.T) {
		o, _ := normalizeRaw(t, core.RawRecord{
			"bullets": []any{
				map[string]any{"item": " 8 kg "},
				"  ",
				42.0,
				"1400 U/min",
			},
		})
		assert.Equal(t, []string{"8 kg", "1400 U/min"}, o.Bullets)
	})

	t.Run("non-array normalizes to empty", func(t *testing.T) {
		o, _ := normalizeRaw(t, core.RawRecord{"bullets": "not a list"})
		assert.Empty(t, o.Bullets)
	})
}

func TestFeaturesDropPartialEntries(t *testing.T) {
	o, _ := normalizeRaw(t, core.RawRecord{
		"features": []any{
			map[string]any{"title": "Leistung", "description": "320 Watt"},
			map[string]any{"title": "nur Titel"},
			map[string]any{"description": "nur Text"},
			"kein Objekt",
		},
	})
	require.Len(t, o.Features, 1)
	assert.Equal(t, core.Feature{Title: "Leistung", Description: "320 Watt"}, o.Features[0])
}

func TestHighlightShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want []string
	}{
		{"single string", "Ein Highlight", []string{"Ein Highlight"}},
		{"string array", []any{"a", "b"}, []string{"a", "b"}},
		{"wrapper objects", []any{map[string]any{"item": "Dolby Atmos"}}, []string{"Dolby Atmos"}},
		{"wrapper without item key", []any{map[string]any{"zz": "später", "aa": "zuerst"}}, []string{"zuerst"}},
		{"unrecognized shape", 42.0, nil},
		{"absent", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, _ := normalizeRaw(t, core.RawRecord{"highlights": tc.raw})
			assert.Equal(t, tc.want, o.Highlights)
		})
	}
}

func TestImageResolution(t *testing.T) {
	o, _ := normalizeRaw(t, core.RawRecord{"image": "wm.jpg"})
	assert.Equal(t, "assets/wm.jpg", o.Image)

	o, _ = normalizeRaw(t, core.RawRecord{"image": "/img/wm.jpg"})
	assert.Equal(t, "/img/wm.jpg", o.Image)

	o, _ = normalizeRaw(t, core.RawRecord{"image": "https://cdn.example.com/wm.jpg"})
	assert.Equal(t, "https://cdn.example.com/wm.jpg", o.Image)
}

func TestCTALinkDefault(t *testing.T) {
	o, _ := normalizeRaw(t, core.RawRecord{})
	assert.Equal(t, "https://unger-warburg.de/#kontakt", o.CTALink)

	// legacy alias
	o, _ = normalizeRaw(t, core.RawRecord{"link": "https://example.com"})
	assert.Equal(t, "https://example.com", o.CTALink)
}

func TestQualityWarnings(t *testing.T) {
	t.Run("missing recommended fields", func(t *testing.T) {
		_, ws := normalizeRaw(t, core.RawRecord{})
		messages := warningMessages(ws)
		assert.Contains(t, messages, "missing title")
		assert.Contains(t, messages, "missing price")
		assert.Contains(t, messages, "missing image")
	})

	t.Run("bullet count out of range", func(t *testing.T) {
		_, ws := normalizeRaw(t, core.RawRecord{
			"title": "X", "price": 1.0, "image": "x.jpg",
			"bullets": []any{"a", "b"},
		})
		require.Len(t, ws, 1)
		assert.Contains(t, ws[0].Message, "2 bullets")
	})

	t.Run("no bullet warning for zero bullets", func(t *testing.T) {
		_, ws := normalizeRaw(t, core.RawRecord{
			"title": "X", "price": 1.0, "image": "x.jpg",
		})
		assert.Empty(t, ws)
	})

	t.Run("warnings never exclude the record", func(t *testing.T) {
		o, ws := normalizeRaw(t, core.RawRecord{"bullets": []any{"a"}})
		assert.NotEmpty(t, ws)
		assert.True(t, o.Active)
	})
}

func warningMessages(ws []core.Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Message)
	}
	return out
}
