package detail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

func TestFeaturesSupersedeHighlights(t *testing.T) {
	d := New(nil).Segment(core.Offer{
		Features:   []core.Feature{{Title: "Leistung", Description: "320 Watt"}},
		Highlights: []string{"wird ignoriert"},
	})

	assert.Equal(t, []core.Feature{{Title: "Leistung", Description: "320 Watt"}}, d.Features)
	assert.Empty(t, d.Shorts)
	assert.Empty(t, d.Longs)
}

func TestBulletsAlwaysCarryOver(t *testing.T) {
	d := New(nil).Segment(core.Offer{Bullets: []string{"8 kg", "1400 U/min"}})
	assert.Equal(t, []string{"8 kg", "1400 U/min"}, d.Bullets)
	assert.False(t, d.Empty())
}

func TestShortLongClassification(t *testing.T) {
	long := strings.Repeat("Sehr viel Marketingtext. ", 10) // ~250 chars

	d := New(nil).Segment(core.Offer{
		Highlights: []string{"A short fact.", long},
	})

	assert.Equal(t, []string{"A short fact."}, d.Shorts)
	require.Len(t, d.Longs, 1)
	assert.Contains(t, d.Longs[0], "Marketingtext")
}

func TestShortOverflowIsDemotedNotDropped(t *testing.T) {
	highlights := []string{"eins", "zwei", "drei", "vier", "fünf", "sechs"}

	d := New(nil).Segment(core.Offer{Highlights: highlights})

	assert.Equal(t, []string{"eins", "zwei", "drei", "vier"}, d.Shorts)
	assert.Equal(t, []string{"fünf", "sechs"}, d.Longs)
}

func TestKeywordDecomposition(t *testing.T) {
	text := "Die Soundbar überzeugt auf ganzer Linie. " +
		"Leistung – 320 Watt Gesamtleistung mit separatem Subwoofer. " +
		"Bedienung – App-Steuerung und HDMI eARC. " +
		"Design – flaches Gehäuse in mattem Schwarz."

	d := New(nil).Segment(core.Offer{Highlights: []string{text}})

	require.Len(t, d.Blocks, 3)
	assert.Equal(t, "Leistung", d.Blocks[0].Title)
	assert.Equal(t, "320 Watt Gesamtleistung mit separatem Subwoofer.", d.Blocks[0].Description)
	assert.Equal(t, "Bedienung", d.Blocks[1].Title)
	assert.Equal(t, "Design", d.Blocks[2].Title)
	assert.Equal(t, "flaches Gehäuse in mattem Schwarz.", d.Blocks[2].Description)

	// The preamble before the first anchor survives as intro text.
	require.Len(t, d.Longs, 1)
	assert.Equal(t, "Die Soundbar überzeugt auf ganzer Linie.", d.Longs[0])
}

func TestSingleAnchorStaysPlainParagraph(t *testing.T) {
	text := "Ein langer Absatz der nur einmal das Wort Leistung erwähnt und " +
		"sonst keinerlei bekannte Abschnittsmarken enthält, also bleibt er " +
		"als Fließtext erhalten und wird nicht künstlich zerteilt."

	d := New(nil).Segment(core.Offer{Highlights: []string{text}})

	assert.Empty(t, d.Blocks)
	require.Len(t, d.Longs, 1)
}

func TestAnchorsMatchWholeWordsOnly(t *testing.T) {
	// "Designer" and "Serviceleistung" must not anchor.
	text := "Ein Designerstück mit umfassender Serviceleistung und noch mehr " +
		"Text damit der Absatz sicher über der Längenschwelle für kurze " +
		"Einträge liegt und als langer Eintrag klassifiziert werden kann."

	d := New(nil).Segment(core.Offer{Highlights: []string{text}})
	assert.Empty(t, d.Blocks)
}

func TestCustomKeywords(t *testing.T) {
	s := New(&Options{Keywords: []string{"Alpha", "Beta"}})

	text := strings.Repeat("Einleitung. ", 12) +
		"Alpha – erster Block mit Inhalt. Beta – zweiter Block mit Inhalt."
	d := s.Segment(core.Offer{Highlights: []string{text}})

	require.Len(t, d.Blocks, 2)
	assert.Equal(t, "Alpha", d.Blocks[0].Title)
	assert.Equal(t, "Beta", d.Blocks[1].Title)
}

func TestTextNormalization(t *testing.T) {
	d := New(nil).Segment(core.Offer{
		Highlights: []string{"Viel   Platz \n\n im  Innenraum - und  mehr"},
	})
	require.Len(t, d.Shorts, 1)
	assert.Equal(t, "Viel Platz im Innenraum – und mehr", d.Shorts[0])
}

func TestNoContentMeansEmptyDetails(t *testing.T) {
	d := New(nil).Segment(core.Offer{Title: "Nur ein Titel"})
	assert.True(t, d.Empty())
}
