// Package render provides the output renderers for the offer build.
// This file implements the HTML renderer, which composes the per-offer
// tiles and substitutes the result into the static page template.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/config"
	"github.com/rkobusch-privat/unger-warburg-website/core/price"
)

// Template placeholder tokens. Every occurrence of each token is
// substituted, not just the first.
const (
	TokenTitle       = "{{TITLE}}"
	TokenDescription = "{{DESCRIPTION}}"
	TokenContent     = "{{CONTENT}}"
)

// noOffersPlaceholder is rendered instead of an empty grid.
const noOffersPlaceholder = `<p>Aktuell keine Angebote.</p>`

// HTMLRenderer renders the ordered offers into the page template.
// It is a pure transformation; all I/O stays with the caller.
type HTMLRenderer struct {
	seg  core.Segmenter
	site config.Site
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(seg core.Segmenter, site config.Site) *HTMLRenderer {
	return &HTMLRenderer{seg: seg, site: site}
}

// RenderPage renders the full page and returns it together with the
// offers fragment alone (the fragment feeds the side renderers).
func (r *HTMLRenderer) RenderPage(offers []core.Offer, template string) (page, fragment string) {
	fragment = r.renderFragment(offers)

	page = template
	page = strings.ReplaceAll(page, TokenTitle, esc(r.site.Title))
	page = strings.ReplaceAll(page, TokenDescription, esc(r.site.Description))
	page = strings.ReplaceAll(page, TokenContent, fragment)
	return page, fragment
}

// renderFragment renders the offer grid, or the placeholder when there
// is nothing to show.
func (r *HTMLRenderer) renderFragment(offers []core.Offer) string {
	if len(offers) == 0 {
		return noOffersPlaceholder
	}

	var b strings.Builder
	b.WriteString(`<div class="grid offers-grid">`)
	for _, o := range offers {
		b.WriteString(r.renderTile(o))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderTile renders one offer card. Element order is fixed: featured
// flag, tags, title, image, price row, note, details, call to action.
func (r *HTMLRenderer) renderTile(o core.Offer) string {
	var b strings.Builder

	cls := "tile"
	if o.Featured {
		cls = "tile offer-card--featured"
	}
	b.WriteString(`<article class="` + cls + `">`)

	if o.Featured {
		b.WriteString(`<span class="tile__flag">Empfohlen</span>`)
	}

	r.writeTags(&b, o)

	b.WriteString(`<h3>` + esc(o.Title) + `</h3>`)

	if o.Image != "" {
		b.WriteString(`<img src="` + esc(o.Image) + `" alt="` + esc(o.Title) + `" class="offer-img" loading="lazy">`)
	}

	r.writePriceRow(&b, o)

	if o.Note != "" {
		b.WriteString(`<p class="note">` + esc(o.Note) + `</p>`)
	}

	b.WriteString(r.renderDetails(r.seg.Segment(o)))

	b.WriteString(`<a class="btn btn--ghost" href="` + esc(o.CTALink) + `">Anfragen</a>`)
	b.WriteString(`</article>`)
	return b.String()
}

// writeTags renders the category and validity tags, when present.
func (r *HTMLRenderer) writeTags(b *strings.Builder, o core.Offer) {
	if o.Category == "" && o.ValidTo == "" {
		return
	}
	b.WriteString(`<div class="tile__tags">`)
	if o.Category != "" {
		b.WriteString(`<span class="tag">` + esc(o.Category) + `</span>`)
	}
	if o.ValidTo != "" {
		b.WriteString(`<span class="tag tag--validity">Gültig bis ` + esc(price.FormatDateDE(o.ValidTo)) + `</span>`)
	}
	b.WriteString(`</div>`)
}

// writePriceRow renders the current price, the struck-through UVP and
// the discount badge. No badge is ever rendered for a zero or negative
// discount.
func (r *HTMLRenderer) writePriceRow(b *strings.Builder, o core.Offer) {
	priceText := price.Format(o.Price)
	uvpText := price.Format(o.UVP)

	if priceText == "" && uvpText == "" {
		return
	}

	b.WriteString(`<div class="price-row">`)
	b.WriteString(`<strong>` + esc(priceText) + `</strong>`)
	if uvpText != "" {
		b.WriteString(`<span class="offer-rrp">UVP <s>` + esc(uvpText) + `</s></span>`)
	}
	if percent, ok := price.DiscountPercent(priceText, uvpText); ok {
		b.WriteString(`<span class="offer-badge">-` + strconv.Itoa(percent) + `%</span>`)
	}
	b.WriteString(`</div>`)
}

// renderDetails renders the short highlight list plus the expandable
// block. No content at all means no markup, not an empty shell.
func (r *HTMLRenderer) renderDetails(d core.Details) string {
	if d.Empty() {
		return ""
	}

	var b strings.Builder

	// Short legacy highlights are shown directly on the card.
	if len(d.Shorts) > 0 {
		b.WriteString(`<ul class="list offer-facts">`)
		for _, s := range d.Shorts {
			b.WriteString(`<li>` + esc(s) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}

	var body strings.Builder

	if len(d.Bullets) > 0 {
		body.WriteString(`<ul class="list">`)
		for _, bu := range d.Bullets {
			body.WriteString(`<li>` + esc(bu) + `</li>`)
		}
		body.WriteString(`</ul>`)
	}

	writeFeatures(&body, d.Features)

	for _, l := range d.Longs {
		body.WriteString(`<p>` + esc(l) + `</p>`)
	}

	writeFeatures(&body, d.Blocks)

	if body.Len() > 0 {
		b.WriteString(`<details class="offer-details">`)
		b.WriteString(`<summary>Details anzeigen</summary>`)
		b.WriteString(`<div class="offer-details__body">`)
		b.WriteString(body.String())
		b.WriteString(`</div></details>`)
	}

	return b.String()
}

func writeFeatures(b *strings.Builder, features []core.Feature) {
	for _, f := range features {
		b.WriteString(`<div class="feature">`)
		b.WriteString(`<div class="feature__title">` + esc(f.Title) + `</div>`)
		b.WriteString(`<div class="feature__text">` + esc(f.Description) + `</div>`)
		b.WriteString(`</div>`)
	}
}

// esc escapes the five HTML-special characters in user-supplied text.
// Every rendered field goes through it, without exception.
func esc(s string) string {
	return html.EscapeString(s)
}
