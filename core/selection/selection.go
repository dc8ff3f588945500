// Package selection implements the filter and sort stage.
// It drops inactive and expired offers and imposes the final display
// order: featured offers first, then German-collated title order.
package selection

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

// Selector filters and orders normalized offers for rendering.
type Selector struct {
	collator *collate.Collator
}

// New creates a Selector with a German collator, matching the site's
// fixed locale.
func New() *Selector {
	return &Selector{collator: collate.New(language.German)}
}

// Select returns the offers to render, in display order. The reference
// date is injected rather than read from a clock so expiry filtering
// stays deterministic; time-of-day is normalized to midnight.
func (s *Selector) Select(offers []core.Offer, today time.Time) []core.Offer {
	day := midnight(today)

	kept := make([]core.Offer, 0, len(offers))
	for _, o := range offers {
		if !o.Active {
			continue
		}
		if expired(o.ValidTo, day) {
			continue
		}
		kept = append(kept, o)
	}

	// Stable, so offers with equal keys keep their load order.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Featured != kept[j].Featured {
			return kept[i].Featured
		}
		return s.collator.CompareString(kept[i].Title, kept[j].Title) < 0
	})

	return kept
}

// expired reports whether validTo names a calendar day strictly before
// day. Unparseable or absent dates keep the offer (fail-open).
func expired(validTo string, day time.Time) bool {
	if validTo == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", validTo)
	if err != nil {
		return false
	}
	return d.Before(day)
}

// midnight truncates to the calendar day in UTC, the zone time.Parse
// uses for the valid_to dates, so the boundary day compares equal.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
