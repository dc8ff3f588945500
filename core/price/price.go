// Package price implements the price and discount deriver.
// It renders numeric amounts in the site's fixed de-DE currency form,
// parses author-entered price strings back into numbers, and derives
// the percentage badge from a current and a recommended (UVP) price.
package price

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rkobusch-privat/unger-warburg-website/core"
)

var german = message.NewPrinter(language.German)

// Format renders a price value for display. Numeric amounts get the
// de-DE currency form (two decimals, comma decimal separator, dotted
// thousands); author-formatted strings pass through trimmed as-is.
func Format(p core.PriceValue) string {
	if p.Numeric {
		return german.Sprintf("%v €",
			number.Decimal(p.Amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return strings.TrimSpace(p.Text)
}

// ParseAmount is the best-effort inverse of Format. It strips
// everything but digits, comma, period and minus, drops the dotted
// grouping separators, converts the decimal comma, and parses the
// rest. It round-trips Format's own output and tolerates raw
// author-entered strings like "2.499 €". The second return value is
// false when no number could be recovered.
func ParseAmount(display string) (float64, bool) {
	var b strings.Builder
	for _, r := range display {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// DiscountPercent derives the discount badge value from the displayed
// current and recommended price. A badge exists only when both parse
// and the recommendation exceeds the current price by at least one
// rounded percent; every other condition yields no badge, never a
// zero or negative one.
func DiscountPercent(current, recommended string) (int, bool) {
	p, okP := ParseAmount(current)
	u, okU := ParseAmount(recommended)
	if !okP || !okU || u <= p || u == 0 {
		return 0, false
	}
	percent := int(math.Round((u - p) / u * 100))
	if percent <= 0 {
		return 0, false
	}
	return percent, true
}

// FormatDateDE converts an ISO date (YYYY-MM-DD) to the German
// TT.MM.JJJJ display form. Anything else passes through verbatim.
func FormatDateDE(iso string) string {
	if len(iso) != 10 || iso[4] != '-' || iso[7] != '-' {
		return iso
	}
	for i, r := range iso {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return iso
		}
	}
	return iso[8:10] + "." + iso[5:7] + "." + iso[0:4]
}
