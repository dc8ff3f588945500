// Package render — JSON report renderer.
// Emits the normalized offers and the collected warnings as a
// machine-readable build report for the CI pipeline.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/rkobusch-privat/unger-warburg-website/core"
	"github.com/rkobusch-privat/unger-warburg-website/core/price"
)

// offerJSON is one offer in the build report, with prices resolved to
// their display form.
type offerJSON struct {
	File     string `json:"file"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Price    string `json:"price,omitempty"`
	UVP      string `json:"uvp,omitempty"`
	Image    string `json:"image,omitempty"`
	ValidTo  string `json:"valid_to,omitempty"`
	Featured bool   `json:"featured"`
}

// reportJSON is the build-report document.
type reportJSON struct {
	BuiltAt  string         `json:"built_at"`
	Count    int            `json:"count"`
	Offers   []offerJSON    `json:"offers"`
	Warnings []core.Warning `json:"warnings"`
}

// JSONRenderer produces the structured build report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the build report.
func (r *JSONRenderer) Render(page core.Page) ([]byte, error) {
	report := reportJSON{
		BuiltAt:  page.BuiltAt,
		Count:    len(page.Offers),
		Offers:   make([]offerJSON, 0, len(page.Offers)),
		Warnings: page.Warnings,
	}
	for _, o := range page.Offers {
		report.Offers = append(report.Offers, offerJSON{
			File:     o.File,
			Title:    o.Title,
			Category: o.Category,
			Price:    price.Format(o.Price),
			UVP:      price.Format(o.UVP),
			Image:    o.Image,
			ValidTo:  o.ValidTo,
			Featured: o.Featured,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling build report: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for the JSON report.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
