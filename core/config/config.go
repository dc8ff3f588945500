// Package config holds the site-level build settings. Values come from
// UWSITE_* environment variables with sensible defaults, so the CI
// pipeline can retarget the build without touching flags.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Site is the site-level configuration for the offer build.
type Site struct {
	// Title and Description fill the {{TITLE}} / {{DESCRIPTION}}
	// template tokens.
	Title       string `envconfig:"TITLE" default:"Unger Warburg — Angebote"`
	Description string `envconfig:"DESCRIPTION" default:"Aktuelle Angebote und Aktionen bei Unger in Warburg."`

	// ImageBase is prefixed to relative offer image paths.
	ImageBase string `envconfig:"IMAGE_BASE" default:"assets/"`

	// CTALink is the call-to-action target used when an offer names none.
	CTALink string `envconfig:"CTA_LINK" default:"https://unger-warburg.de/#kontakt"`
}

// Load reads the site configuration from the environment.
func Load() (Site, error) {
	var s Site
	if err := envconfig.Process("uwsite", &s); err != nil {
		return Site{}, fmt.Errorf("reading site config: %w", err)
	}
	return s, nil
}
