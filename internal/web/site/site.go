// Package site holds the branding constants rendered by the web components.
package site

import (
	"strings"

	"github.com/AryanPandeyy/opencap.co/internal/config"
)

// DefaultCopyrightYear is the year shown in the footer copyright line.
const DefaultCopyrightYear = 2024

// Site is the branding and link configuration shared by the web components.
type Site struct {
	Title         string
	TwitterURL    string
	GitHubURL     string
	DiscordURL    string
	HomeURL       string
	CopyrightYear int
}

// Default returns the built-in site constants.
func Default() Site {
	return Site{
		Title:         "OpenCap",
		TwitterURL:    "https://twitter.com/opencapco",
		GitHubURL:     "https://github.com/opencapco/opencap.co",
		DiscordURL:    "https://discord.gg/opencap",
		HomeURL:       "/#",
		CopyrightYear: DefaultCopyrightYear,
	}
}

// FromConfig returns Default overlaid with the non-empty SITE_* settings in cfg.
func FromConfig(cfg *config.Config) Site {
	s := Default()
	if cfg == nil {
		return s
	}
	overlay := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	overlay(&s.Title, cfg.SiteTitle)
	overlay(&s.TwitterURL, cfg.SiteTwitterURL)
	overlay(&s.GitHubURL, cfg.SiteGitHubURL)
	overlay(&s.DiscordURL, cfg.SiteDiscordURL)
	return s
}
