package config

import "regexp"

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// DefaultPalette is the placeholder palette used when no site config overrides it
func DefaultPalette() []Color {
	return []Color{
		{Background: "4B5563", Text: "F9FAFB"},
		{Background: "1D4ED8", Text: "EFF6FF"},
		{Background: "BE123C", Text: "FDE2E8"},
		{Background: "047857", Text: "D1FAE5"},
		{Background: "7C3AED", Text: "F5F3FF"},
	}
}

// Default returns the site configuration matching the stock host page
func Default() *SiteConfig {
	return &SiteConfig{
		Manifest:     "articles.json",
		ArticlesPath: "articles/",
		Palette:      DefaultPalette(),
		Selectors: Selectors{
			FeaturedSection: "#latest-article-preview",
			FeaturedSlot:    "#latest-article-preview .preview-card",
			Grid:            "#articles-grid .grid-container",
		},
		Labels: Labels{
			ReadMore: "Read More",
			Empty:    "No articles yet!",
		},
		Feed: FeedInfo{
			Title:       "Articles",
			Description: "Latest articles",
		},
	}
}

func isHexColor(s string) bool {
	return hexColor.MatchString(s)
}
