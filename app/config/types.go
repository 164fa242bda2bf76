package config

// SiteConfig describes where the pipeline finds its inputs and how the
// rendered page looks
type SiteConfig struct {
	Manifest     string    `yaml:"manifest"`
	ArticlesPath string    `yaml:"articles_path"`
	Palette      []Color   `yaml:"palette"`
	Selectors    Selectors `yaml:"selectors"`
	Labels       Labels    `yaml:"labels"`
	Feed         FeedInfo  `yaml:"feed"`
}

// Color is one placeholder palette entry, hex without the leading '#'
type Color struct {
	Background string `yaml:"bg"`
	Text       string `yaml:"text"`
}

// Selectors locate the rendering slots in the host page
type Selectors struct {
	FeaturedSection string `yaml:"featured_section"`
	FeaturedSlot    string `yaml:"featured_slot"`
	Grid            string `yaml:"grid"`
}

// Labels are the fixed strings written into the page
type Labels struct {
	ReadMore string `yaml:"read_more"`
	Empty    string `yaml:"empty"`
}

// FeedInfo describes the RSS channel built from the articles
type FeedInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}
