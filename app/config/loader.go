package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML site configuration on top of the defaults.
// An empty path yields the defaults.
func Load(path string) (*SiteConfig, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(config)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", path, err)
	}

	slog.Debug("Site configuration loaded", "path", path, "palette_size", len(config.Palette))

	return config, nil
}

// setDefaults restores defaults for keys present in the file but left empty
func setDefaults(config *SiteConfig) {
	defaults := Default()

	if config.Manifest == "" {
		config.Manifest = defaults.Manifest
	}
	if config.ArticlesPath == "" {
		config.ArticlesPath = defaults.ArticlesPath
	}
	if !strings.HasSuffix(config.ArticlesPath, "/") {
		config.ArticlesPath += "/"
	}
	if len(config.Palette) == 0 {
		config.Palette = defaults.Palette
	}
	if config.Labels.ReadMore == "" {
		config.Labels.ReadMore = defaults.Labels.ReadMore
	}
	if config.Labels.Empty == "" {
		config.Labels.Empty = defaults.Labels.Empty
	}
}

func validate(config *SiteConfig) error {
	for i, color := range config.Palette {
		if !isHexColor(color.Background) {
			return fmt.Errorf("palette entry %d: invalid background color %q", i, color.Background)
		}
		if !isHexColor(color.Text) {
			return fmt.Errorf("palette entry %d: invalid text color %q", i, color.Text)
		}
	}

	if config.Selectors.FeaturedSection == "" {
		return fmt.Errorf("featured section selector is required")
	}
	if config.Selectors.FeaturedSlot == "" {
		return fmt.Errorf("featured slot selector is required")
	}
	if config.Selectors.Grid == "" {
		return fmt.Errorf("grid selector is required")
	}

	if strings.Contains(config.Manifest, "..") || strings.Contains(config.ArticlesPath, "..") {
		return fmt.Errorf("manifest and articles path must stay inside the site root")
	}

	return nil
}
