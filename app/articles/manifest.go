package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

type manifestFile struct {
	Files []string `json:"files"`
}

// LoadManifest returns the filenames listed in the site's manifest.
// Any failure is logged and reported as an empty manifest.
func (c *Client) LoadManifest(ctx context.Context) Manifest {
	u := c.manifestURL()

	data, _, err := c.get(ctx, u, "application/json")
	if err != nil {
		slog.Error("Error fetching article list", "url", u.String(), "error", err)
		c.recorder.ManifestLoaded(false)
		return Manifest{}
	}

	manifest, err := parseManifest(data)
	if err != nil {
		slog.Error("Error fetching article list", "url", u.String(), "error", err)
		c.recorder.ManifestLoaded(false)
		return Manifest{}
	}

	c.recorder.ManifestLoaded(true)
	slog.Debug("Article list loaded", "url", u.String(), "count", len(manifest))

	return manifest
}

func parseManifest(data []byte) (Manifest, error) {
	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	manifest := make(Manifest, 0, len(file.Files))
	for _, name := range file.Files {
		if name == "" {
			continue
		}
		manifest = append(manifest, name)
	}

	return manifest, nil
}
