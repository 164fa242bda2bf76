package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lysyi3m/article-index/app/articles"
	"github.com/lysyi3m/article-index/app/config"
)

// Page fills a host page with rendered articles
type Page struct {
	host []byte
	site *config.SiteConfig
}

func NewPage(host []byte, site *config.SiteConfig) *Page {
	return &Page{host: host, site: site}
}

// Stats describes what one Render call wrote
type Stats struct {
	Featured     bool
	Cards        int
	Placeholders int
	Empty        bool
}

// Render returns the host page with the featured slot and the grid filled
// from items, which must already be sorted. A missing container silently
// skips its renderer.
func (p *Page) Render(items []articles.Metadata) ([]byte, Stats, error) {
	var stats Stats

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(p.host))
	if err != nil {
		return nil, stats, fmt.Errorf("failed to parse host page: %w", err)
	}

	if len(items) == 0 {
		stats.Empty = true
		if err := p.renderEmpty(doc); err != nil {
			return nil, stats, err
		}
		return p.output(doc, stats)
	}

	session := NewSession(p.site)

	if slot := doc.Find(p.site.Selectors.FeaturedSlot).First(); slot.Length() > 0 {
		html, err := session.Featured(items[0])
		if err != nil {
			return nil, stats, err
		}
		slot.SetHtml(html)
		stats.Featured = true
	} else {
		slog.Debug("Featured slot not found in host page", "selector", p.site.Selectors.FeaturedSlot)
	}

	if grid := doc.Find(p.site.Selectors.Grid).First(); grid.Length() > 0 {
		html, err := session.Grid(items[1:])
		if err != nil {
			return nil, stats, err
		}
		grid.SetHtml(html)
		stats.Cards = len(items) - 1
	} else {
		slog.Debug("Grid container not found in host page", "selector", p.site.Selectors.Grid)
	}

	stats.Placeholders = session.ColorIndex()

	return p.output(doc, stats)
}

// renderEmpty hides the featured section and writes the empty message
// into the grid
func (p *Page) renderEmpty(doc *goquery.Document) error {
	if section := doc.Find(p.site.Selectors.FeaturedSection).First(); section.Length() > 0 {
		hide(section)
	}

	if grid := doc.Find(p.site.Selectors.Grid).First(); grid.Length() > 0 {
		var buf strings.Builder
		if err := templates.ExecuteTemplate(&buf, "empty", p.site.Labels.Empty); err != nil {
			return fmt.Errorf("failed to render empty state: %w", err)
		}
		grid.SetHtml(buf.String())
	}

	return nil
}

func (p *Page) output(doc *goquery.Document, stats Stats) ([]byte, Stats, error) {
	html, err := doc.Html()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to serialize page: %w", err)
	}
	return []byte(html), stats, nil
}

func hide(sel *goquery.Selection) {
	style := strings.TrimSpace(sel.AttrOr("style", ""))
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	if style != "" {
		style += " "
	}
	sel.SetAttr("style", style+"display: none;")
}
