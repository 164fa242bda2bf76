package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/lysyi3m/article-index/app/articles"
	"github.com/lysyi3m/article-index/app/config"
)

type Generator struct {
	info         config.FeedInfo
	articlesPath string
	version      string
}

func NewGenerator(site *config.SiteConfig, version string) *Generator {
	return &Generator{
		info:         site.Feed,
		articlesPath: site.ArticlesPath,
		version:      version,
	}
}

// Run builds an RSS 2.0 document for items, which must already be sorted.
// baseURL is the public root of the site; links are relative when empty.
func (g *Generator) Run(baseURL string, items []articles.Metadata) (string, error) {
	base, err := g.parseBase(baseURL)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", g.info.Title, 4)
	g.writeElement(&buf, "link", g.resolve(base, ""), 4)
	g.writeElement(&buf, "description", g.info.Description, 4)

	if base != nil {
		buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
			html.EscapeString(g.resolve(base, "feed.xml"))))
	}

	lastBuildDate := time.Now().In(time.Local)
	if len(items) > 0 && !items[0].PublishDate.Equal(articles.Epoch) {
		lastBuildDate = items[0].PublishDate
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("Article-Index/%s", g.version), 4)
	g.writeElement(&buf, "language", g.info.Language, 4)

	for _, item := range items {
		g.writeItem(&buf, base, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, base *url.URL, item articles.Metadata) {
	link := g.resolve(base, g.articlesPath+item.Filename)

	buf.WriteString("    <item>\n")

	buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"%t\">", base != nil))
	xml.EscapeText(buf, []byte(link))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "link", link, 6)
	g.writeElement(buf, "description", item.Excerpt, 6)

	// undated articles carry no pubDate rather than 1970
	if !item.PublishDate.Equal(articles.Epoch) {
		g.writeElement(buf, "pubDate", item.PublishDate.Format(time.RFC1123Z), 6)
	}

	if image := g.resolveImage(base, item.ImageSource); image != "" {
		buf.WriteString(fmt.Sprintf("      <enclosure url=\"%s\" length=\"0\" type=\"%s\" />\n",
			html.EscapeString(image),
			html.EscapeString(imageType(image))))
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func (g *Generator) parseBase(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		return nil, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !g.isURL(baseURL) {
		return nil, fmt.Errorf("base URL must be absolute http(s), got %q", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base, nil
}

// resolve makes ref absolute against base; without a base it is returned as-is
func (g *Generator) resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	return base.ResolveReference(&url.URL{Path: ref}).String()
}

// resolveImage makes an image source absolute against base, keeping
// sources that are already absolute
func (g *Generator) resolveImage(base *url.URL, src string) string {
	if src == "" {
		return ""
	}

	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if base == nil || ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

func (g *Generator) isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func imageType(src string) string {
	ext := strings.ToLower(src)
	if i := strings.IndexAny(ext, "?#"); i >= 0 {
		ext = ext[:i]
	}

	switch {
	case strings.HasSuffix(ext, ".png"):
		return "image/png"
	case strings.HasSuffix(ext, ".gif"):
		return "image/gif"
	case strings.HasSuffix(ext, ".webp"):
		return "image/webp"
	case strings.HasSuffix(ext, ".svg"):
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
