package articles

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// FetchDocument retrieves articles/<filename> and parses it.
// Unlike LoadManifest, failures are returned to the caller.
func (c *Client) FetchDocument(ctx context.Context, filename string) (*Document, error) {
	u := c.articleURL(filename)

	data, contentType, err := c.get(ctx, u, "text/html, application/xhtml+xml")
	if err != nil {
		c.recorder.ArticleFetched(false)
		return nil, fmt.Errorf("failed to fetch article %s: %w", filename, err)
	}

	tree, err := parseHTML(data, contentType)
	if err != nil {
		c.recorder.ArticleFetched(false)
		return nil, fmt.Errorf("failed to parse article %s: %w", filename, err)
	}

	c.recorder.ArticleFetched(true)

	return &Document{
		Filename: filename,
		URL:      u,
		Raw:      data,
		Tree:     tree,
	}, nil
}

// parseHTML decodes data to UTF-8 using the declared or sniffed charset
// and builds a goquery document from it
func parseHTML(data []byte, contentType string) (*goquery.Document, error) {
	var reader io.Reader = bytes.NewReader(data)

	decoded, err := charset.NewReader(reader, contentType)
	if err != nil {
		slog.Debug("Unknown charset, parsing as UTF-8", "content_type", contentType, "error", err)
		decoded = bytes.NewReader(data)
	}

	return goquery.NewDocumentFromReader(decoded)
}
