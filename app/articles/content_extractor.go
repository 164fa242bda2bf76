package articles

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/go-shiori/go-readability"
)

const wordsPerMinute = 200

type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ReadingMinutes estimates how long the readable body of doc takes to read.
// It returns 0 when no readable content can be found.
func (e *ContentExtractor) ReadingMinutes(doc *Document) int {
	if len(doc.Raw) == 0 {
		return 0
	}

	article, err := readability.FromReader(bytes.NewReader(doc.Raw), doc.URL)
	if err != nil {
		slog.Debug("Readable content not found", "article", doc.Filename, "error", err)
		return 0
	}

	words := len(strings.Fields(article.TextContent))
	if words == 0 {
		return 0
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}
