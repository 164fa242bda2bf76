package articles

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"
)

// Extract reads the display metadata of doc from fixed structural
// positions. Every field has a fallback, so extraction never fails.
func Extract(doc *Document) Metadata {
	tree := doc.Tree

	meta := Metadata{
		Title:       extractTitle(tree),
		ImageSource: extractImage(tree),
		Excerpt:     extractExcerpt(tree),
		PublishDate: Epoch,
		Filename:    doc.Filename,
	}

	if timeEl := tree.Find("time").First(); timeEl.Length() > 0 {
		meta.PublishDate = parseDatetime(timeEl.AttrOr("datetime", ""))
		meta.DisplayDate = normalizeText(timeEl.Text())
	}

	return meta
}

func extractTitle(tree *goquery.Document) string {
	headings := tree.Find("h1")
	if headings.Length() <= TitleHeadingIndex {
		return NoTitle
	}

	if title := normalizeText(headings.Eq(TitleHeadingIndex).Text()); title != "" {
		return title
	}
	return NoTitle
}

func extractImage(tree *goquery.Document) string {
	src, ok := tree.Find("img").First().Attr("src")
	if !ok {
		return ""
	}
	return strings.TrimSpace(src)
}

func extractExcerpt(tree *goquery.Document) string {
	if excerpt := normalizeText(tree.Find("p").First().Text()); excerpt != "" {
		return excerpt
	}
	return NoContent
}

// parseDatetime parses a <time datetime> value, falling back to the epoch
func parseDatetime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return Epoch
	}

	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return Epoch
	}
	return parsed.UTC()
}

// normalizeText collapses whitespace runs and applies NFC
func normalizeText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
