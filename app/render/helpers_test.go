package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lysyi3m/article-index/app/articles"
)

const hostPage = `<!DOCTYPE html>
<html>
<head><title>Blog</title></head>
<body>
	<section id="latest-article-preview">
		<div class="preview-card"><p>Loading...</p></div>
	</section>
	<section id="articles-grid">
		<div class="grid-container"><p>Loading...</p></div>
	</section>
</body>
</html>`

func testArticle(filename, title string, day int, image string) articles.Metadata {
	return articles.Metadata{
		Title:       title,
		ImageSource: image,
		Excerpt:     "Excerpt of " + title,
		PublishDate: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		DisplayDate: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format("January 2, 2006"),
		Filename:    filename,
	}
}

func parseOutput(t *testing.T, data []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to parse rendered page: %v", err)
	}
	return doc
}
