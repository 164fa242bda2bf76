package render

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/article-index/app/articles"
)

// Featured renders the preview card of the most recent article. Without an
// image the placeholder shows the full title.
func (s *Session) Featured(article articles.Metadata) (string, error) {
	view := cardView{
		Href:        s.href(article),
		Title:       article.Title,
		Image:       article.ImageSource,
		DisplayDate: article.DisplayDate,
		Excerpt:     article.Excerpt,
		ReadMore:    s.readMore,
	}
	if !article.HasImage() {
		view.Placeholder = s.nextPlaceholder(article.Title)
	}

	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, "featured", view); err != nil {
		return "", fmt.Errorf("failed to render featured article %s: %w", article.Filename, err)
	}

	return buf.String(), nil
}
