package render

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/article-index/app/articles"
)

const placeholderWords = 5

// Grid renders one clickable card per article, in order
func (s *Session) Grid(items []articles.Metadata) (string, error) {
	var buf strings.Builder

	for _, article := range items {
		view := cardView{
			Href:        s.href(article),
			Title:       article.Title,
			Image:       article.ImageSource,
			DisplayDate: article.DisplayDate,
		}
		if !article.HasImage() {
			view.Placeholder = s.nextPlaceholder(shortTitle(article.Title))
		}

		if err := templates.ExecuteTemplate(&buf, "card", view); err != nil {
			return "", fmt.Errorf("failed to render card for %s: %w", article.Filename, err)
		}
		buf.WriteString("\n")
	}

	return buf.String(), nil
}

// shortTitle keeps the first five space-separated words and always
// appends an ellipsis
func shortTitle(title string) string {
	words := strings.Split(title, " ")
	if len(words) > placeholderWords {
		words = words[:placeholderWords]
	}
	return strings.Join(words, " ") + "..."
}
