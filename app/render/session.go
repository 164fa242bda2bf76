package render

import (
	"github.com/lysyi3m/article-index/app/articles"
	"github.com/lysyi3m/article-index/app/config"
)

// Session renders one page. It owns the round-robin placeholder counter
// shared by the featured and grid renderers.
type Session struct {
	palette      []config.Color
	articlesPath string
	readMore     string
	colorIndex   int
}

func NewSession(site *config.SiteConfig) *Session {
	palette := site.Palette
	if len(palette) == 0 {
		palette = config.DefaultPalette()
	}

	return &Session{
		palette:      palette,
		articlesPath: site.ArticlesPath,
		readMore:     site.Labels.ReadMore,
	}
}

// ColorIndex is the number of placeholders rendered so far
func (s *Session) ColorIndex() int {
	return s.colorIndex
}

// nextPlaceholder picks the palette entry for the current index and
// advances the counter
func (s *Session) nextPlaceholder(label string) *placeholderView {
	color := s.palette[s.colorIndex%len(s.palette)]
	s.colorIndex++

	return &placeholderView{
		Background: color.Background,
		Text:       color.Text,
		Label:      label,
	}
}

func (s *Session) href(article articles.Metadata) string {
	return s.articlesPath + article.Filename
}
