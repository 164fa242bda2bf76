package articles

import (
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// TitleHeadingIndex selects the article title among the page's h1
	// elements. The first h1 is the site banner, the second is the title.
	TitleHeadingIndex = 1

	NoTitle   = "No Title"
	NoContent = "No content available."
)

// Epoch is the publish date of articles without a usable <time> element
var Epoch = time.Unix(0, 0).UTC()

// Manifest is the ordered list of article filenames
type Manifest []string

// Document is one fetched and parsed article. It only lives until its
// metadata has been extracted.
type Document struct {
	Filename string
	URL      *url.URL
	Raw      []byte
	Tree     *goquery.Document
}

// Metadata is what the renderers need to know about one article
type Metadata struct {
	Title          string    `json:"title"`
	ImageSource    string    `json:"image_source,omitempty"`
	Excerpt        string    `json:"excerpt"`
	PublishDate    time.Time `json:"publish_date"`
	DisplayDate    string    `json:"display_date"`
	Filename       string    `json:"filename"`
	ReadingMinutes int       `json:"reading_minutes,omitempty"`
}

// HasImage reports whether the article declares an image
func (m Metadata) HasImage() bool {
	return m.ImageSource != ""
}

// Outcome is the tagged result of fetching and extracting one filename
type Outcome struct {
	Filename string
	Metadata *Metadata
	Err      error
}

// Result is everything one pipeline pass produced
type Result struct {
	PassID   string
	Manifest Manifest
	Articles []Metadata // successful articles, most recent first
	Failures []Outcome
	Duration time.Duration
}

// Empty reports whether there is nothing to render
func (r *Result) Empty() bool {
	return len(r.Articles) == 0
}
