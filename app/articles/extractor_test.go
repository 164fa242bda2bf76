package articles

import (
	"testing"
	"time"
)

func TestExtract_CompleteArticle(t *testing.T) {
	doc := newTestDocument(t, "hello.html", `
	<html>
	<body>
		<header><h1>Site Banner</h1></header>
		<img src="images/cover.png" alt="cover">
		<h1>  Hello,
			World </h1>
		<time datetime="2024-03-15T10:30:00Z">March 15, 2024</time>
		<p>First   paragraph
		of the article.</p>
		<p>Second paragraph.</p>
		<img src="images/second.png">
	</body>
	</html>`)

	meta := Extract(doc)

	if meta.Title != "Hello, World" {
		t.Errorf("Expected title 'Hello, World', got '%s'", meta.Title)
	}
	if meta.ImageSource != "images/cover.png" {
		t.Errorf("Expected image 'images/cover.png', got '%s'", meta.ImageSource)
	}
	if !meta.HasImage() {
		t.Error("Expected HasImage to be true")
	}
	if meta.Excerpt != "First paragraph of the article." {
		t.Errorf("Expected first paragraph as excerpt, got '%s'", meta.Excerpt)
	}
	expected := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if !meta.PublishDate.Equal(expected) {
		t.Errorf("Expected publish date %v, got %v", expected, meta.PublishDate)
	}
	if meta.DisplayDate != "March 15, 2024" {
		t.Errorf("Expected display date 'March 15, 2024', got '%s'", meta.DisplayDate)
	}
	if meta.Filename != "hello.html" {
		t.Errorf("Expected filename 'hello.html', got '%s'", meta.Filename)
	}
}

func TestExtract_MissingTimeElement(t *testing.T) {
	doc := newTestDocument(t, "undated.html", `<h1>Banner</h1><h1>Undated</h1><p>Text</p>`)

	meta := Extract(doc)

	if !meta.PublishDate.Equal(Epoch) {
		t.Errorf("Expected epoch publish date, got %v", meta.PublishDate)
	}
	if meta.PublishDate.Unix() != 0 {
		t.Errorf("Expected unix 0, got %d", meta.PublishDate.Unix())
	}
	if meta.DisplayDate != "" {
		t.Errorf("Expected empty display date, got '%s'", meta.DisplayDate)
	}
}

func TestExtract_MissingParagraph(t *testing.T) {
	doc := newTestDocument(t, "short.html", `<h1>Banner</h1><h1>Short</h1><div>no paragraphs</div>`)

	meta := Extract(doc)

	if meta.Excerpt != NoContent {
		t.Errorf("Expected excerpt %q, got %q", NoContent, meta.Excerpt)
	}
}

func TestExtract_EmptyParagraph(t *testing.T) {
	doc := newTestDocument(t, "blank.html", `<h1>Banner</h1><h1>Blank</h1><p>   </p><p>Later</p>`)

	meta := Extract(doc)

	if meta.Excerpt != NoContent {
		t.Errorf("Expected excerpt %q for blank first paragraph, got %q", NoContent, meta.Excerpt)
	}
}

func TestExtract_SingleHeading(t *testing.T) {
	doc := newTestDocument(t, "banner-only.html", `<h1>Only Banner</h1><p>Text</p>`)

	meta := Extract(doc)

	if meta.Title != NoTitle {
		t.Errorf("Expected title %q, got %q", NoTitle, meta.Title)
	}
}

func TestExtract_NoHeadings(t *testing.T) {
	doc := newTestDocument(t, "bare.html", `<p>Text</p>`)

	if meta := Extract(doc); meta.Title != NoTitle {
		t.Errorf("Expected title %q, got %q", NoTitle, meta.Title)
	}
}

func TestExtract_ThirdHeadingIgnored(t *testing.T) {
	doc := newTestDocument(t, "many.html", `<h1>Banner</h1><h1>Real Title</h1><h1>Section</h1>`)

	if meta := Extract(doc); meta.Title != "Real Title" {
		t.Errorf("Expected 'Real Title', got '%s'", meta.Title)
	}
}

func TestExtract_Images(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{"no image", `<p>text</p>`, ""},
		{"first image without src", `<img alt="x"><img src="b.png">`, ""},
		{"empty src", `<img src="">`, ""},
		{"absolute src", `<img src="https://cdn.example.com/a.jpg">`, "https://cdn.example.com/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Extract(newTestDocument(t, "img.html", tt.html))
			if meta.ImageSource != tt.expected {
				t.Errorf("Expected image %q, got %q", tt.expected, meta.ImageSource)
			}
			if meta.HasImage() != (tt.expected != "") {
				t.Errorf("HasImage mismatch for %q", tt.expected)
			}
		})
	}
}

func TestExtract_TimeVariants(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		expected    time.Time
		displayDate string
	}{
		{
			name:        "date only",
			html:        `<time datetime="2023-07-01">July 1st</time>`,
			expected:    time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			displayDate: "July 1st",
		},
		{
			name:        "with offset",
			html:        `<time datetime="2023-07-01T12:00:00+02:00">noon</time>`,
			expected:    time.Date(2023, 7, 1, 10, 0, 0, 0, time.UTC),
			displayDate: "noon",
		},
		{
			name:        "missing datetime attribute",
			html:        `<time>Someday</time>`,
			expected:    Epoch,
			displayDate: "Someday",
		},
		{
			name:        "unparsable datetime",
			html:        `<time datetime="not a date">Soon</time>`,
			expected:    Epoch,
			displayDate: "Soon",
		},
		{
			name:        "only first time element counts",
			html:        `<time datetime="2020-01-01">first</time><time datetime="2025-01-01">second</time>`,
			expected:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			displayDate: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Extract(newTestDocument(t, "time.html", tt.html))
			if !meta.PublishDate.Equal(tt.expected) {
				t.Errorf("Expected publish date %v, got %v", tt.expected, meta.PublishDate)
			}
			if meta.DisplayDate != tt.displayDate {
				t.Errorf("Expected display date %q, got %q", tt.displayDate, meta.DisplayDate)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune
	if got := normalizeText("  Cafe\u0301 \n\t menu "); got != "Caf\u00e9 menu" {
		t.Errorf("Expected NFC-composed collapsed text, got %q", got)
	}
}
