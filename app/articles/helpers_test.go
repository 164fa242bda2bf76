package articles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type testPage struct {
	status      int
	contentType string
	body        string
}

// testSite serves fixed pages and counts requests per path
type testSite struct {
	mu    sync.Mutex
	pages map[string]testPage
	hits  map[string]int
}

func newTestSite(t *testing.T, pages map[string]testPage) (*httptest.Server, *testSite) {
	t.Helper()

	site := &testSite{pages: pages, hits: make(map[string]int)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		site.mu.Lock()
		site.hits[r.URL.Path]++
		page, ok := site.pages[r.URL.Path]
		site.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		if page.contentType != "" {
			w.Header().Set("Content-Type", page.contentType)
		}
		status := page.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write([]byte(page.body))
	}))
	t.Cleanup(server.Close)

	return server, site
}

func (s *testSite) hitsWithPrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for path, n := range s.hits {
		if strings.HasPrefix(path, prefix) {
			total += n
		}
	}
	return total
}

func newTestClient(t *testing.T, source string) *Client {
	t.Helper()

	client, err := NewClient(ClientOptions{
		Source:       source,
		Manifest:     "articles.json",
		ArticlesPath: "articles/",
		UserAgent:    "test-agent",
		Timeout:      5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func newTestDocument(t *testing.T, filename, html string) *Document {
	t.Helper()

	tree, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse test HTML: %v", err)
	}
	return &Document{Filename: filename, Raw: []byte(html), Tree: tree}
}

func articleHTML(title, datetime, display string) string {
	timeEl := ""
	if datetime != "" {
		timeEl = `<time datetime="` + datetime + `">` + display + `</time>`
	}
	return `<!DOCTYPE html>
<html>
<body>
	<h1>My Blog</h1>
	<article>
		<h1>` + title + `</h1>
		` + timeEl + `
		<p>Body of ` + title + `.</p>
	</article>
</body>
</html>`
}

// countingRecorder records pipeline events
type countingRecorder struct {
	mu           sync.Mutex
	manifestOK   int
	manifestFail int
	articleOK    int
	articleFail  int
	passes       int
	failedPasses int
}

func (r *countingRecorder) ManifestLoaded(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.manifestOK++
	} else {
		r.manifestFail++
	}
}

func (r *countingRecorder) ArticleFetched(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.articleOK++
	} else {
		r.articleFail++
	}
}

func (r *countingRecorder) PassCompleted(_ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes++
	if err != nil {
		r.failedPasses++
	}
}
