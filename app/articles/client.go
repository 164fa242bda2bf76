package articles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ClientOptions configures where and how the client fetches the site
type ClientOptions struct {
	// Source is the base URL of the site. When empty, SiteDir is read from
	// disk through a file:// transport.
	Source       string
	SiteDir      string
	Manifest     string
	ArticlesPath string
	UserAgent    string
	Timeout      time.Duration
}

// Client fetches the manifest and the article documents of one site
type Client struct {
	httpClient   *http.Client
	base         *url.URL
	manifest     string
	articlesPath string
	userAgent    string
	recorder     Recorder
}

func NewClient(opts ClientOptions) (*Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
		MaxIdleConnsPerHost: 5,
	}

	source := opts.Source
	if source == "" {
		if opts.SiteDir == "" {
			return nil, fmt.Errorf("either a source URL or a site directory is required")
		}
		transport.RegisterProtocol("file", http.NewFileTransport(http.Dir(opts.SiteDir)))
		source = "file:///"
	}

	base, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	switch base.Scheme {
	case "http", "https", "file":
	default:
		return nil, fmt.Errorf("unsupported source URL scheme %q", base.Scheme)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		base:         base,
		manifest:     opts.Manifest,
		articlesPath: opts.ArticlesPath,
		userAgent:    opts.UserAgent,
		recorder:     nopRecorder{},
	}, nil
}

// SetRecorder routes fetch events to r
func (c *Client) SetRecorder(r Recorder) {
	if r == nil {
		r = nopRecorder{}
	}
	c.recorder = r
}

func (c *Client) manifestURL() *url.URL {
	return c.base.ResolveReference(&url.URL{Path: c.manifest})
}

func (c *Client) articleURL(filename string) *url.URL {
	return c.base.ResolveReference(&url.URL{Path: c.articlesPath + filename})
}

// get fetches u and returns its body and declared content type
func (c *Client) get(ctx context.Context, u *url.URL, accept string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
