package cfg

import "time"

type Cfg struct {
	// Site configuration
	SiteDir    string
	Source     string
	HostPage   string
	SiteConfig string
	BaseUrl    string

	// Application configuration
	Port          string
	Output        string
	FeedOutput    string
	Rebuild       time.Duration
	Strict        bool
	MaxConcurrent int
	Timeout       time.Duration

	// Application metadata
	UserAgent string
	LogFile   string
	Debug     bool
	Version   string
}

// BuildMode reports whether a single pass should be written to Output
// instead of starting the HTTP server.
func (c *Cfg) BuildMode() bool {
	return c.Output != ""
}
