package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Site configuration
	SiteDir    string `long:"site-dir" env:"SITE_DIR" default:"./site" description:"Directory holding the host page, articles.json and articles/"`
	Source     string `long:"source" env:"SOURCE_URL" description:"Base URL to fetch articles.json and articles/ from (defaults to site-dir on disk)"`
	HostPage   string `long:"host-page" env:"HOST_PAGE" description:"Host page template (defaults to <site-dir>/index.html)"`
	SiteConfig string `long:"site-config" env:"SITE_CONFIG" description:"Optional YAML file overriding palette, selectors and labels"`
	BaseUrl    string `long:"base-url" env:"BASE_URL" description:"Public base URL of the site (e.g., https://blog.example.com)"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	Output          string `long:"output" short:"o" env:"OUTPUT" description:"Render once into this file and exit instead of serving"`
	FeedOutput      string `long:"feed-output" env:"FEED_OUTPUT" description:"In build mode, also write the RSS feed to this file"`
	RebuildInterval int    `long:"rebuild-interval" env:"REBUILD_INTERVAL" default:"0" description:"In build mode, keep running and rebuild every N seconds (0 = build once)"`
	Strict          bool   `long:"strict" env:"STRICT" description:"Abort the whole render when any single article fails to fetch (default skips failed articles and renders the rest)"`
	MaxConcurrent   int    `long:"max-concurrent" env:"MAX_CONCURRENT" default:"8" description:"Maximum number of articles fetched in parallel"`
	Timeout         int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP timeout in seconds for manifest and article requests"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Article Index/1.0" description:"User agent string for HTTP requests"`
	LogFile   string `long:"log-file" env:"LOG_FILE" description:"Also write logs to this file (rotated)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load reads configuration from .env, the environment and os.Args.
// It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Warning: failed to read .env: %v\n", err)
	}

	cfg, err := LoadArgs(os.Args[1:])
	if err != nil || cfg == nil {
		return cfg, err
	}

	globalCfg = cfg

	return cfg, nil
}

// LoadArgs parses the given command-line arguments together with the
// environment without touching the global configuration.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SiteDir:       raw.SiteDir,
		Source:        raw.Source,
		HostPage:      cmp.Or(raw.HostPage, filepath.Join(raw.SiteDir, "index.html")),
		SiteConfig:    raw.SiteConfig,
		BaseUrl:       raw.BaseUrl,
		Port:          raw.Port,
		Output:        raw.Output,
		FeedOutput:    raw.FeedOutput,
		Rebuild:       time.Duration(raw.RebuildInterval) * time.Second,
		Strict:        raw.Strict,
		MaxConcurrent: raw.MaxConcurrent,
		Timeout:       time.Duration(raw.Timeout) * time.Second,
		UserAgent:     raw.UserAgent,
		LogFile:       raw.LogFile,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.MaxConcurrent <= 0 {
		return fmt.Errorf("max-concurrent must be positive, got %d", cfg.MaxConcurrent)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Rebuild < 0 {
		return fmt.Errorf("rebuild-interval must not be negative, got %s", cfg.Rebuild)
	}
	if cfg.FeedOutput != "" && cfg.Output == "" {
		return fmt.Errorf("feed-output requires output")
	}
	return nil
}
