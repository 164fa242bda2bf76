package cfg

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.SiteDir != "./site" {
		t.Errorf("Expected site dir './site', got '%s'", cfg.SiteDir)
	}
	if cfg.HostPage != filepath.Join("./site", "index.html") {
		t.Errorf("Expected host page under site dir, got '%s'", cfg.HostPage)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("Expected max concurrent 8, got %d", cfg.MaxConcurrent)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %s", cfg.Timeout)
	}
	if cfg.Strict {
		t.Error("Expected strict mode to be off by default")
	}
	if cfg.BuildMode() {
		t.Error("Expected serve mode when no output is given")
	}
}

func TestLoadArgsOverrides(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--site-dir", "/srv/blog",
		"--source", "https://blog.example.com/",
		"--output", "/tmp/index.html",
		"--strict",
		"--max-concurrent", "2",
		"--timeout", "5",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.HostPage != "/srv/blog/index.html" {
		t.Errorf("Expected host page '/srv/blog/index.html', got '%s'", cfg.HostPage)
	}
	if cfg.Source != "https://blog.example.com/" {
		t.Errorf("Expected source override, got '%s'", cfg.Source)
	}
	if !cfg.BuildMode() {
		t.Error("Expected build mode when output is set")
	}
	if !cfg.Strict {
		t.Error("Expected strict mode")
	}
	if cfg.MaxConcurrent != 2 {
		t.Errorf("Expected max concurrent 2, got %d", cfg.MaxConcurrent)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", cfg.Timeout)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST_PAGE", "/etc/article-index/page.html")

	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port from environment '9090', got '%s'", cfg.Port)
	}
	if cfg.HostPage != "/etc/article-index/page.html" {
		t.Errorf("Expected host page from environment, got '%s'", cfg.HostPage)
	}
}

func TestLoadArgsInvalidConcurrency(t *testing.T) {
	if _, err := LoadArgs([]string{"--max-concurrent", "0"}); err == nil {
		t.Error("Expected error for zero max-concurrent")
	}
}

func TestLoadArgsRebuild(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--output", "/tmp/index.html",
		"--feed-output", "/tmp/feed.xml",
		"--rebuild-interval", "60",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.FeedOutput != "/tmp/feed.xml" {
		t.Errorf("Expected feed output, got '%s'", cfg.FeedOutput)
	}
	if cfg.Rebuild != time.Minute {
		t.Errorf("Expected rebuild interval 1m, got %s", cfg.Rebuild)
	}

	if _, err := LoadArgs([]string{"--feed-output", "/tmp/feed.xml"}); err == nil {
		t.Error("Expected error for feed-output without output")
	}
}

func TestGetPanicsBeforeLoad(t *testing.T) {
	saved := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = saved
		if recover() == nil {
			t.Error("Expected Get to panic before Load")
		}
	}()

	Get()
}

func TestStrictHelpDescribesDefault(t *testing.T) {
	var raw rawCfg
	parser := flags.NewParser(&raw, flags.None)

	option := parser.FindOptionByLongName("strict")
	if option == nil {
		t.Fatal("Expected --strict option")
	}
	if !strings.Contains(option.Description, "default skips failed articles") {
		t.Errorf("Expected --strict help to state the lenient default, got %q", option.Description)
	}

	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Strict {
		t.Error("Expected lenient mode by default")
	}
}
