package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/article-index/app/api"
	"github.com/lysyi3m/article-index/app/articles"
	"github.com/lysyi3m/article-index/app/cfg"
	"github.com/lysyi3m/article-index/app/config"
	"github.com/lysyi3m/article-index/app/feed"
	"github.com/lysyi3m/article-index/app/logging"
	"github.com/lysyi3m/article-index/app/metrics"
	"github.com/lysyi3m/article-index/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logCloser, err := logging.Setup(logging.Options{Debug: appCfg.Debug, LogFile: appCfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	slog.Info("Starting Article Index", "version", appCfg.Version)

	site, err := config.Load(appCfg.SiteConfig)
	if err != nil {
		slog.Error("Failed to load site configuration", "path", appCfg.SiteConfig, "error", err)
		os.Exit(1)
	}

	client, err := articles.NewClient(articles.ClientOptions{
		Source:       appCfg.Source,
		SiteDir:      appCfg.SiteDir,
		Manifest:     site.Manifest,
		ArticlesPath: site.ArticlesPath,
		UserAgent:    appCfg.UserAgent,
		Timeout:      appCfg.Timeout,
	})
	if err != nil {
		slog.Error("Failed to create article client", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.New()
	pipeline := articles.NewPipeline(client, articles.PipelineOptions{
		Strict:        appCfg.Strict,
		MaxConcurrent: appCfg.MaxConcurrent,
		Recorder:      appMetrics,
	})
	generator := feed.NewGenerator(site, appCfg.Version)

	if appCfg.BuildMode() {
		if err := build(appCfg, site, pipeline, generator); err != nil {
			slog.Error("Build failed", "error", err)
			logCloser.Close()
			os.Exit(1)
		}
		return
	}

	serve(appCfg, site, pipeline, generator, appMetrics)
}

// build renders once into the configured outputs, then keeps rebuilding
// them when a rebuild interval is set
func build(appCfg *cfg.Cfg, site *config.SiteConfig, pipeline *articles.Pipeline, generator *feed.Generator) error {
	buildTasks := func() []tasks.TaskInterface {
		// page and feed of one round come from the same pass
		pass := tasks.NewSharedPipeline(pipeline)

		list := []tasks.TaskInterface{
			tasks.NewBuildPageTask(appCfg.Output, appCfg.HostPage, site, pass),
		}
		if appCfg.FeedOutput != "" {
			list = append(list, tasks.NewBuildFeedTask(appCfg.FeedOutput, appCfg.BaseUrl, pass, generator))
		}
		return list
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, task := range buildTasks() {
		task.Start()
		if err := task.Execute(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", task.GetType(), task.GetTarget(), err)
		}
	}

	if appCfg.Rebuild == 0 {
		return nil
	}

	scheduler := tasks.NewScheduler(buildTasks, appCfg.Rebuild, 1)
	scheduler.Start()

	slog.Info("Rebuilding periodically", "interval", appCfg.Rebuild.String(), "output", appCfg.Output)

	<-ctx.Done()

	slog.Info("Stopping rebuild scheduler")
	scheduler.Stop()

	return nil
}

func serve(appCfg *cfg.Cfg, site *config.SiteConfig, pipeline *articles.Pipeline, generator *feed.Generator, appMetrics *metrics.Metrics) {
	apiHandler := api.NewHandler(pipeline, generator, site, appCfg.HostPage, appCfg.BaseUrl, appCfg.Version)
	server := api.NewServer(apiHandler, appMetrics.Handler(), appCfg.SiteDir)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: appCfg.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", appCfg.Port, "site_dir", appCfg.SiteDir, "strict", appCfg.Strict)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("Article Index started successfully")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Article Index shutdown complete")
}
