package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lysyi3m/article-index/app/config"
	"github.com/lysyi3m/article-index/app/render"
)

type BuildPageTask struct {
	Task
	pipeline PipelineInterface
	site     *config.SiteConfig
	hostPage string
}

func NewBuildPageTask(output, hostPage string, site *config.SiteConfig, pipeline PipelineInterface) *BuildPageTask {
	return &BuildPageTask{
		Task:     NewTask(TaskTypeBuildPage, output),
		pipeline: pipeline,
		site:     site,
		hostPage: hostPage,
	}
}

func (t *BuildPageTask) Execute(ctx context.Context) error {
	host, err := os.ReadFile(t.hostPage)
	if err != nil {
		return fmt.Errorf("failed to read host page: %w", err)
	}

	result, err := t.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	page, stats, err := render.NewPage(host, t.site).Render(result.Articles)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if err := writeFile(t.Target, page); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", string(t.Type),
		"output", t.Target,
		"pass_id", result.PassID,
		"cards", stats.Cards,
		"featured", stats.Featured,
		"failed", len(result.Failures),
		"duration", t.GetDuration().String())

	return nil
}

// writeFile replaces path atomically so readers never see a partial page
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
