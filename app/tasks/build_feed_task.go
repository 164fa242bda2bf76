package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

type BuildFeedTask struct {
	Task
	pipeline  PipelineInterface
	generator GeneratorInterface
	baseURL   string
}

func NewBuildFeedTask(output, baseURL string, pipeline PipelineInterface, generator GeneratorInterface) *BuildFeedTask {
	return &BuildFeedTask{
		Task:      NewTask(TaskTypeBuildFeed, output),
		pipeline:  pipeline,
		generator: generator,
		baseURL:   baseURL,
	}
}

func (t *BuildFeedTask) Execute(ctx context.Context) error {
	result, err := t.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	rss, err := t.generator.Run(t.baseURL, result.Articles)
	if err != nil {
		return fmt.Errorf("failed to generate feed: %w", err)
	}

	if err := writeFile(t.Target, []byte(rss)); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", string(t.Type),
		"output", t.Target,
		"pass_id", result.PassID,
		"items", len(result.Articles),
		"duration", t.GetDuration().String())

	return nil
}
