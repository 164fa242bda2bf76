package tasks

import (
	"context"

	"github.com/lysyi3m/article-index/app/articles"
)

// TaskSchedulerInterface defines the interface for periodic rebuilds.
// Example usage:
//
//	scheduler := NewScheduler(buildTasks, time.Minute, 2)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

type PipelineInterface interface {
	Run(ctx context.Context) (*articles.Result, error)
}

type GeneratorInterface interface {
	Run(baseURL string, items []articles.Metadata) (string, error)
}

// TaskFactory returns a fresh set of tasks for one rebuild round
type TaskFactory func() []TaskInterface
