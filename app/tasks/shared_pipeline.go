package tasks

import (
	"context"
	"sync"

	"github.com/lysyi3m/article-index/app/articles"
)

var _ PipelineInterface = (*SharedPipeline)(nil)

// SharedPipeline hands every task of one rebuild round the same pass.
// Only a successful result is kept, so a retried task runs a new pass.
type SharedPipeline struct {
	pipeline PipelineInterface
	mu       sync.Mutex
	result   *articles.Result
}

func NewSharedPipeline(pipeline PipelineInterface) *SharedPipeline {
	return &SharedPipeline{pipeline: pipeline}
}

func (s *SharedPipeline) Run(ctx context.Context) (*articles.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result, nil
	}

	result, err := s.pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}

	s.result = result
	return result, nil
}
