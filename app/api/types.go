package api

import (
	"context"

	"github.com/lysyi3m/article-index/app/articles"
	"github.com/lysyi3m/article-index/app/feed"
)

type PipelineInterface interface {
	Run(ctx context.Context) (*articles.Result, error)
}

type GeneratorInterface interface {
	Run(baseURL string, items []articles.Metadata) (string, error)
}

var (
	_ PipelineInterface  = (*articles.Pipeline)(nil)
	_ GeneratorInterface = (*feed.Generator)(nil)
)

type failureView struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}
