package articles

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs one pass over the articles of a site
type Pipeline struct {
	client        *Client
	content       *ContentExtractor
	recorder      Recorder
	strict        bool
	maxConcurrent int
}

// PipelineOptions tunes how articles are fetched
type PipelineOptions struct {
	// Strict aborts the whole pass on the first article failure instead of
	// skipping the failed article.
	Strict        bool
	MaxConcurrent int
	Recorder      Recorder
}

func NewPipeline(client *Client, opts PipelineOptions) *Pipeline {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}
	client.SetRecorder(recorder)

	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	return &Pipeline{
		client:        client,
		content:       NewContentExtractor(),
		recorder:      recorder,
		strict:        opts.Strict,
		maxConcurrent: maxConcurrent,
	}
}

// Run executes one pass. An error is only returned in strict mode, when an
// article could not be fetched or the context was cancelled.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	passID := uuid.NewString()

	result, err := p.run(ctx, passID)

	duration := time.Since(startTime)
	p.recorder.PassCompleted(duration, err)

	if err != nil {
		slog.Error("Render pass failed", "pass_id", passID, "duration", duration, "error", err)
		return nil, err
	}

	result.Duration = duration
	slog.Info("Render pass completed",
		"pass_id", passID,
		"listed", len(result.Manifest),
		"rendered", len(result.Articles),
		"failed", len(result.Failures),
		"duration", duration)

	return result, nil
}

func (p *Pipeline) run(ctx context.Context, passID string) (*Result, error) {
	manifest := p.client.LoadManifest(ctx)

	result := &Result{
		PassID:   passID,
		Manifest: manifest,
		Articles: []Metadata{},
	}

	if len(manifest) == 0 {
		return result, nil
	}

	outcomes, err := p.fetchAll(ctx, manifest)
	if err != nil {
		return nil, err
	}

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			result.Failures = append(result.Failures, outcome)
			continue
		}
		result.Articles = append(result.Articles, *outcome.Metadata)
	}

	SortByRecency(result.Articles)

	return result, nil
}

// fetchAll fetches and extracts every filename concurrently. Outcomes are
// indexed like manifest regardless of completion order.
func (p *Pipeline) fetchAll(ctx context.Context, manifest Manifest) ([]Outcome, error) {
	outcomes := make([]Outcome, len(manifest))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)

	for i, filename := range manifest {
		g.Go(func() error {
			outcomes[i] = p.process(gctx, filename)

			if err := outcomes[i].Err; err != nil {
				if p.strict {
					return fmt.Errorf("fetching article %s: %w", filename, err)
				}
				slog.Warn("Skipping article", "article", filename, "error", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (p *Pipeline) process(ctx context.Context, filename string) Outcome {
	doc, err := p.client.FetchDocument(ctx, filename)
	if err != nil {
		return Outcome{Filename: filename, Err: err}
	}

	meta := Extract(doc)
	meta.ReadingMinutes = p.content.ReadingMinutes(doc)

	return Outcome{Filename: filename, Metadata: &meta}
}
