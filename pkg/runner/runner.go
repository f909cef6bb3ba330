package runner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/fix"
	"github.com/yaklabco/gostylecheck/pkg/fsutil"
)

// Runner fans per-file checking out over a bounded worker pool.
//
// A Runner carries no per-run state and is safe for concurrent use.
type Runner struct {
	// Engine evaluates rules against extracted documents.
	Engine *check.Engine
}

// New creates a Runner backed by the given engine.
func New(engine *check.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// When opts.Config.Fix is set, each file runs through the fix pipeline
// instead of a plain check.
//
// Outcomes land in discovery order regardless of which worker finishes
// first. Per-file failures are recorded on the outcome, not returned:
// Run itself fails only when discovery fails or the context is
// cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		result.Stats.Elapsed = time.Since(start)
		return result, nil
	}

	var pipeline *fix.Pipeline
	if opts.Config != nil && opts.Config.Fix {
		pipeline = fix.NewPipeline(r.Engine, opts.Guide, opts.Config)
	}

	// Workers write into their own slot, so the slice needs no lock and
	// already holds the outcomes in discovery order.
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.effectiveJobs(len(files)))

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(groupCtx, path, opts, pipeline)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	result.Stats.Elapsed = time.Since(start)

	return result, nil
}

// processFile handles a single file and times the work.
func (r *Runner) processFile(ctx context.Context, path string, opts Options, pipeline *fix.Pipeline) FileOutcome {
	start := time.Now()

	var outcome FileOutcome
	if pipeline != nil {
		outcome = fixOutcome(ctx, pipeline, path)
	} else {
		outcome = r.checkOutcome(ctx, path, opts)
	}
	outcome.Duration = time.Since(start)

	return outcome
}

// fixOutcome runs one file through the fix pipeline.
func fixOutcome(ctx context.Context, pipeline *fix.Pipeline, path string) FileOutcome {
	res, err := pipeline.FixFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return FileOutcome{Path: path, Fix: res, Check: res.Final}
}

// checkOutcome reads and checks one file.
func (r *Runner) checkOutcome(ctx context.Context, path string, opts Options) FileOutcome {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}

	res, err := r.Engine.CheckFile(ctx, path, content, opts.Config, opts.Guide)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return FileOutcome{Path: path, Check: res}
}
