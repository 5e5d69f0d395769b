package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	textpdf "github.com/alnah/go-textpdf"
)

// dirPermissions is used for output directories created on demand.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Renderer is the part of *textpdf.Renderer the batch uses.
type Renderer interface {
	Render(ctx context.Context, in textpdf.Input) (*textpdf.RenderResult, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*textpdf.Renderer)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (Renderer, error)
	Release(Renderer)
	Size() int
}

// poolAdapter exposes a *textpdf.RendererPool as a Pool.
type poolAdapter struct {
	pool *textpdf.RendererPool
}

var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (Renderer, error) {
	r, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Release panics when r did not come from the adapted pool.
func (a *poolAdapter) Release(r Renderer) {
	tr, ok := r.(*textpdf.Renderer)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", r))
	}
	a.pool.Release(tr)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// renderParams groups values shared by every file of a batch.
type renderParams struct {
	layout    textpdf.Input // Margin, BorderWidth, LineSpacing
	metadata  *textpdf.Metadata
	stdinText string
}

// renderResult holds the outcome of a single render.
type renderResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	Bytes      int64
	Err        error
	Duration   time.Duration
}

// renderBatch processes files concurrently with the renderer pool.
func renderBatch(ctx context.Context, pool Pool, files []fileToRender, params *renderParams) []renderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))
	results := make([]renderResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire(ctx)
			if err != nil {
				// Renderer creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = renderResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(r)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = renderResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, r, files[idx], params)
			}
		}()
	}
	wg.Wait()
	return results
}

// renderFile reads one input and renders it.
func renderFile(ctx context.Context, r Renderer, f fileToRender, params *renderParams) renderResult {
	start := time.Now()
	result := renderResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	done := func(err error) renderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	text := params.stdinText
	if f.InputPath != stdinArg {
		content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return done(fmt.Errorf("%w: %w", ErrReadInput, err))
		}
		text = string(content)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return done(fmt.Errorf("creating output directory: %w", err))
	}

	in := params.layout
	in.Text = text
	in.OutputPath = f.OutputPath
	in.Metadata = params.metadata

	res, err := r.Render(ctx, in)
	if err != nil {
		return done(err)
	}
	result.OutputPath = res.Path
	result.Pages = res.Pages
	result.Bytes = res.Bytes
	return done(nil)
}

// resultSummary holds the count of succeeded and failed renders.
type resultSummary struct {
	Succeeded int
	Failed    int
	Pages     int
	Bytes     int64
}

func countResults(results []renderResult) resultSummary {
	var s resultSummary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		s.Pages += r.Pages
		s.Bytes += r.Bytes
	}
	return s
}

// printResults writes one line per render and returns the failure count.
// Batch failures go to stderr; a single failure is left to the caller,
// which reports it as the command error. quiet suppresses everything else.
func printResults(results []renderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			}
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %s, %v)\n", r.InputPath, r.OutputPath,
				pluralPages(r.Pages), humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "PDF saved to %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed (%s, %s)\n", summary.Succeeded, summary.Failed,
			pluralPages(summary.Pages), humanize.Bytes(uint64(summary.Bytes)))
	}
	return summary.Failed
}

func pluralPages(n int) string {
	if n == 1 {
		return "1 page"
	}
	return humanize.Comma(int64(n)) + " pages"
}
