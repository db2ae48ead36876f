// Package driver glues the pass scheduler, shared context, and renderer
// into the end-to-end pipeline from spec §3.4/§5: parse (external to this
// package), first round (optionally parallel, synchronized writes to the
// shared context), second round (parallel, context read-only), render.
//
// Grounded on the teacher's worker-pool shape as exercised by the rest of
// the retrieval pack (core.FileProcessor's bounded sync.WaitGroup fan-out
// over a file list) rather than on the teacher itself, which processes
// one program at a time and has no multi-file concurrency to borrow from.
package driver

import (
	"runtime"
	"sync"

	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/render"
	"github.com/swiftkt/swiftkt/sharedctx"
)

// Result is one file's final rendering, paired back to its source name.
type Result struct {
	Name   string
	Source string
}

// Options configures a Run.
type Options struct {
	Render  render.Options
	Workers int // goroutines used per round; 0 selects a sensible default
}

// Run executes the full pipeline over files: first round (serialized
// writes to the shared ctx, fanned out across Options.Workers goroutines
// per spec §5 "synchronized first-round recording"), then the second
// round (read-only context, parallel), then rendering. ctx and sink must
// be the same instances the scheduler's first-round passes were
// constructed with — Run never constructs its own, since a pass's write
// targets are fixed at construction time, not passed through Pass.Run.
// scheduler.SecondRound is invoked once, after the first round completes
// across every file, so its passes snapshot a fully populated context.
func Run(files []*ast.File, scheduler *pass.Scheduler, ctx *sharedctx.Context, sink *diag.Sink, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = resolveWorkerCount(runtime.NumCPU())
	}

	firstRoundOut := runParallel(files, workers, func(f *ast.File) *ast.File {
		return scheduler.FirstRound.Run(f)
	})

	if sink.HasFatal() {
		return renderAll(firstRoundOut, nil, opts.Render)
	}

	ro := ctx.ReadOnly()
	secondRound := scheduler.SecondRound(ro)
	secondRoundOut := runParallel(firstRoundOut, workers, func(f *ast.File) *ast.File {
		if sink.HasFatal() {
			return f
		}
		return secondRound.Run(f)
	})

	return renderAll(secondRoundOut, ro, opts.Render)
}

// runParallel applies fn to every file, capping concurrency at workers.
func runParallel(files []*ast.File, workers int, fn func(*ast.File) *ast.File) []*ast.File {
	out := make([]*ast.File, len(files))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, f *ast.File) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = fn(f)
		}(i, f)
	}
	wg.Wait()
	return out
}

func renderAll(files []*ast.File, ro *sharedctx.ReadOnly, opts render.Options) []Result {
	r := render.New(opts)
	results := make([]Result, len(files))
	for i, f := range files {
		results[i] = Result{Name: f.Name, Source: r.Render(f, ro)}
	}
	return results
}

// resolveWorkerCount picks a small, bounded pool size by clamping numCPU
// to 1..8: single-digit NumCPU values already cap out any real benefit for
// a pass pipeline this lightweight per file. The file count is not
// considered here.
func resolveWorkerCount(numCPU int) int {
	if numCPU < 1 {
		return 1
	}
	if numCPU > 8 {
		return 8
	}
	return numCPU
}
