package chaining

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrWorkerFailure wraps every error surfaced by a parallel fan-out worker.
var ErrWorkerFailure = errors.New("chaining: worker failure")

type cellWork struct {
	cell        Cell
	cardinality int
}

// collectMultipleChainsHints runs hintsForCell over every starting cell
// with more than two candidates, plus cells with exactly two candidates
// when the engine is dynamic, sequentially or fanned out across a worker
// pool. Fan-out is itself
// recomputed on every call, not cached: it is disabled whenever
// Config.Parallel is false, the engine's level is below 3, or
// Settings.NumThreads() reports a single thread.
func (e *Engine) collectMultipleChainsHints(ctx context.Context, grid GridView) ([]Hint, error) {
	noParallel := !e.config.Parallel || e.config.Level < 3 || e.settings.NumThreads() <= 1

	var work []cellWork
	var hints []Hint

	for i := Cell(0); i < 81; i++ {
		if grid.CellValue(i) != 0 {
			continue
		}
		card := grid.Candidates(i).Count()
		if card < 2 || (card == 2 && !e.config.Dynamic) {
			continue
		}
		if noParallel {
			h, err := e.hintsForCell(ctx, grid, i, card)
			if err != nil {
				return nil, err
			}
			hints = append(hints, h...)
			continue
		}
		work = append(work, cellWork{cell: i, cardinality: card})
	}

	if noParallel || len(work) == 0 {
		return hints, nil
	}
	return e.collectParallel(ctx, grid, work)
}

// collectParallel fans work out across a fixed-size worker pool, one fresh
// sibling Engine and cloned GridView per worker (shared-nothing: no
// worker touches another's save buffer, rule list, or grid). Results are
// joined in completion order, which is fine because the caller sorts the
// final hint list; a worker failure is recorded and every other worker is
// still allowed to finish before the joiner returns the error.
func (e *Engine) collectParallel(ctx context.Context, grid GridView, work []cellWork) ([]Hint, error) {
	workers := e.settings.NumThreads()
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(work) {
		workers = len(work)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan cellWork, len(work))
	type outcome struct {
		hints []Hint
		err   error
	}
	results := make(chan outcome, len(work))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			gridClone := grid.Clone()
			sibling := e.newSiblingEngine()
			for job := range jobs {
				select {
				case <-ctx.Done():
					results <- outcome{err: fmt.Errorf("%w: worker %d: %v", ErrWorkerFailure, workerID, ctx.Err())}
					continue
				default:
				}
				h, err := sibling.hintsForCell(ctx, gridClone, job.cell, job.cardinality)
				if err != nil {
					results <- outcome{err: fmt.Errorf("%w: worker %d cell %d: %v", ErrWorkerFailure, workerID, job.cell, err)}
					continue
				}
				results <- outcome{hints: h}
			}
		}(w)
	}

	for _, j := range work {
		jobs <- j
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var hints []Hint
	var firstErr error
	for r := range results {
		if r.err != nil {
			workerFailures.Inc()
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		hints = append(hints, r.hints...)
	}
	return hints, firstErr
}

// newSiblingEngine builds a fresh Engine sharing this engine's Config and
// Settings but none of its mutable state: a sibling never touches the
// parent's save buffer or lazily-built rule list.
func (e *Engine) newSiblingEngine() *Engine {
	cfg := e.config
	cfg.Parallel = false
	return NewEngine(cfg, e.settings, e.config.Logger)
}
