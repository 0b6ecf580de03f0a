package lookup

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the batch fetch limit when none is specified.
const DefaultConcurrency = 4

// Outcome is the per-title result of a batch lookup.
type Outcome struct {
	Title  string
	Result *Result
	Err    error
}

// BatchResult holds the outcome of a batch lookup.
type BatchResult struct {
	// Outcomes has one entry per input title, in input order.
	Outcomes  []Outcome
	Succeeded int
	Failed    int
}

// ProgressEvent reports progress during a batch lookup.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Batch runs ByTitle for each title with bounded concurrency. Per-title
// failures are recorded in the result rather than aborting the batch; the
// shared store serializes interleaved upserts. The progress callback, if
// provided, receives events as lookups complete.
func (s *Service) Batch(ctx context.Context, titles []string, concurrency int, progress ProgressFunc) (*BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(titles)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outcomes := make([]Outcome, total)
	var completed atomic.Int64
	var progressMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, title := range titles {
		g.Go(func() error {
			result, err := s.ByTitle(gctx, title)
			outcomes[i] = Outcome{Title: title, Result: result, Err: err}

			done := int(completed.Add(1))
			if progress != nil {
				progressMu.Lock()
				if err != nil {
					progress(ProgressEvent{
						Type:      ProgressFailed,
						Completed: done,
						Total:     total,
						Title:     title,
						Error:     err,
					})
				} else {
					progress(ProgressEvent{
						Type:      ProgressCompleted,
						Completed: done,
						Total:     total,
						Title:     title,
					})
				}
				progressMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}
