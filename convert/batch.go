package convert

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/dochtml"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when ConvertAll is given a non-positive limit.
const DefaultConcurrency = 4

// Outcome is the result of one request in a batch.
type Outcome struct {
	Request dochtml.ConversionRequest
	Result  *dochtml.ConversionResult
	Err     error
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Completed int
	Total     int
	Outcome   Outcome
}

// ProgressFunc is a callback for reporting batch progress.
// It may be called from several goroutines at once.
type ProgressFunc func(event ProgressEvent)

// ConvertAll converts independent requests with at most concurrency
// conversions in flight. Outcomes are returned in request order. A failed
// conversion does not stop the others; the returned error is only set when
// ctx is canceled.
func ConvertAll(ctx context.Context, conv dochtml.DocumentConverter, reqs []dochtml.ConversionRequest, concurrency int, progress ProgressFunc) ([]Outcome, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(reqs))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Request: req, Err: err}
				return nil
			}
			res, err := conv.Convert(gctx, req)
			outcomes[i] = Outcome{Request: req, Result: res, Err: err}
			if progress != nil {
				progress(ProgressEvent{
					Completed: int(completed.Add(1)),
					Total:     len(reqs),
					Outcome:   outcomes[i],
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, ctx.Err()
}
