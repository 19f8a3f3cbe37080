package convert_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/dochtml"
	"github.com/fwojciec/dochtml/convert"
	"github.com/fwojciec/dochtml/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requests(names ...string) []dochtml.ConversionRequest {
	reqs := make([]dochtml.ConversionRequest, len(names))
	for i, name := range names {
		reqs[i] = dochtml.ConversionRequest{SourcePath: name, Filename: name, OutputPath: name + ".html"}
	}
	return reqs
}

func TestConvertAll(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in request order", func(t *testing.T) {
		t.Parallel()

		// Given a converter whose earlier requests finish last
		conv := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				if req.Filename == "a.pdf" {
					time.Sleep(20 * time.Millisecond)
				}
				return &dochtml.ConversionResult{Request: req, Status: dochtml.StatusConverted}, nil
			},
		}

		// When I convert a batch
		outcomes, err := convert.ConvertAll(context.Background(), conv, requests("a.pdf", "b.docx", "c.rtf"), 3, nil)

		// Then outcomes line up with requests
		require.NoError(t, err)
		require.Len(t, outcomes, 3)
		for i, name := range []string{"a.pdf", "b.docx", "c.rtf"} {
			assert.Equal(t, name, outcomes[i].Request.Filename)
			require.NotNil(t, outcomes[i].Result)
			assert.Equal(t, name, outcomes[i].Result.Request.Filename)
		}
	})

	t.Run("one failure does not stop the others", func(t *testing.T) {
		t.Parallel()

		conv := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				if req.Filename == "report.xlsx" {
					return nil, dochtml.Errorf(dochtml.EUNSUPPORTED, "unsupported")
				}
				return &dochtml.ConversionResult{Request: req, Status: dochtml.StatusConverted}, nil
			},
		}

		outcomes, err := convert.ConvertAll(context.Background(), conv, requests("a.pdf", "report.xlsx", "c.docx"), 1, nil)

		require.NoError(t, err)
		assert.NoError(t, outcomes[0].Err)
		assert.Equal(t, dochtml.EUNSUPPORTED, dochtml.ErrorCode(outcomes[1].Err))
		assert.Nil(t, outcomes[1].Result)
		assert.NoError(t, outcomes[2].Err)
	})

	t.Run("respects the concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		conv := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return &dochtml.ConversionResult{Request: req}, nil
			},
		}

		_, err := convert.ConvertAll(context.Background(), conv,
			requests("1.pdf", "2.pdf", "3.pdf", "4.pdf", "5.pdf", "6.pdf", "7.pdf", "8.pdf"), 2, nil)

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
		assert.Positive(t, peak.Load())
	})

	t.Run("reports progress for every request", func(t *testing.T) {
		t.Parallel()

		conv := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				return nil, errors.New("boom")
			},
		}
		var mu sync.Mutex
		var completed []int
		progress := func(ev convert.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 3, ev.Total)
			assert.Error(t, ev.Outcome.Err)
			completed = append(completed, ev.Completed)
		}

		_, err := convert.ConvertAll(context.Background(), conv, requests("a.pdf", "b.pdf", "c.pdf"), 0, progress)

		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2, 3}, completed)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var calls atomic.Int64
		conv := &mock.DocumentConverter{
			ConvertFn: func(ctx context.Context, req dochtml.ConversionRequest) (*dochtml.ConversionResult, error) {
				calls.Add(1)
				return &dochtml.ConversionResult{Request: req}, nil
			},
		}

		outcomes, err := convert.ConvertAll(ctx, conv, requests("a.pdf", "b.pdf"), 1, nil)

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls.Load())
		for _, o := range outcomes {
			assert.ErrorIs(t, o.Err, context.Canceled)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		outcomes, err := convert.ConvertAll(context.Background(), &mock.DocumentConverter{}, nil, 2, nil)

		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})
}
