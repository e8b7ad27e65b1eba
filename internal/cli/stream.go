package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	numformat "github.com/anacrolix/num-format"
	apperrors "github.com/anacrolix/num-format/internal/errors"
	"github.com/anacrolix/num-format/internal/logging"
	"github.com/anacrolix/num-format/internal/metrics"
)

// maxTokenSize bounds a single input token. Arbitrary-precision values
// can run long, but a megabyte of decimal digits is already far past
// anything a formatting pipeline should see.
const maxTokenSize = 1 << 20

// outcome is the result of formatting one token.
type outcome struct {
	text string
	err  error
}

// StreamPipeline formats whitespace-separated integer tokens from a
// reader onto a writer, one formatted value per line, preserving input
// order while fanning the formatting work out over a bounded worker
// pool.
type StreamPipeline struct {
	// Format renders each value. Nil defaults to LocaleEn.
	Format numformat.Format
	// Big routes every token through the arbitrary-precision path.
	Big bool
	// Jobs bounds the number of concurrent formatting workers.
	Jobs int
	// Reporter receives running counts for display. Nil disables
	// progress output.
	Reporter ProgressReporter
	// Logger receives pipeline lifecycle events.
	Logger logging.Logger
}

// Run drives the pipeline until in is exhausted, ctx is canceled, or a
// token fails to parse. It returns the number of values written and the
// first error in input order.
//
// The pipeline is a producer/worker/emitter triangle: the producer
// scans tokens and enqueues one buffered promise channel per token
// immediately before scheduling its worker, the workers format
// concurrently under the jobs limit, and the emitter drains promises in
// queue order. Because a promise is only queued once its worker is
// committed, every queued promise is eventually fulfilled and the
// emitter can always drain to completion.
func (p *StreamPipeline) Run(ctx context.Context, in io.Reader, out, progressOut io.Writer) (uint64, error) {
	f := p.Format
	if f == nil {
		f = numformat.LocaleEn
	}
	jobs := p.Jobs
	if jobs < 1 {
		jobs = 1
	}
	reporter := p.Reporter
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	log := p.Logger
	if log == nil {
		log = logging.NewLogger(io.Discard, "stream")
	}

	log.Debug("starting stream pipeline",
		logging.Int("jobs", jobs),
		logging.Bool("big", p.Big))
	start := time.Now()
	mem := metrics.NewMemoryCollector()
	memBefore := mem.Snapshot()

	counts := make(chan uint64, jobs*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, counts, progressOut)

	workers, wctx := errgroup.WithContext(ctx)
	workers.SetLimit(jobs)

	queue := make(chan chan outcome, jobs*2)
	var scanErr error

	go func() {
		defer close(queue)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), maxTokenSize)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			tok := scanner.Text()
			promise := make(chan outcome, 1)
			select {
			case queue <- promise:
			case <-wctx.Done():
				return
			}
			workers.Go(func() error {
				text, err := FormatValue(tok, f, p.Big)
				promise <- outcome{text: text, err: err}
				return err
			})
		}
		scanErr = scanner.Err()
	}()

	w := bufio.NewWriter(out)
	var count, seen uint64
	var firstErr error
	for promise := range queue {
		o := <-promise
		seen++
		if firstErr != nil {
			continue
		}
		if o.err != nil {
			firstErr = apperrors.WrapError(o.err, "input token %d", seen)
			continue
		}
		if _, err := fmt.Fprintln(w, o.text); err != nil {
			firstErr = err
			continue
		}
		count++
		select {
		case counts <- count:
		default:
		}
	}

	// All promises are fulfilled by now, so Wait cannot block on work
	// the emitter still owes.
	waitErr := workers.Wait()
	close(counts)
	displayWg.Wait()

	if err := w.Flush(); err != nil && firstErr == nil {
		firstErr = err
	}

	memAfter := mem.Snapshot()
	log.Debug("stream pipeline finished",
		logging.Uint64("values", count),
		logging.String("elapsed", FormatDuration(time.Since(start))),
		logging.Uint64("alloc_bytes", memAfter.AllocDelta(memBefore)),
		logging.Uint64("gc_cycles", uint64(memAfter.GCDelta(memBefore))))

	switch {
	case firstErr != nil:
		return count, firstErr
	case scanErr != nil:
		return count, apperrors.WrapError(scanErr, "reading input")
	case ctx.Err() != nil:
		return count, ctx.Err()
	case waitErr != nil:
		return count, waitErr
	}
	return count, nil
}
