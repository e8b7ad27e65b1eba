package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	numformat "github.com/anacrolix/num-format"
)

// ProgressBufferMultiplier sizes the progress channel relative to the
// worker count. A larger buffer keeps the formatting workers from ever
// blocking on a slow terminal; progress is advisory and may drop updates.
const ProgressBufferMultiplier = 5

// ProgressReporter displays the running count of formatted values during
// stream mode. Implementations handle the visual side; the pipeline only
// pushes counts.
type ProgressReporter interface {
	// DisplayProgress consumes counts until the channel closes, then
	// signals wg. Run it in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, counts <-chan uint64, out io.Writer)
}

// NullProgressReporter drains the counts channel without displaying
// anything. Used when --progress is off or output is not a terminal.
type NullProgressReporter struct{}

// DisplayProgress drains the channel silently.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, counts <-chan uint64, _ io.Writer) {
	defer wg.Done()
	for range counts {
	}
}

// SpinnerProgressReporter shows a spinner whose suffix is the running
// count of formatted values, itself rendered through the active format.
type SpinnerProgressReporter struct {
	// Format renders the running count. Nil falls back to the C locale.
	Format numformat.Format
}

var _ ProgressReporter = SpinnerProgressReporter{}

// DisplayProgress animates the spinner until the counts channel closes.
func (r SpinnerProgressReporter) DisplayProgress(wg *sync.WaitGroup, counts <-chan uint64, out io.Writer) {
	defer wg.Done()

	f := r.Format
	if f == nil {
		f = numformat.LocaleC
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for c := range counts {
		sp.UpdateSuffix(fmt.Sprintf(" %s values", numformat.FormatUint(c, f)))
	}
}
