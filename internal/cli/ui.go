//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// FormatDuration formats a time.Duration for display. It shows
// microseconds for durations under a millisecond and milliseconds for
// durations under a second, which keeps the common sub-second timings of
// this tool readable.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// ProgressRefreshRate is the spinner animation interval. 200ms keeps the
// display calm while still feeling live.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be
// tested against a mock instead of a live animation. It covers the three
// controls stream mode needs: starting, stopping, and updating the
// status text.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner glyph.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner builds the production spinner. Declared as a variable so
// tests can substitute a mock constructor.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}
