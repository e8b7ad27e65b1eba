package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and the cursor
// position within the locale table.
type HeaderModel struct {
	version string
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header row. position and total locate the cursor
// within the locale table.
func (h HeaderModel) View(position, total int) string {
	titleText := "numfmt locale explorer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	counter := versionStyle.Render(fmt.Sprintf("locale %d/%d", position, total))

	gap := h.width - lipgloss.Width(title) - lipgloss.Width(counter) - 2
	if gap < 0 {
		gap = 0
	}

	return headerStyle.Render(" " + title + spaces(gap) + counter + " ")
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
