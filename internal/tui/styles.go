package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/anacrolix/num-format/internal/ui"
)

// Style variables for the locale explorer.
// Initialized from the ui theme system via initTUIStyles().
var (
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	panelStyle        lipgloss.Style
	inputLabelStyle   lipgloss.Style
	listItemStyle     lipgloss.Style
	listSelectedStyle lipgloss.Style
	listMarkerStyle   lipgloss.Style
	previewLabelStyle lipgloss.Style
	previewValueStyle lipgloss.Style
	symbolStyle       lipgloss.Style
	errorStyle        lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
	toggleOnStyle     lipgloss.Style
	toggleOffStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all explorer styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	headerStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	listItemStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	listSelectedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	listMarkerStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	previewLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	previewValueStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	symbolStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	toggleOnStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	toggleOffStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
