// Package tui implements the full-screen locale explorer: a live,
// scrollable view of every built-in locale rendering the value under the
// cursor, with toggles for the eagerly-signed and arbitrary-precision
// paths.
package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	numformat "github.com/anacrolix/num-format"
	"github.com/anacrolix/num-format/internal/cli"
	"github.com/anacrolix/num-format/internal/config"
	apperrors "github.com/anacrolix/num-format/internal/errors"
)

// defaultPreviewValue is rendered while the value field is empty. Seven
// digits make standard and Indian grouping visibly different.
const defaultPreviewValue = "1234567"

// Layout constants for the explorer.
const (
	headerHeight  = 1
	inputHeight   = 3
	footerHeight  = 1
	chromeHeight  = headerHeight + inputHeight + footerHeight + 2
	minListHeight = 3
)

// ContextCancelledMsg reports that the parent context was canceled.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the locale explorer.
type Model struct {
	header  HeaderModel
	input   textinput.Model
	help    help.Model
	keymap  KeyMap
	locales []numformat.Locale

	cursor int
	offset int
	signed bool
	big    bool

	width  int
	height int

	parentCtx context.Context
	exitCode  int
}

// NewModel creates a new explorer model. The cursor starts on
// startLocale when it names a built-in locale, and the value field is
// seeded from the first positional argument, if any.
func NewModel(parentCtx context.Context, cfg config.AppConfig, startLocale, version string) Model {
	ti := textinput.New()
	ti.Placeholder = defaultPreviewValue
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 34
	ti.Validate = validateNumeric
	if len(cfg.Args) > 0 && validateNumeric(cfg.Args[0]) == nil {
		ti.SetValue(cfg.Args[0])
	}
	ti.Focus()

	hm := help.New()
	hm.Styles.ShortKey = footerKeyStyle
	hm.Styles.ShortDesc = footerDescStyle
	hm.Styles.ShortSeparator = footerDescStyle

	locales := builtinLocales()
	cursor := 0
	for i, l := range locales {
		if l.Name() == startLocale {
			cursor = i
			break
		}
	}

	return Model{
		header:    NewHeaderModel(version),
		input:     ti,
		help:      hm,
		keymap:    DefaultKeyMap(),
		locales:   locales,
		cursor:    cursor,
		big:       cfg.Big,
		parentCtx: parentCtx,
		exitCode:  apperrors.ExitSuccess,
	}
}

// builtinLocales returns every built-in locale in sorted-name order.
func builtinLocales() []numformat.Locale {
	names := numformat.AvailableLocaleNames()
	locs := make([]numformat.Locale, 0, len(names))
	for _, name := range names {
		if l, err := numformat.LocaleFromName(name); err == nil {
			locs = append(locs, l)
		}
	}
	return locs
}

// validateNumeric accepts an optionally signed run of ASCII digits, the
// only shape the preview can format.
func validateNumeric(s string) error {
	for i, r := range s {
		if (r == '+' || r == '-') && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("value must be an optionally signed integer")
		}
	}
	return nil
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		watchContextCmd(m.parentCtx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keymap.PageUp):
		m.moveCursor(-m.listHeight())

	case key.Matches(msg, m.keymap.PageDown):
		m.moveCursor(m.listHeight())

	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
		m.clampScroll()

	case key.Matches(msg, m.keymap.End):
		m.cursor = len(m.locales) - 1
		m.clampScroll()

	case key.Matches(msg, m.keymap.Signed):
		m.signed = !m.signed

	case key.Matches(msg, m.keymap.Big):
		m.big = !m.big

	case key.Matches(msg, m.keymap.Clear):
		m.input.SetValue("")

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Selected returns the locale under the cursor.
func (m Model) Selected() numformat.Locale {
	if len(m.locales) == 0 {
		return numformat.LocaleC
	}
	return m.locales[m.cursor]
}

// previewValue is the raw value the preview panel renders.
func (m Model) previewValue() string {
	if v := m.input.Value(); v != "" && v != "+" && v != "-" {
		return v
	}
	return defaultPreviewValue
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampScroll()
}

// listHeight returns the number of locale rows that fit the terminal.
func (m Model) listHeight() int {
	h := m.height - chromeHeight
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

// clampScroll keeps the cursor within the table and the scroll window
// around the cursor.
func (m *Model) clampScroll() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.locales) {
		m.cursor = len(m.locales) - 1
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View(m.cursor+1, len(m.locales))

	inputRow := inputLabelStyle.Render("Value: ") + m.input.View() + "  " + m.toggleBadges()
	inputPanel := panelStyle.Width(m.width - 2).Render(inputRow)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewLocaleList(), m.viewPreview())

	footer := m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left, header, inputPanel, body, footer)
}

// toggleBadges renders the signed and big mode indicators.
func (m Model) toggleBadges() string {
	badge := func(name string, on bool) string {
		if on {
			return toggleOnStyle.Render("[" + name + "]")
		}
		return toggleOffStyle.Render("[" + name + "]")
	}
	return badge("signed", m.signed) + " " + badge("big", m.big)
}

// viewLocaleList renders the scrolling locale table.
func (m Model) viewLocaleList() string {
	h := m.listHeight()
	rows := make([]string, 0, h)
	for i := m.offset; i < m.offset+h && i < len(m.locales); i++ {
		name := m.locales[i].Name()
		if i == m.cursor {
			rows = append(rows, listMarkerStyle.Render("► ")+listSelectedStyle.Render(name))
		} else {
			rows = append(rows, "  "+listItemStyle.Render(name))
		}
	}
	for len(rows) < h {
		rows = append(rows, "")
	}

	listWidth := m.width / 3
	if listWidth < 14 {
		listWidth = 14
	}
	return panelStyle.Width(listWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewPreview renders the selected locale's symbols and the live
// rendering of the current value.
func (m Model) viewPreview() string {
	loc := m.Selected()

	line := func(label, value string) string {
		return previewLabelStyle.Render(fmt.Sprintf("%-11s", label)) + value
	}

	rows := []string{
		line("Locale:", listSelectedStyle.Render(loc.Name())),
		line("Grouping:", symbolStyle.Render(loc.Grouping().String())),
		line("Separator:", symbolStyle.Render(strconv.Quote(loc.Separator().String()))),
		line("Decimal:", symbolStyle.Render(strconv.Quote(loc.Decimal().String()))),
		line("Minus:", symbolStyle.Render(strconv.Quote(loc.MinusSign().String()))),
		line("Plus:", symbolStyle.Render(strconv.Quote(loc.PlusSign().String()))),
		"",
	}

	raw := m.previewValue()
	text, err := cli.FormatValueSigned(raw, loc, m.big, m.signed)
	if err != nil {
		rows = append(rows, line("Value:", raw), errorStyle.Render(err.Error()))
	} else {
		rows = append(rows, line("Value:", raw), line("Formatted:", previewValueStyle.Render(text)))
	}

	previewWidth := m.width - m.width/3 - 4
	if previewWidth < 20 {
		previewWidth = 20
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return panelStyle.Width(previewWidth).Height(m.listHeight()).Render(body)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, startLocale, version string) int {
	// Styles may predate InitTheme; rebuild from the active theme.
	initTUIStyles()

	model := NewModel(ctx, cfg, startLocale, version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
