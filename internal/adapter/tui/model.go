// Package tui is the interactive terminal grid: one row per day of the
// selected month, navigated with the arrow keys.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"weighttrend/internal/app"
	"weighttrend/internal/domain"
)

const opTimeout = 5 * time.Second

const (
	weightCharLimit  = 8
	commentCharLimit = 280
)

// Service is the subset of app.MonthService the grid needs.
type Service interface {
	LoadMonth(ctx context.Context, m domain.Month) (*app.MonthView, error)
	SaveDay(ctx context.Context, date domain.Date, weight *float64, comment *string) (domain.DayRecord, error)
}

type mode int

const (
	modeBrowse mode = iota
	modeEditWeight
	modeEditComment
)

// MonthLoadedMsg carries the result of a month fetch.
type MonthLoadedMsg struct {
	Month domain.Month
	View  *app.MonthView
	Err   error
}

// DaySavedMsg carries the result of a save.
type DaySavedMsg struct {
	Date domain.Date
	Err  error
}

// Model is the bubbletea model for the month grid.
type Model struct {
	svc    Service
	month  domain.Month
	today  domain.Date
	view   *app.MonthView
	cursor int
	mode   mode
	input  textinput.Model
	err    error
	status string
	width  int
	height int
}

// New returns a grid showing the month containing today.
func New(svc Service, today domain.Date) Model {
	return Model{
		svc:    svc,
		month:  domain.MonthOf(today),
		today:  today,
		cursor: today.Day() - 1,
	}
}

// Init starts the first month fetch.
func (m Model) Init() tea.Cmd {
	return loadMonthCmd(m.svc, m.month)
}

func loadMonthCmd(svc Service, month domain.Month) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		view, err := svc.LoadMonth(ctx, month)
		return MonthLoadedMsg{Month: month, View: view, Err: err}
	}
}

func saveDayCmd(svc Service, date domain.Date, weight *float64, comment *string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		_, err := svc.SaveDay(ctx, date, weight, comment)
		return DaySavedMsg{Date: date, Err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MonthLoadedMsg:
		// A fetch for a month we've already navigated away from.
		if msg.Month != m.month {
			return m, nil
		}
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.view = msg.View
		m.err = nil
		m.clampCursor()
		return m, nil

	case DaySavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = "saved " + msg.Date.String()
		if domain.MonthOf(msg.Date) != m.month {
			return m, nil
		}
		return m, loadMonthCmd(m.svc, m.month)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode != modeBrowse {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		return m.switchMonth(m.month.Prev())
	case "right", "l":
		return m.switchMonth(m.month.Next())
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.month.Days()-1 {
			m.cursor++
		}
	case "enter", "w":
		if d, ok := m.selected(); ok {
			return m.startEdit(modeEditWeight, formatWeight(d.Weight))
		}
	case "c":
		if d, ok := m.selected(); ok {
			comment := ""
			if d.Comment != nil {
				comment = *d.Comment
			}
			return m.startEdit(modeEditComment, comment)
		}
	}
	return m, nil
}

func newEditInput(md mode, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 40
	switch md {
	case modeEditWeight:
		ti.CharLimit = weightCharLimit
		ti.Placeholder = "e.g. 72.5"
		ti.Validate = validateWeightInput
	default:
		ti.CharLimit = commentCharLimit
		ti.Placeholder = "comment"
	}
	ti.Focus()
	ti.SetValue(value)
	ti.CursorEnd()
	return ti
}

func (m Model) startEdit(md mode, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input = newEditInput(md, value)
	m.status = ""
	return m, m.input.Cursor.BlinkCmd()
}

// validateWeightInput accepts digits with a "." or "," decimal separator.
func validateWeightInput(s string) error {
	for _, r := range s {
		if !isWeightRune(r) {
			return fmt.Errorf("%w: %q", app.ErrInvalidWeight, s)
		}
	}
	return nil
}

func isWeightRune(r rune) bool {
	return strings.ContainsRune("0123456789.,", r)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.commitEdit()
	case tea.KeySpace, tea.KeyRunes:
		if m.mode == modeEditWeight {
			runes := make([]rune, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				if isWeightRune(r) {
					runes = append(runes, r)
				}
			}
			if len(runes) == 0 {
				return m, nil
			}
			msg.Type, msg.Runes = tea.KeyRunes, runes
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit saves the edited field together with the day's other field.
// The grid is only updated once the store confirms the write.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	d, ok := m.selected()
	if !ok {
		m.mode = modeBrowse
		return m, nil
	}
	weight, comment := d.Weight, d.Comment

	switch m.mode {
	case modeEditWeight:
		if m.input.Err != nil {
			m.err = m.input.Err
			return m, nil
		}
		w, err := parseWeight(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		weight = w
	case modeEditComment:
		c := m.input.Value()
		comment = &c
	}

	m.mode = modeBrowse
	m.input.Blur()
	m.err = nil
	return m, saveDayCmd(m.svc, d.Date, weight, comment)
}

func parseWeight(s string) (*float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", app.ErrInvalidWeight, s)
	}
	return &v, nil
}

func (m Model) switchMonth(next domain.Month) (tea.Model, tea.Cmd) {
	m.month = next
	m.view = nil
	m.err = nil
	m.status = ""
	if next == domain.MonthOf(m.today) {
		m.cursor = m.today.Day() - 1
	} else {
		m.cursor = 0
	}
	return m, loadMonthCmd(m.svc, next)
}

func (m Model) selected() (app.DayView, bool) {
	if m.view == nil || m.cursor < 0 || m.cursor >= len(m.view.Days) {
		return app.DayView{}, false
	}
	return m.view.Days[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.view.Days)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the grid.
func (m Model) View() string {
	var b strings.Builder

	if m.view == nil {
		b.WriteString(TitleStyle.Render(m.month.Title()))
		b.WriteString("\n\n")
		if m.err == nil {
			b.WriteString("  Loading...\n")
		}
	} else {
		b.WriteString(TitleStyle.Render(m.view.Title))
		b.WriteString("\n\n")
		start, end := m.visibleRows()
		for i := start; i < end; i++ {
			b.WriteString(renderRow(m.view.Days[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch m.mode {
	case modeEditWeight:
		fmt.Fprintf(&b, "  weight (%s): %s\n", m.unit(), m.input.View())
	case modeEditComment:
		fmt.Fprintf(&b, "  comment: %s\n", m.input.View())
	}
	if m.err != nil {
		b.WriteString(ErrorStyle.Render("  " + errorText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(HelpStyle.Render("  " + m.status))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) unit() string {
	if m.view != nil {
		return m.view.Unit
	}
	return ""
}

func (m Model) helpText() string {
	if m.mode != modeBrowse {
		return "  enter save • esc cancel"
	}
	return "  ←/→ month • ↑/↓ day • enter weight • c comment • q quit"
}

// visibleRows returns the [start, end) window of rows that fits the terminal
// and contains the cursor.
func (m Model) visibleRows() (int, int) {
	n := len(m.view.Days)
	// title, blank, blank, edit/err line, help
	avail := m.height - 6
	if m.height == 0 || avail >= n {
		return 0, n
	}
	if avail < 1 {
		avail = 1
	}
	start := m.cursor - avail/2
	if start < 0 {
		start = 0
	}
	if start+avail > n {
		start = n - avail
	}
	return start, start + avail
}

func errorText(err error) string {
	if errors.Is(err, app.ErrInvalidWeight) {
		return err.Error()
	}
	return "error: " + err.Error()
}
