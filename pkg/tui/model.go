// Package tui is the Bubble Tea calendar: year, month, week and day views
// over an app.Service, with a listing overlay for truncated cells.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/cal/pkg/app"
	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/form"
	"tableflip.dev/cal/pkg/grid"
	"tableflip.dev/cal/pkg/store"
	"tableflip.dev/cal/pkg/tui/theme"
	"tableflip.dev/cal/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeListing
	modePrompt
)

// listing is the overlay showing every event of one cell.
type listing struct {
	title  string
	day    time.Time
	hour   *int
	events []*event.Event
	cursor int
}

// Model contains UI state.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	watcher store.Watcher
	now     func() time.Time
	form    *form.Form

	ctrl   *view.Controller
	hour   int
	limits bucket.Limits
	events []*event.Event

	mode    mode
	listing *listing
	input   textinput.Model

	keys  keyMap
	help  help.Model
	theme theme.Theme

	status    string
	statusErr bool

	width  int
	height int

	watchCh     <-chan store.Change
	watchCancel context.CancelFunc
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLimits sets the per-cell event caps.
func WithLimits(l bucket.Limits) Option {
	return func(m *Model) { m.limits = l }
}

// WithWatcher reloads the events whenever w reports an outside write.
func WithWatcher(w store.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithContext sets the context used for store operations.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New creates a UI model backed by the Service.
func New(svc *app.Service, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Title, or Title @ tomorrow 3pm"
	ti.CharLimit = 256
	ti.Prompt = "add: "

	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		now:    time.Now,
		limits: bucket.DefaultLimits(),
		input:  ti,
		keys:   defaultKeys(),
		help:   help.New(),
		theme:  theme.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.form = form.New(m.now)
	m.ctrl = view.New(m.now)
	m.hour = m.now().Hour()
	if svc != nil {
		m.events = svc.List()
	}
	return m
}

// Init starts the store watcher, if any.
func (m Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.watcher)
}

// messages
type eventsLoadedMsg struct {
	events []*event.Event
	err    error
}

type mutatedMsg struct {
	status string
	err    error
}

func (m *Model) reload() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return eventsLoadedMsg{}
		}
		if err := svc.Reload(ctx); err != nil {
			return eventsLoadedMsg{err: err}
		}
		return eventsLoadedMsg{events: svc.List()}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case eventsLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.events = msg.events
		m.refreshListing()
	case mutatedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		m.setStatus(msg.status)
		if m.svc != nil {
			m.events = m.svc.List()
		}
		m.refreshListing()
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.reload())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		if m.mode == modePrompt {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case modePrompt:
		return m.handlePromptKey(msg)
	case modeListing:
		return m.handleListingKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.stopWatch()
		return tea.Quit
	case key.Matches(msg, k.Year):
		m.ctrl.Set(view.Year)
	case key.Matches(msg, k.Month):
		m.ctrl.Set(view.Month)
	case key.Matches(msg, k.Week):
		m.ctrl.Set(view.Week)
	case key.Matches(msg, k.Day):
		m.ctrl.Set(view.Day)
	case key.Matches(msg, k.Prev):
		m.ctrl.Prev()
	case key.Matches(msg, k.Next):
		m.ctrl.Next()
	case key.Matches(msg, k.Today):
		m.ctrl.Today()
		m.hour = m.now().Hour()
	case key.Matches(msg, k.Up):
		m.moveSelection(-1)
	case key.Matches(msg, k.Down):
		m.moveSelection(1)
	case key.Matches(msg, k.DayPrev):
		m.moveDay(-1)
	case key.Matches(msg, k.DayNext):
		m.moveDay(1)
	case key.Matches(msg, k.Open):
		m.open()
	case key.Matches(msg, k.Add):
		m.mode = modePrompt
		m.input.Reset()
		return m.input.Focus()
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return nil
	}
	m.clearStatus()
	return nil
}

// moveSelection moves the selected month (year view), hour (week and day
// views) or day (month view) by dir.
func (m *Model) moveSelection(dir int) {
	switch m.ctrl.Granularity {
	case view.Year:
		m.ctrl.Date = grid.FirstOfMonth(m.ctrl.Date).AddDate(0, dir, 0)
	case view.Week, view.Day:
		m.hour = min(max(m.hour+dir, 0), grid.HoursPerDay-1)
	default:
		m.ctrl.Date = m.ctrl.Date.AddDate(0, 0, dir)
	}
}

// moveDay moves the selected day by dir, or the month in the year view.
func (m *Model) moveDay(dir int) {
	if m.ctrl.Granularity == view.Year {
		m.ctrl.Date = grid.FirstOfMonth(m.ctrl.Date).AddDate(0, dir, 0)
		return
	}
	m.ctrl.Date = m.ctrl.Date.AddDate(0, 0, dir)
}

// hourCell reports whether the current view selects (day, hour) cells.
func (m *Model) hourCell() bool {
	return m.ctrl.Granularity == view.Week || m.ctrl.Granularity == view.Day
}

// open drills into the selection: a month from the year view, otherwise the
// listing of the selected cell, a (day, hour) slot in the week and day views.
func (m *Model) open() {
	if m.ctrl.Granularity == view.Year {
		m.ctrl.SelectMonth(grid.FirstOfMonth(m.ctrl.Date))
		return
	}
	m.listing = &listing{day: grid.StartOfDay(m.ctrl.Date)}
	if m.hourCell() {
		h := m.hour
		m.listing.hour = &h
	}
	m.mode = modeListing
	m.refreshListing()
}

// refreshListing recomputes the open listing from the current events.
func (m *Model) refreshListing() {
	l := m.listing
	if l == nil {
		return
	}
	l.title = l.day.Format("Monday, January 2, 2006")
	if l.hour != nil {
		l.events = bucket.ByDayHour(m.events, l.day, *l.hour)
		l.title = fmt.Sprintf("%s, %s", l.title, grid.HourLabel(*l.hour))
	} else {
		l.events = bucket.ByDay(m.events, l.day)
	}
	if l.cursor >= len(l.events) {
		l.cursor = max(len(l.events)-1, 0)
	}
}

func (m *Model) handleListingKey(msg tea.KeyPressMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.stopWatch()
		return tea.Quit
	case key.Matches(msg, k.Close):
		m.listing = nil
		m.mode = modeNormal
	case key.Matches(msg, k.Up):
		if m.listing.cursor > 0 {
			m.listing.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.listing.cursor < len(m.listing.events)-1 {
			m.listing.cursor++
		}
	case key.Matches(msg, k.Add):
		m.mode = modePrompt
		m.input.Reset()
		return m.input.Focus()
	case key.Matches(msg, k.Delete):
		if len(m.listing.events) == 0 {
			return nil
		}
		return m.deleteCmd(m.listing.events[m.listing.cursor])
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = m.returnMode()
		return nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.mode = m.returnMode()
		if value == "" {
			return nil
		}
		return m.addCmd(value)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) returnMode() mode {
	if m.listing != nil {
		return modeListing
	}
	return modeNormal
}

// quickInput reads "Title" or "Title @ when". Without a time the event is
// placed on the selected day, at the selected hour in the week and day views.
func (m *Model) quickInput(value string) form.Input {
	title, when, found := strings.Cut(value, "@")
	day := grid.StartOfDay(m.ctrl.Date)
	in := form.Input{Title: strings.TrimSpace(title), Day: &day}
	if found {
		in.At = strings.TrimSpace(when)
		return in
	}
	if m.hourCell() {
		in.At = day.Add(time.Duration(m.hour) * time.Hour).Format("2006-01-02 15:04")
	}
	if m.listing != nil && m.listing.hour != nil {
		in.At = day.Add(time.Duration(*m.listing.hour) * time.Hour).Format("2006-01-02 15:04")
	}
	return in
}

func (m *Model) addCmd(value string) tea.Cmd {
	svc, ctx, f := m.svc, m.ctx, m.form
	in := m.quickInput(value)
	return func() tea.Msg {
		if svc == nil {
			return mutatedMsg{err: errors.New("no service")}
		}
		d, err := f.Draft(in)
		if err != nil {
			return mutatedMsg{err: err}
		}
		e, err := svc.Add(ctx, d)
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{status: fmt.Sprintf("added %q on %s", e.Title, e.Start.Local().Format("Mon Jan 2 15:04"))}
	}
}

func (m *Model) deleteCmd(e *event.Event) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return mutatedMsg{err: errors.New("no service")}
		}
		if err := svc.Delete(ctx, e.ID); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{status: fmt.Sprintf("deleted %q", e.Title)}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

// Run starts the program in the alternate screen and blocks until it quits.
func Run(ctx context.Context, svc *app.Service, opts ...Option) error {
	opts = append([]Option{WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(svc, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stopWatch()
	}
	return err
}
