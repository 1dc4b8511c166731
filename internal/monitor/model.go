package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the refresh cadence when none is configured.
const DefaultInterval = 200 * time.Millisecond

// Options configures a dashboard Model.
type Options struct {
	Layout        LayoutMode
	Interval      time.Duration
	ScrollCeiling int
}

// Model is the Bubble Tea model for the dashboard. All state changes happen
// in Update, on the program's event loop.
type Model struct {
	state    State
	source   TickSource
	keys     KeyMap
	interval time.Duration
	width    int
	height   int
	frame    *Frame
	quitting bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard over source.
func NewModel(source TickSource, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	return Model{
		state:    NewState(opts.Layout, opts.ScrollCeiling),
		source:   source,
		keys:     DefaultKeyMap(),
		interval: opts.Interval,
	}
}

// Init hides the cursor and triggers the first refresh immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.HideCursor,
		func() tea.Msg { return tickMsg(time.Now()) },
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Interrupt) {
			m.quitting = true
			return m, tea.Quit
		}
		// Keys are applied one per tick, after that tick's frame is drawn.
		m.state = m.state.Enqueue(m.keys.Translate(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		var quit bool
		m.state, m.frame, quit = m.state.Tick(m.source, RenderInput{
			Width:    m.width,
			Height:   m.height,
			Interval: m.interval,
			Keys:     m.keys,
		})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the last frame.
func (m Model) View() string {
	if m.quitting || m.frame == nil {
		return ""
	}
	return m.frame.Paint()
}

// State returns the current dashboard state.
func (m Model) State() State {
	return m.state
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
