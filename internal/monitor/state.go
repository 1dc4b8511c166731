package monitor

// DefaultScrollCeiling bounds the scroll offset regardless of process count.
const DefaultScrollCeiling = 1000

// MaxPendingKeys bounds the input queue; keys beyond it are dropped.
const MaxPendingKeys = 64

// TickSource supplies a tick's snapshot and CPU counters.
type TickSource interface {
	Snapshot() Snapshot
	CPUCounters() (CPUCounters, error)
}

// State is the dashboard's navigation and history state. Step functions
// return a new State; History is shared between successive values and is
// owned by whoever drives the loop.
type State struct {
	Layout   LayoutMode
	Page     int
	Offset   int
	Ceiling  int
	Baseline *CPUCounters
	History  *CPUHistory
	Pending  []Key
}

// NewState creates the initial state: first page, offset 0, empty history.
func NewState(layout LayoutMode, ceiling int) State {
	if ceiling <= 0 {
		ceiling = DefaultScrollCeiling
	}
	return State{
		Layout:  layout,
		Ceiling: ceiling,
		History: NewCPUHistory(),
	}
}

// CurrentPage returns the active page.
func (s State) CurrentPage() Page {
	pages := s.Layout.Pages()
	return pages[((s.Page%len(pages))+len(pages))%len(pages)]
}

// HandleKey applies one navigation key. Left and right cycle pages and reset
// the offset; up and down scroll only on the process page. The second
// return value is true when the key asks to quit.
func (s State) HandleKey(k Key, processCount, pageHeight int) (State, bool) {
	n := len(s.Layout.Pages())
	switch k {
	case KeyRight:
		s.Page = (s.Page + 1) % n
		s.Offset = 0
	case KeyLeft:
		s.Page = (s.Page - 1 + n) % n
		s.Offset = 0
	case KeyUp:
		if s.CurrentPage() == PageProcesses {
			s.Offset = ClampOffset(s.Offset-1, processCount, pageHeight, s.Ceiling)
		}
	case KeyDown:
		if s.CurrentPage() == PageProcesses {
			s.Offset = ClampOffset(s.Offset+1, processCount, pageHeight, s.Ceiling)
		}
	case KeyQuit:
		return s, true
	}
	return s, false
}

// Enqueue appends a key to the pending queue, dropping it when full.
func (s State) Enqueue(k Key) State {
	if k == KeyNone || len(s.Pending) >= MaxPendingKeys {
		return s
	}
	pending := make([]Key, len(s.Pending), len(s.Pending)+1)
	copy(pending, s.Pending)
	s.Pending = append(pending, k)
	return s
}

// popKey removes the oldest pending key, or returns KeyNone.
func (s State) popKey() (State, Key) {
	if len(s.Pending) == 0 {
		return s, KeyNone
	}
	k := s.Pending[0]
	s.Pending = s.Pending[1:]
	return s, k
}

// Tick runs one refresh cycle: render the active page from a fresh
// snapshot, take a CPU sample into the history, then apply at most one
// pending key. Width and Height of in set the frame size and history
// capacity; the page fields are taken from s. It returns the next state, the rendered frame and whether
// the loop should stop.
func (s State) Tick(src TickSource, in RenderInput) (State, *Frame, bool) {
	if s.History == nil {
		s.History = NewCPUHistory()
	}
	snap := src.Snapshot()
	count := len(snap.Processes)
	pageHeight := ProcessPageHeight(in.Height)
	s.Offset = ClampOffset(s.Offset, count, pageHeight, s.Ceiling)

	in.Layout = s.Layout
	in.Page = s.Page
	in.Offset = s.Offset
	in.Snapshot = snap
	in.History = s.History.Values()
	frame := Render(in)

	if cur, err := src.CPUCounters(); err == nil {
		s.History.AppendAndCap(CPUUsage(s.Baseline, cur), in.Width)
		s.Baseline = &cur
	}

	s, k := s.popKey()
	s, quit := s.HandleKey(k, count, pageHeight)
	return s, frame, quit
}
