package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page identifies one view of the dashboard.
type Page int

const (
	PageProcesses Page = iota
	PageSummary
	PageCPUGraph
	// PageOverview shows the summary and CPU graph side by side.
	PageOverview
)

// String returns a human-readable label for the page.
func (p Page) String() string {
	switch p {
	case PageProcesses:
		return "processes"
	case PageSummary:
		return "summary"
	case PageCPUGraph:
		return "cpu"
	case PageOverview:
		return "overview"
	default:
		return "unknown"
	}
}

// LayoutMode selects the set of pages. It is fixed at startup.
type LayoutMode int

const (
	// LayoutPaged shows processes, summary and CPU graph on separate pages.
	LayoutPaged LayoutMode = iota
	// LayoutSplit shows processes on one page and summary plus graph on another.
	LayoutSplit
)

// String returns the config name of the layout.
func (l LayoutMode) String() string {
	if l == LayoutSplit {
		return "split"
	}
	return "paged"
}

// Pages returns the pages of the layout in navigation order.
func (l LayoutMode) Pages() []Page {
	if l == LayoutSplit {
		return []Page{PageProcesses, PageOverview}
	}
	return []Page{PageProcesses, PageSummary, PageCPUGraph}
}

// ParseLayoutMode maps a config value to a layout.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "paged":
		return LayoutPaged, nil
	case "split":
		return LayoutSplit, nil
	default:
		return LayoutPaged, fmt.Errorf("unknown layout %q", s)
	}
}

// Key is a navigation command decoded from terminal input.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQuit
)

// KeyMap defines the key bindings for the dashboard.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Quit      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous view"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit now"),
		),
	}
}

// Translate decodes a key message. Unbound keys yield KeyNone.
func (k KeyMap) Translate(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, k.Left):
		return KeyLeft
	case key.Matches(msg, k.Right):
		return KeyRight
	case key.Matches(msg, k.Up):
		return KeyUp
	case key.Matches(msg, k.Down):
		return KeyDown
	case key.Matches(msg, k.Quit):
		return KeyQuit
	default:
		return KeyNone
	}
}

// FooterHint is the key legend shown on the last row of every frame.
func (k KeyMap) FooterHint(page, pages int) string {
	return fmt.Sprintf("[%s/%s switch view] [%s/%s scroll] [%s to quit] Page: %d/%d",
		k.Left.Help().Key, k.Right.Help().Key,
		k.Up.Help().Key, k.Down.Help().Key,
		k.Quit.Help().Key, page, pages)
}
