// Package monitor implements ptop's live process and resource dashboard.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the dashboard State, the last rendered Frame and the size
//   - Update: Queues keystrokes and runs one refresh cycle per tick
//   - View: Paints the last Frame with lipgloss
//
// # Key Components
//
//	Reader      - Reads uptime, memory, load, cpu counters and processes from a proc tree
//	Sampler     - Turns raw process facts into sorted CPU%/MEM% samples and snapshots
//	CPUHistory  - Width-capped series of aggregate CPU usage for the graph
//	Frame       - Cell grid with clipping; Render draws pages into it
//	State       - Page, scroll offset, CPU baseline and pending keys
//
// # Refresh Cycle
//
// Each tick, in order:
//
//  1. A fresh Snapshot is taken and the active page is rendered from it
//  2. CPU counters are sampled and usage since the previous tick is appended
//     to the history
//  3. At most one pending key is applied to the page and offset
//
// The tick fires at the configured interval (default 200ms). Ctrl+C bypasses
// the queue and quits immediately.
//
// # Layout Modes
//
//	LayoutPaged  - Processes, System Summary and CPU Usage on separate pages
//	LayoutSplit  - Processes, then Summary and CPU Usage side by side
//
// Every layout needs at least 60x16; smaller terminals get a single notice.
//
// # Keyboard Shortcuts
//
//	←/h, →/l    - Previous / next page
//	↑/k, ↓/j    - Scroll the process table
//	q           - Quit (after the current tick)
//	Ctrl+C      - Quit immediately
package monitor
