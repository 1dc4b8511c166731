package monitor

import (
	"fmt"
	"time"
)

// Minimum terminal size for any layout.
const (
	MinWidth  = 60
	MinHeight = 16
)

// TooSmallNotice replaces the whole frame when the terminal is under the
// minimum size.
var TooSmallNotice = fmt.Sprintf("Terminal too small! Please resize to at least %dx%d.", MinWidth, MinHeight)

// ProcessHeader is the column header of the process table.
const ProcessHeader = " PID   USER       CPU%   MEM%   COMMAND"

// processPrefixWidth is the width of a process row before the command.
const processPrefixWidth = 33

// RenderInput is everything needed to draw one frame.
type RenderInput struct {
	Width    int
	Height   int
	Layout   LayoutMode
	Page     int // index into Layout.Pages()
	Offset   int
	Snapshot Snapshot
	History  []float64
	Interval time.Duration
	Keys     KeyMap
}

// TooSmall reports whether a terminal of the given size cannot be drawn.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ProcessPageHeight is the number of process rows visible at height.
func ProcessPageHeight(height int) int {
	return max(0, height-5)
}

// MaxOffset is the largest useful scroll offset.
func MaxOffset(count, pageHeight, ceiling int) int {
	return max(0, min(ceiling, count-pageHeight))
}

// ClampOffset keeps offset within [0, MaxOffset].
func ClampOffset(offset, count, pageHeight, ceiling int) int {
	return min(max(offset, 0), MaxOffset(count, pageHeight, ceiling))
}

// Render draws the frame for the active page. It has no side effects.
func Render(in RenderInput) *Frame {
	f := NewFrame(in.Width, in.Height)
	if TooSmall(in.Width, in.Height) {
		f.Put(0, 0, TooSmallNotice, AttrBold)
		return f
	}

	pages := in.Layout.Pages()
	idx := ((in.Page % len(pages)) + len(pages)) % len(pages)
	contentHeight := in.Height - 2

	switch pages[idx] {
	case PageProcesses:
		renderProcesses(f, in, contentHeight)
	case PageSummary:
		f.Box(0, 0, contentHeight, in.Width, "System Summary")
		renderSummary(f, in.Snapshot, in.Width, contentHeight)
	case PageCPUGraph:
		renderGraph(f, in, 0, in.Width, contentHeight)
	case PageOverview:
		mid := in.Width / 2
		f.Box(0, 0, contentHeight, mid, "System Summary")
		renderSummary(f, in.Snapshot, mid, contentHeight)
		renderGraph(f, in, mid, in.Width-mid, contentHeight)
	}

	keys := in.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	renderFooter(f, keys.FooterHint(idx+1, len(pages)))
	return f
}

func renderProcesses(f *Frame, in RenderInput, contentHeight int) {
	f.Box(0, 0, contentHeight, in.Width, "Processes")
	f.Put(1, 2, ProcessHeader, AttrBold)

	innerWidth := in.Width - 4
	procs := in.Snapshot.Processes
	pageHeight := ProcessPageHeight(in.Height)
	offset := ClampOffset(in.Offset, len(procs), pageHeight, len(procs))

	for i := 0; i < pageHeight && offset+i < len(procs); i++ {
		f.Put(2+i, 2, truncate(FormatProcessRow(procs[offset+i], innerWidth-processPrefixWidth), innerWidth), AttrNormal)
	}
}

// FormatProcessRow formats one table row with the command cut to cmdWidth.
func FormatProcessRow(p ProcessSample, cmdWidth int) string {
	return fmt.Sprintf("%5d  %-10s  %5.1f  %5.1f  %s",
		p.PID, truncate(p.User, 10), p.CPUPercent, p.MemPercent, truncate(p.Command, cmdWidth))
}

// SummaryLines returns the system summary text.
func SummaryLines(s Snapshot) []string {
	uptime := fmt.Sprintf("Uptime: %.0f seconds", s.Uptime)
	if s.Err != nil {
		uptime = "Uptime: unavailable"
	}
	return []string{
		uptime,
		fmt.Sprintf("Memory: %d KB used / %d KB total", s.Memory.UsedKB, s.Memory.TotalKB),
		fmt.Sprintf("Load Avg: %s", s.Load),
		fmt.Sprintf("CPU Cores: %d", s.Cores),
	}
}

// renderSummary writes the summary inside a box of the given size anchored
// at the top-left corner. Lines are cut to keep one blank column before the
// right border.
func renderSummary(f *Frame, s Snapshot, boxWidth, boxHeight int) {
	for i, line := range SummaryLines(s) {
		row := 2 + i
		if row >= boxHeight-1 {
			return
		}
		f.Put(row, 2, truncate(line, boxWidth-4), AttrNormal)
	}
}

func renderGraph(f *Frame, in RenderInput, col, width, contentHeight int) {
	graphWidth := width - 2
	f.Box(0, col, contentHeight, width, GraphTitle(len(in.History), graphWidth, in.Interval))
	DrawBarGraph(f, 1, col+1, contentHeight-2, graphWidth, in.History)
}

// GraphTitle names the graph box with the time span it covers.
func GraphTitle(samples, graphWidth int, interval time.Duration) string {
	shown := min(samples, graphWidth)
	if shown <= 0 || interval <= 0 {
		return "CPU Usage"
	}
	span := (time.Duration(shown) * interval).Round(time.Second)
	if span < time.Second {
		return "CPU Usage"
	}
	return fmt.Sprintf("CPU Usage (last %s)", span)
}

func renderFooter(f *Frame, hint string) {
	f.Box(f.Height()-2, 0, 2, f.Width(), "")
	f.Put(f.Height()-1, 2, hint, AttrNormal)
}
