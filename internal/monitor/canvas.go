package monitor

import (
	"strings"
)

// Attr is the display attribute of a single cell.
type Attr uint8

const (
	AttrNormal Attr = iota
	AttrBold
	AttrDim
)

// Box drawing runes.
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
)

type cell struct {
	r    rune
	attr Attr
}

// Frame is a fixed grid of cells. Every write is clipped to the grid, so
// drawing code never has to check bounds.
type Frame struct {
	width  int
	height int
	cells  [][]cell
}

// NewFrame creates a blank frame of width columns and height rows.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &Frame{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (f *Frame) Width() int { return f.width }

// Height returns the number of rows.
func (f *Frame) Height() int { return f.height }

// PutRune writes a single rune at (row, col).
func (f *Frame) PutRune(row, col int, r rune, attr Attr) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return
	}
	f.cells[row][col] = cell{r: r, attr: attr}
}

// Put writes text starting at (row, col), clipping at the right edge.
func (f *Frame) Put(row, col int, text string, attr Attr) {
	for _, r := range text {
		f.PutRune(row, col, r, attr)
		col++
	}
}

// HLine draws n copies of r to the right of (row, col).
func (f *Frame) HLine(row, col, n int, r rune, attr Attr) {
	for i := 0; i < n; i++ {
		f.PutRune(row, col+i, r, attr)
	}
}

// VLine draws n copies of r below (row, col).
func (f *Frame) VLine(row, col, n int, r rune, attr Attr) {
	for i := 0; i < n; i++ {
		f.PutRune(row+i, col, r, attr)
	}
}

// Box draws a dim border with its top-left corner at (row, col). The box is
// shrunk to fit inside the frame; boxes smaller than 2x2 are not drawn. A
// non-empty title is drawn bold on the top border.
func (f *Frame) Box(row, col, height, width int, title string) {
	if row < 0 || col < 0 {
		return
	}
	height = min(height, f.height-row)
	width = min(width, f.width-col)
	if height < 2 || width < 2 {
		return
	}

	bottom, right := row+height-1, col+width-1
	f.HLine(row, col+1, width-2, runeHorizontal, AttrDim)
	f.HLine(bottom, col+1, width-2, runeHorizontal, AttrDim)
	f.VLine(row+1, col, height-2, runeVertical, AttrDim)
	f.VLine(row+1, right, height-2, runeVertical, AttrDim)
	f.PutRune(row, col, runeTopLeft, AttrDim)
	f.PutRune(row, right, runeTopRight, AttrDim)
	f.PutRune(bottom, col, runeBottomLeft, AttrDim)
	f.PutRune(bottom, right, runeBottomRight, AttrDim)

	if title != "" && width > 4 {
		label := truncate(" "+title+" ", width-4)
		f.Put(row, col+2, label, AttrBold)
	}
}

// Lines returns the frame as plain text rows with trailing spaces removed.
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	for y, row := range f.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the plain text of the frame.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Paint renders the frame with bold and dim runs styled through lipgloss.
func (f *Frame) Paint() string {
	rows := make([]string, f.height)
	for y, row := range f.cells {
		var b strings.Builder
		var run strings.Builder
		attr := AttrNormal
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if attr == AttrNormal {
				b.WriteString(run.String())
			} else {
				b.WriteString(styleFor(attr).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.attr != attr {
				flush()
				attr = c.attr
			}
			run.WriteRune(c.r)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
