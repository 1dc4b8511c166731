package monitor

import "math"

// GraphBar is the glyph used to fill a column of the CPU graph.
const GraphBar = '█'

// BarHeight converts a percentage into a number of filled rows out of
// height, rounding to the nearest row.
func BarHeight(percent float64, height int) int {
	if height <= 0 {
		return 0
	}
	rows := int(math.Round(clampPercent(percent) / 100 * float64(height)))
	return min(max(rows, 0), height)
}

// DrawBarGraph draws one column per sample inside the area whose top-left
// corner is (top, left). The newest sample lands in the rightmost column and
// older samples extend leftwards; samples that do not fit are not drawn.
// Bars grow from the bottom row up.
func DrawBarGraph(f *Frame, top, left, height, width int, data []float64) {
	if height <= 0 || width <= 0 {
		return
	}
	bottom := top + height - 1
	for i := 0; i < len(data) && i < width; i++ {
		bar := BarHeight(data[len(data)-1-i], height)
		f.VLine(bottom-bar+1, left+width-1-i, bar, GraphBar, AttrNormal)
	}
}
