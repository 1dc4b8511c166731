package monitor

// CPUHistory is an oldest-first series of aggregate CPU usage samples in
// [0,100]. Its capacity follows the terminal width and is supplied on each
// append. Not safe for concurrent use; the dashboard loop owns it.
type CPUHistory struct {
	data []float64
}

// NewCPUHistory creates an empty history.
func NewCPUHistory() *CPUHistory {
	return &CPUHistory{}
}

// AppendAndCap adds a sample, then drops the oldest samples until the
// length is at most capacity. A capacity <= 0 empties the history.
func (h *CPUHistory) AppendAndCap(sample float64, capacity int) {
	h.data = append(h.data, clampPercent(sample))
	if capacity < 0 {
		capacity = 0
	}
	if over := len(h.data) - capacity; over > 0 {
		// Copy so the backing array does not grow without bound.
		h.data = append([]float64(nil), h.data[over:]...)
	}
}

// Len returns the number of stored samples.
func (h *CPUHistory) Len() int {
	return len(h.data)
}

// Values returns a copy of all samples, oldest first.
func (h *CPUHistory) Values() []float64 {
	return h.Last(len(h.data))
}

// Last returns the most recent count samples, oldest first. Returns fewer
// values if not enough history is available.
func (h *CPUHistory) Last(count int) []float64 {
	if count <= 0 || len(h.data) == 0 {
		return nil
	}
	if count > len(h.data) {
		count = len(h.data)
	}
	result := make([]float64, count)
	copy(result, h.data[len(h.data)-count:])
	return result
}

// CPUUsage computes aggregate utilisation between two counter readings.
// With no previous reading, or a non-positive total delta, usage is 0.
func CPUUsage(prev *CPUCounters, cur CPUCounters) float64 {
	if prev == nil {
		return 0
	}
	dTotal := float64(cur.Total) - float64(prev.Total)
	if dTotal <= 0 {
		return 0
	}
	dIdle := float64(cur.Idle) - float64(prev.Idle)
	return clampPercent(100 * (1 - dIdle/dTotal))
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
