package monitor

import (
	"fmt"

	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
)

// CPUCounters is an aggregate jiffies reading. Only deltas between two
// readings are meaningful.
type CPUCounters = parsers.CPUCounters

// ProcessSample is one row of the process table for a single tick.
type ProcessSample struct {
	PID        int
	User       string
	CPUPercent float64
	MemPercent float64
	Command    string
}

// RawProcess is what the reader extracts for one pid before any math.
type RawProcess struct {
	PID       int
	UID       int
	User      string
	Command   string
	UTime     uint64
	STime     uint64
	StartTime uint64 // clock ticks after boot
	RSSKB     int64
}

// MemoryInfo is a system memory reading in kB. Free counts buffers and page
// cache as free, so Used is an approximation, not "available" memory.
type MemoryInfo struct {
	UsedKB  int64
	FreeKB  int64
	TotalKB int64
}

// SkipKind classifies why a process was left out of a listing.
type SkipKind int

const (
	// SkipVanished means the process exited between listing and reading.
	SkipVanished SkipKind = iota
	// SkipMalformedStat means /proc/<pid>/stat could not be parsed.
	SkipMalformedStat
	// SkipMalformedStatus means /proc/<pid>/status could not be parsed.
	SkipMalformedStatus
	// SkipUnknownOwner means the uid has no entry in the user database.
	SkipUnknownOwner
)

// String returns a short label for the skip kind.
func (k SkipKind) String() string {
	switch k {
	case SkipVanished:
		return "vanished"
	case SkipMalformedStat:
		return "malformed stat"
	case SkipMalformedStatus:
		return "malformed status"
	case SkipUnknownOwner:
		return "unknown owner"
	default:
		return "unknown"
	}
}

// SkipReason records a per-process failure. It is never shown in the UI.
type SkipReason struct {
	PID  int
	Kind SkipKind
	Err  error
}

func (s *SkipReason) Error() string {
	return fmt.Sprintf("pid %d skipped (%s): %v", s.PID, s.Kind, s.Err)
}

func (s *SkipReason) Unwrap() error {
	return s.Err
}

// ProcessResult is the outcome for one candidate pid: exactly one of
// Process and Skip is set.
type ProcessResult struct {
	PID     int
	Process *RawProcess
	Skip    *SkipReason
}

// Snapshot is one tick's immutable view of the system.
type Snapshot struct {
	Processes []ProcessSample
	Memory    MemoryInfo
	Load      string
	Uptime    float64
	Cores     int
	Skipped   int
	// Err is set when uptime could not be read; Processes is empty then.
	Err error
}
