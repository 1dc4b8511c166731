package monitor

import (
	"sort"

	"github.com/rileyhilliard/ptop/internal/logger"
)

// Source is the read side of the metrics reader consumed by the sampler.
type Source interface {
	Uptime() (float64, error)
	TotalMemoryKB() int64
	MemoryInfo() MemoryInfo
	LoadAverage() string
	CPUCounters() (CPUCounters, error)
	ListProcesses() []ProcessResult
	ClockTicks() int64
	CPUCount() int
}

// Sampler turns raw process facts into sorted per-process samples.
type Sampler struct {
	source Source
	log    logger.Logger
	hz     int64
	cores  int
}

// NewSampler creates a sampler over source. A nil log discards output.
func NewSampler(source Source, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{source: source, log: log}
}

// Sample lists processes and computes their CPU and memory percentages,
// sorted by CPU% descending. Ties keep listing order.
func (s *Sampler) Sample(hz int64, uptime float64, totalMemKB int64) []ProcessSample {
	samples, _ := s.sample(hz, uptime, totalMemKB)
	return samples
}

// sample is Sample plus the number of processes that were skipped.
func (s *Sampler) sample(hz int64, uptime float64, totalMemKB int64) ([]ProcessSample, int) {
	var procs []RawProcess
	skipped := 0
	for _, res := range s.source.ListProcesses() {
		if res.Skip != nil {
			skipped++
			s.log.Debug("%v", res.Skip)
			continue
		}
		procs = append(procs, *res.Process)
	}
	return BuildSamples(procs, hz, uptime, totalMemKB), skipped
}

// CPUCounters reads the aggregate counters from the underlying source.
func (s *Sampler) CPUCounters() (CPUCounters, error) {
	return s.source.CPUCounters()
}

// Snapshot gathers everything a frame needs for one tick. If uptime cannot
// be read the process list is left empty and Err is set.
func (s *Sampler) Snapshot() Snapshot {
	if s.hz == 0 {
		s.hz = s.source.ClockTicks()
	}
	if s.cores == 0 {
		s.cores = s.source.CPUCount()
	}

	snap := Snapshot{
		Memory: s.source.MemoryInfo(),
		Load:   s.source.LoadAverage(),
		Cores:  s.cores,
	}

	uptime, err := s.source.Uptime()
	if err != nil {
		s.log.Debug("uptime unavailable: %v", err)
		snap.Err = err
		return snap
	}
	snap.Uptime = uptime

	snap.Processes, snap.Skipped = s.sample(s.hz, uptime, s.source.TotalMemoryKB())
	return snap
}

// BuildSamples computes samples for procs and sorts them by CPU% descending
// with a stable sort.
func BuildSamples(procs []RawProcess, hz int64, uptime float64, totalMemKB int64) []ProcessSample {
	samples := make([]ProcessSample, 0, len(procs))
	for _, p := range procs {
		samples = append(samples, ProcessSample{
			PID:        p.PID,
			User:       p.User,
			CPUPercent: ProcessCPUPercent(p, hz, uptime),
			MemPercent: ProcessMemPercent(p.RSSKB, totalMemKB),
			Command:    p.Command,
		})
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].CPUPercent > samples[j].CPUPercent
	})
	return samples
}

// ProcessCPUPercent is the lifetime-average CPU use of p: CPU seconds
// consumed divided by seconds since the process started. A process whose
// lifetime is not positive reports 0.
func ProcessCPUPercent(p RawProcess, hz int64, uptime float64) float64 {
	if hz <= 0 {
		hz = DefaultClockTicks
	}
	ticks := float64(hz)
	lifetime := uptime - float64(p.StartTime)/ticks
	if lifetime <= 0 {
		return 0
	}
	pct := 100 * (float64(p.UTime+p.STime) / ticks) / lifetime
	if pct < 0 {
		return 0
	}
	return pct
}

// ProcessMemPercent is rss as a percentage of total memory. A non-positive
// total is treated as 1.
func ProcessMemPercent(rssKB, totalKB int64) float64 {
	if totalKB <= 0 {
		totalKB = 1
	}
	if rssKB <= 0 {
		return 0
	}
	return clampPercent(float64(rssKB) / float64(totalKB) * 100)
}
