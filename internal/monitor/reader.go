package monitor

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/afero"
	"github.com/tklauser/go-sysconf"
)

// DefaultClockTicks is used when SC_CLK_TCK cannot be queried.
const DefaultClockTicks = 100

// Reader pulls point-in-time facts from a proc filesystem. It keeps no
// state between calls; delta computations are the caller's job.
type Reader struct {
	fs     afero.Fs
	root   string
	owners OwnerResolver
}

// NewReader creates a reader over fs with the proc tree mounted at root.
func NewReader(fs afero.Fs, root string, owners OwnerResolver) *Reader {
	return &Reader{fs: fs, root: root, owners: owners}
}

// NewSystemReader reads the host's proc filesystem at root.
func NewSystemReader(root string) *Reader {
	return NewReader(afero.NewReadOnlyFs(afero.NewOsFs()), root, NewSystemOwners())
}

func (r *Reader) read(parts ...string) ([]byte, error) {
	return afero.ReadFile(r.fs, filepath.Join(append([]string{r.root}, parts...)...))
}

func (r *Reader) readString(parts ...string) (string, error) {
	data, err := r.read(parts...)
	return string(data), err
}

// Uptime returns seconds since boot.
func (r *Reader) Uptime() (float64, error) {
	data, err := r.readString("uptime")
	if err != nil {
		return 0, errors.Wrap(err, "Cannot read uptime")
	}
	secs, err := parsers.ParseUptime(data)
	if err != nil {
		return 0, errors.Wrap(err, "Cannot parse uptime")
	}
	return secs, nil
}

func (r *Reader) meminfo() parsers.Meminfo {
	data, err := r.readString("meminfo")
	if err != nil {
		return parsers.Meminfo{}
	}
	return parsers.ParseMeminfo(data)
}

// TotalMemoryKB returns MemTotal in kB, or 1 when it cannot be found so
// that percentages stay defined.
func (r *Reader) TotalMemoryKB() int64 {
	info := r.meminfo()
	if !info.HasTotal {
		return 1
	}
	return info.TotalKB
}

// MemoryInfo returns used/free/total in kB, with buffers and cache counted
// as free.
func (r *Reader) MemoryInfo() MemoryInfo {
	info := r.meminfo()
	total := info.TotalKB
	if !info.HasTotal {
		total = 1
	}
	free := info.FreeKB + info.BuffersKB + info.CachedKB
	return MemoryInfo{
		UsedKB:  total - free,
		FreeKB:  free,
		TotalKB: total,
	}
}

// LoadAverage returns the raw load average line, or "" when unreadable.
func (r *Reader) LoadAverage() string {
	data, err := r.readString("loadavg")
	if err != nil {
		return ""
	}
	return parsers.ParseLoadavg(data)
}

// CPUCounters returns the aggregate jiffies from the stat file.
func (r *Reader) CPUCounters() (CPUCounters, error) {
	data, err := r.readString("stat")
	if err != nil {
		return CPUCounters{}, errors.Wrap(err, "Cannot read cpu counters")
	}
	counters, err := parsers.ParseCPUCounters(data)
	if err != nil {
		return CPUCounters{}, errors.Wrap(err, "Cannot parse cpu counters")
	}
	return counters, nil
}

// ClockTicks returns the kernel clock ticks per second. The value is a
// property of the running kernel, so it is shared by every proc root.
func (r *Reader) ClockTicks() int64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return DefaultClockTicks
	}
	return hz
}

// CPUCount returns the number of logical cores listed under the proc root,
// falling back to the Go runtime's count.
func (r *Reader) CPUCount() int {
	ctx := context.WithValue(context.Background(), common.EnvKey,
		common.EnvMap{common.HostProcEnvKey: r.root})
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// pids lists numeric entries of the proc root in ascending order.
func (r *Reader) pids() ([]int, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, e := range entries {
		if !e.IsDir() || !parsers.IsPID(e.Name()) {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids, nil
}

// ListProcesses reads every process under the proc root. A process that
// cannot be read yields a Skip result; it never aborts the listing.
func (r *Reader) ListProcesses() []ProcessResult {
	pids, err := r.pids()
	if err != nil {
		return nil
	}

	results := make([]ProcessResult, 0, len(pids))
	for _, pid := range pids {
		proc, skip := r.readProcess(pid)
		if skip != nil {
			results = append(results, ProcessResult{PID: pid, Skip: skip})
			continue
		}
		results = append(results, ProcessResult{PID: pid, Process: proc})
	}
	return results
}

func (r *Reader) readProcess(pid int) (*RawProcess, *SkipReason) {
	dir := strconv.Itoa(pid)
	skip := func(kind SkipKind, err error) (*RawProcess, *SkipReason) {
		return nil, &SkipReason{PID: pid, Kind: kind, Err: err}
	}

	// An exited process fails reads with ENOENT or ESRCH; both mean vanished.
	statData, err := r.readString(dir, "stat")
	if err != nil {
		return skip(SkipVanished, err)
	}
	stat, err := parsers.ParsePIDStat(statData)
	if err != nil {
		return skip(SkipMalformedStat, err)
	}

	cmdData, err := r.read(dir, "cmdline")
	if err != nil {
		return skip(SkipVanished, err)
	}
	command := parsers.ParseCmdline(cmdData)
	if command == "" {
		command = stat.Comm
	}

	statusData, err := r.readString(dir, "status")
	if err != nil {
		return skip(SkipVanished, err)
	}
	status, err := parsers.ParsePIDStatus(statusData)
	if err != nil {
		return skip(SkipMalformedStatus, err)
	}

	owner, err := r.owners.LookupUID(status.UID)
	if err != nil {
		return skip(SkipUnknownOwner, err)
	}

	return &RawProcess{
		PID:       pid,
		UID:       status.UID,
		User:      owner,
		Command:   command,
		UTime:     stat.UTime,
		STime:     stat.STime,
		StartTime: stat.StartTime,
		RSSKB:     status.RSSKB,
	}, nil
}
