// Package parsers turns the text records exposed under /proc into values.
// Every function here is pure: callers do the reading.
package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CPUCounters holds aggregate jiffies from the "cpu" line of /proc/stat.
// Idle includes iowait.
type CPUCounters struct {
	Total uint64
	Idle  uint64
}

// Meminfo holds the /proc/meminfo fields used by the dashboard, in kB.
type Meminfo struct {
	TotalKB   int64
	FreeKB    int64
	BuffersKB int64
	CachedKB  int64
	HasTotal  bool
}

// PIDStat holds the /proc/<pid>/stat fields used by the sampler.
type PIDStat struct {
	Comm      string
	UTime     uint64
	STime     uint64
	StartTime uint64
}

// PIDStatus holds the /proc/<pid>/status fields used by the sampler.
type PIDStatus struct {
	UID    int
	RSSKB  int64
	HasRSS bool
}

// cpuCounterFields is how many counters of the aggregate line are summed:
// user nice system idle iowait irq softirq.
const cpuCounterFields = 7

// ParseUptime parses the first field of /proc/uptime as seconds.
func ParseUptime(procUptime string) (float64, error) {
	fields := strings.Fields(procUptime)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty /proc/uptime")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse uptime %q: %w", fields[0], err)
	}
	return secs, nil
}

// ParseMeminfo extracts MemTotal, MemFree, Buffers and Cached.
// Missing or malformed fields are left at zero; HasTotal reports whether a
// usable MemTotal line was seen.
func ParseMeminfo(procMeminfo string) Meminfo {
	var info Meminfo
	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))

	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		val, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(parts[0], ":") {
		case "MemTotal":
			info.TotalKB = val
			info.HasTotal = val > 0
		case "MemFree":
			info.FreeKB = val
		case "Buffers":
			info.BuffersKB = val
		case "Cached":
			info.CachedKB = val
		}
	}

	return info
}

// ParseLoadavg returns the /proc/loadavg line without trailing whitespace.
// The line is passed through unparsed for display.
func ParseLoadavg(procLoadavg string) string {
	return strings.TrimSpace(procLoadavg)
}

// ParseCPUCounters sums the first seven counters of the aggregate "cpu" line.
func ParseCPUCounters(procStat string) (CPUCounters, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)[1:]
		if len(fields) < 4 {
			return CPUCounters{}, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}
		if len(fields) > cpuCounterFields {
			fields = fields[:cpuCounterFields]
		}

		var counters CPUCounters
		for i, f := range fields {
			val, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return CPUCounters{}, fmt.Errorf("failed to parse cpu field %d: %w", i+1, err)
			}
			counters.Total += val

			// idle is the 4th counter, iowait the 5th
			if i == 3 || i == 4 {
				counters.Idle += val
			}
		}
		return counters, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUCounters{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	return CPUCounters{}, fmt.Errorf("no aggregate cpu line in /proc/stat")
}

// ParsePIDStat parses /proc/<pid>/stat. The command name is taken between
// the first '(' and the last ')' since it may itself contain spaces or
// parentheses; numbered fields are counted from the kernel's 1-based layout.
func ParsePIDStat(procPIDStat string) (PIDStat, error) {
	line := strings.TrimSpace(procPIDStat)

	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < 0 || r <= l {
		return PIDStat{}, fmt.Errorf("malformed stat record: missing command name")
	}

	rest := strings.Fields(line[r+1:])
	// rest[0] is field 3 (state); starttime is field 22
	const first = 3
	if len(rest) < 22-first+1 {
		return PIDStat{}, fmt.Errorf("malformed stat record: %d fields after command name", len(rest))
	}
	field := func(n int) (uint64, error) {
		v, err := strconv.ParseUint(rest[n-first], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse stat field %d: %w", n, err)
		}
		return v, nil
	}

	stat := PIDStat{Comm: line[l+1 : r]}
	var err error
	if stat.UTime, err = field(14); err != nil {
		return PIDStat{}, err
	}
	if stat.STime, err = field(15); err != nil {
		return PIDStat{}, err
	}
	if stat.StartTime, err = field(22); err != nil {
		return PIDStat{}, err
	}
	return stat, nil
}

// ParsePIDStatus extracts the real uid and VmRSS from /proc/<pid>/status.
// A missing Uid line is an error; a missing VmRSS (kernel threads) is not.
func ParsePIDStatus(procPIDStatus string) (PIDStatus, error) {
	var status PIDStatus
	foundUID := false

	scanner := bufio.NewScanner(strings.NewReader(procPIDStatus))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Uid:"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return PIDStatus{}, fmt.Errorf("malformed Uid line: %s", line)
			}
			uid, err := strconv.Atoi(fields[1])
			if err != nil {
				return PIDStatus{}, fmt.Errorf("failed to parse uid: %w", err)
			}
			status.UID = uid
			foundUID = true

		case strings.HasPrefix(line, "VmRSS:"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			rss, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				continue
			}
			status.RSSKB = rss
			status.HasRSS = true
		}
	}

	if err := scanner.Err(); err != nil {
		return PIDStatus{}, fmt.Errorf("error scanning status: %w", err)
	}
	if !foundUID {
		return PIDStatus{}, fmt.Errorf("no Uid line in status")
	}
	return status, nil
}

// ParseCmdline joins the NUL-separated argv of /proc/<pid>/cmdline with spaces.
func ParseCmdline(procPIDCmdline []byte) string {
	return strings.TrimSpace(strings.ReplaceAll(string(procPIDCmdline), "\x00", " "))
}

// IsPID reports whether a /proc directory entry names a process.
func IsPID(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
