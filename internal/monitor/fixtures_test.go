package monitor

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const procRoot = "/proc"

// fakeOwners resolves uids from a fixed table.
type fakeOwners map[int]string

func (o fakeOwners) LookupUID(uid int) (string, error) {
	name, ok := o[uid]
	if !ok {
		return "", fmt.Errorf("unknown userid %d", uid)
	}
	return name, nil
}

var testOwners = fakeOwners{0: "root", 1000: "alice"}

func statLine(pid int, comm string, utime, stime, start uint64) string {
	return fmt.Sprintf("%d (%s) S 1 %d %d 0 -1 4194560 100 0 0 0 %d %d 0 0 20 0 1 0 %d 12345678 300\n",
		pid, comm, pid, pid, utime, stime, start)
}

func statusText(uid int, rssKB int64) string {
	s := fmt.Sprintf("Name:\tproc\nState:\tS (sleeping)\nUid:\t%d\t%d\t%d\t%d\n", uid, uid, uid, uid)
	if rssKB >= 0 {
		s += fmt.Sprintf("VmRSS:\t%8d kB\n", rssKB)
	}
	return s
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

type fixtureProc struct {
	pid     int
	comm    string
	cmdline string
	uid     int
	rssKB   int64 // negative omits VmRSS
	utime   uint64
	stime   uint64
	start   uint64
}

func writeProc(t *testing.T, fs afero.Fs, p fixtureProc) {
	t.Helper()
	dir := filepath.Join(procRoot, fmt.Sprint(p.pid))
	writeFile(t, fs, filepath.Join(dir, "stat"), statLine(p.pid, p.comm, p.utime, p.stime, p.start))
	writeFile(t, fs, filepath.Join(dir, "cmdline"), p.cmdline)
	writeFile(t, fs, filepath.Join(dir, "status"), statusText(p.uid, p.rssKB))
}

// newProcFS builds a proc tree with three readable processes (1, 2, 7) and
// three that must be skipped (3 vanished, 4 unknown owner, 5 malformed stat).
func newProcFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	writeFile(t, fs, "/proc/uptime", "1000.00 3000.00\n")
	writeFile(t, fs, "/proc/meminfo", "MemTotal:        8000000 kB\nMemFree:         1000000 kB\nMemAvailable:    2500000 kB\nBuffers:          500000 kB\nCached:          1500000 kB\n")
	writeFile(t, fs, "/proc/loadavg", "0.52 0.58 0.59 2/467 12345\n")
	writeFile(t, fs, "/proc/stat", "cpu  100 10 50 800 20 5 15 7 0 0\ncpu0 50 5 25 400 10 2 7 3 0 0\nintr 1 2 3\n")
	writeFile(t, fs, "/proc/version", "Linux version 6.1.0\n")
	require.NoError(t, fs.MkdirAll("/proc/self", 0o755))
	require.NoError(t, fs.MkdirAll("/proc/net", 0o755))

	writeProc(t, fs, fixtureProc{pid: 1, comm: "systemd", cmdline: "/sbin/init\x00splash\x00", uid: 0, rssKB: 8000, utime: 250, stime: 50, start: 5000})
	writeProc(t, fs, fixtureProc{pid: 2, comm: "kthreadd", cmdline: "", uid: 0, rssKB: -1, start: 10})
	writeProc(t, fs, fixtureProc{pid: 7, comm: "python3", cmdline: "python3\x00app.py\x00", uid: 1000, rssKB: 800000, utime: 1000, start: 90000})

	require.NoError(t, fs.MkdirAll("/proc/3", 0o755))
	writeProc(t, fs, fixtureProc{pid: 4, comm: "ghost", cmdline: "ghost", uid: 999, rssKB: 10})
	writeFile(t, fs, "/proc/5/stat", "garbage\n")

	return fs
}

func newTestReader(t *testing.T) (*Reader, afero.Fs) {
	t.Helper()
	fs := newProcFS(t)
	return NewReader(fs, procRoot, testOwners), fs
}

// fakeSource is a TickSource with a fixed snapshot and a scripted series of
// counter readings.
type fakeSource struct {
	snap     Snapshot
	counters []CPUCounters
	err      error
	calls    int
}

func (s *fakeSource) Snapshot() Snapshot { return s.snap }

func (s *fakeSource) CPUCounters() (CPUCounters, error) {
	if s.err != nil {
		return CPUCounters{}, s.err
	}
	if len(s.counters) == 0 {
		return CPUCounters{}, nil
	}
	c := s.counters[min(s.calls, len(s.counters)-1)]
	s.calls++
	return c, nil
}

func samplesN(n int) []ProcessSample {
	samples := make([]ProcessSample, n)
	for i := range samples {
		samples[i] = ProcessSample{PID: i + 1, User: "root", Command: fmt.Sprintf("proc-%d", i+1)}
	}
	return samples
}
