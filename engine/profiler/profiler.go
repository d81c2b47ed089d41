//go:build profile

package profiler

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// Init must be called once, on app start, with the number of scope events
// the ring keeps. Older events are overwritten.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	now := time.Now().UnixNano()
	ring.push(event{at: now, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < now {
			end = now
		}
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the captured scopes to path in speedscope's evented format.
func Dump(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return errors.New("profiler: no events to dump")
	}
	return writeSpeedscope(evs, snapshotFrames(), path)
}

// Open dumps the capture into the temp dir and launches speedscope on it.
func Open() (string, error) {
	path := filepath.Join(os.TempDir(), "sprig.profile.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	hideWindow(cmd)
	return path, cmd.Start()
}

type event struct {
	at    int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

var (
	framesMu sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	framesMu.Lock()
	defer framesMu.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

func snapshotFrames() []string {
	framesMu.Lock()
	defer framesMu.Unlock()
	return append([]string(nil), frames...)
}
