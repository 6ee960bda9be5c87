//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init allocates the scope ring. It must run before the first Start; until
// then Start is a no-op.
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
	at := time.Now().UnixNano()
	ring.push(event{at: at, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < at {
			end = at
		}
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the recorded scopes to a speedscope file in the temp
// directory and returns its path.
func Dump() (string, error) {
	path := filepath.Join(os.TempDir(), "glcanvas.speedscope.json")
	if err := WriteSpeedscope(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteSpeedscope writes the recorded scopes to path in speedscope's
// evented format.
func WriteSpeedscope(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return ErrNoEvents
	}
	doc, err := buildDocument(evs)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

// ---------- event ring ----------

type event struct {
	at    int64
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
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

// ---------- scope names ----------

var (
	namesMu sync.Mutex
	names   []string
	nameIDs = map[string]int{}
)

func intern(name string) int {
	namesMu.Lock()
	defer namesMu.Unlock()
	if id, ok := nameIDs[name]; ok {
		return id
	}
	id := len(names)
	nameIDs[name] = id
	names = append(names, name)
	return id
}

// ---------- speedscope document ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// buildDocument balances the event stream: closes without a matching open
// are dropped and scopes still open at the end are closed LIFO.
func buildDocument(evs []event) (*ssFile, error) {
	namesMu.Lock()
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	namesMu.Unlock()

	base := evs[0].at
	var endUS int64
	lastUS := int64(-1)
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)

	for _, e := range evs {
		atUS := (e.at - base) / 1000
		if atUS < lastUS {
			atUS = lastUS
		}
		if e.open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.frame})
		}
		lastUS = atUS
		if atUS > endUS {
			endUS = atUS
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, ErrNoEvents
	}

	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "render thread",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "glcanvas-profiler",
		Name:     "glcanvas capture",
	}, nil
}
