package canvas

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/hubastard/glcanvas/engine/core"
	"github.com/hubastard/glcanvas/engine/scene"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.list() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// ---- windowing ----

var hintNames = map[core.Hint]string{
	core.HintVisible:   "visible",
	core.HintResizable: "resizable",
}

type fakeWindowing struct {
	rec       *recorder
	initErr   error
	createErr error
	win       *fakeWindow
	polls     int

	// onPoll runs on the render goroutine inside PollEvents.
	onPoll func(n int, cb core.Callbacks)
}

func newFakeWindowing() *fakeWindowing {
	return &fakeWindowing{rec: &recorder{}}
}

func (f *fakeWindowing) SetErrorCallback(cb func(error)) {
	if cb == nil {
		f.rec.add("SetErrorCallback(nil)")
		return
	}
	f.rec.add("SetErrorCallback")
}

func (f *fakeWindowing) Init() error {
	f.rec.add("Init")
	return f.initErr
}

func (f *fakeWindowing) Terminate()          { f.rec.add("Terminate") }
func (f *fakeWindowing) DefaultWindowHints() { f.rec.add("DefaultWindowHints") }
func (f *fakeWindowing) SwapInterval(n int)  { f.rec.add("SwapInterval(%d)", n) }

func (f *fakeWindowing) WindowHint(h core.Hint, v bool) {
	f.rec.add("WindowHint(%s,%t)", hintNames[h], v)
}

func (f *fakeWindowing) CreateWindow(w, h int, title string) (core.Window, error) {
	f.rec.add("CreateWindow(%d,%d,%s)", w, h, title)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.win = &fakeWindow{rec: f.rec}
	return f.win, nil
}

func (f *fakeWindowing) PollEvents() {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(f.polls, f.win.cb)
	}
}

type fakeWindow struct {
	rec *recorder
	cb  core.Callbacks
}

func (w *fakeWindow) SetCallbacks(cb core.Callbacks) {
	w.cb = cb
	w.rec.add("SetCallbacks")
}

func (w *fakeWindow) MakeContextCurrent()  { w.rec.add("MakeContextCurrent") }
func (w *fakeWindow) SetSize(width, h int) { w.rec.add("SetSize(%d,%d)", width, h) }
func (w *fakeWindow) Show()                { w.rec.add("Show") }
func (w *fakeWindow) ShouldClose() bool    { return false }
func (w *fakeWindow) SwapBuffers()         {}
func (w *fakeWindow) Destroy()             { w.rec.add("Destroy") }

// ---- graphics ----

type fakeGraphics struct {
	rec *recorder

	mu       sync.Mutex
	viewport [4]int32
	mv, proj mgl32.Mat4
	depth    float32
	reads    [][2]int32
}

func newFakeGraphics() *fakeGraphics {
	return &fakeGraphics{
		rec:      &recorder{},
		viewport: [4]int32{0, 0, 800, 600},
		mv:       mgl32.Ident4(),
		proj:     mgl32.Ident4(),
		depth:    0.5,
	}
}

func (g *fakeGraphics) ClearColor(c colors.Color)        { g.rec.add("ClearColor(%v)", c) }
func (g *fakeGraphics) PerspectiveCorrectionNicest()     { g.rec.add("PerspectiveCorrectionNicest") }
func (g *fakeGraphics) ClearDepth(d float64)             { g.rec.add("ClearDepth(%v)", d) }
func (g *fakeGraphics) LineWidth(w float32)              { g.rec.add("LineWidth(%v)", w) }
func (g *fakeGraphics) Enable(c Capability)              { g.rec.add("Enable(%d)", c) }
func (g *fakeGraphics) LightModelAmbient(c colors.Color) { g.rec.add("LightModelAmbient(%v)", c) }
func (g *fakeGraphics) FogMode(m scene.FogMode)          { g.rec.add("FogMode(%d)", m) }
func (g *fakeGraphics) Fog(p FogParam, v float32)        { g.rec.add("Fog(%d,%v)", p, v) }
func (g *fakeGraphics) FogColor(c colors.Color)          { g.rec.add("FogColor(%v)", c) }

func (g *fakeGraphics) ColorMaterial(face scene.Face, mode scene.ColorMaterialMode) {
	g.rec.add("ColorMaterial(%d,%d)", face, mode)
}

func (g *fakeGraphics) Material(face scene.Face, p MaterialParam, c colors.Color) {
	g.rec.add("Material(%d,%d,%v)", face, p, c)
}

func (g *fakeGraphics) Shininess(face scene.Face, v float32) {
	g.rec.add("Shininess(%d,%v)", face, v)
}

func (g *fakeGraphics) SetViewport(x, y, w, h int32) {
	g.rec.add("SetViewport(%d,%d,%d,%d)", x, y, w, h)
	g.mu.Lock()
	g.viewport = [4]int32{x, y, w, h}
	g.mu.Unlock()
}

func (g *fakeGraphics) Viewport() [4]int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport
}

func (g *fakeGraphics) ModelView() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mv
}

func (g *fakeGraphics) Projection() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.proj
}

func (g *fakeGraphics) setProjection(m mgl32.Mat4) {
	g.mu.Lock()
	g.proj = m
	g.mu.Unlock()
}

func (g *fakeGraphics) ReadDepth(x, y int32) float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reads = append(g.reads, [2]int32{x, y})
	return g.depth
}

func (g *fakeGraphics) lastRead() [2]int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reads[len(g.reads)-1]
}

// ---- hosts ----

type fakeHost struct {
	displayable atomic.Bool
	w, h        int
}

func displayableHost(w, h int) *fakeHost {
	host := &fakeHost{w: w, h: h}
	host.displayable.Store(true)
	return host
}

func (h *fakeHost) Displayable() bool { return h.displayable.Load() }
func (h *fakeHost) Size() (int, int)  { return h.w, h.h }

type nativeHost struct {
	fakeHost
	rec *recorder
}

func (h *nativeHost) AddMouseListener(core.MouseListener)    { h.rec.add("host.AddMouse") }
func (h *nativeHost) RemoveMouseListener(core.MouseListener) { h.rec.add("host.RemoveMouse") }

func (h *nativeHost) AddMouseMotionListener(core.MouseMotionListener) {
	h.rec.add("host.AddMotion")
}

func (h *nativeHost) RemoveMouseMotionListener(core.MouseMotionListener) {
	h.rec.add("host.RemoveMotion")
}

func (h *nativeHost) AddMouseWheelListener(core.MouseWheelListener) {
	h.rec.add("host.AddWheel")
}

func (h *nativeHost) RemoveMouseWheelListener(core.MouseWheelListener) {
	h.rec.add("host.RemoveWheel")
}

func (h *nativeHost) AddKeyListener(core.KeyListener)    { h.rec.add("host.AddKey") }
func (h *nativeHost) RemoveKeyListener(core.KeyListener) { h.rec.add("host.RemoveKey") }

// ---- helpers ----

func testConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.HostPollMillis = 1
	cfg.NativeMouseEvents = false
	return cfg
}

func newTestCanvas(host Host, cfg core.Config, ws *fakeWindowing, g *fakeGraphics, draw DrawFunc) *Canvas {
	return New(host, cfg,
		func() core.Windowing { return ws },
		func() (Graphics, error) { return g, nil },
		draw)
}

// closeAfter returns a draw func that requests a close once n frames ran.
func closeAfter(c **Canvas, n int) DrawFunc {
	frames := 0
	return func(int, int, int64, *scene.Scene) {
		frames++
		if frames >= n {
			(*c).SetCloseRequested(true)
		}
	}
}

func waitDone(t *testing.T, c *Canvas) error {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("render loop did not exit")
	}
	return c.Wait()
}
