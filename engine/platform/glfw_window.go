// Package platform binds core.Windowing to GLFW.
package platform

import (
	"errors"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/glcanvas/engine/core"
)

// GLFW library state is process wide; canvases share one initialization.
var (
	initMu    sync.Mutex
	initCount int
)

// GLFW implements core.Windowing. Methods must run on the thread that owns
// the windows it creates.
type GLFW struct {
	// OnWindowSize, when set, is installed on every window created and
	// receives its new size in screen coordinates.
	OnWindowSize func(width, height int)

	onError func(error)
}

var _ core.Windowing = (*GLFW)(nil)

func NewGLFW() *GLFW { return &GLFW{} }

// Windowing returns a fresh GLFW as a core.Windowing, suitable as a
// canvas factory.
func Windowing() core.Windowing { return NewGLFW() }

// SetErrorCallback routes GLFW errors to fn. Errors GLFW reports by
// panicking during event polling or presentation are recovered and routed
// here as well. nil detaches the handler.
func (g *GLFW) SetErrorCallback(fn func(error)) { g.onError = fn }

func (g *GLFW) report(err error) {
	if g.onError != nil && err != nil {
		g.onError(err)
	}
}

// guard turns a GLFW error panic into a report. Other panics propagate.
func (g *GLFW) guard() {
	r := recover()
	if r == nil {
		return
	}
	var gerr *glfw.Error
	if err, ok := r.(error); ok && errors.As(err, &gerr) {
		g.report(gerr)
		return
	}
	panic(r)
}

func (g *GLFW) Init() error {
	initMu.Lock()
	defer initMu.Unlock()
	if initCount == 0 {
		if err := glfw.Init(); err != nil {
			g.report(err)
			return err
		}
	}
	initCount++
	return nil
}

// Terminate releases one Init; the last release shuts GLFW down.
func (g *GLFW) Terminate() {
	initMu.Lock()
	defer initMu.Unlock()
	if initCount == 0 {
		return
	}
	initCount--
	if initCount == 0 {
		glfw.Terminate()
	}
}

func (g *GLFW) DefaultWindowHints() {
	glfw.DefaultWindowHints()
	// Fixed-function pipeline: ask for a compatibility context.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
}

func (g *GLFW) WindowHint(h core.Hint, on bool) {
	v := glfw.False
	if on {
		v = glfw.True
	}
	switch h {
	case core.HintVisible:
		glfw.WindowHint(glfw.Visible, v)
	case core.HintResizable:
		glfw.WindowHint(glfw.Resizable, v)
	}
}

func (g *GLFW) CreateWindow(width, height int, title string) (core.Window, error) {
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		g.report(err)
		return nil, err
	}
	if w == nil {
		return nil, errors.New("glfw: no window returned")
	}
	gw := &GLFWWindow{w: w, owner: g}
	if g.OnWindowSize != nil {
		gw.SetSizeCallback(g.OnWindowSize)
	}
	return gw, nil
}

func (g *GLFW) SwapInterval(n int) { glfw.SwapInterval(n) }

func (g *GLFW) PollEvents() {
	defer g.guard()
	glfw.PollEvents()
}

// GLFWWindow implements core.Window over a *glfw.Window.
type GLFWWindow struct {
	w     *glfw.Window
	owner *GLFW
}

var _ core.Window = (*GLFWWindow)(nil)

// SetCallbacks translates GLFW callbacks into cb. Button, action and key
// codes are passed through in GLFW numbering.
func (gw *GLFWWindow) SetCallbacks(cb core.Callbacks) {
	gw.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		cb.OnMouseButton(int(button), core.Action(action))
	})
	gw.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cb.OnCursorPos(x, y)
	})
	gw.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		cb.OnScroll(xoff, yoff)
	})
	gw.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		cb.OnKey(core.RawKey(key), core.Action(action))
	})
}

func (gw *GLFWWindow) MakeContextCurrent()       { gw.w.MakeContextCurrent() }
func (gw *GLFWWindow) SetSize(width, height int) { gw.w.SetSize(width, height) }
func (gw *GLFWWindow) Show()                     { gw.w.Show() }
func (gw *GLFWWindow) ShouldClose() bool         { return gw.w.ShouldClose() }
func (gw *GLFWWindow) Destroy()                  { gw.w.Destroy() }

func (gw *GLFWWindow) SwapBuffers() {
	defer gw.owner.guard()
	gw.w.SwapBuffers()
}

// FramebufferSize reports the drawable size in pixels.
func (gw *GLFWWindow) FramebufferSize() (int, int) { return gw.w.GetFramebufferSize() }

// SetSizeCallback forwards window resizes, e.g. to Canvas.Resized when
// the window is its own host.
func (gw *GLFWWindow) SetSizeCallback(fn func(width, height int)) {
	gw.w.SetSizeCallback(func(_ *glfw.Window, w, h int) { fn(w, h) })
}
