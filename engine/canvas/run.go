package canvas

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/hubastard/glcanvas/engine/core"
	"github.com/hubastard/glcanvas/engine/glu"
	"github.com/hubastard/glcanvas/engine/profiler"
	"github.com/hubastard/glcanvas/engine/scene"
)

// run is the render goroutine. It owns the window, the context and the
// input state for its whole life.
func (c *Canvas) run() {
	// Graphics contexts are bound to one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := c.renderLoop()
	if err != nil {
		log.Printf("canvas: %v", err)
	}
	c.err = err
	close(c.done)
}

func (c *Canvas) renderLoop() (err error) {
	// Registered first so every teardown step below has run by the time a
	// panic from a draw or between-frame callback is turned into an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()

	if !c.waitForHost() {
		return nil
	}
	s := c.Scene()

	ws := c.newWindowing()
	errLog := log.New(os.Stderr, "glfw: ", log.LstdFlags)
	ws.SetErrorCallback(func(err error) { errLog.Println(err) })
	defer ws.SetErrorCallback(nil)

	if err := ws.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowingInit, err)
	}
	defer ws.Terminate()

	ws.DefaultWindowHints()
	ws.WindowHint(core.HintVisible, false)
	ws.WindowHint(core.HintResizable, true)

	w, h := c.host.Size()
	if w <= 0 || h <= 0 {
		w, h = c.cfg.DefaultWidth, c.cfg.DefaultHeight
	}
	win, err := ws.CreateWindow(w, h, c.cfg.Title)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	defer win.Destroy()

	win.SetCallbacks(c.input)
	win.MakeContextCurrent()
	if c.cfg.VSync {
		ws.SwapInterval(1)
	} else {
		ws.SwapInterval(0)
	}

	gfx, err := c.newGraphics()
	if err != nil {
		return fmt.Errorf("canvas: bind graphics: %w", err)
	}
	c.gfx = gfx
	defer func() { c.gfx = nil }()

	c.input.Reset()
	applyDefaults(gfx, c.cfg)
	applyScene(gfx, s)
	c.SyncViewportSize()
	if c.cfg.Visible {
		win.Show()
	}

	for !win.ShouldClose() && !c.IsCloseRequested() && c.listenerPanic == nil {
		c.frame(ws, win, gfx, s)
	}
	log.Println("canvas: render loop exit")
	return c.listenerPanic
}

// waitForHost polls until the host is displayable. It gives up, reporting
// false, when a close is requested first.
func (c *Canvas) waitForHost() bool {
	for !c.host.Displayable() {
		if c.IsCloseRequested() {
			return false
		}
		time.Sleep(c.cfg.HostPollInterval())
	}
	return true
}

func (c *Canvas) frame(ws core.Windowing, win core.Window, gfx Graphics, s *scene.Scene) {
	defer profiler.Start("canvas.frame")()

	if sz := c.pendingResize.Swap(nil); sz != nil {
		win.SetSize(sz.w, sz.h)
		gfx.SetViewport(0, 0, int32(sz.w), int32(sz.h))
		c.SyncViewportSize()
	}

	for _, fn := range s.BetweenRenderers() {
		fn()
	}

	if c.draw != nil {
		end := profiler.Start("canvas.draw")
		c.draw(c.Width(), c.Height(), time.Now().UnixMilli(), s)
		end()
	}

	c.pick(gfx)

	win.SwapBuffers()

	end := profiler.Start("canvas.poll")
	ws.PollEvents()
	end()
}

// pick unprojects the cursor against the depth buffer. A failed unproject
// keeps the previous point. Only the unproject input is flipped; the depth
// sample uses the raw cursor row.
func (c *Canvas) pick(gfx Graphics) {
	vp := gfx.Viewport()
	mx, my := c.input.Mouse()
	winY := vp[3] - int32(my)
	depth := gfx.ReadDepth(int32(mx), int32(my))
	p, err := glu.Unproject(float32(mx), float32(winY), depth, gfx.ModelView(), gfx.Projection(), vp)
	if err != nil {
		return
	}
	c.eyeRay.Store(&p)
}
