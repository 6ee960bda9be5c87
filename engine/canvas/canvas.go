// Package canvas embeds a fixed-function 3D view in a host widget. A Canvas
// owns a dedicated render goroutine that brings up the window and context,
// drives the frame loop, translates window input into host events for the
// registered listeners and keeps the world-space point under the cursor
// up to date.
package canvas

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/core"
	"github.com/hubastard/glcanvas/engine/scene"
)

var (
	ErrSceneAlreadyBound = errors.New("canvas: cannot set a new scene")
	ErrWindowingInit     = errors.New("canvas: unable to initialize windowing")
	ErrWindowCreate      = errors.New("canvas: failed to create the window")
	ErrRenderPanic       = errors.New("canvas: render loop panicked")
)

// Host is the widget the canvas is embedded in.
type Host interface {
	// Displayable reports whether the widget has real dimensions yet.
	Displayable() bool
	Size() (width, height int)
}

// NativeListenerHost is a Host whose widget can deliver input events to
// listeners itself.
type NativeListenerHost interface {
	Host
	AddMouseListener(l core.MouseListener)
	RemoveMouseListener(l core.MouseListener)
	AddMouseMotionListener(l core.MouseMotionListener)
	RemoveMouseMotionListener(l core.MouseMotionListener)
	AddMouseWheelListener(l core.MouseWheelListener)
	RemoveMouseWheelListener(l core.MouseWheelListener)
	AddKeyListener(l core.KeyListener)
	RemoveKeyListener(l core.KeyListener)
}

type size struct{ w, h int }

type Canvas struct {
	host         Host
	cfg          core.Config
	newWindowing func() core.Windowing
	newGraphics  func() (Graphics, error)
	draw         DrawFunc

	mu      sync.Mutex // guards scene, started and the registries
	scene   *scene.Scene
	started bool
	mouse   core.Registry[core.MouseListener]
	motion  core.Registry[core.MouseMotionListener]
	wheel   core.Registry[core.MouseWheelListener]
	keys    core.Registry[core.KeyListener]

	closeRequested atomic.Bool
	pendingResize  atomic.Pointer[size]
	eyeRay         atomic.Pointer[mgl32.Vec3]
	width, height  atomic.Int32

	// Render goroutine only.
	input         *core.Input
	gfx           Graphics
	listenerPanic error

	done chan struct{}
	err  error // set before done is closed
}

// New returns an unbound canvas. The render goroutine starts on the first
// SetScene with a non-nil scene.
func New(host Host, cfg core.Config, newWindowing func() core.Windowing, newGraphics func() (Graphics, error), draw DrawFunc) *Canvas {
	c := &Canvas{
		host:         host,
		cfg:          cfg,
		newWindowing: newWindowing,
		newGraphics:  newGraphics,
		draw:         draw,
		done:         make(chan struct{}),
	}
	c.input = core.NewInput(c.deliver)
	return c
}

// SetScene binds s. Binding is monotonic: once a scene is bound, only the
// same scene may be set again.
func (c *Canvas) SetScene(s *scene.Scene) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scene != nil && c.scene != s {
		return ErrSceneAlreadyBound
	}
	c.scene = s
	if s != nil && !c.started {
		c.started = true
		go c.run()
	}
	return nil
}

func (c *Canvas) Scene() *scene.Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene
}

// EyeRay returns the world-space point under the cursor from the most
// recent successful pick.
func (c *Canvas) EyeRay() (mgl32.Vec3, bool) {
	p := c.eyeRay.Load()
	if p == nil {
		return mgl32.Vec3{}, false
	}
	return *p, true
}

// SetEyeRay overrides the picked point; nil clears it.
func (c *Canvas) SetEyeRay(p *mgl32.Vec3) {
	if p == nil {
		c.eyeRay.Store(nil)
		return
	}
	v := *p
	c.eyeRay.Store(&v)
}

func (c *Canvas) IsCloseRequested() bool   { return c.closeRequested.Load() }
func (c *Canvas) SetCloseRequested(v bool) { c.closeRequested.Store(v) }
func (c *Canvas) Width() int               { return int(c.width.Load()) }
func (c *Canvas) Height() int              { return int(c.height.Load()) }
func (c *Canvas) Done() <-chan struct{}    { return c.done }
func (c *Canvas) Config() core.Config      { return c.cfg }

// Resized is the host's resize hook. Only the latest size posted between
// two frames is applied.
func (c *Canvas) Resized(width, height int) {
	c.pendingResize.Store(&size{w: width, h: height})
}

// SyncViewportSize re-reads the viewport rectangle and caches its size.
// It must run on the render goroutine, e.g. from a between-frame callback,
// and only when the viewport is known to have changed.
func (c *Canvas) SyncViewportSize() {
	if c.gfx == nil {
		return
	}
	vp := c.gfx.Viewport()
	c.width.Store(vp[2])
	c.height.Store(vp[3])
}

// Wait blocks until the render goroutine exits and returns its error. It
// returns nil at once if no scene was ever bound.
func (c *Canvas) Wait() error {
	c.mu.Lock()
	started := c.started
	c.mu.Unlock()
	if !started {
		return nil
	}
	<-c.done
	return c.err
}

// ---- listener registration ----

func (c *Canvas) nativeHost() (NativeListenerHost, bool) {
	nh, ok := c.host.(NativeListenerHost)
	return nh, ok
}

func (c *Canvas) nativeMouseHost() (NativeListenerHost, bool) {
	if !c.cfg.NativeMouseEvents {
		return nil, false
	}
	return c.nativeHost()
}

func (c *Canvas) AddMouseListener(l core.MouseListener) {
	if nh, ok := c.nativeMouseHost(); ok {
		nh.AddMouseListener(l)
		return
	}
	c.mu.Lock()
	c.mouse.Add(l)
	c.mu.Unlock()
}

func (c *Canvas) RemoveMouseListener(l core.MouseListener) {
	c.mu.Lock()
	c.mouse.Remove(l)
	c.mu.Unlock()
	if nh, ok := c.nativeMouseHost(); ok {
		nh.RemoveMouseListener(l)
	}
}

func (c *Canvas) AddMouseMotionListener(l core.MouseMotionListener) {
	if nh, ok := c.nativeMouseHost(); ok {
		nh.AddMouseMotionListener(l)
		return
	}
	c.mu.Lock()
	c.motion.Add(l)
	c.mu.Unlock()
}

func (c *Canvas) RemoveMouseMotionListener(l core.MouseMotionListener) {
	c.mu.Lock()
	c.motion.Remove(l)
	c.mu.Unlock()
	if nh, ok := c.nativeMouseHost(); ok {
		nh.RemoveMouseMotionListener(l)
	}
}

func (c *Canvas) AddMouseWheelListener(l core.MouseWheelListener) {
	if nh, ok := c.nativeMouseHost(); ok {
		nh.AddMouseWheelListener(l)
		return
	}
	c.mu.Lock()
	c.wheel.Add(l)
	c.mu.Unlock()
}

func (c *Canvas) RemoveMouseWheelListener(l core.MouseWheelListener) {
	c.mu.Lock()
	c.wheel.Remove(l)
	c.mu.Unlock()
	if nh, ok := c.nativeMouseHost(); ok {
		nh.RemoveMouseWheelListener(l)
	}
}

// AddKeyListener registers l internally and, when the host widget can
// deliver events, with the host as well.
func (c *Canvas) AddKeyListener(l core.KeyListener) {
	c.mu.Lock()
	c.keys.Add(l)
	c.mu.Unlock()
	if nh, ok := c.nativeHost(); ok {
		nh.AddKeyListener(l)
	}
}

func (c *Canvas) RemoveKeyListener(l core.KeyListener) {
	c.mu.Lock()
	c.keys.Remove(l)
	c.mu.Unlock()
	if nh, ok := c.nativeHost(); ok {
		nh.RemoveKeyListener(l)
	}
}

// ---- dispatch ----

// deliver dispatches ev from inside a windowing callback. A listener panic
// must not unwind through the windowing library's frames; it is captured
// and ends the render loop after the current frame.
func (c *Canvas) deliver(ev core.Event) {
	defer func() {
		if r := recover(); r != nil && c.listenerPanic == nil {
			c.listenerPanic = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()
	c.dispatch(ev)
}

// dispatch delivers ev to the matching registry on the calling goroutine.
// Each registry is snapshotted so listeners may add or remove listeners
// while being called.
func (c *Canvas) dispatch(ev core.Event) {
	switch e := ev.(type) {
	case core.MouseWheelEvent:
		c.fireMouseWheelEvent(e)
	case core.MouseEvent:
		switch e.ID {
		case core.MousePressed, core.MouseReleased:
			c.fireMouseEvent(e)
		case core.MouseMoved, core.MouseDragged:
			c.fireMouseMoveEvent(e)
		}
	case core.KeyEvent:
		c.fireKeyEvent(e)
	}
}

func (c *Canvas) fireMouseEvent(e core.MouseEvent) {
	c.mu.Lock()
	ls := c.mouse.Snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		switch e.ID {
		case core.MousePressed:
			l.MousePressed(e)
		case core.MouseReleased:
			l.MouseReleased(e)
		}
	}
}

func (c *Canvas) fireMouseMoveEvent(e core.MouseEvent) {
	c.mu.Lock()
	ls := c.motion.Snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		switch e.ID {
		case core.MouseMoved:
			l.MouseMoved(e)
		case core.MouseDragged:
			l.MouseDragged(e)
		}
	}
}

func (c *Canvas) fireMouseWheelEvent(e core.MouseWheelEvent) {
	c.mu.Lock()
	ls := c.wheel.Snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		if e.ID == core.MouseWheel {
			l.MouseWheelMoved(e)
		}
	}
}

func (c *Canvas) fireKeyEvent(e core.KeyEvent) {
	c.mu.Lock()
	ls := c.keys.Snapshot()
	c.mu.Unlock()
	for _, l := range ls {
		switch e.ID {
		case core.KeyPressed:
			l.KeyPressed(e)
		case core.KeyReleased:
			l.KeyReleased(e)
		case core.KeyTyped:
			l.KeyTyped(e)
		}
	}
}
