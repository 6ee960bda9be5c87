package main

import (
	"log"
	"runtime"
	"time"

	"github.com/hubastard/glcanvas/engine/assets"
	"github.com/hubastard/glcanvas/engine/canvas"
	"github.com/hubastard/glcanvas/engine/core"
	glbackend "github.com/hubastard/glcanvas/engine/gfx/gl"
	"github.com/hubastard/glcanvas/engine/profiler"
)

const statsEvery = 300 // frames

// debugOverlay logs frame timing, reports the picked point on click and
// handles the sandbox hotkeys: Q quits, Ctrl+P dumps the profiler and
// Ctrl+S saves a screenshot.
type debugOverlay struct {
	core.KeyAdapter
	core.MouseAdapter

	c          *canvas.Canvas
	shotPath   string
	shotWanted bool
	frame      int
	lastFrame  time.Time
}

func newDebugOverlay(c *canvas.Canvas, shotPath string) *debugOverlay {
	d := &debugOverlay{c: c, shotPath: shotPath}
	d.KeyAdapter.Pressed = d.keyPressed
	d.MouseAdapter.Pressed = d.mousePressed
	return d
}

// tick runs between frames on the render thread.
func (d *debugOverlay) tick() {
	now := time.Now()
	d.frame++
	if d.frame%statsEvery == 0 && !d.lastFrame.IsZero() {
		ms := float64(now.Sub(d.lastFrame).Microseconds()) / 1000
		log.Printf("frame %d: %2.3f ms (%.2f FPS) %dx%d goroutines=%d",
			d.frame, ms, 1000/ms, d.c.Width(), d.c.Height(), runtime.NumGoroutine())
	}
	d.lastFrame = now

	if d.shotWanted {
		d.shotWanted = false
		d.screenshot()
	}
}

func (d *debugOverlay) screenshot() {
	img, err := glbackend.Capture(d.c.Width(), d.c.Height())
	if err == nil {
		err = assets.SaveImage(d.shotPath, img)
	}
	if err != nil {
		log.Println("screenshot:", err)
		return
	}
	log.Println("screenshot:", d.shotPath)
}

func (d *debugOverlay) keyPressed(e core.KeyEvent) {
	switch {
	case e.Code == core.KeyQ:
		d.c.SetCloseRequested(true)
	case e.Code == core.KeyP && e.Modifiers&core.ModCtrl != 0:
		if path, err := profiler.Dump(); err == nil {
			log.Println("speedscope dump:", path)
		} else {
			log.Println("profiler dump error:", err)
		}
	case e.Code == core.KeyS && e.Modifiers&core.ModCtrl != 0:
		d.shotWanted = true
	}
}

func (d *debugOverlay) mousePressed(e core.MouseEvent) {
	if p, ok := d.c.EyeRay(); ok {
		log.Printf("pick at (%d,%d): %.3f %.3f %.3f", e.X, e.Y, p[0], p[1], p[2])
	}
}
