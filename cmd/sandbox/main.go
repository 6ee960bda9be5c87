package main

import (
	"log"

	"github.com/hubastard/glcanvas/engine/canvas"
	"github.com/hubastard/glcanvas/engine/core"
	glbackend "github.com/hubastard/glcanvas/engine/gfx/gl"
	"github.com/hubastard/glcanvas/engine/platform"
	"github.com/hubastard/glcanvas/engine/profiler"
	"github.com/hubastard/glcanvas/engine/scene"
	"github.com/spf13/pflag"
)

// windowHost stands in for an embedding widget: the canvas window is the
// whole UI, so it is displayable at once.
type windowHost struct{ w, h int }

func (h windowHost) Displayable() bool { return true }
func (h windowHost) Size() (int, int)  { return h.w, h.h }

func main() {
	configPath := pflag.StringP("config", "c", "glcanvas.toml", "TOML config file; missing means defaults")
	profile := pflag.Bool("profile", false, "record render scopes (build with -tags profile)")
	shotPath := pflag.String("screenshot", "glcanvas.png", "Ctrl+S target; .png, .bmp or .tiff")
	pflag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Visible = true

	if *profile {
		profiler.Init(1 << 16)
	}

	var c *canvas.Canvas
	newWindowing := func() core.Windowing {
		return &platform.GLFW{OnWindowSize: func(w, h int) { c.Resized(w, h) }}
	}
	c = canvas.New(windowHost{cfg.DefaultWidth, cfg.DefaultHeight}, cfg, newWindowing, glbackend.Graphics, glbackend.DrawScene)

	s := demoScene()
	ctrl := scene.NewOrbitController(s.Camera)
	c.AddMouseListener(ctrl)
	c.AddMouseMotionListener(ctrl)
	c.AddMouseWheelListener(ctrl)
	c.AddKeyListener(ctrl)

	dbg := newDebugOverlay(c, *shotPath)
	s.AddBetweenRenderer(dbg.tick)
	c.AddKeyListener(dbg)
	c.AddMouseListener(dbg)

	if err := c.SetScene(s); err != nil {
		log.Fatal(err)
	}
	if err := c.Wait(); err != nil {
		log.Fatal(err)
	}

	if *profile {
		if path, err := profiler.Dump(); err == nil {
			log.Println("speedscope dump:", path)
		} else {
			log.Println("profiler dump error:", err)
		}
	}
}
