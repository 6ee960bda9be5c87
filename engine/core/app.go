package core

// Action is a windowing-layer button or key transition. Values follow GLFW.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// Hint is a window creation hint.
type Hint int

const (
	HintVisible Hint = iota
	HintResizable
)

// Callbacks receives raw input from a window. All methods run on the
// thread that owns the window, inside Windowing.PollEvents.
type Callbacks interface {
	OnMouseButton(button int, action Action)
	OnCursorPos(xpos, ypos float64)
	OnScroll(xoff, yoff float64)
	OnKey(key RawKey, action Action)
}

// Windowing abstracts the process-wide windowing library.
type Windowing interface {
	SetErrorCallback(fn func(error))
	Init() error
	Terminate()
	DefaultWindowHints()
	WindowHint(h Hint, on bool)
	CreateWindow(width, height int, title string) (Window, error)
	SwapInterval(n int)
	PollEvents()
}

// Window abstraction. A Window carries the graphics context.
type Window interface {
	SetCallbacks(cb Callbacks)
	MakeContextCurrent()
	SetSize(width, height int)
	Show()
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}
