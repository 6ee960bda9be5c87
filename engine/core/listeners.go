package core

// Listener interfaces. Implementations must be comparable (pointer types)
// so they can be removed again.

type MouseListener interface {
	MousePressed(e MouseEvent)
	MouseReleased(e MouseEvent)
}

type MouseMotionListener interface {
	MouseMoved(e MouseEvent)
	MouseDragged(e MouseEvent)
}

type MouseWheelListener interface {
	MouseWheelMoved(e MouseWheelEvent)
}

type KeyListener interface {
	KeyPressed(e KeyEvent)
	KeyReleased(e KeyEvent)
	KeyTyped(e KeyEvent)
}

// Adapters let hosts register closures. Nil funcs are skipped.

type MouseAdapter struct {
	Pressed  func(MouseEvent)
	Released func(MouseEvent)
}

func (a *MouseAdapter) MousePressed(e MouseEvent) {
	if a.Pressed != nil {
		a.Pressed(e)
	}
}

func (a *MouseAdapter) MouseReleased(e MouseEvent) {
	if a.Released != nil {
		a.Released(e)
	}
}

type MouseMotionAdapter struct {
	Moved   func(MouseEvent)
	Dragged func(MouseEvent)
}

func (a *MouseMotionAdapter) MouseMoved(e MouseEvent) {
	if a.Moved != nil {
		a.Moved(e)
	}
}

func (a *MouseMotionAdapter) MouseDragged(e MouseEvent) {
	if a.Dragged != nil {
		a.Dragged(e)
	}
}

type MouseWheelAdapter struct {
	WheelMoved func(MouseWheelEvent)
}

func (a *MouseWheelAdapter) MouseWheelMoved(e MouseWheelEvent) {
	if a.WheelMoved != nil {
		a.WheelMoved(e)
	}
}

type KeyAdapter struct {
	Pressed  func(KeyEvent)
	Released func(KeyEvent)
	Typed    func(KeyEvent)
}

func (a *KeyAdapter) KeyPressed(e KeyEvent) {
	if a.Pressed != nil {
		a.Pressed(e)
	}
}

func (a *KeyAdapter) KeyReleased(e KeyEvent) {
	if a.Released != nil {
		a.Released(e)
	}
}

func (a *KeyAdapter) KeyTyped(e KeyEvent) {
	if a.Typed != nil {
		a.Typed(e)
	}
}
