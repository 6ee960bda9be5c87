package core

import (
	"math"
	"time"
)

// MaxButtons is the number of windowing mouse buttons tracked.
const MaxButtons = 8

// Windowing button indices.
const (
	rawButtonLeft   = 0
	rawButtonRight  = 1
	rawButtonMiddle = 2
)

var epoch = time.Now()

// MonotonicNanos returns nanoseconds on the process's monotonic clock.
func MonotonicNanos() int64 { return int64(time.Since(epoch)) }

// Input translates raw windowing callbacks into host events. Its state is
// owned by the thread that polls the window.
type Input struct {
	buttons        [MaxButtons]bool
	mods           Mod
	mouseX, mouseY int

	emit func(Event)
	now  func() int64
}

var _ Callbacks = (*Input)(nil)

func NewInput(emit func(Event)) *Input {
	return &Input{emit: emit, now: MonotonicNanos}
}

// SetClock replaces the event timestamp source.
func (in *Input) SetClock(now func() int64) { in.now = now }

// Reset clears held buttons and modifiers.
func (in *Input) Reset() {
	for i := range in.buttons {
		in.buttons[i] = false
	}
	in.mods = ModNone
}

func (in *Input) Mouse() (int, int)       { return in.mouseX, in.mouseY }
func (in *Input) Modifiers() Mod          { return in.mods }
func (in *Input) IsButtonDown(b int) bool { return b >= 0 && b < MaxButtons && in.buttons[b] }

func (in *Input) OnMouseButton(button int, action Action) {
	if button < 0 || button >= MaxButtons {
		return
	}
	pressed := action == Press
	if pressed == in.buttons[button] {
		return
	}
	id := MouseReleased
	if pressed {
		id = MousePressed
	}
	in.send(MouseEvent{
		ID:         id,
		When:       in.now(),
		X:          in.mouseX,
		Y:          in.mouseY,
		ClickCount: 1,
		Button:     hostButton(button),
	})
	in.buttons[button] = pressed
}

func (in *Input) OnCursorPos(xpos, ypos float64) {
	in.mouseX = int(math.Floor(xpos))
	in.mouseY = int(math.Floor(ypos))

	held := in.heldMask()
	id := MouseMoved
	if held != NoButton {
		id = MouseDragged
	}
	in.send(MouseEvent{
		ID:         id,
		When:       in.now(),
		X:          in.mouseX,
		Y:          in.mouseY,
		ClickCount: 1,
		Buttons:    held,
	})
}

func (in *Input) OnScroll(xoff, yoff float64) {
	in.send(MouseWheelEvent{
		MouseEvent: MouseEvent{
			ID:         MouseWheel,
			When:       in.now(),
			X:          in.mouseX,
			Y:          in.mouseY,
			ClickCount: 1,
		},
		ScrollType:    WheelUnitScroll,
		ScrollAmount:  int(math.Floor(yoff * 120)),
		WheelRotation: int(math.Floor(yoff)),
	})
}

func (in *Input) OnKey(key RawKey, action Action) {
	if action == Repeat {
		return
	}
	pressed := action == Press

	switch key {
	case RawKeyLeftShift, RawKeyRightShift:
		in.setMod(ModShift, pressed)
	case RawKeyLeftControl, RawKeyRightControl:
		in.setMod(ModCtrl, pressed)
	case RawKeyLeftAlt, RawKeyRightAlt:
		in.setMod(ModAlt, pressed)
	}

	id := KeyReleased
	if pressed {
		id = KeyPressed
	}
	in.send(KeyEvent{
		ID:        id,
		When:      in.now(),
		Modifiers: in.mods,
		Code:      TranslateKey(key),
		Char:      CharUndefined,
	})
}

func (in *Input) setMod(m Mod, on bool) {
	if on {
		in.mods |= m
	} else {
		in.mods &^= m
	}
}

func (in *Input) heldMask() Button {
	var m Button
	if in.buttons[rawButtonLeft] {
		m |= Button1
	}
	if in.buttons[rawButtonRight] {
		m |= Button2
	}
	if in.buttons[rawButtonMiddle] {
		m |= Button3
	}
	return m
}

func (in *Input) send(ev Event) {
	if in.emit != nil {
		in.emit(ev)
	}
}

func hostButton(button int) Button {
	switch button {
	case rawButtonLeft:
		return Button1
	case rawButtonRight:
		return Button2
	default:
		return Button3
	}
}
