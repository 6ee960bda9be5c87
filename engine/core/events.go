package core

// Event model delivered to host listeners.
type Event interface{ isEvent() }

// EventID identifies the kind of an event within its family.
type EventID int

const (
	KeyTyped    EventID = 400
	KeyPressed  EventID = 401
	KeyReleased EventID = 402

	MousePressed  EventID = 501
	MouseReleased EventID = 502
	MouseMoved    EventID = 503
	MouseDragged  EventID = 506
	MouseWheel    EventID = 507
)

func (id EventID) String() string {
	switch id {
	case KeyTyped:
		return "KEY_TYPED"
	case KeyPressed:
		return "KEY_PRESSED"
	case KeyReleased:
		return "KEY_RELEASED"
	case MousePressed:
		return "MOUSE_PRESSED"
	case MouseReleased:
		return "MOUSE_RELEASED"
	case MouseMoved:
		return "MOUSE_MOVED"
	case MouseDragged:
		return "MOUSE_DRAGGED"
	case MouseWheel:
		return "MOUSE_WHEEL"
	default:
		return "UNKNOWN"
	}
}

// Button is a host mouse button id. Ids are distinct bits so held buttons
// can be combined into a mask.
type Button int

const (
	NoButton Button = 0
	Button1  Button = 1 << 0 // primary
	Button2  Button = 1 << 1 // secondary
	Button3  Button = 1 << 2 // middle and any other button
)

func (b Button) Has(o Button) bool { return b&o != 0 }

// Mod is the host modifier mask.
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
)

// ScrollType describes how wheel rotation should be interpreted.
type ScrollType int

const (
	WheelUnitScroll ScrollType = iota
	WheelBlockScroll
)

// CharUndefined is carried by key events that have no composed character.
const CharUndefined rune = 0xFFFF

// MouseEvent reports a press, release, move or drag. Button is the button
// that changed for press/release; Buttons is the held mask for motion.
type MouseEvent struct {
	ID           EventID
	When         int64 // monotonic nanoseconds
	Modifiers    Mod
	X, Y         int
	ClickCount   int
	PopupTrigger bool
	Button       Button
	Buttons      Button
}

func (MouseEvent) isEvent() {}

// MouseWheelEvent reports wheel movement. ScrollAmount simulates a wheel
// with 120 units per detent.
type MouseWheelEvent struct {
	MouseEvent
	ScrollType    ScrollType
	ScrollAmount  int
	WheelRotation int
}

func (MouseWheelEvent) isEvent() {}

type KeyEvent struct {
	ID        EventID
	When      int64
	Modifiers Mod
	Code      Key
	Char      rune
}

func (KeyEvent) isEvent() {}
