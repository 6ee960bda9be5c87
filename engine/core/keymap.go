package core

// RawKey is a windowing-layer key code. Values follow GLFW's numbering.
type RawKey int

const (
	RawKeyUnknown RawKey = -1
	RawKeySpace   RawKey = 32
	RawKey0       RawKey = 48
	RawKey9       RawKey = 57
	RawKeyA       RawKey = 65
	RawKeyZ       RawKey = 90
	RawKeyEscape  RawKey = 256
	RawKeyEnter   RawKey = 257

	RawKeyLeftShift    RawKey = 340
	RawKeyLeftControl  RawKey = 341
	RawKeyLeftAlt      RawKey = 342
	RawKeyRightShift   RawKey = 344
	RawKeyRightControl RawKey = 345
	RawKeyRightAlt     RawKey = 346
)

// Key is a host key code.
type Key int

const (
	KeyUndefined Key = 0

	Key0 Key = 0x30
	Key1 Key = 0x31
	Key2 Key = 0x32
	Key3 Key = 0x33
	Key4 Key = 0x34
	Key5 Key = 0x35
	Key6 Key = 0x36
	Key7 Key = 0x37
	Key8 Key = 0x38
	Key9 Key = 0x39

	KeyA Key = 0x41
	KeyB Key = 0x42
	KeyC Key = 0x43
	KeyD Key = 0x44
	KeyE Key = 0x45
	KeyF Key = 0x46
	KeyG Key = 0x47
	KeyH Key = 0x48
	KeyI Key = 0x49
	KeyJ Key = 0x4A
	KeyK Key = 0x4B
	KeyL Key = 0x4C
	KeyM Key = 0x4D
	KeyN Key = 0x4E
	KeyO Key = 0x4F
	KeyP Key = 0x50
	KeyQ Key = 0x51
	KeyR Key = 0x52
	KeyS Key = 0x53
	KeyT Key = 0x54
	KeyU Key = 0x55
	KeyV Key = 0x56
	KeyW Key = 0x57
	KeyX Key = 0x58
	KeyY Key = 0x59
	KeyZ Key = 0x5A
)

// keyMap covers the alphanumeric keys. It is filled once by init and only
// read afterwards.
var keyMap = map[RawKey]Key{}

func init() {
	digits := []Key{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}
	for i, k := range digits {
		keyMap[RawKey0+RawKey(i)] = k
	}
	letters := []Key{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
	}
	for i, k := range letters {
		keyMap[RawKeyA+RawKey(i)] = k
	}
}

// TranslateKey maps a windowing key code to the host code. Codes without an
// entry pass through unchanged.
func TranslateKey(k RawKey) Key {
	if hk, ok := keyMap[k]; ok {
		return hk
	}
	return Key(k)
}
