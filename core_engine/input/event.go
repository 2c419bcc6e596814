package input

// KeyStatus tells whether a key went down or came up.
type KeyStatus uint8

const (
	Pressed KeyStatus = iota
	Released
)

func (s KeyStatus) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// InputEvent is a decoded device event. KeyboardEvent is the only kind
// today; consumers should switch on the concrete type and keep a default arm
// so that new device kinds (mouse) can be added later.
type InputEvent interface {
	isInputEvent()
}

// KeyboardEvent reports a key transition on the first port.
type KeyboardEvent struct {
	Key    Key
	Status KeyStatus
}

func (KeyboardEvent) isInputEvent() {}

// Press and Release build keyboard events; handy when feeding a Translator
// by hand.
func Press(k Key) KeyboardEvent   { return KeyboardEvent{Key: k, Status: Pressed} }
func Release(k Key) KeyboardEvent { return KeyboardEvent{Key: k, Status: Released} }
