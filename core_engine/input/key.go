// Package input turns raw scancode bytes from the keyboard port into typed
// key events and, optionally, ASCII bytes for a terminal.
package input

import "fmt"

// Key identifies a physical key. The numeric value is the set-1 make code
// the decoder sees for that key once controller translation is on.
type Key uint16

// US layout key codes. Gaps (84-86, 89-95, 99, 112-124) are not assigned.
const (
	KeyReserved   Key = 0
	KeyEsc        Key = 1
	KeyOne        Key = 2
	KeyTwo        Key = 3
	KeyThree      Key = 4
	KeyFour       Key = 5
	KeyFive       Key = 6
	KeySix        Key = 7
	KeySeven      Key = 8
	KeyEight      Key = 9
	KeyNine       Key = 10
	KeyZero       Key = 11
	KeyMinus      Key = 12
	KeyEqual      Key = 13
	KeyBackspace  Key = 14
	KeyTab        Key = 15
	KeyQ          Key = 16
	KeyW          Key = 17
	KeyE          Key = 18
	KeyR          Key = 19
	KeyT          Key = 20
	KeyY          Key = 21
	KeyU          Key = 22
	KeyI          Key = 23
	KeyO          Key = 24
	KeyP          Key = 25
	KeyLeftBrace  Key = 26 // [
	KeyRightBrace Key = 27 // ]
	KeyEnter      Key = 28
	KeyLeftCtrl   Key = 29
	KeyA          Key = 30
	KeyS          Key = 31
	KeyD          Key = 32
	KeyF          Key = 33
	KeyG          Key = 34
	KeyH          Key = 35
	KeyJ          Key = 36
	KeyK          Key = 37
	KeyL          Key = 38
	KeySemicolon  Key = 39 // ;
	KeyApostrophe Key = 40 // '
	KeyGrave      Key = 41 // `
	KeyLeftShift  Key = 42
	KeyBackslash  Key = 43 // \
	KeyZ          Key = 44
	KeyX          Key = 45
	KeyC          Key = 46
	KeyV          Key = 47
	KeyB          Key = 48
	KeyN          Key = 49
	KeyM          Key = 50
	KeyComma      Key = 51
	KeyDot        Key = 52
	KeySlash      Key = 53
	KeyRightShift Key = 54
	KeyKpAsterisk Key = 55
	KeyLeftAlt    Key = 56
	KeySpace      Key = 57
	KeyCapsLock   Key = 58
	KeyF1         Key = 59
	KeyF2         Key = 60
	KeyF3         Key = 61
	KeyF4         Key = 62
	KeyF5         Key = 63
	KeyF6         Key = 64
	KeyF7         Key = 65
	KeyF8         Key = 66
	KeyF9         Key = 67
	KeyF10        Key = 68
	KeyNumLock    Key = 69
	KeyScrollLock Key = 70
	KeyKp7        Key = 71
	KeyKp8        Key = 72
	KeyKp9        Key = 73
	KeyKpMinus    Key = 74
	KeyKp4        Key = 75
	KeyKp5        Key = 76
	KeyKp6        Key = 77
	KeyKpPlus     Key = 78
	KeyKp1        Key = 79
	KeyKp2        Key = 80
	KeyKp3        Key = 81
	KeyKp0        Key = 82
	KeyKpDot      Key = 83
	KeyF11        Key = 87
	KeyF12        Key = 88
	KeyKpEnter    Key = 96
	KeyRightCtrl  Key = 97
	KeyKpSlash    Key = 98
	KeyRightAlt   Key = 100
	KeyLineFeed   Key = 101
	KeyHome       Key = 102
	KeyUp         Key = 103
	KeyPageUp     Key = 104
	KeyLeft       Key = 105
	KeyRight      Key = 106
	KeyEnd        Key = 107
	KeyDown       Key = 108
	KeyPageDown   Key = 109
	KeyInsert     Key = 110
	KeyDelete     Key = 111
	KeyLeftMeta   Key = 125
)

var keyNames = map[Key]string{
	KeyReserved:   "Reserved",
	KeyEsc:        "Esc",
	KeyOne:        "1",
	KeyTwo:        "2",
	KeyThree:      "3",
	KeyFour:       "4",
	KeyFive:       "5",
	KeySix:        "6",
	KeySeven:      "7",
	KeyEight:      "8",
	KeyNine:       "9",
	KeyZero:       "0",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyQ:          "Q",
	KeyW:          "W",
	KeyE:          "E",
	KeyR:          "R",
	KeyT:          "T",
	KeyY:          "Y",
	KeyU:          "U",
	KeyI:          "I",
	KeyO:          "O",
	KeyP:          "P",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyEnter:      "Enter",
	KeyLeftCtrl:   "LeftCtrl",
	KeyA:          "A",
	KeyS:          "S",
	KeyD:          "D",
	KeyF:          "F",
	KeyG:          "G",
	KeyH:          "H",
	KeyJ:          "J",
	KeyK:          "K",
	KeyL:          "L",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyLeftShift:  "LeftShift",
	KeyBackslash:  "Backslash",
	KeyZ:          "Z",
	KeyX:          "X",
	KeyC:          "C",
	KeyV:          "V",
	KeyB:          "B",
	KeyN:          "N",
	KeyM:          "M",
	KeyComma:      "Comma",
	KeyDot:        "Dot",
	KeySlash:      "Slash",
	KeyRightShift: "RightShift",
	KeyKpAsterisk: "KpAsterisk",
	KeyLeftAlt:    "LeftAlt",
	KeySpace:      "Space",
	KeyCapsLock:   "CapsLock",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKpMinus:    "KpMinus",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKpPlus:     "KpPlus",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp0:        "Kp0",
	KeyKpDot:      "KpDot",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyKpEnter:    "KpEnter",
	KeyRightCtrl:  "RightCtrl",
	KeyKpSlash:    "KpSlash",
	KeyRightAlt:   "RightAlt",
	KeyLineFeed:   "LineFeed",
	KeyHome:       "Home",
	KeyUp:         "Up",
	KeyPageUp:     "PageUp",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyEnd:        "End",
	KeyDown:       "Down",
	KeyPageDown:   "PageDown",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyLeftMeta:   "LeftMeta",
}

// KeyFromCode looks up the key bound to code. ok is false for codes with no
// key assigned.
func KeyFromCode(code uint16) (Key, bool) {
	k := Key(code)
	_, ok := keyNames[k]
	return k, ok
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}
