package input

// ASCII control bytes produced by the translator.
const (
	asciiNUL byte = 0x00
	asciiBS  byte = 0x08
	asciiTab byte = 0x09
	asciiCR  byte = 0x0D
	asciiESC byte = 0x1B
	asciiFS  byte = 0x1C
	asciiGS  byte = 0x1D
	asciiRS  byte = 0x1E
	asciiUS  byte = 0x1F
)

// ModifierState is the per-keyboard modifier tracking. Index 0 is the left
// key, index 1 the right one.
type ModifierState struct {
	Shift    [2]bool
	Ctrl     [2]bool
	CapsLock bool
}

func (m ModifierState) shift() bool { return m.Shift[0] || m.Shift[1] }
func (m ModifierState) ctrl() bool  { return m.Ctrl[0] || m.Ctrl[1] }

// Translator converts key events to ASCII, e.g. Ctrl+C to 0x03. It holds the
// modifier state of one keyboard and is not safe for concurrent use.
type Translator struct {
	state ModifierState
}

func NewTranslator() *Translator {
	return &Translator{}
}

// State returns a copy of the current modifier state.
func (t *Translator) State() ModifierState {
	return t.state
}

// Reset forgets every held modifier and turns caps lock off.
func (t *Translator) Reset() {
	t.state = ModifierState{}
}

var arrowFinal = map[Key]byte{
	KeyUp:    'A',
	KeyDown:  'B',
	KeyRight: 'C',
	KeyLeft:  'D',
}

var keypad = map[Key]byte{
	KeyKp0:        '0',
	KeyKp1:        '1',
	KeyKp2:        '2',
	KeyKp3:        '3',
	KeyKp4:        '4',
	KeyKp5:        '5',
	KeyKp6:        '6',
	KeyKp7:        '7',
	KeyKp8:        '8',
	KeyKp9:        '9',
	KeyKpAsterisk: '*',
	KeyKpPlus:     '+',
	KeyKpMinus:    '-',
	KeyKpDot:      '.',
	KeyKpSlash:    '/',
	KeyKpEnter:    asciiCR,
}

var baseASCII = map[Key]byte{
	KeyEsc:        asciiESC,
	KeyEnter:      asciiCR,
	KeyTab:        asciiTab,
	KeyBackspace:  asciiBS,
	KeySpace:      ' ',
	KeyApostrophe: '\'',
	KeyComma:      ',',
	KeyMinus:      '-',
	KeyDot:        '.',
	KeySlash:      '/',
	KeyLeftBrace:  '[',
	KeyRightBrace: ']',
	KeyBackslash:  '\\',
	KeySemicolon:  ';',
	KeyEqual:      '=',
	KeyGrave:      '`',

	KeyZero:  '0',
	KeyOne:   '1',
	KeyTwo:   '2',
	KeyThree: '3',
	KeyFour:  '4',
	KeyFive:  '5',
	KeySix:   '6',
	KeySeven: '7',
	KeyEight: '8',
	KeyNine:  '9',

	KeyA: 'a',
	KeyB: 'b',
	KeyC: 'c',
	KeyD: 'd',
	KeyE: 'e',
	KeyF: 'f',
	KeyG: 'g',
	KeyH: 'h',
	KeyI: 'i',
	KeyJ: 'j',
	KeyK: 'k',
	KeyL: 'l',
	KeyM: 'm',
	KeyN: 'n',
	KeyO: 'o',
	KeyP: 'p',
	KeyQ: 'q',
	KeyR: 'r',
	KeyS: 's',
	KeyT: 't',
	KeyU: 'u',
	KeyV: 'v',
	KeyW: 'w',
	KeyX: 'x',
	KeyY: 'y',
	KeyZ: 'z',
}

// US shifted symbols for the top row and punctuation.
var shifted = map[byte]byte{
	'`':  '~',
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	'\\': '|',
	';':  ':',
	'\'': '"',
	',':  '<',
	'.':  '>',
	'/':  '?',
}

var ctrlPunct = map[byte]byte{
	'[':  asciiESC,
	'\\': asciiFS,
	']':  asciiGS,
	'6':  asciiRS,
	'-':  asciiUS,
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Translate consumes one event. It returns up to four bytes padded with NUL
// and ok == false when the event produces no output (modifiers, releases,
// unmapped keys).
func (t *Translator) Translate(ev InputEvent) (out [4]byte, ok bool) {
	kev, isKey := ev.(KeyboardEvent)
	if !isKey {
		return out, false
	}
	key, status := kev.Key, kev.Status

	switch key {
	case KeyLeftShift:
		t.state.Shift[0] = status == Pressed
		return out, false
	case KeyRightShift:
		t.state.Shift[1] = status == Pressed
		return out, false
	case KeyLeftCtrl:
		t.state.Ctrl[0] = status == Pressed
		return out, false
	case KeyRightCtrl:
		t.state.Ctrl[1] = status == Pressed
		return out, false
	case KeyCapsLock:
		if status == Pressed {
			t.state.CapsLock = !t.state.CapsLock
		}
		return out, false
	}
	if status == Released {
		return out, false
	}

	if final, isArrow := arrowFinal[key]; isArrow {
		return [4]byte{asciiESC, '[', final, asciiNUL}, true
	}
	if c, isKeypad := keypad[key]; isKeypad {
		out[0] = c
		return out, true
	}

	c, mapped := baseASCII[key]
	if !mapped {
		return out, false
	}

	if t.state.CapsLock && isLower(c) {
		c -= 'a' - 'A'
	}

	// Shift wins over ctrl when both are held.
	if t.state.shift() {
		switch {
		case isLower(c):
			c -= 'a' - 'A'
		case isUpper(c):
			c += 'a' - 'A'
		}
		if s, has := shifted[c]; has {
			c = s
		}
	} else if t.state.ctrl() {
		switch {
		case isUpper(c):
			c = c - 'A' + 1
		case isLower(c):
			c = c - 'a' + 1
		default:
			if cc, has := ctrlPunct[c]; has {
				c = cc
			}
		}
	}

	out[0] = c
	return out, true
}

// Bytes returns the meaningful prefix of a Translate result, stopping at the
// first NUL.
func Bytes(out [4]byte) []byte {
	for i, c := range out {
		if c == asciiNUL {
			return out[:i:i]
		}
	}
	return out[:]
}
