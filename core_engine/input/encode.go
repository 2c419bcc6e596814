package input

// Encode returns the set 1 scancode that Decode turns back into ev. ok is
// false when no single byte does: codes above 0x80 cannot be pressed, and
// a release must land in (0x80, 0xD8], which rules out code 0 and codes
// above 0x58.
func Encode(ev KeyboardEvent) (code byte, ok bool) {
	if ev.Key > Key(maxMakeCode) {
		return 0, false
	}
	code = byte(ev.Key)
	if ev.Status == Pressed {
		return code, true
	}
	if code == 0 || code > maxBreakCode-breakCodeOffset {
		return 0, false
	}
	return code + breakCodeOffset, true
}

type stroke struct {
	key   Key
	shift bool
}

// strokeFor maps a character to the key that types it on a US layout.
var strokeFor = func() map[byte]stroke {
	m := make(map[byte]stroke, 2*len(baseASCII))
	for k, c := range baseASCII {
		m[c] = stroke{key: k}
		if isLower(c) {
			m[c-('a'-'A')] = stroke{key: k, shift: true}
		}
		if s, has := shifted[c]; has {
			m[s] = stroke{key: k, shift: true}
		}
	}
	m['\n'] = stroke{key: KeyEnter}
	return m
}()

// Strokes returns the events that type c starting from no modifiers held,
// ending with every key released. ok is false for characters no single key
// produces.
func Strokes(c byte) (events []KeyboardEvent, ok bool) {
	s, ok := strokeFor[c]
	if !ok {
		return nil, false
	}
	if !s.shift {
		return []KeyboardEvent{Press(s.key), Release(s.key)}, true
	}
	return []KeyboardEvent{
		Press(KeyLeftShift),
		Press(s.key),
		Release(s.key),
		Release(KeyLeftShift),
	}, true
}

// EncodeText returns the scancodes that type text. Characters without a key
// or whose key has no single-byte code are skipped and returned in missing.
func EncodeText(text string) (codes []byte, missing []byte) {
	for i := 0; i < len(text); i++ {
		events, ok := Strokes(text[i])
		if !ok {
			missing = append(missing, text[i])
			continue
		}
		var seq []byte
		for _, ev := range events {
			b, encodable := Encode(ev)
			if !encodable {
				ok = false
				break
			}
			seq = append(seq, b)
		}
		if !ok {
			missing = append(missing, text[i])
			continue
		}
		codes = append(codes, seq...)
	}
	return codes, missing
}
