package input

import (
	"errors"
	"fmt"
)

// Scancode thresholds for set 1 (what the controller hands over once
// first-port translation is on).
const (
	maxMakeCode     byte = 0x80 // b <= 0x80 is a key press
	breakCodeOffset byte = 0x80 // release code = make code + 0x80
	maxBreakCode    byte = 0xD8
	extendedPrefix  byte = 0xE0
)

var (
	// ErrExtendedScancode is returned for the 0xE0 prefix. Multi-byte codes
	// are detected but not decoded.
	ErrExtendedScancode = errors.New("extended scancode not supported")
	// ErrUnsupportedScancode is returned for bytes outside the press/release
	// ranges that are not the extended prefix.
	ErrUnsupportedScancode = errors.New("unsupported scancode")
	// ErrUnknownKey is returned when a byte is in range but no key is bound
	// to its code.
	ErrUnknownKey = errors.New("unknown key code")
)

// DecodeError carries the offending byte. It unwraps to one of the Err*
// sentinels above.
type DecodeError struct {
	Byte byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode scancode 0x%02X: %v", e.Byte, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode maps one raw byte from the data register to an input event.
func Decode(b byte) (InputEvent, error) {
	var (
		code   byte
		status KeyStatus
	)
	switch {
	case b <= maxMakeCode:
		code, status = b, Pressed
	case b <= maxBreakCode:
		code, status = b-breakCodeOffset, Released
	case b == extendedPrefix:
		return nil, &DecodeError{Byte: b, Err: ErrExtendedScancode}
	default:
		return nil, &DecodeError{Byte: b, Err: ErrUnsupportedScancode}
	}

	key, ok := KeyFromCode(uint16(code))
	if !ok {
		return nil, &DecodeError{Byte: b, Err: ErrUnknownKey}
	}
	return KeyboardEvent{Key: key, Status: status}, nil
}
