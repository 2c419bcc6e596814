// core_engine/devices/keyboard.go
package devices

// ps2Keyboard models the device side of a PS/2 keyboard: it answers the
// command bytes the controller forwards from port 0x60.
type ps2Keyboard struct {
	scanning          bool
	scancodeSet       byte
	expectingScancode bool // Last command was 0xF0, next byte is its argument
}

func (k *ps2Keyboard) reset() {
	k.scanning = true
	k.scancodeSet = PS2_DEFAULT_SCANCODE_SET
	k.expectingScancode = false
}

// handle processes one byte written to the keyboard and returns the bytes it
// sends back.
func (k *ps2Keyboard) handle(cmd byte) []byte {
	if k.expectingScancode {
		k.expectingScancode = false
		if cmd == 0 { // Query current set
			return []byte{PS2_RESPONSE_ACK, k.scancodeSet}
		}
		if cmd > 3 {
			return []byte{PS2_RESPONSE_RESEND}
		}
		k.scancodeSet = cmd
		return []byte{PS2_RESPONSE_ACK}
	}

	switch cmd {
	case PS2_CMD_RESET:
		k.reset()
		return []byte{PS2_RESPONSE_ACK, PS2_RESPONSE_SELF_TEST_OK}
	case PS2_CMD_DEFAULTS_DISABLE:
		k.reset()
		k.scanning = false
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_SET_DEFAULTS:
		scanning := k.scanning
		k.reset()
		k.scanning = scanning
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_ENABLE_REPORTING:
		k.scanning = true
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_SCANCODE_SET:
		k.expectingScancode = true
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_IDENTIFY:
		return []byte{PS2_RESPONSE_ACK, PS2_KEYBOARD_ID_LOW, PS2_KEYBOARD_ID_HIGH}
	case PS2_CMD_ECHO:
		return []byte{PS2_RESPONSE_ECHO}
	default:
		return []byte{PS2_RESPONSE_RESEND}
	}
}
