// core_engine/devices/mouse.go
package devices

// ps2Mouse models the device side of a PS/2 mouse on the second port.
type ps2Mouse struct {
	reporting  bool
	id         byte
	sampleRate byte
	resolution byte
	scaling    byte // 1 or 2
	noWheel    bool // Ignore the scroll-wheel unlock sequence
	batFails   bool // Answer reset with PS2_RESPONSE_SELF_TEST_FAIL

	expecting   byte    // 0xE8 or 0xF3 while waiting for an argument, else 0
	rateHistory [3]byte // Last three sample rates, oldest first
}

func (m *ps2Mouse) reset() {
	m.reporting = false
	m.id = PS2_MOUSE_ID_STANDARD
	m.setDefaults()
	m.expecting = 0
	m.rateHistory = [3]byte{}
}

func (m *ps2Mouse) setDefaults() {
	m.sampleRate = PS2_DEFAULT_SAMPLE_RATE
	m.resolution = PS2_DEFAULT_RESOLUTION
	m.scaling = 1
}

// handle processes one byte routed to the mouse via 0xD4 and returns the
// bytes it sends back.
func (m *ps2Mouse) handle(cmd byte) []byte {
	if m.expecting != 0 {
		arg := m.expecting
		m.expecting = 0
		switch arg {
		case PS2_CMD_SET_SAMPLE_RATE:
			m.sampleRate = cmd
			m.rateHistory = [3]byte{m.rateHistory[1], m.rateHistory[2], cmd}
			if !m.noWheel && m.rateHistory == [3]byte{200, 100, 80} {
				m.id = PS2_MOUSE_ID_SCROLL
			}
		case PS2_CMD_SET_RESOLUTION:
			if cmd > 3 {
				return []byte{PS2_RESPONSE_RESEND}
			}
			m.resolution = cmd
		}
		return []byte{PS2_RESPONSE_ACK}
	}

	switch cmd {
	case PS2_CMD_RESET:
		m.reset()
		if m.batFails {
			return []byte{PS2_RESPONSE_ACK, PS2_RESPONSE_SELF_TEST_FAIL, m.id}
		}
		return []byte{PS2_RESPONSE_ACK, PS2_RESPONSE_SELF_TEST_OK, m.id}
	case PS2_CMD_SET_DEFAULTS:
		m.setDefaults()
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_DEFAULTS_DISABLE:
		m.setDefaults()
		m.reporting = false
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_SET_SAMPLE_RATE, PS2_CMD_SET_RESOLUTION:
		m.expecting = cmd
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_IDENTIFY:
		return []byte{PS2_RESPONSE_ACK, m.id}
	case PS2_CMD_SET_SCALING_1_1:
		m.scaling = 1
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_SET_SCALING_2_1:
		m.scaling = 2
		return []byte{PS2_RESPONSE_ACK}
	case PS2_CMD_STATUS_REQUEST:
		var status byte
		if m.scaling == 2 {
			status |= PS2_MOUSE_STATUS_SCALING_2
		}
		if m.reporting {
			status |= PS2_MOUSE_STATUS_REPORTING
		}
		return []byte{PS2_RESPONSE_ACK, status, m.resolution, m.sampleRate}
	case PS2_CMD_ENABLE_REPORTING:
		m.reporting = true
		return []byte{PS2_RESPONSE_ACK}
	default:
		return []byte{PS2_RESPONSE_RESEND}
	}
}
