// core_engine/devices/i8042.go
package devices

import (
	"fmt"
	"sync"
)

// outputByte is one entry of the controller output buffer.
type outputByte struct {
	value     byte
	fromMouse bool // Set when the byte came from the second port
}

// I8042Device emulates a dual-port PS/2 controller at 0x60/0x64 with a
// keyboard on the first port and, optionally, a mouse on the second.
// Real controllers hold one byte; this model queues them so a scripted
// exchange can be replayed without timing.
type I8042Device struct {
	lock      sync.Mutex
	irqRaiser InterruptRaiser // May be nil

	config         byte // Controller configuration byte
	pendingCommand byte // Controller command waiting for its data byte (0 if none)
	lastWasCommand bool // Status bit 3
	output         []outputByte

	keyboard     ps2Keyboard
	mouse        ps2Mouse
	mousePresent bool

	// Fault injection
	selfTestResult byte
	resends        int // Device writes still to be answered with 0xFE
}

// NewI8042Device creates a controller with a keyboard and a mouse attached.
// irqRaiser may be nil when interrupts are not modelled.
func NewI8042Device(irqRaiser InterruptRaiser) *I8042Device {
	d := &I8042Device{
		irqRaiser:      irqRaiser,
		config:         I8042_CONFIG_FIRST_INTERRUPT | I8042_CONFIG_POST_PASSED | I8042_CONFIG_FIRST_TRANSLATE,
		mousePresent:   true,
		selfTestResult: I8042_RESPONSE_TEST_OK,
	}
	d.keyboard.reset()
	d.mouse.reset()
	return d
}

// HandleIO processes I/O operations for the controller.
// It responds to reads on port 0x64 (status) and 0x60 (data), and to writes
// on 0x64 (command) and 0x60 (data).
func (d *I8042Device) HandleIO(port uint16, direction uint8, size uint8, data []byte) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if size != 1 {
		return fmt.Errorf("I8042Device: I/O size %d not supported for port 0x%x. Only 1-byte supported", size, port)
	}

	switch direction {
	case IODirectionIn:
		switch port {
		case KEYBOARD_PORT_STATUS:
			data[0] = d.statusLocked()
		case KEYBOARD_PORT_DATA:
			data[0] = d.readDataLocked()
		default:
			return fmt.Errorf("I8042Device: Unhandled IN from port 0x%x", port)
		}
	case IODirectionOut:
		switch port {
		case KEYBOARD_PORT_STATUS:
			d.lastWasCommand = true
			d.handleCommandLocked(data[0])
		case KEYBOARD_PORT_DATA:
			d.lastWasCommand = false
			d.handleDataWriteLocked(data[0])
		default:
			return fmt.Errorf("I8042Device: Unhandled OUT to port 0x%x", port)
		}
	default:
		return fmt.Errorf("I8042Device: Invalid I/O direction %d for port 0x%x", direction, port)
	}
	return nil
}

func (d *I8042Device) statusLocked() byte {
	var status byte
	if len(d.output) > 0 {
		status |= I8042_STATUS_OUTPUT_FULL
		if d.output[0].fromMouse {
			status |= I8042_STATUS_SECOND_OUTPUT_FULL
		}
	}
	if d.config&I8042_CONFIG_POST_PASSED != 0 {
		status |= I8042_STATUS_SYSTEM
	}
	if d.lastWasCommand {
		status |= I8042_STATUS_COMMAND
	}
	return status
}

func (d *I8042Device) readDataLocked() byte {
	if len(d.output) == 0 {
		return 0x00 // No data available
	}
	b := d.output[0]
	d.output = d.output[1:]
	return b.value
}

func (d *I8042Device) handleCommandLocked(command byte) {
	d.pendingCommand = 0
	switch command {
	case I8042_CMD_READ_CONFIG:
		d.queueLocked(d.config, false)
	case I8042_CMD_WRITE_CONFIG, I8042_CMD_WRITE_SECOND:
		d.pendingCommand = command
	case I8042_CMD_DISABLE_SECOND:
		d.config |= I8042_CONFIG_SECOND_DISABLED
	case I8042_CMD_ENABLE_SECOND:
		d.config &^= I8042_CONFIG_SECOND_DISABLED
	case I8042_CMD_DISABLE_FIRST:
		d.config |= I8042_CONFIG_FIRST_DISABLED
	case I8042_CMD_ENABLE_FIRST:
		d.config &^= I8042_CONFIG_FIRST_DISABLED
	case I8042_CMD_TEST_CONTROLLER:
		d.queueLocked(d.selfTestResult, false)
	case I8042_CMD_TEST_FIRST, I8042_CMD_TEST_SECOND:
		d.queueLocked(I8042_RESPONSE_PORT_OK, false)
	case I8042_CMD_DIAGNOSTIC:
		d.queueLocked(0x00, false)
	default:
		// Unknown controller commands are ignored, as most chipsets do.
	}
}

func (d *I8042Device) handleDataWriteLocked(value byte) {
	pending := d.pendingCommand
	d.pendingCommand = 0

	switch pending {
	case I8042_CMD_WRITE_CONFIG:
		d.config = value
		return
	case I8042_CMD_WRITE_SECOND:
		if !d.mousePresent {
			return // Nothing on the wire answers
		}
		if d.takeResendLocked() {
			d.queueLocked(PS2_RESPONSE_RESEND, true)
			return
		}
		for _, b := range d.mouse.handle(value) {
			d.queueLocked(b, true)
		}
		return
	}

	if d.takeResendLocked() {
		d.queueLocked(PS2_RESPONSE_RESEND, false)
		return
	}
	for _, b := range d.keyboard.handle(value) {
		d.queueLocked(b, false)
	}
}

func (d *I8042Device) takeResendLocked() bool {
	if d.resends > 0 {
		d.resends--
		return true
	}
	return false
}

func (d *I8042Device) queueLocked(value byte, fromMouse bool) {
	d.output = append(d.output, outputByte{value: value, fromMouse: fromMouse})
	if d.irqRaiser == nil {
		return
	}
	if fromMouse && d.config&I8042_CONFIG_SECOND_INTERRUPT != 0 {
		d.irqRaiser.RaiseIRQ(MOUSE_IRQ)
	} else if !fromMouse && d.config&I8042_CONFIG_FIRST_INTERRUPT != 0 {
		d.irqRaiser.RaiseIRQ(KEYBOARD_IRQ)
	}
}

// TypeScancodes queues scancodes as if keys were struck. Nothing is queued
// (and false is returned) unless the first port is enabled and the keyboard
// is scanning.
func (d *I8042Device) TypeScancodes(codes ...byte) bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.config&I8042_CONFIG_FIRST_DISABLED != 0 || !d.keyboard.scanning {
		return false
	}
	for _, c := range codes {
		d.queueLocked(c, false)
	}
	return true
}

// MoveMouse queues raw mouse packet bytes. Nothing is queued (and false is
// returned) unless a mouse is present, the second port is enabled and the
// mouse is reporting.
func (d *I8042Device) MoveMouse(packet ...byte) bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.mousePresent || d.config&I8042_CONFIG_SECOND_DISABLED != 0 || !d.mouse.reporting {
		return false
	}
	for _, b := range packet {
		d.queueLocked(b, true)
	}
	return true
}

// InjectStrayBytes queues bytes on the first port regardless of device
// state, like a late acknowledgement left over from firmware.
func (d *I8042Device) InjectStrayBytes(b ...byte) {
	d.lock.Lock()
	defer d.lock.Unlock()
	for _, v := range b {
		d.queueLocked(v, false)
	}
}

// InjectResends makes the next n device writes answer 0xFE and be dropped.
func (d *I8042Device) InjectResends(n int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.resends = n
}

// SetSelfTestResult overrides the byte returned for the controller self test.
func (d *I8042Device) SetSelfTestResult(b byte) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.selfTestResult = b
}

// SetMousePresent attaches or detaches the mouse.
func (d *I8042Device) SetMousePresent(present bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.mousePresent = present
}

// SetMouseWheel controls whether the mouse honours the 200/100/80 sample
// rate sequence that switches it to the 4-byte packet format.
func (d *I8042Device) SetMouseWheel(wheel bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.mouse.noWheel = !wheel
}

// SetMouseSelfTestFails makes every later mouse reset report a failed
// self test (0xFC instead of 0xAA).
func (d *I8042Device) SetMouseSelfTestFails(fails bool) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.mouse.batFails = fails
}

// I8042State is a snapshot of the emulated hardware for inspection.
type I8042State struct {
	Config          byte
	Pending         int // Bytes waiting in the output buffer
	ScancodeSet     byte
	KeyboardScan    bool
	MouseReporting  bool
	MouseID         byte
	MouseSampleRate byte
	MouseResolution byte
	MouseScaling    byte
}

// State returns a snapshot of controller and device state.
func (d *I8042Device) State() I8042State {
	d.lock.Lock()
	defer d.lock.Unlock()
	return I8042State{
		Config:          d.config,
		Pending:         len(d.output),
		ScancodeSet:     d.keyboard.scancodeSet,
		KeyboardScan:    d.keyboard.scanning,
		MouseReporting:  d.mouse.reporting,
		MouseID:         d.mouse.id,
		MouseSampleRate: d.mouse.sampleRate,
		MouseResolution: d.mouse.resolution,
		MouseScaling:    d.mouse.scaling,
	}
}
