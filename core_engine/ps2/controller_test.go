package ps2_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"example.com/ps2hal/core_engine/devices"
	"example.com/ps2hal/core_engine/input"
	"example.com/ps2hal/core_engine/portio"
	"example.com/ps2hal/core_engine/ps2"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

type memLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *memLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *memLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func (l *memLogger) count(substr string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

type rig struct {
	dev  *devices.I8042Device
	port *portio.BusPort
	log  *memLogger
	ctrl *ps2.Controller
}

func newRig(t *testing.T, strict bool) *rig {
	t.Helper()
	bus := devices.NewIOBus()
	dev := devices.NewI8042Device(nil)
	bus.RegisterDevice(devices.KEYBOARD_PORT_DATA, devices.KEYBOARD_PORT_DATA, dev)
	bus.RegisterDevice(devices.KEYBOARD_PORT_STATUS, devices.KEYBOARD_PORT_STATUS, dev)

	r := &rig{dev: dev, port: portio.NewBusPort(bus), log: &memLogger{}}
	r.ctrl = ps2.NewController(r.port, ps2.Options{
		ReadTimeout:     20 * time.Millisecond,
		WriteTimeout:    20 * time.Millisecond,
		FlushIterations: 8,
		Clock:           &stepClock{now: time.Unix(0, 0)},
		Pause:           func() {},
		Logger:          r.log,
		Strict:          strict,
	})
	return r
}

func (r *rig) init(t *testing.T) bool {
	t.Helper()
	extra, err := r.ctrl.Init()
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := r.port.Err(); err != nil {
		t.Fatalf("bus error during Init: %v", err)
	}
	return extra
}

func TestInitWithScrollMouse(t *testing.T) {
	r := newRig(t, false)

	if extra := r.init(t); !extra {
		t.Error("expected the 4-byte mouse packet format")
	}
	if !r.ctrl.MouseFound() || !r.ctrl.MouseExtra() {
		t.Errorf("MouseFound=%v MouseExtra=%v", r.ctrl.MouseFound(), r.ctrl.MouseExtra())
	}

	want := ps2.ConfigPostPassed | ps2.ConfigFirstInterrupt | ps2.ConfigSecondInterrupt | ps2.ConfigFirstTranslate
	if r.ctrl.Config() != want {
		t.Errorf("driver config = %v, want %v", r.ctrl.Config(), want)
	}

	st := r.dev.State()
	if ps2.ConfigFlags(st.Config) != want {
		t.Errorf("hardware config = %v, want %v", ps2.ConfigFlags(st.Config), want)
	}
	if st.Pending != 0 {
		t.Errorf("expected the output buffer drained, %d bytes pending", st.Pending)
	}
	if st.ScancodeSet != 2 || !st.KeyboardScan {
		t.Errorf("keyboard: set %d scanning %v", st.ScancodeSet, st.KeyboardScan)
	}
	if !st.MouseReporting || st.MouseID != ps2.MouseIDExtended {
		t.Errorf("mouse: reporting %v id %d", st.MouseReporting, st.MouseID)
	}
	if st.MouseSampleRate != 200 || st.MouseResolution != 3 || st.MouseScaling != 1 {
		t.Errorf("mouse: rate %d resolution %d scaling %d", st.MouseSampleRate, st.MouseResolution, st.MouseScaling)
	}
}

func TestInitWithoutWheel(t *testing.T) {
	r := newRig(t, false)
	r.dev.SetMouseWheel(false)

	if extra := r.init(t); extra {
		t.Error("expected the 3-byte mouse packet format")
	}
	if !r.ctrl.MouseFound() {
		t.Error("expected the mouse to be found")
	}
}

func TestInitWithoutMouse(t *testing.T) {
	r := newRig(t, false)
	r.dev.SetMousePresent(false)

	if extra := r.init(t); extra {
		t.Error("expected no extra packet without a mouse")
	}
	if r.ctrl.MouseFound() {
		t.Error("expected no mouse")
	}
	cfg := r.ctrl.Config()
	if !cfg.Has(ps2.ConfigSecondDisabled) || cfg.Has(ps2.ConfigSecondInterrupt) {
		t.Errorf("expected the second port disabled without interrupts, got %v", cfg)
	}
	if !cfg.Has(ps2.ConfigFirstInterrupt | ps2.ConfigFirstTranslate) {
		t.Errorf("expected the keyboard enabled, got %v", cfg)
	}
	if !r.log.contains("failed to initialize mouse") {
		t.Error("expected the mouse failure to be logged")
	}
	if !r.dev.State().KeyboardScan {
		t.Error("expected keyboard scanning")
	}
}

func TestInitControllerSelfTestFailure(t *testing.T) {
	r := newRig(t, false)
	r.dev.SetSelfTestResult(0x00)

	extra, err := r.ctrl.Init()
	if !errors.Is(err, ps2.ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
	if extra {
		t.Error("expected false on failure")
	}
	if !strings.Contains(err.Error(), "00") {
		t.Errorf("expected the self test byte in the error, got %q", err)
	}
}

func TestInitAbsorbsResends(t *testing.T) {
	r := newRig(t, false)
	r.dev.InjectResends(2)

	if extra := r.init(t); !extra {
		t.Error("expected Init to recover from resend requests")
	}
	if !r.log.contains("retry 1/4: command retry requested") {
		t.Errorf("expected the resend to be logged as a retry, got %q", r.log.lines)
	}
}

func TestInitFlushesStrayBytes(t *testing.T) {
	r := newRig(t, false)
	r.dev.InjectStrayBytes(0xFA, 0x1E)

	r.init(t)
	if !r.log.contains("flush init start: FA") || !r.log.contains("flush init start: 1E") {
		t.Errorf("expected stray bytes flushed at start, got %q", r.log.lines)
	}
}

func TestInitIsRepeatable(t *testing.T) {
	r := newRig(t, false)
	r.init(t)
	if extra := r.init(t); !extra {
		t.Error("expected a second Init to succeed the same way")
	}
}

// faultyKeyboard answers the scancode set argument with 0xFC.
type faultyKeyboard struct {
	*devices.I8042Device
	lastWasScancodeCmd bool
}

func (f *faultyKeyboard) HandleIO(port uint16, direction uint8, size uint8, data []byte) error {
	if port == devices.KEYBOARD_PORT_DATA && direction == devices.IODirectionOut {
		if f.lastWasScancodeCmd {
			f.lastWasScancodeCmd = false
			// Swallow the byte and answer as a broken keyboard would
			f.InjectStrayBytes(0xFC)
			return nil
		}
		f.lastWasScancodeCmd = data[0] == devices.PS2_CMD_SCANCODE_SET
	}
	return f.I8042Device.HandleIO(port, direction, size, data)
}

func newFaultyRig(t *testing.T, strict bool) (*ps2.Controller, *memLogger) {
	t.Helper()
	bus := devices.NewIOBus()
	dev := &faultyKeyboard{I8042Device: devices.NewI8042Device(nil)}
	bus.RegisterDevice(devices.KEYBOARD_PORT_DATA, devices.KEYBOARD_PORT_STATUS, dev)
	log := &memLogger{}
	ctrl := ps2.NewController(portio.NewBusPort(bus), ps2.Options{
		ReadTimeout:  20 * time.Millisecond,
		WriteTimeout: 20 * time.Millisecond,
		Clock:        &stepClock{now: time.Unix(0, 0)},
		Pause:        func() {},
		Logger:       log,
		Strict:       strict,
	})
	return ctrl, log
}

func TestInitToleratesKeyboardMismatch(t *testing.T) {
	ctrl, log := newFaultyRig(t, false)

	if _, err := ctrl.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !log.contains("keyboard failed to set scancode set 2: FC") {
		t.Errorf("expected the mismatch to be logged, got %q", log.lines)
	}
}

func TestInitStrictRejectsKeyboardMismatch(t *testing.T) {
	ctrl, _ := newFaultyRig(t, true)

	_, err := ctrl.Init()
	if !errors.Is(err, ps2.ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
}

// nackDefaults answers the keyboard's set-defaults-and-disable command with
// 0xFC every time.
type nackDefaults struct {
	*devices.I8042Device
	toMouse bool
}

func (n *nackDefaults) HandleIO(port uint16, direction uint8, size uint8, data []byte) error {
	if direction == devices.IODirectionOut {
		switch port {
		case devices.KEYBOARD_PORT_STATUS:
			n.toMouse = data[0] == devices.I8042_CMD_WRITE_SECOND
		case devices.KEYBOARD_PORT_DATA:
			toMouse := n.toMouse
			n.toMouse = false
			if !toMouse && data[0] == devices.PS2_CMD_DEFAULTS_DISABLE {
				n.InjectStrayBytes(0xFC)
				return nil
			}
		}
	}
	return n.I8042Device.HandleIO(port, direction, size, data)
}

func TestInitKeyboardRetryExhausted(t *testing.T) {
	bus := devices.NewIOBus()
	bus.RegisterDevice(devices.KEYBOARD_PORT_DATA, devices.KEYBOARD_PORT_STATUS,
		&nackDefaults{I8042Device: devices.NewI8042Device(nil)})
	log := &memLogger{}
	ctrl := ps2.NewController(portio.NewBusPort(bus), ps2.Options{
		ReadTimeout:  20 * time.Millisecond,
		WriteTimeout: 20 * time.Millisecond,
		Clock:        &stepClock{now: time.Unix(0, 0)},
		Pause:        func() {},
		Logger:       log,
	})

	_, err := ctrl.Init()
	if !errors.Is(err, ps2.ErrNoMoreTries) {
		t.Fatalf("expected ErrNoMoreTries, got %v", err)
	}
	if !strings.Contains(err.Error(), "keyboard defaults") {
		t.Errorf("expected the failing step in the error, got %q", err)
	}
	if n := log.count("keyboard failed to set defaults: FC"); n != 4 {
		t.Errorf("expected 4 attempts, logged %d", n)
	}
}

func TestInitMouseSelfTestFailureLeavesMouseOff(t *testing.T) {
	r := newRig(t, false)
	r.dev.SetMouseSelfTestFails(true)

	if extra := r.init(t); extra {
		t.Error("expected no extra packet from a failed mouse")
	}
	if r.ctrl.MouseFound() {
		t.Error("expected the mouse treated as absent")
	}
	if n := r.log.count("mouse failed self test 1: FC"); n != 4 {
		t.Errorf("expected the reset attempted 4 times, logged %d", n)
	}
	if !r.log.contains("mouse reset: retry 4/4") || !r.log.contains("failed to initialize mouse") {
		t.Errorf("expected retry exhaustion logged, got %q", r.log.lines)
	}

	cfg := r.ctrl.Config()
	if !cfg.Has(ps2.ConfigSecondDisabled) || cfg.Has(ps2.ConfigSecondInterrupt) {
		t.Errorf("expected the second port disabled without interrupts, got %v", cfg)
	}
	st := r.dev.State()
	if ps2.ConfigFlags(st.Config) != cfg || st.MouseReporting {
		t.Errorf("hardware config %v, mouse reporting %v", ps2.ConfigFlags(st.Config), st.MouseReporting)
	}
	if !st.KeyboardScan {
		t.Error("expected the keyboard to keep working")
	}
}

func TestReceiveEmpty(t *testing.T) {
	r := newRig(t, false)
	r.init(t)

	if p, ok := r.ctrl.Receive(); ok {
		t.Errorf("expected no data, got %+v", p)
	}
	if _, ok := r.ctrl.RecvByte(); ok {
		t.Error("expected no byte")
	}
}

func TestReceiveKeyboardAndMouse(t *testing.T) {
	r := newRig(t, false)
	r.init(t)

	if !r.dev.TypeScancodes(0x1E) {
		t.Fatal("keyboard is not scanning")
	}
	p, ok := r.ctrl.Receive()
	if !ok || p.Data != 0x1E || p.FromMouse {
		t.Errorf("expected keyboard byte 0x1E, got %+v ok=%v", p, ok)
	}

	if !r.dev.MoveMouse(0x08, 0x02, 0xFE, 0x01) {
		t.Fatal("mouse is not reporting")
	}
	for i, want := range []byte{0x08, 0x02, 0xFE, 0x01} {
		p, ok := r.ctrl.Receive()
		if !ok || p.Data != want || !p.FromMouse {
			t.Errorf("mouse byte %d: expected 0x%02X from mouse, got %+v ok=%v", i, want, p, ok)
		}
	}

	r.dev.TypeScancodes(0x9E)
	if b, ok := r.ctrl.RecvByte(); !ok || b != 0x9E {
		t.Errorf("expected 0x9E, got 0x%02X ok=%v", b, ok)
	}
}

func TestTypingEndToEnd(t *testing.T) {
	r := newRig(t, false)
	r.init(t)

	// Shift+H, i, Enter
	r.dev.TypeScancodes(0x2A, 0x23, 0xA3, 0xAA, 0x17, 0x97, 0x1C, 0x9C)

	tr := input.NewTranslator()
	var out []byte
	for {
		b, ok := r.ctrl.RecvByte()
		if !ok {
			break
		}
		ev, err := input.Decode(b)
		if err != nil {
			t.Fatalf("decode 0x%02X: %v", b, err)
		}
		if s, ok := tr.Translate(ev); ok {
			out = append(out, input.Bytes(s)...)
		}
	}
	if string(out) != "Hi\r" {
		t.Errorf("typed %q, want %q", out, "Hi\r")
	}
}
