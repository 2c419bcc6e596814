package portio_test

import (
	"testing"

	"example.com/ps2hal/core_engine/devices"
	"example.com/ps2hal/core_engine/portio"
)

func TestBusPortRoutesToDevice(t *testing.T) {
	bus := devices.NewIOBus()
	dev := devices.NewI8042Device(nil)
	bus.RegisterDevice(portio.DataPort, portio.DataPort, dev)
	bus.RegisterDevice(portio.StatusPort, portio.StatusPort, dev)
	p := portio.NewBusPort(bus)

	p.Outb(portio.CommandPort, devices.I8042_CMD_TEST_CONTROLLER)
	if p.Inb(portio.StatusPort)&devices.I8042_STATUS_OUTPUT_FULL == 0 {
		t.Fatal("Expected output buffer full after self test")
	}
	if got := p.Inb(portio.DataPort); got != devices.I8042_RESPONSE_TEST_OK {
		t.Errorf("Expected 0x55, got 0x%02X", got)
	}
	if err := p.Err(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestBusPortUnhandledPortFloats(t *testing.T) {
	p := portio.NewBusPort(devices.NewIOBus())

	if got := p.Inb(portio.StatusPort); got != 0xFF {
		t.Errorf("Expected 0xFF from an empty bus, got 0x%02X", got)
	}
	first := p.Err()
	if first == nil {
		t.Fatal("Expected an error from an empty bus")
	}
	p.Outb(portio.DataPort, 0x00)
	if p.Err() != first {
		t.Errorf("Expected the first error to stick, got %v", p.Err())
	}
}
