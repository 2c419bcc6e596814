package core_engine

import (
	"fmt"
	"log"

	"example.com/ps2hal/core_engine/devices"
	"example.com/ps2hal/core_engine/portio"
	"example.com/ps2hal/core_engine/ps2"
)

// Machine is an emulated PC slice for running the PS/2 driver without
// hardware: an I/O bus with an i8042 controller at 0x60/0x64 whose
// interrupts land in a latch.
type Machine struct {
	ioBus *devices.IOBus
	port  *portio.BusPort

	I8042 *devices.I8042Device
	IRQ   *devices.IRQLatch
	Debug bool
}

// NewMachine creates the bus and registers the controller on it.
func NewMachine(enableDebug bool) *Machine {
	irq := devices.NewIRQLatch()
	i8042 := devices.NewI8042Device(irq)

	ioBus := devices.NewIOBus()
	ioBus.RegisterDevice(devices.KEYBOARD_PORT_DATA, devices.KEYBOARD_PORT_DATA, i8042)
	ioBus.RegisterDevice(devices.KEYBOARD_PORT_STATUS, devices.KEYBOARD_PORT_STATUS, i8042)

	m := &Machine{
		ioBus: ioBus,
		port:  portio.NewBusPort(ioBus),
		I8042: i8042,
		IRQ:   irq,
		Debug: enableDebug,
	}
	if m.Debug {
		log.Println("Machine: i8042 registered at ports 0x60 and 0x64")
	}
	return m
}

// Port returns the register access the driver should use.
func (m *Machine) Port() portio.PortIO {
	return m.port
}

// Boot binds a driver to the controller and initializes it. Interrupts
// raised during initialization are discarded.
func (m *Machine) Boot(opts ps2.Options) (*ps2.Controller, bool, error) {
	ctrl := ps2.NewController(m.port, opts)
	extra, err := ctrl.Init()
	if err != nil {
		return nil, false, fmt.Errorf("failed to initialize controller: %w", err)
	}
	if err := m.port.Err(); err != nil {
		return nil, false, fmt.Errorf("I/O error during initialization: %w", err)
	}
	m.IRQ.Acknowledge()
	if m.Debug {
		log.Printf("Machine: controller ready, mouse found %v, extra packet %v", ctrl.MouseFound(), extra)
	}
	return ctrl, extra, nil
}
