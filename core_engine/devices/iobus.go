// core_engine/devices/iobus.go
package devices

import (
	"fmt"
	"log"
)

// I/O directions passed to HandleIO.
const (
	IODirectionIn  uint8 = 0 // Read from device
	IODirectionOut uint8 = 1 // Write to device
)

// InterruptRaiser is how a device signals that it has data for the host.
type InterruptRaiser interface {
	RaiseIRQ(irqLine uint8)
}

// PioDevice defines the interface for a port I/O device.
type PioDevice interface {
	HandleIO(port uint16, direction uint8, size uint8, data []byte) error
}

// portRange maps an inclusive range of ports to one device.
type portRange struct {
	start, end uint16
	device     PioDevice
}

// IOBus manages port I/O access to registered devices.
type IOBus struct {
	ranges []portRange // Later registrations shadow earlier ones
}

// NewIOBus creates and initializes a new IOBus.
func NewIOBus() *IOBus {
	return &IOBus{}
}

// RegisterDevice registers a device to handle I/O for the inclusive port
// range startPort..endPort.
func (bus *IOBus) RegisterDevice(startPort, endPort uint16, device PioDevice) {
	if device == nil {
		log.Printf("IOBus: Warning: Attempted to register a nil device for ports 0x%x-0x%x", startPort, endPort)
		return
	}
	if endPort < startPort {
		log.Printf("IOBus: Warning: Empty port range 0x%x-0x%x for %T", startPort, endPort, device)
		return
	}
	for _, r := range bus.ranges {
		if startPort <= r.end && r.start <= endPort {
			log.Printf("IOBus: Warning: Ports 0x%x-0x%x overlap %T at 0x%x-0x%x. New device (%T) takes precedence.",
				startPort, endPort, r.device, r.start, r.end, device)
		}
	}
	bus.ranges = append(bus.ranges, portRange{start: startPort, end: endPort, device: device})
}

// HandleIO routes an I/O operation to the appropriate registered device.
func (bus *IOBus) HandleIO(port uint16, direction uint8, size uint8, data []byte) error {
	if device := bus.lookup(port); device != nil {
		return device.HandleIO(port, direction, size, data)
	}
	return fmt.Errorf("IOBus: Unhandled I/O to port 0x%x", port)
}

func (bus *IOBus) lookup(port uint16) PioDevice {
	for i := len(bus.ranges) - 1; i >= 0; i-- {
		if r := bus.ranges[i]; r.start <= port && port <= r.end {
			return r.device
		}
	}
	return nil
}
