package portio

import (
	"log"
	"sync"

	"example.com/ps2hal/core_engine/devices"
)

// BusPort adapts an emulated devices.IOBus to PortIO so the driver can run
// against device models instead of real hardware.
type BusPort struct {
	bus *devices.IOBus

	mu  sync.Mutex
	err error
}

func NewBusPort(bus *devices.IOBus) *BusPort {
	return &BusPort{bus: bus}
}

// Inb reads one byte from port. Unhandled ports read as 0xFF.
func (p *BusPort) Inb(port uint16) byte {
	data := []byte{0}
	if err := p.bus.HandleIO(port, devices.IODirectionIn, 1, data); err != nil {
		p.fail(err)
		return floatingBus
	}
	return data[0]
}

// Outb writes one byte to port.
func (p *BusPort) Outb(port uint16, val byte) {
	if err := p.bus.HandleIO(port, devices.IODirectionOut, 1, []byte{val}); err != nil {
		p.fail(err)
	}
}

// Err returns the first I/O error seen, if any.
func (p *BusPort) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *BusPort) fail(err error) {
	log.Printf("BusPort: %v", err)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
	}
}
