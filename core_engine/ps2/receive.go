package ps2

import "example.com/ps2hal/core_engine/portio"

// Packet is one byte taken from the output buffer.
type Packet struct {
	Data      byte
	FromMouse bool // The byte came from the second port
}

// Receive polls the controller once. It never waits: ok is false when the
// output buffer is empty.
func (c *Controller) Receive() (p Packet, ok bool) {
	status := c.status()
	if !status.Has(StatusOutputFull) {
		return Packet{}, false
	}
	return Packet{
		Data:      c.io.Inb(portio.DataPort),
		FromMouse: status.Has(StatusSecondOutputFull),
	}, true
}

// RecvByte is Receive without the port of origin.
func (c *Controller) RecvByte() (byte, bool) {
	p, ok := c.Receive()
	return p.Data, ok
}
