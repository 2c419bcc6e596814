// Package portio is the register access layer: single-byte reads and writes
// against x86 I/O ports, with no buffering in between.
package portio

// PS/2 controller registers.
const (
	DataPort    uint16 = 0x60 // Data register (read/write)
	StatusPort  uint16 = 0x64 // Status register (read)
	CommandPort uint16 = 0x64 // Command register (write)
)

// PortIO reads and writes one byte at an I/O port address. Each call is a
// direct hardware transaction.
type PortIO interface {
	Inb(port uint16) byte
	Outb(port uint16, val byte)
}

// floatingBus is what a read returns when the transfer itself failed; an
// unpopulated ISA bus reads as all ones.
const floatingBus byte = 0xFF
