package portio

import (
	"fmt"
	"log"
	"sync"

	"golang.org/x/sys/unix"
)

// DevPortPath is the Linux character device exposing the I/O port space;
// file offset N addresses port N.
const DevPortPath = "/dev/port"

// DevPort performs real port I/O through /dev/port. It needs CAP_SYS_RAWIO.
type DevPort struct {
	fd   int
	path string

	mu  sync.Mutex
	err error
}

// OpenDevPort opens path (normally DevPortPath) for reading and writing.
func OpenDevPort(path string) (*DevPort, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC|unix.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &DevPort{fd: fd, path: path}, nil
}

// Inb reads one byte from port. A failed read is logged, remembered for Err
// and reads as 0xFF.
func (p *DevPort) Inb(port uint16) byte {
	buf := []byte{0}
	n, err := unix.Pread(p.fd, buf, int64(port))
	if err == nil && n != 1 {
		err = fmt.Errorf("short read (%d bytes)", n)
	}
	if err != nil {
		p.fail(fmt.Errorf("read port 0x%x from %s: %w", port, p.path, err))
		return floatingBus
	}
	return buf[0]
}

// Outb writes one byte to port. A failed write is logged and remembered for
// Err.
func (p *DevPort) Outb(port uint16, val byte) {
	n, err := unix.Pwrite(p.fd, []byte{val}, int64(port))
	if err == nil && n != 1 {
		err = fmt.Errorf("short write (%d bytes)", n)
	}
	if err != nil {
		p.fail(fmt.Errorf("write 0x%02x to port 0x%x on %s: %w", val, port, p.path, err))
	}
}

// Err returns the first transfer error seen, if any.
func (p *DevPort) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Close releases the file descriptor.
func (p *DevPort) Close() error {
	if p.fd < 0 {
		return nil
	}
	err := unix.Close(p.fd)
	p.fd = -1
	return err
}

func (p *DevPort) fail(err error) {
	log.Printf("DevPort: %v", err)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
	}
}
