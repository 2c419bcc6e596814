//go:build !linux

package portio

import (
	"errors"
	"fmt"
)

const DevPortPath = "/dev/port"

// DevPort is only available on Linux.
type DevPort struct{}

func OpenDevPort(path string) (*DevPort, error) {
	return nil, fmt.Errorf("failed to open %s: %w", path, errors.ErrUnsupported)
}

func (*DevPort) Inb(port uint16) byte { return floatingBus }
func (*DevPort) Outb(port uint16, val byte) {}
func (*DevPort) Err() error { return errors.ErrUnsupported }
func (*DevPort) Close() error { return nil }
