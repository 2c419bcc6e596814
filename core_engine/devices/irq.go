// core_engine/devices/irq.go
package devices

import "sync"

// IRQLatch collects interrupt requests the way a PIC's request register
// does and wakes whoever services them. It implements InterruptRaiser.
type IRQLatch struct {
	lock   sync.Mutex
	irr    uint16 // Bit n set while IRQ n is pending
	notify chan struct{}
}

// NewIRQLatch creates a latch with no pending requests.
func NewIRQLatch() *IRQLatch {
	return &IRQLatch{notify: make(chan struct{}, 1)}
}

// RaiseIRQ marks irqLine pending. Lines above 15 are ignored.
func (l *IRQLatch) RaiseIRQ(irqLine uint8) {
	if irqLine > 15 {
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	l.irr |= 1 << irqLine
	select {
	case l.notify <- struct{}{}:
	default: // A wakeup is already queued
	}
}

// Ready receives a value after one or more RaiseIRQ calls that have not
// been acknowledged yet.
func (l *IRQLatch) Ready() <-chan struct{} {
	return l.notify
}

// Acknowledge returns the pending lines as a bitmask and clears them, like
// reading the request register and sending EOI in one step. A queued
// wakeup for those lines is withdrawn.
func (l *IRQLatch) Acknowledge() uint16 {
	l.lock.Lock()
	defer l.lock.Unlock()
	irr := l.irr
	l.irr = 0
	select {
	case <-l.notify:
	default:
	}
	return irr
}
