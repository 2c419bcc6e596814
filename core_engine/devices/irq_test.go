// core_engine/devices/irq_test.go
package devices_test

import (
	"testing"
	"time"

	"example.com/ps2hal/core_engine/devices"
)

func TestIRQLatch_RaiseAndAcknowledge(t *testing.T) {
	l := devices.NewIRQLatch()

	l.RaiseIRQ(devices.KEYBOARD_IRQ)
	l.RaiseIRQ(devices.MOUSE_IRQ)
	l.RaiseIRQ(devices.KEYBOARD_IRQ)
	l.RaiseIRQ(16)

	select {
	case <-l.Ready():
	case <-time.After(time.Second):
		t.Fatal("Expected a wakeup after RaiseIRQ")
	}
	select {
	case <-l.Ready():
		t.Error("Expected a single coalesced wakeup")
	default:
	}

	want := uint16(1<<devices.KEYBOARD_IRQ | 1<<devices.MOUSE_IRQ)
	if got := l.Acknowledge(); got != want {
		t.Errorf("Expected pending mask 0x%04x, got 0x%04x", want, got)
	}
	if got := l.Acknowledge(); got != 0 {
		t.Errorf("Expected mask cleared, got 0x%04x", got)
	}
}

func TestIRQLatch_DrivenByController(t *testing.T) {
	l := devices.NewIRQLatch()
	d := devices.NewI8042Device(l)

	d.InjectStrayBytes(0xFA)
	<-l.Ready()
	if got := l.Acknowledge(); got != 1<<devices.KEYBOARD_IRQ {
		t.Errorf("Expected IRQ1 pending, got 0x%04x", got)
	}
}

func TestIRQLatch_AcknowledgeWithdrawsWakeup(t *testing.T) {
	l := devices.NewIRQLatch()

	l.RaiseIRQ(devices.KEYBOARD_IRQ)
	if got := l.Acknowledge(); got != 1<<devices.KEYBOARD_IRQ {
		t.Fatalf("Expected IRQ1 pending, got 0x%04x", got)
	}
	select {
	case <-l.Ready():
		t.Error("Expected no wakeup once the request was acknowledged")
	default:
	}

	l.RaiseIRQ(devices.MOUSE_IRQ)
	select {
	case <-l.Ready():
	default:
		t.Error("Expected a wakeup for a request raised after Acknowledge")
	}
}
