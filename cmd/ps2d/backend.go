package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"example.com/ps2hal/core_engine"
	"example.com/ps2hal/core_engine/input"
	"example.com/ps2hal/core_engine/portio"
	"example.com/ps2hal/core_engine/ps2"
)

// keystrokeDelay spaces out emulated keystrokes so bytes arrive the way a
// person types rather than all at once.
const keystrokeDelay = 20 * time.Millisecond

func runDevPort(ctx context.Context, opts ps2.Options, out io.Writer) error {
	port, err := portio.OpenDevPort(*DEVPORT)
	if err != nil {
		return err
	}
	defer port.Close()

	ctrl := ps2.NewController(port, opts)
	extra, err := ctrl.Init()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := port.Err(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	log.Printf("ps2d: ready, mouse found %v, extra packet %v", ctrl.MouseFound(), extra)

	s := newSession(ctrl, out)
	ticker := time.NewTicker(*POLL)
	defer ticker.Stop()
	for {
		if err := s.drain(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func runEmulated(ctx context.Context, opts ps2.Options, out io.Writer) error {
	m := core_engine.NewMachine(*DEBUG)
	ctrl, extra, err := m.Boot(opts)
	if err != nil {
		return err
	}
	log.Printf("ps2d: ready, mouse found %v, extra packet %v", ctrl.MouseFound(), extra)

	codes, missing := input.EncodeText(*TYPE)
	if len(missing) > 0 {
		log.Printf("ps2d: no key types %q, skipped", missing)
	}
	typed := make(chan struct{})
	go func() {
		defer close(typed)
		for _, c := range codes {
			select {
			case <-ctx.Done():
				return
			case <-time.After(keystrokeDelay):
			}
			if !m.I8042.TypeScancodes(c) {
				log.Printf("ps2d: keyboard is not scanning, dropped %02X", c)
			}
		}
	}()

	s := newSession(ctrl, out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.IRQ.Ready():
			m.IRQ.Acknowledge()
			if err := s.drain(); err != nil {
				return err
			}
		case <-typed:
			return s.drain()
		}
	}
}
