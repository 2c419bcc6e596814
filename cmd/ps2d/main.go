// Command ps2d initializes a PS/2 controller and prints what is typed on
// the keyboard as ASCII.
//
// With -backend=devport it drives the real controller through /dev/port
// (root or CAP_SYS_RAWIO). With -backend=emulated it drives an emulated
// controller and types the -type text into it.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jacobsa/go-serial/serial"

	"example.com/ps2hal/core_engine/input"
	"example.com/ps2hal/core_engine/portio"
	"example.com/ps2hal/core_engine/ps2"
)

var BACKEND = flag.String("backend", "emulated", "register access: devport or emulated")
var DEVPORT = flag.String("devport", portio.DevPortPath, "port space device used by -backend=devport")
var COUNT = flag.Int("count", 1000, "stop after receiving this many bytes (0 means no limit)")
var TYPE = flag.String("type", "Hello, PS/2!\n", "text typed into the emulated keyboard")
var STRICT = flag.Bool("strict", false, "fail Init on any unexpected keyboard answer")
var DEBUG = flag.Bool("debug", false, "log every byte exchanged with the controller")
var READ_TIMEOUT = flag.Duration("read-timeout", ps2.DefaultReadTimeout, "how long to wait for a byte from the controller")
var WRITE_TIMEOUT = flag.Duration("write-timeout", ps2.DefaultWriteTimeout, "how long to wait for the controller to accept a byte")
var POLL = flag.Duration("poll", time.Millisecond, "idle interval between polls with -backend=devport")
var SERIAL = flag.String("serial", "", "also forward translated ASCII to this tty")
var BAUD = flag.Uint("baud", 115200, "baud rate for -serial")

// errCountReached ends the receive loop once -count bytes have been seen.
var errCountReached = errors.New("count reached")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var out io.Writer = os.Stdout
	if *SERIAL != "" {
		options := serial.OpenOptions{
			PortName:        *SERIAL,
			BaudRate:        *BAUD,
			DataBits:        8,
			StopBits:        1,
			MinimumReadSize: 1,
		}
		port, err := serial.Open(options)
		if err != nil {
			log.Fatalf("serial.Open: %v", err)
		}
		defer port.Close()
		out = io.MultiWriter(os.Stdout, port)
	}

	opts := ps2.DefaultOptions()
	opts.ReadTimeout = *READ_TIMEOUT
	opts.WriteTimeout = *WRITE_TIMEOUT
	opts.Strict = *STRICT
	opts.Debug = *DEBUG

	var err error
	switch *BACKEND {
	case "devport":
		err = runDevPort(ctx, opts, out)
	case "emulated":
		err = runEmulated(ctx, opts, out)
	default:
		log.Fatalf("unknown backend %q (want devport or emulated)", *BACKEND)
	}
	if err != nil && !errors.Is(err, errCountReached) && !errors.Is(err, context.Canceled) {
		log.Fatalf("ps2d: %v", err)
	}
}

// session turns received bytes into ASCII on out.
type session struct {
	ctrl     *ps2.Controller
	tr       *input.Translator
	out      io.Writer
	received int
}

func newSession(ctrl *ps2.Controller, out io.Writer) *session {
	return &session{ctrl: ctrl, tr: input.NewTranslator(), out: out}
}

// drain handles every byte currently waiting in the controller.
func (s *session) drain() error {
	for {
		p, ok := s.ctrl.Receive()
		if !ok {
			return nil
		}
		if err := s.handle(p); err != nil {
			return err
		}
	}
}

func (s *session) handle(p ps2.Packet) error {
	s.received++

	if p.FromMouse {
		if *DEBUG {
			log.Printf("mouse %02X", p.Data)
		}
	} else if ev, err := input.Decode(p.Data); err != nil {
		log.Printf("%v", err)
	} else if b, ok := s.tr.Translate(ev); ok {
		if _, err := s.out.Write(input.Bytes(b)); err != nil {
			return err
		}
	}

	if *COUNT > 0 && s.received >= *COUNT {
		return errCountReached
	}
	return nil
}
