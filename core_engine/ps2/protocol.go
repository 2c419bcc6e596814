// Package ps2 drives a dual-port PS/2 (i8042) controller: it brings the
// controller, keyboard and mouse to a known configuration and hands out the
// bytes they report afterwards.
//
// A Controller owns its ports. It is not safe for concurrent use; call it
// from one execution context at a time.
package ps2

import (
	"fmt"

	"example.com/ps2hal/core_engine/portio"
)

// Controller talks the command/response protocol of the controller and its
// two devices over the data and status/command registers.
type Controller struct {
	io   portio.PortIO
	opts Options

	config     ConfigFlags // Last configuration byte written
	mouseFound bool
	mouseExtra bool
}

// NewController returns a driver for the controller behind io.
func NewController(io portio.PortIO, opts Options) *Controller {
	return &Controller{
		io:   io,
		opts: opts.withDefaults(),
	}
}

func (c *Controller) logf(format string, v ...any) {
	c.opts.Logger.Printf("ps2d: "+format, v...)
}

func (c *Controller) debugf(format string, v ...any) {
	if c.opts.Debug {
		c.logf(format, v...)
	}
}

func (c *Controller) status() StatusFlags {
	return StatusFlags(c.io.Inb(portio.StatusPort))
}

// waitRead polls until the output buffer is full.
func (c *Controller) waitRead() error {
	deadline := c.opts.Clock.Now().Add(c.opts.ReadTimeout)
	for {
		if c.status().Has(StatusOutputFull) {
			return nil
		}
		if !c.opts.Clock.Now().Before(deadline) {
			return ErrReadTimeout
		}
		c.opts.Pause()
	}
}

// waitWrite polls until the input buffer is empty.
func (c *Controller) waitWrite() error {
	deadline := c.opts.Clock.Now().Add(c.opts.WriteTimeout)
	for {
		if !c.status().Has(StatusInputFull) {
			return nil
		}
		if !c.opts.Clock.Now().Before(deadline) {
			return ErrWriteTimeout
		}
		c.opts.Pause()
	}
}

// flush drains stray bytes such as late acknowledgements that would
// otherwise be taken as the answer to the next command.
func (c *Controller) flush(label string) {
	for i := 0; i < c.opts.FlushIterations; i++ {
		if c.status().Has(StatusOutputFull) {
			c.logf("flush %s: %X", label, c.io.Inb(portio.DataPort))
		}
		c.opts.Pause()
	}
}

func (c *Controller) command(cmd ControllerCommand) error {
	if err := c.waitWrite(); err != nil {
		return err
	}
	c.debugf("command %v", cmd)
	c.io.Outb(portio.CommandPort, uint8(cmd))
	return nil
}

func (c *Controller) read() (byte, error) {
	if err := c.waitRead(); err != nil {
		return 0, err
	}
	b := c.io.Inb(portio.DataPort)
	c.debugf("read %02X", b)
	return b, nil
}

func (c *Controller) write(b byte) error {
	if err := c.waitWrite(); err != nil {
		return err
	}
	c.debugf("write %02X", b)
	c.io.Outb(portio.DataPort, b)
	return nil
}

// retry runs op up to attempts times and returns its first success. Every
// failure is logged; when all attempts fail the error wraps ErrNoMoreTries.
func (c *Controller) retry(label string, attempts int, op func(*Controller) (byte, error)) (byte, error) {
	c.logf("%s", label)
	var lastErr error
	for i := 0; i < attempts; i++ {
		b, err := op(c)
		if err == nil {
			return b, nil
		}
		c.logf("%s: retry %d/%d: %v", label, i+1, attempts, err)
		lastErr = err
	}
	if lastErr == nil {
		return 0, fmt.Errorf("%s: %w", label, ErrNoMoreTries)
	}
	return 0, fmt.Errorf("%s: %w (last error: %v)", label, ErrNoMoreTries, lastErr)
}

// readConfig reads the controller configuration byte.
func (c *Controller) readConfig() (ConfigFlags, error) {
	b, err := c.retry("read config", c.opts.Retries, func(x *Controller) (byte, error) {
		if err := x.command(ReadConfig); err != nil {
			return 0, err
		}
		return x.read()
	})
	return ConfigFlags(b), err
}

// writeConfig writes the whole configuration byte.
func (c *Controller) writeConfig(config ConfigFlags) error {
	_, err := c.retry("write config", c.opts.Retries, func(x *Controller) (byte, error) {
		if err := x.command(WriteConfig); err != nil {
			return 0, err
		}
		return 0, x.write(uint8(config))
	})
	if err != nil {
		return err
	}
	c.config = config
	return nil
}

// keyboardCommandRaw sends one byte to the keyboard and returns its answer
// without retrying. 0xFE becomes ErrCommandRetry; callers judge any other
// value.
func (c *Controller) keyboardCommandRaw(b byte) (byte, error) {
	if err := c.write(b); err != nil {
		return 0, err
	}
	res, err := c.read()
	if err != nil {
		return 0, err
	}
	if res == ResponseResend {
		return 0, ErrCommandRetry
	}
	return res, nil
}

func (c *Controller) keyboardCommand(cmd KeyboardCommand) (byte, error) {
	return c.retry(fmt.Sprintf("keyboard command %v", cmd), c.opts.Retries, func(x *Controller) (byte, error) {
		return x.keyboardCommandRaw(uint8(cmd))
	})
}

// keyboardCommandData sends cmd and, once it is acknowledged, its argument.
// A non-ack answer to cmd is returned as is.
func (c *Controller) keyboardCommandData(cmd KeyboardCommandWithData, data byte) (byte, error) {
	label := fmt.Sprintf("keyboard command %v %#x", cmd, data)
	return c.retry(label, c.opts.Retries, func(x *Controller) (byte, error) {
		res, err := x.keyboardCommandRaw(uint8(cmd))
		if err != nil {
			return 0, err
		}
		if res != ResponseAck {
			return res, nil
		}
		if err := x.write(data); err != nil {
			return 0, err
		}
		return x.read()
	})
}

// mouseCommandRaw is keyboardCommandRaw for the second port: the byte is
// preceded by WriteSecond since both devices share the data register.
func (c *Controller) mouseCommandRaw(b byte) (byte, error) {
	if err := c.command(WriteSecond); err != nil {
		return 0, err
	}
	return c.keyboardCommandRaw(b)
}

func (c *Controller) mouseCommand(cmd MouseCommand) (byte, error) {
	return c.retry(fmt.Sprintf("mouse command %v", cmd), c.opts.Retries, func(x *Controller) (byte, error) {
		return x.mouseCommandRaw(uint8(cmd))
	})
}

func (c *Controller) mouseCommandData(cmd MouseCommandWithData, data byte) (byte, error) {
	label := fmt.Sprintf("mouse command %v %#x", cmd, data)
	return c.retry(label, c.opts.Retries, func(x *Controller) (byte, error) {
		res, err := x.mouseCommandRaw(uint8(cmd))
		if err != nil {
			return 0, err
		}
		if res != ResponseAck {
			return res, nil
		}
		if err := x.command(WriteSecond); err != nil {
			return 0, err
		}
		if err := x.write(data); err != nil {
			return 0, err
		}
		return x.read()
	})
}
