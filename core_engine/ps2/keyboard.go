package ps2

import "fmt"

// scancodeSet is the set requested from the keyboard. The controller
// translates it to set 1 for the decoder.
const scancodeSet = 2

func (c *Controller) initKeyboard() error {
	// Enable first device
	if err := c.command(EnableFirst); err != nil {
		return err
	}
	c.flush("enable first")

	// Reset keyboard
	b, err := c.keyboardCommand(KeyboardReset)
	if err != nil {
		return err
	}
	if b == ResponseAck {
		b, err = c.read()
		if err != nil {
			b = 0
		}
		if b != ResponseSelfTestPassed {
			if err := c.mismatch("keyboard failed self test: %02X", b); err != nil {
				return err
			}
		}
	} else if err := c.mismatch("keyboard failed to reset: %02X", b); err != nil {
		return err
	}
	c.flush("keyboard reset")

	_, err = c.retry("keyboard defaults", c.opts.Retries, func(x *Controller) (byte, error) {
		x.flush("keyboard before defaults")

		// Set defaults and disable scanning
		b, err := x.keyboardCommand(KeyboardSetDefaultsDisable)
		if err != nil {
			return 0, err
		}
		if b != ResponseAck {
			x.logf("keyboard failed to set defaults: %02X", b)
			return 0, ErrCommandRetry
		}

		x.flush("keyboard after defaults")
		return b, nil
	})
	if err != nil {
		return err
	}

	b, err = c.keyboardCommandData(KeyboardScancodeSet, scancodeSet)
	if err != nil {
		return err
	}
	if b != ResponseAck {
		if err := c.mismatch("keyboard failed to set scancode set %d: %02X", scancodeSet, b); err != nil {
			return err
		}
	}
	c.flush("keyboard scancode")

	return nil
}

// mismatch logs an unexpected keyboard answer. In strict mode it also
// returns it as ErrInitFailed.
func (c *Controller) mismatch(format string, v ...any) error {
	c.logf(format, v...)
	if c.opts.Strict {
		return fmt.Errorf("%w: "+format, append([]any{ErrInitFailed}, v...)...)
	}
	return nil
}
