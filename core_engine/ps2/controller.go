package ps2

import "fmt"

// Init brings the controller and its devices from an unknown state to
// interrupt-driven reporting. It returns whether the mouse sends the 4-byte
// packet format.
//
// Only a failed controller self test or an exhausted retry on the keyboard
// path is returned as an error. A mouse that does not initialize is logged
// and left disabled.
func (c *Controller) Init() (bool, error) {
	c.mouseFound, c.mouseExtra = false, false

	c.flush("init start")

	// Disable devices
	if err := c.command(DisableFirst); err != nil {
		return false, err
	}
	if err := c.command(DisableSecond); err != nil {
		return false, err
	}
	c.flush("disable")

	// Disable clocks, interrupts and translation. The current configuration
	// is not read first: with interrupts enabled the OS handler could eat the
	// bytes we are waiting for.
	config := ConfigPostPassed | ConfigFirstDisabled | ConfigSecondDisabled
	c.logf("config set %v", config)
	if err := c.writeConfig(config); err != nil {
		return false, err
	}
	c.flush("disable interrupts")

	if err := c.command(TestController); err != nil {
		return false, err
	}
	res, err := c.read()
	if err != nil {
		return false, err
	}
	if res != ResponseControllerOK {
		return false, fmt.Errorf("%w: controller self test returned %02X", ErrInitFailed, res)
	}
	c.flush("test controller")

	if err := c.initKeyboard(); err != nil {
		return false, err
	}

	extra, err := c.initMouse()
	if err != nil {
		c.logf("failed to initialize mouse: %v", err)
	} else {
		c.mouseFound, c.mouseExtra = true, extra
	}

	// Enable keyboard data reporting. The raw path is used so a lost ack is
	// not retried: scanning is already live and the next byte may be a key.
	if _, err := c.keyboardCommandRaw(uint8(KeyboardEnableReporting)); err != nil {
		return false, err
	}

	if c.mouseFound {
		if _, err := c.mouseCommandRaw(uint8(MouseEnableReporting)); err != nil {
			return false, err
		}
	}

	// Enable clocks and interrupts
	config = config.Clear(ConfigFirstDisabled).Set(ConfigFirstTranslate | ConfigFirstInterrupt)
	if c.mouseFound {
		config = config.Clear(ConfigSecondDisabled).Set(ConfigSecondInterrupt)
	} else {
		config = config.Set(ConfigSecondDisabled).Clear(ConfigSecondInterrupt)
	}
	c.logf("config set %v", config)
	if err := c.writeConfig(config); err != nil {
		return false, err
	}

	c.flush("init finish")

	return c.mouseExtra, nil
}

// MouseFound reports whether the last Init set up a mouse.
func (c *Controller) MouseFound() bool { return c.mouseFound }

// MouseExtra reports whether the mouse found by the last Init sends 4-byte
// packets.
func (c *Controller) MouseExtra() bool { return c.mouseExtra }

// Config returns the configuration byte last written to the controller.
func (c *Controller) Config() ConfigFlags { return c.config }
