package ps2

// Mouse settings applied during Init.
const (
	mouseResolution = 3   // 8 counts/mm, the maximum
	mouseSampleRate = 200 // Reports per second, the maximum
)

// extraPacketRates unlocks the scroll-wheel (4-byte packet) mode on
// IntelliMouse compatible devices when sent as consecutive sample rates.
var extraPacketRates = [...]byte{200, 100, 80}

func (c *Controller) initMouse() (bool, error) {
	// Enable second device
	if err := c.command(EnableSecond); err != nil {
		return false, err
	}
	c.flush("enable second")

	_, err := c.retry("mouse reset", c.opts.Retries, func(x *Controller) (byte, error) {
		x.flush("mouse before reset")

		b, err := x.mouseCommand(MouseReset)
		if err != nil {
			return 0, err
		}
		if b != ResponseAck {
			x.logf("mouse failed to reset: %02X", b)
			return 0, ErrCommandRetry
		}
		if b, err = x.read(); err != nil {
			return 0, err
		}
		if b != ResponseSelfTestPassed {
			x.logf("mouse failed self test 1: %02X", b)
			return 0, ErrCommandRetry
		}
		if b, err = x.read(); err != nil {
			return 0, err
		}
		if b != 0x00 {
			x.logf("mouse failed self test 2: %02X", b)
			return 0, ErrCommandRetry
		}

		x.flush("mouse after reset")
		return b, nil
	})
	if err != nil {
		return false, err
	}

	b, err := c.mouseCommand(MouseSetDefaults)
	if err != nil {
		return false, err
	}
	if b != ResponseAck {
		c.logf("mouse failed to set defaults: %02X", b)
	}
	c.flush("mouse defaults")

	// Enable extra packet on mouse
	for _, rate := range extraPacketRates {
		b, err := c.mouseCommandData(MouseSetSampleRate, rate)
		if err != nil {
			return false, err
		}
		if b != ResponseAck {
			c.logf("mouse failed to enable extra packet: sample rate %d: %02X", rate, b)
			break
		}
	}
	c.flush("enable extra mouse packet")

	b, err = c.mouseCommand(MouseGetDeviceID)
	if err != nil {
		return false, err
	}
	extra := false
	if b == ResponseAck {
		id, err := c.read()
		if err != nil {
			return false, err
		}
		extra = id == MouseIDExtended
	} else {
		c.logf("mouse failed to get device id: %02X", b)
	}
	c.flush("get device id")

	if b, err = c.mouseCommandData(MouseSetResolution, mouseResolution); err != nil {
		return false, err
	}
	if b != ResponseAck {
		c.logf("mouse failed to set resolution to %d: %02X", mouseResolution, b)
	}
	c.flush("set resolution")

	if b, err = c.mouseCommand(MouseSetScaling1To1); err != nil {
		return false, err
	}
	if b != ResponseAck {
		c.logf("mouse failed to set scaling: %02X", b)
	}
	c.flush("set scaling")

	if b, err = c.mouseCommandData(MouseSetSampleRate, mouseSampleRate); err != nil {
		return false, err
	}
	if b != ResponseAck {
		c.logf("mouse failed to set sample rate to %d: %02X", mouseSampleRate, b)
	}
	c.flush("set sample rate")

	if b, err = c.mouseCommand(MouseStatusRequest); err != nil {
		return false, err
	}
	if b != ResponseAck {
		c.logf("mouse failed to request status: %02X", b)
	} else {
		var status [3]byte
		for i := range status {
			if status[i], err = c.read(); err != nil {
				return false, err
			}
		}
		c.logf("mouse status %#x resolution %#x sample rate %#x", status[0], status[1], status[2])
	}

	return extra, nil
}
