package ps2

import "fmt"

// ControllerCommand is written to the command register (0x64).
type ControllerCommand uint8

const (
	ReadConfig     ControllerCommand = 0x20
	WriteConfig    ControllerCommand = 0x60
	DisableSecond  ControllerCommand = 0xA7
	EnableSecond   ControllerCommand = 0xA8
	TestSecond     ControllerCommand = 0xA9
	TestController ControllerCommand = 0xAA
	TestFirst      ControllerCommand = 0xAB
	Diagnostic     ControllerCommand = 0xAC
	DisableFirst   ControllerCommand = 0xAD
	EnableFirst    ControllerCommand = 0xAE
	WriteSecond    ControllerCommand = 0xD4 // Route the next data byte to the mouse
)

func (c ControllerCommand) String() string {
	switch c {
	case ReadConfig:
		return "ReadConfig"
	case WriteConfig:
		return "WriteConfig"
	case DisableSecond:
		return "DisableSecond"
	case EnableSecond:
		return "EnableSecond"
	case TestSecond:
		return "TestSecond"
	case TestController:
		return "TestController"
	case TestFirst:
		return "TestFirst"
	case Diagnostic:
		return "Diagnostic"
	case DisableFirst:
		return "DisableFirst"
	case EnableFirst:
		return "EnableFirst"
	case WriteSecond:
		return "WriteSecond"
	}
	return fmt.Sprintf("ControllerCommand(0x%02X)", uint8(c))
}

// KeyboardCommand is a one-byte command for the first-port device.
type KeyboardCommand uint8

const (
	KeyboardEnableReporting    KeyboardCommand = 0xF4
	KeyboardSetDefaultsDisable KeyboardCommand = 0xF5
	KeyboardSetDefaults        KeyboardCommand = 0xF6
	KeyboardReset              KeyboardCommand = 0xFF
)

func (c KeyboardCommand) String() string {
	switch c {
	case KeyboardEnableReporting:
		return "EnableReporting"
	case KeyboardSetDefaultsDisable:
		return "SetDefaultsDisable"
	case KeyboardSetDefaults:
		return "SetDefaults"
	case KeyboardReset:
		return "Reset"
	}
	return fmt.Sprintf("KeyboardCommand(0x%02X)", uint8(c))
}

// KeyboardCommandWithData takes one argument byte after the ack.
type KeyboardCommandWithData uint8

const (
	KeyboardScancodeSet KeyboardCommandWithData = 0xF0
)

func (c KeyboardCommandWithData) String() string {
	if c == KeyboardScancodeSet {
		return "ScancodeSet"
	}
	return fmt.Sprintf("KeyboardCommandWithData(0x%02X)", uint8(c))
}

// MouseCommand is a one-byte command for the second-port device.
type MouseCommand uint8

const (
	MouseSetScaling1To1     MouseCommand = 0xE6
	MouseSetScaling2To1     MouseCommand = 0xE7
	MouseStatusRequest      MouseCommand = 0xE9
	MouseGetDeviceID        MouseCommand = 0xF2
	MouseEnableReporting    MouseCommand = 0xF4
	MouseSetDefaultsDisable MouseCommand = 0xF5
	MouseSetDefaults        MouseCommand = 0xF6
	MouseReset              MouseCommand = 0xFF
)

func (c MouseCommand) String() string {
	switch c {
	case MouseSetScaling1To1:
		return "SetScaling1To1"
	case MouseSetScaling2To1:
		return "SetScaling2To1"
	case MouseStatusRequest:
		return "StatusRequest"
	case MouseGetDeviceID:
		return "GetDeviceId"
	case MouseEnableReporting:
		return "EnableReporting"
	case MouseSetDefaultsDisable:
		return "SetDefaultsDisable"
	case MouseSetDefaults:
		return "SetDefaults"
	case MouseReset:
		return "Reset"
	}
	return fmt.Sprintf("MouseCommand(0x%02X)", uint8(c))
}

// MouseCommandWithData takes one argument byte after the ack.
type MouseCommandWithData uint8

const (
	MouseSetResolution MouseCommandWithData = 0xE8
	MouseSetSampleRate MouseCommandWithData = 0xF3
)

func (c MouseCommandWithData) String() string {
	switch c {
	case MouseSetResolution:
		return "SetResolution"
	case MouseSetSampleRate:
		return "SetSampleRate"
	}
	return fmt.Sprintf("MouseCommandWithData(0x%02X)", uint8(c))
}

// Response bytes.
const (
	ResponseAck            byte = 0xFA
	ResponseResend         byte = 0xFE
	ResponseSelfTestPassed byte = 0xAA
	ResponseControllerOK   byte = 0x55
	MouseIDExtended        byte = 3 // Device ID of a mouse sending 4-byte packets
)
