// core_engine/devices/i8042_constants.go
package devices

// Keyboard Controller Port Constants (8042 style)
const (
	KEYBOARD_PORT_DATA   uint16 = 0x60 // Data Register (read/write)
	KEYBOARD_PORT_STATUS uint16 = 0x64 // Status Register (read) / Command Register (write)
)

// IRQ lines driven by the controller
const (
	KEYBOARD_IRQ uint8 = 1  // First port
	MOUSE_IRQ    uint8 = 12 // Second port (Slave IRQ4)
)

// Status register bits
const (
	I8042_STATUS_OUTPUT_FULL        byte = 0x01 // Data waiting at 0x60
	I8042_STATUS_INPUT_FULL         byte = 0x02 // Controller has not consumed the last write
	I8042_STATUS_SYSTEM             byte = 0x04 // Mirrors the POST-passed config bit
	I8042_STATUS_COMMAND            byte = 0x08 // Last write went to 0x64
	I8042_STATUS_SECOND_OUTPUT_FULL byte = 0x20 // Pending byte came from the second port
)

// Configuration ("command") byte bits
const (
	I8042_CONFIG_FIRST_INTERRUPT  byte = 0x01
	I8042_CONFIG_SECOND_INTERRUPT byte = 0x02
	I8042_CONFIG_POST_PASSED      byte = 0x04
	I8042_CONFIG_FIRST_DISABLED   byte = 0x10
	I8042_CONFIG_SECOND_DISABLED  byte = 0x20
	I8042_CONFIG_FIRST_TRANSLATE  byte = 0x40
)

// Controller commands (written to 0x64)
const (
	I8042_CMD_READ_CONFIG     byte = 0x20
	I8042_CMD_WRITE_CONFIG    byte = 0x60
	I8042_CMD_DISABLE_SECOND  byte = 0xA7
	I8042_CMD_ENABLE_SECOND   byte = 0xA8
	I8042_CMD_TEST_SECOND     byte = 0xA9
	I8042_CMD_TEST_CONTROLLER byte = 0xAA
	I8042_CMD_TEST_FIRST      byte = 0xAB
	I8042_CMD_DIAGNOSTIC      byte = 0xAC
	I8042_CMD_DISABLE_FIRST   byte = 0xAD
	I8042_CMD_ENABLE_FIRST    byte = 0xAE
	I8042_CMD_WRITE_SECOND    byte = 0xD4
)

// Device commands (written to 0x60, routed to a port)
const (
	PS2_CMD_SET_SCALING_1_1  byte = 0xE6 // Mouse
	PS2_CMD_SET_SCALING_2_1  byte = 0xE7 // Mouse
	PS2_CMD_SET_RESOLUTION   byte = 0xE8 // Mouse, takes a data byte
	PS2_CMD_STATUS_REQUEST   byte = 0xE9 // Mouse
	PS2_CMD_ECHO             byte = 0xEE // Keyboard
	PS2_CMD_SCANCODE_SET     byte = 0xF0 // Keyboard, takes a data byte
	PS2_CMD_IDENTIFY         byte = 0xF2
	PS2_CMD_SET_SAMPLE_RATE  byte = 0xF3 // Mouse, takes a data byte
	PS2_CMD_ENABLE_REPORTING byte = 0xF4
	PS2_CMD_DEFAULTS_DISABLE byte = 0xF5
	PS2_CMD_SET_DEFAULTS     byte = 0xF6
	PS2_CMD_RESET            byte = 0xFF
)

// Device and controller responses
const (
	PS2_RESPONSE_ACK            byte = 0xFA
	PS2_RESPONSE_RESEND         byte = 0xFE
	PS2_RESPONSE_SELF_TEST_OK   byte = 0xAA
	PS2_RESPONSE_SELF_TEST_FAIL byte = 0xFC
	PS2_RESPONSE_ECHO           byte = 0xEE
	I8042_RESPONSE_TEST_OK      byte = 0x55
	I8042_RESPONSE_PORT_OK      byte = 0x00
	PS2_MOUSE_ID_STANDARD       byte = 0x00
	PS2_MOUSE_ID_SCROLL         byte = 0x03
	PS2_KEYBOARD_ID_LOW         byte = 0xAB
	PS2_KEYBOARD_ID_HIGH        byte = 0x83
	PS2_DEFAULT_SCANCODE_SET    byte = 2
	PS2_DEFAULT_SAMPLE_RATE     byte = 100
	PS2_DEFAULT_RESOLUTION      byte = 2
	PS2_MOUSE_STATUS_SCALING_2  byte = 0x10
	PS2_MOUSE_STATUS_REPORTING  byte = 0x20
)
