package ps2

import "strings"

// StatusFlags is the status register at 0x64. Always re-read it; never keep
// a copy across polls.
type StatusFlags uint8

const (
	StatusOutputFull       StatusFlags = 1 << 0 // Byte waiting at 0x60
	StatusInputFull        StatusFlags = 1 << 1 // Controller still busy with our last write
	StatusSystem           StatusFlags = 1 << 2
	StatusCommand          StatusFlags = 1 << 3 // Last write was a command, not data
	StatusKeyboardLock     StatusFlags = 1 << 4 // Chipset specific
	StatusSecondOutputFull StatusFlags = 1 << 5 // Chipset specific: pending byte is from the mouse
	StatusTimeout          StatusFlags = 1 << 6
	StatusParity           StatusFlags = 1 << 7
)

var statusNames = [8]string{
	"OUTPUT_FULL", "INPUT_FULL", "SYSTEM", "COMMAND",
	"KEYBOARD_LOCK", "SECOND_OUTPUT_FULL", "TIME_OUT", "PARITY",
}

// Has reports whether every bit of flag is set.
func (s StatusFlags) Has(flag StatusFlags) bool { return s&flag == flag }

func (s StatusFlags) String() string { return bitNames(uint8(s), &statusNames) }

// ConfigFlags is the controller configuration byte. It is read once, edited
// in memory and written back whole.
type ConfigFlags uint8

const (
	ConfigFirstInterrupt  ConfigFlags = 1 << 0
	ConfigSecondInterrupt ConfigFlags = 1 << 1
	ConfigPostPassed      ConfigFlags = 1 << 2
	ConfigReserved3       ConfigFlags = 1 << 3 // Must be zero
	ConfigFirstDisabled   ConfigFlags = 1 << 4
	ConfigSecondDisabled  ConfigFlags = 1 << 5
	ConfigFirstTranslate  ConfigFlags = 1 << 6
	ConfigReserved7       ConfigFlags = 1 << 7 // Must be zero
)

var configNames = [8]string{
	"FIRST_INTERRUPT", "SECOND_INTERRUPT", "POST_PASSED", "CONFIG_RESERVED_3",
	"FIRST_DISABLED", "SECOND_DISABLED", "FIRST_TRANSLATE", "CONFIG_RESERVED_7",
}

func (c ConfigFlags) Has(flag ConfigFlags) bool { return c&flag == flag }

// Set returns c with flag set.
func (c ConfigFlags) Set(flag ConfigFlags) ConfigFlags { return c | flag }

// Clear returns c with flag cleared.
func (c ConfigFlags) Clear(flag ConfigFlags) ConfigFlags { return c &^ flag }

func (c ConfigFlags) String() string { return bitNames(uint8(c), &configNames) }

func bitNames(v uint8, names *[8]string) string {
	if v == 0 {
		return "(empty)"
	}
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " | ")
}
