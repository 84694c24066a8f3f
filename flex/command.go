package flex

import "strings"

// Opcode is a fixed instrument command mnemonic with a documented argument
// and response grammar.
type Opcode string

const (
	// OpCN enables the specified channels, or all channels when none are given.
	OpCN Opcode = "CN"
	// OpCL disables the specified channels, or all channels when none are given.
	OpCL Opcode = "CL"
	// OpAIT configures the integration time of an A/D converter.
	OpAIT Opcode = "AIT"
	// OpAZ enables or disables autozero of the high-resolution ADC.
	OpAZ Opcode = "AZ"
	// OpCAL performs self-calibration and returns the result code.
	OpCAL Opcode = "*CAL?"
	// OpERRX reads and removes one error from the head of the error queue.
	OpERRX Opcode = "ERRX?"
	// OpUNT queries the module inventory of the mainframe.
	OpUNT Opcode = "UNT?"
	// OpLRN reads back an instrument setting identified by an item number.
	OpLRN Opcode = "LRN?"
	// OpRST resets the instrument. No response is returned and the error
	// queue is not cleared.
	OpRST Opcode = "*RST"
	// OpSTB queries the status byte.
	OpSTB Opcode = "*STB?"
)

// Command is an immutable, fully validated instrument command. The zero
// value is not a usable command; commands are produced by a Builder.
type Command struct {
	opcode Opcode
	args   []string
}

func newCommand(opcode Opcode, args ...string) Command {
	return Command{opcode: opcode, args: args}
}

// Opcode returns the command mnemonic.
func (c Command) Opcode() Opcode {
	return c.opcode
}

// String renders the wire representation of the command: the opcode,
// followed by a single space and the comma-separated argument list when any
// arguments are present. Omitted optional arguments are elided entirely,
// never rendered as empty placeholders.
func (c Command) String() string {
	if len(c.args) == 0 {
		return string(c.opcode)
	}
	return string(c.opcode) + " " + strings.Join(c.args, ",")
}
