package flex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-b1500/internal/util"
)

// Builder accumulates FLEX commands and renders them into a single message
// string. Commands appear in the message in the order they were added,
// joined by ';'.
//
// Argument validation happens when a command is added; the first validation
// error sticks and Message() reports it instead of producing a string. All
// builder methods return the builder itself to allow chaining:
//
//	msg, err := flex.NewBuilder().CN(1, 2).AZ(true).Message()
type Builder struct {
	cmds []Command
	err  error
}

// NewBuilder creates an empty command builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first validation error recorded by the builder, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Commands returns the commands accumulated so far.
func (b *Builder) Commands() []Command {
	return util.CloneSlice(b.cmds, 0)
}

// Message renders the accumulated commands into the final wire string.
// It fails when any command argument was invalid or when no command has
// been added.
func (b *Builder) Message() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if len(b.cmds) == 0 {
		return "", fmt.Errorf("%w: no command added", ErrInvalidArgument)
	}

	parts := make([]string, 0, len(b.cmds))
	for _, cmd := range b.cmds {
		parts = append(parts, cmd.String())
	}

	return strings.Join(parts, ";"), nil
}

func (b *Builder) add(cmd Command) *Builder {
	if b.err == nil {
		b.cmds = append(b.cmds, cmd)
	}
	return b
}

func (b *Builder) setErr(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// CN adds a channel enable command. When no channels are given, the command
// addresses all channels, which is the documented default of the bare
// opcode; the channel list is omitted from the rendered string.
func (b *Builder) CN(channels ...int) *Builder {
	return b.channelCmd(OpCN, channels)
}

// CL adds a channel disable command. When no channels are given, all
// channels are disabled.
func (b *Builder) CL(channels ...int) *Builder {
	return b.channelCmd(OpCL, channels)
}

func (b *Builder) channelCmd(opcode Opcode, channels []int) *Builder {
	for _, ch := range channels {
		if ch < MinChannel || ch > MaxChannel {
			return b.setErr(fmt.Errorf("%w: %s: channel number %d out of range [%d, %d]",
				ErrInvalidArgument, opcode, ch, MinChannel, MaxChannel))
		}
	}
	if len(channels) == 0 {
		return b.add(newCommand(opcode))
	}
	return b.add(newCommand(opcode, util.JoinInts(channels, ",")))
}

// AIT adds an ADC integration time command. The optional coefficient (at
// most one value) refines the selected mode; its documented range depends
// on the mode: 1 to 1023 in auto and manual mode, 1 to 100 in NPLC mode.
// When omitted the instrument applies its default coefficient.
func (b *Builder) AIT(adcType ADCType, mode ADCMode, coeff ...int) *Builder {
	if !adcType.valid() {
		return b.setErr(fmt.Errorf("%w: %s: unknown ADC type %d", ErrInvalidArgument, OpAIT, int(adcType)))
	}
	if !mode.valid() {
		return b.setErr(fmt.Errorf("%w: %s: unknown ADC mode %d", ErrInvalidArgument, OpAIT, int(mode)))
	}
	if len(coeff) > 1 {
		return b.setErr(fmt.Errorf("%w: %s: at most one coefficient, got %d", ErrInvalidArgument, OpAIT, len(coeff)))
	}

	args := []string{strconv.Itoa(int(adcType)), strconv.Itoa(int(mode))}
	if len(coeff) == 1 {
		n := coeff[0]
		minCoeff, maxCoeff := coeffRange(mode)
		if n < minCoeff || n > maxCoeff {
			return b.setErr(fmt.Errorf("%w: %s: coefficient %d out of range [%d, %d] for %s mode",
				ErrInvalidArgument, OpAIT, n, minCoeff, maxCoeff, mode))
		}
		args = append(args, strconv.Itoa(n))
	}

	return b.add(newCommand(OpAIT, args...))
}

func coeffRange(mode ADCMode) (int, int) {
	switch mode {
	case ADCModeNPLC:
		return MinNPLCCoeff, MaxNPLCCoeff
	case ADCModeAuto:
		return MinAutoCoeff, MaxAutoCoeff
	default:
		return MinManualCoeff, MaxManualCoeff
	}
}

// AZ adds an autozero command for the high-resolution ADC.
func (b *Builder) AZ(enable bool) *Builder {
	arg := "0"
	if enable {
		arg = "1"
	}
	return b.add(newCommand(OpAZ, arg))
}

// CALQuery adds a self-calibration query. The optional slot argument (at
// most one value) selects the unit to calibrate; when omitted, all modules
// and the mainframe are calibrated, and the slot argument is elided from
// the rendered string.
func (b *Builder) CALQuery(slot ...SlotNr) *Builder {
	if len(slot) > 1 {
		return b.setErr(fmt.Errorf("%w: %s: at most one slot, got %d", ErrInvalidArgument, OpCAL, len(slot)))
	}
	if len(slot) == 0 {
		return b.add(newCommand(OpCAL))
	}
	if !slot[0].valid() {
		return b.setErr(fmt.Errorf("%w: %s: slot number %d out of range [%d, %d]",
			ErrInvalidArgument, OpCAL, int(slot[0]), int(SlotAll), int(SlotMainframe)))
	}
	return b.add(newCommand(OpCAL, strconv.Itoa(int(slot[0]))))
}

// ERRXQuery adds an error queue read command. The optional mode argument
// (at most one value) selects the response format; when omitted the
// instrument returns both the error code and the error message.
func (b *Builder) ERRXQuery(mode ...ERRXMode) *Builder {
	if len(mode) > 1 {
		return b.setErr(fmt.Errorf("%w: %s: at most one mode, got %d", ErrInvalidArgument, OpERRX, len(mode)))
	}
	if len(mode) == 0 {
		return b.add(newCommand(OpERRX))
	}
	if !mode[0].valid() {
		return b.setErr(fmt.Errorf("%w: %s: unknown mode %d", ErrInvalidArgument, OpERRX, int(mode[0])))
	}
	return b.add(newCommand(OpERRX, strconv.Itoa(int(mode[0]))))
}

// UNTQuery adds a module inventory query.
func (b *Builder) UNTQuery(mode UNTMode) *Builder {
	if !mode.valid() {
		return b.setErr(fmt.Errorf("%w: %s: unknown mode %d", ErrInvalidArgument, OpUNT, int(mode)))
	}
	return b.add(newCommand(OpUNT, strconv.Itoa(int(mode))))
}

// LRNQuery adds a learn query that reads back the instrument setting
// identified by item. Use LRNADCSettings to read back the ADC integration
// time settings.
func (b *Builder) LRNQuery(item int) *Builder {
	if item < MinLRNItem || item > MaxLRNItem {
		return b.setErr(fmt.Errorf("%w: %s: item number %d out of range [%d, %d]",
			ErrInvalidArgument, OpLRN, item, MinLRNItem, MaxLRNItem))
	}
	return b.add(newCommand(OpLRN, strconv.Itoa(item)))
}

// RST adds an instrument reset command. The command expects no response
// and does not clear the error queue.
func (b *Builder) RST() *Builder {
	return b.add(newCommand(OpRST))
}

// STBQuery adds a status byte query.
func (b *Builder) STBQuery() *Builder {
	return b.add(newCommand(OpSTB))
}
