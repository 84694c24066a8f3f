package flex

// ADCType identifies one of the two A/D converters of the mainframe.
// The enumeration value doubles as the segment index of that ADC in the
// integration time readback response.
type ADCType int

const (
	// ADCHighSpeed is the high-speed A/D converter.
	ADCHighSpeed ADCType = 0
	// ADCHighResolution is the high-resolution A/D converter.
	ADCHighResolution ADCType = 1
)

// String returns the human-readable name of the ADC type.
func (t ADCType) String() string {
	switch t {
	case ADCHighSpeed:
		return "high-speed"
	case ADCHighResolution:
		return "high-resolution"
	default:
		return "unknown"
	}
}

func (t ADCType) valid() bool {
	return t == ADCHighSpeed || t == ADCHighResolution
}

// ADCMode selects how the integration time of an ADC is determined.
type ADCMode int

const (
	// ADCModeAuto lets the instrument choose the integration time; the
	// coefficient multiplies the reference integration time.
	ADCModeAuto ADCMode = 0
	// ADCModeManual sets the number of averaging samples directly.
	ADCModeManual ADCMode = 1
	// ADCModeNPLC expresses integration time in power line cycles.
	ADCModeNPLC ADCMode = 2
)

// String returns the human-readable name of the ADC mode.
func (m ADCMode) String() string {
	switch m {
	case ADCModeAuto:
		return "auto"
	case ADCModeManual:
		return "manual"
	case ADCModeNPLC:
		return "nplc"
	default:
		return "unknown"
	}
}

func (m ADCMode) valid() bool {
	return m >= ADCModeAuto && m <= ADCModeNPLC
}

// Coefficient ranges per ADC mode (manual Table 4-21).
const (
	MinAutoCoeff = 1
	MaxAutoCoeff = 1023

	MinManualCoeff = 1
	MaxManualCoeff = 1023

	MinNPLCCoeff = 1
	MaxNPLCCoeff = 100
)

// Channel number range addressable by the channel control commands.
// Channel numbers coincide with the slot of the owning module.
const (
	MinChannel = 1
	MaxChannel = 10
)

// ERRXMode selects the format of the error queue read response.
type ERRXMode int

const (
	// ERRXModeCodeAndMessage returns both the error code and the error
	// message text. This is the instrument default.
	ERRXModeCodeAndMessage ERRXMode = 0
	// ERRXModeCodeOnly returns only the error code.
	ERRXModeCodeOnly ERRXMode = 1
)

func (m ERRXMode) valid() bool {
	return m == ERRXModeCodeAndMessage || m == ERRXModeCodeOnly
}

// UNTMode selects the detail level of the module inventory query.
type UNTMode int

const (
	// UNTModeModuleInfo reports the model name and revision of each slot.
	UNTModeModuleInfo UNTMode = 0
	// UNTModeModuleInfoAndFirmware additionally reports the firmware
	// revision of the mainframe.
	UNTModeModuleInfoAndFirmware UNTMode = 1
)

func (m UNTMode) valid() bool {
	return m == UNTModeModuleInfo || m == UNTModeModuleInfoAndFirmware
}

// SlotNr addresses a mainframe bay in the self-calibration query.
type SlotNr int

const (
	// SlotAll addresses all installed modules and the mainframe.
	SlotAll SlotNr = 0

	Slot1  SlotNr = 1
	Slot2  SlotNr = 2
	Slot3  SlotNr = 3
	Slot4  SlotNr = 4
	Slot5  SlotNr = 5
	Slot6  SlotNr = 6
	Slot7  SlotNr = 7
	Slot8  SlotNr = 8
	Slot9  SlotNr = 9
	Slot10 SlotNr = 10

	// SlotMainframe addresses the mainframe itself.
	SlotMainframe SlotNr = 11
)

func (s SlotNr) valid() bool {
	return s >= SlotAll && s <= SlotMainframe
}

// NumSlots is the number of module bays in the mainframe.
const NumSlots = 10

// LRNADCSettings is the learn query item number that reads back the
// integration time settings of both ADCs.
const LRNADCSettings = 55

// Learn query item number range.
const (
	MinLRNItem = 0
	MaxLRNItem = 110
)

// CALResult is the decoded outcome of a self-calibration query. The zero
// value means every addressed unit passed; a set bit identifies the unit
// that failed. Failed modules are disabled by the instrument.
type CALResult int

const (
	CALSlot1Failed  CALResult = 1 << 0
	CALSlot2Failed  CALResult = 1 << 1
	CALSlot3Failed  CALResult = 1 << 2
	CALSlot4Failed  CALResult = 1 << 3
	CALSlot5Failed  CALResult = 1 << 4
	CALSlot6Failed  CALResult = 1 << 5
	CALSlot7Failed  CALResult = 1 << 6
	CALSlot8Failed  CALResult = 1 << 7
	CALSlot9Failed  CALResult = 1 << 8
	CALSlot10Failed CALResult = 1 << 9

	// CALMainframeFailed is bit 11 of the result code; bit 10 is unused.
	CALMainframeFailed CALResult = 1 << 11
)

// calResultMax is the largest representable result code.
const calResultMax = 1<<12 - 1

// Passed reports whether every addressed unit passed calibration.
func (r CALResult) Passed() bool {
	return r == 0
}

// MainframeFailed reports whether the mainframe failed calibration.
func (r CALResult) MainframeFailed() bool {
	return r&CALMainframeFailed != 0
}

// FailedSlots returns the slot numbers of the modules that failed
// calibration, in ascending order.
func (r CALResult) FailedSlots() []int {
	var slots []int
	for slot := 1; slot <= NumSlots; slot++ {
		if r&(1<<(slot-1)) != 0 {
			slots = append(slots, slot)
		}
	}
	return slots
}
