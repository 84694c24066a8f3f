package b1500

import "github.com/arloliu/go-b1500/internal/util"

// ModuleKind classifies the measurement modules that can occupy a
// mainframe slot.
type ModuleKind int

const (
	// KindSMU is a source/monitor unit.
	KindSMU ModuleKind = iota
	// KindCMU is a capacitance measurement unit.
	KindCMU
	// KindWGFMU is a waveform generator / fast measurement unit.
	KindWGFMU
)

// String returns the human-readable name of the module kind.
func (k ModuleKind) String() string {
	switch k {
	case KindSMU:
		return "SMU"
	case KindCMU:
		return "CMU"
	case KindWGFMU:
		return "WGFMU"
	default:
		return "unknown"
	}
}

// Module is a pluggable measurement unit occupying one mainframe slot and
// owning one or more channels. Modules are created during discovery and
// immutable afterwards.
type Module interface {
	// Model returns the model name reported by the module inventory query.
	Model() string

	// Kind returns the module classification.
	Kind() ModuleKind

	// SlotNr returns the slot the module occupies.
	SlotNr() int

	// Channels returns the channel numbers owned by the module.
	Channels() []int
}

type baseModule struct {
	slot     int
	channels []int
}

func (m *baseModule) SlotNr() int {
	return m.slot
}

func (m *baseModule) Channels() []int {
	return util.CloneSlice(m.channels, 0)
}
