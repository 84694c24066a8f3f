package b1500

// B1530A is the waveform generator / fast measurement unit (WGFMU). It owns
// two sub-channels, numbered slot*100+1 and slot*100+2. The sub-channels
// are addressed through the dedicated WGFMU command set, not through the
// channel enable/disable commands of the mainframe.
type B1530A struct {
	baseModule
}

var _ Module = (*B1530A)(nil)

func newB1530A(slot int) Module {
	return &B1530A{baseModule{slot: slot, channels: []int{slot*100 + 1, slot*100 + 2}}}
}

// Model returns "B1530A".
func (m *B1530A) Model() string {
	return "B1530A"
}

// Kind returns KindWGFMU.
func (m *B1530A) Kind() ModuleKind {
	return KindWGFMU
}
