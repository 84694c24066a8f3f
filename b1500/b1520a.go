package b1500

// B1520A is the multi-frequency capacitance measurement unit (MFCMU). It
// owns a single channel whose number equals its slot number.
type B1520A struct {
	baseModule
}

var _ Module = (*B1520A)(nil)

func newB1520A(slot int) Module {
	return &B1520A{baseModule{slot: slot, channels: []int{slot}}}
}

// Model returns "B1520A".
func (m *B1520A) Model() string {
	return "B1520A"
}

// Kind returns KindCMU.
func (m *B1520A) Kind() ModuleKind {
	return KindCMU
}
