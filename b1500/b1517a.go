package b1500

// B1517A is the high-resolution source/monitor unit (HRSMU). It owns a
// single channel whose number equals its slot number.
type B1517A struct {
	baseModule
}

var _ Module = (*B1517A)(nil)

func newB1517A(slot int) Module {
	return &B1517A{baseModule{slot: slot, channels: []int{slot}}}
}

// Model returns "B1517A".
func (m *B1517A) Model() string {
	return "B1517A"
}

// Kind returns KindSMU.
func (m *B1517A) Kind() ModuleKind {
	return KindSMU
}
