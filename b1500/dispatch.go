package b1500

import (
	"fmt"

	"github.com/arloliu/go-b1500/flex"
)

// moduleConstructor builds a module variant for the given slot.
type moduleConstructor func(slot int) Module

// moduleConstructors is the closed dispatch table from model name to module
// variant. Supporting a new module means adding an entry here; there is no
// generic fallback module.
var moduleConstructors = map[string]moduleConstructor{
	"B1517A": newB1517A,
	"B1520A": newB1520A,
	"B1530A": newB1530A,
}

// FromModelName creates the module variant matching the model name reported
// by the module inventory query. An unrecognized model name fails with
// flex.ErrUnsupportedModule.
func FromModelName(model string, slot int) (Module, error) {
	construct, ok := moduleConstructors[model]
	if !ok {
		return nil, fmt.Errorf("%w: model %q in slot %d", flex.ErrUnsupportedModule, model, slot)
	}
	return construct(slot), nil
}
