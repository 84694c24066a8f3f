package b1500

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-b1500/internal/util"
)

// Registry maps slots, channels and module kinds to the modules installed
// in the mainframe. It is populated once during discovery, then frozen;
// after the freeze it is read-only and safe for concurrent readers.
type Registry struct {
	bySlot    *xsync.MapOf[int, Module]
	byChannel *xsync.MapOf[int, Module]
	byKind    map[ModuleKind][]Module
	frozen    atomic.Bool
}

func newRegistry() *Registry {
	return &Registry{
		bySlot:    xsync.NewMapOf[int, Module](),
		byChannel: xsync.NewMapOf[int, Module](),
		byKind:    make(map[ModuleKind][]Module),
	}
}

// add registers a module under its slot, channels and kind. It fails after
// the registry has been frozen or when the slot is already occupied.
func (r *Registry) add(module Module) error {
	if r.frozen.Load() {
		return fmt.Errorf("registry is frozen, cannot add module %s in slot %d", module.Model(), module.SlotNr())
	}
	if _, loaded := r.bySlot.LoadOrStore(module.SlotNr(), module); loaded {
		return fmt.Errorf("slot %d already occupied", module.SlotNr())
	}

	for _, ch := range module.Channels() {
		r.byChannel.Store(ch, module)
	}
	r.byKind[module.Kind()] = append(r.byKind[module.Kind()], module)

	return nil
}

// freeze marks the end of discovery. Later add calls fail.
func (r *Registry) freeze() {
	r.frozen.Store(true)
}

// BySlot returns the module installed in the given slot.
func (r *Registry) BySlot(slot int) (Module, bool) {
	return r.bySlot.Load(slot)
}

// ByChannel returns the module owning the given channel.
func (r *Registry) ByChannel(channel int) (Module, bool) {
	return r.byChannel.Load(channel)
}

// ByKind returns the modules of the given kind, in slot order.
func (r *Registry) ByKind(kind ModuleKind) []Module {
	modules := util.CloneSlice(r.byKind[kind], 0)
	sort.Slice(modules, func(i, j int) bool { return modules[i].SlotNr() < modules[j].SlotNr() })
	return modules
}

// Modules returns all registered modules, in slot order.
func (r *Registry) Modules() []Module {
	modules := make([]Module, 0, r.bySlot.Size())
	r.bySlot.Range(func(_ int, module Module) bool {
		modules = append(modules, module)
		return true
	})
	sort.Slice(modules, func(i, j int) bool { return modules[i].SlotNr() < modules[j].SlotNr() })
	return modules
}

// Channels returns all channel numbers owned by registered modules, in
// ascending order.
func (r *Registry) Channels() []int {
	channels := make([]int, 0, r.byChannel.Size())
	r.byChannel.Range(func(ch int, _ Module) bool {
		channels = append(channels, ch)
		return true
	})
	sort.Ints(channels)
	return channels
}

// Size returns the number of registered modules.
func (r *Registry) Size() int {
	return r.bySlot.Size()
}
