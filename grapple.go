package grapple

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrUnknownSlot = errors.New("grapple: slot not registered")

// Hook is a latched grapple. Target is fixed for the life of the hook; Wire is
// empty until the first tick after the attach spawns it.
type Hook struct {
	Target mgl32.Vec3
	Wire   WireID
}

// Grapple is one player's grapple state. A nil Hook is the idle state.
type Grapple struct {
	Slot Slot
	Hook *Hook
}

func (g *Grapple) Attached() bool { return g.Hook != nil }

// detach returns g to idle, emitting a RemoveWire for a spawned wire.
func (g *Grapple) detach(effects []Effect) []Effect {
	if g.Hook == nil {
		return effects
	}
	if g.Hook.Wire != "" {
		effects = append(effects, RemoveWire{Slot: g.Slot, Wire: g.Hook.Wire})
	}
	g.Hook = nil
	return effects
}

// Table holds grapple state for registered players, indexed by slot.
type Table struct {
	entries []*Grapple
	count   int
}

func NewTable() *Table {
	return &Table{}
}

// Register inserts an idle entry for slot, replacing any previous one. Effects
// are returned to clean up a wire that the replaced entry still owned.
func (t *Table) Register(slot Slot) []Effect {
	if slot < 0 {
		return nil
	}
	for int(slot) >= len(t.entries) {
		t.entries = append(t.entries, nil)
	}
	var effects []Effect
	if old := t.entries[slot]; old != nil {
		effects = old.detach(effects)
	} else {
		t.count++
	}
	t.entries[slot] = &Grapple{Slot: slot}
	return effects
}

// Unregister removes the entry for slot.
func (t *Table) Unregister(slot Slot) []Effect {
	g := t.Get(slot)
	if g == nil {
		return nil
	}
	effects := g.detach(nil)
	t.entries[slot] = nil
	t.count--
	return effects
}

// Get returns the entry for slot, or nil when the slot is not registered.
func (t *Table) Get(slot Slot) *Grapple {
	if slot < 0 || int(slot) >= len(t.entries) {
		return nil
	}
	return t.entries[slot]
}

func (t *Table) Len() int { return t.count }

// Each calls fn for every registered entry in slot order.
func (t *Table) Each(fn func(*Grapple)) {
	for _, g := range t.entries {
		if g != nil {
			fn(g)
		}
	}
}

// Attach latches slot onto target, detaching any previous hook first. An
// unregistered slot gets a fresh entry.
func (t *Table) Attach(slot Slot, target mgl32.Vec3) []Effect {
	g := t.Get(slot)
	var effects []Effect
	if g == nil {
		effects = t.Register(slot)
		g = t.Get(slot)
		if g == nil {
			return effects
		}
	}
	effects = g.detach(effects)
	g.Hook = &Hook{Target: target}
	return effects
}

// Detach returns slot to idle. Detaching an idle or unknown slot is a no-op.
func (t *Table) Detach(slot Slot) []Effect {
	g := t.Get(slot)
	if g == nil {
		return nil
	}
	return g.detach(nil)
}

// DetachAll returns every registered entry to idle.
func (t *Table) DetachAll() []Effect {
	var effects []Effect
	t.Each(func(g *Grapple) {
		effects = g.detach(effects)
	})
	return effects
}

// Forget clears the wire handle of slot's hook without emitting a removal, for
// wires the host never managed to spawn.
func (t *Table) Forget(slot Slot, wire WireID) error {
	g := t.Get(slot)
	if g == nil {
		return ErrUnknownSlot
	}
	if g.Hook != nil && g.Hook.Wire == wire {
		g.Hook.Wire = ""
	}
	return nil
}
