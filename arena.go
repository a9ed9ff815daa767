package grapple

import (
	"fmt"
	"sort"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Gravity in world units per second squared.
const Gravity = 800.0

var worldBounds = Bounds{
	Min: mgl32.Vec3{-4096, -4096, 0},
	Max: mgl32.Vec3{4096, 4096, 4096},
}

// Arena is an in-memory Host: it keeps player bodies, wire entities and
// console variables, and moves the bodies as an ecs system.
type Arena struct {
	Bounds  Bounds
	Gravity float32

	// SpawnFilter, when set, can veto wire spawns.
	SpawnFilter func(SpawnWire) error

	players []*Player
	wires   map[WireID]*Wire
	cvars   map[string]float32
}

func NewArena() *Arena {
	return &Arena{
		Bounds:  worldBounds,
		Gravity: Gravity,
		wires:   map[WireID]*Wire{},
		cvars: map[string]float32{
			CvarRoundRestartDelay: 7,
			CvarPingCooldown:      1,
		},
	}
}

// Connect places a new player in the lowest free slot.
func (a *Arena) Connect(name string, bot bool, pos mgl32.Vec3) *Player {
	slot := len(a.players)
	for i, p := range a.players {
		if p == nil {
			slot = i
			break
		}
	}
	p := &Player{
		BasicEntity: ecs.NewBasic(),
		Slot:        Slot(slot),
		Name:        name,
		Bot:         bot,
		Alive:       true,
		HasBody:     true,
		Pos:         pos,
	}
	if slot == len(a.players) {
		a.players = append(a.players, p)
	} else {
		a.players[slot] = p
	}
	return p
}

// Get returns the player entity in slot.
func (a *Arena) Get(slot Slot) (*Player, bool) {
	if slot < 0 || int(slot) >= len(a.players) || a.players[slot] == nil {
		return nil, false
	}
	return a.players[slot], true
}

// Entity returns the ecs entity of the player in slot.
func (a *Arena) Entity(slot Slot) (*ecs.BasicEntity, bool) {
	p, ok := a.Get(slot)
	if !ok {
		return nil, false
	}
	return &p.BasicEntity, true
}

func (a *Arena) Players() []Slot {
	slots := make([]Slot, 0, len(a.players))
	for _, p := range a.players {
		if p != nil {
			slots = append(slots, p.Slot)
		}
	}
	return slots
}

func (a *Arena) Player(slot Slot) (PlayerState, bool) {
	p, ok := a.Get(slot)
	if !ok {
		return PlayerState{}, false
	}
	return p.State(), true
}

func (a *Arena) SetVelocity(slot Slot, vel mgl32.Vec3) error {
	p, ok := a.Get(slot)
	if !ok {
		return fmt.Errorf("slot %d: %w", slot, ErrUnknownSlot)
	}
	p.Vel = vel
	return nil
}

func (a *Arena) SpawnWire(w SpawnWire) error {
	if a.SpawnFilter != nil {
		if err := a.SpawnFilter(w); err != nil {
			return err
		}
	}
	if _, ok := a.wires[w.Wire]; ok {
		return fmt.Errorf("wire %s already exists", w.Wire)
	}
	a.wires[w.Wire] = &Wire{
		ID:     w.Wire,
		Owner:  w.Slot,
		Origin: w.Origin,
		End:    w.End,
		Color:  w.Color,
		Width:  w.Width,
	}
	return nil
}

func (a *Arena) MoveWire(id WireID, origin mgl32.Vec3) error {
	w, ok := a.wires[id]
	if !ok {
		return fmt.Errorf("wire %s not found", id)
	}
	w.Origin = origin
	return nil
}

func (a *Arena) RemoveWire(id WireID) error {
	if _, ok := a.wires[id]; !ok {
		return fmt.Errorf("wire %s not found", id)
	}
	delete(a.wires, id)
	return nil
}

// Wires returns the live wires ordered by owner slot.
func (a *Arena) Wires() []*Wire {
	out := make([]*Wire, 0, len(a.wires))
	for _, w := range a.wires {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Owner < out[j].Owner })
	return out
}

func (a *Arena) Float(name string) (float32, bool) {
	v, ok := a.cvars[name]
	return v, ok
}

func (a *Arena) SetFloat(name string, v float32) bool {
	if _, ok := a.cvars[name]; !ok {
		return false
	}
	a.cvars[name] = v
	return true
}

// DefineFloat adds or overwrites a console variable.
func (a *Arena) DefineFloat(name string, v float32) {
	a.cvars[name] = v
}

// DeleteFloat removes a console variable, as on hosts that do not define it.
func (a *Arena) DeleteFloat(name string) {
	delete(a.cvars, name)
}

// Update moves every body one step.
func (a *Arena) Update(dt float32) {
	for _, p := range a.players {
		if p != nil {
			p.Update(dt, a.Gravity, a.Bounds)
		}
	}
}

// Remove drops the player owning the entity.
func (a *Arena) Remove(basic ecs.BasicEntity) {
	for i, p := range a.players {
		if p != nil && p.ID() == basic.ID() {
			a.players[i] = nil
			return
		}
	}
}

func (*Arena) Priority() int { return 0 }
