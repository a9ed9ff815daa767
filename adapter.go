package grapple

import (
	"errors"
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrWireSpawn = errors.New("grapple: wire spawn failed")

// World is the host player registry.
type World interface {
	// Players lists the slots of every connected player.
	Players() []Slot
	Player(slot Slot) (PlayerState, bool)
}

type Mover interface {
	SetVelocity(slot Slot, vel mgl32.Vec3) error
}

// Renderer is the host's wire entity factory.
type Renderer interface {
	SpawnWire(w SpawnWire) error
	MoveWire(id WireID, origin mgl32.Vec3) error
	RemoveWire(id WireID) error
}

// ConVars gives access to server console variables.
type ConVars interface {
	Float(name string) (float32, bool)
	SetFloat(name string, v float32) bool
}

// Entities is implemented by hosts whose players are ecs entities, so that
// players found on a hot reload can be tracked for removal.
type Entities interface {
	Entity(slot Slot) (*ecs.BasicEntity, bool)
}

// Host is everything the grapple system needs from the game server.
type Host interface {
	World
	Mover
	Renderer
	ConVars
}

// Executor applies effects to a host. A wire that fails to spawn is forgotten
// so the next tick retries it, and the rest of that player's effects for the
// batch are dropped. Other players are unaffected.
type Executor struct {
	Mover    Mover
	Renderer Renderer
	Table    *Table
}

// Apply runs effects in order and returns the failures, one per effect.
func (ex *Executor) Apply(effects []Effect) []error {
	var errs []error
	var failed map[Slot]bool
	for _, e := range effects {
		if failed[e.Owner()] {
			continue
		}
		if err := ex.apply(e); err != nil {
			errs = append(errs, err)
			if errors.Is(err, ErrWireSpawn) {
				if failed == nil {
					failed = map[Slot]bool{}
				}
				failed[e.Owner()] = true
				if sw, ok := e.(SpawnWire); ok && ex.Table != nil {
					_ = ex.Table.Forget(sw.Slot, sw.Wire)
				}
			}
		}
	}
	return errs
}

func (ex *Executor) apply(e Effect) error {
	switch c := e.(type) {
	case SetVelocity:
		if ex.Mover == nil {
			return nil
		}
		if err := ex.Mover.SetVelocity(c.Slot, c.Velocity); err != nil {
			return fmt.Errorf("set velocity for slot %d: %w", c.Slot, err)
		}
	case SpawnWire:
		if ex.Renderer == nil {
			return nil
		}
		if err := ex.Renderer.SpawnWire(c); err != nil {
			return fmt.Errorf("%w: slot %d: %v", ErrWireSpawn, c.Slot, err)
		}
	case MoveWire:
		if ex.Renderer == nil || c.Wire == "" {
			return nil
		}
		if err := ex.Renderer.MoveWire(c.Wire, c.Origin); err != nil {
			return fmt.Errorf("move wire %s: %w", c.Wire, err)
		}
	case RemoveWire:
		if ex.Renderer == nil || c.Wire == "" {
			return nil
		}
		if err := ex.Renderer.RemoveWire(c.Wire); err != nil {
			return fmt.Errorf("remove wire %s: %w", c.Wire, err)
		}
	default:
		return fmt.Errorf("unknown effect %T", e)
	}
	return nil
}
