package grapple

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Effect is a host-side command produced by the state machine. Every effect
// names the slot it was produced for.
type Effect interface {
	Owner() Slot
}

// SetVelocity overwrites the player's velocity.
type SetVelocity struct {
	Slot     Slot
	Velocity mgl32.Vec3
}

// SpawnWire creates a wire entity under the handle Wire.
type SpawnWire struct {
	Slot   Slot
	Wire   WireID
	Origin mgl32.Vec3
	End    mgl32.Vec3
	Color  color.RGBA
	Width  float32
}

// MoveWire teleports the wire origin. The end stays pinned.
type MoveWire struct {
	Slot   Slot
	Wire   WireID
	Origin mgl32.Vec3
}

// RemoveWire destroys the wire entity.
type RemoveWire struct {
	Slot Slot
	Wire WireID
}

func (e SetVelocity) Owner() Slot { return e.Slot }
func (e SpawnWire) Owner() Slot   { return e.Slot }
func (e MoveWire) Owner() Slot    { return e.Slot }
func (e RemoveWire) Owner() Slot  { return e.Slot }
