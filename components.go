package grapple

import "github.com/go-gl/mathgl/mgl32"

// Slot is the host's stable per-session player index.
type Slot int

// WireID is the host's handle for a spawned wire entity. The empty ID means no wire.
type WireID string

// Buttons mirrors the host's held-button bitmask.
type Buttons uint64

const (
	ButtonAttack Buttons = 1 << iota
	ButtonJump
	ButtonDuck
	ButtonForward
	ButtonBack
	ButtonUse
	ButtonCancel
	ButtonLeft
	ButtonRight
	ButtonMoveLeft
	ButtonMoveRight
	ButtonAttack2
	ButtonRun
	ButtonReload
)

func (b Buttons) Has(flag Buttons) bool { return b&flag != 0 }

// PlayerState is what the host reports about a player for one tick.
type PlayerState struct {
	Slot  Slot
	Valid bool
	Bot   bool
	Alive bool

	// HasBody is false while the host has no pawn or scene node for the player.
	HasBody  bool
	Pos      mgl32.Vec3
	Angles   mgl32.Vec3
	Buttons  Buttons
	Velocity mgl32.Vec3
}

// Eligible reports whether the grapple should consider this player at all.
func (p PlayerState) Eligible() bool {
	return p.Valid && !p.Bot
}
