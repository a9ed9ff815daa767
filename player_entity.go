package grapple

import (
	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Player is a simulated player body in the Arena.
type Player struct {
	ecs.BasicEntity

	Slot    Slot
	Name    string
	Bot     bool
	Alive   bool
	HasBody bool

	Pos     mgl32.Vec3
	Vel     mgl32.Vec3
	Angles  mgl32.Vec3
	Buttons Buttons
}

// Bounds is an axis aligned box; Min[2] is the floor.
type Bounds struct {
	Min, Max mgl32.Vec3
}

func clampToBounds(pos mgl32.Vec3, vel mgl32.Vec3, b Bounds) (mgl32.Vec3, mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if pos[i] < b.Min[i] {
			pos[i] = b.Min[i]
			vel[i] = 0
		}
		if pos[i] > b.Max[i] {
			pos[i] = b.Max[i]
			vel[i] = 0
		}
	}
	return pos, vel
}

// Update integrates one step of dt seconds under gravity.
func (p *Player) Update(dt float32, gravity float32, b Bounds) {
	if !p.Alive || !p.HasBody {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Vel[2] -= gravity * dt
	p.Pos, p.Vel = clampToBounds(p.Pos, p.Vel, b)
}

func (p *Player) State() PlayerState {
	return PlayerState{
		Slot:     p.Slot,
		Valid:    true,
		Bot:      p.Bot,
		Alive:    p.Alive,
		HasBody:  p.HasBody,
		Pos:      p.Pos,
		Angles:   p.Angles,
		Buttons:  p.Buttons,
		Velocity: p.Vel,
	}
}

// Face turns the player to look at target.
func (p *Player) Face(target mgl32.Vec3) {
	p.Angles = AimAngles(target.Sub(p.Pos))
}
