package grapple

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Pull carries the tuning the per-tick sweep needs.
type Pull struct {
	Speed           float32
	ArrivalDistance float32
	StrafeFactor    float32
	MaxAimDeviation float32

	WireColor color.RGBA
	WireWidth float32

	// NewWire allocates the handle for a wire about to be spawned.
	NewWire func() WireID
}

// Tick advances every attached player by one simulation step and returns the
// host effects to apply, in order.
func Tick(t *Table, w World, p Pull) []Effect {
	var effects []Effect
	for _, slot := range w.Players() {
		ps, ok := w.Player(slot)
		if !ok || !ps.Eligible() || !ps.Alive {
			continue
		}
		g := t.Get(slot)
		if g == nil || g.Hook == nil {
			continue
		}
		effects = p.step(g, ps, effects)
	}
	return effects
}

func (p Pull) step(g *Grapple, ps PlayerState, effects []Effect) []Effect {
	if !ps.HasBody {
		return effects
	}
	hook := g.Hook

	if hook.Wire == "" && p.NewWire != nil {
		hook.Wire = p.NewWire()
		effects = append(effects, SpawnWire{
			Slot:   g.Slot,
			Wire:   hook.Wire,
			Origin: ps.Pos,
			End:    hook.Target,
			Color:  p.WireColor,
			Width:  p.WireWidth,
		})
	}

	if Distance(hook.Target, ps.Pos) < p.ArrivalDistance {
		log.Debugf("Slot %d arrived at %v", g.Slot, hook.Target)
		return g.detach(effects)
	}

	toTarget := hook.Target.Sub(ps.Pos)
	if AngularDelta(ps.Angles, AimAngles(toTarget)) > p.MaxAimDeviation {
		log.Debugf("Slot %d looked away from %v", g.Slot, hook.Target)
		return g.detach(effects)
	}

	vel := p.Velocity(hook.Target, ps.Pos, ps.Angles, ps.Buttons)
	effects = append(effects,
		SetVelocity{Slot: g.Slot, Velocity: vel},
		MoveWire{Slot: g.Slot, Wire: hook.Wire, Origin: ps.Pos},
	)

	// The host reports the position the pull started from; the body only
	// moves once the velocity has been applied.
	if Distance(hook.Target, ps.Pos) < p.ArrivalDistance {
		log.Debugf("Slot %d arrived at %v after pull", g.Slot, hook.Target)
		effects = g.detach(effects)
	}
	return effects
}

// Velocity is the pull toward target from pos, bent sideways while a strafe
// button is held. Right wins when both strafe buttons are down.
func (p Pull) Velocity(target, pos, angles mgl32.Vec3, buttons Buttons) mgl32.Vec3 {
	dir := Normalize(target.Sub(pos))

	right := RightVector(angles).Mul(p.StrafeFactor)
	switch {
	case buttons.Has(ButtonMoveRight):
		dir = dir.Add(right)
	case buttons.Has(ButtonMoveLeft):
		dir = dir.Sub(right)
	}

	return Normalize(dir).Mul(p.Speed)
}
