package grapple

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Wire is a line entity spawned in the Arena.
type Wire struct {
	ID     WireID
	Owner  Slot
	Origin mgl32.Vec3
	End    mgl32.Vec3
	Color  color.RGBA
	Width  float32
}

// Length is the current span of the wire.
func (w *Wire) Length() float32 {
	return Distance(w.Origin, w.End)
}
