// Package game implements the shooter simulation: a frame-driven update
// pipeline over a store of transient entities, with AABB collision
// resolution, timed spawning, and listener notifications. The package has
// no presentation dependencies; the platform drives it through Update,
// SetInput, and Render.
package game

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// GameObject is the shared shape of every entity: position and velocity in
// world pixels, full-extent size, and an active flag. Deactivation is the
// only removal mechanism; entities are never deleted mid-pass, only marked
// inactive and compacted by the cleanup step at tick end.
type GameObject struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Size   core.Vec2
	Active bool
}

// Bounds returns the entity's collision rectangle.
func (o *GameObject) Bounds() core.Rect {
	return core.Rect{Pos: o.Pos, Size: o.Size}
}

// Integrate advances position by velocity over dt milliseconds.
// Non-positive deltas are a no-op so degenerate timestamps never move
// entities backwards.
func (o *GameObject) Integrate(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	o.Pos = o.Pos.Add(o.Vel.Scale(dtMs / 1000))
}

// IntegrateScaled advances position by velocity scaled by a speed
// multiplier, used for enemies affected by gameSpeed.
func (o *GameObject) IntegrateScaled(dtMs, speedScale float64) {
	if dtMs <= 0 {
		return
	}
	o.Pos = o.Pos.Add(o.Vel.Scale(speedScale * dtMs / 1000))
}
