package nav

import "math"

const (
	// ZoomLerp is the fraction of the remaining distance covered per tick.
	ZoomLerp = 0.25

	// ZoomEpsilon is the per-axis distance at which the animation snaps
	// to its target.
	ZoomEpsilon = 1e-6

	// MinZoom is the unzoomed scale; keyboard zoom-out never goes below it.
	MinZoom = 1.0
)

type Target struct {
	Zoom    float64
	CenterX float64
	CenterY float64
}

// Animator eases a View toward a Target by a fixed factor per tick.
type Animator struct {
	target Target
	active bool
}

func (a *Animator) IsAnimating() bool {
	return a.active
}

func (a *Animator) Target() (Target, bool) {
	return a.target, a.active
}

// Start replaces the current target. Progress already made is kept,
// so an animation in flight simply bends toward the new target.
func (a *Animator) Start(t Target) {
	a.target = t
	a.active = true
}

func (a *Animator) Stop() {
	a.active = false
}

// Step advances v by one tick. It returns true while it moved v,
// including the tick that snaps v onto the target.
func (a *Animator) Step(v *View) bool {
	if !a.active {
		return false
	}
	dz := a.target.Zoom - v.Zoom
	dx := a.target.CenterX - v.CenterX
	dy := a.target.CenterY - v.CenterY
	v.Zoom += dz * ZoomLerp
	v.CenterX += dx * ZoomLerp
	v.CenterY += dy * ZoomLerp
	if math.Abs(dz) < ZoomEpsilon && math.Abs(dx) < ZoomEpsilon && math.Abs(dy) < ZoomEpsilon {
		v.Zoom = a.target.Zoom
		v.CenterX = a.target.CenterX
		v.CenterY = a.target.CenterY
		a.active = false
	}
	return true
}
