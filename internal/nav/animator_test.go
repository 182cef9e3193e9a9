package nav

import (
	"math"
	"testing"
)

func TestAnimatorIdleDoesNothing(t *testing.T) {
	var a Animator
	v := DefaultView()
	if a.Step(&v) {
		t.Error("Step on idle animator reported movement")
	}
	if v != DefaultView() {
		t.Errorf("idle Step changed view to %+v", v)
	}
}

func TestAnimatorStepLerps(t *testing.T) {
	var a Animator
	v := View{Zoom: 1}
	a.Start(Target{Zoom: 5, CenterX: 4, CenterY: -8})
	if !a.Step(&v) {
		t.Fatal("Step reported no movement")
	}
	if v.Zoom != 2 || v.CenterX != 1 || v.CenterY != -2 {
		t.Errorf("after one step view = %+v, want zoom 2 center (1, -2)", v)
	}
	if !a.IsAnimating() {
		t.Error("animator settled after one step")
	}
}

func TestAnimatorConverges(t *testing.T) {
	targets := []Target{
		{Zoom: 1000, CenterX: -0.75, CenterY: 0.1},
		{Zoom: 3.2, CenterX: -17.0 / 18.0, CenterY: 11.0 / 36.0},
		{Zoom: 1, CenterX: 0, CenterY: 0},
		{Zoom: 1e9, CenterX: -0.743643887037151, CenterY: 0.131825904205330},
	}
	for _, target := range targets {
		var a Animator
		v := DefaultView()
		a.Start(target)
		// each delta shrinks by 0.75 per tick
		maxDelta := math.Max(math.Abs(target.Zoom-v.Zoom), math.Max(math.Abs(target.CenterX), math.Abs(target.CenterY)))
		limit := 5
		if maxDelta > 0 {
			limit += int(math.Ceil(math.Log(maxDelta/ZoomEpsilon) / math.Log(4.0/3.0)))
		}
		ticks := 0
		for a.IsAnimating() && ticks <= limit {
			if !a.Step(&v) {
				t.Fatalf("target %+v: Step returned false while animating", target)
			}
			ticks++
		}
		if a.IsAnimating() {
			t.Errorf("target %+v: still animating after %d ticks", target, ticks)
			continue
		}
		if v.Zoom != target.Zoom || v.CenterX != target.CenterX || v.CenterY != target.CenterY {
			t.Errorf("target %+v: settled at %+v", target, v)
		}
	}
}

func TestAnimatorRetarget(t *testing.T) {
	var a Animator
	v := DefaultView()
	a.Start(Target{Zoom: 9, CenterX: 4})
	a.Step(&v)
	progress := v
	a.Start(Target{Zoom: 1, CenterX: -4})
	if v != progress {
		t.Errorf("retarget changed view from %+v to %+v", progress, v)
	}
	got, ok := a.Target()
	if !ok || got.CenterX != -4 {
		t.Errorf("Target() = %+v, %v", got, ok)
	}
	a.Step(&v)
	if v.CenterX >= progress.CenterX {
		t.Errorf("view did not move toward new target: %v -> %v", progress.CenterX, v.CenterX)
	}
}

func TestAnimatorKeepsType(t *testing.T) {
	var a Animator
	v := View{Zoom: 1, Type: Julia}
	a.Start(Target{Zoom: 2})
	for a.IsAnimating() {
		a.Step(&v)
	}
	if v.Type != Julia {
		t.Errorf("type changed to %v", v.Type)
	}
}
