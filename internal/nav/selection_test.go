package nav

import (
	"image"
	"math"
	"testing"
)

func TestSelectionRejectsSmallGestures(t *testing.T) {
	vp := NewViewport(1280, 720)
	tests := []struct {
		name     string
		from, to image.Point
	}{
		{"click", image.Pt(10, 10), image.Pt(10, 10)},
		{"one pixel", image.Pt(10, 10), image.Pt(11, 11)},
		{"thin horizontal", image.Pt(10, 10), image.Pt(300, 11)},
		{"thin vertical", image.Pt(10, 10), image.Pt(9, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			s.Begin(tt.from.X, tt.from.Y)
			s.Update(tt.to.X, tt.to.Y)
			if _, ok := s.End(tt.to.X, tt.to.Y, DefaultView(), vp); ok {
				t.Errorf("selection %v-%v produced a target", tt.from, tt.to)
			}
			if s.IsActive() {
				t.Error("selection still active after End")
			}
		})
	}
}

func TestSelectionEndWithoutBegin(t *testing.T) {
	var s Selection
	if s.Update(5, 5) {
		t.Error("Update on inactive selection reported a change")
	}
	if _, ok := s.End(500, 500, DefaultView(), NewViewport(1280, 720)); ok {
		t.Error("End without Begin produced a target")
	}
}

func TestSelectionBeginWhileActiveKeepsStart(t *testing.T) {
	var s Selection
	s.Begin(10, 20)
	s.Begin(50, 60)
	s.Update(100, 120)
	r, ok := s.Rect()
	if !ok {
		t.Fatal("no active rect")
	}
	if want := image.Rect(10, 20, 100, 120); r != want {
		t.Errorf("Rect() = %v, want %v", r, want)
	}
}

func TestSelectionRectIsCanonical(t *testing.T) {
	var s Selection
	s.Begin(500, 400)
	s.Update(100, 100)
	r, ok := s.Rect()
	if !ok || r != image.Rect(100, 100, 500, 400) {
		t.Errorf("Rect() = %v, %v", r, ok)
	}
}

func TestSelectionFramesRectangle(t *testing.T) {
	vp := NewViewport(1280, 720)
	v := DefaultView()
	for _, corners := range [][2]image.Point{
		{image.Pt(100, 100), image.Pt(500, 400)},
		{image.Pt(500, 400), image.Pt(100, 100)},
		{image.Pt(500, 100), image.Pt(100, 400)},
	} {
		var s Selection
		s.Begin(corners[0].X, corners[0].Y)
		target, ok := s.End(corners[1].X, corners[1].Y, v, vp)
		if !ok {
			t.Fatalf("selection %v produced no target", corners)
		}
		if !approxEqual(target.Zoom, 3.2) {
			t.Errorf("zoom = %v, want 3.2", target.Zoom)
		}
		if !approxEqual(target.CenterX, -17.0/18.0) || !approxEqual(target.CenterY, 11.0/36.0) {
			t.Errorf("center = (%v, %v), want (%v, %v)", target.CenterX, target.CenterY, -17.0/18.0, 11.0/36.0)
		}
	}
}

func TestSelectionScalesFromCurrentZoom(t *testing.T) {
	vp := NewViewport(800, 800)
	v := View{Zoom: 10, CenterX: -0.5, CenterY: 0.25}
	var s Selection
	s.Begin(300, 300)
	target, ok := s.End(500, 400, v, vp)
	if !ok {
		t.Fatal("no target")
	}
	// max(800/200, 800/100) = 8
	if !approxEqual(target.Zoom, 80) {
		t.Errorf("zoom = %v, want 80", target.Zoom)
	}
	fx, fy := v.PixelToFractal(vp, 400, 350)
	if math.Abs(target.CenterX-fx) > 1e-12 || math.Abs(target.CenterY-fy) > 1e-12 {
		t.Errorf("center = (%v, %v), want (%v, %v)", target.CenterX, target.CenterY, fx, fy)
	}
}
