package nav

import "image"

// MinSelectionSize is the smallest span, in pixels on each axis, that
// counts as a selection rather than a click.
const MinSelectionSize = 2

type Selection struct {
	start   Point
	current Point
	active  bool
}

func (s *Selection) IsActive() bool {
	return s.active
}

func (s *Selection) Begin(px, py int) {
	if s.active {
		return
	}
	s.start = image.Pt(px, py)
	s.current = s.start
	s.active = true
}

func (s *Selection) Update(px, py int) bool {
	if !s.active {
		return false
	}
	s.current = image.Pt(px, py)
	return true
}

// Rect returns the normalized rectangle spanned by the gesture.
func (s *Selection) Rect() (Rect, bool) {
	if !s.active {
		return Rect{}, false
	}
	return image.Rectangle{Min: s.start, Max: s.current}.Canon(), true
}

// End finishes the gesture and computes the zoom target framing the
// selected rectangle. ok is false when the gesture was too small or
// was never started.
func (s *Selection) End(px, py int, v View, vp Viewport) (t Target, ok bool) {
	if !s.active {
		return Target{}, false
	}
	s.current = image.Pt(px, py)
	s.active = false
	r := image.Rectangle{Min: s.start, Max: s.current}.Canon()
	if r.Dx() < MinSelectionSize || r.Dy() < MinSelectionSize {
		return Target{}, false
	}
	fx0, fy0 := v.PixelToFractal(vp, float64(r.Min.X), float64(r.Min.Y))
	fx1, fy1 := v.PixelToFractal(vp, float64(r.Max.X), float64(r.Max.Y))
	scale := max(
		float64(vp.Width)/float64(r.Dx()),
		float64(vp.Height)/float64(r.Dy()),
	)
	t = Target{
		Zoom:    v.Zoom * scale,
		CenterX: (fx0 + fx1) * 0.5,
		CenterY: (fy0 + fy1) * 0.5,
	}
	return t, true
}
