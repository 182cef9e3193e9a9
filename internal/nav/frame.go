package nav

import "fmt"

// Frame is the per-frame snapshot handed to the renderer.
type Frame struct {
	Width, Height int
	Zoom          float64

	// Center is floor(center); Offset is center minus Center.
	CenterX, CenterY float64
	OffsetX, OffsetY float64
	Type             FractalType
	Animating        bool
}

func (n *Navigator) Frame() Frame {
	cx, ox := LocalOffset(n.view.CenterX)
	cy, oy := LocalOffset(n.view.CenterY)
	return Frame{
		Width:     n.viewport.Width,
		Height:    n.viewport.Height,
		Zoom:      n.view.Zoom,
		CenterX:   cx,
		CenterY:   cy,
		OffsetX:   ox,
		OffsetY:   oy,
		Type:      n.view.Type,
		Animating: n.animator.IsAnimating(),
	}
}

func (f Frame) Status() string {
	return fmt.Sprintf("%s  zoom %.6g  center %.10f, %.10f",
		f.Type, f.Zoom, f.CenterX+f.OffsetX, f.CenterY+f.OffsetY)
}
