package nav

import "image"

type Point = image.Point
type Rect = image.Rectangle

type FractalType int32

const (
	Mandelbrot FractalType = 0
	Julia      FractalType = 1
)

func (t FractalType) String() string {
	switch t {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	default:
		return "unknown"
	}
}

// View is the position of the camera over the fractal plane.
type View struct {
	Zoom    float64
	CenterX float64
	CenterY float64
	Type    FractalType
}

func DefaultView() View {
	return View{
		Zoom: 1.0,
		Type: Mandelbrot,
	}
}

// Viewport is the drawable area in framebuffer pixels.
type Viewport struct {
	Width  int
	Height int
}

// NewViewport clamps both dimensions to at least one pixel.
func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:  max(width, 1),
		Height: max(height, 1),
	}
}

func (vp Viewport) Aspect() float64 {
	return float64(vp.Width) / float64(vp.Height)
}

func (vp Viewport) Size() image.Point {
	return image.Point{X: vp.Width, Y: vp.Height}
}
