package nav

import "math"

// PixelToNDC maps a pixel (origin top-left) to normalized device
// coordinates (origin at the center, Y up).
func (vp Viewport) PixelToNDC(px, py float64) (nx, ny float64) {
	w := float64(vp.Width)
	h := float64(vp.Height)
	nx = px/w*2 - 1
	ny = (h-py)/h*2 - 1
	return
}

func (vp Viewport) NDCToPixel(nx, ny float64) (px, py float64) {
	w := float64(vp.Width)
	h := float64(vp.Height)
	px = (nx + 1) / 2 * w
	py = h - (ny+1)/2*h
	return
}

// NDCToFractal applies the aspect ratio to X only, matching the way
// the fragment shader stretches the unit quad over the viewport.
func (v View) NDCToFractal(vp Viewport, nx, ny float64) (fx, fy float64) {
	fx = v.CenterX + nx*vp.Aspect()/v.Zoom
	fy = v.CenterY + ny/v.Zoom
	return
}

func (v View) FractalToNDC(vp Viewport, fx, fy float64) (nx, ny float64) {
	nx = (fx - v.CenterX) * v.Zoom / vp.Aspect()
	ny = (fy - v.CenterY) * v.Zoom
	return
}

func (v View) PixelToFractal(vp Viewport, px, py float64) (fx, fy float64) {
	nx, ny := vp.PixelToNDC(px, py)
	return v.NDCToFractal(vp, nx, ny)
}

func (v View) FractalToPixel(vp Viewport, fx, fy float64) (px, py float64) {
	nx, ny := v.FractalToNDC(vp, fx, fy)
	return vp.NDCToPixel(nx, ny)
}

// LocalOffset splits x into floor(x) and the remainder in [0,1).
// The GPU receives both halves so the remainder keeps its precision
// once converted to float32.
func LocalOffset(x float64) (intPart, fracPart float64) {
	intPart = math.Floor(x)
	fracPart = x - intPart
	return
}
