package nav

const (
	ZoomInFactor  = 2.0
	ZoomOutFactor = 0.5
)

// ZoomAt returns the target that scales v by factor while keeping the
// fractal point under the NDC position (nx, ny) fixed on screen.
// The target zoom never drops below MinZoom.
func ZoomAt(v View, vp Viewport, nx, ny, factor float64) Target {
	fx, fy := v.NDCToFractal(vp, nx, ny)
	zoom := max(MinZoom, v.Zoom*factor)
	return Target{
		Zoom:    zoom,
		CenterX: fx - nx*vp.Aspect()/zoom,
		CenterY: fy - ny/zoom,
	}
}
