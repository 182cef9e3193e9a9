package nav

import (
	"io"
	"math"
	"log/slog"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Navigator owns all navigation state of one window. Every method must
// be called from the thread running the frame loop.
type Navigator struct {
	logger      *slog.Logger
	view        View
	viewport    Viewport
	animator    Animator
	selection   Selection
	mouseNX     float64
	mouseNY     float64
	needsRedraw bool
}

func NewNavigator(vp Viewport, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Navigator{
		logger:      logger,
		view:        DefaultView(),
		viewport:    NewViewport(vp.Width, vp.Height),
		needsRedraw: true,
	}
}

func (n *Navigator) View() View {
	return n.view
}

func (n *Navigator) Viewport() Viewport {
	return n.viewport
}

func (n *Navigator) IsAnimating() bool {
	return n.animator.IsAnimating()
}

func (n *Navigator) Target() (Target, bool) {
	return n.animator.Target()
}

// NeedsRedraw reports whether the next frame has to be drawn.
// An animating navigator always needs one.
func (n *Navigator) NeedsRedraw() bool {
	return n.needsRedraw || n.animator.IsAnimating()
}

// Drawn clears the redraw flag. Call it only after a frame was issued.
func (n *Navigator) Drawn() {
	n.needsRedraw = false
}

func (n *Navigator) Reset() {
	n.view = DefaultView()
	n.animator.Stop()
	n.needsRedraw = true
	n.logger.Debug("reset")
}

func (n *Navigator) SetType(t FractalType) {
	n.view.Type = t
	n.needsRedraw = true
	n.logger.Debug("set fractal type", "type", t)
}

func (n *Navigator) Resize(width, height int) {
	n.viewport = NewViewport(width, height)
	n.needsRedraw = true
}

// pixel returns the pixel containing the cursor position p, which may
// be negative while a drag is outside the window.
func pixel(p float64) int {
	return int(math.Floor(p))
}

// PointerMove records the mouse position for keyboard zoom and drags
// the selection if one is in progress.
func (n *Navigator) PointerMove(px, py float64) {
	n.mouseNX, n.mouseNY = n.viewport.PixelToNDC(px, py)
	if n.selection.Update(pixel(px), pixel(py)) {
		n.needsRedraw = true
	}
}

func (n *Navigator) PointerButton(button Button, pressed bool, px, py float64) {
	if button != ButtonLeft {
		return
	}
	if pressed {
		n.selection.Begin(pixel(px), pixel(py))
		return
	}
	wasActive := n.selection.IsActive()
	t, ok := n.selection.End(pixel(px), pixel(py), n.view, n.viewport)
	if wasActive {
		n.needsRedraw = true
	}
	if !ok {
		if wasActive {
			n.logger.Debug("selection discarded", "x", px, "y", py)
		}
		return
	}
	n.startAnimation("selection", t)
}

// MouseNDC returns the last known mouse position in NDC.
func (n *Navigator) MouseNDC() (nx, ny float64) {
	return n.mouseNX, n.mouseNY
}

// MouseFractal returns the fractal point currently under the mouse.
func (n *Navigator) MouseFractal() (fx, fy float64) {
	return n.view.NDCToFractal(n.viewport, n.mouseNX, n.mouseNY)
}

func (n *Navigator) ZoomToMouse(factor float64) {
	t := ZoomAt(n.view, n.viewport, n.mouseNX, n.mouseNY, factor)
	n.startAnimation("keyboard", t)
}

func (n *Navigator) ZoomIn() {
	n.ZoomToMouse(ZoomInFactor)
}

func (n *Navigator) ZoomOut() {
	n.ZoomToMouse(ZoomOutFactor)
}

func (n *Navigator) startAnimation(source string, t Target) {
	n.animator.Start(t)
	n.needsRedraw = true
	n.logger.Debug("zoom target", "source", source, "zoom", t.Zoom, "centerX", t.CenterX, "centerY", t.CenterY)
}

// Tick advances the animation by one frame.
func (n *Navigator) Tick() {
	if !n.animator.Step(&n.view) {
		return
	}
	n.needsRedraw = true
	if !n.animator.IsAnimating() {
		n.logger.Debug("zoom settled", "zoom", n.view.Zoom, "centerX", n.view.CenterX, "centerY", n.view.CenterY)
	}
}

// SelectionRect returns the live selection in pixels, if any.
func (n *Navigator) SelectionRect() (Rect, bool) {
	return n.selection.Rect()
}
