// Package view holds the pan/zoom state of the renderer and the controller that
// advances it from key input once per frame.
//
// State is a plain value owned by the render loop. The controller mutates it in
// place; the evaluator and the GPU uniforms read a copy of it per frame.
package view

const (
	// ZoomStep is added to (or subtracted from) the zoom per frame while W/S is held.
	ZoomStep = 0.05
	// PanStep is the per-frame pan distance at zoom 1; it is divided by the zoom.
	PanStep = 0.1
	// MinZoom is the smallest zoom the controller will produce.
	MinZoom = 0.01

	// ReferenceHz is the frame rate the step sizes are tuned for.
	ReferenceHz = 60
	// MaxScale caps the increment multiplier in frame-rate independent mode.
	MaxScale = 4
)

// State is the view transform fed to the evaluator.
//
// Zoom must stay positive; the surface spans 2/Zoom complex-plane units on
// each axis, centered on (OffsetX, OffsetY).
type State struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// Default returns the startup view: zoom 1 centered on the origin.
func Default() State {
	return State{Zoom: 1}
}

// PanSpeed returns the distance an arrow key moves the offset in one frame.
func (s State) PanSpeed(step float64) float64 {
	z := s.Zoom
	if z <= 0 {
		z = MinZoom
	}
	return step / z
}

// Input is the key state sampled for one frame.
type Input struct {
	Quit     bool
	ZoomIn   bool
	ZoomOut  bool
	PanLeft  bool
	PanRight bool
	PanUp    bool
	PanDown  bool
}
