package view

// Controller turns key input into view changes.
//
// It does not depend on any input system; callers sample keys into an Input.
type Controller struct {
	ZoomStep Float
	PanStep  Float
	MinZoom  Float
}

// Float is the scalar type used for view arithmetic.
type Float = float64

// NewController returns a controller with the default step sizes.
func NewController() Controller {
	return Controller{ZoomStep: ZoomStep, PanStep: PanStep, MinZoom: MinZoom}
}

// Apply advances s by one frame of input and reports whether termination was requested.
//
// scale multiplies every increment: 1 reproduces the per-frame behavior, other
// values come from FrameScale in frame-rate independent mode. The pan speed is
// taken from the zoom before this frame's zoom change.
func (c Controller) Apply(s *State, in Input, scale Float) (quit bool) {
	if s == nil {
		return in.Quit
	}
	if scale < 0 {
		scale = 0
	}
	pan := s.PanSpeed(c.PanStep) * scale
	zoom := c.ZoomStep * scale

	if in.ZoomIn {
		s.Zoom += zoom
	}
	if in.ZoomOut {
		s.Zoom -= zoom
	}
	if lo := c.MinZoom; lo > 0 && s.Zoom < lo {
		s.Zoom = lo
	}

	if in.PanLeft {
		s.OffsetX -= pan
	}
	if in.PanRight {
		s.OffsetX += pan
	}
	if in.PanDown {
		s.OffsetY -= pan
	}
	if in.PanUp {
		s.OffsetY += pan
	}
	return in.Quit
}

// FrameScale converts an update interval in seconds into an increment multiplier
// relative to ReferenceHz, capped at MaxScale.
func FrameScale(seconds Float) Float {
	if seconds <= 0 {
		return 0
	}
	s := seconds * ReferenceHz
	if s > MaxScale {
		s = MaxScale
	}
	return s
}
