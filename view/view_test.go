package view

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestDefault(t *testing.T) {
	got := Default()
	if got != (State{Zoom: 1}) {
		t.Fatalf("Default() = %+v, want zoom 1 at origin", got)
	}
}

func TestZoomInIsAdditive(t *testing.T) {
	c := NewController()
	for _, n := range []int{1, 5, 20, 100} {
		s := Default()
		for i := 0; i < n; i++ {
			c.Apply(&s, Input{ZoomIn: true}, 1)
		}
		want := 1 + float64(n)*ZoomStep
		if !near(s.Zoom, want) {
			t.Fatalf("zoom after %d presses = %v, want %v", n, s.Zoom, want)
		}
		if s.OffsetX != 0 || s.OffsetY != 0 {
			t.Fatalf("offset moved without pan input: %+v", s)
		}
	}
}

func TestZoomOutStaysPositive(t *testing.T) {
	c := NewController()
	s := Default()
	for i := 0; i < 1000; i++ {
		c.Apply(&s, Input{ZoomOut: true}, 1)
		if s.Zoom <= 0 {
			t.Fatalf("zoom = %v after %d frames, want > 0", s.Zoom, i+1)
		}
	}
	if s.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want floor %v", s.Zoom, MinZoom)
	}
}

func TestZoomInAndOutCancel(t *testing.T) {
	c := NewController()
	s := Default()
	c.Apply(&s, Input{ZoomIn: true, ZoomOut: true}, 1)
	if !near(s.Zoom, 1) {
		t.Fatalf("zoom = %v, want 1", s.Zoom)
	}
}

func TestPanScalesInverselyWithZoom(t *testing.T) {
	c := NewController()
	const frames = 10

	displacement := func(zoom float64) float64 {
		s := State{Zoom: zoom}
		for i := 0; i < frames; i++ {
			c.Apply(&s, Input{PanRight: true}, 1)
		}
		return s.OffsetX
	}

	d1 := displacement(1)
	d2 := displacement(2)
	if !near(d1, frames*PanStep) {
		t.Fatalf("displacement at zoom 1 = %v, want %v", d1, frames*PanStep)
	}
	if !near(d2, d1/2) {
		t.Fatalf("displacement at zoom 2 = %v, want %v", d2, d1/2)
	}
}

func TestPanDirections(t *testing.T) {
	c := NewController()
	tests := []struct {
		name  string
		in    Input
		wantX float64
		wantY float64
	}{
		{"left", Input{PanLeft: true}, -PanStep, 0},
		{"right", Input{PanRight: true}, PanStep, 0},
		{"up", Input{PanUp: true}, 0, PanStep},
		{"down", Input{PanDown: true}, 0, -PanStep},
		{"up-left", Input{PanUp: true, PanLeft: true}, -PanStep, PanStep},
		{"opposed", Input{PanUp: true, PanDown: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			c.Apply(&s, tt.in, 1)
			if !near(s.OffsetX, tt.wantX) || !near(s.OffsetY, tt.wantY) {
				t.Fatalf("offset = (%v, %v), want (%v, %v)", s.OffsetX, s.OffsetY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPanUsesZoomBeforeZoomChange(t *testing.T) {
	c := NewController()
	s := Default()
	c.Apply(&s, Input{ZoomIn: true, PanRight: true}, 1)
	if !near(s.OffsetX, PanStep/1) {
		t.Fatalf("offsetX = %v, want %v", s.OffsetX, PanStep)
	}
}

func TestQuit(t *testing.T) {
	c := NewController()
	s := Default()
	if c.Apply(&s, Input{}, 1) {
		t.Fatal("Apply() quit = true without Escape")
	}
	if !c.Apply(&s, Input{Quit: true, ZoomIn: true}, 1) {
		t.Fatal("Apply() quit = false with Escape")
	}
	if !near(s.Zoom, 1+ZoomStep) {
		t.Fatalf("zoom = %v, want the frame to still apply", s.Zoom)
	}
}

func TestApplyScale(t *testing.T) {
	c := NewController()
	s := Default()
	c.Apply(&s, Input{ZoomIn: true, PanRight: true}, 2)
	if !near(s.Zoom, 1+2*ZoomStep) {
		t.Fatalf("zoom = %v, want %v", s.Zoom, 1+2*ZoomStep)
	}
	if !near(s.OffsetX, 2*PanStep) {
		t.Fatalf("offsetX = %v, want %v", s.OffsetX, 2*PanStep)
	}

	before := s
	c.Apply(&s, Input{ZoomIn: true, PanRight: true}, 0)
	if s != before {
		t.Fatalf("scale 0 changed state: %+v -> %+v", before, s)
	}
}

func TestFrameScale(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{0, 0},
		{-1, 0},
		{1.0 / 60, 1},
		{1.0 / 120, 0.5},
		{1.0 / 30, 2},
		{1, MaxScale},
	}
	for _, tt := range tests {
		if got := FrameScale(tt.seconds); !near(got, tt.want) {
			t.Fatalf("FrameScale(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestApplyNilState(t *testing.T) {
	c := NewController()
	if !c.Apply(nil, Input{Quit: true}, 1) {
		t.Fatal("Apply(nil) lost the quit signal")
	}
}
