// Package escape implements the escape-time evaluation of the quadratic
// Mandelbrot map and its smooth green coloring.
//
// Every function here is pure: it reads its arguments and nothing else, so
// callers may evaluate any number of pixels concurrently. The GPU shaders in
// package shader compute the same thing; this package is the reference used by
// the CPU raster, the probe tool and the tests.
package escape

import (
	"image/color"
	"math"

	"mandelview/view"
)

const (
	// MaxIterations is the iteration budget before a point is treated as inside the set.
	MaxIterations = 1000
	// Bailout is the squared escape radius (|z| > 2).
	Bailout = 4.0
	// smoothBias is added to the renormalized count.
	smoothBias = 4.0
)

// UV is a normalized surface coordinate; (0,0) is the bottom-left corner.
type UV struct {
	U, V float64
}

// Point is a point in the complex plane.
type Point struct {
	X, Y float64
}

// Abs2 returns the squared magnitude of p.
func (p Point) Abs2() float64 { return p.X*p.X + p.Y*p.Y }

// Result is the outcome of the escape-time loop.
type Result struct {
	// Count is the 0-based index of the iteration on which |z|² first exceeded
	// Bailout, or MaxIterations when the point never escaped.
	Count int
	// Escaped is set when the loop broke out on the bailout test.
	Escaped bool
	// Z is the last value of z.
	Z Point
}

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float64
}

// Black is the color of points inside the set.
var Black = Color{}

// RGBA converts c to an opaque 8-bit color, clamping each channel.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xFF}
}

func channel8(v float64) uint8 {
	v = clamp01(v)
	return uint8(v*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToComplex maps uv to the complex plane: c = (uv*2 - 1)/zoom + offset.
func ToComplex(uv UV, v view.State) Point {
	return Point{
		X: (uv.U*2-1)/v.Zoom + v.OffsetX,
		Y: (uv.V*2-1)/v.Zoom + v.OffsetY,
	}
}

// Iterate runs z ↦ z² + c from z = 0 for at most MaxIterations steps.
func Iterate(c Point) Result {
	var z Point
	for i := 0; i < MaxIterations; i++ {
		z = Point{X: z.X*z.X - z.Y*z.Y + c.X, Y: 2*z.X*z.Y + c.Y}
		if z.Abs2() > Bailout {
			return Result{Count: i, Escaped: true, Z: z}
		}
	}
	return Result{Count: MaxIterations, Z: z}
}

// Smooth returns the renormalized iteration count i - log2(log2(|z|²)) + 4.
//
// It is only meaningful for escaped results: |z|² > 4 keeps both logarithms
// positive. Results that did not escape report MaxIterations.
func Smooth(r Result) float64 {
	if !r.Escaped {
		return MaxIterations
	}
	return float64(r.Count) - math.Log2(math.Log2(r.Z.Abs2())) + smoothBias
}

// Shade maps a result to its color: black inside, (0, smooth/MaxIterations, 0) outside.
func Shade(r Result) Color {
	if !r.Escaped {
		return Black
	}
	return Color{G: clamp01(Smooth(r) / MaxIterations)}
}

// Evaluate colors the surface coordinate uv under view v.
func Evaluate(uv UV, v view.State) Color {
	return Shade(Iterate(ToComplex(uv, v)))
}
