// Command mandelprobe evaluates the escape-time coloring at a single point.
//
//	mandelprobe -u 0.5 -v 0.5
//	mandelprobe -re -0.75 -im 0.1
//	mandelprobe -u 0.25 -v 0.8 -zoom 4 -ox -0.5
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"mandelview/escape"
	"mandelview/view"
)

func main() {
	var (
		u    = flag.Float64("u", math.NaN(), "Normalized surface x in [0,1].")
		v    = flag.Float64("v", math.NaN(), "Normalized surface y in [0,1] (0 = bottom).")
		re   = flag.Float64("re", math.NaN(), "Real part of c (overrides -u/-v).")
		im   = flag.Float64("im", math.NaN(), "Imaginary part of c (overrides -u/-v).")
		zoom = flag.Float64("zoom", 1, "View zoom.")
		ox   = flag.Float64("ox", 0, "View offset x.")
		oy   = flag.Float64("oy", 0, "View offset y.")
	)
	flag.Parse()

	if *zoom <= 0 {
		fatalf("zoom must be positive: %v", *zoom)
	}

	var c escape.Point
	switch {
	case !math.IsNaN(*re) || !math.IsNaN(*im):
		c = escape.Point{X: zeroIfNaN(*re), Y: zeroIfNaN(*im)}
	case !math.IsNaN(*u) && !math.IsNaN(*v):
		c = escape.ToComplex(escape.UV{U: *u, V: *v}, view.State{Zoom: *zoom, OffsetX: *ox, OffsetY: *oy})
	default:
		fatalf("usage: mandelprobe -u U -v V [-zoom Z -ox X -oy Y]\n       mandelprobe -re RE -im IM")
	}

	report(os.Stdout, c)
}

func report(w io.Writer, c escape.Point) {
	r := escape.Iterate(c)
	col := escape.Shade(r)
	rgba := col.RGBA()

	fmt.Fprintf(w, "c        = (%g, %g)\n", c.X, c.Y)
	fmt.Fprintf(w, "escaped  = %t\n", r.Escaped)
	fmt.Fprintf(w, "count    = %d\n", r.Count)
	if r.Escaped {
		fmt.Fprintf(w, "|z|^2    = %g\n", r.Z.Abs2())
		fmt.Fprintf(w, "smoothed = %.6f\n", escape.Smooth(r))
	}
	fmt.Fprintf(w, "color    = (%.6f, %.6f, %.6f) #%02x%02x%02x\n", col.R, col.G, col.B, rgba.R, rgba.G, rgba.B)
}

func zeroIfNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
