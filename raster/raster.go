// Package raster evaluates the escape-time coloring for every pixel of a CPU
// target. It backs the headless runner and the end-to-end tests; the windowed
// backends do the same work on the GPU.
package raster

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"mandelview/escape"
	"mandelview/view"
)

// Stats summarizes one rendered frame.
type Stats struct {
	Pixels int
	Inside int
}

// InsideRatio returns the fraction of pixels classified as inside the set.
func (s Stats) InsideRatio() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Inside) / float64(s.Pixels)
}

// PixelUV returns the surface coordinate of the center of pixel (x, y) on a
// w×h target whose row 0 is at the top.
func PixelUV(x, y, w, h int) escape.UV {
	return escape.UV{
		U: (float64(x) + 0.5) / float64(w),
		V: 1 - (float64(y)+0.5)/float64(h),
	}
}

// Render colors every pixel of t for view v using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Rows are the unit of work. It returns early
// with ctx.Err() if ctx is canceled.
func Render(ctx context.Context, t Target, v view.State, workers int) (Stats, error) {
	if t == nil {
		return Stats{}, nil
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return Stats{}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var inside atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := 0
			for x := 0; x < w; x++ {
				r := escape.Iterate(escape.ToComplex(PixelUV(x, y, w, h), v))
				if !r.Escaped {
					n++
				}
				t.SetPixel(x, y, escape.Shade(r))
			}
			inside.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return Stats{Pixels: w * h, Inside: int(inside.Load())}, nil
}
