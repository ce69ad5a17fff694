package raster

import (
	"image"

	"mandelview/escape"
)

// Target is a pixel sink for CPU rendering.
//
// Render calls SetPixel from several goroutines, never twice for the same
// pixel, so implementations must tolerate concurrent writes to distinct pixels.
// Out-of-bounds coordinates must be ignored.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c escape.Color)
}

// RGBATarget renders into an image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

// NewRGBATarget allocates a w×h target.
func NewRGBATarget(w, h int) *RGBATarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) SetPixel(x, y int, c escape.Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	t.Img.SetRGBA(b.Min.X+x, b.Min.Y+y, c.RGBA())
}

// Discard counts pixels without storing them.
type Discard struct {
	W, H int
}

func (d Discard) Size() (w, h int) { return d.W, d.H }

func (Discard) SetPixel(int, int, escape.Color) {}
