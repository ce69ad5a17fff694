// Package hud draws the view status line onto a small RGBA overlay.
package hud

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"mandelview/view"
)

// Status formats the view for display.
func Status(v view.State) string {
	return fmt.Sprintf("zoom %.3f  offset (%.5f, %.5f)", v.Zoom, v.OffsetX, v.OffsetY)
}

var (
	fg = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bg = color.RGBA{A: 0xA0}
)

const (
	padX  = 4
	lineH = 12
)

// Overlay is a tinyfont drawing surface over an image.RGBA.
type Overlay struct {
	img   *image.RGBA
	lines []string
	dirty bool
}

var _ drivers.Displayer = (*Overlay)(nil)

// New returns an overlay of w×h pixels.
func New(w, h int) *Overlay {
	return &Overlay{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing pixels.
func (o *Overlay) Image() *image.RGBA { return o.img }

func (o *Overlay) Size() (x, y int16) {
	b := o.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (o *Overlay) SetPixel(x, y int16, c color.RGBA) {
	b := o.img.Bounds()
	if int(x) < 0 || int(y) < 0 || int(x) >= b.Dx() || int(y) >= b.Dy() {
		return
	}
	o.img.SetRGBA(int(x), int(y), c)
}

// Display marks the overlay as needing upload.
func (o *Overlay) Display() error {
	o.dirty = true
	return nil
}

// Dirty reports and clears the upload flag.
func (o *Overlay) Dirty() bool {
	d := o.dirty
	o.dirty = false
	return d
}

// Draw replaces the overlay contents with lines. Identical text is not redrawn.
func (o *Overlay) Draw(lines ...string) {
	if equalLines(o.lines, lines) {
		return
	}
	o.lines = append(o.lines[:0], lines...)

	for i := range o.img.Pix {
		o.img.Pix[i] = 0
	}
	_, h := o.Size()
	rows := int16(len(lines)*lineH + 4)
	if rows > h {
		rows = h
	}
	w, _ := o.Size()
	for y := int16(0); y < rows; y++ {
		for x := int16(0); x < w; x++ {
			o.SetPixel(x, y, bg)
		}
	}
	for i, s := range lines {
		tinyfont.WriteLine(o, &proggy.TinySZ8pt7b, padX, int16((i+1)*lineH), s, fg)
	}
	_ = o.Display()
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
