package hal

import (
	"bytes"
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	now := time.Unix(0, 0)
	c := &frameClock{now: func() time.Time { return now }}

	if d := c.tick(); d != 0 {
		t.Fatalf("first tick = %v, want 0", d)
	}
	now = now.Add(16 * time.Millisecond)
	if d := c.tick(); d != 16*time.Millisecond {
		t.Fatalf("tick = %v, want 16ms", d)
	}
	now = now.Add(-time.Second)
	if d := c.tick(); d != 0 {
		t.Fatalf("tick after clock step back = %v, want 0", d)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHostHAL(&buf, nil)
	Logf(h.Logger(), "zoom %d", 2)
	Logf(nil, "dropped")
	if got := buf.String(); got != "zoom 2\n" {
		t.Fatalf("log = %q, want %q", got, "zoom 2\n")
	}
	if h.Keyboard().KeyDown(KeyW) {
		t.Fatal("nil keyboard reports keys down")
	}
}

func TestWindowConfigDefaults(t *testing.T) {
	c := WindowConfig{}.withDefaults()
	if c.Width != 800 || c.Height != 600 || c.Title != "Mandelbrot Renderer" {
		t.Fatalf("withDefaults() = %+v", c)
	}
	c = WindowConfig{Width: 320, Height: 200, Title: "x"}.withDefaults()
	if c.Width != 320 || c.Height != 200 || c.Title != "x" {
		t.Fatalf("withDefaults() overrode %+v", c)
	}
}
