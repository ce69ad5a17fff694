package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"mandelview/hud"
	"mandelview/raster"
	"mandelview/view"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Script is replayed as keyboard input; see ScriptKeyboard.
	Script string
	// Width and Height size the CPU raster used to summarize each new view.
	Width   int
	Height  int
	Workers int
	// Out receives log lines; stdout when nil.
	Out io.Writer
}

// RunHeadless drives the app from a ticker without opening a window.
//
// Each tick advances the scripted keyboard by one frame and steps the app with
// a fixed dt of one tick period. Whenever the view changes it is rasterized on
// the CPU and summarized in a log line. It returns nil when the app quits or
// the tick limit is reached, and ctx.Err() when ctx is canceled.
func RunHeadless(ctx context.Context, newApp func(HAL) App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= 0 {
		cfg.Height = 60
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	kbd, err := ParseScript(cfg.Script)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(cfg.Out, kbd)
	app := newApp(h)
	tgt := raster.Discard{W: cfg.Width, H: cfg.Height}

	t := time.NewTicker(d)
	defer t.Stop()

	var (
		tick uint64
		last view.State
		seen bool
		dt   time.Duration
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		stepErr := app.Step(dt)
		dt = d
		kbd.Advance()
		tick++

		if v := app.View(); !seen || v != last {
			st, err := raster.Render(ctx, tgt, v, cfg.Workers)
			if err != nil {
				return err
			}
			Logf(h.Logger(), "frame %d: %s  inside %.1f%%", tick, hud.Status(v), 100*st.InsideRatio())
			last, seen = v, true
		}

		if stepErr != nil {
			if errors.Is(stepErr, ErrQuit) {
				Logf(h.Logger(), "quit after %d frames", tick)
				return nil
			}
			return stepErr
		}
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
