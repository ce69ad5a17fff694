package app

import (
	"time"

	"mandelview/hal"
	"mandelview/view"
)

// Config selects how input is turned into view changes.
type Config struct {
	// FrameRateIndependent scales pan/zoom increments by the frame interval
	// instead of applying one fixed increment per frame.
	FrameRateIndependent bool
}

// App owns the view state and advances it from the HAL keyboard once per frame.
type App struct {
	kbd   hal.Keyboard
	log   hal.Logger
	ctl   view.Controller
	state view.State
	cfg   Config
	frame uint64
}

// New returns an App at the default view.
func New(h hal.HAL) *App {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) *App {
	a := &App{
		kbd:   h.Keyboard(),
		log:   h.Logger(),
		ctl:   view.NewController(),
		state: view.Default(),
		cfg:   cfg,
	}
	mode := "per-frame"
	if cfg.FrameRateIndependent {
		mode = "frame-rate independent"
	}
	hal.Logf(a.log, "view: zoom %.2f, input %s", a.state.Zoom, mode)
	return a
}

// Step samples the keyboard and applies one frame of input. It returns
// hal.ErrQuit, after applying the frame, when Escape is held.
func (a *App) Step(dt time.Duration) error {
	scale := 1.0
	if a.cfg.FrameRateIndependent {
		scale = view.FrameScale(dt.Seconds())
	}
	a.frame++
	if a.ctl.Apply(&a.state, a.input(), scale) {
		return hal.ErrQuit
	}
	return nil
}

// View returns the current view snapshot.
func (a *App) View() view.State { return a.state }

// Frames returns the number of steps taken.
func (a *App) Frames() uint64 { return a.frame }

func (a *App) input() view.Input {
	down := func(k hal.KeyCode) bool {
		return a.kbd != nil && a.kbd.KeyDown(k)
	}
	return view.Input{
		Quit:     down(hal.KeyEscape),
		ZoomIn:   down(hal.KeyW),
		ZoomOut:  down(hal.KeyS),
		PanLeft:  down(hal.KeyLeft),
		PanRight: down(hal.KeyRight),
		PanUp:    down(hal.KeyUp),
		PanDown:  down(hal.KeyDown),
	}
}
