package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mandelview/app"
	"mandelview/hal"
	"mandelview/internal/buildinfo"
)

func main() {
	var (
		hcfg    hal.HeadlessConfig
		wcfg    hal.WindowConfig
		acfg    app.Config
		backend string
	)
	flag.StringVar(&backend, "backend", "ebiten", "Window backend: ebiten|gl.")
	flag.BoolVar(&acfg.FrameRateIndependent, "dt", false, "Scale pan/zoom by frame time instead of per frame.")
	flag.BoolVar(&wcfg.HUD, "hud", true, "Show zoom and offset.")
	flag.IntVar(&wcfg.Width, "width", 800, "Initial window width.")
	flag.IntVar(&wcfg.Height, "height", 600, "Initial window height.")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = until the script ends).")
	flag.StringVar(&hcfg.Script, "script", "", `Headless key script, e.g. "W:30 Right+Up:10".`)
	flag.IntVar(&hcfg.Width, "raster-width", 80, "Headless CPU raster width.")
	flag.IntVar(&hcfg.Height, "raster-height", 60, "Headless CPU raster height.")
	flag.IntVar(&hcfg.Workers, "workers", 0, "Headless raster workers (0 = GOMAXPROCS).")
	flag.Parse()

	wcfg.Title = "Mandelbrot Renderer (" + buildinfo.Short() + ")"
	newApp := func(h hal.HAL) hal.App { return app.NewWithConfig(h, acfg) }

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	var err error
	switch backend {
	case "ebiten":
		err = hal.RunWindow(newApp, wcfg)
	case "gl":
		err = hal.RunGL(newApp, wcfg)
	default:
		err = fmt.Errorf("unknown backend %q (want ebiten or gl)", backend)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
