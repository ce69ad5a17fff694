//go:build cgo

package hal

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelview/hud"
	"mandelview/shader"
)

// RunWindow opens a resizable ebiten window and renders the app's view with the
// Kage program every frame. It blocks until the window closes or the app quits.
func RunWindow(newApp func(HAL) App, cfg WindowConfig) error {
	cfg = cfg.withDefaults()

	src := shader.Kage()
	if err := shader.RequireUniforms(src, shader.KageZoom, shader.KageOffset, shader.KageResolution); err != nil {
		return fmt.Errorf("%w: %v", ErrUniformMissing, err)
	}
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("%w:\n%v", ErrShaderCompile, err)
	}

	h := New(ebitenKeyboard{}).(*hostHAL)
	g := &hostGame{
		h:      h,
		app:    newApp(h),
		clock:  newFrameClock(),
		shader: sh,
	}
	if cfg.HUD {
		g.hud = hud.New(cfg.Width, 16)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One update per presented frame: input response follows the display rate.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	Logf(h.Logger(), "window: %dx%d %q", cfg.Width, cfg.Height, cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

type hostGame struct {
	h     *hostHAL
	app   App
	clock *frameClock

	shader   *ebiten.Shader
	vertices []ebiten.Vertex
	width    int
	height   int

	hud    *hud.Overlay
	hudImg *ebiten.Image
}

func (g *hostGame) Update() error {
	if err := g.app.Step(g.clock.tick()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.vertices == nil || b.Dx() != g.width || b.Dy() != g.height {
		g.width, g.height = b.Dx(), b.Dy()
		g.vertices = quadVertices(float32(g.width), float32(g.height))
	}

	v := g.app.View()
	screen.DrawTrianglesShader(g.vertices, shader.QuadIndices, g.shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			shader.KageZoom:       float32(v.Zoom),
			shader.KageOffset:     []float32{float32(v.OffsetX), float32(v.OffsetY)},
			shader.KageResolution: []float32{float32(g.width), float32(g.height)},
		},
	})

	if g.hud != nil {
		g.drawHUD(screen, hud.Status(v))
	}
}

func (g *hostGame) drawHUD(screen *ebiten.Image, status string) {
	g.hud.Draw(status)
	if g.hudImg == nil {
		w, h := g.hud.Size()
		g.hudImg = ebiten.NewImage(int(w), int(h))
		_ = g.hud.Display()
	}
	if g.hud.Dirty() {
		g.hudImg.WritePixels(g.hud.Image().Pix)
	}
	screen.DrawImage(g.hudImg, nil)
}

// Layout follows the window size; a resize only changes the viewport extent.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// quadVertices maps the clip-space quad onto a w×h destination.
func quadVertices(w, h float32) []ebiten.Vertex {
	vs := make([]ebiten.Vertex, shader.QuadVertexCount)
	for i := range vs {
		x, y, u, v := shader.QuadVertex(i)
		vs[i] = ebiten.Vertex{
			DstX:   (x + 1) / 2 * w,
			DstY:   (1 - y) / 2 * h,
			SrcX:   u,
			SrcY:   v,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return vs
}
