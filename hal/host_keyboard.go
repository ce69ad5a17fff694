//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var ebitenKeys = map[KeyCode]ebiten.Key{
	KeyEscape: ebiten.KeyEscape,
	KeyW:      ebiten.KeyW,
	KeyS:      ebiten.KeyS,
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
}

// ebitenKeyboard reads key state polled by ebiten for the current tick.
type ebitenKeyboard struct{}

func (ebitenKeyboard) KeyDown(k KeyCode) bool {
	key, ok := ebitenKeys[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}
