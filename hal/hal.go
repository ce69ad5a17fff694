package hal

import (
	"errors"
	"fmt"
	"time"

	"mandelview/view"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Logf formats a line and writes it to l. A nil logger drops the line.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

// Initialization failures. Runners wrap these with the diagnostic text.
var (
	ErrSurface        = errors.New("create surface")
	ErrLoader         = errors.New("load graphics functions")
	ErrShaderCompile  = errors.New("shader compilation failed")
	ErrShaderLink     = errors.New("shader program linking failed")
	ErrUniformMissing = errors.New("uniform location error")
)

// ErrQuit is returned by App.Step when the user asked to close the window.
var ErrQuit = errors.New("quit")

// KeyCode is a minimal key identifier.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Keys is the fixed set of keys the renderer polls.
var Keys = []KeyCode{KeyEscape, KeyW, KeyS, KeyUp, KeyDown, KeyLeft, KeyRight}

var keyNames = map[KeyCode]string{
	KeyEscape: "Escape",
	KeyW:      "W",
	KeyS:      "S",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Keyboard reports the current key-down state.
type Keyboard interface {
	KeyDown(k KeyCode) bool
}

// HAL provides the only contact point between the renderer and the host.
type HAL interface {
	Logger() Logger
	Keyboard() Keyboard
}

// App is driven by a runner once per frame.
//
// Step samples input and advances the view; dt is the time since the previous
// step (zero on the first). View returns the snapshot the frame is drawn with.
type App interface {
	Step(dt time.Duration) error
	View() view.State
}

// WindowConfig controls the windowed runners.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	HUD    bool
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Title == "" {
		c.Title = "Mandelbrot Renderer"
	}
	return c
}
