package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	kbd    Keyboard
}

// New returns a host HAL that logs to stdout and reads keys from kbd.
func New(kbd Keyboard) HAL {
	return newHostHAL(os.Stdout, kbd)
}

func newHostHAL(w io.Writer, kbd Keyboard) *hostHAL {
	if kbd == nil {
		kbd = noKeys{}
	}
	return &hostHAL{logger: &hostLogger{w: w}, kbd: kbd}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Keyboard() Keyboard { return h.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

type noKeys struct{}

func (noKeys) KeyDown(KeyCode) bool { return false }
