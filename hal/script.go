package hal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

var keyByName = map[string]KeyCode{
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"w":      KeyW,
	"s":      KeyS,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"none":   KeyUnknown,
}

type scriptStep struct {
	keys   []KeyCode
	frames int
}

// ScriptKeyboard replays a fixed sequence of held key sets, one step per frame.
//
// A script is a whitespace-separated list of KEY[+KEY...][:FRAMES] tokens, e.g.
// "W:30 Right+Up:10 none:5". FRAMES defaults to 1. Key names are
// case-insensitive; "none" holds nothing. Once the script is exhausted the
// keyboard reports Escape so the app shuts down.
type ScriptKeyboard struct {
	steps []scriptStep
	step  int
	frame int
}

// ParseScript builds a ScriptKeyboard from src.
func ParseScript(src string) (*ScriptKeyboard, error) {
	tokens, err := shlex.Split(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	k := &ScriptKeyboard{}
	for _, tok := range tokens {
		st, err := parseStep(tok)
		if err != nil {
			return nil, err
		}
		if st.frames > 0 {
			k.steps = append(k.steps, st)
		}
	}
	return k, nil
}

func parseStep(tok string) (scriptStep, error) {
	st := scriptStep{frames: 1}
	names := tok
	if i := strings.LastIndexByte(tok, ':'); i >= 0 {
		names = tok[:i]
		n, err := strconv.Atoi(tok[i+1:])
		if err != nil || n < 0 {
			return st, fmt.Errorf("script: bad frame count in %q", tok)
		}
		st.frames = n
	}
	for _, name := range strings.Split(names, "+") {
		code, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return st, fmt.Errorf("script: unknown key %q in %q", name, tok)
		}
		if code != KeyUnknown {
			st.keys = append(st.keys, code)
		}
	}
	return st, nil
}

// Frames returns the total number of frames the script holds keys for.
func (k *ScriptKeyboard) Frames() int {
	n := 0
	for _, st := range k.steps {
		n += st.frames
	}
	return n
}

// Done reports whether every step has been consumed.
func (k *ScriptKeyboard) Done() bool {
	return k.step >= len(k.steps)
}

// Advance moves to the next frame.
func (k *ScriptKeyboard) Advance() {
	if k.Done() {
		return
	}
	k.frame++
	if k.frame >= k.steps[k.step].frames {
		k.step++
		k.frame = 0
	}
}

func (k *ScriptKeyboard) KeyDown(code KeyCode) bool {
	if k.Done() {
		return code == KeyEscape && len(k.steps) > 0
	}
	for _, c := range k.steps[k.step].keys {
		if c == code {
			return true
		}
	}
	return false
}
