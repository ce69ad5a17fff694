//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"mandelview/hud"
	"mandelview/shader"
)

// RunGL opens an OpenGL 3.3 core window and renders the app's view with the
// GLSL program pair. It blocks until the window closes or the app quits.
//
// GLFW and GL calls must stay on the thread that created the context, so the
// calling goroutine is locked to its OS thread for the duration.
func RunGL(newApp func(HAL) App, cfg WindowConfig) error {
	cfg = cfg.withDefaults()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %v", ErrSurface, err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurface, err)
	}
	defer win.Destroy()

	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrLoader, err)
	}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	r, err := newGLRenderer()
	if err != nil {
		return err
	}
	defer r.release()

	h := New(glfwKeyboard{win: win}).(*hostHAL)
	app := newApp(h)
	clock := newFrameClock()
	Logf(h.Logger(), "gl: %s, %dx%d %q", gl.GoStr(gl.GetString(gl.VERSION)), cfg.Width, cfg.Height, cfg.Title)

	title := ""
	for !win.ShouldClose() {
		if err := app.Step(clock.tick()); err != nil {
			if !errors.Is(err, ErrQuit) {
				return err
			}
			win.SetShouldClose(true)
		}

		v := app.View()
		r.draw(float32(v.Zoom), mgl32.Vec2{float32(v.OffsetX), float32(v.OffsetY)})

		if cfg.HUD {
			if t := cfg.Title + " | " + hud.Status(v); t != title {
				title = t
				win.SetTitle(title)
			}
		}

		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

var glfwKeys = map[KeyCode]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeyW:      glfw.KeyW,
	KeyS:      glfw.KeyS,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
}

type glfwKeyboard struct {
	win *glfw.Window
}

func (k glfwKeyboard) KeyDown(code KeyCode) bool {
	key, ok := glfwKeys[code]
	if !ok {
		return false
	}
	return k.win.GetKey(key) == glfw.Press
}

type glRenderer struct {
	program   uint32
	vao       uint32
	vbo       uint32
	zoomLoc   int32
	offsetLoc int32
}

func newGLRenderer() (*glRenderer, error) {
	program, err := linkProgram(shader.VertexGLSL(), shader.FragmentGLSL())
	if err != nil {
		return nil, err
	}
	r := &glRenderer{program: program}

	r.zoomLoc = gl.GetUniformLocation(program, gl.Str(shader.UniformZoom+"\x00"))
	r.offsetLoc = gl.GetUniformLocation(program, gl.Str(shader.UniformOffset+"\x00"))
	if r.zoomLoc == -1 || r.offsetLoc == -1 {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("%w: zoom=%d offset=%d", ErrUniformMissing, r.zoomLoc, r.offsetLoc)
	}

	quad := shader.Quad
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)

	stride := int32(shader.QuadStride * 4)
	gl.VertexAttribPointer(shader.AttribPosition, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.AttribPosition)
	gl.VertexAttribPointer(shader.AttribUV, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(shader.AttribUV)
	gl.BindVertexArray(0)

	return r, nil
}

func (r *glRenderer) draw(zoom float32, offset mgl32.Vec2) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform1f(r.zoomLoc, zoom)
	gl.Uniform2f(r.offsetLoc, offset.X(), offset.Y())

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, shader.QuadVertexCount)
}

func (r *glRenderer) release() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%w: vertex:\n%v", ErrShaderCompile, err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("%w: fragment:\n%v", ErrShaderCompile, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return 0, fmt.Errorf("%w:\n%s", ErrShaderLink, strings.TrimRight(log, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}
