// Package shader holds the GPU programs and the static geometry they are drawn with.
//
// Two dialects are embedded: a GLSL 330 vertex/fragment pair for the OpenGL
// backend and a Kage fragment program for the ebiten backend. Both implement
// the same escape-time coloring as package escape.
package shader

import (
	_ "embed"
	"fmt"
	"regexp"
)

var (
	//go:embed mandelbrot.vert
	vertexGLSL []byte
	//go:embed mandelbrot.frag
	fragmentGLSL []byte
	//go:embed mandelbrot.kage
	fragmentKage []byte
)

// VertexGLSL returns the pass-through vertex program.
func VertexGLSL() string { return string(vertexGLSL) }

// FragmentGLSL returns the escape-time fragment program.
func FragmentGLSL() string { return string(fragmentGLSL) }

// Kage returns the escape-time program in ebiten's shading language.
func Kage() []byte {
	out := make([]byte, len(fragmentKage))
	copy(out, fragmentKage)
	return out
}

// Uniform slot names per dialect.
const (
	UniformZoom   = "zoom"
	UniformOffset = "offset"

	KageZoom       = "Zoom"
	KageOffset     = "Offset"
	KageResolution = "Resolution"
)

// Vertex attribute locations in the GLSL vertex program.
const (
	AttribPosition = 0
	AttribUV       = 1
)

// Quad layout: six vertices, each {x, y, u, v}.
const (
	QuadVertexCount = 6
	QuadStride      = 4
)

// Quad is the full-screen surface as two triangles.
// Positions are clip-space; uv (0,0) is the bottom-left corner.
var Quad = [QuadVertexCount * QuadStride]float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, -1, 1, 0,
	1, 1, 1, 1,
	-1, 1, 0, 1,
}

// QuadIndices draws Quad as an unindexed triangle list.
var QuadIndices = []uint16{0, 1, 2, 3, 4, 5}

// QuadVertex returns the position and uv of vertex i.
func QuadVertex(i int) (x, y, u, v float32) {
	b := i * QuadStride
	return Quad[b], Quad[b+1], Quad[b+2], Quad[b+3]
}

// ErrMissingUniform is returned by RequireUniforms.
type ErrMissingUniform struct {
	Name string
}

func (e *ErrMissingUniform) Error() string {
	return fmt.Sprintf("uniform %q not declared", e.Name)
}

// uniformDecl matches GLSL "uniform <type> name;" and Kage "var Name <type>".
var uniformDecl = regexp.MustCompile(`(?m)^\s*(?:uniform\s+\w+\s+(\w+)\s*;|var\s+(\w+)\s+\w+)`)

// Uniforms lists the uniform names declared in src.
func Uniforms(src []byte) []string {
	var names []string
	for _, m := range uniformDecl.FindAllSubmatch(src, -1) {
		switch {
		case len(m[1]) > 0:
			names = append(names, string(m[1]))
		case len(m[2]) > 0:
			names = append(names, string(m[2]))
		}
	}
	return names
}

// RequireUniforms reports the first name in want that src does not declare.
func RequireUniforms(src []byte, want ...string) error {
	have := make(map[string]bool)
	for _, n := range Uniforms(src) {
		have[n] = true
	}
	for _, n := range want {
		if !have[n] {
			return &ErrMissingUniform{Name: n}
		}
	}
	return nil
}
