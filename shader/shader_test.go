package shader

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"mandelview/escape"
)

func TestSourcesEmbedded(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":   VertexGLSL(),
		"fragment": FragmentGLSL(),
		"kage":     string(Kage()),
	} {
		if strings.TrimSpace(src) == "" {
			t.Fatalf("%s source is empty", name)
		}
	}
	if !strings.HasPrefix(VertexGLSL(), "#version 330 core") {
		t.Fatal("vertex source lacks #version line")
	}
	if !strings.HasPrefix(FragmentGLSL(), "#version 330 core") {
		t.Fatal("fragment source lacks #version line")
	}
	if !strings.HasPrefix(string(Kage()), "//kage:unit pixels") {
		t.Fatal("kage source lacks unit directive")
	}
}

func TestKageReturnsCopy(t *testing.T) {
	a := Kage()
	a[0] = 'x'
	if Kage()[0] == 'x' {
		t.Fatal("Kage() exposes the embedded buffer")
	}
}

func TestUniformsDeclared(t *testing.T) {
	if err := RequireUniforms([]byte(FragmentGLSL()), UniformZoom, UniformOffset); err != nil {
		t.Fatalf("GLSL: %v", err)
	}
	if err := RequireUniforms(Kage(), KageZoom, KageOffset, KageResolution); err != nil {
		t.Fatalf("Kage: %v", err)
	}
}

func TestRequireUniformsMissing(t *testing.T) {
	err := RequireUniforms([]byte("uniform float zoom;\n"), UniformZoom, UniformOffset)
	var missing *ErrMissingUniform
	if !errors.As(err, &missing) {
		t.Fatalf("RequireUniforms() = %v, want ErrMissingUniform", err)
	}
	if missing.Name != UniformOffset {
		t.Fatalf("missing = %q, want %q", missing.Name, UniformOffset)
	}
}

func TestUniformsParse(t *testing.T) {
	src := []byte("uniform float zoom;\nuniform vec2 offset;\nvar Zoom float\n\tvar Offset vec2\n")
	got := Uniforms(src)
	want := []string{"zoom", "offset", "Zoom", "Offset"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Uniforms() = %v, want %v", got, want)
	}
}

func TestIterationBudgetMatchesEvaluator(t *testing.T) {
	want := strconv.Itoa(escape.MaxIterations)
	if !strings.Contains(FragmentGLSL(), "maxIterations = "+want+";") {
		t.Fatalf("GLSL iteration budget differs from %s", want)
	}
	if !strings.Contains(string(Kage()), "maxIterations = "+want) {
		t.Fatalf("Kage iteration budget differs from %s", want)
	}
}

func TestQuadCoversSurface(t *testing.T) {
	if len(QuadIndices) != QuadVertexCount {
		t.Fatalf("len(QuadIndices) = %d, want %d", len(QuadIndices), QuadVertexCount)
	}

	var area float32
	for tri := 0; tri < 2; tri++ {
		x0, y0, _, _ := QuadVertex(tri * 3)
		x1, y1, _, _ := QuadVertex(tri*3 + 1)
		x2, y2, _, _ := QuadVertex(tri*3 + 2)
		a := ((x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)) / 2
		if a <= 0 {
			t.Fatalf("triangle %d is not counter-clockwise", tri)
		}
		area += a
	}
	if area != 4 {
		t.Fatalf("quad area = %v, want 4 (clip space [-1,1]²)", area)
	}

	for i := 0; i < QuadVertexCount; i++ {
		x, y, u, v := QuadVertex(i)
		if u != (x+1)/2 || v != (y+1)/2 {
			t.Fatalf("vertex %d uv = (%v, %v), want it to follow position (%v, %v)", i, u, v, x, y)
		}
	}
}
