package shaders

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/rendering/fakegl"
	"github.com/stretchr/testify/assert"
)

func TestLoadEmbedded(t *testing.T) {
	cfg := config.Default()

	src, err := Load(&cfg.Shaders)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(src.Vertex, "#version 410 core\n"))
	assert.Contains(t, src.Vertex, "layout (location = 0) in vec3 aPos;")
	assert.Contains(t, src.Fragment, "FragColor = vec4(0.8, 0.3, 0.02, 1);")
}

func TestTemplateNames(t *testing.T) {
	s, err := NewShaderer()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"default.vert", "default.frag"}, s.TemplateNames())
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	frag := filepath.Join(dir, "a.frag")
	assert.NoError(t, os.WriteFile(vert, []byte("vertex"), 0o644))
	assert.NoError(t, os.WriteFile(frag, []byte("fragment"), 0o644))

	src, err := Load(&config.ShaderCfg{Vertex: config.CfgPath(vert), Fragment: config.CfgPath(frag)})
	assert.NoError(t, err)
	assert.Equal(t, &Source{Vertex: "vertex", Fragment: "fragment"}, src)

	_, err = Load(&config.ShaderCfg{Vertex: config.CfgPath(vert), Fragment: config.CfgPath(filepath.Join(dir, "missing"))})
	assert.ErrorContains(t, err, "could not read fragment shader")
}

func TestBuildProgram(t *testing.T) {
	dev := fakegl.New()

	program, err := BuildProgram(dev, &Source{Vertex: "v", Fragment: "f"})
	assert.NoError(t, err)

	// shaders 1 and 2 are gone, program 3 is left
	assert.Equal(t, uint32(3), program.ID)
	assert.ElementsMatch(t, []uint32{1, 2}, dev.Deleted)
	assert.Equal(t, 1, dev.Live())
	assert.Len(t, dev.Named("AttachShader"), 2)
	assert.Empty(t, dev.Violations)
}

func TestBuildProgramCompileFailure(t *testing.T) {
	dev := fakegl.New()
	dev.CompileError = func(source string) string {
		if source == "broken" {
			return "0:1(1): error: syntax error"
		}
		return ""
	}

	_, err := BuildProgram(dev, &Source{Vertex: "v", Fragment: "broken"})
	assert.EqualError(t, err, "fragment shader: failed to compile: 0:1(1): error: syntax error")
	assert.Equal(t, 0, dev.Live())
	assert.Empty(t, dev.Named("CreateProgram"))
	assert.Empty(t, dev.Violations)
}

func TestBuildProgramLinkFailure(t *testing.T) {
	dev := fakegl.New()
	dev.LinkError = "error: no main"

	_, err := BuildProgram(dev, &Source{Vertex: "v", Fragment: "f"})
	assert.EqualError(t, err, "failed to link program: error: no main")
	assert.Equal(t, 0, dev.Live())
	assert.Empty(t, dev.Violations)
}

func TestWatcherSignalsRewrite(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	assert.NoError(t, os.WriteFile(vert, []byte("one"), 0o644))

	w, err := Watch(slog.Default(), vert)
	assert.NoError(t, err)
	defer w.Close()

	assert.NoError(t, os.WriteFile(vert, []byte("two"), 0o644))

	select {
	case path := <-w.Reloads():
		assert.Equal(t, vert, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload signalled")
	}
}

func TestWatchMissingFile(t *testing.T) {
	_, err := Watch(slog.Default(), filepath.Join(t.TempDir(), "missing.vert"))
	assert.Error(t, err)
}
