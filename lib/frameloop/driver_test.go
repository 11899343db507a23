package frameloop

import (
	"errors"
	"testing"

	"github.com/prismgl/prism/lib/geometry"
	"github.com/prismgl/prism/lib/rendering"
	"github.com/prismgl/prism/lib/rendering/fakegl"
	"github.com/prismgl/prism/lib/utils"
	"github.com/stretchr/testify/assert"
)

// fakeSurface closes after a fixed number of presented frames and advances
// its clock by one second per frame.
type fakeSurface struct {
	frames     int
	closeAfter int
	swaps      int
	polls      int
	onPoll     func(frame int)
}

func (s *fakeSurface) ShouldClose() bool {
	return s.frames >= s.closeAfter
}

func (s *fakeSurface) SwapBuffers() {
	s.swaps++
}

func (s *fakeSurface) PollEvents() {
	s.polls++
	s.frames++
	if s.onPoll != nil {
		s.onPoll(s.frames)
	}
}

func (s *fakeSurface) Time() float64 {
	return float64(s.frames)
}

func newScene(t *testing.T, dev *fakegl.Device, rel *rendering.Releaser, mesh *geometry.Mesh) *rendering.Scene {
	t.Helper()
	scene, err := rendering.NewScene(dev, mesh, rendering.NewProgram(dev, dev.CreateProgram()), rel)
	assert.NoError(t, err)
	dev.Reset()
	return scene
}

func TestRunDrawsEveryFrame(t *testing.T) {
	dev := fakegl.New()
	rel := rendering.NewReleaser(nil)
	scene := newScene(t, dev, rel, geometry.Subdivided())
	surface := &fakeSurface{closeAfter: 3}

	d := New(surface, dev, rel, Options{Exercise: "subdivided", Scene: scene})
	assert.Equal(t, Initializing, d.Phase())
	d.Run()

	assert.Equal(t, Stopped, d.Phase())
	assert.Equal(t, 3, surface.swaps)
	assert.Equal(t, 3, surface.polls)

	var frame []string
	for _, c := range dev.Calls[:5] {
		frame = append(frame, c.String())
	}
	assert.Equal(t, []string{
		"ClearColor(1, 0.5, 0.5, 1)",
		"Clear(16384)",
		"UseProgram(1)",
		"BindVertexArray(2)",
		"DrawElements(4, 9, 5125, 0)",
	}, frame)
	assert.Len(t, dev.Named("DrawElements"), 3)

	clears := dev.Named("ClearColor")
	assert.Len(t, clears, 3)
	for i, c := range clears {
		want := utils.ColourAt(float64(i))
		assert.Equal(t, []any{want.R, want.G, want.B, float32(1)}, c.Args)
	}

	assert.Equal(t, []uint32{4, 3, 2, 1}, dev.Deleted)
	assert.Equal(t, 0, dev.Live())
	assert.Empty(t, dev.Violations)
	assert.Equal(t, uint64(3), d.Stats().Snapshot().Frames)
}

func TestRunWithoutSceneOnlyClears(t *testing.T) {
	dev := fakegl.New()
	surface := &fakeSurface{closeAfter: 2}

	d := New(surface, dev, rendering.NewReleaser(nil), Options{Exercise: "window"})
	d.Run()

	assert.Len(t, dev.Named("Clear"), 2)
	assert.Empty(t, dev.Named("DrawArrays"))
	assert.Empty(t, dev.Named("DrawElements"))
	assert.Empty(t, dev.Named("UseProgram"))
}

func TestRunStopsOnShutdownRequest(t *testing.T) {
	dev := fakegl.New()
	rel := rendering.NewReleaser(nil)
	scene := newScene(t, dev, rel, geometry.Triangle())
	surface := &fakeSurface{closeAfter: 1000}

	d := New(surface, dev, rel, Options{Exercise: "triangle", Scene: scene})
	surface.onPoll = func(frame int) {
		if frame == 2 {
			d.RequestShutdown()
		}
	}
	d.Run()

	assert.Equal(t, 2, surface.swaps)
	assert.Len(t, dev.Named("DrawArrays"), 2)
	assert.Equal(t, 0, dev.Live())
	assert.Empty(t, dev.Violations)
}

func TestRunClosedWindowDrawsNothing(t *testing.T) {
	dev := fakegl.New()
	rel := rendering.NewReleaser(nil)
	newScene(t, dev, rel, geometry.Triangle())

	d := New(&fakeSurface{closeAfter: 0}, dev, rel, Options{})
	d.Run()

	assert.Empty(t, dev.Named("Clear"))
	assert.Equal(t, 0, dev.Live())
}

func TestFixedColour(t *testing.T) {
	dev := fakegl.New()
	orange := utils.ColourFromRGBA(utils.ColourParse("#ff8000ff"))

	d := New(&fakeSurface{closeAfter: 1}, dev, rendering.NewReleaser(nil), Options{
		Colour: func(float64) utils.Colour { return orange },
	})
	d.Run()

	assert.Equal(t, []any{orange.R, orange.G, orange.B, orange.A}, dev.Named("ClearColor")[0].Args)
}

func TestShaderReload(t *testing.T) {
	dev := fakegl.New()
	rel := rendering.NewReleaser(nil)
	scene := newScene(t, dev, rel, geometry.Triangle())
	reloads := make(chan string, 1)
	surface := &fakeSurface{closeAfter: 4}

	var rebuilt []*rendering.Program
	fail := false
	d := New(surface, dev, rel, Options{
		Exercise: "triangle",
		Scene:    scene,
		Reloads:  reloads,
		Rebuild: func() (*rendering.Program, error) {
			if fail {
				return nil, errors.New("syntax error")
			}
			p := rendering.NewProgram(dev, dev.CreateProgram())
			rebuilt = append(rebuilt, p)
			return p, nil
		},
	})
	surface.onPoll = func(frame int) {
		switch frame {
		case 1:
			reloads <- "shader.frag"
		case 2:
			fail = true
			d.RequestReload()
		}
	}
	d.Run()

	assert.Len(t, rebuilt, 1)
	// the first program was replaced after frame one, the failed rebuild
	// kept the replacement
	uses := dev.Named("UseProgram")
	assert.Equal(t, []any{uint32(1)}, uses[0].Args)
	assert.Equal(t, []any{uint32(4)}, uses[3].Args)
	assert.Equal(t, uint64(1), d.Stats().Snapshot().ShaderReloads)
	assert.Equal(t, 0, dev.Live())
	assert.Empty(t, dev.Violations)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "shutting down", ShuttingDown.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
