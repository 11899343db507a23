package frameloop

import (
	"log/slog"
	"sync/atomic"

	"github.com/prismgl/prism/lib/log"
	"github.com/prismgl/prism/lib/metrics"
	"github.com/prismgl/prism/lib/rendering"
	"github.com/prismgl/prism/lib/stats"
	"github.com/prismgl/prism/lib/utils"
)

type Phase int32

const (
	Initializing Phase = iota
	Running
	ShuttingDown
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Surface is the window side of the loop: presentation, event processing
// and the clock.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	Time() float64
}

// ColourFunc gives the clear colour at t seconds.
type ColourFunc func(t float64) utils.Colour

// RebuildFunc compiles a fresh program from the current shader sources.
type RebuildFunc func() (*rendering.Program, error)

type Options struct {
	Exercise string
	// Scene is drawn every frame; nil only clears.
	Scene  *rendering.Scene
	Colour ColourFunc
	Stats  *stats.Stats
	// Reloads and Rebuild enable shader hot reloading.
	Reloads <-chan string
	Rebuild RebuildFunc
}

// Driver runs the frame loop. Every method except RequestShutdown,
// RequestReload and Phase must be called on the thread owning the context.
type Driver struct {
	surface  Surface
	dev      rendering.Device
	releaser *rendering.Releaser
	opts     Options
	metrics  metrics.LoopMetrics
	logger   *slog.Logger

	shutdown        atomic.Bool
	reloadRequested atomic.Bool
	phase           atomic.Int32
}

func New(surface Surface, dev rendering.Device, releaser *rendering.Releaser, opts Options) *Driver {
	if opts.Colour == nil {
		opts.Colour = utils.ColourAt
	}
	if opts.Stats == nil {
		opts.Stats = stats.New(opts.Exercise)
	}
	return &Driver{
		surface:  surface,
		dev:      dev,
		releaser: releaser,
		opts:     opts,
		metrics:  metrics.NewLoopMetrics(opts.Exercise),
		logger:   log.Module("frameloop"),
	}
}

func (d *Driver) Phase() Phase {
	return Phase(d.phase.Load())
}

func (d *Driver) Stats() *stats.Stats {
	return d.opts.Stats
}

// RequestShutdown ends the loop after the current frame.
func (d *Driver) RequestShutdown() {
	d.shutdown.Store(true)
}

// RequestReload rebuilds the shader program after the current frame.
func (d *Driver) RequestReload() {
	d.reloadRequested.Store(true)
}

// Run draws frames until the surface wants to close or a shutdown was
// requested, then releases every GPU object.
func (d *Driver) Run() {
	d.phase.Store(int32(Running))
	d.logger.Info("Starting render loop", slog.String("exercise", d.opts.Exercise))

	var frameTimer utils.FrameTimer
	firstFrame := true
	for !d.shutdown.Load() && !d.surface.ShouldClose() {
		now := d.surface.Time()
		dt := frameTimer.Tick(now)

		colour := d.opts.Colour(now)
		d.dev.ClearColor(colour.R, colour.G, colour.B, colour.A)
		d.dev.Clear(rendering.ColorBufferBit)

		if d.opts.Scene != nil {
			d.opts.Scene.Draw()
			d.metrics.DrawCalls.Inc()
		}

		d.surface.SwapBuffers()
		d.surface.PollEvents()

		if firstFrame {
			if err := rendering.CheckError(d.dev, "first frame"); err != nil {
				d.logger.Warn("OpenGL reported an error", slog.Any("err", err))
			}
			firstFrame = false
		} else {
			d.metrics.FrameSeconds.Observe(dt.Seconds())
		}

		// Maintenance
		d.metrics.FramesRendered.Inc()
		d.opts.Stats.Update(colour)
		d.maybeReload()
	}

	d.phase.Store(int32(ShuttingDown))
	d.logger.Info("Shutting down")
	d.releaser.ReleaseAll()
	d.phase.Store(int32(Stopped))
}

func (d *Driver) maybeReload() {
	reload := d.reloadRequested.Swap(false)
	select {
	case path := <-d.opts.Reloads:
		d.logger.Info("Shader changed", slog.String("path", path))
		reload = true
	default:
	}
	if !reload || d.opts.Scene == nil || d.opts.Rebuild == nil {
		return
	}

	program, err := d.opts.Rebuild()
	if err != nil {
		d.metrics.ReloadsFailed.Inc()
		d.logger.Error("Could not rebuild shader program, keeping the old one", slog.Any("err", err))
		return
	}
	d.opts.Scene.SwapProgram(program)
	d.metrics.ReloadsOK.Inc()
	d.opts.Stats.ShaderReloaded()
	d.logger.Info("Shader program rebuilt")
}
