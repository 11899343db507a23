package window

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	gopointer "github.com/mattn/go-pointer"
	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/log"
	"github.com/prismgl/prism/lib/rendering"
)

// Window owns a GLFW window and the OpenGL context created with it.
type Window struct {
	Window *glfw.Window

	dev    rendering.Device
	handle unsafe.Pointer
	logger *slog.Logger
}

// Init must be called from the main thread before New.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return nil
}

func Terminate() {
	glfw.Terminate()
}

// New creates the window and makes its context current on the calling
// thread.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{logger: log.Module("window")}
	w.logger.Debug("Initializing window")

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(*cfg.Resizable))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	w.Window = window

	window.MakeContextCurrent()
	if *cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// the callback only gets the GLFW window, the user pointer leads back
	// to this one
	w.handle = gopointer.Save(w)
	window.SetUserPointer(w.handle)
	window.SetFramebufferSizeCallback(framebufferSizeCallback)

	return w, nil
}

// AttachDevice sets the initial viewport and keeps it in sync with the
// framebuffer from then on. The device must belong to this window's
// context.
func (w *Window) AttachDevice(dev rendering.Device) {
	w.dev = dev

	vendor := dev.GetString(rendering.Vendor)
	renderer := dev.GetString(rendering.Renderer)
	version := dev.GetString(rendering.Version)
	w.logger.Info(fmt.Sprintf("OpenGL version %s / %s / %s", vendor, renderer, version))

	width, height := w.Window.GetFramebufferSize()
	w.resize(width, height)
}

func framebufferSizeCallback(window *glfw.Window, width, height int) {
	w, ok := gopointer.Restore(window.GetUserPointer()).(*Window)
	if !ok {
		return
	}
	w.resize(width, height)
}

func (w *Window) resize(width, height int) {
	if w.dev == nil {
		return
	}
	w.logger.Debug(fmt.Sprintf("Viewport %dx%d", width, height))
	rendering.ResizeViewport(w.dev, width, height)
}

func (w *Window) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Window.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Time is the number of seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	if w.Window == nil {
		return
	}
	w.Window.SetFramebufferSizeCallback(nil)
	w.Window.Destroy()
	gopointer.Unref(w.handle)
	w.Window = nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
