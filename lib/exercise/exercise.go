package exercise

import (
	"fmt"

	"github.com/prismgl/prism/lib/api"
	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/frameloop"
	"github.com/prismgl/prism/lib/geometry"
	"github.com/prismgl/prism/lib/kbdctl"
	"github.com/prismgl/prism/lib/log"
	"github.com/prismgl/prism/lib/rendering"
	"github.com/prismgl/prism/lib/rendering/glbackend"
	"github.com/prismgl/prism/lib/rendering/shaders"
	"github.com/prismgl/prism/lib/window"
)

// MakeWindowAndRun opens the window, sets up the configured exercise and
// renders until the window is closed. Any error it returns happened before
// the first frame. Must be called on the main thread.
func MakeWindowAndRun(cfg *config.Config) error {
	logger := log.Module("exercise")

	mesh, err := geometry.ByName(cfg.Exercise)
	if err != nil {
		return err
	}

	err = window.Init()
	if err != nil {
		return err
	}
	defer window.Terminate()

	win, err := window.New(&cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev, err := glbackend.Init()
	if err != nil {
		return err
	}
	win.AttachDevice(dev)

	rel := rendering.NewReleaser(logger)
	defer rel.ReleaseAll()

	opts := frameloop.Options{
		Exercise: cfg.Exercise,
		Colour:   frameloop.ClearColour(&cfg.Clear),
	}

	if mesh != nil {
		rebuild := func() (*rendering.Program, error) {
			src, err := shaders.Load(&cfg.Shaders)
			if err != nil {
				return nil, err
			}
			return shaders.BuildProgram(dev, src)
		}

		program, err := rebuild()
		if err != nil {
			return fmt.Errorf("could not init GL program: %w", err)
		}

		opts.Scene, err = rendering.NewScene(dev, mesh, program, rel)
		if err != nil {
			return fmt.Errorf("could not upload geometry: %w", err)
		}
		opts.Rebuild = rebuild

		if cfg.Shaders.Watch {
			watcher, err := shaders.Watch(logger, string(cfg.Shaders.Vertex), string(cfg.Shaders.Fragment))
			if err != nil {
				return err
			}
			defer watcher.Close()
			opts.Reloads = watcher.Reloads()
		}
	}

	driver := frameloop.New(win, dev, rel, opts)

	kbdctl.SetupShortcutKeys(win, kbdctl.Actions{
		Quit:   driver.RequestShutdown,
		Reload: driver.RequestReload,
	})

	theApi := api.ServeInBackground(cfg.Api, driver)
	if theApi != nil {
		defer theApi.Close()
	}

	driver.Run()
	return nil
}
