package kbdctl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prismgl/prism/lib/log"
	"github.com/prismgl/prism/lib/window"
)

// Actions are invoked from GLFW's event processing on the main thread.
type Actions struct {
	Quit   func()
	Reload func()
}

// SetupShortcutKeys binds Escape to closing the window, Ctrl+Shift+Q to a
// shutdown request and R to reloading the shaders.
func SetupShortcutKeys(w *window.Window, actions Actions) {
	w.Window.SetKeyCallback(keyCallback(actions))
}

func keyCallback(actions Actions) glfw.KeyCallback {
	logger := log.Module("kbdctl")

	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if action == glfw.Release {
			if key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0 {
				logger.Info("told to quit, exiting")
				if actions.Quit != nil {
					actions.Quit()
				}
			}
		}
		if action == glfw.Press && key == glfw.KeyR && actions.Reload != nil {
			logger.Info("reloading shaders")
			actions.Reload()
		}
	}
}
