package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/exercise"
	"github.com/prismgl/prism/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

// Opens the window and cycles the clear colour, nothing is drawn.
func main() {
	log.Setup(slog.LevelInfo)

	cfg := config.Default()
	cfg.Exercise = "window"

	err := exercise.MakeWindowAndRun(cfg)
	if err != nil {
		slog.Error("Failed to initialize", slog.Any("err", err))
		os.Exit(-1)
	}
}
