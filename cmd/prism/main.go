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

//	@title			prism API
//	@version		1.0
//	@description	Control and statistics for the prism render loop
//	@BasePath		/
func main() {
	log.Setup(slog.LevelInfo)

	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			slog.Error("Invalid config", slog.Any("err", err))
			os.Exit(-1)
		}
		log.Setup(log.ParseLevel(cfg.Log.Level))
	}

	err := exercise.MakeWindowAndRun(cfg)
	if err != nil {
		slog.Error("Failed to initialize", slog.Any("err", err))
		os.Exit(-1)
	}
}
