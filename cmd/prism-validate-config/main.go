package main

import (
	"fmt"
	"log"
	"os"

	"github.com/prismgl/prism/lib/config"
	"github.com/prismgl/prism/lib/geometry"
	"github.com/prismgl/prism/lib/rendering/shaders"
)

// Checks a config without opening a window: the YAML itself, the exercise
// geometry and whether the shader sources can be read.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fail(err)
	}

	mesh, err := geometry.ByName(cfg.Exercise)
	if err != nil {
		fail(err)
	}
	if mesh != nil {
		if err := mesh.Validate(); err != nil {
			fail(err)
		}
		if _, err := shaders.Load(&cfg.Shaders); err != nil {
			fail(err)
		}
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
}

func fail(err error) {
	fmt.Printf("Config invalid: %s\n", err)
	os.Exit(1)
}
