package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/prismgl/prism/lib/utils"
)

const (
	DefaultTitle  = "OpenGL Project"
	DefaultWidth  = 800
	DefaultHeight = 600

	ClearCycle = "cycle"
	ClearFixed = "fixed"
)

var Exercises = []string{"window", "triangle", "subdivided"}

type Config struct {
	Window   WindowCfg
	Exercise string
	Clear    ClearCfg
	Shaders  ShaderCfg
	Api      *ApiCfg
	Log      LogCfg
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable *bool
	VSync     *bool `yaml:"vsync"`
	GLMajor   int   `yaml:"gl_major"`
	GLMinor   int   `yaml:"gl_minor"`
}

type ClearCfg struct {
	Mode   string
	Colour string
}

type ShaderCfg struct {
	// Vertex and Fragment select shader files; both empty means the
	// embedded sources are used.
	Vertex         CfgPath
	Fragment       CfgPath
	Watch          bool
	GLSLVersion    string     `yaml:"glsl_version"`
	FragmentColour [4]float32 `yaml:"fragment_colour"`
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

type LogCfg struct {
	Level string
}

// Default is the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	cfg := &Config{}
	err = yaml.NewDecoder(f).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}

	base := filepath.Dir(absFilename)
	cfg.Shaders.Vertex = cfg.Shaders.Vertex.Resolve(base)
	cfg.Shaders.Fragment = cfg.Shaders.Fragment.Resolve(base)

	cfg.fillDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 && c.Window.Height == 0 {
		c.Window.Width = DefaultWidth
		c.Window.Height = DefaultHeight
	}
	if c.Window.Resizable == nil {
		c.Window.Resizable = ptr(true)
	}
	if c.Window.VSync == nil {
		c.Window.VSync = ptr(true)
	}
	if c.Window.GLMajor == 0 {
		c.Window.GLMajor = 4
		c.Window.GLMinor = 1
	}
	if c.Exercise == "" {
		c.Exercise = "triangle"
	}
	if c.Clear.Mode == "" {
		c.Clear.Mode = ClearCycle
	}
	if c.Shaders.GLSLVersion == "" {
		c.Shaders.GLSLVersion = fmt.Sprintf("%d%d0 core", c.Window.GLMajor, c.Window.GLMinor)
	}
	if c.Shaders.FragmentColour == [4]float32{} {
		c.Shaders.FragmentColour = [4]float32{0.8, 0.3, 0.02, 1.0}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}
	valid := false
	for _, e := range Exercises {
		if c.Exercise == e {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown exercise %q, expected one of %s", c.Exercise, strings.Join(Exercises, ", "))
	}
	if err := c.Clear.Validate(); err != nil {
		return fmt.Errorf("clear config is invalid: %w", err)
	}
	if err := c.Shaders.Validate(); err != nil {
		return fmt.Errorf("shader config is invalid: %w", err)
	}
	if c.Api != nil {
		if err := c.Api.Validate(); err != nil {
			return fmt.Errorf("api config is invalid: %w", err)
		}
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("a core profile needs OpenGL 3.3 or newer, got %d.%d", w.GLMajor, w.GLMinor)
	}
	return nil
}

func (c *ClearCfg) Validate() error {
	switch c.Mode {
	case ClearCycle:
		return nil
	case ClearFixed:
		if !utils.ColourValidate(c.Colour) {
			return fmt.Errorf("%q is not a valid RGBA hex colour", c.Colour)
		}
		return nil
	default:
		return fmt.Errorf("unknown clear mode: %s", c.Mode)
	}
}

func (s *ShaderCfg) Validate() error {
	if (s.Vertex == "") != (s.Fragment == "") {
		return fmt.Errorf("vertex and fragment shader paths must be given together")
	}
	if s.Watch && s.Vertex == "" {
		return fmt.Errorf("cannot watch embedded shaders")
	}
	for _, v := range s.FragmentColour {
		if v < 0 || v > 1 {
			return fmt.Errorf("fragment colour components must lie in [0, 1]")
		}
	}
	return nil
}

// FromFiles reports whether shader sources are read from disk.
func (s *ShaderCfg) FromFiles() bool {
	return s.Vertex != ""
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("api bind address must be specified")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Window:\n  %q %dx%d (OpenGL %d.%d core)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.GLMajor, c.Window.GLMinor)
	fmt.Fprintf(&b, "\nExercise:\n  %s\n", c.Exercise)
	fmt.Fprintf(&b, "\nClear:\n  %s", c.Clear.Mode)
	if c.Clear.Mode == ClearFixed {
		fmt.Fprintf(&b, " (%s)", c.Clear.Colour)
	}
	b.WriteString("\n\nShaders:\n")
	if c.Shaders.FromFiles() {
		fmt.Fprintf(&b, "  %s\n  %s\n", c.Shaders.Vertex, c.Shaders.Fragment)
	} else {
		fmt.Fprintf(&b, "  embedded (#version %s)\n", c.Shaders.GLSLVersion)
	}
	if c.Api != nil {
		fmt.Fprintf(&b, "\nApi:\n  %s\n", c.Api.Bind)
	}
	return b.String()
}

func ptr[T any](v T) *T {
	return &v
}
