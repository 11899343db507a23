package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/prismgl/prism/lib/config"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	vertexTemplate   = "default.vert"
	fragmentTemplate = "default.frag"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the embedded shaders
type ShaderData struct {
	GLSLVersion    string
	FragmentColour [4]float32
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// Source is the text of a vertex and fragment shader pair.
type Source struct {
	Vertex   string
	Fragment string
}

// Load returns the sources selected by cfg: the two files when paths are
// configured, the embedded defaults otherwise.
func Load(cfg *config.ShaderCfg) (*Source, error) {
	if cfg.FromFiles() {
		return ReadFiles(string(cfg.Vertex), string(cfg.Fragment))
	}

	shaderer, err := NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not get shaders: %w", err)
	}
	data := &ShaderData{
		GLSLVersion:    cfg.GLSLVersion,
		FragmentColour: cfg.FragmentColour,
	}

	vertexShader, err := shaderer.GetShaderSource(vertexTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource(fragmentTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return &Source{Vertex: vertexShader, Fragment: fragmentShader}, nil
}

func ReadFiles(vertexPath, fragmentPath string) (*Source, error) {
	vertexShader, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader: %w", err)
	}
	fragmentShader, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader: %w", err)
	}
	return &Source{Vertex: string(vertexShader), Fragment: string(fragmentShader)}, nil
}
