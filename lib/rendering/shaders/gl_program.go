package shaders

import (
	"fmt"

	"github.com/prismgl/prism/lib/rendering"
)

// BuildProgram compiles and links src. The intermediate shader objects are
// deleted on every path; the program only survives a successful link.
func BuildProgram(dev rendering.Device, src *Source) (*rendering.Program, error) {
	vertexShader, err := compileShader(dev, src.Vertex, rendering.VertexShader)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer dev.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(dev, src.Fragment, rendering.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer dev.DeleteShader(fragmentShader)

	program := dev.CreateProgram()

	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)

	ok, logmsg := dev.LinkProgram(program)
	if !ok {
		dev.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", logmsg)
	}

	return rendering.NewProgram(dev, program), nil
}

func compileShader(dev rendering.Device, source string, shaderType uint32) (uint32, error) {
	shader := dev.CreateShader(shaderType)

	ok, clog := dev.CompileShader(shader, source)
	if !ok {
		dev.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", clog)
	}

	return shader, nil
}
