package rendering

import (
	"github.com/prismgl/prism/lib/geometry"
)

const positionAttrib = 0

// Scene is one shader program drawing one static mesh.
type Scene struct {
	dev     Device
	mesh    *geometry.Mesh
	program *Program

	vao *VertexArray
	vbo *VertexBuffer
	ebo *IndexBuffer
}

// NewScene takes ownership of program and uploads mesh. Every object created
// is registered with rel, the program first, so rel owns the program even
// when NewScene fails.
func NewScene(dev Device, mesh *geometry.Mesh, program *Program, rel *Releaser) (*Scene, error) {
	s := &Scene{dev: dev, mesh: mesh, program: program}
	rel.Track("shader program", func() { s.program.Delete() })

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	s.vao = NewVertexArray(dev)
	rel.Track("vertex array", s.vao.Delete)
	s.vao.Bind()

	s.vbo = NewVertexBuffer(dev, mesh.VertexBytes())
	rel.Track("vertex buffer", s.vbo.Delete)

	if mesh.Indexed() {
		s.ebo = NewIndexBuffer(dev, mesh.IndexBytes())
		rel.Track("index buffer", s.ebo.Delete)
	}

	s.vao.LinkAttrib(s.vbo, positionAttrib, geometry.ComponentsPerVertex, Float, geometry.VertexStride, 0)

	// the index buffer binding is part of the vertex array state, so it is
	// only unbound once the vertex array is
	s.vao.Unbind()
	if s.ebo != nil {
		s.ebo.Unbind()
	}

	return s, CheckError(dev, "uploading "+mesh.Name)
}

func (s *Scene) Mesh() *geometry.Mesh {
	return s.mesh
}

func (s *Scene) Program() *Program {
	return s.program
}

// SwapProgram replaces the program and deletes the old one.
func (s *Scene) SwapProgram(p *Program) {
	old := s.program
	s.program = p
	old.Delete()
}

func (s *Scene) Draw() {
	s.program.Use()
	s.vao.Bind()
	if s.ebo != nil {
		s.dev.DrawElements(Triangles, s.ebo.Count, UnsignedInt, 0)
	} else {
		s.dev.DrawArrays(Triangles, 0, s.mesh.DrawCount())
	}
}
