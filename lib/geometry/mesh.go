package geometry

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is static geometry uploaded once at startup. A nil Indices means the
// vertices are drawn in order.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Indices  []uint32
}

const (
	ComponentsPerVertex = 3
	f32                 = 4

	// VertexStride is the byte distance between two positions.
	VertexStride = ComponentsPerVertex * f32
)

var sqrt3 = float32(math.Sqrt(3))

// Triangle is an equilateral triangle centred on the origin.
func Triangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Vertices: []mgl32.Vec3{
			{-0.5, -0.5 * sqrt3 / 3, 0}, // lower left
			{0.5, -0.5 * sqrt3 / 3, 0},  // lower right
			{0, 0.5 * sqrt3 * 2 / 3, 0}, // upper
		},
	}
}

// Subdivided splits Triangle into three corner triangles around an empty
// centre by adding the edge midpoints.
func Subdivided() *Mesh {
	return &Mesh{
		Name: "subdivided",
		Vertices: []mgl32.Vec3{
			{-0.5, -0.5 * sqrt3 / 3, 0}, // lower left
			{0.5, -0.5 * sqrt3 / 3, 0},  // lower right
			{0, 0.5 * sqrt3 * 2 / 3, 0}, // upper
			{-0.25, 0.5 * sqrt3 / 6, 0}, // inner left
			{0.25, 0.5 * sqrt3 / 6, 0},  // inner right
			{0, -0.5 * sqrt3 / 3, 0},    // inner down
		},
		Indices: []uint32{
			0, 3, 5, // lower left triangle
			3, 2, 4, // upper triangle
			5, 4, 1, // lower right triangle
		},
	}
}

// ByName returns the mesh for an exercise, or nil for exercises that draw
// nothing.
func ByName(name string) (*Mesh, error) {
	switch name {
	case "window":
		return nil, nil
	case "triangle":
		return Triangle(), nil
	case "subdivided":
		return Subdivided(), nil
	default:
		return nil, fmt.Errorf("unknown exercise: %s", name)
	}
}

func (m *Mesh) Indexed() bool {
	return m.Indices != nil
}

// DrawCount is the number of vertices submitted by one draw call.
func (m *Mesh) DrawCount() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(len(m.Vertices))
}

func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*ComponentsPerVertex)
	for _, v := range m.Vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

// VertexBytes is the buffer image of the positions as the GPU reads them.
func (m *Mesh) VertexBytes() []byte {
	floats := m.Floats()
	b := make([]byte, len(floats)*f32)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(b[i*f32:], math.Float32bits(f))
	}
	return b
}

func (m *Mesh) IndexBytes() []byte {
	b := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(b[i*4:], idx)
	}
	return b
}

func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %s has no vertices", m.Name)
	}
	if !m.Indexed() {
		if len(m.Vertices)%3 != 0 {
			return fmt.Errorf("mesh %s: %d vertices do not form whole triangles", m.Name, len(m.Vertices))
		}
		return nil
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %s: %d indices do not form whole triangles", m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh %s: index %d refers to vertex %d of %d", m.Name, i, idx, len(m.Vertices))
		}
	}
	return nil
}
