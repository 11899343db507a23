package rendering

import "fmt"

// VertexArray records the attribute layout and the index buffer binding of
// the geometry it was bound for.
type VertexArray struct {
	dev Device
	ID  uint32
}

func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{dev: dev, ID: dev.GenVertexArray()}
}

func (v *VertexArray) Bind() {
	mustBeLive("vertex array", v.ID)
	v.dev.BindVertexArray(v.ID)
}

func (v *VertexArray) Unbind() {
	v.dev.BindVertexArray(0)
}

// LinkAttrib points attribute layout at the given region of vbo. The vertex
// array must be bound.
func (v *VertexArray) LinkAttrib(vbo *VertexBuffer, layout uint32, components int32, xtype uint32, stride int32, offset uintptr) {
	vbo.Bind()
	v.dev.VertexAttribPointer(layout, components, xtype, false, stride, offset)
	v.dev.EnableVertexAttribArray(layout)
	vbo.Unbind()
}

func (v *VertexArray) Delete() {
	if v.ID == 0 {
		return
	}
	v.dev.DeleteVertexArray(v.ID)
	v.ID = 0
}

type VertexBuffer struct {
	dev  Device
	ID   uint32
	Size int
}

// NewVertexBuffer uploads data once; the buffer stays bound afterwards.
func NewVertexBuffer(dev Device, data []byte) *VertexBuffer {
	b := &VertexBuffer{dev: dev, ID: dev.GenBuffer(), Size: len(data)}
	b.Bind()
	dev.BufferData(ArrayBuffer, data, StaticDraw)
	return b
}

func (b *VertexBuffer) Bind() {
	mustBeLive("vertex buffer", b.ID)
	b.dev.BindBuffer(ArrayBuffer, b.ID)
}

func (b *VertexBuffer) Unbind() {
	b.dev.BindBuffer(ArrayBuffer, 0)
}

func (b *VertexBuffer) Delete() {
	if b.ID == 0 {
		return
	}
	b.dev.DeleteBuffer(b.ID)
	b.ID = 0
}

type IndexBuffer struct {
	dev   Device
	ID    uint32
	Count int32
}

// NewIndexBuffer uploads 32-bit indices once; the buffer stays bound
// afterwards.
func NewIndexBuffer(dev Device, data []byte) *IndexBuffer {
	b := &IndexBuffer{dev: dev, ID: dev.GenBuffer(), Count: int32(len(data) / 4)}
	b.Bind()
	dev.BufferData(ElementArrayBuffer, data, StaticDraw)
	return b
}

func (b *IndexBuffer) Bind() {
	mustBeLive("index buffer", b.ID)
	b.dev.BindBuffer(ElementArrayBuffer, b.ID)
}

func (b *IndexBuffer) Unbind() {
	b.dev.BindBuffer(ElementArrayBuffer, 0)
}

func (b *IndexBuffer) Delete() {
	if b.ID == 0 {
		return
	}
	b.dev.DeleteBuffer(b.ID)
	b.ID = 0
}

// Program is a linked shader program.
type Program struct {
	dev Device
	ID  uint32
}

func NewProgram(dev Device, id uint32) *Program {
	return &Program{dev: dev, ID: id}
}

func (p *Program) Use() {
	mustBeLive("shader program", p.ID)
	p.dev.UseProgram(p.ID)
}

func (p *Program) Delete() {
	if p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
}

func mustBeLive(kind string, id uint32) {
	if id == 0 {
		panic(fmt.Sprintf("use of released %s", kind))
	}
}
