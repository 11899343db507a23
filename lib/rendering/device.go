package rendering

// GL enums used by this package. They carry the values from the OpenGL
// registry so a Device can pass them straight through.
const (
	ColorBufferBit = 0x00004000

	Triangles = 0x0004

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4

	Float       = 0x1406
	UnsignedInt = 0x1405

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30

	NoError = 0

	Vendor   = 0x1F00
	Renderer = 0x1F01
	Version  = 0x1F02
)

// Device is the subset of OpenGL used by the renderer. All methods operate
// on the context that is current on the calling thread.
type Device interface {
	GetString(name uint32) string
	GetError() uint32

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateShader(xtype uint32) uint32
	// CompileShader uploads source, compiles it and returns the info log
	// when compilation failed.
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}
