// Package glbackend implements rendering.Device on top of go-gl.
package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/prismgl/prism/lib/rendering"
)

type Backend struct{}

var _ rendering.Device = Backend{}

// Init loads the GL function pointers for the current context.
func Init() (Backend, error) {
	err := gl.Init()
	if err != nil {
		return Backend{}, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	return Backend{}, nil
}

func (Backend) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (Backend) GetError() uint32 {
	return gl.GetError()
}

func (Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Backend) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Backend) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (Backend) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		return false, strings.TrimRight(clog, "\x00")
	}
	return true, ""
}

func (Backend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Backend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Backend) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Backend) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		return false, strings.TrimRight(logmsg, "\x00")
	}
	return true, ""
}

func (Backend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Backend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Backend) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Backend) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (Backend) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Backend) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (Backend) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Backend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Backend) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Backend) BufferData(target uint32, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Backend) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Backend) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}
