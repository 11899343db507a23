// Package fakegl provides a recording rendering.Device for tests. It hands
// out object names, keeps uploaded buffer contents and flags every use of
// an object after it was deleted.
package fakegl

import (
	"fmt"
	"strings"
	"sync"
)

type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

type Device struct {
	mu sync.Mutex

	Calls []Call
	// Violations lists misuse such as double deletes or binding deleted
	// objects.
	Violations []string
	// Buffers holds the last data uploaded to each buffer.
	Buffers map[uint32][]byte
	// Created and Deleted list object names in the order the operations
	// happened.
	Created []uint32
	Deleted []uint32

	// CompileError, when set, is consulted for every shader compile and a
	// non-empty result fails the compile with that info log.
	CompileError func(source string) string
	LinkError    string
	// Errors are returned by GetError, one per call.
	Errors []uint32

	nextID uint32
	live   map[uint32]string
	dead   map[uint32]string
}

func New() *Device {
	return &Device{
		Buffers: make(map[uint32][]byte),
		live:    make(map[uint32]string),
		dead:    make(map[uint32]string),
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) create(kind string) uint32 {
	d.nextID++
	d.live[d.nextID] = kind
	d.Created = append(d.Created, d.nextID)
	return d.nextID
}

func (d *Device) release(kind string, id uint32) {
	if id == 0 {
		return
	}
	if k, ok := d.live[id]; !ok || k != kind {
		d.Violations = append(d.Violations, fmt.Sprintf("delete of %s %d which is not live", kind, id))
		return
	}
	delete(d.live, id)
	d.dead[id] = kind
	d.Deleted = append(d.Deleted, id)
}

func (d *Device) use(kind string, id uint32) {
	if id == 0 {
		return
	}
	if _, ok := d.dead[id]; ok {
		d.Violations = append(d.Violations, fmt.Sprintf("use of deleted %s %d", kind, id))
		return
	}
	if k, ok := d.live[id]; !ok || k != kind {
		d.Violations = append(d.Violations, fmt.Sprintf("use of unknown %s %d", kind, id))
	}
}

// Live returns the number of objects that were created and not deleted.
func (d *Device) Live() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.live)
}

// Named returns the calls with the given name.
func (d *Device) Named(name string) []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps object state.
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = nil
}

func (d *Device) GetString(name uint32) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("GetString", name)
	return "fake"
}

func (d *Device) GetError() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Errors) == 0 {
		return 0
	}
	e := d.Errors[0]
	d.Errors = d.Errors[1:]
	return e
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("Viewport", x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("ClearColor", r, g, b, a)
}

func (d *Device) Clear(mask uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("Clear", mask)
}

func (d *Device) CreateShader(xtype uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.create("shader")
	d.record("CreateShader", xtype, id)
	return id
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("shader", shader)
	d.record("CompileShader", shader, source)
	if d.CompileError != nil {
		if msg := d.CompileError(source); msg != "" {
			return false, msg
		}
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DeleteShader", shader)
	d.release("shader", shader)
}

func (d *Device) CreateProgram() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.create("program")
	d.record("CreateProgram", id)
	return id
}

func (d *Device) AttachShader(program, shader uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("program", program)
	d.use("shader", shader)
	d.record("AttachShader", program, shader)
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("program", program)
	d.record("LinkProgram", program)
	if d.LinkError != "" {
		return false, d.LinkError
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("program", program)
	d.record("UseProgram", program)
}

func (d *Device) DeleteProgram(program uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DeleteProgram", program)
	d.release("program", program)
}

func (d *Device) GenVertexArray() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.create("vertex array")
	d.record("GenVertexArray", id)
	return id
}

func (d *Device) BindVertexArray(array uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("vertex array", array)
	d.record("BindVertexArray", array)
}

func (d *Device) DeleteVertexArray(array uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DeleteVertexArray", array)
	d.release("vertex array", array)
}

func (d *Device) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("EnableVertexAttribArray", index)
}

func (d *Device) GenBuffer() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.create("buffer")
	d.record("GenBuffer", id)
	return id
}

func (d *Device) BindBuffer(target, buffer uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.use("buffer", buffer)
	d.record("BindBuffer", target, buffer)
}

func (d *Device) BufferData(target uint32, data []byte, usage uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("BufferData", target, len(data), usage)
	// the buffer bound to target receives the data
	for i := len(d.Calls) - 1; i >= 0; i-- {
		c := d.Calls[i]
		if c.Name == "BindBuffer" && c.Args[0] == target {
			d.Buffers[c.Args[1].(uint32)] = append([]byte(nil), data...)
			return
		}
	}
	d.Violations = append(d.Violations, fmt.Sprintf("BufferData with nothing bound to 0x%x", target))
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DeleteBuffer", buffer)
	d.release("buffer", buffer)
}

func (d *Device) DrawArrays(mode uint32, first, count int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawArrays", mode, first, count)
}

func (d *Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("DrawElements", mode, count, xtype, offset)
}
