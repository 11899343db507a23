package rendering

import "fmt"

// ResizeViewport maps rendering onto the whole framebuffer.
func ResizeViewport(dev Device, width, height int) {
	dev.Viewport(0, 0, int32(width), int32(height))
}

var errorNames = map[uint32]string{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// CheckError drains the GL error queue and reports the first error seen.
func CheckError(dev Device, where string) error {
	var first uint32
	for range 16 {
		code := dev.GetError()
		if code == NoError {
			break
		}
		if first == NoError {
			first = code
		}
	}
	if first == NoError {
		return nil
	}
	name, ok := errorNames[first]
	if !ok {
		name = fmt.Sprintf("0x%04x", first)
	}
	return fmt.Errorf("%s: %s", where, name)
}
