package utils

import "time"

// FrameTimer measures the time between frames on the window clock, which
// reports seconds since initialisation as a float.
type FrameTimer struct {
	last    float64
	started bool
}

// Tick records now and returns the time since the previous tick. The first
// tick returns 0.
func (f *FrameTimer) Tick(now float64) time.Duration {
	defer f.set(now)
	if !f.started {
		return 0
	}
	if now < f.last {
		// clock was reset (glfw.SetTime)
		return 0
	}
	return time.Duration((now - f.last) * float64(time.Second))
}

func (f *FrameTimer) set(now float64) {
	f.last = now
	f.started = true
}
