package rendering

import "log/slog"

type release struct {
	name string
	fn   func()
}

// Releaser collects release functions for GPU objects and runs them in
// reverse order of registration. Each function runs at most once.
type Releaser struct {
	stack  []release
	logger *slog.Logger
}

func NewReleaser(logger *slog.Logger) *Releaser {
	return &Releaser{logger: logger}
}

func (r *Releaser) Track(name string, fn func()) {
	r.stack = append(r.stack, release{name: name, fn: fn})
}

func (r *Releaser) Len() int {
	return len(r.stack)
}

func (r *Releaser) ReleaseAll() {
	for len(r.stack) > 0 {
		last := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		if r.logger != nil {
			r.logger.Debug("releasing " + last.name)
		}
		last.fn()
	}
}
