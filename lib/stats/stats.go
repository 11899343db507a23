package stats

import (
	"sync"
	"time"

	"github.com/prismgl/prism/lib/utils"
)

type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time
}

func New(exercise string) *Stats {
	return newWithClock(exercise, time.Now)
}

func newWithClock(exercise string, now func() time.Time) *Stats {
	s := &Stats{snap: Snapshot{Exercise: exercise}, now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame.
func (s *Stats) Update(colour utils.Colour) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.snap.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.snap.Uptime = now.Sub(s.start).Seconds()
	s.snap.Colour = colour
}

func (s *Stats) ShaderReloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.ShaderReloads++
}

func (s *Stats) AddWsClients(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients += delta
}

// Snapshot is a copy safe to encode while the loop keeps updating.
type Snapshot struct {
	Exercise      string       `json:"exercise"`
	Frames        uint64       `json:"frames"`
	FPS           uint64       `json:"fps"`
	Uptime        float64      `json:"uptime"`
	Colour        utils.Colour `json:"colour"`
	ShaderReloads uint64       `json:"shader_reloads"`
	WsClients     int          `json:"ws_clients"`
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
