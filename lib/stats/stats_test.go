package stats

import (
	"testing"
	"time"

	"github.com/prismgl/prism/lib/utils"
	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFramesPerSecond(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newWithClock("triangle", func() time.Time { return now })

	for range 50 {
		now = now.Add(20 * time.Millisecond)
		s.Update(utils.ColourAt(0))
	}
	// the fiftieth frame lands exactly on the second boundary
	snap := s.Snapshot()
	assert.Equal(t, uint64(50), snap.Frames)
	assert.Equal(t, uint64(50), snap.FPS)
	assert.InDelta(t, 1.0, snap.Uptime, 1e-6)
	assert.Equal(t, utils.ColourAt(0), snap.Colour)
	assert.Equal(t, "triangle", snap.Exercise)
}

func TestCounters(t *testing.T) {
	s := New("window")
	s.ShaderReloaded()
	s.AddWsClients(2)
	s.AddWsClients(-1)

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.ShaderReloads)
	assert.Equal(t, 1, snap.WsClients)
}
