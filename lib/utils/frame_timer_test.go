package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimer(t *testing.T) {
	var f FrameTimer
	assert.Equal(t, time.Duration(0), f.Tick(1.0))
	assert.Equal(t, 250*time.Millisecond, f.Tick(1.25))
	assert.Equal(t, 500*time.Millisecond, f.Tick(1.75))
}

func TestFrameTimerClockReset(t *testing.T) {
	var f FrameTimer
	f.Tick(10)
	assert.Equal(t, time.Duration(0), f.Tick(0.5))
	assert.Equal(t, 500*time.Millisecond, f.Tick(1.0))
}
