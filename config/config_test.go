package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 10.0, Grid.CellSize)
	assert.Equal(t, 10, Grid.Size)
	assert.Greater(t, Enemy.SecondsPerUnit, Player.SecondsPerUnit, "the enemy is slower than the player")
	assert.Equal(t, Render.Width, C.Width)
}

func TestSimTiming(t *testing.T) {
	s := SimConfig{TickRate: 50}
	assert.InDelta(t, 0.02, s.Delta(), 1e-12)
	assert.Equal(t, 20*time.Millisecond, s.Interval())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, -1, int(StateNone))
	assert.Equal(t, 0, int(Idle))
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "walking", Walking.String())
	assert.Equal(t, "attacking", Attacking.String())
	assert.Equal(t, "none", StateNone.String())
}
