package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestLerp(t *testing.T) {
	a := dmath.Vec2{X: 0, Y: 0}
	b := dmath.Vec2{X: 10, Y: -20}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, dmath.Vec2{X: 5, Y: -10}, Lerp(a, b, 0.5))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 3, Y: 4}), 1e-9)
	assert.Zero(t, Distance(dmath.Vec2{X: 7, Y: 7}, dmath.Vec2{X: 7, Y: 7}))
}

func TestYaw(t *testing.T) {
	yaw, ok := Yaw(dmath.Vec2{}, dmath.Vec2{X: 10})
	assert.True(t, ok)
	assert.InDelta(t, 0.0, yaw, 1e-9)

	yaw, ok = Yaw(dmath.Vec2{}, dmath.Vec2{Y: 10})
	assert.True(t, ok)
	assert.InDelta(t, math.Pi/2, yaw, 1e-9)

	_, ok = Yaw(dmath.Vec2{X: 1, Y: 1}, dmath.Vec2{X: 1, Y: 1})
	assert.False(t, ok, "zero-length direction keeps the current heading")
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 9))
	assert.Equal(t, 9, ClampInt(12, 0, 9))
	assert.Equal(t, 4, ClampInt(4, 0, 9))
	assert.Equal(t, 3, AbsInt(-3))
	assert.Equal(t, 3, AbsInt(3))
}

func TestOnSegment(t *testing.T) {
	a := dmath.Vec2{X: 30, Y: 0}
	b := dmath.Vec2{X: 20, Y: 0}

	tests := []struct {
		name string
		p    dmath.Vec2
		want bool
	}{
		{"start", a, true},
		{"end", b, true},
		{"between", dmath.Vec2{X: 26, Y: 0}, true},
		{"behind start", dmath.Vec2{X: 31, Y: 0}, false},
		{"past end", dmath.Vec2{X: 19, Y: 0}, false},
		{"off the line", dmath.Vec2{X: 25, Y: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OnSegment(tt.p, a, b, 1e-6))
		})
	}

	assert.True(t, OnSegment(a, a, a, 1e-6), "zero-length segment")
	assert.False(t, OnSegment(b, a, a, 1e-6))
}
