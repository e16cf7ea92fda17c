package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 45, 45},
		{"lower_bound", 0, 0},
		{"upper_bound", 360, 0},
		{"past_upper", 370, 10},
		{"negative", -10, 350},
		{"many_turns", 3*360 + 5, 5},
		{"many_negative_turns", -3*360 - 5, 355},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Wrap(c.v, 0, 360), 1e-9)
		})
	}
}

func TestWrapStaysInRange(t *testing.T) {
	for v := -1000.0; v <= 1000; v += 0.37 {
		got := Wrap(v, 0, 360)
		if got < 0 || got >= 360 {
			t.Fatalf("Wrap(%v) = %v, outside [0,360)", v, got)
		}
	}
	assert.Equal(t, 0.0, Wrap(-1e-17, 0, 360))
	assert.Equal(t, 3.0, Wrap(99, 3, 3))
}

func TestWrapPeriodic(t *testing.T) {
	for _, eps := range []float64{0.001, 0.5, 12.25, 359.5} {
		assert.InDelta(t, Wrap(eps, 0, 360), Wrap(360+eps, 0, 360), 1e-9, "eps=%v", eps)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -10.0, Clamp(-20, -10, 10))
	assert.Equal(t, 10.0, Clamp(20, -10, 10))
	assert.Equal(t, 3.5, Clamp(3.5, -10, 10))
	assert.Equal(t, 0.0, Clamp(4, 0, 0))
}

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name            string
		from, to, delta float64
		want            float64
	}{
		{"step_down", 10, 0, 3, 7},
		{"step_up", -10, 0, 3, -7},
		{"snap_when_close", 2, 0, 3, 0},
		{"snap_negative", -2, 0, 3, 0},
		{"already_there", 0, 0, 3, 0},
		{"zero_delta", 4, 0, 0, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MoveToward(c.from, c.to, c.delta))
		})
	}
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	from := DegToRad(350)
	to := DegToRad(10)
	mid := LerpAngle(from, to, 0.5)
	assert.InDelta(t, 0, AngleDistance(mid, 0), 1e-9)

	// halfway from 10 to 350 must pass through 0 as well
	mid = LerpAngle(to, from, 0.5)
	assert.InDelta(t, 0, AngleDistance(mid, 0), 1e-9)
}

func TestLerpAngleEndpoints(t *testing.T) {
	from, to := 0.3, 2.1
	assert.InDelta(t, from, LerpAngle(from, to, 0), 1e-12)
	assert.InDelta(t, to, LerpAngle(from, to, 1), 1e-12)
}

func TestLerpAngleMonotonicApproach(t *testing.T) {
	cur := 0.0
	target := DegToRad(270)
	prev := AngleDistance(cur, target)
	for i := 0; i < 200; i++ {
		cur = LerpAngle(cur, target, 0.1)
		d := AngleDistance(cur, target)
		if d > prev+1e-12 {
			t.Fatalf("tick %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	assert.Less(t, prev, 1e-6)
	assert.Greater(t, prev, 0.0)
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 90, RadToDeg(math.Pi/2), 1e-12)
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}
