package common

import "math"

const (
	BaseWidth      = 1280
	BaseHeight     = 720
	TicksPerSecond = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into [lo, hi). A degenerate range returns lo.
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span == 0 {
		return lo
	}
	out := v - span*math.Floor((v-lo)/span)
	// floating point can land exactly on hi for tiny negative inputs
	if out >= hi {
		out = lo
	}
	return out
}

// MoveToward steps from toward to by at most delta without overshooting.
func MoveToward(from, to, delta float64) float64 {
	if math.Abs(to-from) <= delta {
		return to
	}
	if to > from {
		return from + delta
	}
	return from - delta
}

// LerpAngle interpolates between two angles in radians along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	diff := math.Mod(to-from, 2*math.Pi)
	dist := math.Mod(2*diff, 2*math.Pi) - diff
	return Lerp(from, from+dist, t)
}

// AngleDistance returns the absolute shortest-arc distance between two angles in radians.
func AngleDistance(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	d = math.Mod(2*d, 2*math.Pi) - d
	return math.Abs(d)
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
