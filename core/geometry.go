package core

import "math"

type Point struct {
	X float64
	Y float64
}

func Euclidean(p0, p1 Point) float64 {
	return math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
}

// Angle returns the clockwise angle in degrees from 12 o'clock to the ray
// center -> p, in [0, 360). Y grows upward.
func Angle(center, p Point) float64 {
	v := 2 * math.Atan2(p.Y-center.Y-Euclidean(center, p), p.X-center.X)
	deg := math.Abs(v * 180 / math.Pi)
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
