package model

import "math"

// Vec2 is a point or direction in map space.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Dist(b Vec2) float64  { return a.Sub(b).Len() }
func (a Vec2) Position() Vec2       { return a }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Positioned is anything with a location on the map: points, units, beacons.
type Positioned interface {
	Position() Vec2
}

// Dist is the straight-line distance between two positioned things.
func Dist(a, b Positioned) float64 {
	return a.Position().Dist(b.Position())
}

// PointOnCircle returns the point at angle a (radians) on the circle of the
// given radius around center.
func PointOnCircle(center Vec2, radius, a float64) Vec2 {
	return Vec2{
		X: center.X + math.Cos(a)*radius,
		Y: center.Y + math.Sin(a)*radius,
	}
}
