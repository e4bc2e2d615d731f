package model

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	a := Vec2{3, 4}
	if a.Len() != 5 {
		t.Errorf("Len() = %v, want 5", a.Len())
	}
	if n := a.Norm(); math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Norm().Len() = %v, want 1", n.Len())
	}
	if (Vec2{}).Norm() != (Vec2{}) {
		t.Error("zero vector should normalise to zero")
	}
	if got := a.Add(Vec2{1, 1}).Sub(Vec2{2, 2}).Scale(2); got != (Vec2{4, 6}) {
		t.Errorf("Add/Sub/Scale = %v, want (4,6)", got)
	}
}

func TestDist(t *testing.T) {
	u := &Unit{Pos: Vec2{0, 0}}
	b := &Beacon{Pos: Vec2{6, 8}}
	if got := Dist(u, b); got != 10 {
		t.Errorf("Dist(unit, beacon) = %v, want 10", got)
	}
	if got := Dist(Vec2{1, 1}, u); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("Dist(point, unit) = %v, want sqrt(2)", got)
	}
}

func TestPointOnCircle(t *testing.T) {
	p := PointOnCircle(Vec2{10, 10}, 5, math.Pi/2)
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-15) > 1e-9 {
		t.Errorf("PointOnCircle(π/2) = %v, want (10,15)", p)
	}
}
