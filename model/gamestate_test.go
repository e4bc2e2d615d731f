package model

import (
	"testing"

	"pgregory.net/rapid"
)

func twoTeams() (*Team, *Team) {
	red, blue := &Team{Name: "red"}, &Team{Name: "blue"}
	LinkTeams(red, blue)
	return red, blue
}

func TestLinkTeams(t *testing.T) {
	red, blue := twoTeams()
	if red.Enemy != blue || blue.Enemy != red {
		t.Fatalf("teams not linked: red.Enemy=%v blue.Enemy=%v", red.Enemy, blue.Enemy)
	}
	var neutral *Team
	if neutral.String() != "neutral" {
		t.Errorf("nil team String() = %q, want neutral", neutral.String())
	}
}

func TestHealthInArea(t *testing.T) {
	red, blue := twoTeams()
	s := NewGameState(nil)
	s.AddUnit(&Unit{ID: "r1", Pos: Vec2{0, 0}, Team: red, Health: 4})
	s.AddUnit(&Unit{ID: "r2", Pos: Vec2{3, 4}, Team: red, Health: 6}) // exactly 5 away
	s.AddUnit(&Unit{ID: "r3", Pos: Vec2{1, 1}, Team: red, Health: 2})
	s.AddUnit(&Unit{ID: "b1", Pos: Vec2{1, 0}, Team: blue, Health: 9})

	tests := []struct {
		name   string
		team   *Team
		radius float64
		want   float64
	}{
		{"strictly less than radius", red, 5, 6},
		{"radius past the boundary", red, 5.01, 12},
		{"other team only", blue, 5, 9},
		{"zero radius", red, 0, 0},
	}
	for _, tc := range tests {
		got := HealthInArea(s, Vec2{}, tc.team, tc.radius)
		if got != tc.want {
			t.Errorf("%s: HealthInArea = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHealthInAreaMonotonicInRadius(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		red, _ := twoTeams()
		s := NewGameState(nil)
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			s.AddUnit(&Unit{
				Pos:    Vec2{rapid.Float64Range(-50, 50).Draw(t, "x"), rapid.Float64Range(-50, 50).Draw(t, "y")},
				Team:   red,
				Health: rapid.Float64Range(0, 10).Draw(t, "hp"),
			})
		}
		r1 := rapid.Float64Range(0, 100).Draw(t, "r1")
		r2 := r1 + rapid.Float64Range(0, 100).Draw(t, "dr")
		if HealthInArea(s, Vec2{}, red, r1) > HealthInArea(s, Vec2{}, red, r2) {
			t.Fatalf("health within %v exceeds health within %v", r1, r2)
		}
	})
}

func TestPruneDead(t *testing.T) {
	red, blue := twoTeams()
	s := NewGameState(nil)
	a := &Unit{ID: "a", Team: red, Health: 1}
	b := &Unit{ID: "b", Team: blue, Health: 0}
	c := &Unit{ID: "c", Team: red, Health: -3}
	d := &Unit{ID: "d", Team: blue, Health: 2}
	for _, u := range []*Unit{a, b, c, d} {
		s.AddUnit(u)
	}

	if got := len(s.Cyclables()); got != 2 {
		t.Errorf("Cyclables() = %d units, want 2", got)
	}

	dead := s.PruneDead()
	if len(dead) != 2 || dead[0] != b || dead[1] != c {
		t.Fatalf("PruneDead() = %v, want [b c]", dead)
	}
	if got := s.Units(); len(got) != 2 || got[0] != a || got[1] != d {
		t.Errorf("Units() after prune = %v, want [a d]", got)
	}
}

func TestPointInObstacle(t *testing.T) {
	s := NewGameState(testGrid())
	if !s.PointInObstacle(Vec2{20, 4}) {
		t.Error("water zone should be an obstacle")
	}
	if s.PointInObstacle(Vec2{4, 4}) {
		t.Error("land zone should not be an obstacle")
	}
	if NewGameState(nil).PointInObstacle(Vec2{20, 4}) {
		t.Error("world without terrain should have no obstacles")
	}
}
