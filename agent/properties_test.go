package agent

import (
	"math"
	"testing"

	"github.com/RianAsmara/lost-beacons/config"
	"github.com/RianAsmara/lost-beacons/model"
	"github.com/RianAsmara/lost-beacons/util"
	"pgregory.net/rapid"
)

func TestAttackRejectsStrongerDefenders(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		red, blue := teams()
		gs := model.NewGameState(nil)
		h2 := rapid.Float64Range(0, 100).Draw(t, "self")
		h1 := h2 + rapid.Float64Range(0.001, 100).Draw(t, "excess")
		d := rapid.Float64Range(0, 199).Draw(t, "distance")

		self := unit("self", red, 0, 0, h2)
		gs.AddUnit(self)
		gs.AddUnit(unit("enemy", blue, d, 0, h1))

		a := New(config.DefaultTuning(), util.New(1))
		a.unit = self
		if e, ok := a.enemyUnit(gs); ok {
			t.Fatalf("enemyUnit() = %v with defenders %v > own %v", e.ID, h1, h2)
		}
	})
}

func TestRetreatSamplesAlwaysEven(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := model.Vec2{
			X: rapid.Float64Range(-1e4, 1e4).Draw(t, "x"),
			Y: rapid.Float64Range(-1e4, 1e4).Draw(t, "y"),
		}
		r := rapid.Float64Range(1, 1000).Draw(t, "radius")
		pts := RetreatSamples(c, r, 10)
		if len(pts) != 10 {
			t.Fatalf("len = %d, want 10", len(pts))
		}
		for i, p := range pts {
			if math.Abs(p.Dist(c)-r) > 1e-6*r {
				t.Fatalf("sample %d at distance %v, want %v", i, p.Dist(c), r)
			}
			angle := math.Atan2(p.Y-c.Y, p.X-c.X)
			want := float64(i) / 10 * 2 * math.Pi
			diff := math.Mod(angle-want+4*math.Pi, 2*math.Pi)
			if diff > 1e-6 && 2*math.Pi-diff > 1e-6 {
				t.Fatalf("sample %d at angle %v, want %v", i, angle, want)
			}
		}
	})
}

func TestRetreatNeverIntoObstacle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const cols, rows = 20, 20
		grid := make([]model.TerrainType, cols*rows)
		for i := range grid {
			grid[i] = model.TerrainType(rapid.IntRange(0, 3).Draw(t, "cell"))
		}
		terrain := &model.TerrainGrid{Cols: cols, Rows: rows, CellW: 50, CellH: 50, Grid: grid}
		gs := model.NewGameState(terrain)

		red, _ := teams()
		self := unit("self", red,
			rapid.Float64Range(0, 1000).Draw(t, "x"),
			rapid.Float64Range(0, 1000).Draw(t, "y"), 10)
		gs.AddUnit(self)

		a := New(config.DefaultTuning(), util.New(rapid.Int64().Draw(t, "seed")))
		a.unit = self
		for i := 0; i < 5; i++ {
			if p, ok := a.retreatPosition(gs); ok && gs.PointInObstacle(p) {
				t.Fatalf("retreat picked obstacle point %v", p)
			}
		}
	})
}
