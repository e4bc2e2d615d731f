package model

// World is the read-only query surface a decision maker sees. Units returns
// every unit still in play; Cyclables are the ones that may be targeted.
type World interface {
	Units() []*Unit
	Cyclables() []*Unit
	Beacons() []*Beacon
	PointInObstacle(p Vec2) bool
}

// GameState is the in-memory World used by the simulator and tests.
type GameState struct {
	Elapsed float64
	Terrain *TerrainGrid

	units   []*Unit
	beacons []*Beacon
}

func NewGameState(terrain *TerrainGrid) *GameState {
	return &GameState{Terrain: terrain}
}

func (s *GameState) AddUnit(u *Unit)     { s.units = append(s.units, u) }
func (s *GameState) AddBeacon(b *Beacon) { s.beacons = append(s.beacons, b) }

// PruneDead removes every dead unit and returns them in their original order.
func (s *GameState) PruneDead() []*Unit {
	var dead []*Unit
	alive := s.units[:0]
	for _, u := range s.units {
		if u.Dead() {
			dead = append(dead, u)
			continue
		}
		alive = append(alive, u)
	}
	clear(s.units[len(alive):])
	s.units = alive
	return dead
}

func (s *GameState) Units() []*Unit     { return s.units }
func (s *GameState) Beacons() []*Beacon { return s.beacons }

func (s *GameState) Cyclables() []*Unit {
	out := make([]*Unit, 0, len(s.units))
	for _, u := range s.units {
		if !u.Dead() {
			out = append(out, u)
		}
	}
	return out
}

func (s *GameState) PointInObstacle(p Vec2) bool {
	return s.Terrain.Blocked(p)
}

// HealthInArea sums the health of team's units strictly closer than radius
// to p.
func HealthInArea(w World, p Positioned, team *Team, radius float64) float64 {
	center := p.Position()
	total := 0.0
	for _, u := range w.Units() {
		if u.Team != team {
			continue
		}
		if u.Pos.Dist(center) < radius {
			total += u.Health
		}
	}
	return total
}
