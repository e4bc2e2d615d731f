package model

// TerrainType classifies a coarse grid zone.
type TerrainType byte

const (
	Land   TerrainType = 0 // passable ground
	Water  TerrainType = 1 // obstacle for ground units
	Cliff  TerrainType = 2 // impassable (rock, tree, wall)
	Bridge TerrainType = 3 // land corridor over water
)

// TerrainGrid is a coarse obstacle map. Each zone covers CellW x CellH map
// units and stores a single TerrainType.
type TerrainGrid struct {
	Cols  int           `yaml:"cols"`
	Rows  int           `yaml:"rows"`
	CellW float64       `yaml:"cell_w"`
	CellH float64       `yaml:"cell_h"`
	Grid  []TerrainType `yaml:"grid"` // row-major: Grid[row*Cols + col]
}

// At returns the terrain type at grid coordinates (col, row).
// Returns Land for out-of-bounds coordinates.
func (g *TerrainGrid) At(col, row int) TerrainType {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Land
	}
	i := row*g.Cols + col
	if i >= len(g.Grid) {
		return Land
	}
	return g.Grid[i]
}

// AtMapPos converts map coordinates to grid coordinates and returns the
// terrain type. Returns Land for out-of-bounds or zero-sized cells.
func (g *TerrainGrid) AtMapPos(p Vec2) TerrainType {
	if g.CellW <= 0 || g.CellH <= 0 || p.X < 0 || p.Y < 0 {
		return Land
	}
	return g.At(int(p.X/g.CellW), int(p.Y/g.CellH))
}

// Blocked reports whether ground units cannot stand at p.
func (g *TerrainGrid) Blocked(p Vec2) bool {
	if g == nil {
		return false
	}
	switch g.AtMapPos(p) {
	case Water, Cliff:
		return true
	}
	return false
}

// HasObstacles returns true if any zone blocks ground units.
func (g *TerrainGrid) HasObstacles() bool {
	if g == nil {
		return false
	}
	for _, t := range g.Grid {
		if t == Water || t == Cliff {
			return true
		}
	}
	return false
}
