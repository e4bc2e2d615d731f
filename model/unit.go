package model

// Team is one side of a skirmish. Enemy is always the opposing team.
type Team struct {
	Name  string
	Enemy *Team
}

// LinkTeams makes a and b each other's enemy.
func LinkTeams(a, b *Team) {
	a.Enemy = b
	b.Enemy = a
}

func (t *Team) String() string {
	if t == nil {
		return "neutral"
	}
	return t.Name
}

// Unit is a combatant. A unit with Health <= 0 is dead and gets pruned from
// the world at the end of the tick that killed it.
type Unit struct {
	ID        string
	Pos       Vec2
	Team      *Team
	Health    float64
	MaxHealth float64
	Speed     float64 // map units per simulated second
}

func (u *Unit) Position() Vec2 { return u.Pos }
func (u *Unit) Dead() bool     { return u.Health <= 0 }

// Beacon is a capturable control point. A nil Team means neutral.
type Beacon struct {
	ID   string
	Pos  Vec2
	Team *Team

	// Capturing is the team currently accumulating Progress toward ownership.
	Capturing *Team
	Progress  float64
}

func (b *Beacon) Position() Vec2 { return b.Pos }
