package behavior

import "github.com/RianAsmara/lost-beacons/model"

// Chase follows a unit until within Arrive of it. A dead target stops moving,
// so the chase ends at its last position. Dealing damage is the world's job.
type Chase struct {
	Target *model.Unit
	Arrive float64

	unit *model.Unit
}

func NewChase(target *model.Unit, arrive float64) *Chase {
	return &Chase{Target: target, Arrive: arrive}
}

func (c *Chase) Attach(_ model.World, u *model.Unit) { c.unit = u }

func (c *Chase) Cycle(_ model.World, e float64) {
	if c.unit == nil {
		return
	}
	moveToward(c.unit, c.Target.Pos, c.Arrive, e)
}

func (c *Chase) Render(rd Renderer) {
	if c.unit == nil {
		return
	}
	rd.Line(c.unit.Pos, c.Target.Pos)
}

func (c *Chase) ReservedPosition() model.Vec2 { return c.Target.Pos }
func (c *Chase) Reconsider() Behavior         { return c }
