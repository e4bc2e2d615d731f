package behavior

import "github.com/RianAsmara/lost-beacons/model"

// Reach walks its unit to a fixed target (a point or a beacon) and stays there.
type Reach struct {
	Target model.Positioned
	Arrive float64

	unit *model.Unit
}

func NewReach(target model.Positioned, arrive float64) *Reach {
	return &Reach{Target: target, Arrive: arrive}
}

func (r *Reach) Attach(_ model.World, u *model.Unit) {
	r.unit = u
}

func (r *Reach) Cycle(_ model.World, e float64) {
	if r.unit == nil {
		return
	}
	moveToward(r.unit, r.Target.Position(), r.Arrive, e)
}

func (r *Reach) Render(rd Renderer) {
	if r.unit == nil {
		return
	}
	rd.Line(r.unit.Pos, r.Target.Position())
}

func (r *Reach) ReservedPosition() model.Vec2 { return r.Target.Position() }
func (r *Reach) Reconsider() Behavior         { return r }
