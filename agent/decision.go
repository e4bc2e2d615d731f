package agent

import (
	"github.com/RianAsmara/lost-beacons/behavior"
	"github.com/RianAsmara/lost-beacons/config"
	"github.com/RianAsmara/lost-beacons/model"
)

// Kind is the tactical action a Decision commits to.
type Kind int

const (
	Retreat Kind = iota
	Attack
	Regroup
	Conquer
)

var kindLabels = [...]string{
	Retreat: "retreat",
	Attack:  "attack",
	Regroup: "regroup",
	Conquer: "conquer",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return "unknown"
	}
	return kindLabels[k]
}

// Decision binds a sub-behavior to the goal it serves. Exactly one of the
// target fields is meaningful, selected by Kind:
//
//	Retreat: Point    Attack: Unit (enemy)    Regroup: Unit (friend)    Conquer: Beacon
type Decision struct {
	Kind     Kind
	Behavior behavior.Behavior

	Point  model.Vec2
	Unit   *model.Unit
	Beacon *model.Beacon
}

func (d *Decision) Label() string { return d.Kind.String() }

// Done reports whether the goal has been achieved.
func (d *Decision) Done(w model.World, self *model.Unit, t config.Tuning) bool {
	r := t.Radius(1)
	switch d.Kind {
	case Retreat:
		return model.Dist(d.Point, self) <= r &&
			model.HealthInArea(w, self, self.Team.Enemy, r) == 0
	case Attack:
		return d.Unit.Dead()
	case Regroup:
		return model.Dist(d.Unit, self) < r
	case Conquer:
		return d.Beacon.Team == self.Team
	}
	return false
}

// Bad reports whether the goal is no longer worth pursuing. Outside of
// Retreat, the enemy must outweigh us by more than BadMargin so near-even
// fights do not make the unit flip-flop.
func (d *Decision) Bad(w model.World, self *model.Unit, t config.Tuning) bool {
	r := t.Radius(1)
	switch d.Kind {
	case Retreat:
		return model.HealthInArea(w, d.Point, self.Team.Enemy, t.Radius(4)) > 0
	case Attack:
		defenders := model.HealthInArea(w, d.Unit, d.Unit.Team, r)
		return defenders > healthAround(w, self, t)+t.BadMargin
	case Regroup:
		friend := d.Unit
		return model.HealthInArea(w, friend, friend.Team.Enemy, r) >
			model.HealthInArea(w, friend, friend.Team, r)+t.BadMargin
	case Conquer:
		return model.HealthInArea(w, d.Beacon, self.Team.Enemy, r) >
			model.HealthInArea(w, d.Beacon, self.Team, r)+t.BadMargin
	}
	return false
}

// healthAround is the friendly health backing self: its team within 2R.
func healthAround(w model.World, self *model.Unit, t config.Tuning) float64 {
	return model.HealthInArea(w, self, self.Team, t.Radius(2))
}
