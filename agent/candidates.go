package agent

import (
	"math"

	"github.com/RianAsmara/lost-beacons/model"
	"github.com/RianAsmara/lost-beacons/util"
)

// RetreatSamples returns n points evenly spaced on the circle of the given
// radius around center, starting at angle 0.
func RetreatSamples(center model.Vec2, radius float64, n int) []model.Vec2 {
	points := make([]model.Vec2, 0, n)
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		points = append(points, model.PointOnCircle(center, radius, a))
	}
	return points
}

// retreatPosition picks a reachable point on the 4R ring with no enemy
// presence within 2R of it.
func (a *Autonomous) retreatPosition(w model.World) (model.Vec2, bool) {
	radius := a.tuning.Evaluate(a.rng, a.tuning.Radius(4))
	var safe []model.Vec2
	for _, p := range RetreatSamples(a.unit.Pos, radius, a.tuning.RetreatSamples) {
		if w.PointInObstacle(p) {
			continue
		}
		if model.HealthInArea(w, p, a.unit.Team.Enemy, a.tuning.Radius(2)) > 0 {
			continue
		}
		safe = append(safe, p)
	}
	return util.Pick(a.rng, safe)
}

// enemyUnit picks a targetable enemy whose local defenders do not outweigh
// the health backing this unit.
func (a *Autonomous) enemyUnit(w model.World) (*model.Unit, bool) {
	mine := healthAround(w, a.unit, a.tuning)
	var targets []*model.Unit
	for _, u := range w.Cyclables() {
		if u.Team != a.unit.Team.Enemy {
			continue
		}
		if model.HealthInArea(w, u, u.Team, a.tuning.Radius(2)) > mine {
			continue
		}
		targets = append(targets, u)
	}
	return util.Pick(a.rng, targets)
}

// friendlyUnit picks another unit of our team that is not under threat.
func (a *Autonomous) friendlyUnit(w model.World) (*model.Unit, bool) {
	var friends []*model.Unit
	for _, u := range w.Units() {
		if u == a.unit || u.Team != a.unit.Team {
			continue
		}
		if model.HealthInArea(w, u, u.Team.Enemy, a.tuning.Radius(1)) > 0 {
			continue
		}
		friends = append(friends, u)
	}
	return util.Pick(a.rng, friends)
}

// conquerableBeacon picks an unguarded beacon we do not own yet, skipping
// the one we are already heading for.
func (a *Autonomous) conquerableBeacon(w model.World) (*model.Beacon, bool) {
	tracked := a.trackedBeacon()
	var beacons []*model.Beacon
	for _, b := range w.Beacons() {
		if b == tracked || b.Team == a.unit.Team {
			continue
		}
		if model.HealthInArea(w, b, a.unit.Team.Enemy, a.tuning.Radius(1)) > 0 {
			continue
		}
		beacons = append(beacons, b)
	}
	return util.Pick(a.rng, beacons)
}

func (a *Autonomous) trackedBeacon() *model.Beacon {
	if a.current == nil || a.current.Kind != Conquer {
		return nil
	}
	return a.current.Beacon
}

// candidates builds one Decision per action type that produced a target, in
// retreat, attack, regroup, conquer order.
func (a *Autonomous) candidates(w model.World) []*Decision {
	var out []*Decision
	if p, ok := a.retreatPosition(w); ok {
		out = append(out, &Decision{Kind: Retreat, Point: p, Behavior: a.factory.Reach(p)})
	}
	if u, ok := a.enemyUnit(w); ok {
		out = append(out, &Decision{Kind: Attack, Unit: u, Behavior: a.factory.Chase(u)})
	}
	if u, ok := a.friendlyUnit(w); ok {
		out = append(out, &Decision{Kind: Regroup, Unit: u, Behavior: a.factory.Chase(u)})
	}
	if b, ok := a.conquerableBeacon(w); ok {
		out = append(out, &Decision{Kind: Conquer, Beacon: b, Behavior: a.factory.Reach(b)})
	}
	return out
}
