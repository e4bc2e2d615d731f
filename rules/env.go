package rules

import (
	"strings"

	"github.com/RianAsmara/lost-beacons/model"
)

// Env wraps the world and exposes helper methods callable from expr
// expressions. Team arguments match team names case-insensitively.
type Env struct {
	State *model.GameState
}

func (e Env) Elapsed() float64 {
	if e.State == nil {
		return 0
	}
	return e.State.Elapsed
}

func (e Env) AliveCount(team string) int {
	n := 0
	for _, u := range e.units() {
		if !u.Dead() && sameTeam(u.Team, team) {
			n++
		}
	}
	return n
}

func (e Env) TeamHealth(team string) float64 {
	total := 0.0
	for _, u := range e.units() {
		if !u.Dead() && sameTeam(u.Team, team) {
			total += u.Health
		}
	}
	return total
}

func (e Env) BeaconsOwned(team string) int {
	n := 0
	for _, b := range e.beacons() {
		if b.Team != nil && sameTeam(b.Team, team) {
			n++
		}
	}
	return n
}

func (e Env) BeaconCount() int { return len(e.beacons()) }

func (e Env) units() []*model.Unit {
	if e.State == nil {
		return nil
	}
	return e.State.Units()
}

func (e Env) beacons() []*model.Beacon {
	if e.State == nil {
		return nil
	}
	return e.State.Beacons()
}

func sameTeam(t *model.Team, name string) bool {
	return t != nil && strings.EqualFold(t.Name, name)
}
