package rules

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr/vm"
)

// Condition ends a skirmish when its expression holds. Name doubles as the
// outcome reported for the run.
type Condition struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"` // higher = evaluated first
	Src      string `yaml:"when"`     // expr source

	program *vm.Program
}

// DefaultConditions returns the stock end conditions for a two-team
// skirmish: elimination beats beacon control, which beats nothing.
func DefaultConditions(a, b string) []*Condition {
	var out []*Condition
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		winner, loser := pair[0], pair[1]
		out = append(out,
			&Condition{
				Name:     winner + "_eliminated_" + loser,
				Priority: 100,
				Src:      fmt.Sprintf(`AliveCount(%s) == 0 && AliveCount(%s) > 0`, strconv.Quote(loser), strconv.Quote(winner)),
			},
			&Condition{
				Name:     winner + "_holds_beacons",
				Priority: 50,
				Src:      fmt.Sprintf(`BeaconCount() > 0 && BeaconsOwned(%s) == BeaconCount()`, strconv.Quote(winner)),
			},
		)
	}
	out = append(out, &Condition{
		Name:     "mutual_destruction",
		Priority: 200,
		Src:      fmt.Sprintf(`AliveCount(%s) == 0 && AliveCount(%s) == 0`, strconv.Quote(a), strconv.Quote(b)),
	})
	return out
}
