// Package behavior defines what a unit can be told to do each frame and the
// two movement behaviors the tactical layer delegates to.
package behavior

import "github.com/RianAsmara/lost-beacons/model"

//go:generate go tool mockgen -destination=./mocks/behavior_mock.go -package=mocks . Behavior,Renderer

// Behavior drives a single unit. A behavior instance belongs to exactly one
// unit once attached.
type Behavior interface {
	// Attach binds the behavior to u.
	Attach(w model.World, u *model.Unit)
	// Cycle advances the behavior by e simulated seconds.
	Cycle(w model.World, e float64)
	Render(r Renderer)
	// ReservedPosition is where the unit intends to be, for collision
	// reservation between units.
	ReservedPosition() model.Vec2
	// Reconsider lets an outside mechanism swap the behavior. Returning the
	// receiver keeps it.
	Reconsider() Behavior
}

// Renderer is the drawing surface handed to render paths only.
type Renderer interface {
	Text(s string, at model.Vec2)
	Line(from, to model.Vec2)
}

// moveToward steps u toward target by at most speed*e, stopping arrive
// units short.
func moveToward(u *model.Unit, target model.Vec2, arrive, e float64) {
	diff := target.Sub(u.Pos)
	dist := diff.Len()
	step := u.Speed * e
	if dist <= arrive || step <= 0 {
		return
	}
	if step > dist-arrive {
		step = dist - arrive
	}
	u.Pos = u.Pos.Add(diff.Norm().Scale(step))
}
