// Package pilot provides scripted ship controllers for headless runs:
// a few built-in Go pilots registered by name, and Lua pilots loaded from files.
package pilot

import (
	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/registry"
)

// Fire cadence of the built-in pilots, in ticks
const (
	gunnerCooldown  = 10
	sweeperCooldown = 6
)

func init() {
	registry.Register(registry.PilotInfo{ID: "idle", Title: "Idle (never moves or fires)"},
		func() registry.Pilot { return &Idle{} })
	registry.Register(registry.PilotInfo{ID: "gunner", Title: "Gunner (holds position, fires every 10 ticks)"},
		func() registry.Pilot { return &Gunner{} })
	registry.Register(registry.PilotInfo{ID: "sweeper", Title: "Sweeper (patrols and shoots what is overhead)"},
		func() registry.Pilot { return &Sweeper{dir: core.ActionRight} })
}

// Idle never touches the controls.
type Idle struct{}

func (p *Idle) ID() string { return "idle" }

func (p *Idle) Poll(debris.Snapshot) (core.InputFrame, error) {
	return core.NewInputFrame(), nil
}

// Gunner stays put and fires on a fixed cadence.
type Gunner struct {
	polls int
}

func (p *Gunner) ID() string { return "gunner" }

func (p *Gunner) Poll(debris.Snapshot) (core.InputFrame, error) {
	in := core.NewInputFrame()
	if p.polls%gunnerCooldown == 0 {
		in.Press(core.ActionFire, false)
	}
	p.polls++
	return in, nil
}

// Sweeper patrols the bottom edge, turning around at the walls, and fires
// whenever debris is lined up above the ship.
type Sweeper struct {
	dir      core.Action
	lastX    int
	moved    bool
	cooldown int
}

func (p *Sweeper) ID() string { return "sweeper" }

func (p *Sweeper) Poll(s debris.Snapshot) (core.InputFrame, error) {
	in := core.NewInputFrame()

	// A held direction that no longer moves the ship means a wall
	if p.moved && s.Ship.X == p.lastX {
		p.dir = p.dir.Opposite()
	}
	p.lastX = s.Ship.X
	p.moved = true
	in.Hold(p.dir)
	in.Hold(core.ActionDown)

	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.cooldown == 0 && overhead(s) {
		in.Press(core.ActionFire, false)
		p.cooldown = sweeperCooldown
	}
	return in, nil
}

// overhead reports whether any visible debris shares a column with the ship.
func overhead(s debris.Snapshot) bool {
	for _, d := range s.Debris {
		if d.Bottom() <= 0 || d.Y >= s.Ship.Y {
			continue
		}
		if d.X < s.Ship.Right() && s.Ship.X < d.Right() {
			return true
		}
	}
	return false
}
