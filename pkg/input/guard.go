package input

import "github.com/golangdaddy/hillclimb/pkg/sim"

// HoldGuard ignores pedals that were already down when a screen opened,
// such as the key that dismissed the title screen, until they have been
// released once.
type HoldGuard struct {
	primed  bool
	blocked sim.Input
}

// Filter returns in with the stale pedals cleared
func (g *HoldGuard) Filter(in sim.Input) sim.Input {
	if !g.primed {
		g.primed = true
		g.blocked = in
	}
	g.blocked.Accelerate = g.blocked.Accelerate && in.Accelerate
	g.blocked.Brake = g.blocked.Brake && in.Brake
	g.blocked.Jump = g.blocked.Jump && in.Jump

	in.Accelerate = in.Accelerate && !g.blocked.Accelerate
	in.Brake = in.Brake && !g.blocked.Brake
	in.Jump = in.Jump && !g.blocked.Jump
	return in
}
