package sim

import (
	"math"
	"time"
)

// FrameDuration is the reference frame length; dt == 1 is one such frame
const FrameDuration = 16 * time.Millisecond

const (
	maxTilt       = 0.6  // radians
	groundTiltLag = 0.2  // per-frame ease toward the slope under the wheels
	airTiltLag    = 0.02 // per-frame ease back to level while airborne
	wheelSpin     = 0.12 // wheel radians per pixel of travel
	distanceUnit  = 10.0 // world pixels per distance point
	brakeDrain    = 0.6  // brake energy cost relative to throttle
	scoreLevel    = 10.0
	scoreEnergy   = 0.2
)

// Events reports what happened during a step
type Events uint8

const (
	EventJumped Events = 1 << iota
	EventLanded
	EventRespawned
	EventHitWorldEnd
)

// Has reports whether every flag in f is set
func (e Events) Has(f Events) bool {
	return e&f == f
}

// FrameStep converts wall-clock time since the last frame to a step
// length in frames, capped at maxStep. Long stalls (a dragged window, a
// breakpoint) then advance the world by at most maxStep frames.
func FrameStep(elapsed time.Duration, maxStep float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return math.Min(maxStep, float64(elapsed)/float64(FrameDuration))
}

// Step advances the simulation by dt frames
func Step(s *State, in Input, dt float64) Events {
	dt = math.Max(0, math.Min(s.cfg.Physics.MaxFrameStep, dt))
	if dt == 0 {
		return 0
	}

	var ev Events
	car := s.Car
	ph := s.cfg.Physics
	level := float64(s.Progress.Level)
	clearing := s.cfg.World.WheelClearing
	wasOnGround := car.OnGround

	// throttle and brake
	consume := (0.05 + 0.01*level) * dt
	if in.Accelerate && car.Energy > 0 {
		car.VX += car.SpeedFactor * (1 + level*0.02) * dt
		car.Drain(consume)
	}
	if in.Brake {
		car.VX *= math.Pow(ph.BrakeFactor, dt)
		car.Drain(consume * brakeDrain)
	}

	car.VY += ph.Gravity * dt

	// ground contact is resolved before integrating and only while moving
	// down, otherwise the surface would swallow a fresh jump impulse
	ground := s.Terrain.GroundY(car.X)
	if car.VY >= 0 && car.Y+clearing >= ground {
		car.Y = ground - clearing
		car.VY = 0
		car.OnGround = true
	} else {
		car.OnGround = false
	}

	car.X += car.VX * dt
	car.Y += car.VY * dt

	if in.Jump && car.OnGround {
		car.VY = -ph.JumpImpulse - level*ph.JumpPerLevel
		car.OnGround = false
		car.Drain(s.cfg.Progression.JumpCost)
		ev |= EventJumped
	}
	if car.OnGround && !wasOnGround {
		ev |= EventLanded
	}

	if car.OnGround {
		car.VX *= math.Pow(ph.FrictionGround, dt)
	} else {
		car.VX *= math.Pow(ph.FrictionAir, dt)
	}
	car.VX = math.Max(ph.MinSpeed, math.Min(s.MaxSpeed(), car.VX))

	car.WheelRot += car.VX * wheelSpin * dt
	s.tilt(dt)

	target := math.Max(0, car.X-s.cfg.World.CameraLead)
	s.CameraX = lerp(s.CameraX, target, 1-math.Pow(1-s.cfg.World.CameraSmooth, dt))

	if in.Idle() && car.OnGround {
		car.Charge(0.025 * level * dt)
	}

	if bound := s.WorldBound(); car.X > bound {
		car.X = bound
		car.VX = 0
		ev |= EventHitWorldEnd
	}
	if car.X < 0 {
		car.X = 0
		car.VX = 0
	}

	if car.Y > s.RespawnLine() {
		s.respawn()
		ev |= EventRespawned
	}

	car.ClampEnergy()
	s.refreshScore()
	s.Frame++
	return ev
}

// tilt eases the body angle toward the slope under the wheels, or back
// to level in the air
func (s *State) tilt(dt float64) {
	car := s.Car
	target, lag := 0.0, airTiltLag
	if car.OnGround {
		rear, front := car.WheelOffsets()
		target = s.Terrain.Slope(car.X+rear, car.X+front)
		lag = groundTiltLag
	}
	car.Angle = lerp(car.Angle, target, 1-math.Pow(1-lag, dt))
	car.Angle = math.Max(-maxTilt, math.Min(maxTilt, car.Angle))
}

func (s *State) respawn() {
	p := s.cfg.Progression
	energy := math.Max(p.RespawnFloor, s.Car.Energy-p.RespawnPenalty)
	s.placeAtSpawn()
	s.Car.OnGround = false
	s.Car.Energy = energy
	s.Car.ClampEnergy()
}

// refreshScore recomputes distance and score from the car and level
func (s *State) refreshScore() {
	pr := &s.Progress
	pr.Distance = int(math.Max(0, math.Floor(s.Car.X/distanceUnit)))
	earned := math.Floor(float64(pr.Distance) +
		float64(pr.Level)*scoreLevel +
		(s.cfg.Progression.StartEnergy-s.Car.Energy)*scoreEnergy)
	pr.Score = max(0, int(earned)-pr.Spent)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
