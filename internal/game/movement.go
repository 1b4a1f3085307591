package game

import "math"

// InputSnapshot is the host's input for one tick.
type InputSnapshot struct {
	Up, Down, Left, Right bool
	AimX, AimY            float64 // aim point in arena coordinates
	Fire                  bool    // edge-triggered by the host
}

// MoveDelta converts directional flags into a displacement of at most speed.
// Opposite flags cancel; diagonals are normalised by their actual length.
func MoveDelta(in InputSnapshot, speed float64) (dx, dy float64) {
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	if dx != 0 && dy != 0 {
		l := math.Hypot(dx, dy)
		dx /= l
		dy /= l
	}
	return dx * speed, dy * speed
}

// aimAngle returns the angle from (x,y) to the aim point, or fallback when
// the aim point coincides with the origin.
func aimAngle(x, y, aimX, aimY, fallback float64) float64 {
	dx := aimX - x
	dy := aimY - y
	if dx == 0 && dy == 0 {
		return fallback
	}
	return math.Atan2(dy, dx)
}

// clampToArena keeps a body of radius r fully inside [0,w]×[0,h].
func clampToArena(x, y, r, w, h float64) (float64, float64) {
	x = math.Max(r, math.Min(w-r, x))
	y = math.Max(r, math.Min(h-r, y))
	return x, y
}

// seekStep returns a displacement of length step from (x,y) toward (tx,ty).
// Zero distance yields no movement.
func seekStep(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist * step, dy / dist * step
}

// movePlayer moves the player from the directional flags and clamps to the arena.
func (s *Simulation) movePlayer(in InputSnapshot, dt float64) {
	p := &s.player
	dx, dy := MoveDelta(in, s.tuning.PlayerSpeed*dt)
	p.X, p.Y = clampToArena(p.X+dx, p.Y+dy, s.tuning.EntityRadius, s.tuning.Width, s.tuning.Height)
}

// moveOpponents steps every active opponent toward the player. No clamping:
// opponents may leave the visible arena.
func (s *Simulation) moveOpponents(dt float64) {
	step := s.tuning.OpponentSpeed * dt
	for _, o := range s.opponents {
		dx, dy := seekStep(o.X, o.Y, s.player.X, s.player.Y, step)
		o.X += dx
		o.Y += dy
	}
}
