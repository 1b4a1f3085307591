package game

import "math"

const (
	autopilotDeadband   = 2.0  // px; closer than this on an axis counts as arrived
	autopilotZoneMargin = 20.0 // px inside the zone edge the autopilot keeps to
	autopilotLowHealth  = 50
)

// Autopilot is a scripted player for headless runs: stay in the zone, grab a
// weapon, top up health when low, and shoot the nearest opponent.
type Autopilot struct {
	FireEvery int // ticks between shots; <= 0 never fires

	calls int
}

// NewAutopilot returns an autopilot that fires every fireEvery ticks.
func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{FireEvery: fireEvery}
}

// Input decides this tick's input from the current snapshot.
func (a *Autopilot) Input(snap ArenaSnapshot) InputSnapshot {
	a.calls++
	p := snap.Player
	in := InputSnapshot{AimX: p.X, AimY: p.Y}

	if o, ok := nearestOpponent(snap); ok {
		in.AimX, in.AimY = o.X, o.Y
		in.Fire = p.HasWeapon && a.FireEvery > 0 && a.calls%a.FireEvery == 0
	}

	z := snap.Zone
	switch {
	case math.Hypot(p.X-z.CenterX, p.Y-z.CenterY) > z.Radius-autopilotZoneMargin:
		steer(&in, p.X, p.Y, z.CenterX, z.CenterY)
	case !p.HasWeapon:
		if it, ok := nearestPickup(snap, PickupWeapon); ok {
			steer(&in, p.X, p.Y, it.X, it.Y)
		}
	case p.Health < autopilotLowHealth:
		if it, ok := nearestPickup(snap, PickupHealth); ok {
			steer(&in, p.X, p.Y, it.X, it.Y)
		}
	}
	return in
}

// steer sets direction flags toward (tx,ty).
func steer(in *InputSnapshot, x, y, tx, ty float64) {
	dx := tx - x
	dy := ty - y
	in.Left = dx < -autopilotDeadband
	in.Right = dx > autopilotDeadband
	in.Up = dy < -autopilotDeadband
	in.Down = dy > autopilotDeadband
}

func nearestOpponent(snap ArenaSnapshot) (OpponentSnapshot, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, o := range snap.Opponents {
		if d := math.Hypot(o.X-snap.Player.X, o.Y-snap.Player.Y); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return OpponentSnapshot{}, false
	}
	return snap.Opponents[best], true
}

func nearestPickup(snap ArenaSnapshot, kind PickupKind) (PickupSnapshot, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, it := range snap.Pickups {
		if it.Kind != kind {
			continue
		}
		if d := math.Hypot(it.X-snap.Player.X, it.Y-snap.Player.Y); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return PickupSnapshot{}, false
	}
	return snap.Pickups[best], true
}
