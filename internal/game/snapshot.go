package game

// PlayerSnapshot is a read-only copy of the player.
type PlayerSnapshot struct {
	X, Y      float64
	Radius    float64
	Health    int // clamped to >= 0
	MaxHealth int
	HasWeapon bool
	Facing    float64
}

// OpponentSnapshot is a read-only copy of one active opponent.
type OpponentSnapshot struct {
	ID        EntityID
	X, Y      float64
	Radius    float64
	Health    int
	HasWeapon bool
}

// ProjectileSnapshot is a read-only copy of one projectile.
type ProjectileSnapshot struct {
	ID      EntityID
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Shooter EntityID
}

// PickupSnapshot is a read-only copy of one pickup.
type PickupSnapshot struct {
	ID     EntityID
	X, Y   float64
	Radius float64
	Kind   PickupKind
}

// ArenaSnapshot is everything a renderer needs after an Advance call.
type ArenaSnapshot struct {
	Tick          int
	State         MatchState
	Width, Height float64
	Player        PlayerSnapshot
	Opponents     []OpponentSnapshot
	Projectiles   []ProjectileSnapshot
	Pickups       []PickupSnapshot
	Zone          SafeZone
}

// Snapshot copies the current state. Mutating the result does not affect
// the simulation.
func (s *Simulation) Snapshot() ArenaSnapshot {
	t := &s.tuning
	snap := ArenaSnapshot{
		Tick:   s.tick,
		State:  s.state,
		Width:  t.Width,
		Height: t.Height,
		Player: PlayerSnapshot{
			X:         s.player.X,
			Y:         s.player.Y,
			Radius:    t.EntityRadius,
			Health:    clampHealth(s.player.Health),
			MaxHealth: t.MaxHealth,
			HasWeapon: s.player.HasWeapon,
			Facing:    s.player.Facing,
		},
		Opponents:   make([]OpponentSnapshot, 0, len(s.opponents)),
		Projectiles: make([]ProjectileSnapshot, 0, len(s.projectiles)),
		Pickups:     make([]PickupSnapshot, 0, len(s.pickups)),
		Zone:        s.zone,
	}
	for _, o := range s.opponents {
		snap.Opponents = append(snap.Opponents, OpponentSnapshot{
			ID: o.ID, X: o.X, Y: o.Y, Radius: t.EntityRadius,
			Health: clampHealth(o.Health), HasWeapon: o.HasWeapon,
		})
	}
	for _, pr := range s.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			ID: pr.ID, X: pr.X, Y: pr.Y, VX: pr.VX, VY: pr.VY,
			Radius: t.ProjectileRadius, Shooter: pr.Shooter,
		})
	}
	for _, it := range s.pickups {
		snap.Pickups = append(snap.Pickups, PickupSnapshot{
			ID: it.ID, X: it.X, Y: it.Y, Radius: t.PickupRadius, Kind: it.Kind,
		})
	}
	return snap
}
