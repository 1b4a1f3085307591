package game

import "math"

// RandSource is the randomness the simulation draws on. *rand.Rand satisfies
// it; tests pass a seeded one or a scripted fake.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Simulation owns every entity in one match. It is single-threaded: the host
// calls Advance once per tick and reads Snapshot between calls.
type Simulation struct {
	tuning Tuning
	rng    RandSource

	player      Player
	opponents   []*Opponent // active roster only, after each phase
	projectiles []*Projectile
	pickups     []*Pickup
	zone        SafeZone

	state  MatchState
	tick   int
	nextID EntityID
}

// newBareSimulation builds an arena with the player at centre, a full-size
// zone and no other entities.
func newBareSimulation(t Tuning, rng RandSource) *Simulation {
	s := &Simulation{
		tuning: t,
		rng:    rng,
		player: Player{
			X:      t.Width / 2,
			Y:      t.Height / 2,
			Health: t.MaxHealth,
		},
		zone: SafeZone{
			CenterX: t.Width / 2,
			CenterY: t.Height / 2,
			Radius:  t.ZoneRadius,
		},
		nextID: PlayerID + 1,
	}
	return s
}

// NewSimulation starts a match: player at centre, opponents and pickups at
// random integer positions inside the arena.
func NewSimulation(t Tuning, rng RandSource) *Simulation {
	s := newBareSimulation(t, rng)
	w := int(t.Width)
	h := int(t.Height)
	for i := 0; i < t.OpponentCount; i++ {
		x := float64(rng.Intn(w + 1))
		y := float64(rng.Intn(h + 1))
		armed := rng.Intn(2) == 0
		s.addOpponent(x, y, t.MaxHealth, armed)
	}
	for i := 0; i < t.PickupCount; i++ {
		x := float64(rng.Intn(w + 1))
		y := float64(rng.Intn(h + 1))
		kind := PickupWeapon
		if rng.Intn(2) == 1 {
			kind = PickupHealth
		}
		s.addPickup(x, y, kind)
	}
	return s
}

func (s *Simulation) allocID() EntityID {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Simulation) addOpponent(x, y float64, health int, armed bool) *Opponent {
	o := &Opponent{ID: s.allocID(), X: x, Y: y, Health: health, HasWeapon: armed}
	s.opponents = append(s.opponents, o)
	return o
}

func (s *Simulation) addPickup(x, y float64, kind PickupKind) *Pickup {
	it := &Pickup{ID: s.allocID(), X: x, Y: y, Kind: kind}
	s.pickups = append(s.pickups, it)
	return it
}

// Advance runs one tick of duration dt (in nominal ticks) and reports what
// happened. Once the match is Won or Lost, and for dt <= 0, it changes
// nothing and reports the current state with Advanced false. So does a NaN
// or infinite dt.
func (s *Simulation) Advance(in InputSnapshot, dt float64) TickReport {
	rep := TickReport{Tick: s.tick, State: s.state}
	if s.state.Terminal() || !(dt > 0) || math.IsInf(dt, 0) {
		return rep
	}
	s.tick++
	rep.Tick = s.tick
	rep.Advanced = true

	// 1. AIM + FIRE: facing follows the aim point, then the fire action uses it.
	s.player.Facing = aimAngle(s.player.X, s.player.Y, in.AimX, in.AimY, s.player.Facing)
	s.playerFire(in, &rep)

	// 2. MOVE
	s.movePlayer(in, dt)
	s.moveOpponents(dt)
	s.opponentsFire(dt, &rep)

	// 3. PROJECTILES
	s.resolveProjectiles(dt, &rep)
	if s.state == MatchLost {
		rep.State = s.state
		return rep
	}

	// 4. PICKUPS
	s.resolvePickups(&rep)

	// 5. ZONE
	s.resolveZone(dt, &rep)

	// 6. OUTCOME
	s.state = determineOutcome(&s.player, len(s.opponents))
	rep.State = s.state
	return rep
}

// State returns the current match state.
func (s *Simulation) State() MatchState {
	return s.state
}

// Tick returns the number of ticks simulated so far.
func (s *Simulation) Tick() int {
	return s.tick
}

// Tuning returns the constants this match runs with.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}
