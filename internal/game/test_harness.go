package game

import "math/rand"

// NoShooter marks a projectile placed directly by a harness rather than fired.
const NoShooter EntityID = -1

// TestSim is a headless match harness used by tests and the batch runner.
// It drives a Simulation without Ebiten, supports deterministic seeding and
// records every TickReport to SimLog.
type TestSim struct {
	Sim    *Simulation
	SimLog *SimLog
	Stats  *MatchStats

	tuning Tuning
	rng    RandSource
	random bool // populate with NewSimulation instead of an empty arena
	input  func(ArenaSnapshot) InputSnapshot
	dt     float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // tuning, seed, verbose — applied first
	simOptEntity                      // place entities — applied after the simulation exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithArenaSize sets the arena dimensions and recentres the zone.
func WithArenaSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning.Width = w
		ts.tuning.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithRand injects a specific random source, e.g. a scripted fake.
func WithRand(r RandSource) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = r
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTuning applies an arbitrary edit to the match constants.
func WithTuning(edit func(*Tuning)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.tuning)
	}}
}

// WithRandomSpawns populates opponents and pickups the way a real match does.
func WithRandomSpawns() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.random = true
	}}
}

// WithInput sets the per-tick input source. The default stands still.
func WithInput(fn func(ArenaSnapshot) InputSnapshot) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.input = fn
	}}
}

// WithTickLength sets the dt passed to every Advance call.
func WithTickLength(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.dt = dt
	}}
}

// WithPlayerAt moves the player to (x,y).
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.player.X = x
		ts.Sim.player.Y = y
	}}
}

// WithPlayerHealth overrides the player's starting health.
func WithPlayerHealth(h int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.player.Health = h
	}}
}

// WithPlayerArmed gives the player a weapon from the start.
func WithPlayerArmed() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.player.HasWeapon = true
	}}
}

// WithOpponent adds an opponent at (x,y).
func WithOpponent(x, y float64, health int, armed bool) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.addOpponent(x, y, health, armed)
	}}
}

// WithPickup adds a pickup at (x,y).
func WithPickup(x, y float64, kind PickupKind) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.addPickup(x, y, kind)
	}}
}

// WithProjectile places an unowned projectile at (x,y) heading along angle.
func WithProjectile(x, y, angle float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		s := ts.Sim
		s.projectiles = append(s.projectiles,
			newProjectile(s.allocID(), NoShooter, x, y, angle, s.tuning.ProjectileSpeed))
	}}
}

// WithZoneRadius overrides the current zone radius.
func WithZoneRadius(r float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Sim.zone.Radius = r
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (tuning, seed, verbose, input)
//  2. Build the Simulation
//  3. Entities
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		Stats:  NewMatchStats(),
		tuning: DefaultTuning(),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		dt:     1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.random {
		ts.Sim = NewSimulation(ts.tuning, ts.rng)
	} else {
		ts.Sim = newBareSimulation(ts.tuning, ts.rng)
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	if ts.input == nil {
		ts.input = holdInput
	}
	return ts
}

// holdInput stands still and keeps the current facing.
func holdInput(snap ArenaSnapshot) InputSnapshot {
	return InputSnapshot{AimX: snap.Player.X, AimY: snap.Player.Y}
}

// Step advances one tick with explicit input, logging the report.
func (ts *TestSim) Step(in InputSnapshot) TickReport {
	rep := ts.Sim.Advance(in, ts.dt)
	ts.SimLog.RecordReport(rep)
	ts.Stats.Record(rep)
	if rep.Advanced {
		ts.SimLog.RecordSnapshot(ts.Sim.Snapshot())
	}
	return rep
}

// RunTicks advances up to n ticks using the configured input source, stopping
// early once the match ends. Returns the number of ticks actually simulated.
func (ts *TestSim) RunTicks(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if ts.Sim.State().Terminal() {
			break
		}
		ts.Step(ts.input(ts.Sim.Snapshot()))
		ran++
	}
	return ran
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(ts.input(ts.Sim.Snapshot()))
		if predicate(ts) {
			return ts.Sim.Tick()
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Sim.Tick()
}
