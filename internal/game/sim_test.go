package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestNewSimulation_SpawnsInsideArena(t *testing.T) {
	tun := DefaultTuning()
	s := NewSimulation(tun, rand.New(rand.NewSource(42))) // #nosec G404 -- test
	snap := s.Snapshot()

	if len(snap.Opponents) != 5 || len(snap.Pickups) != 10 {
		t.Fatalf("expected 5 opponents and 10 pickups, got %d/%d", len(snap.Opponents), len(snap.Pickups))
	}
	if snap.Player.X != 400 || snap.Player.Y != 300 || snap.Player.Health != 100 || snap.Player.HasWeapon {
		t.Fatalf("player should start unarmed at centre with full health: %+v", snap.Player)
	}
	if snap.Zone.Radius != 300 || snap.Zone.CenterX != 400 || snap.Zone.CenterY != 300 {
		t.Fatalf("unexpected starting zone %+v", snap.Zone)
	}

	seen := map[EntityID]bool{PlayerID: true}
	check := func(id EntityID, x, y float64) {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
		if x < 0 || x > 800 || y < 0 || y > 600 || x != float64(int(x)) || y != float64(int(y)) {
			t.Fatalf("id %d spawned off-grid at (%.2f,%.2f)", id, x, y)
		}
	}
	for _, o := range snap.Opponents {
		check(o.ID, o.X, o.Y)
		if o.Health != 100 {
			t.Fatalf("opponent %d should start at full health", o.ID)
		}
	}
	for _, it := range snap.Pickups {
		check(it.ID, it.X, it.Y)
	}
}

func TestNewSimulation_DeterministicForSeed(t *testing.T) {
	a := NewSimulation(DefaultTuning(), rand.New(rand.NewSource(5))).Snapshot() // #nosec G404 -- test
	b := NewSimulation(DefaultTuning(), rand.New(rand.NewSource(5))).Snapshot() // #nosec G404 -- test
	for i := range a.Opponents {
		if a.Opponents[i] != b.Opponents[i] {
			t.Fatalf("opponent %d differs: %+v vs %+v", i, a.Opponents[i], b.Opponents[i])
		}
	}
	for i := range a.Pickups {
		if a.Pickups[i] != b.Pickups[i] {
			t.Fatalf("pickup %d differs: %+v vs %+v", i, a.Pickups[i], b.Pickups[i])
		}
	}
}

func TestNewSimulation_ZeroOpponentsWinsOnFirstTick(t *testing.T) {
	tun := DefaultTuning()
	tun.OpponentCount = 0
	s := NewSimulation(tun, rand.New(rand.NewSource(1))) // #nosec G404 -- test
	if s.State() != MatchRunning {
		t.Fatal("state is only decided by Advance")
	}
	rep := s.Advance(InputSnapshot{AimX: 400, AimY: 300}, 1)
	if rep.State != MatchWon {
		t.Fatalf("empty roster should win, got %s", rep.State)
	}
}

func TestAdvance_NonPositiveDtIsNoop(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 100, false))
	before := ts.Sim.Snapshot()
	for _, dt := range []float64{0, -1} {
		rep := ts.Sim.Advance(InputSnapshot{Right: true}, dt)
		if rep.Advanced || rep.Tick != 0 {
			t.Fatalf("dt=%.1f should not advance, got %+v", dt, rep)
		}
	}
	after := ts.Sim.Snapshot()
	if after.Player != before.Player || after.Opponents[0] != before.Opponents[0] || after.Zone != before.Zone {
		t.Fatal("non-positive dt changed the arena")
	}
}

func TestAdvance_NonFiniteDtIsNoop(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 100, false))
	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		rep := ts.Sim.Advance(InputSnapshot{Right: true}, dt)
		if rep.Advanced || rep.Tick != 0 {
			t.Fatalf("dt=%v should not advance, got %+v", dt, rep)
		}
	}
	snap := ts.Sim.Snapshot()
	if snap.Zone.Radius != 300 || snap.Player.X != 400 || snap.Player.Y != 300 {
		t.Fatalf("non-finite dt changed the arena: zone=%v player=(%v,%v)", snap.Zone.Radius, snap.Player.X, snap.Player.Y)
	}
}

func TestAdvance_TerminalStateIsFrozen(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 1, false), WithZoneRadius(50))
	ts.RunTicks(5)
	if ts.Sim.State() != MatchWon || ts.CurrentTick() != 1 {
		t.Fatalf("expected win on tick 1, got %s at %d", ts.Sim.State(), ts.CurrentTick())
	}
	rep := ts.Step(InputSnapshot{Left: true})
	if rep.Advanced || rep.State != MatchWon || ts.CurrentTick() != 1 {
		t.Fatalf("won match should not advance: %+v", rep)
	}
	if ts.Sim.Snapshot().Player.X != 400 {
		t.Fatal("player moved after the match ended")
	}
}

func TestAdvance_TickCounts(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 100, false))
	if n := ts.RunTicks(7); n != 7 {
		t.Fatalf("expected 7 ticks, ran %d", n)
	}
	if ts.Sim.Tick() != 7 || ts.Sim.Snapshot().Tick != 7 {
		t.Fatalf("tick counter out of step: %d", ts.Sim.Tick())
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 100, false))
	snap := ts.Sim.Snapshot()
	snap.Opponents[0].Health = 1
	snap.Player.X = 0
	again := ts.Sim.Snapshot()
	if again.Opponents[0].Health != 100 || again.Player.X != 400 {
		t.Fatal("mutating a snapshot leaked into the simulation")
	}
}

func TestTicksFromDuration(t *testing.T) {
	if got := TicksFromDuration(time.Second); got != 60 {
		t.Fatalf("one second should be 60 ticks, got %.3f", got)
	}
	if got := TicksFromDuration(time.Second / 120); got < 0.4999 || got > 0.5001 {
		t.Fatalf("1/120 s should be half a tick, got %.5f", got)
	}
}

func TestHealthFraction(t *testing.T) {
	cases := []struct {
		h, max int
		want   float64
	}{
		{100, 100, 1},
		{50, 100, 0.5},
		{-20, 100, 0},
		{150, 100, 1},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := HealthFraction(c.h, c.max); got != c.want {
			t.Errorf("HealthFraction(%d,%d)=%.2f want %.2f", c.h, c.max, got, c.want)
		}
	}
}

func TestMatchState_String(t *testing.T) {
	if MatchRunning.String() != "running" || MatchWon.String() != "won" || MatchLost.String() != "lost" {
		t.Fatal("unexpected match state names")
	}
	if MatchRunning.Terminal() || !MatchWon.Terminal() || !MatchLost.Terminal() {
		t.Fatal("only won and lost are terminal")
	}
}

func TestDetermineOutcome_LossFirst(t *testing.T) {
	dead := &Player{Health: 0}
	if got := determineOutcome(dead, 0); got != MatchLost {
		t.Fatalf("dead player with empty roster should lose, got %s", got)
	}
	alive := &Player{Health: 1}
	if got := determineOutcome(alive, 0); got != MatchWon {
		t.Fatalf("expected won, got %s", got)
	}
	if got := determineOutcome(alive, 2); got != MatchRunning {
		t.Fatalf("expected running, got %s", got)
	}
}
