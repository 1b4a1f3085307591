package game

import (
	"strings"
	"testing"
)

func TestSimLog_RecordReport(t *testing.T) {
	sl := NewSimLog(false)
	sl.RecordReport(TickReport{
		Tick:     12,
		Advanced: true,
		Spawned:  []ProjectileSpawn{{ID: 7, Shooter: 3, X: 100, Y: 50}},
		Removed:  []ProjectileRemoval{{ID: 6, Reason: RemovedOnHit, Target: PlayerID}},
		Damage:   []DamageEvent{{Target: PlayerID, Kind: KindPlayer, Source: SourceProjectile, Amount: 20, Remaining: 80}},
		Pickups:  []PickupEvent{{ID: 9, Kind: PickupHealth}},
		Deaths:   []DeathEvent{{ID: 3, Kind: KindOpponent}},
		State:    MatchWon,
	})

	if !sl.HasEntry("projectile", "spawn", "by O3") {
		t.Fatalf("missing spawn entry:\n%s", sl.Format())
	}
	if !sl.HasEntry("projectile", "removed", "hit P") {
		t.Fatalf("missing removal entry:\n%s", sl.Format())
	}
	d, ok := sl.LastOf("damage", "projectile")
	if !ok || d.Entity != "P" || d.NumVal != 80 || d.Value != "20 → 80" {
		t.Fatalf("unexpected damage entry %+v", d)
	}
	if !sl.HasEntry("pickup", "health", "I9") {
		t.Fatalf("missing pickup entry:\n%s", sl.Format())
	}
	if len(sl.FilterEntity("O3")) != 1 {
		t.Fatalf("expected one O3 entry:\n%s", sl.Format())
	}
	if !sl.HasEntry("match", "state", "won") {
		t.Fatalf("missing match entry:\n%s", sl.Format())
	}
	for _, e := range sl.Entries() {
		if e.Tick != 12 {
			t.Fatalf("entry logged at wrong tick: %s", e)
		}
	}
}

func TestSimLog_SkipsNoopReport(t *testing.T) {
	sl := NewSimLog(true)
	sl.RecordReport(TickReport{Tick: 3, State: MatchLost})
	if len(sl.Entries()) != 0 {
		t.Fatalf("no-op report should log nothing:\n%s", sl.Format())
	}
}

func TestSimLog_VerboseSnapshot(t *testing.T) {
	ts := NewTestSim(WithVerbose(true), WithOpponent(400, 100, 100, false))
	ts.RunTicks(3)
	if n := ts.SimLog.CountCategory("zone", "radius"); n != 3 {
		t.Fatalf("expected 3 zone radius entries, got %d", n)
	}
	if n := len(ts.SimLog.Filter("move", "position")); n != 6 {
		t.Fatalf("expected player+opponent positions for 3 ticks, got %d", n)
	}

	quiet := NewTestSim(WithOpponent(400, 100, 100, false))
	quiet.RunTicks(3)
	if n := quiet.SimLog.CountCategory("move", ""); n != 0 {
		t.Fatalf("non-verbose log should skip positions, got %d", n)
	}
}

func TestSimLog_FormatRange(t *testing.T) {
	sl := NewSimLog(false)
	for tick := 1; tick <= 5; tick++ {
		sl.Add(tick, "--", "--", "zone", "radius", "x", 0)
	}
	out := sl.FormatRange(2, 3)
	if strings.Count(out, "\n") != 2 || !strings.Contains(out, "[T=002]") || strings.Contains(out, "[T=004]") {
		t.Fatalf("unexpected range output:\n%s", out)
	}
}

func TestShooterLabel(t *testing.T) {
	if shooterLabel(PlayerID) != "P" || shooterLabel(NoShooter) != "--" || shooterLabel(4) != "O4" {
		t.Fatal("unexpected shooter labels")
	}
}
