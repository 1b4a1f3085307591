package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestMoveDelta_AxisAligned(t *testing.T) {
	dx, dy := MoveDelta(InputSnapshot{Right: true}, 5)
	if dx != 5 || dy != 0 {
		t.Fatalf("expected (5,0), got (%.3f,%.3f)", dx, dy)
	}
	dx, dy = MoveDelta(InputSnapshot{Up: true}, 5)
	if dx != 0 || dy != -5 {
		t.Fatalf("expected (0,-5), got (%.3f,%.3f)", dx, dy)
	}
}

func TestMoveDelta_DiagonalNormalised(t *testing.T) {
	dx, dy := MoveDelta(InputSnapshot{Up: true, Right: true}, 5)
	if l := math.Hypot(dx, dy); math.Abs(l-5) > eps {
		t.Fatalf("diagonal speed should equal axis speed 5, got %.6f", l)
	}
	if math.Abs(dx-5/math.Sqrt2) > eps || math.Abs(dy+5/math.Sqrt2) > eps {
		t.Fatalf("unexpected diagonal (%.6f,%.6f)", dx, dy)
	}
}

func TestMoveDelta_OppositeFlagsCancel(t *testing.T) {
	dx, dy := MoveDelta(InputSnapshot{Up: true, Down: true}, 5)
	if dx != 0 || dy != 0 {
		t.Fatalf("up+down should cancel, got (%.3f,%.3f)", dx, dy)
	}
	dx, dy = MoveDelta(InputSnapshot{Left: true, Right: true, Up: true}, 5)
	if dx != 0 || dy != -5 {
		t.Fatalf("left+right+up should move straight up at full speed, got (%.3f,%.3f)", dx, dy)
	}
}

func TestSeekStep_ZeroDistance(t *testing.T) {
	dx, dy := seekStep(100, 100, 100, 100, 3)
	if dx != 0 || dy != 0 {
		t.Fatalf("zero distance must not move, got (%.3f,%.3f)", dx, dy)
	}
	if math.IsNaN(dx) || math.IsNaN(dy) {
		t.Fatal("zero distance produced NaN")
	}
}

func TestAimAngle_KeepsFallbackOnZeroAim(t *testing.T) {
	if got := aimAngle(10, 10, 10, 10, 1.25); got != 1.25 {
		t.Fatalf("expected fallback facing 1.25, got %.3f", got)
	}
	if got := aimAngle(0, 0, 0, 10, 0); math.Abs(got-math.Pi/2) > eps {
		t.Fatalf("expected pi/2, got %.6f", got)
	}
}

func TestPlayerMovement_ClampedToArena(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(12, 12),
		WithOpponent(700, 300, 100, false),
	)
	ts.Step(InputSnapshot{Up: true, Left: true, AimX: 0, AimY: 0})
	p := ts.Sim.Snapshot().Player
	if p.X != 10 || p.Y != 10 {
		t.Fatalf("player should be clamped to (10,10), got (%.3f,%.3f)", p.X, p.Y)
	}

	ts = NewTestSim(
		WithPlayerAt(795, 598),
		WithOpponent(100, 300, 100, false),
	)
	ts.Step(InputSnapshot{Down: true, Right: true, AimX: 800, AimY: 600})
	p = ts.Sim.Snapshot().Player
	if p.X != 790 || p.Y != 590 {
		t.Fatalf("player should be clamped to (790,590), got (%.3f,%.3f)", p.X, p.Y)
	}
}

func TestOpponent_SeeksPlayer(t *testing.T) {
	ts := NewTestSim(WithOpponent(400, 100, 100, false))
	ts.Step(holdInput(ts.Sim.Snapshot()))
	o := ts.Sim.Snapshot().Opponents[0]
	if math.Abs(o.X-400) > eps || math.Abs(o.Y-103) > eps {
		t.Fatalf("opponent should step 3px toward player, got (%.3f,%.3f)", o.X, o.Y)
	}
}

func TestOpponent_NotClampedToArena(t *testing.T) {
	ts := NewTestSim(
		WithPlayerAt(10, 300),
		WithOpponent(-50, 300, 1000, false),
		WithTuning(func(t *Tuning) { t.OpponentSpeed = -1 }), // drift away from the player
	)
	ts.Step(holdInput(ts.Sim.Snapshot()))
	o := ts.Sim.Snapshot().Opponents[0]
	if o.X >= -50 {
		t.Fatalf("opponent should keep drifting outside the arena, got x=%.3f", o.X)
	}
}
