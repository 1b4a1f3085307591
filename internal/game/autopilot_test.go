package game

import "testing"

func TestAutopilot_AimsAtNearestOpponent(t *testing.T) {
	snap := ArenaSnapshot{
		Player: PlayerSnapshot{X: 400, Y: 300, Health: 100, HasWeapon: true},
		Opponents: []OpponentSnapshot{
			{ID: 1, X: 700, Y: 300},
			{ID: 2, X: 420, Y: 260},
		},
		Zone: SafeZone{CenterX: 400, CenterY: 300, Radius: 300},
	}
	a := NewAutopilot(1)
	in := a.Input(snap)
	if in.AimX != 420 || in.AimY != 260 || !in.Fire {
		t.Fatalf("expected to fire at O2, got %+v", in)
	}
}

func TestAutopilot_FireCadence(t *testing.T) {
	snap := ArenaSnapshot{
		Player:    PlayerSnapshot{X: 400, Y: 300, Health: 100, HasWeapon: true},
		Opponents: []OpponentSnapshot{{ID: 1, X: 500, Y: 300}},
		Zone:      SafeZone{CenterX: 400, CenterY: 300, Radius: 300},
	}
	a := NewAutopilot(3)
	fired := 0
	for i := 0; i < 9; i++ {
		if a.Input(snap).Fire {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("expected 3 shots in 9 calls, got %d", fired)
	}

	unarmed := snap
	unarmed.Player.HasWeapon = false
	if NewAutopilot(1).Input(unarmed).Fire {
		t.Fatal("unarmed autopilot must not fire")
	}
}

func TestAutopilot_ReturnsToZone(t *testing.T) {
	snap := ArenaSnapshot{
		Player: PlayerSnapshot{X: 50, Y: 550, Health: 100},
		Pickups: []PickupSnapshot{
			{ID: 5, X: 40, Y: 560, Kind: PickupWeapon},
		},
		Zone: SafeZone{CenterX: 400, CenterY: 300, Radius: 100},
	}
	in := NewAutopilot(1).Input(snap)
	if !in.Right || !in.Up || in.Left || in.Down {
		t.Fatalf("outside the zone the autopilot should head for the centre, got %+v", in)
	}
}

func TestAutopilot_SeeksWeaponThenHealth(t *testing.T) {
	snap := ArenaSnapshot{
		Player: PlayerSnapshot{X: 400, Y: 300, Health: 30},
		Pickups: []PickupSnapshot{
			{ID: 5, X: 300, Y: 300, Kind: PickupWeapon},
			{ID: 6, X: 500, Y: 300, Kind: PickupHealth},
		},
		Zone: SafeZone{CenterX: 400, CenterY: 300, Radius: 300},
	}
	in := NewAutopilot(1).Input(snap)
	if !in.Left || in.Right {
		t.Fatalf("unarmed autopilot should go for the weapon, got %+v", in)
	}

	snap.Player.HasWeapon = true
	in = NewAutopilot(1).Input(snap)
	if !in.Right || in.Left {
		t.Fatalf("armed but hurt autopilot should go for health, got %+v", in)
	}

	snap.Player.Health = 90
	in = NewAutopilot(1).Input(snap)
	if in.Left || in.Right || in.Up || in.Down {
		t.Fatalf("healthy armed autopilot should hold position, got %+v", in)
	}
}
