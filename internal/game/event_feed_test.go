package game

import (
	"fmt"
	"testing"
)

func TestEventFeed_OrderAndOverflow(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, "P", KindPlayer, fmt.Sprintf("m%d", i))
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("expected oldest 5 and newest %d, got %d..%d", feedMaxEntries+4, got[0].Tick, got[len(got)-1].Tick)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Tick <= got[i-1].Tick {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestEventFeed_AddReport(t *testing.T) {
	f := NewEventFeed()
	f.AddReport(TickReport{
		Tick:     4,
		Advanced: true,
		Damage: []DamageEvent{
			{Target: 2, Kind: KindOpponent, Source: SourceProjectile, Amount: 20, Remaining: 0},
			{Target: PlayerID, Kind: KindPlayer, Source: SourceZone, Amount: 1, Remaining: 50},
		},
		Deaths:  []DeathEvent{{ID: 2, Kind: KindOpponent}},
		Pickups: []PickupEvent{{ID: 8, Kind: PickupWeapon}},
		State:   MatchWon,
	})
	got := f.Recent()
	want := []string{"hit -20 (0 left)", "eliminated", "picked up weapon", "match won"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].Message != w {
			t.Fatalf("entry %d: want %q got %q", i, w, got[i].Message)
		}
	}
	if got[0].Label != "O2" {
		t.Fatalf("expected label O2, got %q", got[0].Label)
	}

	f.AddReport(TickReport{Tick: 5, State: MatchWon})
	if len(f.Recent()) != len(want) {
		t.Fatal("no-op report should not add entries")
	}
}
