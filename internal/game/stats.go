package game

import (
	"fmt"
	"strings"
)

// MatchStats accumulates totals across the TickReports of one match.
type MatchStats struct {
	Ticks   int
	Outcome MatchState

	ShotsFired    int // by the player
	OpponentShots int
	HitsLanded    int // player projectiles that hit an opponent
	HitsTaken     int // projectiles of any shooter that hit the player

	ProjectileDamageTaken int
	ZoneDamageTaken       int

	KillsByProjectile int
	KillsByZone       int

	WeaponPickups int
	HealthPickups int

	shooters map[EntityID]EntityID // live projectile -> shooter
}

// NewMatchStats returns an empty accumulator.
func NewMatchStats() *MatchStats {
	return &MatchStats{shooters: make(map[EntityID]EntityID)}
}

// Record folds one report into the totals.
func (ms *MatchStats) Record(rep TickReport) {
	if !rep.Advanced {
		return
	}
	ms.Ticks = rep.Tick
	ms.Outcome = rep.State

	for _, sp := range rep.Spawned {
		ms.shooters[sp.ID] = sp.Shooter
		if sp.Shooter == PlayerID {
			ms.ShotsFired++
		} else {
			ms.OpponentShots++
		}
	}
	for _, rm := range rep.Removed {
		shooter, known := ms.shooters[rm.ID]
		delete(ms.shooters, rm.ID)
		if rm.Reason != RemovedOnHit {
			continue
		}
		if rm.Target == PlayerID {
			ms.HitsTaken++
		} else if known && shooter == PlayerID {
			ms.HitsLanded++
		}
	}

	// The killing blow is the damage event that left the target at zero.
	killer := map[EntityID]DamageSource{}
	for _, d := range rep.Damage {
		if d.Kind == KindPlayer {
			switch d.Source {
			case SourceProjectile:
				ms.ProjectileDamageTaken += d.Amount
			case SourceZone:
				ms.ZoneDamageTaken += d.Amount
			}
		}
		if d.Remaining == 0 {
			killer[d.Target] = d.Source
		}
	}
	for _, d := range rep.Deaths {
		if d.Kind != KindOpponent {
			continue
		}
		switch killer[d.ID] {
		case SourceProjectile:
			ms.KillsByProjectile++
		case SourceZone:
			ms.KillsByZone++
		}
	}

	for _, p := range rep.Pickups {
		switch p.Kind {
		case PickupWeapon:
			ms.WeaponPickups++
		case PickupHealth:
			ms.HealthPickups++
		}
	}
}

// Kills returns every opponent death regardless of cause.
func (ms *MatchStats) Kills() int {
	return ms.KillsByProjectile + ms.KillsByZone
}

// Accuracy returns the fraction of player shots that hit, or 0 with no shots.
func (ms *MatchStats) Accuracy() float64 {
	if ms.ShotsFired == 0 {
		return 0
	}
	return float64(ms.HitsLanded) / float64(ms.ShotsFired)
}

// Format renders the totals as a short multi-line report.
func (ms *MatchStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "outcome=%s ticks=%d\n", ms.Outcome, ms.Ticks)
	fmt.Fprintf(&sb, "shots: fired=%d landed=%d accuracy=%.0f%% opponent_shots=%d\n",
		ms.ShotsFired, ms.HitsLanded, ms.Accuracy()*100, ms.OpponentShots)
	fmt.Fprintf(&sb, "damage_taken: projectile=%d zone=%d hits_taken=%d\n",
		ms.ProjectileDamageTaken, ms.ZoneDamageTaken, ms.HitsTaken)
	fmt.Fprintf(&sb, "kills: projectile=%d zone=%d\n", ms.KillsByProjectile, ms.KillsByZone)
	fmt.Fprintf(&sb, "pickups: weapon=%d health=%d\n", ms.WeaponPickups, ms.HealthPickups)
	return sb.String()
}
