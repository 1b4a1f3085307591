package game

// DamageSource names what dealt a damage event.
type DamageSource int

const (
	SourceProjectile DamageSource = iota
	SourceZone
)

func (s DamageSource) String() string {
	switch s {
	case SourceProjectile:
		return "projectile"
	case SourceZone:
		return "zone"
	default:
		return "unknown"
	}
}

// RemovalReason names why a projectile left play.
type RemovalReason int

const (
	RemovedOutOfBounds RemovalReason = iota
	RemovedOnHit
)

func (r RemovalReason) String() string {
	switch r {
	case RemovedOutOfBounds:
		return "out_of_bounds"
	case RemovedOnHit:
		return "hit"
	default:
		return "unknown"
	}
}

// DamageEvent records health lost by one entity. Remaining is never negative.
type DamageEvent struct {
	Target    EntityID
	Kind      EntityKind
	Source    DamageSource
	Amount    int
	Remaining int
}

// DeathEvent records an entity reaching zero health.
type DeathEvent struct {
	ID   EntityID
	Kind EntityKind
}

// PickupEvent records a pickup consumed by the player.
type PickupEvent struct {
	ID   EntityID
	Kind PickupKind
}

// ProjectileSpawn records a projectile entering play.
type ProjectileSpawn struct {
	ID      EntityID
	Shooter EntityID
	X, Y    float64
	VX, VY  float64
}

// ProjectileRemoval records a projectile leaving play. Target is set only
// when Reason is RemovedOnHit.
type ProjectileRemoval struct {
	ID     EntityID
	Reason RemovalReason
	Target EntityID
}

// TickReport summarises one Advance call for the host.
type TickReport struct {
	Tick     int
	Damage   []DamageEvent
	Deaths   []DeathEvent
	Pickups  []PickupEvent
	Spawned  []ProjectileSpawn
	Removed  []ProjectileRemoval
	State    MatchState
	Advanced bool // false when the call was a no-op (terminal state or dt <= 0)
}
