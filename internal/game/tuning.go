package game

import "time"

// nominalTickRate is the step rate every per-tick constant is tuned for.
const nominalTickRate = 60

// --- Default tuning constants (per nominal tick) ---

const (
	defaultArenaWidth  = 800
	defaultArenaHeight = 600

	defaultEntityRadius     = 10.0
	defaultPlayerSpeed      = 5.0
	defaultOpponentSpeed    = 3.0
	defaultMaxHealth        = 100
	defaultOpponentCount    = 5
	defaultPickupCount      = 10
	defaultPickupRadius     = 5.0
	defaultHealthPickup     = 50
	defaultProjectileSpeed  = 10.0
	defaultProjectileRadius = 3.0
	defaultProjectileDamage = 20
	defaultFireChance       = 0.01 // per armed opponent per tick

	defaultZoneRadius    = 300.0
	defaultZoneMinRadius = 10.0
	defaultZoneShrink    = 0.1 // px per tick
	defaultZoneDamage    = 1   // health per tick outside
)

// Tuning holds every gameplay constant the simulation reads. Rates are per
// nominal tick and are scaled by dt inside Advance.
type Tuning struct {
	Width  float64
	Height float64

	EntityRadius  float64 // player and opponents share a body radius
	PlayerSpeed   float64
	OpponentSpeed float64
	MaxHealth     int
	OpponentCount int
	PickupCount   int

	PickupRadius       float64
	HealthPickupAmount int

	ProjectileSpeed    float64
	ProjectileRadius   float64
	ProjectileDamage   int
	OpponentFireChance float64
	// MuzzleOffset pushes a new projectile out from its shooter along the
	// firing direction. Zero spawns it on the shooter's centre.
	MuzzleOffset float64

	ZoneRadius     float64
	ZoneMinRadius  float64
	ZoneShrinkRate float64
	ZoneDamage     int
}

// DefaultTuning returns the stock match constants.
func DefaultTuning() Tuning {
	return Tuning{
		Width:              defaultArenaWidth,
		Height:             defaultArenaHeight,
		EntityRadius:       defaultEntityRadius,
		PlayerSpeed:        defaultPlayerSpeed,
		OpponentSpeed:      defaultOpponentSpeed,
		MaxHealth:          defaultMaxHealth,
		OpponentCount:      defaultOpponentCount,
		PickupCount:        defaultPickupCount,
		PickupRadius:       defaultPickupRadius,
		HealthPickupAmount: defaultHealthPickup,
		ProjectileSpeed:    defaultProjectileSpeed,
		ProjectileRadius:   defaultProjectileRadius,
		ProjectileDamage:   defaultProjectileDamage,
		OpponentFireChance: defaultFireChance,
		MuzzleOffset:       defaultEntityRadius + defaultProjectileRadius,
		ZoneRadius:         defaultZoneRadius,
		ZoneMinRadius:      defaultZoneMinRadius,
		ZoneShrinkRate:     defaultZoneShrink,
		ZoneDamage:         defaultZoneDamage,
	}
}

// TicksFromDuration converts wall-clock time into nominal ticks, for hosts
// running a variable-timestep loop.
func TicksFromDuration(d time.Duration) float64 {
	return d.Seconds() * nominalTickRate
}
