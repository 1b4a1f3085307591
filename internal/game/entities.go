package game

import "math"

// EntityID identifies any entity for the lifetime of a match.
type EntityID int

// PlayerID is always the id of the human-controlled player.
const PlayerID EntityID = 0

// EntityKind classifies an entity in reports.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindOpponent
	KindProjectile
	KindPickup
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindOpponent:
		return "opponent"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// PickupKind is what a pickup grants on contact.
type PickupKind int

const (
	PickupWeapon PickupKind = iota
	PickupHealth
)

func (k PickupKind) String() string {
	switch k {
	case PickupWeapon:
		return "weapon"
	case PickupHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Player is the human-controlled combatant.
type Player struct {
	X, Y      float64
	Health    int
	HasWeapon bool
	Facing    float64 // radians, from the aim point

	zoneDebt float64 // fractional zone damage not yet applied
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Opponent is an AI combatant that seeks the player.
type Opponent struct {
	ID        EntityID
	X, Y      float64
	Health    int
	HasWeapon bool

	zoneDebt float64
}

// Alive reports whether the opponent is still on the active roster.
func (o *Opponent) Alive() bool {
	return o.Health > 0
}

// Projectile travels in a straight line until it leaves the arena or hits.
type Projectile struct {
	ID      EntityID
	X, Y    float64
	VX, VY  float64  // per nominal tick
	Shooter EntityID // reporting only; damage ignores ownership

	spent bool
}

// newProjectile builds a projectile at (x,y) heading along angle.
func newProjectile(id, shooter EntityID, x, y, angle, speed float64) *Projectile {
	return &Projectile{
		ID:      id,
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Shooter: shooter,
	}
}

// Pickup is a static item the player collects by touching it.
type Pickup struct {
	ID   EntityID
	X, Y float64
	Kind PickupKind

	taken bool
}

// SafeZone is the shrinking circle outside which entities take damage.
type SafeZone struct {
	CenterX, CenterY float64
	Radius           float64
}

// Contains reports whether (x,y) lies within the zone (boundary inclusive).
func (z *SafeZone) Contains(x, y float64) bool {
	return math.Hypot(x-z.CenterX, y-z.CenterY) <= z.Radius
}

// Shrink reduces the radius by amount, never below floor.
func (z *SafeZone) Shrink(amount, floor float64) {
	z.Radius -= amount
	if z.Radius < floor {
		z.Radius = floor
	}
}

// circlesOverlap is the shared collision test: centre distance strictly less
// than the summed radii.
func circlesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(ax-bx, ay-by) < ar+br
}

// clampHealth returns h floored at zero for display and reporting.
func clampHealth(h int) int {
	if h < 0 {
		return 0
	}
	return h
}

// HealthFraction returns health/max clamped to [0,1], for health bars.
func HealthFraction(health, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}
	f := float64(clampHealth(health)) / float64(maxHealth)
	if f > 1 {
		return 1
	}
	return f
}
