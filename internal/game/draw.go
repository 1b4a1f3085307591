package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colPlayer     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colOpponent   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colHealthBar  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colZone       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colProjectile = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colWeapon     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colHealth     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colArmedRing  = color.RGBA{R: 255, G: 200, B: 0, A: 200}
)

const (
	healthBarGap    = 10 // px above the body
	healthBarHeight = 5
	zoneStroke      = 2
)

// drawArena renders one snapshot into dst, offset by (offX, offY), back to
// front: zone, player, opponents, pickups, projectiles.
func drawArena(dst *ebiten.Image, snap ArenaSnapshot, offX, offY float64) {
	vector.FillRect(dst, float32(offX), float32(offY), float32(snap.Width), float32(snap.Height), colBackground, false)

	z := snap.Zone
	vector.StrokeCircle(dst, float32(offX+z.CenterX), float32(offY+z.CenterY), float32(z.Radius), zoneStroke, colZone, true)

	p := snap.Player
	drawBody(dst, offX+p.X, offY+p.Y, p.Radius, colPlayer, p.Health, p.MaxHealth)
	if p.HasWeapon {
		hLen := p.Radius * 2
		vector.StrokeLine(dst, float32(offX+p.X), float32(offY+p.Y),
			float32(offX+p.X+math.Cos(p.Facing)*hLen), float32(offY+p.Y+math.Sin(p.Facing)*hLen), 2, colProjectile, true)
	}

	for _, o := range snap.Opponents {
		drawBody(dst, offX+o.X, offY+o.Y, o.Radius, colOpponent, o.Health, p.MaxHealth)
		if o.HasWeapon {
			vector.StrokeCircle(dst, float32(offX+o.X), float32(offY+o.Y), float32(o.Radius+2), 1, colArmedRing, true)
		}
	}

	for _, it := range snap.Pickups {
		c := colHealth
		if it.Kind == PickupWeapon {
			c = colWeapon
		}
		vector.FillCircle(dst, float32(offX+it.X), float32(offY+it.Y), float32(it.Radius), c, true)
	}

	for _, pr := range snap.Projectiles {
		vector.FillCircle(dst, float32(offX+pr.X), float32(offY+pr.Y), float32(pr.Radius), colProjectile, true)
	}
}

// drawBody draws a combatant circle with a health bar scaled to its share
// of max health.
func drawBody(dst *ebiten.Image, x, y, r float64, c color.RGBA, health, maxHealth int) {
	vector.FillCircle(dst, float32(x), float32(y), float32(r), c, true)
	w := r * 2 * HealthFraction(health, maxHealth)
	if w <= 0 {
		return
	}
	vector.FillRect(dst, float32(x-r), float32(y-r-healthBarGap), float32(w), healthBarHeight, colHealthBar, false)
}
