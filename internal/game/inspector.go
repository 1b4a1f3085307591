package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel — rendered into an offscreen buffer at 1× then blitted at inspScale.
const (
	inspScale = 2
	inspBufW  = 150
	inspBufH  = 96
	inspPad   = 4
	inspLineH = 13

	inspPickRadius = 16.0 // arena pixels around the cursor that count as a hit
)

// Inspector holds the selected entity. Selection is by id so it survives
// snapshot rebuilds and clears itself once the entity leaves play.
type Inspector struct {
	selected EntityID
	kind     EntityKind
	active   bool
	buf      *ebiten.Image
}

// pickEntity returns the opponent or pickup closest to (wx,wy) within radius.
// Opponents win ties with pickups under them.
func pickEntity(snap ArenaSnapshot, wx, wy, radius float64) (EntityID, EntityKind, bool) {
	best := radius
	var id EntityID
	var kind EntityKind
	found := false
	for _, o := range snap.Opponents {
		if d := math.Hypot(o.X-wx, o.Y-wy); d < best {
			best, id, kind, found = d, o.ID, KindOpponent, true
		}
	}
	if found {
		return id, kind, true
	}
	for _, it := range snap.Pickups {
		if d := math.Hypot(it.X-wx, it.Y-wy); d < best {
			best, id, kind, found = d, it.ID, KindPickup, true
		}
	}
	return id, kind, found
}

// inspectLines describes the selected entity, or returns nil once it is gone.
func inspectLines(snap ArenaSnapshot, id EntityID, kind EntityKind) []string {
	p := snap.Player
	inZone := func(x, y float64) string {
		if snap.Zone.Contains(x, y) {
			return "inside"
		}
		return "OUTSIDE"
	}
	switch kind {
	case KindOpponent:
		for _, o := range snap.Opponents {
			if o.ID != id {
				continue
			}
			return []string{
				fmt.Sprintf("[ %s ]", opponentLabel(o.ID)),
				fmt.Sprintf("health:  %d/%d", o.Health, p.MaxHealth),
				fmt.Sprintf("armed:   %v", o.HasWeapon),
				fmt.Sprintf("pos:     (%.0f,%.0f)", o.X, o.Y),
				fmt.Sprintf("range:   %.0f", math.Hypot(o.X-p.X, o.Y-p.Y)),
				fmt.Sprintf("zone:    %s", inZone(o.X, o.Y)),
			}
		}
	case KindPickup:
		for _, it := range snap.Pickups {
			if it.ID != id {
				continue
			}
			return []string{
				fmt.Sprintf("[ %s %s ]", pickupLabel(it.ID), it.Kind),
				fmt.Sprintf("pos:     (%.0f,%.0f)", it.X, it.Y),
				fmt.Sprintf("range:   %.0f", math.Hypot(it.X-p.X, it.Y-p.Y)),
				fmt.Sprintf("zone:    %s", inZone(it.X, it.Y)),
			}
		}
	}
	return nil
}

// handleInspectorClick selects whatever lies under the cursor, or clears the
// selection on empty space. Returns true if something was hit.
func (g *Game) handleInspectorClick(mx, my int) bool {
	wx := float64(mx - g.offX)
	wy := float64(my - g.offY)
	id, kind, ok := pickEntity(g.sim.Snapshot(), wx, wy, inspPickRadius)
	g.inspector.selected, g.inspector.kind, g.inspector.active = id, kind, ok
	return ok
}

// drawInspector renders the inspector panel into an offscreen buffer at 1×,
// then blits it onto the screen at inspScale for readability.
func (g *Game) drawInspector(screen *ebiten.Image, snap ArenaSnapshot) {
	if !g.inspector.active {
		return
	}
	lines := inspectLines(snap, g.inspector.selected, g.inspector.kind)
	if lines == nil {
		g.inspector.active = false
		return
	}
	if g.inspector.buf == nil {
		g.inspector.buf = ebiten.NewImage(inspBufW, inspBufH)
	}
	buf := g.inspector.buf
	buf.Clear()

	bw := float32(inspBufW)
	bh := float32(inspBufH)
	panelBorder := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)

	ly := inspPad
	for i, line := range lines {
		ebitenutil.DebugPrintAt(buf, line, inspPad, ly)
		ly += inspLineH
		if i == 0 {
			vector.StrokeLine(buf, float32(inspPad), float32(ly+1), bw-float32(inspPad), float32(ly+1), 1.0, panelBorder, false)
			ly += 4
		}
	}

	// Bottom-right of the arena, clear of the event feed.
	px := g.width - feedPanelWidth - inspBufW*inspScale - borderWidth - 8
	py := g.height - inspBufH*inspScale - borderWidth - 8
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(inspScale), float64(inspScale))
	opts.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(buf, opts)
}
