package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 12

// statusTicks is how long a transient HUD status line stays up.
const statusTicks = 120

// Options configures the windowed host.
type Options struct {
	Tuning Tuning
	Seed   int64 // 0 picks a seed from the clock
	Logger zerolog.Logger
}

// Game is the ebiten host: it gathers input, advances the Simulation once per
// frame and renders the snapshot. The Simulation never draws.
type Game struct {
	width  int
	height int
	offX   int
	offY   int

	tuning Tuning
	seed   int64
	sim    *Simulation
	feed   *EventFeed
	simLog *SimLog
	stats  *MatchStats
	log    zerolog.Logger
	face   text.Face

	inspector Inspector

	paused         bool
	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool // for edge-triggered fire
	prevMouseRight bool

	status      string
	statusTimer int
}

// New creates the host and starts the first match.
func New(opts Options) *Game {
	g := &Game{
		width:    borderWidth + int(opts.Tuning.Width) + borderWidth + feedPanelWidth,
		height:   borderWidth + int(opts.Tuning.Height) + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		tuning:   opts.Tuning,
		seed:     opts.Seed,
		log:      opts.Logger,
		face:     text.NewGoXFace(basicfont.Face7x13),
		prevKeys: make(map[ebiten.Key]bool),
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.startMatch()
	return g
}

// WindowSize returns the window dimensions the host lays out for.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

// startMatch (re)creates the simulation and every per-match log.
func (g *Game) startMatch() {
	rng := rand.New(rand.NewSource(g.seed)) // #nosec G404 -- game only
	g.sim = NewSimulation(g.tuning, rng)
	g.feed = NewEventFeed()
	g.simLog = NewSimLog(false)
	g.stats = NewMatchStats()
	g.inspector.active = false
	g.log.Info().
		Int64("seed", g.seed).
		Int("opponents", g.tuning.OpponentCount).
		Int("pickups", g.tuning.PickupCount).
		Msg("match started")
}

func (g *Game) Update() error {
	in := g.handleInput()
	if g.statusTimer > 0 {
		g.statusTimer--
	}
	if g.paused {
		return nil
	}

	rep := g.sim.Advance(in, 1)
	if !rep.Advanced {
		return nil
	}
	g.feed.AddReport(rep)
	g.simLog.RecordReport(rep)
	g.stats.Record(rep)

	for _, d := range rep.Deaths {
		g.log.Debug().Int("tick", rep.Tick).Str("entity", entityLabel(d.ID, d.Kind)).Msg("eliminated")
	}
	if rep.State.Terminal() {
		g.log.Info().
			Int("tick", rep.Tick).
			Str("outcome", rep.State.String()).
			Int("kills", g.stats.Kills()).
			Int("shots", g.stats.ShotsFired).
			Msg("match finished")
	}
	return nil
}

// justPressed reports a key's rising edge and records its state.
func (g *Game) justPressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

// handleInput reads the keyboard and mouse into an InputSnapshot and handles
// host hotkeys (edge-triggered).
func (g *Game) handleInput() InputSnapshot {
	currentKeys := map[ebiten.Key]bool{}

	if g.justPressed(currentKeys, ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.justPressed(currentKeys, ebiten.KeyR) {
		g.seed++
		g.startMatch()
		g.setStatus(fmt.Sprintf("restarted (seed %d)", g.seed))
	}
	if g.justPressed(currentKeys, ebiten.KeyC) {
		if err := setClipboardText(matchReport(g.seed, g.stats, g.simLog)); err != nil {
			g.log.Warn().Err(err).Msg("clipboard unavailable")
			g.setStatus("copy failed")
		} else {
			g.setStatus("match report copied")
		}
	}
	g.prevKeys = currentKeys

	mx, my := ebiten.CursorPosition()
	in := InputSnapshot{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		AimX:  float64(mx - g.offX),
		AimY:  float64(my - g.offY),
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Fire = left && !g.prevMouseLeft
	g.prevMouseLeft = left

	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && !g.prevMouseRight {
		if g.handleInspectorClick(mx, my) {
			g.setStatus(fmt.Sprintf("inspecting %s", entityLabel(g.inspector.selected, g.inspector.kind)))
		}
	}
	g.prevMouseRight = right
	return in
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusTicks
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 24, A: 255})
	snap := g.sim.Snapshot()
	drawArena(screen, snap, float64(g.offX), float64(g.offY))
	g.feed.Draw(screen, g.width-feedPanelWidth, g.height)
	g.drawInspector(screen, snap)
	g.drawHUD(screen, snap)
}

// drawHUD renders the health line, status and end-of-match banner.
func (g *Game) drawHUD(screen *ebiten.Image, snap ArenaSnapshot) {
	g.drawText(screen, fmt.Sprintf("Health: %d", snap.Player.Health), 10, 10, color.White)
	if snap.Player.HasWeapon {
		g.drawText(screen, "Armed", 10, 26, colWeapon)
	}
	if g.paused {
		g.drawText(screen, "PAUSED", 10, 42, color.White)
	}
	if g.statusTimer > 0 {
		g.drawText(screen, g.status, 10, float64(g.height-borderWidth-20), color.White)
	}

	cx := float64(g.offX) + snap.Width/2 - 50
	cy := float64(g.offY) + snap.Height/2
	switch snap.State {
	case MatchWon:
		g.drawText(screen, "You Win!  (R to restart)", cx, cy, colPlayer)
	case MatchLost:
		g.drawText(screen, "You Lose  (R to restart)", cx, cy, colHealthBar)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
