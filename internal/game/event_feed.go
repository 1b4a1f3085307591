package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Label   string // e.g. "P", "O3"
	Kind    EntityKind
	Message string
}

// EventFeed is a ring buffer of match events rendered beside the arena.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(tick int, label string, kind EntityKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Label:   label,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddReport adds the notable events of one tick: hits, deaths, pickups and
// the match result. Spawns and zone ticks are too frequent to show.
func (f *EventFeed) AddReport(rep TickReport) {
	if !rep.Advanced {
		return
	}
	for _, d := range rep.Damage {
		if d.Source != SourceProjectile {
			continue
		}
		f.Add(rep.Tick, entityLabel(d.Target, d.Kind), d.Kind, fmt.Sprintf("hit -%d (%d left)", d.Amount, d.Remaining))
	}
	for _, d := range rep.Deaths {
		f.Add(rep.Tick, entityLabel(d.ID, d.Kind), d.Kind, "eliminated")
	}
	for _, p := range rep.Pickups {
		f.Add(rep.Tick, "P", KindPlayer, fmt.Sprintf("picked up %s", p.Kind))
	}
	if rep.State.Terminal() {
		f.Add(rep.Tick, "--", KindPlayer, fmt.Sprintf("match %s", rep.State))
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel starting at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 24, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for _, e := range entries {
		var dot color.RGBA
		switch e.Kind {
		case KindPlayer:
			dot = colPlayer
		default:
			dot = colOpponent
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
