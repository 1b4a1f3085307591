package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless match.
type SimLogEntry struct {
	Tick     int
	Entity   string  // label e.g. "P", "O3", "B12", or "--" for global events
	Kind     string  // "player", "opponent", "projectile", "pickup", or "--"
	Category string  // damage, death, pickup, projectile, match, move, zone
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] O3   damage    projectile       20 → 60
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from TickReports. Unlike EventFeed (UI
// ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position and zone
// entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, entity, kind, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Entity:   entity,
		Kind:     kind,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, entity, kind, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, entity, kind, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for a specific entity label.
func (sl *SimLog) FilterEntity(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RecordReport turns one TickReport into log entries.
func (sl *SimLog) RecordReport(rep TickReport) {
	if !rep.Advanced {
		return
	}
	tick := rep.Tick
	for _, sp := range rep.Spawned {
		sl.Add(tick, projectileLabel(sp.ID), KindProjectile.String(), "projectile", "spawn",
			fmt.Sprintf("by %s at (%.0f,%.0f)", shooterLabel(sp.Shooter), sp.X, sp.Y), 0)
	}
	for _, rm := range rep.Removed {
		val := rm.Reason.String()
		if rm.Reason == RemovedOnHit {
			val = fmt.Sprintf("hit %s", shooterLabel(rm.Target))
		}
		sl.Add(tick, projectileLabel(rm.ID), KindProjectile.String(), "projectile", "removed", val, 0)
	}
	for _, d := range rep.Damage {
		sl.Add(tick, entityLabel(d.Target, d.Kind), d.Kind.String(), "damage", d.Source.String(),
			fmt.Sprintf("%d → %d", d.Amount, d.Remaining), float64(d.Remaining))
	}
	for _, p := range rep.Pickups {
		sl.Add(tick, "P", KindPlayer.String(), "pickup", p.Kind.String(),
			fmt.Sprintf("took %s", pickupLabel(p.ID)), 0)
	}
	for _, d := range rep.Deaths {
		sl.Add(tick, entityLabel(d.ID, d.Kind), d.Kind.String(), "death", d.Kind.String(), "dead", 0)
	}
	if rep.State.Terminal() {
		sl.Add(tick, "--", "--", "match", "state", fmt.Sprintf("running → %s", rep.State), 0)
	}
}

// RecordSnapshot adds verbose per-tick position and zone entries.
func (sl *SimLog) RecordSnapshot(snap ArenaSnapshot) {
	if !sl.verbose {
		return
	}
	sl.AddVerbose(snap.Tick, "P", KindPlayer.String(), "move", "position",
		fmt.Sprintf("(%.1f,%.1f)", snap.Player.X, snap.Player.Y), 0)
	for _, o := range snap.Opponents {
		sl.AddVerbose(snap.Tick, opponentLabel(o.ID), KindOpponent.String(), "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", o.X, o.Y), 0)
	}
	sl.AddVerbose(snap.Tick, "--", "--", "zone", "radius",
		fmt.Sprintf("%.1f", snap.Zone.Radius), snap.Zone.Radius)
}

func opponentLabel(id EntityID) string   { return fmt.Sprintf("O%d", id) }
func projectileLabel(id EntityID) string { return fmt.Sprintf("B%d", id) }
func pickupLabel(id EntityID) string     { return fmt.Sprintf("I%d", id) }

// shooterLabel names a player or opponent id without knowing its kind.
func shooterLabel(id EntityID) string {
	switch {
	case id == PlayerID:
		return "P"
	case id < 0:
		return "--"
	default:
		return opponentLabel(id)
	}
}

func entityLabel(id EntityID, kind EntityKind) string {
	switch kind {
	case KindPlayer:
		return "P"
	case KindOpponent:
		return opponentLabel(id)
	case KindProjectile:
		return projectileLabel(id)
	case KindPickup:
		return pickupLabel(id)
	default:
		return "--"
	}
}
