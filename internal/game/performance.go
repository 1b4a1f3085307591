package game

import (
	"fmt"
	"sort"
	"strings"
)

// Performance grading thresholds.
const (
	perfMinShotsForAccuracy = 5
	perfSharpshooterAcc     = 0.5
	perfScavengerPickups    = 3
)

// MatchGrade scores the player's run through one match.
type MatchGrade struct {
	Seed   int64
	Score  float64 // 0-100
	Letter string
	Traits []string
}

// GradeMatch scores a finished (or capped) match from its stats. finalHealth
// is the player's health at the end; opponents is the starting roster size.
func GradeMatch(seed int64, ms *MatchStats, finalHealth, maxHealth, opponents int) MatchGrade {
	s := 50.0
	switch ms.Outcome {
	case MatchWon:
		s += 25
	case MatchLost:
		s -= 25
	}
	s += 15.0 * perfFrac(ms.KillsByProjectile, opponents)
	s += 5.0 * perfFrac(ms.KillsByZone, opponents)
	if ms.ShotsFired >= perfMinShotsForAccuracy {
		s += 10.0 * ms.Accuracy()
	}
	if ms.Outcome != MatchLost {
		s += 10.0 * perfFrac(finalHealth, maxHealth)
	}
	s -= 10.0 * perfFrac(ms.ZoneDamageTaken, maxHealth)

	score := perfClamp(s)
	return MatchGrade{
		Seed:   seed,
		Score:  score,
		Letter: PerfLetterGrade(score),
		Traits: perfDetectTraits(ms, maxHealth),
	}
}

func perfDetectTraits(ms *MatchStats, maxHealth int) []string {
	var traits []string
	if ms.ShotsFired >= perfMinShotsForAccuracy && ms.Accuracy() >= perfSharpshooterAcc {
		traits = append(traits, "sharpshooter")
	}
	if ms.Outcome == MatchWon && ms.HitsTaken == 0 {
		traits = append(traits, "untouched")
	}
	if maxHealth > 0 && ms.ZoneDamageTaken*2 >= maxHealth {
		traits = append(traits, "zone-burned")
	}
	if ms.WeaponPickups+ms.HealthPickups >= perfScavengerPickups {
		traits = append(traits, "scavenger")
	}
	if ms.Kills() > 0 && ms.KillsByZone == ms.Kills() {
		traits = append(traits, "zone-reliant")
	}
	return traits
}

// FormatGradesSummary renders the grade spread and the most common traits.
func FormatGradesSummary(grades []MatchGrade) string {
	if len(grades) == 0 {
		return "grades: n/a\n"
	}
	var sb strings.Builder
	letters := map[string]int{}
	traits := map[string]int{}
	total := 0.0
	for _, g := range grades {
		letters[g.Letter]++
		total += g.Score
		for _, t := range g.Traits {
			traits[t]++
		}
	}
	avg := total / float64(len(grades))
	fmt.Fprintf(&sb, "grades: avg=%.0f (%s)", avg, PerfLetterGrade(avg))
	for _, l := range []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"} {
		if n := letters[l]; n > 0 {
			fmt.Fprintf(&sb, " %s=%d", l, n)
		}
	}
	sb.WriteByte('\n')
	if len(traits) > 0 {
		fmt.Fprintf(&sb, "top traits: %s\n", perfTopTraits(traits, 4))
	}
	return sb.String()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PerfLetterGrade maps a 0-100 score to a letter grade.
func PerfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

func perfTopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
