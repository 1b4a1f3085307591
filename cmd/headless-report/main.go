package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Zone-Royale/internal/config"
	"github.com/Garsondee/Zone-Royale/internal/game"
	"github.com/Garsondee/Zone-Royale/internal/logging"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int
	outcome  game.MatchState

	firstHitTick   int
	firstKillTick  int
	firstZoneTick  int
	weaponTick     int
	finalHealth    int
	opponentsAlive int

	stats game.MatchStats
	grade game.MatchGrade
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var fireEvery int
	var cfgPath string
	var logLevel string

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 3600, "tick cap per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&fireEvery, "fire-every", 15, "autopilot ticks between shots")
	flag.StringVar(&cfgPath, "config", "", "optional JSON settings file")
	flag.StringVar(&logLevel, "log-level", "", "override settings logLevel")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	settings, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	logger := logging.New(os.Stderr, settings.LogLevel, false)
	tuning := settings.Tuning()

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d fire_every=%d\n\n", runs, ticks, seedBase, seedStep, fireEvery)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runMatch(i+1, seed, ticks, fireEvery, tuning)
		logger.Debug().
			Int("run", rs.runIndex).
			Int64("seed", rs.seed).
			Str("outcome", rs.outcome.String()).
			Int("ticks", rs.ticks).
			Msg("run finished")
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runMatch(runIndex int, seed int64, ticks, fireEvery int, tuning game.Tuning) runStats {
	pilot := game.NewAutopilot(fireEvery)
	ts := game.NewTestSim(
		game.WithTuning(func(t *game.Tuning) { *t = tuning }),
		game.WithSeed(seed),
		game.WithRandomSpawns(),
		game.WithInput(pilot.Input),
	)
	ran := ts.RunTicks(ticks)
	snap := ts.Sim.Snapshot()
	grade := game.GradeMatch(seed, ts.Stats, snap.Player.Health, tuning.MaxHealth, tuning.OpponentCount)

	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		ticks:          ran,
		outcome:        snap.State,
		firstHitTick:   firstTick(ts.SimLog, "damage", "projectile"),
		firstKillTick:  firstTick(ts.SimLog, "death", "opponent"),
		firstZoneTick:  firstTick(ts.SimLog, "damage", "zone"),
		weaponTick:     firstTick(ts.SimLog, "pickup", "weapon"),
		finalHealth:    snap.Player.Health,
		opponentsAlive: len(snap.Opponents),
		stats:          *ts.Stats,
		grade:          grade,
	}
}

func firstTick(sl *game.SimLog, category, key string) int {
	if e := sl.Filter(category, key); len(e) > 0 {
		return e[0].Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: outcome=%s ticks=%d final_health=%d opponents_alive=%d\n",
		rs.outcome, rs.ticks, rs.finalHealth, rs.opponentsAlive)
	fmt.Printf("phase_markers: weapon=%d first_hit=%d first_kill=%d first_zone_damage=%d\n",
		rs.weaponTick, rs.firstHitTick, rs.firstKillTick, rs.firstZoneTick)
	fmt.Print(rs.stats.Format())
	fmt.Printf("grade: %s (%.0f) traits=%s\n", rs.grade.Letter, rs.grade.Score, strings.Join(rs.grade.Traits, ","))
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[game.MatchState]int{}
	totalShots := 0
	totalLanded := 0
	totalKills := 0
	totalZoneKills := 0
	totalZoneDamage := 0
	finishTicks := make([]int, 0, len(all))
	grades := make([]game.MatchGrade, 0, len(all))

	for _, rs := range all {
		outcomes[rs.outcome]++
		totalShots += rs.stats.ShotsFired
		totalLanded += rs.stats.HitsLanded
		totalKills += rs.stats.Kills()
		totalZoneKills += rs.stats.KillsByZone
		totalZoneDamage += rs.stats.ZoneDamageTaken
		grades = append(grades, rs.grade)
		if rs.outcome.Terminal() {
			finishTicks = append(finishTicks, rs.ticks)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d won=%d lost=%d unfinished=%d win_rate=%.0f%%\n",
		len(all), outcomes[game.MatchWon], outcomes[game.MatchLost], outcomes[game.MatchRunning],
		pct(outcomes[game.MatchWon], len(all)))
	fmt.Printf("avg_per_run: shots=%.1f landed=%.1f kills=%.1f zone_kills=%.1f zone_damage_taken=%.1f\n",
		avg(totalShots, len(all)), avg(totalLanded, len(all)), avg(totalKills, len(all)),
		avg(totalZoneKills, len(all)), avg(totalZoneDamage, len(all)))
	fmt.Printf("accuracy=%.0f%% finish_ticks: %s\n", pct(totalLanded, totalShots), tickSpread(finishTicks))
	fmt.Print(game.FormatGradesSummary(grades))
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// tickSpread formats min/median/max of the given ticks, or "n/a".
func tickSpread(ticks []int) string {
	if len(ticks) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), ticks...)
	sort.Ints(sorted)
	return fmt.Sprintf("min=%d median=%d max=%d", sorted[0], sorted[len(sorted)/2], sorted[len(sorted)-1])
}

