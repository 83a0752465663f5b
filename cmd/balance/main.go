// balance is a Monte Carlo simulator for testing encounter balance.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	run      - Simulate one combat scenario and report the aggregates
//	sweep    - Re-run a scenario across a range of one tuning knob
//	tuning   - Compare a tuned scenario against the neutral baseline
//	seed-db  - Create the catalog database and seed it with the built-in data
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/emberforge/encounterlab/internal/catalog"
	"github.com/emberforge/encounterlab/internal/config"
	"github.com/emberforge/encounterlab/internal/database"
	"github.com/emberforge/encounterlab/internal/logger"
	"github.com/emberforge/encounterlab/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runScenario()
	case "sweep":
		runSweep()
	case "tuning":
		runTuningCompare()
	case "seed-db":
		runSeedDB()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`EncounterLab Balance Simulator

A Monte Carlo simulator for testing encounter balance.

Usage: balance <command> [options]

Commands:
  run      Simulate one combat scenario and report the aggregates
  sweep    Re-run a scenario across a range of one tuning knob
  tuning   Compare a tuned scenario against the neutral baseline
  seed-db  Create the catalog database and seed it with the built-in data

Examples:
  balance run -level=5 -gear=starter -abilities=melee-attack,combo-finisher,dodge -enemies=melee-grunt:5:2
  balance run -scenario=scenarios/grunts.yaml -json
  balance sweep -knob=enemy_damage_mul -values=0.5,1.0,1.5,2.0 -enemies=melee-grunt:5:2
  balance tuning -enemy-health-mul=1.5 -enemies=melee-grunt:5:2
  balance seed-db -driver=sqlite -path=data/encounterlab.db

Use "balance <command> -h" for more information about a command.`)
}

// scenarioFlags registers the flags shared by every simulating subcommand and
// resolves them into concrete inputs.
type scenarioFlags struct {
	fs *flag.FlagSet

	configPath   *string
	dataDir      *string
	scenarioPath *string

	level     *int
	gear      *string
	abilities *string
	enemies   *string

	iterations  *int
	seed        *int64
	maxDuration *float64

	playerHealthMul    *float64
	playerDamageMul    *float64
	playerArmorMul     *float64
	enemyHealthMul     *float64
	enemyDamageMul     *float64
	enemyArmorMul      *float64
	critMultiplierMul  *float64
	armorEffectiveness *float64
	healingMul         *float64
}

func newScenarioFlags(fs *flag.FlagSet) *scenarioFlags {
	defaults := catalog.DefaultConfig()
	return &scenarioFlags{
		fs:           fs,
		configPath:   fs.String("config", "config.yaml", "Simulator config file"),
		dataDir:      fs.String("data", "", "Directory of YAML catalog files to merge over the defaults"),
		scenarioPath: fs.String("scenario", "", "Scenario YAML file (inline flags override its values)"),

		level:     fs.Int("level", 1, "Player level"),
		gear:      fs.String("gear", "none", "Gear loadout id"),
		abilities: fs.String("abilities", "melee-attack", "Comma-separated player ability ids"),
		enemies:   fs.String("enemies", "", "Enemy groups as archetype:level:count, comma-separated"),

		iterations:  fs.Int("iterations", defaults.Iterations, "Number of fights to simulate"),
		seed:        fs.Int64("seed", defaults.Seed, "Random seed"),
		maxDuration: fs.Float64("max-duration", defaults.MaxFightDurationSec, "Fight duration cap in seconds"),

		playerHealthMul:    fs.Float64("player-health-mul", 1.0, "Player health multiplier"),
		playerDamageMul:    fs.Float64("player-damage-mul", 1.0, "Player damage multiplier"),
		playerArmorMul:     fs.Float64("player-armor-mul", 1.0, "Player armor multiplier"),
		enemyHealthMul:     fs.Float64("enemy-health-mul", 1.0, "Enemy health multiplier"),
		enemyDamageMul:     fs.Float64("enemy-damage-mul", 1.0, "Enemy damage multiplier"),
		enemyArmorMul:      fs.Float64("enemy-armor-mul", 1.0, "Enemy armor multiplier"),
		critMultiplierMul:  fs.Float64("crit-multiplier-mul", 1.0, "Critical damage multiplier scale"),
		armorEffectiveness: fs.Float64("armor-effectiveness", 1.0, "Global armor effectiveness"),
		healingMul:         fs.Float64("healing-mul", 1.0, "Healing buff multiplier"),
	}
}

// set reports whether the named flag was passed explicitly.
func (sf *scenarioFlags) set(name string) bool {
	passed := false
	sf.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// resolve builds the catalog, scenario, tuning, and config from the parsed
// flags. A scenario file supplies base values; explicitly passed flags win.
func (sf *scenarioFlags) resolve() (*catalog.Catalog, catalog.CombatScenario, catalog.TuningOverrides, catalog.SimConfig, error) {
	var scenario catalog.CombatScenario
	tuning := catalog.DefaultTuning()
	simConfig := catalog.DefaultConfig()

	appConfig, err := config.LoadConfig(*sf.configPath)
	if err != nil {
		return nil, scenario, tuning, simConfig, fmt.Errorf("failed to load config: %w", err)
	}
	simConfig = appConfig.Simulation

	cat, err := buildCatalog(appConfig, *sf.dataDir)
	if err != nil {
		return nil, scenario, tuning, simConfig, err
	}

	if *sf.scenarioPath != "" {
		file, err := catalog.LoadScenario(*sf.scenarioPath)
		if err != nil {
			return nil, scenario, tuning, simConfig, err
		}
		scenario = file.Scenario
		tuning = file.Tuning
		simConfig = file.Config
	} else {
		scenario = catalog.CombatScenario{
			PlayerLevel: *sf.level,
			GearID:      *sf.gear,
			AbilityIDs:  splitList(*sf.abilities),
		}
	}

	if sf.set("level") {
		scenario.PlayerLevel = *sf.level
	}
	if sf.set("gear") {
		scenario.GearID = *sf.gear
	}
	if sf.set("abilities") {
		scenario.AbilityIDs = splitList(*sf.abilities)
	}
	if *sf.enemies != "" {
		groups, err := parseEnemies(*sf.enemies)
		if err != nil {
			return nil, scenario, tuning, simConfig, err
		}
		scenario.Enemies = groups
	}

	if sf.set("iterations") {
		simConfig.Iterations = *sf.iterations
	}
	if sf.set("seed") {
		simConfig.Seed = *sf.seed
	}
	if sf.set("max-duration") {
		simConfig.MaxFightDurationSec = *sf.maxDuration
	}

	knobs := []struct {
		name  string
		value float64
		dst   *float64
	}{
		{"player-health-mul", *sf.playerHealthMul, &tuning.PlayerHealthMul},
		{"player-damage-mul", *sf.playerDamageMul, &tuning.PlayerDamageMul},
		{"player-armor-mul", *sf.playerArmorMul, &tuning.PlayerArmorMul},
		{"enemy-health-mul", *sf.enemyHealthMul, &tuning.EnemyHealthMul},
		{"enemy-damage-mul", *sf.enemyDamageMul, &tuning.EnemyDamageMul},
		{"enemy-armor-mul", *sf.enemyArmorMul, &tuning.EnemyArmorMul},
		{"crit-multiplier-mul", *sf.critMultiplierMul, &tuning.CritMultiplierMul},
		{"armor-effectiveness", *sf.armorEffectiveness, &tuning.ArmorEffectiveness},
		{"healing-mul", *sf.healingMul, &tuning.HealingMul},
	}
	for _, k := range knobs {
		if sf.set(k.name) {
			*k.dst = k.value
		}
	}

	return cat, scenario, tuning, simConfig, nil
}

// buildCatalog assembles the effective catalog: compiled-in defaults, then
// YAML files, then database rows, each layer overriding matching ids.
func buildCatalog(appConfig *config.AppConfig, dataDir string) (*catalog.Catalog, error) {
	cat := catalog.Default()

	if dataDir == "" {
		dataDir = appConfig.Catalog.DataDir
	}
	if dataDir != "" {
		if err := cat.LoadDirectory(dataDir); err != nil {
			return nil, fmt.Errorf("failed to load catalog data: %w", err)
		}
	}

	if appConfig.Database.Driver != "" {
		db, err := openDatabase(appConfig.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		if err := db.LoadCatalog(cat); err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
	}

	return cat, nil
}

func openDatabase(cfg config.DatabaseConfig) (*database.Database, error) {
	switch cfg.Driver {
	case "sqlite":
		return database.Open(database.DialectSQLite, cfg.Path)
	case "postgres":
		return database.Open(database.DialectPostgres, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func initLogging(configPath string) {
	logConfig, _ := logger.LoadConfig(configPath)
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
}

func runScenario() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	sf := newScenarioFlags(fs)
	asJSON := fs.Bool("json", false, "Print the full simulation result as JSON")
	fs.Parse(os.Args[2:])

	initLogging(*sf.configPath)

	cat, scenario, tuning, simConfig, err := sf.resolve()
	if err != nil {
		fatal(err)
	}

	result, err := sim.RunSimulation(cat, scenario, tuning, simConfig)
	if err != nil {
		fatal(err)
	}

	if *asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(encoded))
		return
	}

	fmt.Println("=== Combat Simulation ===")
	fmt.Println()
	printScenario(scenario, simConfig)
	fmt.Println()
	printSummary(result.Summary)
	fmt.Println()
	printAlerts(result.Alerts)
	assessBalance(result.Summary.SurvivalRate)
}

func runSweep() {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	sf := newScenarioFlags(fs)
	knob := fs.String("knob", "enemy_damage_mul", "Tuning knob to sweep")
	values := fs.String("values", "0.5,1.0,1.5,2.0", "Comma-separated knob values")
	fs.Parse(os.Args[2:])

	initLogging(*sf.configPath)

	cat, scenario, tuning, simConfig, err := sf.resolve()
	if err != nil {
		fatal(err)
	}

	sweep, err := parseFloats(*values)
	if err != nil {
		fatal(err)
	}

	fmt.Println("=== Tuning Sweep ===")
	fmt.Println()
	printScenario(scenario, simConfig)
	fmt.Printf("Knob: %s across %v\n", *knob, sweep)
	fmt.Println()

	fmt.Println("Value | Survival | Avg Dur | One-Shot | Long Fights | Player DPS | Alerts")
	fmt.Println("------+----------+---------+----------+-------------+------------+-------")
	for _, v := range sweep {
		swept := tuning
		if err := applyKnob(&swept, *knob, v); err != nil {
			fatal(err)
		}

		result, err := sim.RunSimulation(cat, scenario, swept, simConfig)
		if err != nil {
			fatal(err)
		}
		s := result.Summary
		fmt.Printf("%5.2f | %7.1f%% | %6.1fs | %7.1f%% | %10.1f%% | %10.1f | %6d\n",
			v, s.SurvivalRate*100, s.AvgFightDurationSec, s.OneShotRate*100,
			s.LongFightRate*100, s.AvgPlayerDPS, len(result.Alerts))
	}
}

func runTuningCompare() {
	fs := flag.NewFlagSet("tuning", flag.ExitOnError)
	sf := newScenarioFlags(fs)
	fs.Parse(os.Args[2:])

	initLogging(*sf.configPath)

	cat, scenario, tuning, simConfig, err := sf.resolve()
	if err != nil {
		fatal(err)
	}
	if tuning == catalog.DefaultTuning() {
		fatal(fmt.Errorf("no tuning overrides given; pass at least one knob flag"))
	}

	baseline, err := sim.RunSimulation(cat, scenario, catalog.DefaultTuning(), simConfig)
	if err != nil {
		fatal(err)
	}
	tuned, err := sim.RunSimulation(cat, scenario, tuning, simConfig)
	if err != nil {
		fatal(err)
	}

	fmt.Println("=== Tuning Comparison ===")
	fmt.Println()
	printScenario(scenario, simConfig)
	fmt.Println()

	b, t := baseline.Summary, tuned.Summary
	fmt.Println("Metric              |  Baseline |     Tuned |     Delta")
	fmt.Println("--------------------+-----------+-----------+----------")
	printComparison("Survival Rate", b.SurvivalRate*100, t.SurvivalRate*100, "%")
	printComparison("Avg Duration", b.AvgFightDurationSec, t.AvgFightDurationSec, "s")
	printComparison("Avg Damage Dealt", b.AvgDamageDealt, t.AvgDamageDealt, "")
	printComparison("Avg Damage Taken", b.AvgDamageTaken, t.AvgDamageTaken, "")
	printComparison("Player DPS", b.AvgPlayerDPS, t.AvgPlayerDPS, "")
	printComparison("Enemy DPS", b.AvgEnemyDPS, t.AvgEnemyDPS, "")
	printComparison("One-Shot Rate", b.OneShotRate*100, t.OneShotRate*100, "%")
	fmt.Println()
	printAlerts(tuned.Alerts)
	assessBalance(t.SurvivalRate)
}

func runSeedDB() {
	fs := flag.NewFlagSet("seed-db", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "Simulator config file")
	driver := fs.String("driver", "", "Database driver: sqlite or postgres (defaults to config)")
	path := fs.String("path", "", "SQLite database path (defaults to config)")
	dsn := fs.String("dsn", "", "PostgreSQL connection string (defaults to config)")
	dataDir := fs.String("data", "", "YAML catalog directory to merge before seeding")
	fs.Parse(os.Args[2:])

	initLogging(*configPath)

	appConfig, err := config.LoadConfig(*configPath)
	if err != nil {
		fatal(fmt.Errorf("failed to load config: %w", err))
	}

	dbConfig := appConfig.Database
	if *driver != "" {
		dbConfig.Driver = *driver
	}
	if *path != "" {
		dbConfig.Path = *path
	}
	if *dsn != "" {
		dbConfig.DSN = *dsn
	}
	if dbConfig.Driver == "" {
		dbConfig.Driver = "sqlite"
	}

	cat := catalog.Default()
	if *dataDir != "" {
		if err := cat.LoadDirectory(*dataDir); err != nil {
			fatal(err)
		}
	}

	db, err := openDatabase(dbConfig)
	if err != nil {
		fatal(err)
	}
	defer db.Close()

	if err := db.SeedDefaults(cat); err != nil {
		fatal(err)
	}

	abilities, archetypes, gear, err := db.CountRows()
	if err != nil {
		fatal(err)
	}

	fmt.Println("Catalog database seeded.")
	fmt.Printf("  Abilities:  %d\n", abilities)
	fmt.Printf("  Archetypes: %d\n", archetypes)
	fmt.Printf("  Gear:       %d\n", gear)
}

func printScenario(scenario catalog.CombatScenario, simConfig catalog.SimConfig) {
	fmt.Printf("Player: Level %d, gear %q, abilities [%s]\n",
		scenario.PlayerLevel, scenario.GearID, strings.Join(scenario.AbilityIDs, ", "))
	var groups []string
	for _, g := range scenario.Enemies {
		groups = append(groups, fmt.Sprintf("%dx %s (level %d)", g.Count, g.ArchetypeID, g.Level))
	}
	fmt.Printf("Enemies: %s\n", strings.Join(groups, ", "))
	fmt.Printf("Iterations: %d, seed %d, duration cap %.0fs\n",
		simConfig.Iterations, simConfig.Seed, simConfig.MaxFightDurationSec)
}

func printSummary(s sim.CombatSummary) {
	fmt.Printf("Results (%d fights):\n", s.Iterations)
	fmt.Printf("  Survival Rate:   %.1f%%\n", s.SurvivalRate*100)
	fmt.Printf("  Avg Duration:    %.1fs (median %.1fs)\n", s.AvgFightDurationSec, s.MedianFightDuration)
	fmt.Printf("  Avg Damage Out:  %.1f (%.1f DPS)\n", s.AvgDamageDealt, s.AvgPlayerDPS)
	fmt.Printf("  Avg Damage In:   %.1f (%.1f DPS)\n", s.AvgDamageTaken, s.AvgEnemyDPS)
	fmt.Printf("  Avg HP Left:     %.1f\n", s.AvgHealthRemaining)
	fmt.Printf("  Crit Rate:       %.1f%%\n", s.AvgCritRate*100)
	fmt.Printf("  One-Shot Rate:   %.1f%%\n", s.OneShotRate*100)
	fmt.Printf("  Long Fights:     %.1f%%\n", s.LongFightRate*100)
	fmt.Printf("  Fast Wins:       %.1f%%\n", s.FastWinRate*100)

	if len(s.AbilityUsage) > 0 {
		fmt.Println()
		fmt.Println("Ability usage (avg per fight):")
		ids := make([]string, 0, len(s.AbilityUsage))
		for id := range s.AbilityUsage {
			ids = append(ids, id)
		}
		// Highest usage first, id order for ties.
		sort.Slice(ids, func(i, j int) bool {
			if s.AbilityUsage[ids[i]] != s.AbilityUsage[ids[j]] {
				return s.AbilityUsage[ids[i]] > s.AbilityUsage[ids[j]]
			}
			return ids[i] < ids[j]
		})
		for _, id := range ids {
			fmt.Printf("  %-20s %6.2f\n", id, s.AbilityUsage[id])
		}
	}
}

func printAlerts(alerts []sim.BalanceAlert) {
	if len(alerts) == 0 {
		fmt.Println("No balance alerts.")
		return
	}

	fmt.Printf("Balance alerts (%d):\n", len(alerts))
	for _, a := range alerts {
		label := strings.ToUpper(string(a.Severity))
		color, reset := severityColor(a.Severity)
		fmt.Printf("  %s%-8s%s %-18s %s\n", color, label, reset, a.Type, a.Message)
	}
}

func severityColor(s sim.Severity) (color, reset string) {
	if !isTerminal() {
		return "", ""
	}
	switch s {
	case sim.SeverityCritical:
		return "\033[31m", "\033[0m" // Red
	case sim.SeverityWarning:
		return "\033[33m", "\033[0m" // Yellow
	default:
		return "\033[36m", "\033[0m" // Cyan
	}
}

func assessBalance(survivalRate float64) {
	winRate := survivalRate * 100
	var assessment string
	switch {
	case winRate < 30:
		assessment = "TOO HARD"
	case winRate < 50:
		assessment = "CHALLENGING"
	case winRate < 70:
		assessment = "BALANCED"
	case winRate < 85:
		assessment = "EASY"
	default:
		assessment = "TOO EASY"
	}

	color := ""
	reset := ""
	if isTerminal() {
		switch assessment {
		case "TOO HARD", "TOO EASY":
			color = "\033[31m" // Red
		case "CHALLENGING", "EASY":
			color = "\033[33m" // Yellow
		case "BALANCED":
			color = "\033[32m" // Green
		}
		reset = "\033[0m"
	}

	fmt.Println()
	fmt.Printf("Assessment: %s%s%s\n", color, assessment, reset)
}

func printComparison(name string, baseline, tuned float64, unit string) {
	fmt.Printf("%-19s | %8.1f%s | %8.1f%s | %+8.1f%s\n",
		name, baseline, unit, tuned, unit, tuned-baseline, unit)
}

func isTerminal() bool {
	// Simple check - could be improved
	return os.Getenv("TERM") != "" && !strings.Contains(os.Getenv("TERM"), "dumb")
}

// parseEnemies parses "archetype:level:count" groups separated by commas.
func parseEnemies(s string) ([]catalog.EnemyGroup, error) {
	var groups []catalog.EnemyGroup
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid enemy group %q, expected archetype:level:count", part)
		}
		level, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid level in enemy group %q: %w", part, err)
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("invalid count in enemy group %q: %w", part, err)
		}
		groups = append(groups, catalog.EnemyGroup{
			ArchetypeID: fields[0],
			Level:       level,
			Count:       count,
		})
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no enemy groups given")
	}
	return groups, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sweep values given")
	}
	return out, nil
}

// applyKnob sets one tuning field by its config name.
func applyKnob(t *catalog.TuningOverrides, name string, value float64) error {
	switch name {
	case "player_health_mul":
		t.PlayerHealthMul = value
	case "player_damage_mul":
		t.PlayerDamageMul = value
	case "player_armor_mul":
		t.PlayerArmorMul = value
	case "enemy_health_mul":
		t.EnemyHealthMul = value
	case "enemy_damage_mul":
		t.EnemyDamageMul = value
	case "enemy_armor_mul":
		t.EnemyArmorMul = value
	case "crit_multiplier_mul":
		t.CritMultiplierMul = value
	case "armor_effectiveness":
		t.ArmorEffectiveness = value
	case "healing_mul":
		t.HealingMul = value
	default:
		return fmt.Errorf("unknown tuning knob %q", name)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
