package sim

import (
	"fmt"
	"time"

	"github.com/emberforge/encounterlab/internal/catalog"
	"github.com/emberforge/encounterlab/internal/logger"
	"github.com/emberforge/encounterlab/internal/rng"
)

// SimulationResult is the full output of a Monte Carlo run: the inputs
// echoed back, every fight result, the aggregate summary, and the balance
// alerts derived from it.
type SimulationResult struct {
	Config      catalog.SimConfig       `json:"config"`
	Scenario    catalog.CombatScenario  `json:"scenario"`
	Tuning      catalog.TuningOverrides `json:"tuning"`
	Fights      []FightResult           `json:"fights"`
	Summary     CombatSummary           `json:"summary"`
	Alerts      []BalanceAlert          `json:"alerts"`
	ElapsedMs   int64                   `json:"elapsedMs"`
	CompletedAt time.Time               `json:"completedAt"`
}

// RunSimulation executes config.Iterations independent fights of the given
// scenario and reduces them to a SimulationResult. All fights share one
// random stream seeded from config.Seed, so re-running with the same inputs
// reproduces the identical fight list.
func RunSimulation(cat *catalog.Catalog, scenario catalog.CombatScenario, tuning catalog.TuningOverrides, config catalog.SimConfig) (*SimulationResult, error) {
	if config.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", config.Iterations)
	}
	if config.MaxFightDurationSec <= 0 {
		return nil, fmt.Errorf("max fight duration must be positive, got %f", config.MaxFightDurationSec)
	}

	playerAbilities, missing := cat.ResolveAbilities(scenario.AbilityIDs)
	for _, id := range missing {
		logger.Warning("Unknown player ability skipped", "ability_id", id)
	}
	if len(playerAbilities) == 0 {
		return nil, fmt.Errorf("scenario has no valid player abilities")
	}

	gear := catalog.AttributeBonuses{}
	if scenario.GearID != "" {
		loadout, ok := cat.GearByID(scenario.GearID)
		if !ok {
			logger.Warning("Unknown gear loadout, player fights unequipped", "gear_id", scenario.GearID)
		} else {
			gear = loadout.Bonuses
		}
	}

	// Resolve enemy groups once; unknown archetypes contribute zero entities
	// rather than aborting the run.
	type enemySpec struct {
		arch      catalog.EnemyArchetype
		abilities []catalog.CombatAbility
		level     int
		count     int
	}
	var specs []enemySpec
	total := 0
	for _, group := range scenario.Enemies {
		arch, ok := cat.Archetype(group.ArchetypeID)
		if !ok {
			logger.Warning("Unknown enemy archetype skipped", "archetype_id", group.ArchetypeID)
			continue
		}
		if group.Count <= 0 {
			continue
		}
		abilities, missing := cat.ResolveAbilities(arch.AbilityIDs)
		for _, id := range missing {
			logger.Warning("Unknown enemy ability skipped", "archetype_id", arch.ID, "ability_id", id)
		}
		specs = append(specs, enemySpec{arch: arch, abilities: abilities, level: group.Level, count: group.Count})
		total += group.Count
	}
	if total == 0 {
		return nil, fmt.Errorf("scenario resolved to zero enemies")
	}

	stream := rng.New(config.Seed)
	started := time.Now()

	fights := make([]FightResult, 0, config.Iterations)
	for i := 0; i < config.Iterations; i++ {
		playerAttrs := BuildPlayerAttributes(cat, scenario.PlayerLevel, gear, tuning)
		player := newPlayerEntity(playerAttrs, playerAbilities)

		enemies := make([]*combatEntity, 0, total)
		for _, spec := range specs {
			for n := 0; n < spec.count; n++ {
				attrs := BuildEnemyAttributes(spec.arch, spec.level, tuning)
				enemies = append(enemies, newEnemyEntity(spec.arch, n, attrs, spec.abilities))
			}
		}

		fights = append(fights, SimulateFight(player, enemies, tuning, stream, config.MaxFightDurationSec))
	}

	summary := Summarize(fights, scenario.AbilityIDs)
	alerts := DetectAlerts(summary)

	return &SimulationResult{
		Config:      config,
		Scenario:    scenario,
		Tuning:      tuning,
		Fights:      fights,
		Summary:     summary,
		Alerts:      alerts,
		ElapsedMs:   time.Since(started).Milliseconds(),
		CompletedAt: time.Now().UTC(),
	}, nil
}
