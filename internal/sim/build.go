// Package sim implements the combat simulation engine: attribute building,
// damage resolution, the tick-based fight state machine, the Monte Carlo
// runner, and the statistical aggregation and balance-alert layers on top.
//
// The engine is a pure function of its inputs. It holds no module-level
// state; the only mutable thing threaded through a run is the caller-owned
// random stream.
package sim

import (
	"github.com/emberforge/encounterlab/internal/catalog"
)

// BuildPlayerAttributes derives the player's concrete stat block for one
// fight. Order matters: level scaling and gear additions happen before the
// tuning multipliers, so tuning acts as a final global lever independent of
// character progression.
func BuildPlayerAttributes(cat *catalog.Catalog, level int, gear catalog.AttributeBonuses, tuning catalog.TuningOverrides) catalog.AttributeSet {
	attrs := cat.BasePlayer
	if level > 1 {
		cat.LevelScaling.ApplyTo(&attrs, float64(level-1))
	}
	gear.ApplyTo(&attrs, 1)

	attrs.Health *= tuning.PlayerHealthMul
	attrs.MaxHealth *= tuning.PlayerHealthMul
	attrs.Armor *= tuning.PlayerArmorMul
	return attrs
}

// BuildEnemyAttributes derives one enemy instance's stat block from its
// archetype. Enemies have no gear step.
func BuildEnemyAttributes(arch catalog.EnemyArchetype, level int, tuning catalog.TuningOverrides) catalog.AttributeSet {
	attrs := arch.BaseAttributes
	if level > 1 {
		arch.PerLevel.ApplyTo(&attrs, float64(level-1))
	}

	attrs.Health *= tuning.EnemyHealthMul
	attrs.MaxHealth *= tuning.EnemyHealthMul
	attrs.Armor *= tuning.EnemyArmorMul
	return attrs
}
