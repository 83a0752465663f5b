package sim

import (
	"math"

	"github.com/emberforge/encounterlab/internal/catalog"
	"github.com/emberforge/encounterlab/internal/rng"
)

// DamageResult is the outcome of a single damage roll.
type DamageResult struct {
	Damage float64
	IsCrit bool
}

// CalculateDamage computes one ability's damage against a target. It reads
// but never writes source or target state; the caller applies the result.
//
// The damage multiplier is selected by the *source* role. The armor step
// multiplies the target's armor by the *opposite* role's damage multiplier;
// that cross-wiring is a legacy quirk of the original formula and every
// balance number in the system depends on it, so it stays until a designer
// signs off on changing it.
func CalculateDamage(ability catalog.CombatAbility, source, target *catalog.AttributeSet, tuning catalog.TuningOverrides, stream *rng.Stream, playerSource bool) DamageResult {
	base := ability.BaseDamage + source.AttackPower*ability.AttackPowerScaling

	damageMul := tuning.EnemyDamageMul
	armorMul := tuning.PlayerDamageMul
	if playerSource {
		damageMul = tuning.PlayerDamageMul
		armorMul = tuning.EnemyDamageMul
	}

	critMul := 1.0
	isCrit := stream.Chance(source.CritChance)
	if isCrit {
		critMul = source.CritDamage * tuning.CritMultiplierMul
	}

	// Diminishing returns: no finite armor fully negates damage.
	effectiveArmor := target.Armor * tuning.ArmorEffectiveness * armorMul
	reduction := effectiveArmor / (effectiveArmor + 100)

	damage := math.Round(base * damageMul * critMul * (1 - reduction))
	if damage < 1 {
		damage = 1
	}
	return DamageResult{Damage: damage, IsCrit: isCrit}
}
