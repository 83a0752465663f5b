package sim

import (
	"fmt"

	"github.com/emberforge/encounterlab/internal/catalog"
)

// activeBuff is a timed attribute bonus. The amount was added when the buff
// was applied and is reverted when expiresAt passes.
type activeBuff struct {
	attribute catalog.Attribute
	amount    float64
	expiresAt float64
}

// combatEntity is the runtime state of one combatant. Entities live only
// inside a single fight; nothing is shared or persisted across fights.
type combatEntity struct {
	name              string
	attrs             catalog.AttributeSet
	abilities         []catalog.CombatAbility
	cooldowns         map[string]float64
	nextActionAt      float64
	attackIntervalSec float64
	isPlayer          bool
	stunnedUntil      float64
	invulnerableUntil float64
	buffs             []activeBuff
}

func newPlayerEntity(attrs catalog.AttributeSet, abilities []catalog.CombatAbility) *combatEntity {
	return &combatEntity{
		name:      "Player",
		attrs:     attrs,
		abilities: abilities,
		cooldowns: make(map[string]float64, len(abilities)),
		isPlayer:  true,
	}
}

func newEnemyEntity(arch catalog.EnemyArchetype, index int, attrs catalog.AttributeSet, abilities []catalog.CombatAbility) *combatEntity {
	return &combatEntity{
		name:              fmt.Sprintf("%s-%d", arch.ID, index+1),
		attrs:             attrs,
		abilities:         abilities,
		cooldowns:         make(map[string]float64, len(abilities)),
		attackIntervalSec: arch.AttackIntervalSec,
	}
}

func (e *combatEntity) alive() bool {
	return e.attrs.Health > 0
}

func (e *combatEntity) stunned(t float64) bool {
	return e.stunnedUntil > t
}

func (e *combatEntity) invulnerable(t float64) bool {
	return e.invulnerableUntil > t
}

// offCooldown reports whether the ability's cooldown has expired at time t.
func (e *combatEntity) offCooldown(ability catalog.CombatAbility, t float64) bool {
	return e.cooldowns[ability.ID] <= t
}

// canAfford reports whether the entity has mana for the ability.
func (e *combatEntity) canAfford(ability catalog.CombatAbility) bool {
	return e.attrs.Mana >= ability.ManaCost
}

// hasBuffOn reports whether a buff on the given attribute is still active.
func (e *combatEntity) hasBuffOn(attr catalog.Attribute) bool {
	for _, b := range e.buffs {
		if b.attribute == attr {
			return true
		}
	}
	return false
}

// expireBuffs reverts and drops every buff whose expiry has passed.
func (e *combatEntity) expireBuffs(t float64) {
	kept := e.buffs[:0]
	for _, b := range e.buffs {
		if b.expiresAt <= t {
			e.attrs.Add(b.attribute, -b.amount)
		} else {
			kept = append(kept, b)
		}
	}
	e.buffs = kept
}

// applyBuff adds the bonus immediately and records it for later expiry.
// Health-targeting buffs are the engine's only healing channel, so they are
// scaled by the healing tuning knob.
func (e *combatEntity) applyBuff(effect catalog.BuffEffect, t float64, tuning catalog.TuningOverrides) {
	amount := effect.Amount
	if effect.Attribute == catalog.AttrHealth || effect.Attribute == catalog.AttrMaxHealth {
		amount *= tuning.HealingMul
	}
	e.attrs.Add(effect.Attribute, amount)
	e.buffs = append(e.buffs, activeBuff{
		attribute: effect.Attribute,
		amount:    amount,
		expiresAt: t + effect.Duration,
	})
}
