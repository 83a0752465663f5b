package sim

import (
	"math"

	"github.com/emberforge/encounterlab/internal/catalog"
	"github.com/emberforge/encounterlab/internal/rng"
)

const (
	// tickSec is the fixed simulation step.
	tickSec = 0.1
	// recoverySec is the fixed recovery added after every player cast.
	recoverySec = 0.1
	// manaRegenPerSec is the player's linear mana regeneration rate.
	manaRegenPerSec = 2.0
	// oneShotFraction: a fatal hit at or above this fraction of the player's
	// starting max health flags the fight as a one-shot.
	oneShotFraction = 0.9

	// Enemy action cadence jitter bounds, as fractions of the base attack
	// interval. Keeps multiple enemies from alpha-striking in sync.
	jitterMin = 0.8
	jitterMax = 1.2

	// Player AI preference probabilities.
	buffPreference  = 0.7
	aoePreference   = 0.6
	dodgePreference = 0.5
	// dodgeHealthFraction: dodge is only considered below this health fraction.
	dodgeHealthFraction = 0.3
)

// FightResult is the immutable record of one simulated fight.
type FightResult struct {
	Won                   bool           `json:"won"`
	DurationSec           float64        `json:"durationSec"`
	PlayerHealthRemaining float64        `json:"playerHealthRemaining"`
	PlayerManaRemaining   float64        `json:"playerManaRemaining"`
	DamageDealt           float64        `json:"damageDealt"`
	DamageTaken           float64        `json:"damageTaken"`
	AbilityUsage          map[string]int `json:"abilityUsage"`
	CritCount             int            `json:"critCount"`
	HitCount              int            `json:"hitCount"`
	EnemiesKilled         int            `json:"enemiesKilled"`
	KilledBy              string         `json:"killedBy,omitempty"`
	OneShot               bool           `json:"oneShot"`
}

// fightState carries the mutable state of one fight through the tick loop.
type fightState struct {
	player  *combatEntity
	enemies []*combatEntity
	tuning  catalog.TuningOverrides
	stream  *rng.Stream
	t       float64

	// startingMaxHealth is captured at t=0 for one-shot classification.
	startingMaxHealth float64
	result            FightResult
}

// SimulateFight advances one fight from t=0 to a terminal state: player
// death, all enemies dead, or timeout. The rng stream advances strictly
// sequentially, so a fixed seed replays the identical fight.
func SimulateFight(player *combatEntity, enemies []*combatEntity, tuning catalog.TuningOverrides, stream *rng.Stream, maxDurationSec float64) FightResult {
	fs := &fightState{
		player:            player,
		enemies:           enemies,
		tuning:            tuning,
		stream:            stream,
		startingMaxHealth: player.attrs.MaxHealth,
		result:            FightResult{AbilityUsage: make(map[string]int, len(player.abilities))},
	}

	for fs.t < maxDurationSec {
		player.expireBuffs(fs.t)
		for _, e := range enemies {
			e.expireBuffs(fs.t)
		}

		if player.alive() && !player.stunned(fs.t) && fs.t >= player.nextActionAt {
			fs.playerAct()
		}

		for _, e := range enemies {
			if !e.alive() || e.stunned(fs.t) || fs.t < e.nextActionAt {
				continue
			}
			fs.enemyAct(e)
		}

		player.attrs.Mana = math.Min(player.attrs.MaxMana, player.attrs.Mana+manaRegenPerSec*tickSec)

		if !player.alive() {
			break
		}
		if !fs.anyEnemyAlive() {
			fs.result.Won = true
			break
		}
		fs.t += tickSec
	}

	fs.result.DurationSec = math.Min(fs.t, maxDurationSec)
	fs.result.PlayerHealthRemaining = math.Max(0, player.attrs.Health)
	fs.result.PlayerManaRemaining = math.Max(0, player.attrs.Mana)
	return fs.result
}

func (fs *fightState) anyEnemyAlive() bool {
	for _, e := range fs.enemies {
		if e.alive() {
			return true
		}
	}
	return false
}

func (fs *fightState) livingEnemies() []*combatEntity {
	alive := make([]*combatEntity, 0, len(fs.enemies))
	for _, e := range fs.enemies {
		if e.alive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// playerAct selects and executes one player ability. The policy approximates
// a competent human, not optimal play: prefer a fresh buff, then an AoE when
// outnumbered, then a defensive dodge when hurt, otherwise the hardest-
// hitting available ability. Falls back to a zero-cost ability when nothing
// else is usable.
func (fs *fightState) playerAct() {
	p := fs.player
	alive := fs.livingEnemies()

	var available []catalog.CombatAbility
	for _, a := range p.abilities {
		if p.offCooldown(a, fs.t) && p.canAfford(a) {
			available = append(available, a)
		}
	}

	var buffs, aoes, dodges, damaging []catalog.CombatAbility
	for _, a := range available {
		switch a.Type {
		case catalog.AbilityBuff:
			if a.Buff != nil && !p.hasBuffOn(a.Buff.Attribute) {
				buffs = append(buffs, a)
			}
		case catalog.AbilityDodge:
			dodges = append(dodges, a)
		}
		if a.IsDamage() {
			damaging = append(damaging, a)
			if a.Type == catalog.AbilityAoE {
				aoes = append(aoes, a)
			}
		}
	}

	var pick *catalog.CombatAbility
	switch {
	case len(buffs) > 0 && fs.stream.Chance(buffPreference):
		pick = &buffs[0]
	case len(alive) >= 2 && len(aoes) > 0 && fs.stream.Chance(aoePreference):
		pick = &aoes[0]
	case p.attrs.Health < dodgeHealthFraction*p.attrs.MaxHealth && len(dodges) > 0 && fs.stream.Chance(dodgePreference):
		pick = &dodges[0]
	case len(damaging) > 0:
		best := 0
		for i := 1; i < len(damaging); i++ {
			if damaging[i].ExpectedDamage(p.attrs.AttackPower) > damaging[best].ExpectedDamage(p.attrs.AttackPower) {
				best = i
			}
		}
		pick = &damaging[best]
	}

	if pick == nil {
		// Basic fallback: the first zero-cost ability in the loadout.
		for i := range p.abilities {
			if p.abilities[i].ManaCost == 0 {
				pick = &p.abilities[i]
				break
			}
		}
	}
	if pick == nil {
		// Nothing usable at all; wait half a second and try again.
		p.nextActionAt = fs.t + 0.5
		return
	}

	targets := alive
	if pick.AoERadius <= 0 && len(alive) > 1 {
		targets = alive[:1]
	}
	fs.executeAbility(p, *pick, targets)
	p.nextActionAt = fs.t + pick.CastTimeSec + recoverySec
}

// enemyAct runs the simple enemy policy: the first ability (in archetype
// order) that is off cooldown and affordable; failing that, the first ability
// unconditionally. Enemies always attack.
func (fs *fightState) enemyAct(e *combatEntity) {
	if len(e.abilities) == 0 {
		return
	}

	pick := e.abilities[0]
	for _, a := range e.abilities {
		if e.offCooldown(a, fs.t) && e.canAfford(a) {
			pick = a
			break
		}
	}

	fs.executeAbility(e, pick, []*combatEntity{fs.player})
	e.nextActionAt = fs.t + e.attackIntervalSec*fs.stream.Range(jitterMin, jitterMax)
}

// executeAbility applies one ability's side effects: mana cost and cooldown
// always; then damage, stun, buff, or invulnerability depending on type.
func (fs *fightState) executeAbility(actor *combatEntity, ability catalog.CombatAbility, targets []*combatEntity) {
	actor.attrs.Mana -= ability.ManaCost
	actor.cooldowns[ability.ID] = fs.t + ability.CooldownSec
	if actor.isPlayer {
		fs.result.AbilityUsage[ability.ID]++
	}

	switch ability.Type {
	case catalog.AbilityDodge:
		actor.invulnerableUntil = fs.t + ability.InvulnDuration
		return
	case catalog.AbilityBuff:
		if ability.Buff != nil {
			actor.applyBuff(*ability.Buff, fs.t, fs.tuning)
		}
		return
	}

	for _, target := range targets {
		if target.invulnerable(fs.t) {
			continue
		}

		roll := CalculateDamage(ability, &actor.attrs, &target.attrs, fs.tuning, fs.stream, actor.isPlayer)
		wasAlive := target.alive()
		target.attrs.Health = math.Max(0, target.attrs.Health-roll.Damage)

		if actor.isPlayer {
			fs.result.DamageDealt += roll.Damage
			fs.result.HitCount++
			if roll.IsCrit {
				fs.result.CritCount++
			}
			if wasAlive && !target.alive() {
				fs.result.EnemiesKilled++
			}
		} else {
			fs.result.DamageTaken += roll.Damage
			if wasAlive && !target.alive() {
				fs.result.KilledBy = actor.name
				if roll.Damage >= oneShotFraction*fs.startingMaxHealth {
					fs.result.OneShot = true
				}
			}
		}

		if ability.StunDuration > 0 && target.alive() {
			if until := fs.t + ability.StunDuration; until > target.stunnedUntil {
				target.stunnedUntil = until
			}
		}
	}
}
