package catalog

// AbilityType categorizes what an ability does in the fight loop.
type AbilityType string

const (
	AbilityMelee  AbilityType = "melee"
	AbilityRanged AbilityType = "ranged"
	AbilityAoE    AbilityType = "aoe"
	AbilityBuff   AbilityType = "buff"
	AbilityDodge  AbilityType = "dodge"
)

// StringToAbilityType converts a string to an AbilityType.
// Unknown strings default to melee.
func StringToAbilityType(s string) AbilityType {
	switch s {
	case "ranged":
		return AbilityRanged
	case "aoe":
		return AbilityAoE
	case "buff":
		return AbilityBuff
	case "dodge":
		return AbilityDodge
	default:
		return AbilityMelee
	}
}

// BuffEffect describes the timed attribute bonus a buff ability applies.
type BuffEffect struct {
	Attribute Attribute `yaml:"attribute" json:"attribute"`
	Amount    float64   `yaml:"amount" json:"amount"`
	Duration  float64   `yaml:"duration" json:"duration"`
}

// CombatAbility is a static ability template. Instances are shared across
// every fight in a run and never mutated after catalog load.
type CombatAbility struct {
	ID                 string      `yaml:"-" json:"id"`
	Name               string      `yaml:"name" json:"name"`
	Type               AbilityType `yaml:"type" json:"type"`
	BaseDamage         float64     `yaml:"base_damage" json:"baseDamage"`
	AttackPowerScaling float64     `yaml:"attack_power_scaling" json:"attackPowerScaling"`
	ManaCost           float64     `yaml:"mana_cost" json:"manaCost"`
	CooldownSec        float64     `yaml:"cooldown" json:"cooldownSec"`
	CastTimeSec        float64     `yaml:"cast_time" json:"castTimeSec"`
	Range              float64     `yaml:"range" json:"range"`
	AoERadius          float64     `yaml:"aoe_radius" json:"aoeRadius"`
	StunDuration       float64     `yaml:"stun_duration" json:"stunDuration"`
	InvulnDuration     float64     `yaml:"invuln_duration" json:"invulnDuration"`
	Buff               *BuffEffect `yaml:"buff" json:"buff,omitempty"`
}

// IsDamage reports whether the ability rolls damage against targets.
func (a *CombatAbility) IsDamage() bool {
	switch a.Type {
	case AbilityMelee, AbilityRanged, AbilityAoE:
		return true
	}
	return false
}

// ExpectedDamage is the average damage estimate used by the action-selection
// policy: base damage plus attack power contribution, ignoring crits and armor.
func (a *CombatAbility) ExpectedDamage(attackPower float64) float64 {
	return a.BaseDamage + attackPower*a.AttackPowerScaling
}
