// Package catalog holds the static combat data the simulator runs on: base
// attributes, level scaling, ability templates, enemy archetypes, gear
// loadouts, and the default tuning knobs. Nothing in this package mutates
// after load.
package catalog

// Attribute names one field of an AttributeSet. Buffs and bonus tables
// address attributes through this enum instead of free-form strings, so an
// unknown attribute is caught at load time rather than mid-fight.
type Attribute string

const (
	AttrHealth       Attribute = "health"
	AttrMaxHealth    Attribute = "max_health"
	AttrMana         Attribute = "mana"
	AttrMaxMana      Attribute = "max_mana"
	AttrStrength     Attribute = "strength"
	AttrDexterity    Attribute = "dexterity"
	AttrIntelligence Attribute = "intelligence"
	AttrArmor        Attribute = "armor"
	AttrAttackPower  Attribute = "attack_power"
	AttrCritChance   Attribute = "crit_chance"
	AttrCritDamage   Attribute = "crit_damage"
)

// Attributes lists every valid attribute in a fixed order.
var Attributes = []Attribute{
	AttrHealth, AttrMaxHealth, AttrMana, AttrMaxMana,
	AttrStrength, AttrDexterity, AttrIntelligence,
	AttrArmor, AttrAttackPower, AttrCritChance, AttrCritDamage,
}

// Valid reports whether a is one of the known attribute names.
func (a Attribute) Valid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}

// AttributeSet is a combatant's stat block. Health and mana fluctuate during
// a fight; everything else is fixed once built for the fight.
type AttributeSet struct {
	Health       float64 `yaml:"health" json:"health"`
	MaxHealth    float64 `yaml:"max_health" json:"maxHealth"`
	Mana         float64 `yaml:"mana" json:"mana"`
	MaxMana      float64 `yaml:"max_mana" json:"maxMana"`
	Strength     float64 `yaml:"strength" json:"strength"`
	Dexterity    float64 `yaml:"dexterity" json:"dexterity"`
	Intelligence float64 `yaml:"intelligence" json:"intelligence"`
	Armor        float64 `yaml:"armor" json:"armor"`
	AttackPower  float64 `yaml:"attack_power" json:"attackPower"`
	CritChance   float64 `yaml:"crit_chance" json:"critChance"`
	CritDamage   float64 `yaml:"crit_damage" json:"critDamage"`
}

// Get returns the value of the named attribute. Unknown names return 0.
func (s *AttributeSet) Get(attr Attribute) float64 {
	switch attr {
	case AttrHealth:
		return s.Health
	case AttrMaxHealth:
		return s.MaxHealth
	case AttrMana:
		return s.Mana
	case AttrMaxMana:
		return s.MaxMana
	case AttrStrength:
		return s.Strength
	case AttrDexterity:
		return s.Dexterity
	case AttrIntelligence:
		return s.Intelligence
	case AttrArmor:
		return s.Armor
	case AttrAttackPower:
		return s.AttackPower
	case AttrCritChance:
		return s.CritChance
	case AttrCritDamage:
		return s.CritDamage
	}
	return 0
}

// Add adds amount to the named attribute. Unknown names are ignored.
func (s *AttributeSet) Add(attr Attribute, amount float64) {
	switch attr {
	case AttrHealth:
		s.Health += amount
	case AttrMaxHealth:
		s.MaxHealth += amount
	case AttrMana:
		s.Mana += amount
	case AttrMaxMana:
		s.MaxMana += amount
	case AttrStrength:
		s.Strength += amount
	case AttrDexterity:
		s.Dexterity += amount
	case AttrIntelligence:
		s.Intelligence += amount
	case AttrArmor:
		s.Armor += amount
	case AttrAttackPower:
		s.AttackPower += amount
	case AttrCritChance:
		s.CritChance += amount
	case AttrCritDamage:
		s.CritDamage += amount
	}
}

// AttributeBonuses maps attributes to flat deltas. Gear bonuses and
// per-level scaling tables both use this shape.
type AttributeBonuses map[Attribute]float64

// ApplyTo adds every bonus to the given set. Scale multiplies each delta
// before it is added, which is how level scaling applies (level-1) steps.
func (b AttributeBonuses) ApplyTo(s *AttributeSet, scale float64) {
	for _, attr := range Attributes {
		if delta, ok := b[attr]; ok {
			s.Add(attr, delta*scale)
		}
	}
}

// GearLoadout is a named bundle of flat attribute bonuses.
type GearLoadout struct {
	Name    string           `yaml:"name" json:"name"`
	Bonuses AttributeBonuses `yaml:"bonuses" json:"bonuses"`
}
