package catalog

// EnemyArchetype is a reusable enemy template. A scenario may instantiate the
// same archetype several times ("3 forest grunts"), each instance getting its
// own leveled copy of the base attributes.
type EnemyArchetype struct {
	ID                string           `yaml:"-" json:"id"`
	Name              string           `yaml:"name" json:"name"`
	BaseAttributes    AttributeSet     `yaml:"attributes" json:"baseAttributes"`
	PerLevel          AttributeBonuses `yaml:"per_level" json:"perLevel"`
	AbilityIDs        []string         `yaml:"abilities" json:"abilityIds"`
	AttackIntervalSec float64          `yaml:"attack_interval" json:"attackIntervalSec"`
	AggroRange        float64          `yaml:"aggro_range" json:"aggroRange"`
	XPReward          int              `yaml:"xp_reward" json:"xpReward"`
}

// EnemyGroup is one scenario entry: N instances of an archetype at a level.
type EnemyGroup struct {
	ArchetypeID string `yaml:"archetype" json:"archetypeId"`
	Level       int    `yaml:"level" json:"level"`
	Count       int    `yaml:"count" json:"count"`
}

// CombatScenario is the simulation input: who the player is and what they are
// fighting. Immutable for the duration of a run.
type CombatScenario struct {
	PlayerLevel int          `yaml:"player_level" json:"playerLevel"`
	GearID      string       `yaml:"gear" json:"gearId"`
	AbilityIDs  []string     `yaml:"abilities" json:"abilityIds"`
	Enemies     []EnemyGroup `yaml:"enemies" json:"enemies"`
}
