package catalog

// BasePlayerAttributes is the level-1, ungeared player stat block.
var BasePlayerAttributes = AttributeSet{
	Health:       100,
	MaxHealth:    100,
	Mana:         50,
	MaxMana:      50,
	Strength:     10,
	Dexterity:    10,
	Intelligence: 10,
	Armor:        5,
	AttackPower:  12,
	CritChance:   0.10,
	CritDamage:   1.5,
}

// PlayerLevelScaling is the per-level attribute delta for the player.
var PlayerLevelScaling = AttributeBonuses{
	AttrHealth:       12,
	AttrMaxHealth:    12,
	AttrMana:         5,
	AttrMaxMana:      5,
	AttrStrength:     2,
	AttrDexterity:    1.5,
	AttrIntelligence: 1.5,
	AttrArmor:        1,
	AttrAttackPower:  3,
	AttrCritChance:   0.003,
}

// PlayerAbilities is the built-in player ability catalog.
var PlayerAbilities = map[string]CombatAbility{
	"melee-attack": {
		ID: "melee-attack", Name: "Melee Attack", Type: AbilityMelee,
		BaseDamage: 8, AttackPowerScaling: 0.8,
		CastTimeSec: 0.6, Range: 2,
	},
	"power-strike": {
		ID: "power-strike", Name: "Power Strike", Type: AbilityMelee,
		BaseDamage: 18, AttackPowerScaling: 1.0, ManaCost: 12,
		CooldownSec: 5, CastTimeSec: 0.8, Range: 2,
	},
	"combo-finisher": {
		ID: "combo-finisher", Name: "Combo Finisher", Type: AbilityMelee,
		BaseDamage: 25, AttackPowerScaling: 1.2, ManaCost: 20,
		CooldownSec: 8, CastTimeSec: 1.0, Range: 2, StunDuration: 1.0,
	},
	"whirlwind": {
		ID: "whirlwind", Name: "Whirlwind", Type: AbilityAoE,
		BaseDamage: 14, AttackPowerScaling: 0.7, ManaCost: 25,
		CooldownSec: 10, CastTimeSec: 1.0, Range: 3, AoERadius: 3,
	},
	"fireball": {
		ID: "fireball", Name: "Fireball", Type: AbilityRanged,
		BaseDamage: 30, AttackPowerScaling: 0.9, ManaCost: 30,
		CooldownSec: 6, CastTimeSec: 1.2, Range: 25,
	},
	"battle-cry": {
		ID: "battle-cry", Name: "Battle Cry", Type: AbilityBuff,
		ManaCost: 15, CooldownSec: 20, CastTimeSec: 0.5,
		Buff: &BuffEffect{Attribute: AttrAttackPower, Amount: 15, Duration: 10},
	},
	"second-wind": {
		ID: "second-wind", Name: "Second Wind", Type: AbilityBuff,
		ManaCost: 20, CooldownSec: 25, CastTimeSec: 0.5,
		Buff: &BuffEffect{Attribute: AttrHealth, Amount: 40, Duration: 8},
	},
	"dodge": {
		ID: "dodge", Name: "Dodge Roll", Type: AbilityDodge,
		ManaCost: 10, CooldownSec: 10, CastTimeSec: 0.2, InvulnDuration: 1.5,
	},
}

// EnemyAbilities is the built-in enemy ability catalog. Order within an
// archetype's ability list matters: enemies use the first usable entry.
var EnemyAbilities = map[string]CombatAbility{
	"grunt-slam": {
		ID: "grunt-slam", Name: "Grunt Slam", Type: AbilityMelee,
		BaseDamage: 14, AttackPowerScaling: 1.0, ManaCost: 10,
		CooldownSec: 6, CastTimeSec: 0.6, Range: 2,
	},
	"grunt-slash": {
		ID: "grunt-slash", Name: "Grunt Slash", Type: AbilityMelee,
		BaseDamage: 6, AttackPowerScaling: 0.8,
		CastTimeSec: 0.4, Range: 2,
	},
	"claw-swipe": {
		ID: "claw-swipe", Name: "Claw Swipe", Type: AbilityMelee,
		BaseDamage: 5, AttackPowerScaling: 0.7,
		CastTimeSec: 0.4, Range: 2,
	},
	"bone-arrow": {
		ID: "bone-arrow", Name: "Bone Arrow", Type: AbilityRanged,
		BaseDamage: 10, AttackPowerScaling: 0.9,
		CastTimeSec: 0.6, Range: 20,
	},
	"piercing-shot": {
		ID: "piercing-shot", Name: "Piercing Shot", Type: AbilityRanged,
		BaseDamage: 22, AttackPowerScaling: 1.1, ManaCost: 12,
		CooldownSec: 8, CastTimeSec: 0.9, Range: 20,
	},
	"flame-nova": {
		ID: "flame-nova", Name: "Flame Nova", Type: AbilityAoE,
		BaseDamage: 20, AttackPowerScaling: 1.0, ManaCost: 20,
		CooldownSec: 10, CastTimeSec: 1.0, Range: 6, AoERadius: 4,
	},
	"ember-bolt": {
		ID: "ember-bolt", Name: "Ember Bolt", Type: AbilityRanged,
		BaseDamage: 12, AttackPowerScaling: 0.8,
		CastTimeSec: 0.7, Range: 15,
	},
	"cinder-ward": {
		ID: "cinder-ward", Name: "Cinder Ward", Type: AbilityBuff,
		ManaCost: 15, CooldownSec: 18, CastTimeSec: 0.5,
		Buff: &BuffEffect{Attribute: AttrArmor, Amount: 10, Duration: 8},
	},
	"ground-pound": {
		ID: "ground-pound", Name: "Ground Pound", Type: AbilityMelee,
		BaseDamage: 35, AttackPowerScaling: 1.2,
		CooldownSec: 12, CastTimeSec: 1.0, Range: 3, StunDuration: 1.5,
	},
	"boulder-fist": {
		ID: "boulder-fist", Name: "Boulder Fist", Type: AbilityMelee,
		BaseDamage: 25, AttackPowerScaling: 1.0,
		CastTimeSec: 0.8, Range: 2,
	},
	"knight-crush": {
		ID: "knight-crush", Name: "Crushing Blow", Type: AbilityMelee,
		BaseDamage: 50, AttackPowerScaling: 1.4, ManaCost: 20,
		CooldownSec: 10, CastTimeSec: 0.8, Range: 2, StunDuration: 1.5,
	},
	"knight-cleave": {
		ID: "knight-cleave", Name: "Cleave", Type: AbilityMelee,
		BaseDamage: 20, AttackPowerScaling: 1.0,
		CastTimeSec: 0.5, Range: 2,
	},
}

// EnemyArchetypes is the built-in enemy archetype catalog.
var EnemyArchetypes = map[string]EnemyArchetype{
	"melee-grunt": {
		ID: "melee-grunt", Name: "Melee Grunt",
		BaseAttributes: AttributeSet{
			Health: 80, MaxHealth: 80, Mana: 20, MaxMana: 20,
			Strength: 8, Dexterity: 8, Intelligence: 4,
			Armor: 4, AttackPower: 10, CritChance: 0.05, CritDamage: 1.5,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 10, AttrMaxHealth: 10, AttrMana: 2, AttrMaxMana: 2,
			AttrArmor: 0.5, AttrAttackPower: 2,
		},
		AbilityIDs:        []string{"grunt-slam", "grunt-slash"},
		AttackIntervalSec: 1.8,
		AggroRange:        8,
		XPReward:          25,
	},
	"forest-grunt": {
		ID: "forest-grunt", Name: "Forest Grunt",
		BaseAttributes: AttributeSet{
			Health: 60, MaxHealth: 60,
			Strength: 6, Dexterity: 10, Intelligence: 2,
			Armor: 2, AttackPower: 8, CritChance: 0.05, CritDamage: 1.5,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 8, AttrMaxHealth: 8, AttrAttackPower: 1.5,
		},
		AbilityIDs:        []string{"claw-swipe"},
		AttackIntervalSec: 2.0,
		AggroRange:        10,
		XPReward:          15,
	},
	"skeleton-archer": {
		ID: "skeleton-archer", Name: "Skeleton Archer",
		BaseAttributes: AttributeSet{
			Health: 55, MaxHealth: 55, Mana: 24, MaxMana: 24,
			Strength: 6, Dexterity: 14, Intelligence: 6,
			Armor: 1, AttackPower: 14, CritChance: 0.10, CritDamage: 1.6,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 7, AttrMaxHealth: 7, AttrMana: 2, AttrMaxMana: 2,
			AttrAttackPower: 2.5,
		},
		AbilityIDs:        []string{"piercing-shot", "bone-arrow"},
		AttackIntervalSec: 2.2,
		AggroRange:        18,
		XPReward:          30,
	},
	"ember-shaman": {
		ID: "ember-shaman", Name: "Ember Shaman",
		BaseAttributes: AttributeSet{
			Health: 70, MaxHealth: 70, Mana: 60, MaxMana: 60,
			Strength: 5, Dexterity: 8, Intelligence: 16,
			Armor: 2, AttackPower: 16, CritChance: 0.08, CritDamage: 1.6,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 9, AttrMaxHealth: 9, AttrMana: 4, AttrMaxMana: 4,
			AttrAttackPower: 2.5, AttrIntelligence: 2,
		},
		AbilityIDs:        []string{"cinder-ward", "flame-nova", "ember-bolt"},
		AttackIntervalSec: 2.5,
		AggroRange:        14,
		XPReward:          40,
	},
	"stone-golem": {
		ID: "stone-golem", Name: "Stone Golem",
		BaseAttributes: AttributeSet{
			Health: 200, MaxHealth: 200,
			Strength: 16, Dexterity: 4, Intelligence: 2,
			Armor: 15, AttackPower: 18, CritChance: 0.02, CritDamage: 1.5,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 22, AttrMaxHealth: 22, AttrArmor: 1, AttrAttackPower: 3,
		},
		AbilityIDs:        []string{"ground-pound", "boulder-fist"},
		AttackIntervalSec: 3.0,
		AggroRange:        6,
		XPReward:          80,
	},
	"elite-knight": {
		ID: "elite-knight", Name: "Elite Knight",
		BaseAttributes: AttributeSet{
			Health: 300, MaxHealth: 300, Mana: 40, MaxMana: 40,
			Strength: 18, Dexterity: 10, Intelligence: 8,
			Armor: 20, AttackPower: 40, CritChance: 0.15, CritDamage: 1.8,
		},
		PerLevel: AttributeBonuses{
			AttrHealth: 30, AttrMaxHealth: 30, AttrMana: 2, AttrMaxMana: 2,
			AttrArmor: 2, AttrAttackPower: 6,
		},
		AbilityIDs:        []string{"knight-crush", "knight-cleave"},
		AttackIntervalSec: 2.2,
		AggroRange:        10,
		XPReward:          150,
	},
}

// GearLoadouts is the built-in gear bonus catalog.
var GearLoadouts = map[string]GearLoadout{
	"none": {
		Name:    "Unequipped",
		Bonuses: AttributeBonuses{},
	},
	"starter": {
		Name: "Starter Kit",
		Bonuses: AttributeBonuses{
			AttrHealth: 20, AttrMaxHealth: 20, AttrArmor: 3,
			AttrAttackPower: 5, AttrCritChance: 0.02,
		},
	},
	"soldier": {
		Name: "Soldier Set",
		Bonuses: AttributeBonuses{
			AttrHealth: 45, AttrMaxHealth: 45, AttrArmor: 8,
			AttrAttackPower: 12, AttrCritChance: 0.03,
		},
	},
	"veteran": {
		Name: "Veteran Set",
		Bonuses: AttributeBonuses{
			AttrHealth: 80, AttrMaxHealth: 80, AttrArmor: 14,
			AttrAttackPower: 22, AttrCritChance: 0.05, AttrCritDamage: 0.15,
		},
	},
	"champion": {
		Name: "Champion Regalia",
		Bonuses: AttributeBonuses{
			AttrHealth: 130, AttrMaxHealth: 130, AttrMana: 40, AttrMaxMana: 40,
			AttrArmor: 22, AttrAttackPower: 38, AttrCritChance: 0.08, AttrCritDamage: 0.3,
		},
	},
}
