package catalog

// TuningOverrides are the multiplicative balance knobs applied uniformly to
// every fight in a run. They let a designer test "what if" changes without
// editing base data.
type TuningOverrides struct {
	PlayerHealthMul    float64 `yaml:"player_health_mul" json:"playerHealthMul"`
	PlayerDamageMul    float64 `yaml:"player_damage_mul" json:"playerDamageMul"`
	PlayerArmorMul     float64 `yaml:"player_armor_mul" json:"playerArmorMul"`
	EnemyHealthMul     float64 `yaml:"enemy_health_mul" json:"enemyHealthMul"`
	EnemyDamageMul     float64 `yaml:"enemy_damage_mul" json:"enemyDamageMul"`
	EnemyArmorMul      float64 `yaml:"enemy_armor_mul" json:"enemyArmorMul"`
	CritMultiplierMul  float64 `yaml:"crit_multiplier_mul" json:"critMultiplierMul"`
	ArmorEffectiveness float64 `yaml:"armor_effectiveness" json:"armorEffectiveness"`
	HealingMul         float64 `yaml:"healing_mul" json:"healingMul"`
}

// DefaultTuning returns neutral tuning: every knob at 1.0.
func DefaultTuning() TuningOverrides {
	return TuningOverrides{
		PlayerHealthMul:    1.0,
		PlayerDamageMul:    1.0,
		PlayerArmorMul:     1.0,
		EnemyHealthMul:     1.0,
		EnemyDamageMul:     1.0,
		EnemyArmorMul:      1.0,
		CritMultiplierMul:  1.0,
		ArmorEffectiveness: 1.0,
		HealingMul:         1.0,
	}
}

// SimConfig controls a Monte Carlo run.
type SimConfig struct {
	Iterations          int     `yaml:"iterations" json:"iterations"`
	Seed                int64   `yaml:"seed" json:"seed"`
	MaxFightDurationSec float64 `yaml:"max_fight_duration_sec" json:"maxFightDurationSec"`
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() SimConfig {
	return SimConfig{
		Iterations:          1000,
		Seed:                42,
		MaxFightDurationSec: 120,
	}
}
