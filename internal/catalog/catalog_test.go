package catalog

import (
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.BasePlayer.MaxHealth != 100 {
		t.Errorf("Expected base player max health 100, got %v", c.BasePlayer.MaxHealth)
	}
	if len(c.Abilities) != len(PlayerAbilities)+len(EnemyAbilities) {
		t.Errorf("Expected %d abilities, got %d", len(PlayerAbilities)+len(EnemyAbilities), len(c.Abilities))
	}
	if len(c.Archetypes) != len(EnemyArchetypes) {
		t.Errorf("Expected %d archetypes, got %d", len(EnemyArchetypes), len(c.Archetypes))
	}
	if len(c.Gear) != len(GearLoadouts) {
		t.Errorf("Expected %d gear loadouts, got %d", len(GearLoadouts), len(c.Gear))
	}

	// Every archetype's ability list must resolve against the catalog.
	for id, arch := range c.Archetypes {
		for _, abilityID := range arch.AbilityIDs {
			if _, ok := c.Abilities[abilityID]; !ok {
				t.Errorf("Archetype %s references unknown ability %s", id, abilityID)
			}
		}
	}
}

func TestDefaultReturnsFreshMaps(t *testing.T) {
	c1 := Default()
	c1.Abilities["custom"] = CombatAbility{ID: "custom", Name: "Custom"}
	c1.LevelScaling[AttrArmor] = 99

	c2 := Default()
	if _, ok := c2.Abilities["custom"]; ok {
		t.Error("Mutating one catalog leaked into a fresh Default()")
	}
	if c2.LevelScaling[AttrArmor] != PlayerLevelScaling[AttrArmor] {
		t.Error("Mutating level scaling leaked into a fresh Default()")
	}
}

func TestAbilityLookup(t *testing.T) {
	c := Default()

	a, ok := c.Ability("melee-attack")
	if !ok {
		t.Fatal("melee-attack not found")
	}
	if a.Type != AbilityMelee {
		t.Errorf("Expected melee type, got %s", a.Type)
	}

	if _, ok := c.Ability("no-such-ability"); ok {
		t.Error("Expected lookup miss for unknown ability")
	}
}

func TestArchetypeLookup(t *testing.T) {
	c := Default()

	arch, ok := c.Archetype("melee-grunt")
	if !ok {
		t.Fatal("melee-grunt not found")
	}
	if arch.BaseAttributes.MaxHealth != 80 {
		t.Errorf("Expected grunt max health 80, got %v", arch.BaseAttributes.MaxHealth)
	}

	if _, ok := c.Archetype("no-such-archetype"); ok {
		t.Error("Expected lookup miss for unknown archetype")
	}
}

func TestGearLookup(t *testing.T) {
	c := Default()

	g, ok := c.GearByID("starter")
	if !ok {
		t.Fatal("starter gear not found")
	}
	if g.Bonuses[AttrArmor] != 3 {
		t.Errorf("Expected starter armor bonus 3, got %v", g.Bonuses[AttrArmor])
	}

	if _, ok := c.GearByID("no-such-gear"); ok {
		t.Error("Expected lookup miss for unknown gear")
	}
}

func TestResolveAbilities(t *testing.T) {
	c := Default()

	resolved, missing := c.ResolveAbilities([]string{"melee-attack", "bogus", "fireball"})
	if len(resolved) != 2 {
		t.Errorf("Expected 2 resolved abilities, got %d", len(resolved))
	}
	if len(missing) != 1 || missing[0] != "bogus" {
		t.Errorf("Expected missing list [bogus], got %v", missing)
	}
	if resolved[0].ID != "melee-attack" || resolved[1].ID != "fireball" {
		t.Error("Resolved abilities out of order")
	}
}

func TestExpectedDamage(t *testing.T) {
	a := CombatAbility{BaseDamage: 10, AttackPowerScaling: 0.5}
	if got := a.ExpectedDamage(20); got != 20 {
		t.Errorf("ExpectedDamage(20) = %v, want 20", got)
	}

	buff := CombatAbility{Type: AbilityBuff}
	if buff.IsDamage() {
		t.Error("Buff ability reported as damage")
	}
	aoe := CombatAbility{Type: AbilityAoE}
	if !aoe.IsDamage() {
		t.Error("AoE ability not reported as damage")
	}
}

func TestStringToAbilityType(t *testing.T) {
	tests := []struct {
		input string
		want  AbilityType
	}{
		{"melee", AbilityMelee},
		{"ranged", AbilityRanged},
		{"aoe", AbilityAoE},
		{"buff", AbilityBuff},
		{"dodge", AbilityDodge},
		{"garbage", AbilityMelee},
		{"", AbilityMelee},
	}
	for _, tt := range tests {
		if got := StringToAbilityType(tt.input); got != tt.want {
			t.Errorf("StringToAbilityType(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestAttributeSetGetAdd(t *testing.T) {
	s := AttributeSet{}
	s.Add(AttrHealth, 50)
	s.Add(AttrAttackPower, 12)
	s.Add(AttrHealth, -10)

	if got := s.Get(AttrHealth); got != 40 {
		t.Errorf("Health = %v, want 40", got)
	}
	if got := s.Get(AttrAttackPower); got != 12 {
		t.Errorf("AttackPower = %v, want 12", got)
	}
}

func TestAttributeBonusesApplyTo(t *testing.T) {
	s := AttributeSet{Health: 100, MaxHealth: 100}
	b := AttributeBonuses{AttrHealth: 10, AttrMaxHealth: 10, AttrArmor: 2}

	b.ApplyTo(&s, 4)

	if s.Health != 140 {
		t.Errorf("Health = %v, want 140", s.Health)
	}
	if s.Armor != 8 {
		t.Errorf("Armor = %v, want 8", s.Armor)
	}
}

func TestAttributeValid(t *testing.T) {
	for _, attr := range Attributes {
		if !attr.Valid() {
			t.Errorf("Attribute %s should be valid", attr)
		}
	}
	if Attribute("luck").Valid() {
		t.Error("Unknown attribute reported as valid")
	}
}
