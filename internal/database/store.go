package database

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/emberforge/encounterlab/internal/catalog"
)

// SeedDefaults writes every ability, archetype, and gear loadout from the
// given catalog into the database, overwriting rows with matching ids.
func (d *Database) SeedDefaults(cat *catalog.Catalog) error {
	for _, id := range sortedKeys(cat.Abilities) {
		if err := d.UpsertAbility(id, cat.Abilities[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(cat.Archetypes) {
		if err := d.UpsertArchetype(id, cat.Archetypes[id]); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(cat.Gear) {
		if err := d.UpsertGear(id, cat.Gear[id]); err != nil {
			return err
		}
	}
	return nil
}

// UpsertAbility inserts or replaces one ability row.
func (d *Database) UpsertAbility(id string, a catalog.CombatAbility) error {
	var buffAttr string
	var buffAmount, buffDuration float64
	if a.Buff != nil {
		buffAttr = string(a.Buff.Attribute)
		buffAmount = a.Buff.Amount
		buffDuration = a.Buff.Duration
	}

	query := fmt.Sprintf(`INSERT INTO abilities
		(id, name, type, base_damage, attack_power_scaling, mana_cost,
		 cooldown, cast_time, attack_range, aoe_radius, stun_duration,
		 invuln_duration, buff_attribute, buff_amount, buff_duration)
		VALUES (%s)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			base_damage = excluded.base_damage,
			attack_power_scaling = excluded.attack_power_scaling,
			mana_cost = excluded.mana_cost,
			cooldown = excluded.cooldown,
			cast_time = excluded.cast_time,
			attack_range = excluded.attack_range,
			aoe_radius = excluded.aoe_radius,
			stun_duration = excluded.stun_duration,
			invuln_duration = excluded.invuln_duration,
			buff_attribute = excluded.buff_attribute,
			buff_amount = excluded.buff_amount,
			buff_duration = excluded.buff_duration`,
		d.placeholders(15))

	_, err := d.db.Exec(query,
		id, a.Name, string(a.Type), a.BaseDamage, a.AttackPowerScaling,
		a.ManaCost, a.CooldownSec, a.CastTimeSec, a.Range, a.AoERadius,
		a.StunDuration, a.InvulnDuration, buffAttr, buffAmount, buffDuration)
	if err != nil {
		return fmt.Errorf("failed to upsert ability %s: %w", id, err)
	}
	return nil
}

// UpsertArchetype inserts or replaces one enemy archetype row. Nested
// attribute tables and ability lists are stored as JSON text.
func (d *Database) UpsertArchetype(id string, a catalog.EnemyArchetype) error {
	attrs, err := json.Marshal(a.BaseAttributes)
	if err != nil {
		return fmt.Errorf("failed to encode archetype %s attributes: %w", id, err)
	}
	perLevel, err := json.Marshal(a.PerLevel)
	if err != nil {
		return fmt.Errorf("failed to encode archetype %s per-level: %w", id, err)
	}
	abilityIDs := a.AbilityIDs
	if abilityIDs == nil {
		abilityIDs = []string{}
	}
	abilities, err := json.Marshal(abilityIDs)
	if err != nil {
		return fmt.Errorf("failed to encode archetype %s abilities: %w", id, err)
	}

	query := fmt.Sprintf(`INSERT INTO archetypes
		(id, name, attributes, per_level, abilities, attack_interval, aggro_range, xp_reward)
		VALUES (%s)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			attributes = excluded.attributes,
			per_level = excluded.per_level,
			abilities = excluded.abilities,
			attack_interval = excluded.attack_interval,
			aggro_range = excluded.aggro_range,
			xp_reward = excluded.xp_reward`,
		d.placeholders(8))

	_, err = d.db.Exec(query,
		id, a.Name, string(attrs), string(perLevel), string(abilities),
		a.AttackIntervalSec, a.AggroRange, a.XPReward)
	if err != nil {
		return fmt.Errorf("failed to upsert archetype %s: %w", id, err)
	}
	return nil
}

// UpsertGear inserts or replaces one gear loadout row.
func (d *Database) UpsertGear(id string, g catalog.GearLoadout) error {
	bonuses := g.Bonuses
	if bonuses == nil {
		bonuses = catalog.AttributeBonuses{}
	}
	encoded, err := json.Marshal(bonuses)
	if err != nil {
		return fmt.Errorf("failed to encode gear %s bonuses: %w", id, err)
	}

	query := fmt.Sprintf(`INSERT INTO gear (id, name, bonuses)
		VALUES (%s)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			bonuses = excluded.bonuses`,
		d.placeholders(3))

	if _, err := d.db.Exec(query, id, g.Name, string(encoded)); err != nil {
		return fmt.Errorf("failed to upsert gear %s: %w", id, err)
	}
	return nil
}

// LoadCatalog merges every stored ability, archetype, and gear loadout into
// the given catalog. Base player attributes and level scaling are not stored;
// callers start from catalog.Default() and layer database rows on top.
func (d *Database) LoadCatalog(cat *catalog.Catalog) error {
	if err := d.loadAbilities(cat); err != nil {
		return err
	}
	if err := d.loadArchetypes(cat); err != nil {
		return err
	}
	return d.loadGear(cat)
}

func (d *Database) loadAbilities(cat *catalog.Catalog) error {
	rows, err := d.db.Query(`SELECT id, name, type, base_damage,
		attack_power_scaling, mana_cost, cooldown, cast_time, attack_range,
		aoe_radius, stun_duration, invuln_duration, buff_attribute,
		buff_amount, buff_duration FROM abilities`)
	if err != nil {
		return fmt.Errorf("failed to query abilities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a catalog.CombatAbility
		var abilityType, buffAttr string
		var buffAmount, buffDuration float64
		err := rows.Scan(&a.ID, &a.Name, &abilityType, &a.BaseDamage,
			&a.AttackPowerScaling, &a.ManaCost, &a.CooldownSec, &a.CastTimeSec,
			&a.Range, &a.AoERadius, &a.StunDuration, &a.InvulnDuration,
			&buffAttr, &buffAmount, &buffDuration)
		if err != nil {
			return fmt.Errorf("failed to scan ability row: %w", err)
		}
		a.Type = catalog.StringToAbilityType(abilityType)
		if buffAttr != "" {
			a.Buff = &catalog.BuffEffect{
				Attribute: catalog.Attribute(buffAttr),
				Amount:    buffAmount,
				Duration:  buffDuration,
			}
		}
		cat.Abilities[a.ID] = a
	}
	return rows.Err()
}

func (d *Database) loadArchetypes(cat *catalog.Catalog) error {
	rows, err := d.db.Query(`SELECT id, name, attributes, per_level, abilities,
		attack_interval, aggro_range, xp_reward FROM archetypes`)
	if err != nil {
		return fmt.Errorf("failed to query archetypes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a catalog.EnemyArchetype
		var attrs, perLevel, abilities string
		err := rows.Scan(&a.ID, &a.Name, &attrs, &perLevel, &abilities,
			&a.AttackIntervalSec, &a.AggroRange, &a.XPReward)
		if err != nil {
			return fmt.Errorf("failed to scan archetype row: %w", err)
		}
		if err := json.Unmarshal([]byte(attrs), &a.BaseAttributes); err != nil {
			return fmt.Errorf("failed to decode archetype %s attributes: %w", a.ID, err)
		}
		if err := json.Unmarshal([]byte(perLevel), &a.PerLevel); err != nil {
			return fmt.Errorf("failed to decode archetype %s per-level: %w", a.ID, err)
		}
		if err := json.Unmarshal([]byte(abilities), &a.AbilityIDs); err != nil {
			return fmt.Errorf("failed to decode archetype %s abilities: %w", a.ID, err)
		}
		cat.Archetypes[a.ID] = a
	}
	return rows.Err()
}

func (d *Database) loadGear(cat *catalog.Catalog) error {
	rows, err := d.db.Query(`SELECT id, name, bonuses FROM gear`)
	if err != nil {
		return fmt.Errorf("failed to query gear: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name, bonuses string
		if err := rows.Scan(&id, &name, &bonuses); err != nil {
			return fmt.Errorf("failed to scan gear row: %w", err)
		}
		g := catalog.GearLoadout{Name: name}
		if err := json.Unmarshal([]byte(bonuses), &g.Bonuses); err != nil {
			return fmt.Errorf("failed to decode gear %s bonuses: %w", id, err)
		}
		cat.Gear[id] = g
	}
	return rows.Err()
}

// CountRows returns how many rows each catalog table holds. Used by the
// seed-db command to report what was written.
func (d *Database) CountRows() (abilities, archetypes, gear int, err error) {
	tables := []struct {
		name  string
		count *int
	}{
		{"abilities", &abilities},
		{"archetypes", &archetypes},
		{"gear", &gear},
	}
	for _, t := range tables {
		row := d.db.QueryRow("SELECT COUNT(*) FROM " + t.name)
		if err = row.Scan(t.count); err != nil {
			err = fmt.Errorf("failed to count %s: %w", t.name, err)
			return
		}
	}
	return
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
