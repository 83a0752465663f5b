package catalog

// Catalog bundles every static table the simulator needs. A Catalog is built
// once (from the compiled-in defaults, YAML files, or a database) and then
// treated as read-only.
type Catalog struct {
	BasePlayer   AttributeSet
	LevelScaling AttributeBonuses
	Abilities    map[string]CombatAbility
	Archetypes   map[string]EnemyArchetype
	Gear         map[string]GearLoadout
}

// Default returns a Catalog populated from the compiled-in tables. The maps
// are fresh copies, so callers may merge loaded data over them without
// touching the package-level defaults.
func Default() *Catalog {
	c := &Catalog{
		BasePlayer:   BasePlayerAttributes,
		LevelScaling: make(AttributeBonuses, len(PlayerLevelScaling)),
		Abilities:    make(map[string]CombatAbility, len(PlayerAbilities)+len(EnemyAbilities)),
		Archetypes:   make(map[string]EnemyArchetype, len(EnemyArchetypes)),
		Gear:         make(map[string]GearLoadout, len(GearLoadouts)),
	}
	for attr, delta := range PlayerLevelScaling {
		c.LevelScaling[attr] = delta
	}
	for id, ability := range PlayerAbilities {
		c.Abilities[id] = ability
	}
	for id, ability := range EnemyAbilities {
		c.Abilities[id] = ability
	}
	for id, arch := range EnemyArchetypes {
		c.Archetypes[id] = arch
	}
	for id, gear := range GearLoadouts {
		c.Gear[id] = gear
	}
	return c
}

// Ability looks up an ability template by id.
func (c *Catalog) Ability(id string) (CombatAbility, bool) {
	a, ok := c.Abilities[id]
	return a, ok
}

// Archetype looks up an enemy archetype by id.
func (c *Catalog) Archetype(id string) (EnemyArchetype, bool) {
	a, ok := c.Archetypes[id]
	return a, ok
}

// GearByID looks up a gear loadout by id.
func (c *Catalog) GearByID(id string) (GearLoadout, bool) {
	g, ok := c.Gear[id]
	return g, ok
}

// ResolveAbilities maps ability ids to templates, dropping unknown ids.
// Returns the resolved list and the ids that were not found.
func (c *Catalog) ResolveAbilities(ids []string) ([]CombatAbility, []string) {
	resolved := make([]CombatAbility, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if a, ok := c.Abilities[id]; ok {
			resolved = append(resolved, a)
		} else {
			missing = append(missing, id)
		}
	}
	return resolved, missing
}
