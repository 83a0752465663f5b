package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emberforge/encounterlab/internal/logger"
)

// DataFile is the YAML shape for catalog data files. A file may carry any
// mix of sections; later files override earlier entries with the same id.
type DataFile struct {
	Abilities  map[string]CombatAbility  `yaml:"abilities"`
	Archetypes map[string]EnemyArchetype `yaml:"archetypes"`
	Gear       map[string]GearLoadout    `yaml:"gear"`
}

// LoadFile loads one catalog data file and merges it into the catalog.
func (c *Catalog) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file DataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	for id, ability := range file.Abilities {
		ability.ID = id
		if ability.Buff != nil && !ability.Buff.Attribute.Valid() {
			logger.Warning("Skipping ability with unknown buff attribute",
				"ability_id", id, "attribute", string(ability.Buff.Attribute))
			continue
		}
		c.Abilities[id] = ability
	}

	for id, arch := range file.Archetypes {
		arch.ID = id
		if bad := invalidBonusKeys(arch.PerLevel); len(bad) > 0 {
			logger.Warning("Skipping archetype with unknown per-level attributes",
				"archetype_id", id, "attributes", strings.Join(bad, ","))
			continue
		}
		c.Archetypes[id] = arch
	}

	for id, gear := range file.Gear {
		if bad := invalidBonusKeys(gear.Bonuses); len(bad) > 0 {
			logger.Warning("Skipping gear loadout with unknown bonus attributes",
				"gear_id", id, "attributes", strings.Join(bad, ","))
			continue
		}
		c.Gear[id] = gear
	}

	return nil
}

// LoadDirectory merges every .yaml/.yml file in dir into the catalog.
func (c *Catalog) LoadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	fileCount := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		if err := c.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		fileCount++
	}

	logger.Info("Loaded catalog data", "dir", dir, "files", fileCount,
		"abilities", len(c.Abilities), "archetypes", len(c.Archetypes), "gear", len(c.Gear))
	return nil
}

// invalidBonusKeys returns the bonus keys that are not known attributes.
func invalidBonusKeys(bonuses AttributeBonuses) []string {
	var bad []string
	for attr := range bonuses {
		if !attr.Valid() {
			bad = append(bad, string(attr))
		}
	}
	return bad
}

// ScenarioFile is the YAML shape for a combat scenario file.
type ScenarioFile struct {
	Scenario CombatScenario  `yaml:"scenario"`
	Tuning   TuningOverrides `yaml:"tuning"`
	Config   SimConfig       `yaml:"config"`
}

// LoadScenario loads a scenario file. Missing tuning knobs fall back to
// DefaultTuning, and missing config fields to DefaultConfig, so a scenario
// file only needs to state what it changes.
func LoadScenario(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	file := &ScenarioFile{
		Tuning: DefaultTuning(),
		Config: DefaultConfig(),
	}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if file.Scenario.GearID == "" {
		file.Scenario.GearID = "none"
	}
	if file.Scenario.PlayerLevel <= 0 {
		file.Scenario.PlayerLevel = 1
	}
	return file, nil
}
