package database

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/emberforge/encounterlab/internal/catalog"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	db, err := Open(DialectSQLite, dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeedDefaults(t *testing.T) {
	db := openTestDB(t)
	cat := catalog.Default()

	if err := db.SeedDefaults(cat); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}

	abilities, archetypes, gear, err := db.CountRows()
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if abilities != len(cat.Abilities) {
		t.Errorf("Expected %d ability rows, got %d", len(cat.Abilities), abilities)
	}
	if archetypes != len(cat.Archetypes) {
		t.Errorf("Expected %d archetype rows, got %d", len(cat.Archetypes), archetypes)
	}
	if gear != len(cat.Gear) {
		t.Errorf("Expected %d gear rows, got %d", len(cat.Gear), gear)
	}
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	db := openTestDB(t)
	cat := catalog.Default()

	if err := db.SeedDefaults(cat); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := db.SeedDefaults(cat); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	abilities, _, _, err := db.CountRows()
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if abilities != len(cat.Abilities) {
		t.Errorf("Expected %d ability rows after re-seed, got %d", len(cat.Abilities), abilities)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	db := openTestDB(t)
	original := catalog.Default()

	if err := db.SeedDefaults(original); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}

	loaded := catalog.Default()
	// Clear the compiled-in tables so everything comes from the database.
	loaded.Abilities = make(map[string]catalog.CombatAbility)
	loaded.Archetypes = make(map[string]catalog.EnemyArchetype)
	loaded.Gear = make(map[string]catalog.GearLoadout)

	if err := db.LoadCatalog(loaded); err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if len(loaded.Abilities) != len(original.Abilities) {
		t.Fatalf("Expected %d abilities, got %d", len(original.Abilities), len(loaded.Abilities))
	}

	// Spot-check a plain damage ability
	got, ok := loaded.Abilities["melee-attack"]
	if !ok {
		t.Fatal("melee-attack not loaded")
	}
	want := original.Abilities["melee-attack"]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("melee-attack mismatch:\n got %+v\nwant %+v", got, want)
	}

	// Spot-check an ability carrying a buff payload
	got, ok = loaded.Abilities["battle-cry"]
	if !ok {
		t.Fatal("battle-cry not loaded")
	}
	if got.Buff == nil {
		t.Fatal("battle-cry buff not loaded")
	}
	wantBuff := original.Abilities["battle-cry"].Buff
	if !reflect.DeepEqual(got.Buff, wantBuff) {
		t.Errorf("battle-cry buff mismatch: got %+v, want %+v", got.Buff, wantBuff)
	}

	// Archetypes survive the JSON columns intact
	arch, ok := loaded.Archetypes["elite-knight"]
	if !ok {
		t.Fatal("elite-knight not loaded")
	}
	wantArch := original.Archetypes["elite-knight"]
	if !reflect.DeepEqual(arch, wantArch) {
		t.Errorf("elite-knight mismatch:\n got %+v\nwant %+v", arch, wantArch)
	}

	// Gear bonuses
	g, ok := loaded.Gear["starter"]
	if !ok {
		t.Fatal("starter gear not loaded")
	}
	wantGear := original.Gear["starter"]
	if !reflect.DeepEqual(g, wantGear) {
		t.Errorf("starter gear mismatch: got %+v, want %+v", g, wantGear)
	}
}

func TestUpsertAbilityOverwrites(t *testing.T) {
	db := openTestDB(t)

	a := catalog.CombatAbility{
		ID:          "test-strike",
		Name:        "Test Strike",
		Type:        catalog.AbilityMelee,
		BaseDamage:  10,
		CooldownSec: 2,
	}
	if err := db.UpsertAbility("test-strike", a); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	a.BaseDamage = 25
	a.Name = "Heavy Test Strike"
	if err := db.UpsertAbility("test-strike", a); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	cat := catalog.Default()
	cat.Abilities = make(map[string]catalog.CombatAbility)
	if err := db.LoadCatalog(cat); err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	got, ok := cat.Abilities["test-strike"]
	if !ok {
		t.Fatal("test-strike not loaded")
	}
	if got.BaseDamage != 25 {
		t.Errorf("Expected base damage 25 after overwrite, got %v", got.BaseDamage)
	}
	if got.Name != "Heavy Test Strike" {
		t.Errorf("Expected updated name, got %q", got.Name)
	}
}

func TestLoadCatalogMergesOverDefaults(t *testing.T) {
	db := openTestDB(t)

	// A database row with the same id as a compiled-in ability wins.
	custom := catalog.CombatAbility{
		ID:         "melee-attack",
		Name:       "Tuned Melee Attack",
		Type:       catalog.AbilityMelee,
		BaseDamage: 99,
	}
	if err := db.UpsertAbility("melee-attack", custom); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	cat := catalog.Default()
	if err := db.LoadCatalog(cat); err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	got := cat.Abilities["melee-attack"]
	if got.BaseDamage != 99 {
		t.Errorf("Expected database row to override default, got base damage %v", got.BaseDamage)
	}

	// Abilities the database doesn't know about stay compiled-in.
	if _, ok := cat.Abilities["fireball"]; !ok {
		t.Error("Compiled-in ability lost during merge")
	}
}
