package arsenal

import "testing"

// TestDefaultCatalogComplete checks every built-in weapon exists with the
// expected behavior type.
func TestDefaultCatalogComplete(t *testing.T) {
	tests := []struct {
		id       string
		behavior BehaviorType
	}{
		{"basic_laser", BehaviorStandard},
		{"spread_shot", BehaviorSpread},
		{"homing_missile", BehaviorHoming},
		{"orbital_blades", BehaviorOrbital},
		{"chain_lightning", BehaviorChain},
		{"flame_cone", BehaviorArea},
		{"frost_beam", BehaviorBeam},
		{"gravity_vortex", BehaviorVortex},
	}

	catalog := DefaultCatalog()
	if catalog.Len() != len(tests) {
		t.Fatalf("Expected %d built-in weapons, got %d", len(tests), catalog.Len())
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			def, ok := catalog.Get(tt.id)
			if !ok {
				t.Fatalf("Weapon %s missing from default catalog", tt.id)
			}
			if def.BehaviorType != tt.behavior {
				t.Errorf("Expected behavior %s, got %s", tt.behavior, def.BehaviorType)
			}
			if def.Config == nil || def.Config.Behavior() != tt.behavior {
				t.Errorf("Config variant does not match behavior type %s", tt.behavior)
			}
		})
	}
}

// TestDefaultCatalogFields sanity-checks the built-in definitions.
func TestDefaultCatalogFields(t *testing.T) {
	for _, def := range DefaultCatalog().All() {
		if def.Name == "" {
			t.Errorf("Weapon %s should have a name", def.ID)
		}
		if def.BaseDamage <= 0 {
			t.Errorf("Weapon %s should have positive base damage", def.ID)
		}
		if def.BaseFireRate <= 0 {
			t.Errorf("Weapon %s should have a positive fire rate", def.ID)
		}
		if len(def.Color) != 7 || def.Color[0] != '#' {
			t.Errorf("Weapon %s has invalid color format: %s", def.ID, def.Color)
		}
	}
}

// TestRegisterOverwrite verifies last-write-wins registration, used by the
// evolution system to shadow built-ins.
func TestRegisterOverwrite(t *testing.T) {
	catalog := DefaultCatalog()
	before := catalog.Len()

	catalog.Register(WeaponDefinition{
		ID:           "basic_laser",
		Name:         "Overcharged Laser",
		BaseDamage:   99,
		BaseFireRate: 1,
		BehaviorType: BehaviorStandard,
		Config:       StandardConfig{},
	})

	if catalog.Len() != before {
		t.Errorf("Overwrite should not grow the catalog: %d -> %d", before, catalog.Len())
	}
	def, _ := catalog.Get("basic_laser")
	if def.BaseDamage != 99 {
		t.Errorf("Expected overwritten damage 99, got %v", def.BaseDamage)
	}
}

func TestParseDefinition(t *testing.T) {
	data := []byte(`{
		"id": "evolved_storm",
		"name": "Evolved Storm",
		"baseDamage": 20,
		"baseFireRate": 1.5,
		"behaviorType": "chain",
		"behaviorConfig": {"chainCount": 5, "chainRange": 200, "damageDecay": 0.9}
	}`)

	def, err := ParseDefinition(data)
	if err != nil {
		t.Fatalf("ParseDefinition failed: %v", err)
	}
	cfg, ok := def.Config.(ChainConfig)
	if !ok {
		t.Fatalf("Expected ChainConfig, got %T", def.Config)
	}
	if cfg.ChainCount != 5 || cfg.ChainRange != 200 || cfg.DamageDecay != 0.9 {
		t.Errorf("Unexpected chain config: %+v", cfg)
	}
}

func TestParseDefinitionRejectsUnknownBehavior(t *testing.T) {
	_, err := ParseDefinition([]byte(`{"id": "x", "behaviorType": "teleport"}`))
	if err == nil {
		t.Error("Expected error for unknown behavior type")
	}
}

func TestParseDefinitionRequiresID(t *testing.T) {
	_, err := ParseDefinition([]byte(`{"behaviorType": "standard"}`))
	if err == nil {
		t.Error("Expected error for missing id")
	}
}
