package arsenal

import "testing"

func TestAddWeapon(t *testing.T) {
	engine, _ := newTestEngine(t)

	if !engine.AddWeapon("basic_laser") {
		t.Fatal("AddWeapon should succeed for a known weapon")
	}
	wi := engine.Weapon("basic_laser")
	if wi == nil {
		t.Fatal("Weapon should be owned after AddWeapon")
	}
	if wi.Level != 1 {
		t.Errorf("New weapon should start at level 1, got %d", wi.Level)
	}
}

func TestAddWeaponUnknown(t *testing.T) {
	engine, _ := newTestEngine(t)

	if engine.AddWeapon("bfg9000") {
		t.Error("AddWeapon should fail for unknown ids")
	}
	if engine.WeaponCount() != 0 {
		t.Error("Failed add should have no side effects")
	}
}

func TestAddWeaponAtCapacity(t *testing.T) {
	rec := &portRecorder{}
	engine := NewEngine(EngineConfig{Seed: 1, Capacity: 2, Ports: rec.ports()})

	engine.AddWeapon("basic_laser")
	engine.AddWeapon("spread_shot")

	if engine.AddWeapon("chain_lightning") {
		t.Error("AddWeapon should fail when the arsenal is full")
	}
	if engine.WeaponCount() != 2 {
		t.Errorf("Expected 2 weapons, got %d", engine.WeaponCount())
	}

	// Adding an owned weapon still upgrades even at capacity.
	if !engine.AddWeapon("basic_laser") {
		t.Error("AddWeapon on an owned weapon should delegate to upgrade")
	}
	if got := engine.Weapon("basic_laser").Level; got != 2 {
		t.Errorf("Expected level 2 after add-as-upgrade, got %d", got)
	}
}

func TestUpgradeWeaponUnowned(t *testing.T) {
	engine, _ := newTestEngine(t)

	if engine.UpgradeWeapon("basic_laser") {
		t.Error("UpgradeWeapon should fail for unowned weapons")
	}
	if engine.Weapon("basic_laser") != nil {
		t.Error("Failed upgrade must not create an instance")
	}
}

func TestUpgradeWeaponMaxLevel(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("basic_laser")

	for level := 2; level <= MaxLevel; level++ {
		if !engine.UpgradeWeapon("basic_laser") {
			t.Fatalf("Upgrade to level %d should succeed", level)
		}
	}

	wi := engine.Weapon("basic_laser")
	statsBefore := wi.Stats

	// Repeated upgrades at max level are safe no-ops.
	for i := 0; i < 3; i++ {
		if engine.UpgradeWeapon("basic_laser") {
			t.Error("Upgrade past max level should fail")
		}
	}

	wi = engine.Weapon("basic_laser")
	if wi.Level != MaxLevel {
		t.Errorf("Level should stay at %d, got %d", MaxLevel, wi.Level)
	}
	if wi.Stats != statsBefore {
		t.Error("Failed upgrade must leave the instance unchanged")
	}
}

// TestUpgradeReplacesInstance verifies the upgrade builds a fresh instance
// carrying over only cooldown, orbital angle, and the area target set.
func TestUpgradeReplacesInstance(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("orbital_blades")

	old := engine.Weapon("orbital_blades")
	old.Cooldown = 0.75
	old.OrbitalAngle = 1.25
	old.areaTargets["e9"] = true
	old.hitCooldowns["e9"] = 3.0

	if !engine.UpgradeWeapon("orbital_blades") {
		t.Fatal("Upgrade failed")
	}

	next := engine.Weapon("orbital_blades")
	if next == old {
		t.Fatal("Upgrade should replace the instance, not mutate it")
	}
	if next.Level != 2 {
		t.Errorf("Expected level 2, got %d", next.Level)
	}
	if next.Cooldown != 0.75 {
		t.Errorf("Cooldown should carry over, got %v", next.Cooldown)
	}
	if next.OrbitalAngle != 1.25 {
		t.Errorf("Orbital angle should carry over, got %v", next.OrbitalAngle)
	}
	if !next.areaTargets["e9"] {
		t.Error("Area target set should carry over")
	}
	if _, ok := next.hitCooldowns["e9"]; ok {
		t.Error("Per-enemy hit cooldowns should reset on upgrade")
	}

	def, _ := engine.Catalog().Get("orbital_blades")
	if next.Stats != ComputeStats(def, 2) {
		t.Error("Stats should be recomputed for the new level")
	}
}

func TestUpgradeKeepsExistingProjectiles(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("basic_laser")

	engine.Update(0.1, 0, 0, []Enemy{enemyAt("e1", 1000, 0)})
	if engine.ProjectileCount() != 1 {
		t.Fatal("Expected one projectile in flight")
	}

	engine.UpgradeWeapon("basic_laser")
	if engine.ProjectileCount() != 1 {
		t.Error("Upgrade must keep existing projectiles alive")
	}
}
