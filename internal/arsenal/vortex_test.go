package arsenal

import (
	"math"
	"testing"
)

// shortVortex is a fast-cycling vortex definition so tests cover the full
// lifecycle in a handful of ticks.
func registerShortVortex(e *Engine) {
	e.RegisterWeapon(WeaponDefinition{
		ID:           "test_vortex",
		Name:         "Test Vortex",
		BaseDamage:   10,
		BaseFireRate: 1.0,
		Color:        "#ba68c8",
		BehaviorType: BehaviorVortex,
		Config: VortexConfig{
			MaxVortices:     1,
			Radius:          120,
			DamageRadius:    50,
			ImplosionRadius: 90,
			PullStrength:    100,
			Lifetime:        0.45,
			PlacementRange:  250,
			TickRate:        2,
		},
	})
}

func TestVortexPlacementSeeksDensity(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.AddWeapon("gravity_vortex")

	// A tight cluster and one distant straggler: the vortex drops on the
	// cluster center, the candidate closest to the most neighbors.
	enemies := []Enemy{
		enemyAt("left", 100, 0),
		enemyAt("center", 110, 0),
		enemyAt("right", 120, 0),
		enemyAt("straggler", -400, 0),
	}
	engine.Update(0.01, 0, 0, enemies)

	if got := rec.effectCount(EffectVortexSpawn); got != 1 {
		t.Fatalf("Expected 1 vortex spawn, got %d", got)
	}
	wi := engine.Weapon("gravity_vortex")
	if len(wi.Vortices) != 1 {
		t.Fatalf("Expected 1 live vortex, got %d", len(wi.Vortices))
	}
	v := wi.Vortices[0]
	if v.X != 110 || v.Y != 0 {
		t.Errorf("Vortex at (%v, %v), want cluster center (110, 0)", v.X, v.Y)
	}
}

func TestVortexPlacementFallbackWithinRange(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("gravity_vortex")

	// No enemies: random placement, but never beyond placement range.
	engine.Update(0.01, 50, 50, nil)

	wi := engine.Weapon("gravity_vortex")
	if len(wi.Vortices) != 1 {
		t.Fatalf("Expected 1 vortex, got %d", len(wi.Vortices))
	}
	v := wi.Vortices[0]
	if d := distance(50, 50, v.X, v.Y); d > 250 {
		t.Errorf("Fallback placement at distance %v exceeds placement range", d)
	}
}

func TestVortexCap(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.RegisterWeapon(WeaponDefinition{
		ID:           "rapid_vortex",
		Name:         "Rapid Vortex",
		BaseDamage:   10,
		BaseFireRate: 10,
		BehaviorType: BehaviorVortex,
		Config: VortexConfig{
			MaxVortices:    2,
			Radius:         120,
			DamageRadius:   50,
			PullStrength:   100,
			Lifetime:       100,
			PlacementRange: 250,
			TickRate:       2,
		},
	})
	engine.AddWeapon("rapid_vortex")

	for i := 0; i < 5; i++ {
		engine.Update(0.1, 0, 0, nil)
	}

	wi := engine.Weapon("rapid_vortex")
	if len(wi.Vortices) != 2 {
		t.Errorf("Expected vortex count capped at 2, got %d", len(wi.Vortices))
	}
	if got := rec.effectCount(EffectVortexSpawn); got != 2 {
		t.Errorf("Expected 2 spawn effects, got %d", got)
	}
}

// TestVortexLifecycle drives one short-lived vortex through placement,
// periodic damage, pull, and implosion, checking the implosion fires
// exactly once with the 3x burst.
func TestVortexLifecycle(t *testing.T) {
	engine, rec := newTestEngine(t)
	registerShortVortex(engine)
	engine.AddWeapon("test_vortex")

	// The vortex lands on "near" (densest candidate, scored by its one
	// neighbor). "outer" sits inside the pull radius but outside the
	// damage radius.
	enemies := []Enemy{
		enemyAt("near", 100, 0),
		enemyAt("outer", 160, 0),
	}

	// Lifetime 0.45 at dt 0.1: placed on the first update, implodes on the
	// fifth. Two further updates confirm nothing fires twice (the weapon
	// cooldown is still recharging).
	for i := 0; i < 7; i++ {
		engine.Update(0.1, 0, 0, enemies)
	}

	if got := rec.effectCount(EffectVortexImplosion); got != 1 {
		t.Fatalf("Implosion must fire exactly once, got %d", got)
	}
	if wi := engine.Weapon("test_vortex"); len(wi.Vortices) != 0 {
		t.Errorf("Imploded vortex should be removed, got %d live", len(wi.Vortices))
	}

	// Damage stream: one periodic tick on "near" (scale 2 at the center),
	// then the implosion burst on both enemies within radius 90.
	if len(rec.damages) != 3 {
		t.Fatalf("Expected 3 damage calls, got %d: %+v", len(rec.damages), rec.damages)
	}
	if d := rec.damages[0]; d.EnemyID != "near" || math.Abs(d.Amount-20) > 1e-9 {
		t.Errorf("Periodic tick = %+v, want near for 20", d)
	}
	for _, d := range rec.damages[1:] {
		if math.Abs(d.Amount-30) > 1e-9 {
			t.Errorf("Implosion damage = %v, want 30 (3x base)", d.Amount)
		}
	}
	if rec.damages[1].EnemyID != "near" || rec.damages[2].EnemyID != "outer" {
		t.Errorf("Implosion should hit both enemies, got %+v", rec.damages[1:])
	}
}

func TestVortexPullSignal(t *testing.T) {
	engine, rec := newTestEngine(t)
	registerShortVortex(engine)
	engine.AddWeapon("test_vortex")

	enemies := []Enemy{
		enemyAt("near", 100, 0),
		enemyAt("outer", 160, 0),
	}
	engine.Update(0.1, 0, 0, enemies)

	// The enemy at the vortex center gets no pull (zero direction); the
	// one 60 units out is pulled inward at half strength.
	if got := rec.effectCount(EffectVortexPull); got != 1 {
		t.Fatalf("Expected 1 pull effect, got %d", got)
	}
	for _, e := range rec.effects {
		if e.Kind != EffectVortexPull {
			continue
		}
		if e.Params["enemyId"] != "outer" {
			t.Errorf("Pull on %v, want outer", e.Params["enemyId"])
		}
		if dirX, _ := e.Params["dirX"].(float64); math.Abs(dirX-(-1)) > 1e-9 {
			t.Errorf("Pull dirX = %v, want -1 (toward the vortex)", dirX)
		}
		if s, _ := e.Params["strength"].(float64); math.Abs(s-50) > 1e-9 {
			t.Errorf("Pull strength = %v, want 50 (half strength at half radius)", s)
		}
	}
}
