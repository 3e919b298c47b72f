package arsenal

import (
	"math"
	"testing"
)

// portRecorder captures everything the engine pushes through its output
// ports so tests can assert on damage and effect streams.
type portRecorder struct {
	damages []damageCall
	effects []effectCall
}

type damageCall struct {
	EnemyID  string
	Amount   float64
	WeaponID string
	X, Y     float64
}

type effectCall struct {
	Kind   string
	X, Y   float64
	Params map[string]interface{}
}

func (r *portRecorder) ports() Ports {
	return Ports{
		OnDamage: func(enemyID string, amount float64, weaponID string, x, y float64) {
			r.damages = append(r.damages, damageCall{enemyID, amount, weaponID, x, y})
		},
		OnEffect: func(kind string, x, y float64, params map[string]interface{}) {
			r.effects = append(r.effects, effectCall{kind, x, y, params})
		},
	}
}

func (r *portRecorder) effectCount(kind string) int {
	count := 0
	for _, e := range r.effects {
		if e.Kind == kind {
			count++
		}
	}
	return count
}

func (r *portRecorder) reset() {
	r.damages = r.damages[:0]
	r.effects = r.effects[:0]
}

func newTestEngine(t *testing.T) (*Engine, *portRecorder) {
	t.Helper()
	rec := &portRecorder{}
	engine := NewEngine(EngineConfig{Seed: 42, Ports: rec.ports()})
	return engine, rec
}

func enemyAt(id string, x, y float64) Enemy {
	return Enemy{ID: id, X: x, Y: y, Health: 100, Active: true}
}

func TestNewEngineDefaults(t *testing.T) {
	engine, _ := newTestEngine(t)
	if engine == nil {
		t.Fatal("NewEngine returned nil")
	}
	if engine.Catalog().Len() != 8 {
		t.Errorf("Expected 8 built-in weapons, got %d", engine.Catalog().Len())
	}
	if engine.WeaponCount() != 0 {
		t.Error("New engine should own no weapons")
	}
}

func TestUpdateWithNilPorts(t *testing.T) {
	// Ports are optional; the engine must keep simulating without them.
	engine := NewEngine(EngineConfig{Seed: 1})
	engine.AddWeapon("basic_laser")

	enemies := []Enemy{enemyAt("e1", 10, 0)}
	for i := 0; i < 10; i++ {
		engine.Update(0.1, 0, 0, enemies)
	}
}

// TestBasicLaserSingleProjectile verifies the example scenario: level 1
// basic_laser, one enemy at distance 100 due east, exactly one projectile
// with velocity (computedProjectileSpeed, 0).
func TestBasicLaserSingleProjectile(t *testing.T) {
	engine, _ := newTestEngine(t)
	if !engine.AddWeapon("basic_laser") {
		t.Fatal("AddWeapon failed")
	}

	enemies := []Enemy{enemyAt("e1", 100, 0)}
	engine.Update(1.0/60, 0, 0, enemies)

	projectiles := engine.ProjectileStates()
	if len(projectiles) != 1 {
		t.Fatalf("Expected 1 projectile, got %d", len(projectiles))
	}

	def, _ := engine.Catalog().Get("basic_laser")
	wantSpeed := ComputeStats(def, 1).ProjectileSpeed
	p := projectiles[0]
	if p.VX != wantSpeed || p.VY != 0 {
		t.Errorf("Expected velocity (%v, 0), got (%v, %v)", wantSpeed, p.VX, p.VY)
	}
}

func TestRemoveWeaponPurgesProjectiles(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("basic_laser")

	// Enemy far enough east that nothing collides while we accumulate
	// three projectiles in flight (fire rate 2/s).
	enemies := []Enemy{enemyAt("e1", 1000, 0)}
	for i := 0; i < 3; i++ {
		engine.Update(0.5, 0, 0, enemies)
	}
	if got := engine.ProjectileCount(); got != 3 {
		t.Fatalf("Expected 3 projectiles in flight, got %d", got)
	}

	if !engine.RemoveWeapon("basic_laser") {
		t.Fatal("RemoveWeapon returned false for owned weapon")
	}
	if got := engine.ProjectileCount(); got != 0 {
		t.Errorf("Expected 0 projectiles after removal, got %d", got)
	}

	if engine.RemoveWeapon("basic_laser") {
		t.Error("RemoveWeapon should fail for unowned weapon")
	}
}

func TestTargetingMissIsNoop(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.AddWeapon("basic_laser")

	// No enemies: the weapon holds fire and the cooldown stays ready.
	engine.Update(0.1, 0, 0, nil)
	if engine.ProjectileCount() != 0 {
		t.Fatal("Standard weapon should not fire without a target")
	}
	if len(rec.damages) != 0 {
		t.Fatal("No damage should be applied without targets")
	}

	// The miss self-corrects: the weapon fires as soon as a target shows.
	engine.Update(0.1, 0, 0, []Enemy{enemyAt("e1", 50, 0)})
	if engine.ProjectileCount() != 1 {
		t.Error("Weapon should fire on the first tick a target exists")
	}
}

func TestUpdateFiringPrecedesAdvancement(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("basic_laser")

	// A projectile spawned this frame is advanced this frame: it must be
	// one frame young, i.e. displaced by exactly speed*dt from the owner.
	dt := 0.1
	engine.Update(dt, 0, 0, []Enemy{enemyAt("e1", 1000, 0)})

	p := engine.ProjectileStates()[0]
	def, _ := engine.Catalog().Get("basic_laser")
	want := ComputeStats(def, 1).ProjectileSpeed * dt
	if math.Abs(p.X-want) > 1e-9 {
		t.Errorf("Expected projectile at x=%v after spawn tick, got %v", want, p.X)
	}
}

func TestEngineReset(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.AddWeapon("basic_laser")
	engine.AddWeapon("gravity_vortex")
	for i := 0; i < 5; i++ {
		engine.Update(0.1, 0, 0, []Enemy{enemyAt("e1", 500, 0)})
	}

	engine.Reset()

	if engine.WeaponCount() != 0 {
		t.Error("Reset should drop all weapons")
	}
	if engine.ProjectileCount() != 0 {
		t.Error("Reset should drop all projectiles")
	}
	if engine.Now() != 0 {
		t.Error("Reset should rewind simulation time")
	}
}

func TestRegisterWeaponEvolved(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.RegisterWeapon(WeaponDefinition{
		ID:                  "evolved_laser",
		Name:                "Evolved Laser",
		BaseDamage:          30,
		BaseFireRate:        3,
		BaseProjectileSpeed: 500,
		BaseProjectileCount: 2,
		Piercing:            true,
		BehaviorType:        BehaviorStandard,
		Config:              StandardConfig{},
	})

	if !engine.AddWeapon("evolved_laser") {
		t.Fatal("AddWeapon should accept a dynamically registered weapon")
	}
	wi := engine.Weapon("evolved_laser")
	if wi.Stats.PierceCount != 3 {
		t.Errorf("Expected pierce count 3 at level 1, got %d", wi.Stats.PierceCount)
	}
}
