package arsenal

import (
	"math/rand"
	"time"
)

// EngineConfig configures a new engine. Zero values fall back to sane
// defaults; a zero Seed seeds from the wall clock (tests pass a fixed
// seed for determinism).
type EngineConfig struct {
	Catalog        *Catalog
	Capacity       int
	MaxProjectiles int
	Seed           int64
	Ports          Ports
}

// Engine is the weapon simulation. It is explicitly constructed and owned
// by the caller — no singletons — and is single-threaded by contract: all
// state is mutated only from Update and the weapon-management calls, and
// every operation completes synchronously within its call.
type Engine struct {
	catalog     *Catalog
	arsenal     *Arsenal
	projectiles []*Projectile
	ports       Ports

	// now is accumulated simulation time. All periodic-damage gating uses
	// it instead of the wall clock so replays and tests are deterministic.
	now float64

	rng              *rand.Rand
	seed             int64
	maxProjectiles   int
	nextProjectileID uint64
}

// NewEngine builds an engine around the given catalog and ports.
func NewEngine(cfg EngineConfig) *Engine {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	maxProjectiles := cfg.MaxProjectiles
	if maxProjectiles <= 0 {
		maxProjectiles = DefaultMaxProjectiles
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		catalog:        catalog,
		arsenal:        newArsenal(catalog, cfg.Capacity),
		projectiles:    make([]*Projectile, 0, maxProjectiles),
		ports:          cfg.Ports,
		rng:            rand.New(rand.NewSource(seed)),
		seed:           seed,
		maxProjectiles: maxProjectiles,
	}
}

// Update advances the simulation by dt seconds. Ordering within a frame is
// fixed and significant: cooldowns decrement and firing dispatches before
// projectile advancement, so newly spawned projectiles are one frame young
// on the frame they are created.
func (e *Engine) Update(dt, ownerX, ownerY float64, enemies []Enemy) {
	e.now += dt

	e.arsenal.each(func(wi *WeaponInstance) {
		wi.Cooldown -= dt
		if wi.Cooldown < 0 {
			wi.Cooldown = 0
		}
		if wi.Cooldown == 0 && e.fire(wi, ownerX, ownerY, enemies) {
			if wi.Stats.FireRate > 0 {
				wi.Cooldown = 1 / wi.Stats.FireRate
			}
		}
	})

	// Continuous per-tick behavior updates.
	e.arsenal.each(func(wi *WeaponInstance) {
		switch cfg := wi.Def.Config.(type) {
		case OrbitalConfig:
			wi.OrbitalAngle += cfg.OrbitSpeed * dt
		case VortexConfig:
			e.tickVortices(wi, dt, enemies)
		}
	})

	e.advanceProjectiles(dt, ownerX, ownerY, enemies)
}

// AddWeapon acquires the weapon at level 1, or upgrades it when already
// owned. Returns false for unknown ids or a full arsenal.
func (e *Engine) AddWeapon(id string) bool {
	return e.arsenal.Add(id)
}

// UpgradeWeapon raises the weapon one level. Returns false if not owned
// or already at max level; existing projectiles keep flying with their
// spawn-time stats.
func (e *Engine) UpgradeWeapon(id string) bool {
	return e.arsenal.Upgrade(id)
}

// RemoveWeapon deletes the weapon and immediately purges all of its live
// projectiles, regardless of remaining lifetime.
func (e *Engine) RemoveWeapon(id string) bool {
	if !e.arsenal.Remove(id) {
		return false
	}
	e.purgeProjectiles(id)
	return true
}

// RegisterWeapon adds or replaces a catalog definition. Used by the
// external upgrade/evolution systems for dynamically evolved weapons.
func (e *Engine) RegisterWeapon(def WeaponDefinition) {
	e.catalog.Register(def)
}

// Weapon returns the live instance for id, or nil. The returned pointer
// is only valid until the next Update.
func (e *Engine) Weapon(id string) *WeaponInstance {
	return e.arsenal.Get(id)
}

// WeaponCount returns how many weapons are owned.
func (e *Engine) WeaponCount() int { return e.arsenal.Count() }

// ProjectileCount returns the number of live projectiles.
func (e *Engine) ProjectileCount() int { return len(e.projectiles) }

// Catalog returns the engine's definition registry.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Now returns accumulated simulation time in seconds.
func (e *Engine) Now() float64 { return e.now }

// Seed returns the RNG seed the engine was built with.
func (e *Engine) Seed() int64 { return e.seed }

// Reset drops all weapons and projectiles and rewinds simulation time,
// reseeding the RNG for a reproducible fresh run.
func (e *Engine) Reset() {
	e.arsenal.reset()
	e.projectiles = e.projectiles[:0]
	e.now = 0
	e.nextProjectileID = 0
	e.rng = rand.New(rand.NewSource(e.seed))
}
