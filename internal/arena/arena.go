// Package arena hosts the weapon engine inside a running game world: it
// owns the player position, the enemy population, the tick loop, and the
// application of everything the engine reports through its output ports.
// The engine itself never mutates enemies; the arena buffers the port
// outputs during Update and applies them afterwards.
package arena

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
)

// MaxEffectMarkers caps the retained visual effect markers.
const MaxEffectMarkers = 256

// Config configures an arena. Zero values fall back to defaults.
type Config struct {
	TickRate       int     // simulation ticks per second
	WorldWidth     float64 // world bounds
	WorldHeight    float64
	MaxEnemies     int     // hard cap on the enemy population
	SpawnInterval  float64 // seconds between enemy spawns; 0 disables spawning
	EnemyHP        float64
	EnemySpeed     float64
	WeaponCapacity int
	MaxProjectiles int
	Seed           int64 // 0 seeds from the wall clock
}

func (c *Config) applyDefaults() {
	if c.TickRate <= 0 {
		c.TickRate = 30
	}
	if c.WorldWidth <= 0 {
		c.WorldWidth = 1280
	}
	if c.WorldHeight <= 0 {
		c.WorldHeight = 720
	}
	if c.MaxEnemies <= 0 {
		c.MaxEnemies = 128
	}
	if c.EnemyHP <= 0 {
		c.EnemyHP = 30
	}
	if c.EnemySpeed <= 0 {
		c.EnemySpeed = 60
	}
}

type pendingDamage struct {
	enemyID  string
	amount   float64
	weaponID string
}

type pendingPull struct {
	enemyID    string
	dirX, dirY float64
	strength   float64
}

type pendingSlow struct {
	enemyID  string
	factor   float64
	duration float64
}

// Arena is the mutex-guarded game runner around one weapon engine.
type Arena struct {
	mu      sync.RWMutex
	engine  *arsenal.Engine
	enemies []*Enemy
	byID    map[string]*Enemy

	playerX, playerY float64
	playerAngle      float64

	cfg     Config
	rng     *rand.Rand
	rngSeed int64

	running  bool
	ticker   *time.Ticker
	stopChan chan struct{}

	tickCount   uint64
	spawnTimer  float64
	totalDamage float64
	kills       int
	lastTick    time.Duration

	// Port outputs buffered during engine.Update, applied afterwards.
	pendingDamage []pendingDamage
	pendingPulls  []pendingPull
	pendingSlows  []pendingSlow

	// Recent effect markers retained for rendering/broadcast.
	effects []EffectMarker

	viewBuf []arsenal.Enemy

	eventLog *EventLog
	latest   *Snapshot
}

// New builds an arena and its weapon engine.
func New(cfg Config) *Arena {
	cfg.applyDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &Arena{
		cfg:      cfg,
		byID:     make(map[string]*Enemy),
		rng:      rand.New(rand.NewSource(seed)),
		rngSeed:  seed,
		stopChan: make(chan struct{}),
		playerX:  cfg.WorldWidth / 2,
		playerY:  cfg.WorldHeight / 2,
		eventLog: NewEventLog(),
	}

	a.engine = arsenal.NewEngine(arsenal.EngineConfig{
		Capacity:       cfg.WeaponCapacity,
		MaxProjectiles: cfg.MaxProjectiles,
		Seed:           seed,
		Ports: arsenal.Ports{
			OnDamage: a.bufferDamage,
			OnEffect: a.bufferEffect,
		},
	})

	a.latest = a.buildSnapshot()
	return a
}

// Start begins the tick loop.
func (a *Arena) Start() {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	a.running = true
	a.mu.Unlock()

	a.ticker = time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))

	go func() {
		for {
			select {
			case <-a.ticker.C:
				a.tick()
			case <-a.stopChan:
				return
			}
		}
	}()

	log.Printf("🌀 Arena started at %d TPS (seed %d)", a.cfg.TickRate, a.rngSeed)
}

// Stop stops the tick loop.
func (a *Arena) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false
	if a.ticker != nil {
		a.ticker.Stop()
	}
	close(a.stopChan)
	log.Println("🛑 Arena stopped")
}

// tick advances the world by one simulation step.
func (a *Arena) tick() {
	start := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.tickCount++
	dt := 1.0 / float64(a.cfg.TickRate)

	// Log tick event with RNG seed for deterministic replay
	a.eventLog.EmitSimple(EventTypeTick, a.tickCount, "",
		TickPayload{
			RNGSeed:     a.rngSeed,
			EnemyCount:  len(a.enemies),
			DeltaTimeNs: int64(dt * 1e9),
		})

	// Advance RNG seed deterministically for next tick
	a.rngSeed = a.rng.Int63()
	a.rng.Seed(a.rngSeed)

	a.movePlayer(dt)
	a.spawnEnemies(dt)

	for _, en := range a.enemies {
		en.seek(dt, a.playerX, a.playerY)
	}

	// Hand the engine a read-only view; collect its outputs into the
	// pending buffers via the ports.
	a.viewBuf = a.viewBuf[:0]
	for _, en := range a.enemies {
		a.viewBuf = append(a.viewBuf, en.view())
	}
	a.pendingDamage = a.pendingDamage[:0]
	a.pendingPulls = a.pendingPulls[:0]
	a.pendingSlows = a.pendingSlows[:0]

	a.engine.Update(dt, a.playerX, a.playerY, a.viewBuf)

	a.applyPending(dt)
	a.decayEffects(dt)

	a.latest = a.buildSnapshot()
	a.lastTick = time.Since(start)
}

// movePlayer drifts the player along a slow circle around the world center
// so orbit-style weapons have a moving owner to track.
func (a *Arena) movePlayer(dt float64) {
	const angularSpeed = 0.3 // radians per second

	a.playerAngle += angularSpeed * dt
	radius := math.Min(a.cfg.WorldWidth, a.cfg.WorldHeight) / 6
	a.playerX = a.cfg.WorldWidth/2 + math.Cos(a.playerAngle)*radius
	a.playerY = a.cfg.WorldHeight/2 + math.Sin(a.playerAngle)*radius
}

// spawnEnemies spawns on the configured interval, up to the hard cap.
func (a *Arena) spawnEnemies(dt float64) {
	if a.cfg.SpawnInterval <= 0 {
		return
	}

	a.spawnTimer += dt
	for a.spawnTimer >= a.cfg.SpawnInterval {
		a.spawnTimer -= a.cfg.SpawnInterval

		// HARD CAP: never grow past the configured population
		if len(a.enemies) >= a.cfg.MaxEnemies {
			continue
		}

		// Spawn on a ring outside the player's immediate surroundings,
		// clamped to the world bounds.
		angle := a.rng.Float64() * 2 * math.Pi
		spawnRadius := math.Max(a.cfg.WorldWidth, a.cfg.WorldHeight) / 2
		x := clamp(a.playerX+math.Cos(angle)*spawnRadius, 0, a.cfg.WorldWidth)
		y := clamp(a.playerY+math.Sin(angle)*spawnRadius, 0, a.cfg.WorldHeight)

		a.spawnEnemyAt(x, y)
	}
}

func (a *Arena) spawnEnemyAt(x, y float64) *Enemy {
	en := newEnemy(x, y, a.cfg.EnemyHP, a.cfg.EnemySpeed)
	a.enemies = append(a.enemies, en)
	a.byID[en.ID] = en

	a.eventLog.EmitSimple(EventTypeEnemySpawn, a.tickCount, "",
		EnemySpawnPayload{EnemyID: en.ID, X: x, Y: y, HP: en.HP})
	return en
}

// bufferDamage is the engine's damage port. It only records; application
// happens after Update returns.
func (a *Arena) bufferDamage(enemyID string, amount float64, weaponID string, x, y float64) {
	a.pendingDamage = append(a.pendingDamage, pendingDamage{
		enemyID:  enemyID,
		amount:   amount,
		weaponID: weaponID,
	})
}

// bufferEffect is the engine's effect port. Pull and slow signals carry
// intended enemy mutations and are buffered like damage; every kind also
// leaves a short-lived marker for rendering.
func (a *Arena) bufferEffect(kind string, x, y float64, params map[string]interface{}) {
	switch kind {
	case arsenal.EffectVortexPull:
		a.pendingPulls = append(a.pendingPulls, pendingPull{
			enemyID:  str(params["enemyId"]),
			dirX:     num(params["dirX"]),
			dirY:     num(params["dirY"]),
			strength: num(params["strength"]),
		})
	case arsenal.EffectFreezeSlow:
		a.pendingSlows = append(a.pendingSlows, pendingSlow{
			enemyID:  str(params["enemyId"]),
			factor:   num(params["factor"]),
			duration: num(params["duration"]),
		})
	case arsenal.EffectVortexImplosion:
		a.eventLog.EmitSimple(EventTypeImplosion, a.tickCount, str(params["weaponId"]),
			ImplosionPayload{WeaponID: str(params["weaponId"]), X: x, Y: y})
	}

	if len(a.effects) < MaxEffectMarkers {
		a.effects = append(a.effects, EffectMarker{Kind: kind, X: x, Y: y, TTL: 0.5})
	}
}

// applyPending applies the buffered port outputs to the enemy population:
// damage first, then pulls and slows on the survivors, then one removal
// sweep for the dead.
func (a *Arena) applyPending(dt float64) {
	for _, d := range a.pendingDamage {
		en, ok := a.byID[d.enemyID]
		if !ok || !en.Active {
			continue
		}

		en.HP -= d.amount
		a.totalDamage += d.amount

		a.eventLog.EmitSimple(EventTypeDamage, a.tickCount, d.weaponID,
			DamagePayload{WeaponID: d.weaponID, EnemyID: d.enemyID, Amount: d.amount, EnemyHP: en.HP})

		if en.HP <= 0 {
			en.Active = false
			a.kills++
			a.eventLog.EmitSimple(EventTypeEnemyDeath, a.tickCount, d.weaponID,
				EnemyDeathPayload{EnemyID: en.ID, WeaponID: d.weaponID, Kills: a.kills})
		}
	}

	for _, p := range a.pendingPulls {
		if en, ok := a.byID[p.enemyID]; ok && en.Active {
			en.applyPull(p.dirX, p.dirY, p.strength, dt)
		}
	}

	for _, s := range a.pendingSlows {
		if en, ok := a.byID[s.enemyID]; ok && en.Active {
			en.applySlow(s.factor, s.duration)
		}
	}

	// Zero-allocation in-place removal of the dead
	n := 0
	for _, en := range a.enemies {
		if en.Active {
			a.enemies[n] = en
			n++
		} else {
			delete(a.byID, en.ID)
		}
	}
	a.enemies = a.enemies[:n]
}

func (a *Arena) decayEffects(dt float64) {
	n := 0
	for i := range a.effects {
		a.effects[i].TTL -= dt
		if a.effects[i].TTL > 0 {
			a.effects[n] = a.effects[i]
			n++
		}
	}
	a.effects = a.effects[:n]
}

// AddWeapon acquires a weapon (or upgrades an owned one).
func (a *Arena) AddWeapon(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.engine.AddWeapon(id) {
		return false
	}
	level := a.engine.Weapon(id).Level
	a.eventLog.EmitSimple(EventTypeWeaponAdd, a.tickCount, id, WeaponPayload{WeaponID: id, Level: level})
	log.Printf("🔫 Weapon added: %s (level %d)", id, level)
	return true
}

// UpgradeWeapon raises an owned weapon one level.
func (a *Arena) UpgradeWeapon(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.engine.UpgradeWeapon(id) {
		return false
	}
	level := a.engine.Weapon(id).Level
	a.eventLog.EmitSimple(EventTypeWeaponUpgrade, a.tickCount, id, WeaponPayload{WeaponID: id, Level: level})
	log.Printf("⬆️ Weapon upgraded: %s -> level %d", id, level)
	return true
}

// RemoveWeapon drops a weapon and its projectiles.
func (a *Arena) RemoveWeapon(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.engine.RemoveWeapon(id) {
		return false
	}
	a.eventLog.EmitSimple(EventTypeWeaponRemove, a.tickCount, id, WeaponPayload{WeaponID: id})
	log.Printf("🗑️ Weapon removed: %s", id)
	return true
}

// RegisterWeapon adds or replaces a catalog definition (evolved weapons).
func (a *Arena) RegisterWeapon(def arsenal.WeaponDefinition) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.engine.RegisterWeapon(def)
	a.eventLog.EmitSimple(EventTypeWeaponRegister, a.tickCount, def.ID, WeaponPayload{WeaponID: def.ID})
	log.Printf("📖 Weapon registered: %s (%s)", def.ID, def.BehaviorType)
}

// CatalogDefinitions returns every registered weapon definition.
func (a *Arena) CatalogDefinitions() []arsenal.WeaponDefinition {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine.Catalog().All()
}

// StartEventLog initializes the event logging system.
func (a *Arena) StartEventLog(filePath string) error {
	return a.eventLog.Start(filePath)
}

// StopEventLog gracefully stops the event logging system.
func (a *Arena) StopEventLog() {
	a.eventLog.Stop()
}

// EventLogStats returns event log statistics for monitoring.
func (a *Arena) EventLogStats() map[string]interface{} {
	return a.eventLog.GetStats()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func num(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
