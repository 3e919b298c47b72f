package arena

import (
	"time"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
)

// Snapshot is an immutable copy of the arena state, produced once per tick
// under the write lock and handed out without it. Consumers (API, render,
// websocket broadcast) may hold it indefinitely.
type Snapshot struct {
	Tick        uint64  `json:"tick"`
	SimTime     float64 `json:"simTime"`
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	Player      PlayerSnapshot            `json:"player"`
	Enemies     []EnemySnapshot           `json:"enemies"`
	Projectiles []arsenal.ProjectileState `json:"projectiles"`
	Vortices    []arsenal.VortexState     `json:"vortices"`
	Weapons     []arsenal.WeaponState     `json:"weapons"`
	Effects     []EffectMarker            `json:"effects"`

	Kills       int     `json:"kills"`
	TotalDamage float64 `json:"totalDamage"`
}

// PlayerSnapshot is the player's position.
type PlayerSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EnemySnapshot is an immutable copy of one enemy.
type EnemySnapshot struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	HP     float64 `json:"hp"`
	MaxHP  float64 `json:"maxHp"`
	Slowed bool    `json:"slowed"`
}

// EffectMarker is a short-lived visual cue emitted through the effect port.
type EffectMarker struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	TTL  float64 `json:"ttl"`
}

// buildSnapshot copies the live state. Caller must hold the write lock.
func (a *Arena) buildSnapshot() *Snapshot {
	snap := &Snapshot{
		Tick:        a.tickCount,
		SimTime:     a.engine.Now(),
		WorldWidth:  a.cfg.WorldWidth,
		WorldHeight: a.cfg.WorldHeight,
		Player:      PlayerSnapshot{X: a.playerX, Y: a.playerY},
		Enemies:     make([]EnemySnapshot, 0, len(a.enemies)),
		Projectiles: a.engine.ProjectileStates(),
		Vortices:    a.engine.VortexStates(),
		Weapons:     a.engine.WeaponStates(),
		Effects:     append([]EffectMarker(nil), a.effects...),
		Kills:       a.kills,
		TotalDamage: a.totalDamage,
	}

	for _, en := range a.enemies {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:     en.ID,
			X:      en.X,
			Y:      en.Y,
			HP:     en.HP,
			MaxHP:  en.MaxHP,
			Slowed: en.SlowRemaining > 0,
		})
	}
	return snap
}

// GetSnapshot returns the latest published snapshot.
func (a *Arena) GetSnapshot() *Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latest
}

// Stats summarizes arena health for the stats endpoint and metrics poller.
type Stats struct {
	Tick           uint64  `json:"tick"`
	SimTime        float64 `json:"simTime"`
	Enemies        int     `json:"enemies"`
	Projectiles    int     `json:"projectiles"`
	Weapons        int     `json:"weapons"`
	Kills          int     `json:"kills"`
	TotalDamage    float64 `json:"totalDamage"`
	TickDurationMs float64 `json:"tickDurationMs"`
	EventsTotal    uint64  `json:"eventsTotal"`
	EventsDropped  uint64  `json:"eventsDropped"`
	Seed           int64   `json:"seed"`
}

// GetStats returns current arena statistics.
func (a *Arena) GetStats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Stats{
		Tick:           a.tickCount,
		SimTime:        a.engine.Now(),
		Enemies:        len(a.enemies),
		Projectiles:    a.engine.ProjectileCount(),
		Weapons:        a.engine.WeaponCount(),
		Kills:          a.kills,
		TotalDamage:    a.totalDamage,
		TickDurationMs: float64(a.lastTick) / float64(time.Millisecond),
		EventsTotal:    a.eventLog.GetTotalCount(),
		EventsDropped:  a.eventLog.GetDroppedCount(),
		Seed:           a.engine.Seed(),
	}
}
