package arena

import (
	"encoding/json"
	"time"
)

// EventType enum for event classification
type EventType uint8

const (
	EventTypeUnknown EventType = iota
	EventTypeTick              // Tick boundary with RNG seed
	EventTypeWeaponAdd
	EventTypeWeaponUpgrade
	EventTypeWeaponRemove
	EventTypeWeaponRegister
	EventTypeDamage
	EventTypeEnemySpawn
	EventTypeEnemyDeath
	EventTypeImplosion
)

// EventVersion for backwards compatibility in replay
const EventVersion uint8 = 1

// Event is the core event structure for the event log
type Event struct {
	Version   uint8     `json:"version"`   // Schema version
	Type      EventType `json:"type"`      // Event type
	Timestamp int64     `json:"timestamp"` // Unix nano
	Sequence  uint64    `json:"sequence"`  // Monotonic sequence
	TickNum   uint64    `json:"tickNum"`   // Simulation tick this occurred in
	Source    string    `json:"source"`    // Source weapon id (for rate limiting)
	Payload   []byte    `json:"payload"`   // JSON-encoded payload
}

// String returns human-readable event type
func (t EventType) String() string {
	switch t {
	case EventTypeTick:
		return "tick"
	case EventTypeWeaponAdd:
		return "weapon_add"
	case EventTypeWeaponUpgrade:
		return "weapon_upgrade"
	case EventTypeWeaponRemove:
		return "weapon_remove"
	case EventTypeWeaponRegister:
		return "weapon_register"
	case EventTypeDamage:
		return "damage"
	case EventTypeEnemySpawn:
		return "enemy_spawn"
	case EventTypeEnemyDeath:
		return "enemy_death"
	case EventTypeImplosion:
		return "implosion"
	default:
		return "unknown"
	}
}

// Typed payloads for different event types

// TickPayload contains tick boundary information for replay
type TickPayload struct {
	RNGSeed     int64 `json:"rngSeed"`
	EnemyCount  int   `json:"enemyCount"`
	DeltaTimeNs int64 `json:"deltaTimeNs"`
}

// WeaponPayload contains weapon lifecycle event details
type WeaponPayload struct {
	WeaponID string `json:"weaponId"`
	Level    int    `json:"level,omitempty"`
}

// DamagePayload contains damage event details
type DamagePayload struct {
	WeaponID string  `json:"weaponId"`
	EnemyID  string  `json:"enemyId"`
	Amount   float64 `json:"amount"`
	EnemyHP  float64 `json:"enemyHp"`
}

// EnemySpawnPayload contains enemy spawn details
type EnemySpawnPayload struct {
	EnemyID string  `json:"enemyId"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	HP      float64 `json:"hp"`
}

// EnemyDeathPayload contains enemy death details
type EnemyDeathPayload struct {
	EnemyID  string `json:"enemyId"`
	WeaponID string `json:"weaponId"` // weapon that landed the killing blow
	Kills    int    `json:"kills"`
}

// ImplosionPayload contains vortex implosion details
type ImplosionPayload struct {
	WeaponID string  `json:"weaponId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// EncodePayload marshals a payload to JSON bytes
func EncodePayload(payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return data
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, tickNum uint64, source string, payload interface{}) Event {
	return Event{
		Version:   EventVersion,
		Type:      eventType,
		Timestamp: time.Now().UnixNano(),
		TickNum:   tickNum,
		Source:    source,
		Payload:   EncodePayload(payload),
	}
}
