// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for all simulation and server settings.
//
// IMPORTANT: When changing values, only modify this file.
// All other parts of the codebase should reference these values.
package config

import (
	"os"
	"strconv"
)

// =============================================================================
// ARENA CONFIGURATION
// =============================================================================

// ArenaConfig holds simulation world settings.
type ArenaConfig struct {
	TickRate      int     // Simulation ticks per second
	WorldWidth    float64 // World width in units
	WorldHeight   float64 // World height in units
	SpawnInterval float64 // Seconds between enemy spawns (0 disables)
	EnemyHP       float64 // Hit points per spawned enemy
	EnemySpeed    float64 // Enemy movement speed in units/second
	Seed          int64   // RNG seed (0 = time-based)
}

// DefaultArena returns the default arena configuration.
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		TickRate:      30,
		WorldWidth:    1280,
		WorldHeight:   720,
		SpawnInterval: 1.5,
		EnemyHP:       30,
		EnemySpeed:    60,
	}
}

// ArenaFromEnv returns arena configuration with environment variable overrides.
// Environment variables take precedence over defaults.
func ArenaFromEnv() ArenaConfig {
	cfg := DefaultArena()

	if tr := getEnvInt("ARENA_TICK_RATE", 0); tr > 0 {
		cfg.TickRate = tr
	}
	if w := getEnvFloat("ARENA_WIDTH", 0); w > 0 {
		cfg.WorldWidth = w
	}
	if h := getEnvFloat("ARENA_HEIGHT", 0); h > 0 {
		cfg.WorldHeight = h
	}
	if si := getEnvFloat("ARENA_SPAWN_INTERVAL", -1); si >= 0 {
		cfg.SpawnInterval = si
	}
	if hp := getEnvFloat("ARENA_ENEMY_HP", 0); hp > 0 {
		cfg.EnemyHP = hp
	}
	if sp := getEnvFloat("ARENA_ENEMY_SPEED", 0); sp > 0 {
		cfg.EnemySpeed = sp
	}
	if s := getEnvInt("ARENA_SEED", 0); s != 0 {
		cfg.Seed = int64(s)
	}

	return cfg
}

// =============================================================================
// RESOURCE LIMITS
// =============================================================================

// ResourceLimits controls DoS protection and performance limits.
type ResourceLimits struct {
	MaxEnemies      int // Hard cap on live enemies
	MaxProjectiles  int // Hard cap on live projectiles
	WeaponCapacity  int // Weapon slots in the arsenal
	MaxEffectMarker int // Per-snapshot visual effect marker limit
}

// DefaultLimits returns the default resource limits.
func DefaultLimits() ResourceLimits {
	return ResourceLimits{
		MaxEnemies:      128,
		MaxProjectiles:  200,
		WeaponCapacity:  6,
		MaxEffectMarker: 256,
	}
}

// LimitsFromEnv returns resource limits with environment variable overrides.
func LimitsFromEnv() ResourceLimits {
	cfg := DefaultLimits()

	if me := getEnvInt("MAX_ENEMIES", 0); me > 0 {
		cfg.MaxEnemies = me
	}
	if mp := getEnvInt("MAX_PROJECTILES", 0); mp > 0 {
		cfg.MaxProjectiles = mp
	}
	if wc := getEnvInt("WEAPON_CAPACITY", 0); wc > 0 {
		cfg.WeaponCapacity = wc
	}

	return cfg
}

// =============================================================================
// SERVER CONFIGURATION
// =============================================================================

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int
	EventLogPath string // JSONL event log destination ("" disables)
	DebugServer  bool   // Serve pprof/metrics on localhost:6060
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Port:         3000,
		EventLogPath: "events.jsonl",
		DebugServer:  true,
	}
}

// ServerFromEnv returns server configuration with environment variable overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()

	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if path := os.Getenv("EVENT_LOG_PATH"); path != "" {
		cfg.EventLogPath = path
	}
	if os.Getenv("EVENT_LOG_DISABLED") == "true" {
		cfg.EventLogPath = ""
	}
	if os.Getenv("DEBUG_SERVER_DISABLED") == "true" {
		cfg.DebugServer = false
	}

	return cfg
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Arena  ArenaConfig
	Limits ResourceLimits
	Server ServerConfig
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	return AppConfig{
		Arena:  ArenaFromEnv(),
		Limits: LimitsFromEnv(),
		Server: ServerFromEnv(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
