package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Arena.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.Arena.TickRate)
	}
	if cfg.Arena.WorldWidth != 1280 || cfg.Arena.WorldHeight != 720 {
		t.Errorf("World = %vx%v, want 1280x720", cfg.Arena.WorldWidth, cfg.Arena.WorldHeight)
	}
	if cfg.Limits.WeaponCapacity != 6 {
		t.Errorf("WeaponCapacity = %d, want 6", cfg.Limits.WeaponCapacity)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARENA_TICK_RATE", "60")
	t.Setenv("ARENA_SPAWN_INTERVAL", "0")
	t.Setenv("MAX_ENEMIES", "64")
	t.Setenv("PORT", "8080")
	t.Setenv("EVENT_LOG_DISABLED", "true")

	cfg := Load()
	if cfg.Arena.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Arena.TickRate)
	}
	if cfg.Arena.SpawnInterval != 0 {
		t.Errorf("SpawnInterval = %v, want 0", cfg.Arena.SpawnInterval)
	}
	if cfg.Limits.MaxEnemies != 64 {
		t.Errorf("MaxEnemies = %d, want 64", cfg.Limits.MaxEnemies)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.EventLogPath != "" {
		t.Errorf("EventLogPath should be disabled, got %q", cfg.Server.EventLogPath)
	}
}

func TestEnvInvalidValuesIgnored(t *testing.T) {
	t.Setenv("ARENA_TICK_RATE", "fast")
	t.Setenv("PORT", "-1")

	cfg := Load()
	if cfg.Arena.TickRate != 30 {
		t.Errorf("Invalid tick rate should fall back to 30, got %d", cfg.Arena.TickRate)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Negative port should fall back to 3000, got %d", cfg.Server.Port)
	}
}
