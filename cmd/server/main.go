package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/robsonek/cosmic-survivors-sub000/internal/api"
	"github.com/robsonek/cosmic-survivors-sub000/internal/arena"
	"github.com/robsonek/cosmic-survivors-sub000/internal/config"
)

func main() {
	// Load .env file from parent directory
	if err := godotenv.Load("../.env"); err != nil {
		// Try current directory as fallback
		if err := godotenv.Load(".env"); err != nil {
			log.Println("💡 No .env file found, using environment variables only")
		}
	} else {
		log.Println("✅ Loaded environment from ../.env")
	}

	log.Println("🌌 ================================")
	log.Println("🌌  COSMIC SURVIVORS - ARENA")
	log.Println("🌌 ================================")

	// Load centralized configuration (SSOT - Single Source of Truth)
	appConfig := config.Load()
	arenaCfg := appConfig.Arena
	limits := appConfig.Limits
	serverCfg := appConfig.Server

	log.Printf("🎯 Config: %d TPS, %gx%g world, spawn every %gs",
		arenaCfg.TickRate, arenaCfg.WorldWidth, arenaCfg.WorldHeight, arenaCfg.SpawnInterval)
	log.Printf("🛡️ Resource limits: %d enemies, %d projectiles, %d weapon slots",
		limits.MaxEnemies, limits.MaxProjectiles, limits.WeaponCapacity)

	// Create the arena with centralized config
	a := arena.New(arena.Config{
		TickRate:       arenaCfg.TickRate,
		WorldWidth:     arenaCfg.WorldWidth,
		WorldHeight:    arenaCfg.WorldHeight,
		SpawnInterval:  arenaCfg.SpawnInterval,
		EnemyHP:        arenaCfg.EnemyHP,
		EnemySpeed:     arenaCfg.EnemySpeed,
		Seed:           arenaCfg.Seed,
		MaxEnemies:     limits.MaxEnemies,
		MaxProjectiles: limits.MaxProjectiles,
		WeaponCapacity: limits.WeaponCapacity,
	})

	// Starting loadout; players acquire the rest through the API.
	if !a.AddWeapon("basic_laser") {
		log.Println("⚠️ Failed to equip starting weapon")
	}

	// Start event log
	if serverCfg.EventLogPath != "" {
		if err := a.StartEventLog(serverCfg.EventLogPath); err != nil {
			log.Printf("⚠️ Event log disabled: %v", err)
		} else {
			log.Printf("📝 Event log: %s", serverCfg.EventLogPath)
		}
	}

	// Start debug server
	if serverCfg.DebugServer {
		if err := api.StartDebugServer(api.DefaultObservabilityConfig()); err != nil {
			log.Printf("⚠️ Debug server disabled: %v", err)
		}
	}

	server := api.NewServer(a)

	// Start simulation
	a.Start()
	log.Println("✅ Arena started")

	// Start API server in goroutine
	go func() {
		addr := ":" + strconv.Itoa(serverCfg.Port)
		if err := server.Start(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Println("✅ Server ready! Press Ctrl+C to stop.")
	<-quit

	log.Println("🛑 Shutting down...")
	server.Stop()
	a.StopEventLog()
	a.Stop()
	log.Println("👋 Goodbye!")
}
