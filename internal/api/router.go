package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arena"
	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
)

// ArenaInterface defines the arena methods used by the API.
// This interface enables mocking for tests without spinning up the tick loop.
// Keep this minimal - only include methods the API layer actually calls.
type ArenaInterface interface {
	// GetSnapshot returns the latest immutable snapshot
	GetSnapshot() *arena.Snapshot
	// GetStats returns arena statistics
	GetStats() arena.Stats
	// AddWeapon acquires a weapon (or upgrades an owned one)
	AddWeapon(id string) bool
	// UpgradeWeapon raises an owned weapon one level
	UpgradeWeapon(id string) bool
	// RemoveWeapon drops a weapon and its projectiles
	RemoveWeapon(id string) bool
	// RegisterWeapon adds or replaces a catalog definition
	RegisterWeapon(def arsenal.WeaponDefinition)
	// CatalogDefinitions lists every registered weapon definition
	CatalogDefinitions() []arsenal.WeaponDefinition
	// EventLogStats returns event log statistics
	EventLogStats() map[string]interface{}
}

// RouterConfig contains all dependencies needed to construct the HTTP router.
// This struct is designed for dependency injection and testability.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{
//	    Arena: a,
//	    RateLimitConfig: &api.RateLimitConfig{
//	        RequestsPerSecond: 1000, // High limit for tests
//	        Burst:             1000,
//	    },
//	}
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Arena is the simulation runner (required)
	Arena ArenaInterface

	// RateLimiter is an optional pre-configured rate limiter.
	// If nil, a new one will be created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is optional configuration for the rate limiter.
	// Only used if RateLimiter is nil. If both are nil, uses DefaultRateLimitConfig.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins is an optional list of allowed CORS origins.
	// If nil, uses the default origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for benchmarks).
	DisableLogging bool
}

// routerHandlers holds the handler dependencies for the router.
type routerHandlers struct {
	arena ArenaInterface
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function is PURE - it has no side effects:
//   - No goroutines are started
//   - No network listeners are opened
//   - No background workers are launched
//
// This makes it safe to use in tests with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware - Order matters!
	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	// Rate limiting (BEFORE CORS to reject early and save CPU)
	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	// CORS configuration
	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	h := &routerHandlers{arena: cfg.Arena}

	r.Route("/api", func(r chi.Router) {
		// Arena state
		r.Get("/state", h.handleGetState)
		r.Get("/stats", h.handleGetStats)
		r.Get("/frame", h.handleGetFrame)

		// Weapon catalog and management
		r.Get("/weapons", h.handleGetWeapons)
		r.Post("/weapon/add", h.handleWeaponAdd)
		r.Post("/weapon/upgrade", h.handleWeaponUpgrade)
		r.Post("/weapon/remove", h.handleWeaponRemove)
		r.Post("/weapon/register", h.handleWeaponRegister)
	})

	return r
}
