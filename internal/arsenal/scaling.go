package arsenal

import "math"

// Weapon levels run from MinLevel to MaxLevel inclusive.
const (
	MinLevel = 1
	MaxLevel = 5

	// basePierce is the pierce budget every piercing weapon starts with
	// before the per-level bonus.
	basePierce = 3
)

// ScalingRow holds the multipliers applied to a definition to produce the
// computed stats for one level.
type ScalingRow struct {
	DamageMult           float64
	FireRateMult         float64
	ProjectileCountBonus int
	ProjectileSpeedMult  float64
	SpreadReduction      float64 // degrees subtracted from base spread
	PierceBonus          int
}

// scalingTable maps level to its multiplier row. Damage and fire-rate
// multipliers are non-decreasing across levels by construction.
var scalingTable = map[int]ScalingRow{
	1: {DamageMult: 1.0, FireRateMult: 1.0, ProjectileCountBonus: 0, ProjectileSpeedMult: 1.0, SpreadReduction: 0, PierceBonus: 0},
	2: {DamageMult: 1.25, FireRateMult: 1.1, ProjectileCountBonus: 0, ProjectileSpeedMult: 1.05, SpreadReduction: 2, PierceBonus: 0},
	3: {DamageMult: 1.5, FireRateMult: 1.2, ProjectileCountBonus: 1, ProjectileSpeedMult: 1.1, SpreadReduction: 4, PierceBonus: 1},
	4: {DamageMult: 1.8, FireRateMult: 1.35, ProjectileCountBonus: 1, ProjectileSpeedMult: 1.2, SpreadReduction: 6, PierceBonus: 1},
	5: {DamageMult: 2.2, FireRateMult: 1.5, ProjectileCountBonus: 2, ProjectileSpeedMult: 1.3, SpreadReduction: 8, PierceBonus: 2},
}

// ComputedStats are the level-scaled values a weapon instance actually
// fires with. They are a pure function of (definition, level): recomputing
// with the same inputs always yields identical output.
type ComputedStats struct {
	Damage          float64 `json:"damage"`
	FireRate        float64 `json:"fireRate"`
	ProjectileCount int     `json:"projectileCount"`
	ProjectileSpeed float64 `json:"projectileSpeed"`
	Spread          float64 `json:"spread"` // degrees
	PierceCount     int     `json:"pierceCount"`
}

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ComputeStats derives the computed stats for a definition at a level.
// An absent scaling row falls back to the level-1 row.
func ComputeStats(def WeaponDefinition, level int) ComputedStats {
	row, ok := scalingTable[ClampLevel(level)]
	if !ok {
		row = scalingTable[MinLevel]
	}

	spread := def.BaseSpread - row.SpreadReduction
	if spread < 0 {
		spread = 0
	}

	pierce := 0
	if def.Piercing {
		pierce = basePierce + row.PierceBonus
	}

	return ComputedStats{
		Damage:          math.Floor(def.BaseDamage * row.DamageMult),
		FireRate:        def.BaseFireRate * row.FireRateMult,
		ProjectileCount: def.BaseProjectileCount + row.ProjectileCountBonus,
		ProjectileSpeed: def.BaseProjectileSpeed * row.ProjectileSpeedMult,
		Spread:          spread,
		PierceCount:     pierce,
	}
}
