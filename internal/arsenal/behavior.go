package arsenal

import (
	"math"
	"sort"
)

// standardSpreadStep is the fixed angular gap between projectiles of a
// multi-shot standard weapon (radians).
const standardSpreadStep = 0.105 // ~6 degrees

// fire dispatches the weapon's behavior. It returns true when the weapon
// actually fired this tick; a targeting miss is a defined no-op and leaves
// the cooldown at zero so the weapon retries next tick.
func (e *Engine) fire(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	switch wi.Def.BehaviorType {
	case BehaviorStandard:
		return e.fireStandard(wi, ownerX, ownerY, enemies)
	case BehaviorSpread:
		return e.fireSpread(wi, ownerX, ownerY, enemies)
	case BehaviorHoming:
		return e.fireHoming(wi, ownerX, ownerY, enemies)
	case BehaviorOrbital:
		return e.fireOrbital(wi, ownerX, ownerY)
	case BehaviorChain:
		return e.fireChain(wi, ownerX, ownerY, enemies)
	case BehaviorArea:
		return e.fireArea(wi, ownerX, ownerY, enemies)
	case BehaviorBeam:
		return e.fireBeam(wi, ownerX, ownerY, enemies)
	case BehaviorVortex:
		return e.fireVortex(wi, ownerX, ownerY, enemies)
	}
	return false
}

// fireStandard aims at the closest enemy and spawns the computed number of
// straight-line projectiles, evenly stepped around the aim angle. No-op
// when no target exists.
func (e *Engine) fireStandard(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	target := Closest(ownerX, ownerY, enemies)
	if target == nil {
		return false
	}

	aim := math.Atan2(target.Y-ownerY, target.X-ownerX)
	count := wi.Stats.ProjectileCount
	fired := false
	for i := 0; i < count; i++ {
		angle := aim + (float64(i)-float64(count-1)/2)*standardSpreadStep
		if e.spawnStraight(wi, ownerX, ownerY, angle) {
			fired = true
		}
	}
	if fired {
		e.muzzleFlash(wi, ownerX, ownerY, aim)
	}
	return fired
}

// fireSpread distributes the computed projectile count evenly across the
// computed spread, centered on the aim angle. With no enemies it still
// fires defensively at angle 0.
func (e *Engine) fireSpread(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	aim := 0.0
	if target := Closest(ownerX, ownerY, enemies); target != nil {
		aim = math.Atan2(target.Y-ownerY, target.X-ownerX)
	}

	count := wi.Stats.ProjectileCount
	spread := wi.Stats.Spread * math.Pi / 180

	fired := false
	for i := 0; i < count; i++ {
		angle := aim
		if count > 1 {
			angle = aim - spread/2 + spread*float64(i)/float64(count-1)
		}
		if e.spawnStraight(wi, ownerX, ownerY, angle) {
			fired = true
		}
	}
	if fired {
		e.muzzleFlash(wi, ownerX, ownerY, aim)
	}
	return fired
}

// fireHoming launches the computed count of homing projectiles at the
// nearest distinct enemies, assigning targets round-robin when there are
// fewer enemies than projectiles.
func (e *Engine) fireHoming(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	cfg, ok := wi.Def.Config.(HomingConfig)
	if !ok {
		return false
	}

	// Nearest-first index over targetable enemies.
	candidates := make([]*Enemy, 0, len(enemies))
	for i := range enemies {
		if enemies[i].Targetable() {
			candidates = append(candidates, &enemies[i])
		}
	}
	if len(candidates) == 0 {
		return false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return distance(ownerX, ownerY, candidates[i].X, candidates[i].Y) <
			distance(ownerX, ownerY, candidates[j].X, candidates[j].Y)
	})

	count := wi.Stats.ProjectileCount
	fired := false
	for i := 0; i < count; i++ {
		target := candidates[i%len(candidates)]
		angle := math.Atan2(target.Y-ownerY, target.X-ownerX)
		ok := e.spawnProjectile(&Projectile{
			WeaponID:       wi.Def.ID,
			X:              ownerX,
			Y:              ownerY,
			VX:             math.Cos(angle) * wi.Stats.ProjectileSpeed,
			VY:             math.Sin(angle) * wi.Stats.ProjectileSpeed,
			Damage:         wi.Stats.Damage,
			PierceBudget:   wi.Stats.PierceCount,
			Remaining:      projectileLifetime,
			HomingTargetID: target.ID,
			TurnSpeed:      cfg.TurnSpeed,
		})
		if ok {
			fired = true
		}
	}
	if fired {
		e.muzzleFlash(wi, ownerX, ownerY, 0)
	}
	return fired
}

// fireOrbital (re)spawns the weapon's ring of persistent orbitals when any
// have been lost to pierce exhaustion. The ring size is the computed
// projectile count capped at MaxOrbitals; projectiles are spaced evenly
// and live forever, relying on pierce-based re-hit suppression rather than
// a cooldown. Respawning starts every orbital with a fresh hit history.
func (e *Engine) fireOrbital(wi *WeaponInstance, ownerX, ownerY float64) bool {
	cfg, ok := wi.Def.Config.(OrbitalConfig)
	if !ok {
		return false
	}

	desired := wi.Stats.ProjectileCount
	if cfg.MaxOrbitals > 0 && desired > cfg.MaxOrbitals {
		desired = cfg.MaxOrbitals
	}
	if desired <= 0 || e.orbitalCount(wi.Def.ID) >= desired {
		return false
	}

	e.removeOrbitals(wi.Def.ID)

	step := 2 * math.Pi / float64(desired)
	for i := 0; i < desired; i++ {
		angle := wi.OrbitalAngle + float64(i)*step
		e.spawnProjectile(&Projectile{
			WeaponID:     wi.Def.ID,
			X:            ownerX + math.Cos(angle)*cfg.OrbitRadius,
			Y:            ownerY + math.Sin(angle)*cfg.OrbitRadius,
			Damage:       wi.Stats.Damage,
			PierceBudget: wi.Stats.PierceCount,
			Remaining:    math.Inf(1),
			Orbital:      true,
			OrbitAngle:   angle,
			OrbitRadius:  cfg.OrbitRadius,
			OrbitSpeed:   cfg.OrbitSpeed,
		})
	}

	e.effect(EffectOrbitalSpawn, ownerX, ownerY, map[string]interface{}{
		"weaponId": wi.Def.ID,
		"count":    desired,
		"radius":   cfg.OrbitRadius,
	})
	return true
}

func (e *Engine) spawnStraight(wi *WeaponInstance, x, y, angle float64) bool {
	return e.spawnProjectile(&Projectile{
		WeaponID:     wi.Def.ID,
		X:            x,
		Y:            y,
		VX:           math.Cos(angle) * wi.Stats.ProjectileSpeed,
		VY:           math.Sin(angle) * wi.Stats.ProjectileSpeed,
		Damage:       wi.Stats.Damage,
		PierceBudget: wi.Stats.PierceCount,
		Remaining:    projectileLifetime,
	})
}

func (e *Engine) muzzleFlash(wi *WeaponInstance, x, y, angle float64) {
	e.effect(EffectMuzzleFlash, x, y, map[string]interface{}{
		"weaponId": wi.Def.ID,
		"angle":    angle,
		"color":    wi.Def.Color,
	})
}
