package arsenal

import "math"

// implosionMultiplier scales the one-time burst a vortex deals when its
// countdown expires.
const implosionMultiplier = 3.0

// fireVortex places a new vortex when under the cap, biased toward the
// densest nearby enemy cluster, or at a random point within placement
// range when no enemies exist.
func (e *Engine) fireVortex(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	cfg, ok := wi.Def.Config.(VortexConfig)
	if !ok {
		return false
	}
	if len(wi.Vortices) >= cfg.MaxVortices {
		return false
	}

	x, y := e.pickVortexSite(ownerX, ownerY, enemies, cfg)
	wi.Vortices = append(wi.Vortices, &VortexPoint{X: x, Y: y, Remaining: cfg.Lifetime})

	e.effect(EffectVortexSpawn, x, y, map[string]interface{}{
		"weaponId": wi.Def.ID,
		"radius":   cfg.Radius,
		"lifetime": cfg.Lifetime,
	})
	return true
}

// pickVortexSite scores each candidate enemy by the proximity-weighted
// count of other enemies within the pull radius and returns the densest
// spot. With no targetable enemies it falls back to a random point within
// placement range of the owner.
func (e *Engine) pickVortexSite(ownerX, ownerY float64, enemies []Enemy, cfg VortexConfig) (float64, float64) {
	var best *Enemy
	bestScore := -1.0

	for i := range enemies {
		candidate := &enemies[i]
		if !candidate.Targetable() {
			continue
		}
		score := 0.0
		for j := range enemies {
			other := &enemies[j]
			if j == i || !other.Targetable() {
				continue
			}
			d := distance(candidate.X, candidate.Y, other.X, other.Y)
			if d <= cfg.Radius {
				score += 1 - d/cfg.Radius
			}
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if best != nil {
		return best.X, best.Y
	}

	angle := e.rng.Float64() * 2 * math.Pi
	dist := e.rng.Float64() * cfg.PlacementRange
	return ownerX + math.Cos(angle)*dist, ownerY + math.Sin(angle)*dist
}

// tickVortices advances every vortex owned by the weapon: pull signals for
// enemies inside the pull radius, tick-rate-gated damage inside the damage
// radius (scaled up near the center), and a terminal implosion burst that
// fires exactly once, on the tick the countdown crosses zero.
func (e *Engine) tickVortices(wi *WeaponInstance, dt float64, enemies []Enemy) {
	cfg, ok := wi.Def.Config.(VortexConfig)
	if !ok {
		return
	}

	n := 0
	for _, v := range wi.Vortices {
		v.Remaining -= dt

		if v.Remaining <= 0 {
			e.implode(wi, v, cfg, enemies)
			continue // removed; never ticks or implodes again
		}

		for i := range enemies {
			enemy := &enemies[i]
			if !enemy.Targetable() {
				continue
			}
			d := distance(v.X, v.Y, enemy.X, enemy.Y)

			if d <= cfg.Radius && d > 0 {
				strength := (1 - d/cfg.Radius) * cfg.PullStrength
				e.effect(EffectVortexPull, enemy.X, enemy.Y, map[string]interface{}{
					"weaponId": wi.Def.ID,
					"enemyId":  enemy.ID,
					"dirX":     (v.X - enemy.X) / d,
					"dirY":     (v.Y - enemy.Y) / d,
					"strength": strength,
				})
			}

			if d <= cfg.DamageRadius && wi.hitReady(enemy.ID, e.now, cfg.TickRate) {
				scale := 1 + (1 - d/cfg.DamageRadius) // stronger near the center
				e.damage(enemy.ID, wi.Stats.Damage*scale, wi.Def.ID, enemy.X, enemy.Y)
				e.effect(EffectVortexDamage, enemy.X, enemy.Y, map[string]interface{}{
					"weaponId": wi.Def.ID,
					"enemyId":  enemy.ID,
				})
				wi.recordHit(enemy.ID, e.now)
			}
		}

		wi.Vortices[n] = v
		n++
	}
	wi.Vortices = wi.Vortices[:n]
}

// implode deals the vortex's one-time burst to everything within the
// implosion radius.
func (e *Engine) implode(wi *WeaponInstance, v *VortexPoint, cfg VortexConfig, enemies []Enemy) {
	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Targetable() {
			continue
		}
		if distance(v.X, v.Y, enemy.X, enemy.Y) > cfg.ImplosionRadius {
			continue
		}
		e.damage(enemy.ID, wi.Stats.Damage*implosionMultiplier, wi.Def.ID, enemy.X, enemy.Y)
	}

	e.effect(EffectVortexImplosion, v.X, v.Y, map[string]interface{}{
		"weaponId": wi.Def.ID,
		"radius":   cfg.ImplosionRadius,
	})
}
