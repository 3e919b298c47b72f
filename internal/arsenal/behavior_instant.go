package arsenal

import "math"

// The chain, area, and beam behaviors apply damage instantly on fire and
// never create projectile entities. At their computed fire rates they act
// as instant-and-continuous hybrids.

// fireChain damages the closest enemy, then hops to the nearest unvisited
// enemy within chain range of the previous hit, decaying damage per hop.
// It terminates early when no valid target remains; an enemy is never
// revisited within one invocation.
func (e *Engine) fireChain(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	cfg, ok := wi.Def.Config.(ChainConfig)
	if !ok {
		return false
	}

	current := Closest(ownerX, ownerY, enemies)
	if current == nil {
		return false
	}

	maxExtraHops := cfg.ChainCount + wi.Level/2
	damage := wi.Stats.Damage
	visited := make(map[string]bool, maxExtraHops+1)
	prevX, prevY := ownerX, ownerY

	for hop := 0; ; hop++ {
		visited[current.ID] = true
		e.damage(current.ID, damage, wi.Def.ID, current.X, current.Y)
		e.effect(EffectChainBolt, current.X, current.Y, map[string]interface{}{
			"weaponId": wi.Def.ID,
			"fromX":    prevX,
			"fromY":    prevY,
			"toX":      current.X,
			"toY":      current.Y,
			"hop":      hop,
		})

		if hop >= maxExtraHops {
			break
		}
		next := ClosestExcluding(current.X, current.Y, enemies, visited, cfg.ChainRange)
		if next == nil {
			break
		}
		prevX, prevY = current.X, current.Y
		current = next
		damage *= cfg.DamageDecay
	}
	return true
}

// fireArea damages every targetable enemy inside the cone: within range
// and within half the cone angle of the facing direction. The facing
// tracks the closest enemy at fire time and otherwise holds its last
// value. Damage is flat; the hit effect scales with proximity.
func (e *Engine) fireArea(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	cfg, ok := wi.Def.Config.(AreaConfig)
	if !ok {
		return false
	}

	if target := Closest(ownerX, ownerY, enemies); target != nil {
		wi.areaFacing = math.Atan2(target.Y-ownerY, target.X-ownerX)
	}
	halfAngle := cfg.ConeAngle / 2 * math.Pi / 180

	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Targetable() {
			continue
		}
		d := distance(ownerX, ownerY, enemy.X, enemy.Y)
		if d > cfg.Range {
			continue
		}
		angle := math.Atan2(enemy.Y-ownerY, enemy.X-ownerX)
		if math.Abs(normalizeAngle(angle-wi.areaFacing)) > halfAngle {
			continue
		}

		e.damage(enemy.ID, wi.Stats.Damage, wi.Def.ID, enemy.X, enemy.Y)
		e.effect(EffectFlameHit, enemy.X, enemy.Y, map[string]interface{}{
			"weaponId":  wi.Def.ID,
			"intensity": 1 - d/cfg.Range,
			"first":     !wi.areaTargets[enemy.ID],
		})
		wi.areaTargets[enemy.ID] = true
	}

	// The cone fires on every cooldown expiry even when it sweeps air.
	return true
}

// fireBeam aims a segment at the closest enemy (default forward when none)
// and tests every enemy against it: project the enemy onto the segment,
// clamp the parameter to [0,1], and compare the perpendicular distance to
// half the beam width. Included enemies always receive the slow signal;
// damage is gated per enemy by the beam tick rate on simulation time.
func (e *Engine) fireBeam(wi *WeaponInstance, ownerX, ownerY float64, enemies []Enemy) bool {
	cfg, ok := wi.Def.Config.(BeamConfig)
	if !ok {
		return false
	}

	aim := 0.0
	if target := Closest(ownerX, ownerY, enemies); target != nil {
		aim = math.Atan2(target.Y-ownerY, target.X-ownerX)
	}
	wi.BeamAimX = ownerX + math.Cos(aim)*cfg.Range
	wi.BeamAimY = ownerY + math.Sin(aim)*cfg.Range

	e.effect(EffectBeam, ownerX, ownerY, map[string]interface{}{
		"weaponId": wi.Def.ID,
		"toX":      wi.BeamAimX,
		"toY":      wi.BeamAimY,
		"width":    cfg.Width,
		"color":    wi.Def.Color,
	})

	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Targetable() {
			continue
		}
		if !pointInBeam(ownerX, ownerY, wi.BeamAimX, wi.BeamAimY, cfg.Width, enemy.X, enemy.Y) {
			continue
		}

		e.effect(EffectFreezeSlow, enemy.X, enemy.Y, map[string]interface{}{
			"weaponId": wi.Def.ID,
			"enemyId":  enemy.ID,
			"factor":   0.5,
			"duration": 0.5,
		})

		if wi.hitReady(enemy.ID, e.now, cfg.TickRate) {
			e.damage(enemy.ID, wi.Stats.Damage, wi.Def.ID, enemy.X, enemy.Y)
			wi.recordHit(enemy.ID, e.now)
		}
	}
	return true
}

// pointInBeam reports whether (px, py) lies within width/2 of the segment
// from (x1, y1) to (x2, y2).
func pointInBeam(x1, y1, x2, y2, width, px, py float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return distance(x1, y1, px, py) <= width/2
	}

	t := ((px-x1)*dx + (py-y1)*dy) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := x1 + t*dx
	cy := y1 + t*dy
	return distance(cx, cy, px, py) <= width/2
}
