package arsenal

import "math"

// Projectile system constants.
const (
	// ProjectileHitRadius is the fixed collision radius for every
	// projectile-enemy test.
	ProjectileHitRadius = 20.0

	// projectileLifetime bounds how long a velocity-integrated projectile
	// stays alive without hitting anything.
	projectileLifetime = 3.0

	// DefaultMaxProjectiles caps the live projectile count.
	DefaultMaxProjectiles = 256
)

// Projectile is the simulation record for one live projectile. It carries
// no visual state; a rendering layer keys sprites off ID.
type Projectile struct {
	ID       uint64
	WeaponID string

	X, Y   float64
	VX, VY float64

	// Damage is snapshotted at spawn time, not live-linked to the
	// owning instance.
	Damage float64

	// PierceBudget is how many additional enemies this projectile may
	// damage after its first hit. A projectile with budget 0 is removed
	// on its first hit.
	PierceBudget int

	// Remaining lifetime in seconds. Orbitals use +Inf and are culled
	// only by pierce exhaustion or weapon removal.
	Remaining float64

	// hitEnemies prevents re-hitting the same enemy with the same
	// projectile.
	hitEnemies map[string]bool

	// Homing state.
	HomingTargetID string
	TurnSpeed      float64 // radians per second

	// Orbital state. Orbitals are repositioned from the owner's current
	// position every tick and never velocity-integrated.
	Orbital     bool
	OrbitAngle  float64
	OrbitRadius float64
	OrbitSpeed  float64

	spent bool
}

func (e *Engine) spawnProjectile(p *Projectile) bool {
	if len(e.projectiles) >= e.maxProjectiles {
		return false
	}
	e.nextProjectileID++
	p.ID = e.nextProjectileID
	p.hitEnemies = make(map[string]bool)
	e.projectiles = append(e.projectiles, p)
	return true
}

// advanceProjectiles runs movement, collision, and the removal sweep for
// every live projectile. Removal happens in a single in-place filter at
// the end so the collection is never mutated mid-iteration.
func (e *Engine) advanceProjectiles(dt, ownerX, ownerY float64, enemies []Enemy) {
	n := 0
	for _, p := range e.projectiles {
		p.Remaining -= dt

		switch {
		case p.Orbital:
			p.OrbitAngle += p.OrbitSpeed * dt
			p.X = ownerX + math.Cos(p.OrbitAngle)*p.OrbitRadius
			p.Y = ownerY + math.Sin(p.OrbitAngle)*p.OrbitRadius
		case p.HomingTargetID != "":
			e.steerHoming(p, dt, enemies)
			p.X += p.VX * dt
			p.Y += p.VY * dt
		default:
			p.X += p.VX * dt
			p.Y += p.VY * dt
		}

		e.resolveCollisions(p, enemies)

		if !p.spent && p.Remaining > 0 {
			e.projectiles[n] = p
			n++
		}
	}
	e.projectiles = e.projectiles[:n]
}

// resolveCollisions damages every targetable enemy within the hit radius
// that this projectile has not already hit, decrementing the pierce budget
// until it is exhausted.
func (e *Engine) resolveCollisions(p *Projectile, enemies []Enemy) {
	if p.spent {
		return
	}
	for i := range enemies {
		enemy := &enemies[i]
		if !enemy.Targetable() || p.hitEnemies[enemy.ID] {
			continue
		}
		if distance(p.X, p.Y, enemy.X, enemy.Y) > ProjectileHitRadius {
			continue
		}

		p.hitEnemies[enemy.ID] = true
		e.damage(enemy.ID, p.Damage, p.WeaponID, enemy.X, enemy.Y)
		e.effect(EffectImpact, enemy.X, enemy.Y, map[string]interface{}{
			"weaponId":     p.WeaponID,
			"projectileId": p.ID,
		})

		if p.PierceBudget == 0 {
			p.spent = true
			return
		}
		p.PierceBudget--
	}
}

// steerHoming rotates the projectile's velocity toward its target by at
// most TurnSpeed·dt, retargeting first if the target died or deactivated.
// The velocity is never snapped directly onto the target angle.
func (e *Engine) steerHoming(p *Projectile, dt float64, enemies []Enemy) {
	var target *Enemy
	for i := range enemies {
		if enemies[i].ID == p.HomingTargetID && enemies[i].Targetable() {
			target = &enemies[i]
			break
		}
	}
	if target == nil {
		target = Closest(p.X, p.Y, enemies)
		if target == nil {
			return // fly straight until something shows up
		}
		p.HomingTargetID = target.ID
	}

	speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
	if speed == 0 {
		return
	}

	current := math.Atan2(p.VY, p.VX)
	desired := math.Atan2(target.Y-p.Y, target.X-p.X)
	delta := normalizeAngle(desired - current)

	maxTurn := p.TurnSpeed * dt
	if delta > maxTurn {
		delta = maxTurn
	} else if delta < -maxTurn {
		delta = -maxTurn
	}

	next := current + delta
	p.VX = math.Cos(next) * speed
	p.VY = math.Sin(next) * speed
}

// purgeProjectiles drops every projectile owned by the weapon, regardless
// of remaining lifetime.
func (e *Engine) purgeProjectiles(weaponID string) {
	n := 0
	for _, p := range e.projectiles {
		if p.WeaponID != weaponID {
			e.projectiles[n] = p
			n++
		}
	}
	e.projectiles = e.projectiles[:n]
}

// orbitalCount returns how many live orbitals the weapon owns.
func (e *Engine) orbitalCount(weaponID string) int {
	count := 0
	for _, p := range e.projectiles {
		if p.Orbital && p.WeaponID == weaponID {
			count++
		}
	}
	return count
}

// removeOrbitals drops the weapon's orbitals ahead of a respawn.
func (e *Engine) removeOrbitals(weaponID string) {
	n := 0
	for _, p := range e.projectiles {
		if !(p.Orbital && p.WeaponID == weaponID) {
			e.projectiles[n] = p
			n++
		}
	}
	e.projectiles = e.projectiles[:n]
}
