package arena

import (
	"math"

	"github.com/google/uuid"

	"github.com/robsonek/cosmic-survivors-sub000/internal/arsenal"
)

// Enemy is one live enemy in the arena. The weapon engine only ever sees a
// read-only view of it; all mutation happens here, driven by the buffered
// port outputs and the per-tick seek step.
type Enemy struct {
	ID    string
	X, Y  float64
	HP    float64
	MaxHP float64

	// Speed is the base movement speed in units per second.
	Speed float64

	// Slow state from freeze effects. Factor multiplies Speed while
	// Remaining is positive; a stronger (lower-factor) slow replaces a
	// weaker one.
	SlowFactor    float64
	SlowRemaining float64

	Active bool
}

func newEnemy(x, y, hp, speed float64) *Enemy {
	return &Enemy{
		ID:     uuid.NewString(),
		X:      x,
		Y:      y,
		HP:     hp,
		MaxHP:  hp,
		Speed:  speed,
		Active: true,
	}
}

// seek moves the enemy toward the target for one tick, honoring any active
// slow. Enemies park just outside the contact distance instead of stacking
// on the player.
func (en *Enemy) seek(dt, targetX, targetY float64) {
	const contactDistance = 24.0

	if en.SlowRemaining > 0 {
		en.SlowRemaining -= dt
	}

	dx := targetX - en.X
	dy := targetY - en.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d <= contactDistance {
		return
	}

	speed := en.Speed
	if en.SlowRemaining > 0 {
		speed *= en.SlowFactor
	}

	step := speed * dt
	if step > d-contactDistance {
		step = d - contactDistance
	}
	en.X += dx / d * step
	en.Y += dy / d * step
}

// applySlow installs a slow, keeping whichever is stronger when one is
// already active.
func (en *Enemy) applySlow(factor, duration float64) {
	if en.SlowRemaining > 0 && en.SlowFactor <= factor {
		// The active slow is at least as strong; just extend it.
		if duration > en.SlowRemaining {
			en.SlowRemaining = duration
		}
		return
	}
	en.SlowFactor = factor
	en.SlowRemaining = duration
}

// applyPull displaces the enemy toward a vortex for one tick.
func (en *Enemy) applyPull(dirX, dirY, strength, dt float64) {
	en.X += dirX * strength * dt
	en.Y += dirY * strength * dt
}

// view returns the read-only representation handed to the weapon engine.
func (en *Enemy) view() arsenal.Enemy {
	return arsenal.Enemy{
		ID:     en.ID,
		X:      en.X,
		Y:      en.Y,
		Health: en.HP,
		Active: en.Active,
	}
}
