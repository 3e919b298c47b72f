package arsenal

import "math"

// Enemy is the read-only view of one enemy the caller supplies each tick.
// The engine reads position, health, and the active flag; it never writes
// to enemies. Intended mutations (damage, pull, slow) leave through the
// output ports only.
type Enemy struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health float64 `json:"health"`
	Active bool    `json:"active"`
}

// Targetable reports whether the enemy can be aimed at or damaged.
func (e *Enemy) Targetable() bool {
	return e.Active && e.Health > 0
}

// Closest returns the targetable enemy nearest to (x, y), or nil.
// It is a pure linear scan, called fresh each invocation; nothing is
// cached across frames so staleness is bounded to one tick.
func Closest(x, y float64, enemies []Enemy) *Enemy {
	var best *Enemy
	bestDist := math.MaxFloat64

	for i := range enemies {
		e := &enemies[i]
		if !e.Targetable() {
			continue
		}
		d := distance(x, y, e.X, e.Y)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

// ClosestExcluding is Closest restricted to enemies outside the exclude
// set and within maxRange. Returns nil if nothing qualifies.
func ClosestExcluding(x, y float64, enemies []Enemy, exclude map[string]bool, maxRange float64) *Enemy {
	var best *Enemy
	bestDist := maxRange

	for i := range enemies {
		e := &enemies[i]
		if !e.Targetable() || exclude[e.ID] {
			continue
		}
		d := distance(x, y, e.X, e.Y)
		if d <= bestDist {
			bestDist = d
			best = e
		}
	}
	return best
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// normalizeAngle normalizes an angle to [-π, π] with O(1) modulo
// arithmetic.
func normalizeAngle(angle float64) float64 {
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	if angle > math.Pi {
		angle -= twoPi
	}
	return angle
}
