package arsenal

// VortexPoint is one active vortex owned by a vortex-behavior weapon.
// When Remaining crosses zero the vortex implodes exactly once and is
// removed on the same tick.
type VortexPoint struct {
	X, Y      float64
	Remaining float64 // seconds until implosion
}

// WeaponInstance is the runtime state for one acquired weapon. Computed
// stats are recomputed whenever the level changes and are never mutated
// directly by gameplay code.
type WeaponInstance struct {
	Def      WeaponDefinition
	Level    int
	Cooldown float64 // seconds until next fire
	Stats    ComputedStats

	// Behavior-private state. Only the fields the instance's behavior
	// uses are ever touched.
	OrbitalAngle       float64 // monotonically increasing, radians
	Vortices           []*VortexPoint
	BeamAimX, BeamAimY float64

	// hitCooldowns gates periodic damage (beam ticks, vortex ticks) per
	// enemy, keyed on simulation time. Scoped to the instance so it dies
	// with RemoveWeapon.
	hitCooldowns map[string]float64

	// areaTargets tracks enemies the area cone has already touched, so
	// the first contact can be signaled differently. Carried across
	// upgrades.
	areaTargets map[string]bool
	areaFacing  float64
}

func newWeaponInstance(def WeaponDefinition, level int) *WeaponInstance {
	level = ClampLevel(level)
	return &WeaponInstance{
		Def:          def,
		Level:        level,
		Stats:        ComputeStats(def, level),
		hitCooldowns: make(map[string]float64),
		areaTargets:  make(map[string]bool),
	}
}

// upgraded builds the replacement instance one level up, carrying over
// only the runtime fields that survive an upgrade: cooldown, orbital
// angle, and the area target set. Everything else starts fresh from the
// recomputed stats.
func (wi *WeaponInstance) upgraded() *WeaponInstance {
	next := newWeaponInstance(wi.Def, wi.Level+1)
	next.Cooldown = wi.Cooldown
	next.OrbitalAngle = wi.OrbitalAngle
	next.areaTargets = wi.areaTargets
	return next
}

// lastHit returns the simulation time this instance last damaged the
// enemy, if ever.
func (wi *WeaponInstance) lastHit(enemyID string) (float64, bool) {
	t, ok := wi.hitCooldowns[enemyID]
	return t, ok
}

// recordHit stamps the enemy with the current simulation time.
func (wi *WeaponInstance) recordHit(enemyID string, now float64) {
	wi.hitCooldowns[enemyID] = now
}

// hitReady reports whether enough simulation time has passed since the
// last damage application to this enemy for the given tick rate.
func (wi *WeaponInstance) hitReady(enemyID string, now, tickRate float64) bool {
	if tickRate <= 0 {
		return true
	}
	last, ok := wi.lastHit(enemyID)
	if !ok {
		return true
	}
	return now-last >= 1.0/tickRate
}
