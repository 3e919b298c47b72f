package arsenal

// Effect kinds are stable string tags handed to the effect port. Consumers
// key visuals and audio off these; the engine attaches behavior-specific
// parameters in the params bag.
const (
	EffectMuzzleFlash     = "muzzle_flash"
	EffectImpact          = "impact"
	EffectChainBolt       = "chain_bolt"
	EffectFlameHit        = "flame_hit"
	EffectBeam            = "beam"
	EffectFreezeSlow      = "freeze_slow"
	EffectOrbitalSpawn    = "orbital_spawn"
	EffectVortexSpawn     = "vortex_spawn"
	EffectVortexPull      = "vortex_pull"
	EffectVortexDamage    = "vortex_damage"
	EffectVortexImplosion = "vortex_implosion"
)

// Ports are the two callbacks through which every simulation result leaves
// the engine. Both are fire-and-forget: the engine never awaits a response
// and keeps running if either is nil.
type Ports struct {
	// OnDamage fires once per successful damage application: projectile
	// collision, chain hop, area tick, beam tick, vortex tick, implosion.
	OnDamage func(enemyID string, amount float64, weaponID string, x, y float64)

	// OnEffect fires for every visual/audio cue opportunity. kind is one
	// of the Effect* tags; params is a free-form bag.
	OnEffect func(kind string, x, y float64, params map[string]interface{})
}

func (e *Engine) damage(enemyID string, amount float64, weaponID string, x, y float64) {
	if e.ports.OnDamage != nil {
		e.ports.OnDamage(enemyID, amount, weaponID, x, y)
	}
}

func (e *Engine) effect(kind string, x, y float64, params map[string]interface{}) {
	if e.ports.OnEffect != nil {
		e.ports.OnEffect(kind, x, y, params)
	}
}
