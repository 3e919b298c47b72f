package arsenal

// Read-only state views for callers that mirror the simulation elsewhere
// (snapshots, rendering, broadcast). Everything is copied by value so the
// caller can hold the result across ticks.

// ProjectileState is an immutable copy of one projectile's state. A visual
// layer keys its sprite off ID.
type ProjectileState struct {
	ID       uint64  `json:"id"`
	WeaponID string  `json:"weaponId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Orbital  bool    `json:"orbital"`
}

// WeaponState is an immutable copy of one owned weapon's state.
type WeaponState struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	Cooldown float64       `json:"cooldown"`
	Behavior BehaviorType  `json:"behavior"`
	Color    string        `json:"color"`
	Stats    ComputedStats `json:"stats"`
}

// VortexState is an immutable copy of one active vortex.
type VortexState struct {
	WeaponID  string  `json:"weaponId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Remaining float64 `json:"remaining"`
	Radius    float64 `json:"radius"`
}

// ProjectileStates copies out every live projectile.
func (e *Engine) ProjectileStates() []ProjectileState {
	states := make([]ProjectileState, 0, len(e.projectiles))
	for _, p := range e.projectiles {
		states = append(states, ProjectileState{
			ID:       p.ID,
			WeaponID: p.WeaponID,
			X:        p.X,
			Y:        p.Y,
			VX:       p.VX,
			VY:       p.VY,
			Orbital:  p.Orbital,
		})
	}
	return states
}

// WeaponStates copies out every owned weapon in acquisition order.
func (e *Engine) WeaponStates() []WeaponState {
	states := make([]WeaponState, 0, e.arsenal.Count())
	e.arsenal.each(func(wi *WeaponInstance) {
		states = append(states, WeaponState{
			ID:       wi.Def.ID,
			Name:     wi.Def.Name,
			Level:    wi.Level,
			Cooldown: wi.Cooldown,
			Behavior: wi.Def.BehaviorType,
			Color:    wi.Def.Color,
			Stats:    wi.Stats,
		})
	})
	return states
}

// VortexStates copies out every active vortex across all weapons.
func (e *Engine) VortexStates() []VortexState {
	var states []VortexState
	e.arsenal.each(func(wi *WeaponInstance) {
		cfg, ok := wi.Def.Config.(VortexConfig)
		if !ok {
			return
		}
		for _, v := range wi.Vortices {
			states = append(states, VortexState{
				WeaponID:  wi.Def.ID,
				X:         v.X,
				Y:         v.Y,
				Remaining: v.Remaining,
				Radius:    cfg.Radius,
			})
		}
	})
	return states
}
