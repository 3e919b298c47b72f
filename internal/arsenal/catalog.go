// Package arsenal implements the weapon simulation and targeting engine:
// weapon definitions and level scaling, per-frame firing and behavior
// updates, projectile movement and collision, and the two output ports
// (damage, effect) through which all results leave the simulation.
//
// The package is a pure library: it owns no goroutines, takes no locks,
// and never touches rendering or audio. Callers drive it through a single
// Update call per frame.
package arsenal

// BehaviorType selects which firing/update algorithm a weapon uses.
type BehaviorType string

const (
	BehaviorStandard BehaviorType = "standard"
	BehaviorSpread   BehaviorType = "spread"
	BehaviorHoming   BehaviorType = "homing"
	BehaviorOrbital  BehaviorType = "orbital"
	BehaviorChain    BehaviorType = "chain"
	BehaviorArea     BehaviorType = "area"
	BehaviorBeam     BehaviorType = "beam"
	BehaviorVortex   BehaviorType = "vortex"
)

// BehaviorConfig is the closed set of per-behavior parameter structs.
// Each weapon definition carries exactly one variant, matching its
// BehaviorType, so behavior code receives exactly the fields it needs.
type BehaviorConfig interface {
	Behavior() BehaviorType
}

// StandardConfig has no extra parameters; straight-line shots aimed at the
// closest enemy with a small fixed per-projectile angular step.
type StandardConfig struct{}

// SpreadConfig has no extra parameters; the fan width comes from the
// definition's BaseSpread and the scaling table.
type SpreadConfig struct{}

// HomingConfig parameterizes homing steering.
type HomingConfig struct {
	TurnSpeed float64 `json:"turnSpeed"` // radians per second
}

// OrbitalConfig parameterizes persistent orbiting projectiles.
type OrbitalConfig struct {
	OrbitRadius float64 `json:"orbitRadius"`
	OrbitSpeed  float64 `json:"orbitSpeed"` // radians per second
	MaxOrbitals int     `json:"maxOrbitals"`
}

// ChainConfig parameterizes instant chain propagation.
type ChainConfig struct {
	ChainCount  int     `json:"chainCount"`  // additional hops at level 1
	ChainRange  float64 `json:"chainRange"`  // max hop distance
	DamageDecay float64 `json:"damageDecay"` // damage multiplier per hop
}

// AreaConfig parameterizes the instant cone attack.
type AreaConfig struct {
	Range     float64 `json:"range"`
	ConeAngle float64 `json:"coneAngle"` // full cone width in degrees
}

// BeamConfig parameterizes the continuous line/beam attack.
type BeamConfig struct {
	Width    float64 `json:"width"`    // full beam width
	Range    float64 `json:"range"`    // beam segment length
	TickRate float64 `json:"tickRate"` // damage applications per second per enemy
}

// VortexConfig parameterizes vortex placement, pull, and implosion.
type VortexConfig struct {
	MaxVortices     int     `json:"maxVortices"`
	Radius          float64 `json:"radius"`       // pull radius
	DamageRadius    float64 `json:"damageRadius"` // periodic damage radius
	ImplosionRadius float64 `json:"implosionRadius"`
	PullStrength    float64 `json:"pullStrength"` // units per second at the rim
	Lifetime        float64 `json:"lifetime"`     // seconds until implosion
	PlacementRange  float64 `json:"placementRange"`
	TickRate        float64 `json:"tickRate"` // damage applications per second per enemy
}

func (StandardConfig) Behavior() BehaviorType { return BehaviorStandard }
func (SpreadConfig) Behavior() BehaviorType   { return BehaviorSpread }
func (HomingConfig) Behavior() BehaviorType   { return BehaviorHoming }
func (OrbitalConfig) Behavior() BehaviorType  { return BehaviorOrbital }
func (ChainConfig) Behavior() BehaviorType    { return BehaviorChain }
func (AreaConfig) Behavior() BehaviorType     { return BehaviorArea }
func (BeamConfig) Behavior() BehaviorType     { return BehaviorBeam }
func (VortexConfig) Behavior() BehaviorType   { return BehaviorVortex }

// WeaponDefinition is the immutable description of a weapon. Definitions
// never mutate after registration; runtime state lives on WeaponInstance.
type WeaponDefinition struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	BaseDamage          float64 `json:"baseDamage"`
	BaseFireRate        float64 `json:"baseFireRate"` // shots per second
	BaseProjectileSpeed float64 `json:"baseProjectileSpeed"`
	BaseProjectileCount int     `json:"baseProjectileCount"`
	BaseSpread          float64 `json:"baseSpread"` // degrees
	Piercing            bool    `json:"piercing"`
	Homing              bool    `json:"homing"`
	Color               string  `json:"color"`

	BehaviorType BehaviorType   `json:"behaviorType"`
	Config       BehaviorConfig `json:"-"`
}

// Catalog is the registry of weapon definitions. Register overwrites
// silently (last write wins) so evolved weapons can shadow built-ins.
type Catalog struct {
	defs  map[string]WeaponDefinition
	order []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]WeaponDefinition)}
}

// Register stores a definition by id, overwriting any previous entry.
func (c *Catalog) Register(def WeaponDefinition) {
	if _, exists := c.defs[def.ID]; !exists {
		c.order = append(c.order, def.ID)
	}
	c.defs[def.ID] = def
}

// Get returns the definition for id.
func (c *Catalog) Get(id string) (WeaponDefinition, bool) {
	def, ok := c.defs[id]
	return def, ok
}

// All returns every registered definition in registration order.
func (c *Catalog) All() []WeaponDefinition {
	defs := make([]WeaponDefinition, 0, len(c.defs))
	for _, id := range c.order {
		defs = append(defs, c.defs[id])
	}
	return defs
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// DefaultCatalog returns a catalog preloaded with the built-in weapons,
// one per behavior type.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, def := range builtinWeapons {
		c.Register(def)
	}
	return c
}

var builtinWeapons = []WeaponDefinition{
	{
		ID:                  "basic_laser",
		Name:                "Basic Laser",
		BaseDamage:          10,
		BaseFireRate:        2.0,
		BaseProjectileSpeed: 400,
		BaseProjectileCount: 1,
		Color:               "#4fc3f7",
		BehaviorType:        BehaviorStandard,
		Config:              StandardConfig{},
	},
	{
		ID:                  "spread_shot",
		Name:                "Spread Shot",
		BaseDamage:          6,
		BaseFireRate:        1.2,
		BaseProjectileSpeed: 320,
		BaseProjectileCount: 5,
		BaseSpread:          60,
		Color:               "#ffb74d",
		BehaviorType:        BehaviorSpread,
		Config:              SpreadConfig{},
	},
	{
		ID:                  "homing_missile",
		Name:                "Homing Missile",
		BaseDamage:          14,
		BaseFireRate:        0.8,
		BaseProjectileSpeed: 260,
		BaseProjectileCount: 2,
		Homing:              true,
		Color:               "#e57373",
		BehaviorType:        BehaviorHoming,
		Config:              HomingConfig{TurnSpeed: 4.0},
	},
	{
		ID:                  "orbital_blades",
		Name:                "Orbital Blades",
		BaseDamage:          8,
		BaseFireRate:        0.5,
		BaseProjectileCount: 3,
		Piercing:            true,
		Color:               "#aed581",
		BehaviorType:        BehaviorOrbital,
		Config:              OrbitalConfig{OrbitRadius: 80, OrbitSpeed: 2.5, MaxOrbitals: 4},
	},
	{
		ID:                  "chain_lightning",
		Name:                "Chain Lightning",
		BaseDamage:          12,
		BaseFireRate:        0.9,
		Color:               "#fff176",
		BehaviorType:        BehaviorChain,
		Config:              ChainConfig{ChainCount: 3, ChainRange: 150, DamageDecay: 0.8},
	},
	{
		ID:                  "flame_cone",
		Name:                "Flame Cone",
		BaseDamage:          4,
		BaseFireRate:        4.0,
		Color:               "#ff8a65",
		BehaviorType:        BehaviorArea,
		Config:              AreaConfig{Range: 120, ConeAngle: 60},
	},
	{
		ID:                  "frost_beam",
		Name:                "Frost Beam",
		BaseDamage:          3,
		BaseFireRate:        6.0,
		Color:               "#81d4fa",
		BehaviorType:        BehaviorBeam,
		Config:              BeamConfig{Width: 24, Range: 300, TickRate: 4},
	},
	{
		ID:                  "gravity_vortex",
		Name:                "Gravity Vortex",
		BaseDamage:          5,
		BaseFireRate:        0.4,
		Color:               "#ba68c8",
		BehaviorType:        BehaviorVortex,
		Config: VortexConfig{
			MaxVortices:     2,
			Radius:          120,
			DamageRadius:    50,
			ImplosionRadius: 90,
			PullStrength:    140,
			Lifetime:        3.0,
			PlacementRange:  250,
			TickRate:        2,
		},
	},
}
