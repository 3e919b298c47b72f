package arsenal

import (
	"encoding/json"
	"fmt"
)

// definitionJSON is the wire shape for dynamically registered weapons: the
// flat definition fields plus a raw behaviorConfig object decoded into the
// typed variant selected by behaviorType.
type definitionJSON struct {
	WeaponDefinition
	BehaviorConfig json.RawMessage `json:"behaviorConfig"`
}

// ParseDefinition decodes a weapon definition from JSON, resolving the
// behaviorConfig bag into the closed typed union. Unknown behavior types
// are rejected.
func ParseDefinition(data []byte) (WeaponDefinition, error) {
	var raw definitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return WeaponDefinition{}, fmt.Errorf("decode weapon definition: %w", err)
	}

	def := raw.WeaponDefinition
	if def.ID == "" {
		return WeaponDefinition{}, fmt.Errorf("weapon definition missing id")
	}

	cfg, err := parseBehaviorConfig(def.BehaviorType, raw.BehaviorConfig)
	if err != nil {
		return WeaponDefinition{}, err
	}
	def.Config = cfg
	return def, nil
}

func parseBehaviorConfig(bt BehaviorType, raw json.RawMessage) (BehaviorConfig, error) {
	unmarshal := func(v interface{}) error {
		if len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, v)
	}

	switch bt {
	case BehaviorStandard:
		return StandardConfig{}, nil
	case BehaviorSpread:
		return SpreadConfig{}, nil
	case BehaviorHoming:
		var cfg HomingConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode homing config: %w", err)
		}
		return cfg, nil
	case BehaviorOrbital:
		var cfg OrbitalConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode orbital config: %w", err)
		}
		return cfg, nil
	case BehaviorChain:
		var cfg ChainConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode chain config: %w", err)
		}
		return cfg, nil
	case BehaviorArea:
		var cfg AreaConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode area config: %w", err)
		}
		return cfg, nil
	case BehaviorBeam:
		var cfg BeamConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode beam config: %w", err)
		}
		return cfg, nil
	case BehaviorVortex:
		var cfg VortexConfig
		if err := unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("decode vortex config: %w", err)
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("unknown behavior type %q", bt)
	}
}
