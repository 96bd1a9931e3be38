package config

import (
	_ "embed"
)

//go:embed defaults/planes.yaml
var defaultPlanesYAML []byte

// DefaultPlanesConfig returns the classic tuning as a hardcoded fallback.
// It must stay in sync with defaults/planes.yaml.
func DefaultPlanesConfig() PlanesConfig {
	return PlanesConfig{
		Physics: PlanesPhysics{
			Gravity:      0.15,
			PlayerThrust: 0.5,
			EnemyThrust:  0.4,
			PlayerDrag:   0.97,
			EnemyDrag:    0.95,
			TurnRateDeg:  3.0,
		},
		Combat: PlanesCombat{
			PlayerShotDelay: 0.5,
			EnemyShotDelay:  2.5,
			BulletSpeed:     8.0,
			BulletTTL:       2.0,
			PlaneHitHalf:    10,
			BulletHitHalf:   8,
		},
		Spawner: PlanesSpawner{
			Interval:   6.0,
			MaxEnemies: 5,
			MinRadius:  750,
			MaxRadius:  1000,
		},
		Music: PlanesMusic{
			TrackSeconds: []float64{82, 95},
		},
	}
}
