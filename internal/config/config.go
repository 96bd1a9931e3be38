// Package config provides YAML-based tuning configuration and difficulty
// presets for the planes arcade.
package config

import "math"

// PlanesConfig contains all tuning parameters for the dogfight simulation.
// The defaults reproduce the classic handling; custom YAML files may retune
// any group independently.
type PlanesConfig struct {
	Physics PlanesPhysics `yaml:"physics"`
	Combat  PlanesCombat  `yaml:"combat"`
	Spawner PlanesSpawner `yaml:"spawner"`
	Music   PlanesMusic   `yaml:"music"`
}

// PlanesPhysics defines the kinematic model parameters.
type PlanesPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration per tick, player only
	PlayerThrust float64 `yaml:"player_thrust"` // Acceleration magnitude while thrusting
	EnemyThrust  float64 `yaml:"enemy_thrust"`  // Enemy chase acceleration magnitude
	PlayerDrag   float64 `yaml:"player_drag"`   // Per-tick velocity multiplier, lower = more drag
	EnemyDrag    float64 `yaml:"enemy_drag"`
	TurnRateDeg  float64 `yaml:"turn_rate_deg"` // Degrees turned per tick while a turn flag is held
}

// TurnStep returns the per-tick turn increment in radians.
func (p PlanesPhysics) TurnStep() float64 {
	return p.TurnRateDeg * math.Pi / 180
}

// PlanesCombat defines weapon and hit box parameters.
type PlanesCombat struct {
	PlayerShotDelay float64 `yaml:"player_shot_delay"` // Seconds between player shots
	EnemyShotDelay  float64 `yaml:"enemy_shot_delay"`  // Seconds between shots per enemy
	BulletSpeed     float64 `yaml:"bullet_speed"`      // Muzzle speed added along the firing angle
	BulletTTL       float64 `yaml:"bullet_ttl"`        // Seconds before a bullet expires
	PlaneHitHalf    int     `yaml:"plane_hitbox"`      // Half-width of a plane's hit box
	BulletHitHalf   int     `yaml:"bullet_hitbox"`     // Half-width of a bullet's hit box
}

// PlanesSpawner defines the enemy spawn policy.
type PlanesSpawner struct {
	Interval   float64 `yaml:"interval"`    // Seconds between spawn attempts
	MaxEnemies int     `yaml:"max_enemies"` // Spawn proceeds while count <= this value
	MinRadius  float64 `yaml:"min_radius"`  // Inner edge of the spawn annulus
	MaxRadius  float64 `yaml:"max_radius"`  // Outer edge (exclusive) of the spawn annulus
}

// PlanesMusic defines the background track rotation.
type PlanesMusic struct {
	TrackSeconds []float64 `yaml:"track_seconds"` // Duration of each track in the rotation
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPlanesPreset modifies the config based on a difficulty preset.
// Normal leaves the classic tuning untouched.
func ApplyPlanesPreset(cfg *PlanesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.Interval = 8.0
		cfg.Combat.EnemyShotDelay = 3.5
		cfg.Physics.EnemyThrust = 0.35
	case DifficultyHard:
		cfg.Spawner.Interval = 4.5
		cfg.Combat.EnemyShotDelay = 2.0
		cfg.Physics.EnemyThrust = 0.45
	}
}
