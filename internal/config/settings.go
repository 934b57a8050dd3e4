// internal/config/settings.go
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

var (
	ErrInvalidTimer      = errors.New("infection timer must be positive")
	ErrInvalidDecay      = errors.New("infection decay rate must be positive")
	ErrInvalidOffspring  = errors.New("invalid offspring count")
	ErrInvalidSpeed      = errors.New("speed must be positive")
	ErrNegativeValue     = errors.New("value must not be negative")
	ErrUnknownBroadPhase = errors.New("unknown broad phase")
	ErrUnknownPolicy     = errors.New("unknown targeting policy")
)

// Broad phase names.
const (
	BroadPhaseNaive = "naive"
	BroadPhaseGrid  = "grid"
)

// Ally targeting policies.
const (
	PolicyNearest = "nearest"
	PolicyRandom  = "random"
)

// Config holds every tunable of a simulation.
type Config struct {
	Hostile     HostileConfig     `yaml:"hostile"`
	Infection   InfectionConfig   `yaml:"infection"`
	Wave        WaveConfig        `yaml:"wave"`
	Player      PlayerConfig      `yaml:"player"`
	Boost       BoostConfig       `yaml:"boost"`
	Duplication DuplicationConfig `yaml:"duplication"`
	Ally        AllyConfig        `yaml:"ally"`
	Targeting   TargetingConfig   `yaml:"targeting"`
	Collision   CollisionConfig   `yaml:"collision"`
}

type HostileConfig struct {
	Speed              float64 `yaml:"speed"`
	TurnRate           float64 `yaml:"turn_rate"` // rad/s
	FastRotateDistance float64 `yaml:"fast_rotate_distance"`
	Radius             float64 `yaml:"radius"`
}

// InfectionConfig is read when a host gets infected. Changing it later does
// not affect infections already running.
type InfectionConfig struct {
	Timer     float64 `yaml:"timer"`
	DecayRate float64 `yaml:"decay_rate"`
	Offspring int     `yaml:"offspring"`
}

type WaveConfig struct {
	Enabled        bool      `yaml:"enabled"`
	SpawnRadius    float64   `yaml:"spawn_radius"`
	ClusterRadius  float64   `yaml:"cluster_radius"`
	InterWaveDelay float64   `yaml:"inter_wave_delay"`
	ArenaCenter    geom.Vec2 `yaml:"arena_center"`
}

type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

type BoostConfig struct {
	ChargeRate              float64 `yaml:"charge_rate"`
	MaxCharge               float64 `yaml:"max_charge"`
	BaseSecs                float64 `yaml:"base_secs"`
	BaseSpeed               float64 `yaml:"base_speed"`
	ExtraSecsPerBoostLevel  float64 `yaml:"extra_secs_per_level"`
	ExtraSpeedPerBoostLevel float64 `yaml:"extra_speed_per_level"`
}

type DuplicationConfig struct {
	ChargeRate float64 `yaml:"charge_rate"`
	MaxCharge  float64 `yaml:"max_charge"`
}

type AllyConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

type TargetingConfig struct {
	AllyPolicy string `yaml:"ally_policy"`
}

type CollisionConfig struct {
	BroadPhase string  `yaml:"broad_phase"`
	CellSize   float64 `yaml:"cell_size"`
}

// Default returns the tuning of the original game.
func Default() Config {
	return Config{
		Hostile: HostileConfig{
			Speed:              20,
			TurnRate:           1,
			FastRotateDistance: 20,
			Radius:             5.5,
		},
		Infection: InfectionConfig{
			Timer:     20,
			DecayRate: 1,
			Offspring: 4,
		},
		Wave: WaveConfig{
			Enabled:        true,
			SpawnRadius:    600,
			ClusterRadius:  100,
			InterWaveDelay: 5,
		},
		Player: PlayerConfig{
			Radius: 20,
			Speed:  100,
		},
		Boost: BoostConfig{
			ChargeRate:              1,
			MaxCharge:               2,
			BaseSecs:                0.3,
			BaseSpeed:               300,
			ExtraSecsPerBoostLevel:  0.2,
			ExtraSpeedPerBoostLevel: 100,
		},
		Duplication: DuplicationConfig{
			ChargeRate: 1,
			MaxCharge:  0.5,
		},
		Ally: AllyConfig{
			Radius: 20,
			Speed:  25,
		},
		Targeting: TargetingConfig{AllyPolicy: PolicyRandom},
		Collision: CollisionConfig{
			BroadPhase: BroadPhaseNaive,
			CellSize:   64,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML into cfg, rejecting unknown keys, and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, "decode yaml")
	}
	return cfg.Validate()
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.Infection.Timer <= 0 {
		return errors.Wrapf(ErrInvalidTimer, "infection.timer=%v", c.Infection.Timer)
	}
	if c.Infection.DecayRate <= 0 {
		return errors.Wrapf(ErrInvalidDecay, "infection.decay_rate=%v", c.Infection.DecayRate)
	}
	if c.Infection.Offspring < 0 {
		return errors.Wrapf(ErrInvalidOffspring, "infection.offspring=%d", c.Infection.Offspring)
	}
	// waves would stall forever once the last host bursts without offspring
	if c.Infection.Offspring == 0 && c.Wave.Enabled {
		return errors.Wrap(ErrInvalidOffspring, "infection.offspring must be positive while waves are enabled")
	}
	if c.Hostile.Speed <= 0 {
		return errors.Wrapf(ErrInvalidSpeed, "hostile.speed=%v", c.Hostile.Speed)
	}
	if c.Player.Speed <= 0 {
		return errors.Wrapf(ErrInvalidSpeed, "player.speed=%v", c.Player.Speed)
	}
	if c.Ally.Speed <= 0 {
		return errors.Wrapf(ErrInvalidSpeed, "ally.speed=%v", c.Ally.Speed)
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"hostile.turn_rate", c.Hostile.TurnRate},
		{"hostile.fast_rotate_distance", c.Hostile.FastRotateDistance},
		{"hostile.radius", c.Hostile.Radius},
		{"wave.spawn_radius", c.Wave.SpawnRadius},
		{"wave.cluster_radius", c.Wave.ClusterRadius},
		{"wave.inter_wave_delay", c.Wave.InterWaveDelay},
		{"player.radius", c.Player.Radius},
		{"ally.radius", c.Ally.Radius},
		{"boost.charge_rate", c.Boost.ChargeRate},
		{"boost.max_charge", c.Boost.MaxCharge},
		{"boost.base_secs", c.Boost.BaseSecs},
		{"duplication.charge_rate", c.Duplication.ChargeRate},
		{"duplication.max_charge", c.Duplication.MaxCharge},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return errors.Wrapf(ErrNegativeValue, "%s=%v", v.name, v.value)
		}
	}

	switch c.Collision.BroadPhase {
	case BroadPhaseNaive:
	case BroadPhaseGrid:
		if c.Collision.CellSize <= 0 {
			return errors.Wrapf(ErrNegativeValue, "collision.cell_size=%v must be positive for the grid", c.Collision.CellSize)
		}
	default:
		return errors.Wrapf(ErrUnknownBroadPhase, "%q", c.Collision.BroadPhase)
	}

	switch c.Targeting.AllyPolicy {
	case PolicyNearest, PolicyRandom:
	default:
		return errors.Wrapf(ErrUnknownPolicy, "%q", c.Targeting.AllyPolicy)
	}
	return nil
}
