package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory (without extension)
const FileName = "hillclimb"

// EnvPrefix is the prefix for environment overrides, e.g. HILLCLIMB_LOGLEVEL
const EnvPrefix = "HILLCLIMB"

// WindowConfig holds the logical screen size and window title
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// WorldConfig describes terrain layout and world bounds
type WorldConfig struct {
	SegmentWidth  float64 `mapstructure:"segmentWidth"`
	SegmentCount  int     `mapstructure:"segmentCount"`
	BaseOffset    float64 `mapstructure:"baseOffset"`    // base ground height is Height - BaseOffset
	MinHeight     float64 `mapstructure:"minHeight"`     // ground never rises above this y
	EndMargin     float64 `mapstructure:"endMargin"`     // distance from world end where the car stops
	SpawnX        float64 `mapstructure:"spawnX"`        // respawn and start position
	RespawnDepth  float64 `mapstructure:"respawnDepth"`  // below Height + RespawnDepth the car respawns
	CameraLead    float64 `mapstructure:"cameraLead"`    // camera keeps the car this far from the left edge
	CameraSmooth  float64 `mapstructure:"cameraSmooth"`  // lerp factor per frame
	WheelClearing float64 `mapstructure:"wheelClearing"` // distance between the car origin and the ground
}

// PhysicsConfig holds per-frame integration constants
type PhysicsConfig struct {
	Gravity          float64 `mapstructure:"gravity"`
	FrictionGround   float64 `mapstructure:"frictionGround"`
	FrictionAir      float64 `mapstructure:"frictionAir"`
	BrakeFactor      float64 `mapstructure:"brakeFactor"`
	MinSpeed         float64 `mapstructure:"minSpeed"`
	BaseMaxSpeed     float64 `mapstructure:"baseMaxSpeed"`
	MaxSpeedPerLevel float64 `mapstructure:"maxSpeedPerLevel"`
	JumpImpulse      float64 `mapstructure:"jumpImpulse"`
	JumpPerLevel     float64 `mapstructure:"jumpPerLevel"`
	MaxFrameStep     float64 `mapstructure:"maxFrameStep"` // upper bound for dt, in frames
}

// ProgressionConfig holds energy and level economy constants
type ProgressionConfig struct {
	StartEnergy      float64 `mapstructure:"startEnergy"`
	SpeedFactor      float64 `mapstructure:"speedFactor"`
	Mass             float64 `mapstructure:"mass"`
	JumpCost         float64 `mapstructure:"jumpCost"`
	RespawnPenalty   float64 `mapstructure:"respawnPenalty"`
	RespawnFloor     float64 `mapstructure:"respawnFloor"`
	CapacityStep     float64 `mapstructure:"capacityStep"`
	CapacityMin      float64 `mapstructure:"capacityMin"`
	CapacityMax      float64 `mapstructure:"capacityMax"`
	CapacityCost     int     `mapstructure:"capacityCost"`
	LevelCost        int     `mapstructure:"levelCost"`
	LevelCostGrowth  float64 `mapstructure:"levelCostGrowth"`
	LevelEnergyBonus float64 `mapstructure:"levelEnergyBonus"`
	LevelEnergyMax   float64 `mapstructure:"levelEnergyMax"`
	LevelSpeedBonus  float64 `mapstructure:"levelSpeedBonus"`
}

// KeysConfig maps actions to key names. Names follow ebiten's key names
// ("ArrowRight", "D", "Space"); the terminal frontend understands the same set.
type KeysConfig struct {
	Accelerate       []string `mapstructure:"accelerate"`
	Brake            []string `mapstructure:"brake"`
	Jump             []string `mapstructure:"jump"`
	DecreaseCapacity []string `mapstructure:"decreaseCapacity"`
	IncreaseCapacity []string `mapstructure:"increaseCapacity"`
	LevelUp          []string `mapstructure:"levelUp"`
	Pause            []string `mapstructure:"pause"`
	Restart          []string `mapstructure:"restart"`
}

// AudioConfig controls the procedural sound effects
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config is the full game configuration
type Config struct {
	LogLevel    string            `mapstructure:"logLevel"`
	LogsDir     string            `mapstructure:"logsDir"`
	Window      WindowConfig      `mapstructure:"window"`
	World       WorldConfig       `mapstructure:"world"`
	Physics     PhysicsConfig     `mapstructure:"physics"`
	Progression ProgressionConfig `mapstructure:"progression"`
	Keys        KeysConfig        `mapstructure:"keys"`
	Audio       AudioConfig       `mapstructure:"audio"`
}

// setDefaults registers every key with its default value. Registering all
// keys also makes AutomaticEnv overrides visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "./logs")

	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 540)
	v.SetDefault("window.title", "Hill Climb")

	v.SetDefault("world.segmentWidth", 80.0)
	v.SetDefault("world.segmentCount", 120)
	v.SetDefault("world.baseOffset", 120.0)
	v.SetDefault("world.minHeight", 100.0)
	v.SetDefault("world.endMargin", 60.0)
	v.SetDefault("world.spawnX", 150.0)
	v.SetDefault("world.respawnDepth", 300.0)
	v.SetDefault("world.cameraLead", 200.0)
	v.SetDefault("world.cameraSmooth", 0.08)
	v.SetDefault("world.wheelClearing", 12.0)

	v.SetDefault("physics.gravity", 0.5)
	v.SetDefault("physics.frictionGround", 0.95)
	v.SetDefault("physics.frictionAir", 0.999)
	v.SetDefault("physics.brakeFactor", 0.9)
	v.SetDefault("physics.minSpeed", -4.0)
	v.SetDefault("physics.baseMaxSpeed", 12.0)
	v.SetDefault("physics.maxSpeedPerLevel", 1.2)
	v.SetDefault("physics.jumpImpulse", 10.0)
	v.SetDefault("physics.jumpPerLevel", 0.8)
	v.SetDefault("physics.maxFrameStep", 2.5)

	v.SetDefault("progression.startEnergy", 100.0)
	v.SetDefault("progression.speedFactor", 0.12)
	v.SetDefault("progression.mass", 1.8)
	v.SetDefault("progression.jumpCost", 4.0)
	v.SetDefault("progression.respawnPenalty", 30.0)
	v.SetDefault("progression.respawnFloor", 20.0)
	v.SetDefault("progression.capacityStep", 10.0)
	v.SetDefault("progression.capacityMin", 40.0)
	v.SetDefault("progression.capacityMax", 200.0)
	v.SetDefault("progression.capacityCost", 20)
	v.SetDefault("progression.levelCost", 100)
	v.SetDefault("progression.levelCostGrowth", 1.8)
	v.SetDefault("progression.levelEnergyBonus", 15.0)
	v.SetDefault("progression.levelEnergyMax", 300.0)
	v.SetDefault("progression.levelSpeedBonus", 0.01)

	v.SetDefault("keys.accelerate", []string{"ArrowRight", "D"})
	v.SetDefault("keys.brake", []string{"ArrowLeft", "A"})
	v.SetDefault("keys.jump", []string{"ArrowUp", "W", "Space"})
	v.SetDefault("keys.decreaseCapacity", []string{"Digit1"})
	v.SetDefault("keys.increaseCapacity", []string{"Digit2"})
	v.SetDefault("keys.levelUp", []string{"L"})
	v.SetDefault("keys.pause", []string{"P"})
	v.SetDefault("keys.restart", []string{"R"})

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// Load reads configuration from hillclimb.{yaml,json,toml} in configDir,
// falling back to defaults when no file exists. HILLCLIMB_* environment
// variables override both, with dots replaced by underscores
// (HILLCLIMB_WORLD_SEGMENTCOUNT).
func Load(configDir string) (*Config, error) {
	setDefaults(viper.GetViper())

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every value at its default.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// ConfigFile returns the path of the file Load read, or "" when defaults were used.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.World.SegmentWidth <= 0:
		return fmt.Errorf("invalid segment width %v", c.World.SegmentWidth)
	case c.World.SegmentCount < 8:
		return fmt.Errorf("segment count %d too small, need at least 8", c.World.SegmentCount)
	case c.Physics.MaxFrameStep <= 0:
		return fmt.Errorf("invalid max frame step %v", c.Physics.MaxFrameStep)
	case c.Progression.CapacityMin <= 0 || c.Progression.CapacityMin > c.Progression.CapacityMax:
		return fmt.Errorf("invalid energy capacity range [%v, %v]", c.Progression.CapacityMin, c.Progression.CapacityMax)
	case c.Physics.MinSpeed > 0:
		return fmt.Errorf("min speed %v must not be positive", c.Physics.MinSpeed)
	case c.Physics.BaseMaxSpeed <= 0:
		return fmt.Errorf("invalid base max speed %v", c.Physics.BaseMaxSpeed)
	case c.Progression.StartEnergy <= 0:
		return fmt.Errorf("invalid start energy %v", c.Progression.StartEnergy)
	case c.Progression.RespawnFloor > c.Progression.CapacityMin:
		return fmt.Errorf("respawn floor %v above minimum capacity %v", c.Progression.RespawnFloor, c.Progression.CapacityMin)
	}

	// per-frame factors are raised to a fractional dt, so they must stay in (0, 1]
	factors := []struct {
		name  string
		value float64
	}{
		{"world.cameraSmooth", c.World.CameraSmooth},
		{"physics.frictionGround", c.Physics.FrictionGround},
		{"physics.frictionAir", c.Physics.FrictionAir},
		{"physics.brakeFactor", c.Physics.BrakeFactor},
	}
	for _, f := range factors {
		if !(f.value > 0 && f.value <= 1) {
			return fmt.Errorf("%s = %v, want a value in (0, 1]", f.name, f.value)
		}
	}
	return nil
}
