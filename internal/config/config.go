// Package config provides YAML-based game configuration loading and
// difficulty presets for the EcoSort engine.
package config

// Config contains all tunables for a sorting game session.
// Durations are in milliseconds; the engine converts them to ticks.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Motion   MotionConfig   `yaml:"motion"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Events   EventConfig    `yaml:"events"`
	Sort     SortConfig     `yaml:"sort"`
}

// GameplayConfig defines lives, leveling and global speed progression.
type GameplayConfig struct {
	Lives            int     `yaml:"lives"`              // starting lives
	MaxLives         int     `yaml:"max_lives"`          // upper clamp, extra-life power-up respects it
	MaxLevel         int     `yaml:"max_level"`          // level never exceeds this
	BaseProgress     float64 `yaml:"base_progress"`      // numerator of the per-sort progress increment
	LevelOneFactor   float64 `yaml:"level_one_factor"`   // progress boost on level 1
	LevelTwoFactor   float64 `yaml:"level_two_factor"`   // progress boost on level 2
	InitialGameSpeed float64 `yaml:"initial_game_speed"` // fall-speed scalar at game start
	InitialModifier  float64 `yaml:"initial_modifier"`   // spawn-rate modifier at game start
	LevelSpeedStep   float64 `yaml:"level_speed_step"`   // fall-speed scalar gain per level-up
	LevelSpeedCap    float64 `yaml:"level_speed_cap"`    // level-up gain stops at this scalar
	RampIntervalMs   int     `yaml:"ramp_interval_ms"`   // periodic speed ramp interval
	RampStep         float64 `yaml:"ramp_step"`          // scalar gain per ramp
	RampCap          float64 `yaml:"ramp_cap"`           // ramp gain stops at this scalar
}

// SpawnConfig defines wave sizing, pacing and capacity limits.
type SpawnConfig struct {
	MaxItems          int     `yaml:"max_items"`            // base simultaneous item cap
	SlotLimit         int     `yaml:"slot_limit"`           // wave size never exceeds slot_limit - in-flight items
	HardCap           int     `yaml:"hard_cap"`             // absolute cap regardless of level bonus
	WaveMin           int     `yaml:"wave_min"`             // min items rolled per wave
	WaveMax           int     `yaml:"wave_max"`             // max items rolled per wave
	IntervalMinMs     int     `yaml:"interval_min_ms"`      // level scaling never shortens the base below this
	IntervalMaxMs     int     `yaml:"interval_max_ms"`      // base of the inter-wave delay
	IntervalStepMs    int     `yaml:"interval_step_ms"`     // base reduction per level
	IntervalFloorMs   int     `yaml:"interval_floor_ms"`    // absolute floor after pacing adjustments
	MinSpacingBaseMs  int     `yaml:"min_spacing_base_ms"`  // min gap between consecutive spawns at level 0
	MinSpacingStepMs  int     `yaml:"min_spacing_step_ms"`  // gap reduction per level
	MinSpacingFloorMs int     `yaml:"min_spacing_floor_ms"` // gap never drops below this
	WaveDelayBaseMs   int     `yaml:"wave_delay_base_ms"`   // delay of the first item in a wave
	WaveDelayStepMs   int     `yaml:"wave_delay_step_ms"`   // extra delay per subsequent wave item
	GroupStaggerMs    int     `yaml:"group_stagger_ms"`     // stagger between items of a grouped request
	BackoffFullMs     int     `yaml:"backoff_full_ms"`      // retry delay when the field is at capacity
	BackoffEmptyMs    int     `yaml:"backoff_empty_ms"`     // retry delay when no slot is free
	SpecialChance     float64 `yaml:"special_chance"`       // chance a spawned item is marked special
}

// MotionConfig defines the falling and drifting behavior of items.
type MotionConfig struct {
	Acceleration    float64 `yaml:"acceleration"`      // fall speed gain per tick
	MinFallSpeed    float64 `yaml:"min_fall_speed"`    // fall speed clamp, lower bound
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`    // fall speed clamp, upper bound
	EdgeMargin      float64 `yaml:"edge_margin"`       // horizontal bounce margin, percent
	BounceGain      float64 `yaml:"bounce_gain"`       // drift velocity multiplier on bounce
	JitterChance    float64 `yaml:"jitter_chance"`     // per-tick chance of a random drift nudge
	JitterAmount    float64 `yaml:"jitter_amount"`     // max magnitude of a drift nudge
	MinDrift        float64 `yaml:"min_drift"`         // drift below this gets re-kicked
	SweepIntervalMs int     `yaml:"sweep_interval_ms"` // stalled-item sweep interval
	BottomEdge      float64 `yaml:"bottom_edge"`       // vertical position past which an item is missed
	SpawnSpeedBase  float64 `yaml:"spawn_speed_base"`  // base fall speed of a fresh item
	SpawnSpeedVar   float64 `yaml:"spawn_speed_var"`   // random fall speed variation at spawn
	SpawnSpeedLevel float64 `yaml:"spawn_speed_level"` // fall speed gain per level at spawn
	SpawnSpeedNoise float64 `yaml:"spawn_speed_noise"` // relative noise applied to the rolled spawn speed
	SpawnSpeedMin   float64 `yaml:"spawn_speed_min"`   // fresh items never fall slower than this
	SpawnMargin     float64 `yaml:"spawn_margin"`      // fresh items avoid this horizontal margin, percent
	SpawnDriftMin   float64 `yaml:"spawn_drift_min"`   // drift velocity range of a fresh item
	SpawnDriftMax   float64 `yaml:"spawn_drift_max"`
}

// PowerUpConfig defines power-up offer rolls and rarity weighting.
type PowerUpConfig struct {
	RollMinMs        int     `yaml:"roll_min_ms"`        // min delay between offer rolls
	RollMaxMs        int     `yaml:"roll_max_ms"`        // max delay between offer rolls
	RollChance       float64 `yaml:"roll_chance"`        // chance a roll produces an offer
	OfferTTLMs       int     `yaml:"offer_ttl_ms"`       // uncollected offers expire after this
	CommonWeight     int     `yaml:"common_weight"`      // rarity weights for the offer draw
	RareWeight       int     `yaml:"rare_weight"`
	EpicWeight       int     `yaml:"epic_weight"`
	SlowFactor       float64 `yaml:"slow_factor"`        // fall-speed scalar while slow-time is active
	ScoreBoostPoints int     `yaml:"score_boost_points"` // flat bonus from the score-boost power-up
}

// EventConfig defines special event rolls and frequency weighting.
type EventConfig struct {
	RollMinMs    int     `yaml:"roll_min_ms"`  // min delay between event rolls
	RollMaxMs    int     `yaml:"roll_max_ms"`  // max delay between event rolls
	RollChance   float64 `yaml:"roll_chance"`  // chance a roll triggers an event
	HighWeight   int     `yaml:"high_weight"`  // frequency weights for the event draw
	MediumWeight int     `yaml:"medium_weight"`
	LowWeight    int     `yaml:"low_weight"`
}

// SortConfig defines sort resolution timing.
type SortConfig struct {
	ReleaseMs     int `yaml:"release_ms"`       // resolving items are retained this long
	LifeLossGapMs int `yaml:"life_loss_gap_ms"` // min gap between consecutive life losses
	TipMs         int `yaml:"tip_ms"`           // educational tips stay visible this long
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.MaxLives = 5
		cfg.Gameplay.RampStep = 0.03
		cfg.Spawn.MinSpacingFloorMs = 700
		cfg.Motion.Acceleration = 0.004
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.RampStep = 0.08
		cfg.Spawn.IntervalMinMs = 700
		cfg.Spawn.SpecialChance = 0.25
		cfg.Motion.SpawnSpeedBase = 0.85
	}
}
