package config

import (
	_ "embed"
)

//go:embed defaults/ecosort.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Used as the last fallback
// when neither a user config nor the embedded YAML is usable.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			Lives:            3,
			MaxLives:         3,
			MaxLevel:         10,
			BaseProgress:     20,
			LevelOneFactor:   3.0,
			LevelTwoFactor:   1.5,
			InitialGameSpeed: 0.5,
			InitialModifier:  0.9,
			LevelSpeedStep:   0.1,
			LevelSpeedCap:    1.5,
			RampIntervalMs:   20000,
			RampStep:         0.05,
			RampCap:          1.8,
		},
		Spawn: SpawnConfig{
			MaxItems:          3,
			SlotLimit:         8,
			HardCap:           10,
			WaveMin:           1,
			WaveMax:           3,
			IntervalMinMs:     850,
			IntervalMaxMs:     1500,
			IntervalStepMs:    100,
			IntervalFloorMs:   500,
			MinSpacingBaseMs:  1200,
			MinSpacingStepMs:  70,
			MinSpacingFloorMs: 500,
			WaveDelayBaseMs:   200,
			WaveDelayStepMs:   400,
			GroupStaggerMs:    150,
			BackoffFullMs:     1500,
			BackoffEmptyMs:    1000,
			SpecialChance:     0.15,
		},
		Motion: MotionConfig{
			Acceleration:    0.006,
			MinFallSpeed:    0.35,
			MaxFallSpeed:    3.5,
			EdgeMargin:      5,
			BounceGain:      1.15,
			JitterChance:    0.08,
			JitterAmount:    0.15,
			MinDrift:        0.25,
			SweepIntervalMs: 1500,
			BottomEdge:      90,
			SpawnSpeedBase:  0.7,
			SpawnSpeedVar:   0.3,
			SpawnSpeedLevel: 0.05,
			SpawnSpeedNoise: 0.25,
			SpawnSpeedMin:   0.5,
			SpawnMargin:     10,
			SpawnDriftMin:   0.7,
			SpawnDriftMax:   1.2,
		},
		PowerUps: PowerUpConfig{
			RollMinMs:        15000,
			RollMaxMs:        25000,
			RollChance:       0.1,
			OfferTTLMs:       7000,
			CommonWeight:     60,
			RareWeight:       30,
			EpicWeight:       10,
			SlowFactor:       0.4,
			ScoreBoostPoints: 100,
		},
		Events: EventConfig{
			RollMinMs:    30000,
			RollMaxMs:    60000,
			RollChance:   0.15,
			HighWeight:   50,
			MediumWeight: 30,
			LowWeight:    20,
		},
		Sort: SortConfig{
			ReleaseMs:     300,
			LifeLossGapMs: 500,
			TipMs:         3000,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `ecosort config dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
