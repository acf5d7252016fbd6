package engine

import (
	"math"

	"github.com/ecosort/ecosort/internal/config"
)

// state holds everything the simulation tracks about a run. It is only
// mutated through apply, which keeps every transition in one place and
// makes the lives/game-over invariant impossible to bypass.
type state struct {
	Score         int
	Lives         int
	Level         int
	LevelProgress float64 // 0..100, resets on level-up
	SavedCO2      float64
	TotalSorted   int
	GameSpeed     float64 // global fall-speed scalar
	SpeedModifier float64 // spawn pacing modifier, divides delays
	Multiplier    float64 // points multiplier
	Items         []*Item
	Tip           string
	TipVisible    bool
	Paused        bool
	GameOver      bool
	NewHighScore  bool
}

func initialState(cfg *config.Config) state {
	return state{
		Lives:         cfg.Gameplay.Lives,
		Level:         1,
		GameSpeed:     cfg.Gameplay.InitialGameSpeed,
		SpeedModifier: 1,
		Multiplier:    1,
	}
}

// action is the closed set of state transitions. Anything not in this
// set leaves the state untouched.
type action interface{ isAction() }

type addScore struct{ points int }
type addLives struct{ delta int }
type setGameOver struct{ over bool }
type flipPause struct{}
type setPause struct{ paused bool }
type setItems struct{ items []*Item }
type showTip struct{ text string }
type hideTip struct{}
type setMultiplier struct{ m float64 }
type setModifier struct{ m float64 }
type setGameSpeed struct{ s float64 }
type addCO2 struct{ kg float64 }
type recordSorted struct{ n int }
type resetState struct{}
type setNewHighScore struct{ yes bool }

func (addScore) isAction()        {}
func (addLives) isAction()        {}
func (setGameOver) isAction()     {}
func (flipPause) isAction()       {}
func (setPause) isAction()        {}
func (setItems) isAction()        {}
func (showTip) isAction()         {}
func (hideTip) isAction()         {}
func (setMultiplier) isAction()   {}
func (setModifier) isAction()     {}
func (setGameSpeed) isAction()    {}
func (addCO2) isAction()          {}
func (recordSorted) isAction()    {}
func (resetState) isAction()      {}
func (setNewHighScore) isAction() {}

// apply reduces an action into a new state. The second return value is
// true when the action caused a level-up, so the caller can trigger the
// celebration side effects exactly once.
func apply(s state, a action, cfg *config.Config) (state, bool) {
	switch a := a.(type) {
	case addScore:
		s.Score += a.points
	case addLives:
		lives := s.Lives + a.delta
		if lives < 0 {
			lives = 0
		}
		if lives > cfg.Gameplay.MaxLives {
			lives = cfg.Gameplay.MaxLives
		}
		s.Lives = lives
		// lives and game-over change atomically
		s.GameOver = lives == 0
	case setGameOver:
		s.GameOver = a.over
	case flipPause:
		s.Paused = !s.Paused
	case setPause:
		s.Paused = a.paused
	case setItems:
		s.Items = a.items
	case showTip:
		s.Tip = a.text
		s.TipVisible = true
	case hideTip:
		s.TipVisible = false
	case setMultiplier:
		s.Multiplier = a.m
	case setModifier:
		s.SpeedModifier = a.m
	case setGameSpeed:
		s.GameSpeed = a.s
	case addCO2:
		s.SavedCO2 += a.kg
	case recordSorted:
		s.TotalSorted += a.n
		s.LevelProgress += progressIncrement(cfg, s.Level)
		if s.LevelProgress >= 100 {
			if s.Level < cfg.Gameplay.MaxLevel {
				s.Level++
				s.LevelProgress = 0
				s.GameSpeed = math.Min(s.GameSpeed+cfg.Gameplay.LevelSpeedStep, cfg.Gameplay.LevelSpeedCap)
				return s, true
			}
			// at the level cap the bar pins at full instead of wrapping
			s.LevelProgress = 100
		}
	case resetState:
		return initialState(cfg), false
	case setNewHighScore:
		s.NewHighScore = a.yes
	}
	return s, false
}

// progressIncrement is the level progress gained by one correct sort.
// Early levels progress faster so the ramp-in stays gentle.
func progressIncrement(cfg *config.Config, level int) float64 {
	factor := 1.0
	switch level {
	case 1:
		factor = cfg.Gameplay.LevelOneFactor
	case 2:
		factor = cfg.Gameplay.LevelTwoFactor
	}
	return cfg.Gameplay.BaseProgress / float64(5+(level-1)) * factor
}
