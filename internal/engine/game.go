package engine

import (
	"math/rand"
	"time"

	"github.com/ecosort/ecosort/internal/catalog"
	"github.com/ecosort/ecosort/internal/config"
	"github.com/ecosort/ecosort/internal/core"
	"github.com/ecosort/ecosort/internal/registry"
)

// Game is the deterministic EcoSort simulation. All timing is expressed
// in ticks so the same seed and input sequence always replay the same
// run.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand
	zen     bool

	tick   uint64
	seq    uint64
	timers *scheduler
	st     state

	spawn  *spawner
	powers *powerUpManager
	events *eventManager

	store        ProgressStore
	statsSaved   bool
	endFact      string
	lastLifeLoss int64
	lastSweep    uint64
	tipTimer     timerID
}

// Options customize a new game instance.
type Options struct {
	// Config overrides the packaged defaults when non-nil.
	Config *config.Config
	// Store persists progress between runs. Nil disables persistence.
	Store ProgressStore
	// Zen makes wrong sorts free; dropped items still cost lives.
	Zen bool
}

// Package-level overrides applied by the CLI before games are built.
var (
	configOverride config.Config = config.Default()
	storeOverride  ProgressStore = nopStore{}
)

// Configure installs the config and store used by registry-built games.
func Configure(cfg config.Config, store ProgressStore) {
	configOverride = cfg
	if store != nil {
		storeOverride = store
	}
}

// New creates a game with the given options.
func New(opts Options) *Game {
	g := &Game{
		cfg:   config.Default(),
		store: nopStore{},
		zen:   opts.Zen,
	}
	if opts.Config != nil {
		g.cfg = *opts.Config
	}
	if opts.Store != nil {
		g.store = opts.Store
	}
	return g
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New(Options{Config: &configOverride, Store: storeOverride})
	})
	registry.Register("zen", func() registry.Game {
		return New(Options{Config: &configOverride, Store: storeOverride, Zen: true})
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.zen {
		return "zen"
	}
	return "classic"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.zen {
		return "EcoSort (Zen)"
	}
	return "EcoSort"
}

// Reset initializes/restarts the simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.runtime = cfg
	g.tick = 0
	g.seq = 0
	g.timers = newScheduler()
	g.st = initialState(&g.cfg)
	g.statsSaved = false
	g.endFact = ""
	g.lastLifeLoss = -1
	g.lastSweep = 0
	g.tipTimer = 0

	if g.spawn == nil {
		g.spawn = newSpawner(g)
		g.powers = newPowerUpManager(g)
		g.events = newEventManager(g)
	}
	g.spawn.reset()
	g.powers.reset()
	g.events.reset()

	g.start()
}

// start kicks off a fresh run: the spawn flow, the difficulty ramp and
// the power-up and event rolls.
func (g *Game) start() {
	g.dispatch(setModifier{g.cfg.Gameplay.InitialModifier})

	progress, err := g.store.LoadProgress()
	if err == nil && !progress.CompletedTutorial {
		g.showTipFor("Sort falling items: 1 Recycle, 2 Trash, 3 Reuse. Space grabs power-ups!")
		_ = g.store.MarkTutorialComplete()
	}

	g.spawn.wave()
	g.scheduleRamp()
	g.powers.scheduleRoll()
	g.events.scheduleRoll()
}

// scheduleRamp nudges the fall speed up at a fixed cadence so long runs
// keep getting harder between level-ups.
func (g *Game) scheduleRamp() {
	g.timers.after(g.tick, g.ticksMs(g.cfg.Gameplay.RampIntervalMs), func() {
		if g.st.GameOver {
			return
		}
		next := g.st.GameSpeed + g.cfg.Gameplay.RampStep
		if next > g.cfg.Gameplay.RampCap {
			next = g.cfg.Gameplay.RampCap
		}
		g.dispatch(setGameSpeed{next})
		g.scheduleRamp()
	})
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.st.GameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.st.GameOver {
		g.dispatch(flipPause{})
		if !g.st.Paused {
			g.spawn.ensureFlow()
		}
	}

	if g.st.Paused || g.st.GameOver {
		if g.st.GameOver {
			g.finishRun()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionBinRecycle):
		g.sortTarget(catalog.Recycle)
	case input.Has(core.ActionBinTrash):
		g.sortTarget(catalog.Trash)
	case input.Has(core.ActionBinReuse):
		g.sortTarget(catalog.Reuse)
	case input.Has(core.ActionCollect):
		g.powers.collect()
	}

	if g.st.GameOver {
		g.finishRun()
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.timers.advance(g.tick)

	g.processOutOfBounds()
	g.updateItems()
	g.reviveStalled()

	if g.st.GameOver {
		g.finishRun()
	}

	return core.StepResult{State: g.State()}
}

// sortTarget sorts the item closest to the bottom into the given bin.
func (g *Game) sortTarget(bin catalog.Category) {
	if it := g.TargetItem(); it != nil {
		g.ResolveSort(it.InstanceID, bin)
	}
}

// TargetItem returns the active item nearest the bottom edge, the one a
// bin press resolves. Nil when the field is empty.
func (g *Game) TargetItem() *Item {
	var target *Item
	for _, it := range g.st.Items {
		if it.Life != LifeActive {
			continue
		}
		if target == nil || it.Y > target.Y {
			target = it
		}
	}
	return target
}

func (g *Game) findItem(instanceID string) *Item {
	for _, it := range g.st.Items {
		if it.InstanceID == instanceID {
			return it
		}
	}
	return nil
}

// finishRun persists the run once, then stops all pending timers.
func (g *Game) finishRun() {
	if g.statsSaved {
		return
	}
	g.statsSaved = true
	g.timers.clear()
	g.tipTimer = 0
	g.endFact = catalog.EcoFacts[g.rng.Intn(len(catalog.EcoFacts))]

	if best, err := g.store.RecordHighScore(g.st.Score); err == nil && best {
		g.dispatch(setNewHighScore{true})
	}
	_ = g.store.AccumulateStats(g.st.TotalSorted, g.st.SavedCO2)
	_ = g.store.SaveRun(RunRecord{
		Mode:         g.ID(),
		Score:        g.st.Score,
		ItemsSorted:  g.st.TotalSorted,
		CO2Saved:     g.st.SavedCO2,
		LevelReached: g.st.Level,
	})
}

// dispatch applies an action to the state. Level-up side effects are
// handled by dispatchSort; everything else applies directly.
func (g *Game) dispatch(a action) {
	g.st, _ = apply(g.st, a, &g.cfg)
}

// ticksMs converts a millisecond duration into ticks, never below one.
func (g *Game) ticksMs(ms int) uint64 {
	return g.ticksOf(float64(ms))
}

func (g *Game) ticksOf(ms float64) uint64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	t := uint64(ms * float64(rate) / 1000)
	if t < 1 {
		t = 1
	}
	return t
}

func (g *Game) activeItemCount() int {
	n := 0
	for _, it := range g.st.Items {
		if it.Life == LifeActive {
			n++
		}
	}
	return n
}

// State reports the HUD-level state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.st.Score,
		Lives:    g.st.Lives,
		Level:    g.st.Level,
		GameOver: g.st.GameOver,
		Paused:   g.st.Paused,
	}
}
