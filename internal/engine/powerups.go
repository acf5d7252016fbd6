package engine

// PowerUpType identifies a power-up effect.
type PowerUpType string

const (
	PowerSlowTime     PowerUpType = "slowTime"
	PowerMagnet       PowerUpType = "magnet"
	PowerExtraLife    PowerUpType = "extraLife"
	PowerDoublePoints PowerUpType = "doublePoints"
	PowerClearScreen  PowerUpType = "clearScreen"
	PowerScoreBoost   PowerUpType = "scoreBoost"
)

// Rarity controls how often a power-up is offered.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// PowerUpDef is a static power-up definition. A zero duration means the
// effect is instantaneous.
type PowerUpDef struct {
	Type       PowerUpType
	Name       string
	Glyph      rune
	DurationMs int
	Effect     string
	Rarity     Rarity
}

// PowerUpDefs is the full set of offerable power-ups.
var PowerUpDefs = []PowerUpDef{
	{Type: PowerSlowTime, Name: "Slow Time", Glyph: '~', DurationMs: 10000, Rarity: RarityCommon,
		Effect: "Slows falling items for 10 seconds"},
	{Type: PowerMagnet, Name: "Magnet", Glyph: '@', DurationMs: 8000, Rarity: RarityRare,
		Effect: "Pulls missed items into their correct bin"},
	{Type: PowerExtraLife, Name: "Extra Life", Glyph: '&', DurationMs: 0, Rarity: RarityEpic,
		Effect: "Adds an extra life"},
	{Type: PowerDoublePoints, Name: "Double Points", Glyph: '$', DurationMs: 15000, Rarity: RarityRare,
		Effect: "Doubles points earned for 15 seconds"},
	{Type: PowerClearScreen, Name: "Clear Screen", Glyph: '*', DurationMs: 0, Rarity: RarityEpic,
		Effect: "Sorts every item on screen correctly"},
	{Type: PowerScoreBoost, Name: "Score Boost", Glyph: '+', DurationMs: 0, Rarity: RarityCommon,
		Effect: "Instant bonus points"},
}

// Offer is a collectible power-up floating on the field.
type Offer struct {
	Def  PowerUpDef
	X, Y float64
}

// powerUpManager rolls offers on a randomized interval and tracks
// running timed effects. At most one offer is on the field at a time and
// a type that is already active is never offered again until it ends.
type powerUpManager struct {
	g          *Game
	offer      *Offer
	offerTimer timerID
	until      map[PowerUpType]uint64 // effect end tick
	endTimers  map[PowerUpType]timerID
}

func newPowerUpManager(g *Game) *powerUpManager {
	return &powerUpManager{
		g:         g,
		until:     make(map[PowerUpType]uint64),
		endTimers: make(map[PowerUpType]timerID),
	}
}

func (pm *powerUpManager) reset() {
	pm.offer = nil
	pm.offerTimer = 0
	pm.until = make(map[PowerUpType]uint64)
	pm.endTimers = make(map[PowerUpType]timerID)
}

// active reports whether a timed effect is currently running.
func (pm *powerUpManager) active(t PowerUpType) bool {
	_, ok := pm.until[t]
	return ok
}

// scheduleRoll arms the next offer roll at a random point in the
// configured window. Rolls repeat for the whole run.
func (pm *powerUpManager) scheduleRoll() {
	g := pm.g
	cfg := g.cfg.PowerUps
	delay := g.ticksOf(float64(cfg.RollMinMs) + g.rng.Float64()*float64(cfg.RollMaxMs-cfg.RollMinMs))
	g.timers.after(g.tick, delay, func() {
		if !g.st.GameOver {
			if pm.offer == nil && g.rng.Float64() < cfg.RollChance {
				pm.spawnOffer()
			}
			pm.scheduleRoll()
		}
	})
}

// spawnOffer draws a rarity by weight, then a power-up within that tier,
// skipping types whose effect is still running.
func (pm *powerUpManager) spawnOffer() {
	g := pm.g
	cfg := g.cfg.PowerUps

	pool := make([]PowerUpDef, 0, len(PowerUpDefs))
	for _, def := range PowerUpDefs {
		if !pm.active(def.Type) {
			pool = append(pool, def)
		}
	}
	if len(pool) == 0 {
		return
	}

	rarity := pm.rollRarity(cfg.CommonWeight, cfg.RareWeight, cfg.EpicWeight)
	tier := make([]PowerUpDef, 0, len(pool))
	for _, def := range pool {
		if def.Rarity == rarity {
			tier = append(tier, def)
		}
	}
	if len(tier) == 0 {
		tier = pool
	}
	def := tier[g.rng.Intn(len(tier))]

	pm.offer = &Offer{
		Def: def,
		X:   g.rng.Float64()*70 + 15,
		Y:   g.rng.Float64()*40 + 20,
	}
	pm.offerTimer = g.timers.after(g.tick, g.ticksMs(cfg.OfferTTLMs), func() {
		pm.offer = nil
	})
}

func (pm *powerUpManager) rollRarity(common, rare, epic int) Rarity {
	total := common + rare + epic
	if total <= 0 {
		return RarityCommon
	}
	roll := pm.g.rng.Intn(total)
	switch {
	case roll < common:
		return RarityCommon
	case roll < common+rare:
		return RarityRare
	default:
		return RarityEpic
	}
}

// collect consumes the current offer and applies its effect. Returns
// false when there is nothing to collect.
func (pm *powerUpManager) collect() bool {
	g := pm.g
	if g.st.Paused || g.st.GameOver || pm.offer == nil {
		return false
	}

	def := pm.offer.Def
	g.timers.cancel(pm.offerTimer)
	pm.offer = nil

	switch def.Type {
	case PowerSlowTime, PowerMagnet:
		pm.activate(def)
	case PowerDoublePoints:
		g.dispatch(setMultiplier{2})
		pm.activate(def)
	case PowerExtraLife:
		g.dispatch(addLives{+1})
	case PowerScoreBoost:
		g.dispatch(addScore{g.cfg.PowerUps.ScoreBoostPoints})
	case PowerClearScreen:
		g.clearScreen()
	}

	g.showTipFor(def.Effect)
	return true
}

// activate starts (or refreshes) a timed effect and arms its end timer.
func (pm *powerUpManager) activate(def PowerUpDef) {
	g := pm.g
	if t, ok := pm.endTimers[def.Type]; ok {
		g.timers.cancel(t)
	}
	dur := g.ticksMs(def.DurationMs)
	pm.until[def.Type] = g.tick + dur
	pm.endTimers[def.Type] = g.timers.after(g.tick, dur, func() {
		delete(pm.until, def.Type)
		delete(pm.endTimers, def.Type)
		if def.Type == PowerDoublePoints {
			g.dispatch(setMultiplier{1})
		}
	})
}

// clearScreen resolves every active item into its correct bin.
func (g *Game) clearScreen() {
	for _, it := range g.st.Items {
		if it.Life != LifeActive {
			continue
		}
		g.awardSort(it, false)
		g.retire(it)
		if g.st.GameOver {
			return
		}
	}
}
