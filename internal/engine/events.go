package engine

import "github.com/ecosort/ecosort/internal/catalog"

// EventType identifies a special event.
type EventType string

const (
	EventItemRain   EventType = "itemRain"
	EventBonusItem  EventType = "bonusItem"
	EventMixedItems EventType = "mixedItems"
)

// Frequency buckets events for the weighted draw.
type Frequency string

const (
	FreqHigh   Frequency = "high"
	FreqMedium Frequency = "medium"
	FreqLow    Frequency = "low"
)

// EventDef is a static special event definition.
type EventDef struct {
	Type        EventType
	Name        string
	Description string
	DurationMs  int
	Frequency   Frequency
}

// EventDefs is the full set of special events.
var EventDefs = []EventDef{
	{Type: EventItemRain, Name: "Item Rain", DurationMs: 8000, Frequency: FreqMedium,
		Description: "A burst of items rains down faster"},
	{Type: EventBonusItem, Name: "Bonus Item", DurationMs: 5000, Frequency: FreqHigh,
		Description: "A special item appears for bonus points"},
	{Type: EventMixedItems, Name: "Mixed Items", DurationMs: 12000, Frequency: FreqLow,
		Description: "Hard-to-identify items are falling"},
}

// eventManager rolls special events on a randomized interval. Only one
// event runs at a time.
type eventManager struct {
	g      *Game
	cur    EventType // "" when idle
	until  uint64
	curDef EventDef
}

func newEventManager(g *Game) *eventManager {
	return &eventManager{g: g}
}

func (em *eventManager) reset() {
	em.cur = ""
	em.until = 0
}

// mixedActive reports whether the mixed-items event is running; items
// spawned during it are obfuscated.
func (em *eventManager) mixedActive() bool {
	return em.cur == EventMixedItems
}

// scheduleRoll arms the next event roll at a random point in the
// configured window. Rolls repeat for the whole run.
func (em *eventManager) scheduleRoll() {
	g := em.g
	cfg := g.cfg.Events
	delay := g.ticksOf(float64(cfg.RollMinMs) + g.rng.Float64()*float64(cfg.RollMaxMs-cfg.RollMinMs))
	g.timers.after(g.tick, delay, func() {
		if !g.st.GameOver {
			if em.cur == "" && g.rng.Float64() < cfg.RollChance {
				em.trigger()
			}
			em.scheduleRoll()
		}
	})
}

// trigger draws an event by frequency weight and activates it.
func (em *eventManager) trigger() {
	g := em.g
	cfg := g.cfg.Events

	freq := em.rollFrequency(cfg.HighWeight, cfg.MediumWeight, cfg.LowWeight)
	pool := make([]EventDef, 0, len(EventDefs))
	for _, def := range EventDefs {
		if def.Frequency == freq {
			pool = append(pool, def)
		}
	}
	if len(pool) == 0 {
		pool = EventDefs
	}
	def := pool[g.rng.Intn(len(pool))]

	em.cur = def.Type
	em.curDef = def
	em.until = g.tick + g.ticksMs(def.DurationMs)
	g.showTipFor(def.Description)

	switch def.Type {
	case EventItemRain:
		em.rain()
	case EventBonusItem:
		def := catalog.Items[g.rng.Intn(len(catalog.Items))]
		g.spawnItem(def, true)
	case EventMixedItems:
		// nothing to do up front; spawns during the window are obfuscated
	}

	g.timers.after(g.tick, em.until-g.tick, func() {
		em.cur = ""
	})
}

// rain queues a burst of items with short staggers, bypassing the
// normal wave sizing.
func (em *eventManager) rain() {
	g := em.g
	count := 4 + g.rng.Intn(3)
	for i := 0; i < count; i++ {
		def := catalog.Items[g.rng.Intn(len(catalog.Items))]
		g.spawn.schedule(uint64(i)*g.ticksMs(g.cfg.Spawn.GroupStaggerMs), def)
	}
}

func (em *eventManager) rollFrequency(high, medium, low int) Frequency {
	total := high + medium + low
	if total <= 0 {
		return FreqHigh
	}
	roll := em.g.rng.Intn(total)
	switch {
	case roll < high:
		return FreqHigh
	case roll < high+medium:
		return FreqMedium
	default:
		return FreqLow
	}
}
