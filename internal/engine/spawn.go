package engine

import (
	"fmt"
	"math"

	"github.com/ecosort/ecosort/internal/catalog"
)

// spawnRequest is one queued spawn: a group of items released together
// after an extra delay on top of the pacing gap.
type spawnRequest struct {
	delay uint64 // ticks
	items []catalog.Item
}

// spawner paces item arrivals. Requests pass through a FIFO queue with a
// level-dependent minimum gap between consecutive releases; at most one
// request is in flight at a time. When the queue drains it schedules the
// next wave on its own.
type spawner struct {
	g         *Game
	queue     []spawnRequest
	inFlight  bool
	lastSpawn int64 // tick of the most recent release, -1 before the first
}

func newSpawner(g *Game) *spawner {
	return &spawner{g: g, lastSpawn: -1}
}

func (sp *spawner) reset() {
	sp.queue = nil
	sp.inFlight = false
	sp.lastSpawn = -1
}

// schedule enqueues a group of items and kicks the queue.
func (sp *spawner) schedule(delay uint64, items ...catalog.Item) {
	sp.queue = append(sp.queue, spawnRequest{delay: delay, items: items})
	sp.processQueue()
}

// processQueue releases the head request once the pacing gap allows it.
func (sp *spawner) processQueue() {
	g := sp.g
	if g.st.Paused || g.st.GameOver || len(sp.queue) == 0 || sp.inFlight {
		return
	}
	sp.inFlight = true

	req := sp.queue[0]
	sp.queue = sp.queue[1:]

	spawnCfg := g.cfg.Spawn
	gapMs := maxInt(spawnCfg.MinSpacingBaseMs-g.st.Level*spawnCfg.MinSpacingStepMs, spawnCfg.MinSpacingFloorMs)
	minGap := g.ticksOf(float64(gapMs) / g.st.SpeedModifier)

	var wait uint64
	if sp.lastSpawn >= 0 {
		elapsed := g.tick - uint64(sp.lastSpawn)
		if elapsed < minGap {
			wait = minGap - elapsed
		}
	}

	g.timers.after(g.tick, wait+req.delay, func() {
		for i, def := range req.items {
			if i == 0 {
				g.spawnItem(def, false)
				continue
			}
			stagger := uint64(i) * g.ticksMs(spawnCfg.GroupStaggerMs)
			g.timers.after(g.tick, stagger, func() {
				g.spawnItem(def, false)
			})
		}
		sp.lastSpawn = int64(g.tick)
		sp.inFlight = false

		if len(sp.queue) > 0 {
			sp.processQueue()
		} else if !g.st.GameOver && !g.st.Paused {
			g.timers.after(g.tick, sp.nextWaveDelay(), sp.wave)
		}
	})
}

// wave rolls a batch of random items and queues them with increasing
// delays. If the field is full the wave retries later instead.
func (sp *spawner) wave() {
	g := sp.g
	if g.st.Paused || g.st.GameOver {
		return
	}

	spawnCfg := g.cfg.Spawn
	if !sp.hasCapacity() {
		g.timers.after(g.tick, g.ticksMs(spawnCfg.BackoffFullMs), sp.wave)
		return
	}

	raw := spawnCfg.WaveMin + g.rng.Intn(spawnCfg.WaveMax-spawnCfg.WaveMin+1)
	raw += minInt(g.st.Level/2, 5) // +1 item every two levels
	slots := spawnCfg.SlotLimit - g.activeItemCount()
	count := minInt(raw, slots)
	if count <= 0 {
		g.timers.after(g.tick, g.ticksMs(spawnCfg.BackoffEmptyMs), sp.wave)
		return
	}

	for i := 0; i < count; i++ {
		def := catalog.Items[g.rng.Intn(len(catalog.Items))]
		delay := g.ticksMs(spawnCfg.WaveDelayBaseMs + i*spawnCfg.WaveDelayStepMs)
		sp.schedule(delay, def)
	}
}

// hasCapacity reports whether the field accepts another wave. The cap
// grows with level up to a hard limit.
func (sp *spawner) hasCapacity() bool {
	g := sp.g
	bonus := minInt(int(float64(g.st.Level)/1.5), 6)
	limit := minInt(g.cfg.Spawn.MaxItems+bonus, g.cfg.Spawn.HardCap)
	return g.activeItemCount() < limit
}

// nextWaveDelay computes the pause before an idle queue starts a new
// wave: level shortens the base, a random factor breaks monotony, and
// the pacing modifier compresses everything.
func (sp *spawner) nextWaveDelay() uint64 {
	g := sp.g
	spawnCfg := g.cfg.Spawn

	base := float64(maxInt(spawnCfg.IntervalMaxMs-g.st.Level*spawnCfg.IntervalStepMs, spawnCfg.IntervalMinMs))
	randomFactor := 0.8 + g.rng.Float64()*0.4
	delay := base * randomFactor / (g.st.SpeedModifier * (1 + float64(g.st.Level)*0.1))
	delay = math.Max(delay, float64(spawnCfg.IntervalFloorMs))
	return g.ticksOf(delay)
}

// ensureFlow restarts spawning after a resume: immediately when the
// field is empty, after a short random pause when there is still room.
func (sp *spawner) ensureFlow() {
	g := sp.g
	if g.st.GameOver {
		return
	}
	if g.activeItemCount() == 0 && len(sp.queue) == 0 {
		sp.wave()
	} else if sp.hasCapacity() && len(sp.queue) == 0 {
		delay := g.ticksOf(500 + g.rng.Float64()*1000)
		g.timers.after(g.tick, delay, sp.wave)
	}
}

// spawnItem places a fresh instance of def at the top of the field.
// forceSpecial marks the item special regardless of the random roll,
// used by the bonus-item event.
func (g *Game) spawnItem(def catalog.Item, forceSpecial bool) {
	if g.st.Paused || g.st.GameOver {
		return
	}

	m := g.cfg.Motion
	x := g.rng.Float64()*(100-2*m.SpawnMargin) + m.SpawnMargin

	dir := 1.0
	if g.rng.Float64() > 0.5 {
		dir = -1
	}
	vx := dir * (m.SpawnDriftMin*1.5 + g.rng.Float64()*(m.SpawnDriftMax-m.SpawnDriftMin))

	base := m.SpawnSpeedBase + g.rng.Float64()*m.SpawnSpeedVar + float64(g.st.Level)*m.SpawnSpeedLevel
	noise := (g.rng.Float64()*1.2 - 0.6) * m.SpawnSpeedNoise
	fall := math.Max(m.SpawnSpeedMin, base+noise*base)

	g.seq++
	it := &Item{
		InstanceID: fmt.Sprintf("%s-%d-%d", def.ID, g.tick, g.seq),
		Def:        def,
		X:          x,
		VX:         vx,
		Fall:       fall,
		Special:    forceSpecial || g.rng.Float64() < g.cfg.Spawn.SpecialChance,
		Obfuscated: g.events.mixedActive(),
	}

	items := append(append([]*Item(nil), g.st.Items...), it)
	g.dispatch(setItems{items})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
