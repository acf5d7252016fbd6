package engine

import (
	"math"

	"github.com/ecosort/ecosort/internal/core"
)

// fallScale is the global multiplier applied to every item's vertical
// speed this tick.
func (g *Game) fallScale() float64 {
	scale := g.st.GameSpeed
	if g.powers.active(PowerSlowTime) {
		scale *= g.cfg.PowerUps.SlowFactor
	}
	return scale
}

// updateItems advances every active item one tick: drift with edge
// bounces and random nudges, then accelerated fall.
func (g *Game) updateItems() {
	if g.st.Paused || g.st.GameOver || len(g.st.Items) == 0 {
		return
	}

	m := g.cfg.Motion
	scale := g.fallScale()
	items := make([]*Item, 0, len(g.st.Items))

	for _, it := range g.st.Items {
		if it.Life != LifeActive {
			items = append(items, it)
			continue
		}

		next := *it
		next.X += next.VX

		// bounce off the margins with a little extra energy
		if next.X < m.EdgeMargin || next.X > 100-m.EdgeMargin {
			next.VX = -next.VX * m.BounceGain
			if next.X < m.EdgeMargin {
				next.X = m.EdgeMargin
			} else {
				next.X = 100 - m.EdgeMargin
			}
		}

		// occasional nudge so the drift doesn't look mechanical
		if g.rng.Float64() < m.JitterChance {
			next.VX += (g.rng.Float64()*2 - 1) * m.JitterAmount
		}

		// never let an item hover in place
		if math.Abs(next.VX) < m.MinDrift {
			dir := 1.0
			if g.rng.Float64() > 0.5 {
				dir = -1
			}
			next.VX = dir * (0.35 + g.rng.Float64()*0.4)
		}

		next.Fall = core.ClampF(next.Fall+m.Acceleration, m.MinFallSpeed, m.MaxFallSpeed)
		next.Y += next.Fall * scale

		items = append(items, &next)
	}

	g.dispatch(setItems{items})
}

// processOutOfBounds handles items that crossed the bottom edge.
// Normally a miss costs a life; while the magnet is active the item is
// pulled into its correct bin instead.
func (g *Game) processOutOfBounds() {
	if g.st.Paused || g.st.GameOver {
		return
	}

	magnet := g.powers.active(PowerMagnet)
	for _, it := range g.st.Items {
		if it.Life != LifeActive || it.Y <= g.cfg.Motion.BottomEdge {
			continue
		}
		if magnet {
			g.awardSort(it, false)
			g.retire(it)
			continue
		}
		g.retire(it)
		g.loseLife()
		if g.st.GameOver {
			return
		}
	}
}

// reviveStalled periodically re-kicks items that have slowed to a crawl
// so nothing ever sits motionless on screen.
func (g *Game) reviveStalled() {
	if g.st.Paused || g.st.GameOver {
		return
	}

	interval := g.ticksMs(g.cfg.Motion.SweepIntervalMs)
	if g.tick-g.lastSweep < interval {
		return
	}
	g.lastSweep = g.tick

	changed := false
	items := make([]*Item, 0, len(g.st.Items))
	for _, it := range g.st.Items {
		if it.Life == LifeActive && (math.Abs(it.VX) < 0.2 || it.Fall < 0.3) {
			next := *it
			dir := 1.0
			if g.rng.Float64() > 0.5 {
				dir = -1
			}
			next.VX = dir * (0.8 + g.rng.Float64()*0.6)
			next.Fall = math.Max(0.5, next.Fall+0.2)
			items = append(items, &next)
			changed = true
			continue
		}
		items = append(items, it)
	}

	if changed {
		g.dispatch(setItems{items})
	}
}
