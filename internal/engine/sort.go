package engine

import (
	"fmt"
	"math"

	"github.com/ecosort/ecosort/internal/catalog"
)

// Outcome is the result of a sort attempt.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "ignored"
	}
}

// ResolveSort attempts to sort the identified item into the given bin.
// Attempts against unknown, already-resolving or removed items are
// ignored, as is any input while paused or after game over.
func (g *Game) ResolveSort(instanceID string, bin catalog.Category) Outcome {
	if g.st.Paused || g.st.GameOver || !bin.Valid() {
		return OutcomeIgnored
	}

	it := g.findItem(instanceID)
	if it == nil || it.Life != LifeActive {
		return OutcomeIgnored
	}

	if it.Def.Category == bin {
		g.awardSort(it, true)
		g.retire(it)
		return OutcomeCorrect
	}

	g.retire(it)
	if g.zen {
		// Zen mode forgives mistakes; only dropped items cost lives.
		g.showTipFor(fmt.Sprintf("%s belongs in: %s", it.Def.Name, binLabel(it.Def.Category)))
	} else if g.loseLife() {
		g.showTipFor(fmt.Sprintf("Wrong! %s belongs in: %s", it.Def.Name, binLabel(it.Def.Category)))
	}
	return OutcomeIncorrect
}

// awardSort applies the rewards of a correct sort: points scaled by the
// multiplier (doubled again for special items), CO2 credit and level
// progress. withTip controls whether the item's educational tip shows.
func (g *Game) awardSort(it *Item, withTip bool) {
	points := float64(it.Def.Points) * g.st.Multiplier
	if it.Special {
		points *= 2
	}
	g.dispatch(addScore{int(math.Round(points))})
	g.dispatch(addCO2{it.Def.CO2})

	leveled := g.dispatchSort()
	if withTip && !leveled {
		g.showTipFor(it.Def.Tip)
	}
}

// dispatchSort records one sorted item and fires level-up side effects
// when the progress bar wraps.
func (g *Game) dispatchSort() bool {
	next, leveled := apply(g.st, recordSorted{1}, &g.cfg)
	g.st = next
	if leveled {
		g.onLevelUp(g.st.Level)
	}
	return leveled
}

// retire flips an item to resolving and arms its release. The instance
// stays findable (and rejectable) until the release fires, then drops
// from the field entirely.
func (g *Game) retire(it *Item) {
	it.Life = LifeResolving
	id := it.InstanceID
	g.timers.after(g.tick, g.ticksMs(g.cfg.Sort.ReleaseMs), func() {
		items := make([]*Item, 0, len(g.st.Items))
		for _, cur := range g.st.Items {
			if cur.InstanceID == id {
				cur.Life = LifeRemoved
				continue
			}
			items = append(items, cur)
		}
		g.dispatch(setItems{items})
	})
}

// loseLife deducts a life, rate-limited so near-simultaneous mistakes
// cost only one.
func (g *Game) loseLife() bool {
	window := g.ticksMs(g.cfg.Sort.LifeLossGapMs)
	if g.lastLifeLoss >= 0 && g.tick-uint64(g.lastLifeLoss) < window {
		return false
	}
	g.lastLifeLoss = int64(g.tick)
	g.dispatch(addLives{-1})
	return true
}

// onLevelUp announces the new level and celebrates with a bonus wave.
func (g *Game) onLevelUp(level int) {
	var msg string
	switch {
	case level == 2:
		msg = "Level 2! The difficulty ramps up from here."
	case level == 3:
		msg = "Level 3! Things get trickier, stay sharp!"
	case level >= 4:
		msg = fmt.Sprintf("Level %d! You're an expert now, keep it up!", level)
	default:
		msg = fmt.Sprintf("Level %d! Difficulty increased.", level)
	}
	g.showTipFor(msg)

	count := minInt(level+2, 5)
	for i := 0; i < count; i++ {
		def := catalog.Items[g.rng.Intn(len(catalog.Items))]
		delay := g.ticksMs(800) + uint64(i+1)*g.ticksMs(300)
		g.timers.after(g.tick, delay, func() {
			g.spawnItem(def, false)
		})
	}
}

// showTipFor displays a tip and arms its hide timer, replacing any tip
// already on screen.
func (g *Game) showTipFor(text string) {
	if g.tipTimer != 0 {
		g.timers.cancel(g.tipTimer)
	}
	g.dispatch(showTip{text})
	g.tipTimer = g.timers.after(g.tick, g.ticksMs(g.cfg.Sort.TipMs), func() {
		g.dispatch(hideTip{})
		g.tipTimer = 0
	})
}

func binLabel(c catalog.Category) string {
	switch c {
	case catalog.Recycle:
		return "Recycle"
	case catalog.Trash:
		return "Trash"
	case catalog.Reuse:
		return "Reuse"
	default:
		return string(c)
	}
}
