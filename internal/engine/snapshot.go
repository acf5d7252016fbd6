package engine

import (
	"sort"

	"github.com/ecosort/ecosort/internal/catalog"
	"github.com/ecosort/ecosort/internal/core"
)

// ItemView is a render-ready view of one falling item.
type ItemView struct {
	InstanceID string
	Name       string
	Glyph      rune
	Category   catalog.Category
	X, Y       float64 // percent of field, Y grows downward
	Special    bool
	Obfuscated bool
	Target     bool
}

// OfferView describes the power-up currently offered on the field.
type OfferView struct {
	Type  PowerUpType
	Name  string
	Glyph rune
	X, Y  float64
}

// EffectView describes an active timed power-up effect.
type EffectView struct {
	Type        PowerUpType
	Name        string
	RemainingMs int
}

// EventView describes the running special event.
type EventView struct {
	Type        EventType
	Name        string
	RemainingMs int
}

// Snapshot is a complete render-ready view of the simulation. It copies
// everything a frontend needs so callers never reach into live state.
type Snapshot struct {
	Mode          string
	Score         int
	Lives         int
	MaxLives      int
	Level         int
	MaxLevel      int
	LevelProgress float64 // 0..100
	SavedCO2      float64
	TotalSorted   int
	Multiplier    float64
	Paused        bool
	GameOver      bool
	NewHighScore  bool
	Tip           string
	TipVisible    bool
	EcoFact       string // filled once the run ends

	Items   []ItemView
	Offer   *OfferView
	Effects []EffectView
	Event   *EventView
}

// Snapshot captures the current frame. Resolving and removed items are
// omitted; only what is still sortable appears.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:          g.ID(),
		Score:         g.st.Score,
		Lives:         g.st.Lives,
		MaxLives:      g.cfg.Gameplay.MaxLives,
		Level:         g.st.Level,
		MaxLevel:      g.cfg.Gameplay.MaxLevel,
		LevelProgress: g.st.LevelProgress,
		SavedCO2:      g.st.SavedCO2,
		TotalSorted:   g.st.TotalSorted,
		Multiplier:    g.st.Multiplier,
		Paused:        g.st.Paused,
		GameOver:      g.st.GameOver,
		NewHighScore:  g.st.NewHighScore,
		Tip:           g.st.Tip,
		TipVisible:    g.st.TipVisible,
		EcoFact:       g.endFact,
	}

	target := g.TargetItem()
	for _, it := range g.st.Items {
		if it.Life != LifeActive {
			continue
		}
		snap.Items = append(snap.Items, ItemView{
			InstanceID: it.InstanceID,
			Name:       it.Def.Name,
			Glyph:      it.Def.Glyph,
			Category:   it.Def.Category,
			X:          it.X,
			Y:          it.Y,
			Special:    it.Special,
			Obfuscated: it.Obfuscated,
			Target:     target != nil && it.InstanceID == target.InstanceID,
		})
	}

	if o := g.powers.offer; o != nil {
		snap.Offer = &OfferView{
			Type:  o.Def.Type,
			Name:  o.Def.Name,
			Glyph: o.Def.Glyph,
			X:     o.X,
			Y:     o.Y,
		}
	}
	for t, until := range g.powers.until {
		if until <= g.tick {
			continue
		}
		def, ok := powerUpDef(t)
		if !ok {
			continue
		}
		snap.Effects = append(snap.Effects, EffectView{
			Type:        t,
			Name:        def.Name,
			RemainingMs: g.msOf(until - g.tick),
		})
	}
	sort.Slice(snap.Effects, func(i, j int) bool {
		return snap.Effects[i].Type < snap.Effects[j].Type
	})

	if g.events.cur != "" && g.events.until > g.tick {
		snap.Event = &EventView{
			Type:        g.events.cur,
			Name:        g.events.curDef.Name,
			RemainingMs: g.msOf(g.events.until - g.tick),
		}
	}

	return snap
}

// msOf converts a tick count back to milliseconds.
func (g *Game) msOf(ticks uint64) int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return int(ticks * 1000 / uint64(rate))
}

func powerUpDef(t PowerUpType) (PowerUpDef, bool) {
	for _, def := range PowerUpDefs {
		if def.Type == t {
			return def, true
		}
	}
	return PowerUpDef{}, false
}
