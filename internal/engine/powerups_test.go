package engine

import "testing"

func offerOf(g *Game, t PowerUpType) {
	def, _ := powerUpDef(t)
	g.powers.offer = &Offer{Def: def, X: 50, Y: 30}
}

func TestCollectExtraLife(t *testing.T) {
	g := newTestGame(1)
	g.timers.clear()
	g.st.Lives = 2

	offerOf(g, PowerExtraLife)
	if !g.powers.collect() {
		t.Fatal("Expected collect to succeed")
	}
	if g.st.Lives != 3 {
		t.Errorf("Expected 3 lives, got %d", g.st.Lives)
	}
	if g.powers.offer != nil {
		t.Error("Offer not consumed")
	}
}

func TestExtraLifeRespectsCap(t *testing.T) {
	g := newTestGame(2)
	g.timers.clear()

	offerOf(g, PowerExtraLife)
	g.powers.collect()
	if g.st.Lives != g.cfg.Gameplay.MaxLives {
		t.Errorf("Expected lives capped at %d, got %d", g.cfg.Gameplay.MaxLives, g.st.Lives)
	}
}

func TestDoublePointsExpires(t *testing.T) {
	g := newTestGame(3)
	g.timers.clear()

	offerOf(g, PowerDoublePoints)
	g.powers.collect()
	if g.st.Multiplier != 2 {
		t.Fatalf("Expected multiplier 2, got %v", g.st.Multiplier)
	}
	if !g.powers.active(PowerDoublePoints) {
		t.Fatal("Expected double points active")
	}

	// 15s duration at 20Hz.
	advanceTicks(g, g.ticksMsInt(15000)+1)
	if g.st.Multiplier != 1 {
		t.Errorf("Expected multiplier restored, got %v", g.st.Multiplier)
	}
	if g.powers.active(PowerDoublePoints) {
		t.Error("Expected double points expired")
	}
}

func TestSlowTimeRefreshes(t *testing.T) {
	g := newTestGame(4)
	g.timers.clear()

	offerOf(g, PowerSlowTime)
	g.powers.collect()
	first := g.powers.until[PowerSlowTime]

	// Collecting again mid-effect restarts the clock.
	advanceTicks(g, g.ticksMsInt(5000))
	offerOf(g, PowerSlowTime)
	g.powers.collect()
	second := g.powers.until[PowerSlowTime]

	if second <= first {
		t.Errorf("Expected refreshed end tick, %d -> %d", first, second)
	}

	// The stale end timer must not kill the refreshed effect early.
	advanceTicks(g, g.ticksMsInt(6000))
	if !g.powers.active(PowerSlowTime) {
		t.Error("Refreshed effect ended early")
	}
}

func TestClearScreenSortsEverything(t *testing.T) {
	g := newTestGame(5)
	g.timers.clear()
	g.st.Items = nil

	a := fieldItem(t, g, "bottle")
	b := fieldItem(t, g, "battery")

	offerOf(g, PowerClearScreen)
	g.powers.collect()

	if g.st.TotalSorted != 2 {
		t.Errorf("Expected both items sorted, got %d", g.st.TotalSorted)
	}
	if g.st.Score != a.Def.Points+b.Def.Points {
		t.Errorf("Expected score %d, got %d", a.Def.Points+b.Def.Points, g.st.Score)
	}
	if g.st.Lives != 3 {
		t.Errorf("Clear screen cost a life: %d", g.st.Lives)
	}
	if g.activeItemCount() != 0 {
		t.Errorf("Expected empty field, %d active", g.activeItemCount())
	}
}

func TestScoreBoostIsInstant(t *testing.T) {
	g := newTestGame(11)
	g.timers.clear()

	offerOf(g, PowerScoreBoost)
	g.powers.collect()
	if g.st.Score != g.cfg.PowerUps.ScoreBoostPoints {
		t.Errorf("Expected score %d, got %d", g.cfg.PowerUps.ScoreBoostPoints, g.st.Score)
	}
	if g.powers.active(PowerScoreBoost) {
		t.Error("Score boost should not linger as a timed effect")
	}
}

func TestCollectWithoutOffer(t *testing.T) {
	g := newTestGame(6)
	g.timers.clear()
	g.powers.offer = nil

	if g.powers.collect() {
		t.Error("Collect succeeded with no offer")
	}
}

func TestCollectWhilePaused(t *testing.T) {
	g := newTestGame(7)
	g.timers.clear()

	offerOf(g, PowerExtraLife)
	g.dispatch(setPause{true})
	if g.powers.collect() {
		t.Error("Collect succeeded while paused")
	}
}

func TestOfferExpires(t *testing.T) {
	g := newTestGame(8)
	g.timers.clear()

	g.powers.spawnOffer()
	if g.powers.offer == nil {
		t.Fatal("Expected an offer")
	}

	advanceTicks(g, g.ticksMsInt(g.cfg.PowerUps.OfferTTLMs)+1)
	if g.powers.offer != nil {
		t.Error("Offer outlived its TTL")
	}
}

func TestActiveEffectNotReoffered(t *testing.T) {
	g := newTestGame(9)
	g.timers.clear()

	// With every type but one active, the draw can only land there.
	for _, def := range PowerUpDefs {
		if def.Type != PowerExtraLife {
			g.powers.until[def.Type] = g.tick + 10000
		}
	}
	g.powers.spawnOffer()
	if g.powers.offer == nil {
		t.Fatal("Expected an offer")
	}
	if g.powers.offer.Def.Type != PowerExtraLife {
		t.Errorf("Offered an active effect: %v", g.powers.offer.Def.Type)
	}
}

func TestRollRarityWeights(t *testing.T) {
	g := newTestGame(10)

	counts := map[Rarity]int{}
	for i := 0; i < 1000; i++ {
		counts[g.powers.rollRarity(60, 30, 10)]++
	}
	if counts[RarityCommon] <= counts[RarityRare] || counts[RarityRare] <= counts[RarityEpic] {
		t.Errorf("Rarity weights not respected: %v", counts)
	}
}
