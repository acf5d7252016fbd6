package engine

import (
	"math"
	"testing"
)

func TestItemsFall(t *testing.T) {
	g := newTestGame(1)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	y := it.Y

	g.updateItems()
	if got := g.findItem(it.InstanceID); got.Y <= y {
		t.Errorf("Expected item to fall, Y %v -> %v", y, got.Y)
	}
}

func TestFallAccelerationClamped(t *testing.T) {
	g := newTestGame(2)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.Fall = g.cfg.Motion.MaxFallSpeed
	it.Y = 10

	g.updateItems()
	if got := g.findItem(it.InstanceID); got.Fall > g.cfg.Motion.MaxFallSpeed {
		t.Errorf("Fall speed %v exceeds cap %v", got.Fall, g.cfg.Motion.MaxFallSpeed)
	}
}

func TestEdgeBounce(t *testing.T) {
	g := newTestGame(3)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.X = g.cfg.Motion.EdgeMargin + 0.1
	it.VX = -2.0
	it.Y = 10

	g.updateItems()
	got := g.findItem(it.InstanceID)
	if got.VX <= 0 {
		t.Errorf("Expected bounce to flip drift, VX=%v", got.VX)
	}
	if got.X < g.cfg.Motion.EdgeMargin {
		t.Errorf("Item escaped the left margin: X=%v", got.X)
	}
	// The bounce adds energy.
	if math.Abs(got.VX) < 2.0 {
		t.Errorf("Expected bounce gain, |VX|=%v", math.Abs(got.VX))
	}
}

func TestSlowTimeScalesFall(t *testing.T) {
	g := newTestGame(4)
	g.timers.clear()
	g.st.Items = nil

	base := g.fallScale()
	def, _ := powerUpDef(PowerSlowTime)
	g.powers.activate(def)
	slowed := g.fallScale()

	want := base * g.cfg.PowerUps.SlowFactor
	if math.Abs(slowed-want) > 1e-9 {
		t.Errorf("Expected slowed scale %v, got %v", want, slowed)
	}
}

func TestMissCostsLife(t *testing.T) {
	g := newTestGame(5)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.Y = g.cfg.Motion.BottomEdge + 1

	g.processOutOfBounds()
	if g.st.Lives != 2 {
		t.Errorf("Expected missed item to cost a life, got %d lives", g.st.Lives)
	}
	if it.Life != LifeResolving {
		t.Errorf("Expected missed item retiring, got %v", it.Life)
	}
	if g.st.Score != 0 {
		t.Errorf("Missed item scored points: %d", g.st.Score)
	}
}

func TestMagnetRescuesMiss(t *testing.T) {
	g := newTestGame(6)
	g.timers.clear()
	g.st.Items = nil

	def, _ := powerUpDef(PowerMagnet)
	g.powers.activate(def)

	it := fieldItem(t, g, "bottle")
	it.Y = g.cfg.Motion.BottomEdge + 1

	g.processOutOfBounds()
	if g.st.Lives != 3 {
		t.Errorf("Magnet should prevent life loss, got %d lives", g.st.Lives)
	}
	if g.st.Score != it.Def.Points {
		t.Errorf("Expected magnet to score the item, got %d", g.st.Score)
	}
	if g.st.TotalSorted != 1 {
		t.Errorf("Expected magnet sort counted, got %d", g.st.TotalSorted)
	}
}

func TestMissesInZenStillCostLives(t *testing.T) {
	g := New(Options{Zen: true})
	g.Reset(testRuntime(7))
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.Y = g.cfg.Motion.BottomEdge + 1

	g.processOutOfBounds()
	if g.st.Lives != 2 {
		t.Errorf("Zen mode still charges misses, got %d lives", g.st.Lives)
	}
}

func TestReviveStalled(t *testing.T) {
	g := newTestGame(8)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.VX = 0.01
	it.Fall = 0.1
	it.Y = 40

	// The sweep only runs once its interval has elapsed.
	g.tick += g.ticksMs(g.cfg.Motion.SweepIntervalMs) + 1
	g.reviveStalled()

	got := g.findItem(it.InstanceID)
	if math.Abs(got.VX) < 0.2 {
		t.Errorf("Expected drift re-kick, VX=%v", got.VX)
	}
	if got.Fall < 0.3 {
		t.Errorf("Expected fall re-kick, Fall=%v", got.Fall)
	}
}

func TestReviveRespectsInterval(t *testing.T) {
	g := newTestGame(9)
	g.timers.clear()
	g.st.Items = nil

	it := fieldItem(t, g, "bottle")
	it.VX = 0.01
	it.Y = 40
	g.lastSweep = g.tick

	g.reviveStalled()
	if got := g.findItem(it.InstanceID); math.Abs(got.VX) >= 0.2 {
		t.Error("Sweep ran before its interval elapsed")
	}
}
