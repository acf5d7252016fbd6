package engine

import (
	"testing"

	"github.com/ecosort/ecosort/internal/catalog"
)

func TestSpawnItemWithinField(t *testing.T) {
	g := newTestGame(1)
	g.timers.clear()
	g.st.Items = nil

	for i := 0; i < 50; i++ {
		def := catalog.Items[g.rng.Intn(len(catalog.Items))]
		g.spawnItem(def, false)
	}

	m := g.cfg.Motion
	for _, it := range g.st.Items {
		if it.X < m.SpawnMargin || it.X > 100-m.SpawnMargin {
			t.Errorf("Spawn X %v outside [%v, %v]", it.X, m.SpawnMargin, 100-m.SpawnMargin)
		}
		if it.Y != 0 {
			t.Errorf("Spawn Y %v, want 0", it.Y)
		}
		if it.Fall < m.SpawnSpeedMin {
			t.Errorf("Spawn fall %v below minimum %v", it.Fall, m.SpawnSpeedMin)
		}
		if it.VX == 0 {
			t.Error("Spawn with no drift")
		}
		if it.Life != LifeActive {
			t.Errorf("Spawn lifecycle %v, want active", it.Life)
		}
	}
}

func TestInstanceIDsUnique(t *testing.T) {
	g := newTestGame(2)
	g.timers.clear()
	g.st.Items = nil

	def, _ := catalog.ByID("bottle")
	// Same definition, same tick: the sequence keeps IDs distinct.
	g.spawnItem(def, false)
	g.spawnItem(def, false)
	g.spawnItem(def, false)

	seen := map[string]bool{}
	for _, it := range g.st.Items {
		if seen[it.InstanceID] {
			t.Errorf("Duplicate instance ID %s", it.InstanceID)
		}
		seen[it.InstanceID] = true
	}
}

func TestCapacityGrowsWithLevel(t *testing.T) {
	g := newTestGame(3)

	g.st.Level = 1
	g.st.Items = nil
	for i := 0; i < 3; i++ {
		fieldItem(t, g, "bottle")
	}
	if g.spawn.hasCapacity() {
		t.Error("Expected level 1 full at 3 items")
	}

	// higher level raises the cap
	g.st.Level = 6
	if !g.spawn.hasCapacity() {
		t.Error("Expected level 6 capacity above 3 items")
	}

	// hard cap holds at any level
	g.st.Level = 10
	for i := 0; i < 7; i++ {
		fieldItem(t, g, "bottle")
	}
	if g.spawn.hasCapacity() {
		t.Errorf("Expected hard cap at %d items", g.cfg.Spawn.HardCap)
	}
}

func TestWaveRespectsSlotLimit(t *testing.T) {
	g := newTestGame(4)
	g.timers.clear()
	g.spawn.reset()
	g.st.Items = nil
	g.st.Level = 10 // large capacity, large raw wave

	g.spawn.wave()
	advanceTicks(g, g.ticksMsInt(20000))

	if n := len(g.st.Items); n > g.cfg.Spawn.HardCap {
		t.Errorf("Field holds %d items, hard cap is %d", n, g.cfg.Spawn.HardCap)
	}
}

func TestWaveBacksOffWhenFull(t *testing.T) {
	g := newTestGame(5)
	g.timers.clear()
	g.spawn.reset()
	g.st.Items = nil

	for i := 0; i < g.cfg.Spawn.HardCap; i++ {
		fieldItem(t, g, "bottle")
	}
	before := len(g.st.Items)

	g.spawn.wave()
	if g.timers.pending() != 1 {
		t.Errorf("Expected a single retry timer, got %d", g.timers.pending())
	}
	if len(g.st.Items) != before {
		t.Error("Wave spawned into a full field")
	}
}

func TestSpawnPacingGap(t *testing.T) {
	g := newTestGame(6)
	g.timers.clear()
	g.spawn.reset()
	g.st.Items = nil

	def, _ := catalog.ByID("bottle")
	g.spawn.schedule(0, def)
	g.spawn.schedule(0, def)

	// The first release is immediate; the second must wait the pacing
	// gap.
	advanceTicks(g, 2)
	if n := len(g.st.Items); n != 1 {
		t.Fatalf("Expected one release, got %d", n)
	}

	gapMs := float64(g.cfg.Spawn.MinSpacingBaseMs-g.st.Level*g.cfg.Spawn.MinSpacingStepMs) / g.st.SpeedModifier
	advanceTicks(g, int(g.ticksOf(gapMs))+2)
	if n := len(g.st.Items); n != 2 {
		t.Errorf("Expected second release after the pacing gap, got %d", n)
	}
}

func TestEnsureFlowOnEmptyField(t *testing.T) {
	g := newTestGame(7)
	g.timers.clear()
	g.spawn.reset()
	g.st.Items = nil

	g.spawn.ensureFlow()
	advanceTicks(g, g.ticksMsInt(3000))
	if len(g.st.Items) == 0 {
		t.Error("Expected resume to refill an empty field")
	}
}

func TestNoSpawnsWhilePaused(t *testing.T) {
	g := newTestGame(8)
	g.timers.clear()
	g.spawn.reset()
	g.st.Items = nil
	g.dispatch(setPause{true})

	def, _ := catalog.ByID("bottle")
	g.spawn.schedule(0, def)
	g.spawn.wave()

	if len(g.st.Items) != 0 || g.timers.pending() != 0 {
		t.Error("Spawner armed timers while paused")
	}
}

func TestNextWaveDelayShrinksWithLevel(t *testing.T) {
	g := newTestGame(9)

	samples := func(level int) uint64 {
		g.st.Level = level
		var total uint64
		for i := 0; i < 200; i++ {
			total += g.spawn.nextWaveDelay()
		}
		return total
	}

	low := samples(1)
	high := samples(9)
	if high >= low {
		t.Errorf("Expected faster waves at higher level: level1=%d level9=%d", low, high)
	}
}
