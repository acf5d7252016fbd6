package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecosort/ecosort/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestFreshProgress(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.HighScore != 0 || p.TotalItemsSorted != 0 || p.TotalCO2Saved != 0 {
		t.Errorf("Expected zeroed progress, got %+v", p)
	}
	if p.CompletedTutorial {
		t.Error("Expected tutorial incomplete on a fresh database")
	}
	if p.Level != 1 {
		t.Errorf("Expected level 1, got %d", p.Level)
	}
}

func TestRecordHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.RecordHighScore(100)
	if err != nil {
		t.Fatalf("RecordHighScore() failed: %v", err)
	}
	if !best {
		t.Error("First score should be a high score")
	}

	// A lower score leaves the record untouched.
	best, err = store.RecordHighScore(50)
	if err != nil {
		t.Fatalf("RecordHighScore() failed: %v", err)
	}
	if best {
		t.Error("Lower score reported as a high score")
	}

	best, err = store.RecordHighScore(200)
	if err != nil {
		t.Fatalf("RecordHighScore() failed: %v", err)
	}
	if !best {
		t.Error("Expected 200 to beat 100")
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.HighScore != 200 {
		t.Errorf("Expected high score 200, got %d", p.HighScore)
	}
}

func TestAccumulateStats(t *testing.T) {
	store := openTestStore(t)

	if err := store.AccumulateStats(10, 3.5); err != nil {
		t.Fatalf("AccumulateStats() failed: %v", err)
	}
	if err := store.AccumulateStats(5, 1.5); err != nil {
		t.Fatalf("AccumulateStats() failed: %v", err)
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.TotalItemsSorted != 15 {
		t.Errorf("Expected 15 items sorted, got %d", p.TotalItemsSorted)
	}
	if p.TotalCO2Saved != 5.0 {
		t.Errorf("Expected 5.0 kg CO2, got %v", p.TotalCO2Saved)
	}
}

func TestMarkTutorialComplete(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkTutorialComplete(); err != nil {
		t.Fatalf("MarkTutorialComplete() failed: %v", err)
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if !p.CompletedTutorial {
		t.Error("Tutorial flag not persisted")
	}
}

func TestSaveAndQueryRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []engine.RunRecord{
		{Mode: "classic", Score: 100, ItemsSorted: 8, CO2Saved: 2.5, LevelReached: 2},
		{Mode: "classic", Score: 300, ItemsSorted: 20, CO2Saved: 6.0, LevelReached: 4},
		{Mode: "classic", Score: 200, ItemsSorted: 15, CO2Saved: 4.0, LevelReached: 3},
		{Mode: "zen", Score: 500, ItemsSorted: 40, CO2Saved: 11.0, LevelReached: 6},
	}
	for _, r := range runs {
		if err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 classic runs, got %d", len(top))
	}
	if top[0].Score != 300 || top[1].Score != 200 || top[2].Score != 100 {
		t.Errorf("Runs not ordered by score: %v", top)
	}

	// Empty mode matches everything.
	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs across modes, got %d", len(all))
	}
	if all[0].Mode != "zen" {
		t.Errorf("Expected zen run on top, got %s", all[0].Mode)
	}
}

func TestSaveRunTracksBestLevel(t *testing.T) {
	store := openTestStore(t)

	for _, level := range []int{3, 6, 2} {
		if err := store.SaveRun(engine.RunRecord{Mode: "classic", Score: 100, LevelReached: level}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.Level != 6 {
		t.Errorf("Expected best level 6 recorded, got %d", p.Level)
	}
}

func TestTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(engine.RunRecord{Mode: "classic", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(engine.RunRecord{Mode: "classic", Score: 100})
	store.SaveRun(engine.RunRecord{Mode: "zen", Score: 50})

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	// Latest first.
	if recent[0].Mode != "zen" {
		t.Errorf("Expected the zen run first, got %s", recent[0].Mode)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(engine.RunRecord{Mode: "classic", Score: 100})
	store.RecordHighScore(100)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected empty history, got %d runs", len(runs))
	}

	// Lifetime progress survives a history clear.
	p, _ := store.LoadProgress()
	if p.HighScore != 100 {
		t.Errorf("High score lost on ClearRuns: %d", p.HighScore)
	}
}

func TestResetProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordHighScore(100)
	store.AccumulateStats(10, 2.0)
	store.MarkTutorialComplete()

	if err := store.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.HighScore != 0 || p.TotalItemsSorted != 0 || p.CompletedTutorial {
		t.Errorf("Progress not reset: %+v", p)
	}
}

func TestReopenPersists(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.RecordHighScore(250)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadProgress()
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p.HighScore != 250 {
		t.Errorf("Expected high score 250 after reopen, got %d", p.HighScore)
	}
}
