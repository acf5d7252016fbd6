package engine

// Progress is the persisted cross-run player state.
type Progress struct {
	HighScore         int
	TotalCO2Saved     float64
	TotalItemsSorted  int
	Level             int
	CompletedTutorial bool
}

// RunRecord captures a single finished run for the history log.
type RunRecord struct {
	Mode         string
	Score        int
	ItemsSorted  int
	CO2Saved     float64
	LevelReached int
}

// ProgressStore persists player progress between runs. The engine
// treats persistence as best effort: a failing store never interrupts
// the simulation.
type ProgressStore interface {
	// LoadProgress returns the stored progress, zero-valued if none.
	LoadProgress() (Progress, error)
	// RecordHighScore stores score if it beats the current high score
	// and reports whether it did.
	RecordHighScore(score int) (bool, error)
	// AccumulateStats adds a finished run's totals to the lifetime
	// counters.
	AccumulateStats(itemsSorted int, co2Saved float64) error
	// MarkTutorialComplete remembers that the intro tip was shown.
	MarkTutorialComplete() error
	// SaveRun appends a run to the history log.
	SaveRun(rec RunRecord) error
}

// nopStore is used when no persistence backend is configured.
type nopStore struct{}

func (nopStore) LoadProgress() (Progress, error)    { return Progress{}, nil }
func (nopStore) RecordHighScore(int) (bool, error)  { return false, nil }
func (nopStore) AccumulateStats(int, float64) error { return nil }
func (nopStore) MarkTutorialComplete() error        { return nil }
func (nopStore) SaveRun(RunRecord) error            { return nil }
