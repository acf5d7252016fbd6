package engine

import "github.com/ecosort/ecosort/internal/catalog"

// Lifecycle tags an item instance's progress through the field.
// Only active items move, render and accept input. Resolving items are
// retained briefly so a late duplicate resolution finds them and is
// rejected instead of double-counting.
type Lifecycle int

const (
	LifeActive Lifecycle = iota
	LifeResolving
	LifeRemoved
)

// Item is a single falling instance of a catalog entry.
// Positions are percentages of the field: X in [0,100] left to right,
// Y grows downward from 0 at the spawn line.
type Item struct {
	InstanceID string
	Def        catalog.Item
	X          float64
	Y          float64
	VX         float64 // horizontal drift per tick, sign is direction
	Fall       float64 // vertical speed per tick before the global scalar
	Special    bool    // worth double points
	Obfuscated bool    // spawned during a mixed-items event
	Life       Lifecycle
}
