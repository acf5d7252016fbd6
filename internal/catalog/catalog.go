// Package catalog defines the static table of sortable waste items.
// The engine draws from this table when spawning; presentation layers use
// the glyphs and tips for display.
package catalog

import "fmt"

// Category is the bin an item belongs in.
type Category string

const (
	Recycle Category = "recycle"
	Trash   Category = "trash"
	Reuse   Category = "reuse"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case Recycle, Trash, Reuse:
		return true
	}
	return false
}

// Item is an immutable catalog entry. Points and CO2 are the base award
// for a correct sort, before any multiplier.
type Item struct {
	ID       string
	Name     string
	Glyph    rune // single-cell representation for terminal rendering
	Category Category
	Tip      string  // educational hint shown after a wrong sort
	Points   int
	CO2      float64 // kg of CO2 saved by sorting this item correctly
}

// Items is the full catalog, ordered by introduction. IDs are unique;
// see TestCatalogIntegrity.
var Items = []Item{
	{ID: "bottle", Name: "Plastic bottle", Glyph: 'b', Category: Recycle, Points: 10, CO2: 0.5,
		Tip: "A plastic bottle takes up to 1000 years to decompose."},
	{ID: "apple", Name: "Apple core", Glyph: 'a', Category: Trash, Points: 5, CO2: 0.2,
		Tip: "Organic waste can be composted into natural fertilizer."},
	{ID: "battery", Name: "Battery", Glyph: '!', Category: Recycle, Points: 15, CO2: 2.0,
		Tip: "One battery can pollute 500,000 liters of water if not recycled properly."},
	{ID: "cardboard", Name: "Cardboard box", Glyph: 'c', Category: Recycle, Points: 10, CO2: 0.8,
		Tip: "Recycling a ton of cardboard saves 2.5 tons of wood."},
	{ID: "plasticbag", Name: "Plastic bag", Glyph: 'g', Category: Reuse, Points: 10, CO2: 0.3,
		Tip: "Use reusable bags to cut down on plastic waste."},
	{ID: "paper", Name: "Paper", Glyph: 'p', Category: Recycle, Points: 5, CO2: 0.4,
		Tip: "Recycling a ton of paper saves 17 trees."},
	{ID: "eggshell", Name: "Eggshell", Glyph: 'o', Category: Trash, Points: 5, CO2: 0.1,
		Tip: "Eggshells are compostable and add calcium to soil."},
	{ID: "can", Name: "Aluminum can", Glyph: 'n', Category: Recycle, Points: 10, CO2: 0.9,
		Tip: "An aluminum can is infinitely recyclable."},
	{ID: "clothes", Name: "Used clothes", Glyph: 't', Category: Reuse, Points: 15, CO2: 4.0,
		Tip: "Donating clothes extends their life and reduces textile waste."},
	{ID: "glass", Name: "Glass bottle", Glyph: 'G', Category: Recycle, Points: 10, CO2: 0.7,
		Tip: "Glass is 100% recyclable and can be remelted forever."},
	{ID: "leaves", Name: "Dead leaves", Glyph: 'l', Category: Trash, Points: 5, CO2: 0.2,
		Tip: "Dead leaves make excellent mulch for your garden."},
	{ID: "lightbulb", Name: "Light bulb", Glyph: 'i', Category: Recycle, Points: 15, CO2: 1.0,
		Tip: "Light bulbs contain hazardous materials that need proper recycling."},
	{ID: "toy", Name: "Broken toy", Glyph: 'y', Category: Reuse, Points: 10, CO2: 0.6,
		Tip: "Repairing instead of discarding cuts waste and saves money."},
	{ID: "smartphone", Name: "Smartphone", Glyph: 'S', Category: Reuse, Points: 20, CO2: 8.0,
		Tip: "Smartphones contain rare metals that can be recovered."},
	{ID: "tincan", Name: "Tin can", Glyph: 'T', Category: Recycle, Points: 10, CO2: 0.8,
		Tip: "The steel in tin cans is 100% recyclable."},
	{ID: "newspaper", Name: "Newspaper", Glyph: 'w', Category: Recycle, Points: 10, CO2: 0.5,
		Tip: "Recycling a newspaper run saves 17 trees and 4000 kW of energy."},
	{ID: "coffeecup", Name: "Coffee cup", Glyph: 'u', Category: Trash, Points: 5, CO2: 0.3,
		Tip: "Coffee cups often have a plastic lining that makes them hard to recycle."},
	{ID: "banana", Name: "Banana peel", Glyph: 'j', Category: Trash, Points: 5, CO2: 0.2,
		Tip: "Banana peels break down in 2 to 5 weeks in a compost pile."},
	{ID: "milk", Name: "Milk carton", Glyph: 'm', Category: Recycle, Points: 10, CO2: 0.6,
		Tip: "Milk cartons combine cardboard, plastic and aluminum layers."},
	{ID: "laptop", Name: "Laptop", Glyph: 'L', Category: Reuse, Points: 25, CO2: 10.0,
		Tip: "A laptop contains toxic components and rare metals."},
	{ID: "metalcan", Name: "Metal tin", Glyph: 'M', Category: Recycle, Points: 12, CO2: 0.9,
		Tip: "Metal tins recycle endlessly with no loss of quality."},
	{ID: "yogurt", Name: "Yogurt pot", Glyph: 'Y', Category: Recycle, Points: 8, CO2: 0.3,
		Tip: "Rinse yogurt pots before recycling to avoid contamination."},
	{ID: "cereal", Name: "Cereal box", Glyph: 'x', Category: Recycle, Points: 7, CO2: 0.4,
		Tip: "Cereal boxes are made of recyclable cardboard."},
	{ID: "shoebox", Name: "Shoe box", Glyph: 'h', Category: Reuse, Points: 11, CO2: 0.6,
		Tip: "Shoe boxes make great storage containers."},
	{ID: "diaper", Name: "Disposable diaper", Glyph: 'd', Category: Trash, Points: 8, CO2: 0.4,
		Tip: "Disposable diapers take 450 years to decompose. Consider washables."},
	{ID: "magazine", Name: "Magazine", Glyph: 'z', Category: Recycle, Points: 9, CO2: 0.5,
		Tip: "Magazines are fully recyclable and can get a second life."},
	{ID: "toycar", Name: "Plastic toy car", Glyph: 'v', Category: Reuse, Points: 14, CO2: 1.2,
		Tip: "Donate toys in good condition instead of throwing them away."},
	{ID: "cookingoil", Name: "Cooking oil", Glyph: 'O', Category: Recycle, Points: 16, CO2: 1.8,
		Tip: "Used cooking oil belongs at a collection point, never down the drain."},
	{ID: "hairbrush", Name: "Hairbrush", Glyph: 'H', Category: Reuse, Points: 13, CO2: 0.7,
		Tip: "Clean and disinfect used brushes before donating them."},
	{ID: "facemask", Name: "Disposable mask", Glyph: 'k', Category: Trash, Points: 7, CO2: 0.3,
		Tip: "Disposable masks should be sealed in a bag before binning."},
	{ID: "medicine", Name: "Expired medicine", Glyph: '+', Category: Recycle, Points: 18, CO2: 2.0,
		Tip: "Return expired medicine to a pharmacy for safe handling."},
	{ID: "umbrella", Name: "Broken umbrella", Glyph: 'U', Category: Trash, Points: 10, CO2: 0.5,
		Tip: "Some umbrella parts can be recycled; take it apart before binning."},
	{ID: "coffeegrounds", Name: "Coffee grounds", Glyph: 'f', Category: Trash, Points: 6, CO2: 0.2,
		Tip: "Coffee grounds are great for compost and work as natural fertilizer."},
	{ID: "styrofoam", Name: "Styrofoam", Glyph: 's', Category: Recycle, Points: 15, CO2: 1.5,
		Tip: "Styrofoam is recyclable but only at dedicated collection points."},
	{ID: "paint", Name: "Paint can", Glyph: 'P', Category: Recycle, Points: 20, CO2: 3.0,
		Tip: "Leftover paint belongs at a waste facility, never in the bin."},
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(Items))
	for _, it := range Items {
		if _, dup := m[it.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate item id %q", it.ID))
		}
		m[it.ID] = it
	}
	return m
}()

// ByID looks up an item definition by its catalog ID.
func ByID(id string) (Item, bool) {
	it, ok := byID[id]
	return it, ok
}

// ByCategory returns all items belonging to the given bin.
func ByCategory(c Category) []Item {
	var out []Item
	for _, it := range Items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// EcoFacts are shown on the game-over screen, one picked at random.
var EcoFacts = []string{
	"The Mediterranean Sea holds 1.25 million plastic fragments per square km.",
	"The average person produces around 590 kg of waste per year.",
	"Recycling a ton of plastic saves 5774 kWh of energy.",
	"A single cigarette butt can pollute up to 500 liters of water.",
	"70% of a smartphone's weight can be recycled.",
	"A glass bottle takes over 4000 years to decompose in nature.",
	"33% of household waste could be composted.",
	"Proper sorting lets more than 9 out of 10 packages get recycled.",
	"The first step of recycling is sorting at home.",
	"1 ton of recycled paper preserves 17 trees.",
	"Every year the average household discards 20 kg of still-edible food.",
	"75% of marine litter is plastic.",
	"Recycling aluminum uses 95% less energy than producing it.",
	"Half of all electronic waste is never recycled properly.",
}
