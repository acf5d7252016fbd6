package engine

import (
	"fmt"
	"strings"

	"github.com/ecosort/ecosort/internal/core"
)

const hudHeight = 2

// Render draws the current frame onto the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()

	g.renderHUD(dst, snap)
	g.renderField(dst, snap)
	g.renderBins(dst)
	g.renderTip(dst, snap)

	switch {
	case snap.GameOver:
		line2 := fmt.Sprintf("Final Score: %d — Press R to restart", snap.Score)
		if snap.NewHighScore {
			line2 = fmt.Sprintf("New High Score: %d! Press R to restart", snap.Score)
		}
		lines := []string{"Game Over", line2}
		if snap.EcoFact != "" {
			lines = append(lines, truncateRunes(snap.EcoFact, dst.Width()-6))
		}
		g.renderOverlay(dst, lines...)
	case snap.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: score, hearts, level progress and
// CO2 saved, plus any running effects and event.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("·", snap.MaxLives-snap.Lives)
	bar := progressBar(snap.LevelProgress, 10)
	hud := fmt.Sprintf(" %s — Score: %d  %s  Lv %d %s  CO2: %.1fkg",
		g.Title(), snap.Score, hearts, snap.Level, bar, snap.SavedCO2)
	if snap.Multiplier > 1 {
		hud += fmt.Sprintf("  x%.0f", snap.Multiplier)
	}
	dst.DrawText(0, 0, hud)

	var status []string
	for _, eff := range snap.Effects {
		status = append(status, fmt.Sprintf("%s %ds", eff.Name, (eff.RemainingMs+999)/1000))
	}
	if snap.Event != nil {
		status = append(status, fmt.Sprintf("%s %ds", snap.Event.Name, (snap.Event.RemainingMs+999)/1000))
	}
	if len(status) > 0 {
		line := " " + strings.Join(status, "  ")
		dst.DrawText(dst.Width()-len(line)-1, 0, line)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderField maps percent coordinates onto the play area and draws
// every active item plus the power-up offer.
func (g *Game) renderField(dst *core.Screen, snap Snapshot) {
	fieldTop := hudHeight
	fieldH := dst.Height() - hudHeight - 2 // bins row + tip line
	if fieldH < 1 {
		return
	}

	for _, it := range snap.Items {
		x, y := g.fieldPos(dst, it.X, it.Y, fieldTop, fieldH)
		glyph := it.Glyph
		if it.Obfuscated {
			glyph = '?'
		}
		dst.Set(x, y, glyph)
		if it.Target {
			dst.Set(x-1, y, '[')
			dst.Set(x+1, y, ']')
		} else if it.Special {
			dst.Set(x+1, y, '!')
		}
	}

	if snap.Offer != nil {
		x, y := g.fieldPos(dst, snap.Offer.X, snap.Offer.Y, fieldTop, fieldH)
		dst.Set(x-1, y, '(')
		dst.Set(x, y, snap.Offer.Glyph)
		dst.Set(x+1, y, ')')
	}
}

// fieldPos converts percent coordinates into screen cells, clamped to
// the play area.
func (g *Game) fieldPos(dst *core.Screen, px, py float64, fieldTop, fieldH int) (int, int) {
	x := int(px / 100 * float64(dst.Width()-1))
	if x < 1 {
		x = 1
	}
	if x > dst.Width()-2 {
		x = dst.Width() - 2
	}
	y := fieldTop + int(py/100*float64(fieldH-1))
	if y < fieldTop {
		y = fieldTop
	}
	if y > fieldTop+fieldH-1 {
		y = fieldTop + fieldH - 1
	}
	return x, y
}

// renderBins draws the bin row along the bottom of the play area.
func (g *Game) renderBins(dst *core.Screen) {
	y := dst.Height() - 2
	w := dst.Width()
	labels := []string{"[1 Recycle]", "[2 Trash]", "[3 Reuse]"}
	slot := w / 3
	for i, label := range labels {
		x := i*slot + (slot-len(label))/2
		if x < 0 {
			x = 0
		}
		dst.DrawText(x, y, label)
	}
}

// renderTip draws the bottom tip line when a tip is visible.
func (g *Game) renderTip(dst *core.Screen, snap Snapshot) {
	if !snap.TipVisible {
		return
	}
	dst.DrawTextCentered(dst.Height()-1, truncateRunes(snap.Tip, dst.Width()-2))
}

// truncateRunes shortens text to at most max runes. Slicing runes, not
// bytes, so a multi-byte glyph is never cut in half.
func truncateRunes(text string, max int) string {
	if max < 0 {
		max = 0
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max])
}

// renderOverlay draws a centered message box, one blank row between
// lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}

	box := core.Rect{W: maxLen + 4, H: len(lines)*2 + 1}
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l)
	}
}

// progressBar renders level progress as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
