package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecosort/ecosort/internal/core"
)

// glyphStyles colorizes the well-known glyphs of the play field. The
// screen buffer itself is plain runes; color is a display concern.
var glyphStyles = map[rune]lipgloss.Style{
	'♥': lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // lives
	'?': lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // obfuscated item
	'!': lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // special marker
	'[': lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // target brackets
	']': lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	'(': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // power-up offer
	')': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("2")),   // progress bar fill
	'─': lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // separators
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := lipgloss.NewStyle()

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleFor(s.Get(x, y))

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if styleFor(r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			style, ok := glyphStyles[start]
			if !ok {
				style = plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// styleFor keys a rune to its style group. Unstyled runes share one
// group so they coalesce into a single run.
func styleFor(r rune) rune {
	if _, ok := glyphStyles[r]; ok {
		return r
	}
	return 0
}
