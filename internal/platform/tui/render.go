package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/debris-shooter/internal/core"
)

// ansiCodes maps core.Color to terminal palette indexes.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorWhite:        lipgloss.Color("15"),
	core.ColorRed:          lipgloss.Color("9"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorBrightCyan:   lipgloss.Color("14"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorOrange:       lipgloss.Color("208"),
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyles caches one lipgloss style per foreground/background pair.
var cellStyles = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := cellStyles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := ansiCodes[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiCodes[p.bg]; ok {
		s = s.Background(c)
	}
	cellStyles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
