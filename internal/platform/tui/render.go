package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// paletteCodes assigns an ANSI 256-color code to every palette slot.
// Slots missing here render in the terminal's default color.
var paletteCodes = map[core.Color]string{
	core.ColorText:       "15",
	core.ColorMuted:      "245",
	core.ColorTitle:      "11",
	core.ColorWall:       "245",
	core.ColorBlock:      "130",
	core.ColorDoor:       "238",
	core.ColorDoorOpen:   "7",
	core.ColorDoorGlow:   "11",
	core.ColorBomb:       "7",
	core.ColorFuseLit:    "9",
	core.ColorFlameHot:   "15",
	core.ColorFlameWarm:  "11",
	core.ColorFlameCool:  "208",
	core.ColorEnemy:      "1",
	core.ColorPlayer:     "14",
	core.ColorExtraBomb:  "13",
	core.ColorExtraBlast: "208",
}

// colorStyles holds one lipgloss style per palette slot, indexed by color.
var colorStyles = buildStyles()

func buildStyles() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for _, c := range colors {
		style := lipgloss.NewStyle()
		if code, ok := paletteCodes[c]; ok {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is cut into runs of one color so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
