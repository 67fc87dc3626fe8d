package core

// Color is a palette slot for a screen cell. Slots are named after what the
// game draws with them; the TUI decides the actual terminal color.
type Color uint8

const (
	ColorDefault Color = iota

	// Interface
	ColorText
	ColorMuted
	ColorTitle

	// Board
	ColorWall
	ColorBlock
	ColorDoor
	ColorDoorOpen
	ColorDoorGlow

	// Entities
	ColorBomb
	ColorFuseLit
	ColorFlameHot
	ColorFlameWarm
	ColorFlameCool
	ColorEnemy
	ColorPlayer
	ColorExtraBomb
	ColorExtraBlast

	colorCount
)

var colorNames = [colorCount]string{
	ColorDefault:    "default",
	ColorText:       "text",
	ColorMuted:      "muted",
	ColorTitle:      "title",
	ColorWall:       "wall",
	ColorBlock:      "block",
	ColorDoor:       "door",
	ColorDoorOpen:   "door-open",
	ColorDoorGlow:   "door-glow",
	ColorBomb:       "bomb",
	ColorFuseLit:    "fuse-lit",
	ColorFlameHot:   "flame-hot",
	ColorFlameWarm:  "flame-warm",
	ColorFlameCool:  "flame-cool",
	ColorEnemy:      "enemy",
	ColorPlayer:     "player",
	ColorExtraBomb:  "extra-bomb",
	ColorExtraBlast: "extra-blast",
}

// Colors returns every palette slot in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}
