package bomber

import (
	"fmt"
	"math"
	"time"

	platformcore "github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 2 // Status line plus separator

	fuseBlink  = 250 * time.Millisecond
	doorPulse  = 200 * time.Millisecond
	fadeBright = 0.66
	fadeMid    = 0.33
)

// Glyphs for each grid cell, two columns wide.
const (
	glyphWall      = "██"
	glyphBlock     = "▒▒"
	glyphDoor      = "[]"
	glyphBomb      = "()"
	glyphFlame     = "**"
	glyphEnemy     = "><"
	glyphPlayer    = "{}"
	glyphExtraBomb = "B+"
	glyphExtraFire = "F+"
)

// boardSize returns the board footprint in screen cells.
func (g *Game) boardSize() (int, int) {
	return g.settings.Width * cellWidth, g.settings.Height
}

// boardOrigin returns the screen position of grid cell (0,0), centering the
// board below the HUD.
func (g *Game) boardOrigin(dst *platformcore.Screen) (int, int) {
	w, h := g.boardSize()
	x := platformcore.Clamp((dst.Width()-w)/2, 0, max(dst.Width()-w, 0))
	y := hudHeight + (dst.Height()-hudHeight-h)/2
	return x, max(y, hudHeight)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		w, h := g.boardSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	ox, oy := g.boardOrigin(dst)
	put := func(c core.Coord, glyph string, color platformcore.Color) {
		dst.DrawTextColored(ox+c.X*cellWidth, oy+c.Y, glyph, color)
	}

	g.renderGrid(snap, put)
	g.renderEntities(snap, put)

	switch {
	case snap.Phase == core.PhaseGameOver:
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", snap.Score), "Press R to restart")
	case snap.Phase == core.PhaseLevelComplete:
		g.renderOverlay(dst, fmt.Sprintf("Level %d", snap.Level), "Get ready!")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

type putFunc func(c core.Coord, glyph string, color platformcore.Color)

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	hud := fmt.Sprintf(" BOMBER  Score: %d  Level: %d  Bombs: %d  Fire: %d  Enemies: %d",
		snap.Score, snap.Level, snap.Player.MaxBombs, snap.Player.BlastRadius, len(snap.Enemies))
	dst.DrawTextColored(0, 0, hud, platformcore.ColorText)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', platformcore.ColorMuted)
	}
}

// renderGrid draws walls, blocks and the revealed door.
func (g *Game) renderGrid(snap core.Snapshot, put putFunc) {
	grid := snap.Grid
	for y := range grid.H {
		for x := range grid.W {
			c := core.C(x, y)
			switch grid.At(c) {
			case core.TileWall:
				put(c, glyphWall, platformcore.ColorWall)
			case core.TileBlock:
				put(c, glyphBlock, platformcore.ColorBlock)
			}
		}
	}

	door := snap.Door
	if door.Hidden || grid.At(door.Pos) == core.TileBlock {
		return
	}
	color := platformcore.ColorDoor
	if door.Active {
		color = platformcore.ColorDoorOpen
		if doorGlow(g.elapsed) > 0.5 {
			color = platformcore.ColorDoorGlow
		}
	}
	put(door.Pos, glyphDoor, color)
}

// renderEntities draws pickups, flames, bombs, enemies and the player, in
// that order so later layers win.
func (g *Game) renderEntities(snap core.Snapshot, put putFunc) {
	for _, p := range snap.PowerUps {
		if p.Kind == core.PowerUpExtraBomb {
			put(p.Pos, glyphExtraBomb, platformcore.ColorExtraBomb)
		} else {
			put(p.Pos, glyphExtraFire, platformcore.ColorExtraBlast)
		}
	}

	for _, e := range snap.Explosions {
		color := flameColor(e.Remaining, g.settings.ExplosionFade)
		for _, c := range e.Cells {
			put(c, glyphFlame, color)
		}
	}

	lit := fuseLit(g.elapsed)
	for _, b := range snap.Bombs {
		color := platformcore.ColorBomb
		if lit {
			color = platformcore.ColorFuseLit
		}
		put(b.Pos, glyphBomb, color)
	}

	for _, e := range snap.Enemies {
		put(e.Pos, glyphEnemy, platformcore.ColorEnemy)
	}

	if snap.Player.Alive {
		put(snap.Player.Pos, glyphPlayer, platformcore.ColorPlayer)
	}
}

// renderOverlay draws a centered box with one line of text per argument.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), width+4, len(lines)+2)

	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorText)
	for i, l := range lines {
		color := platformcore.ColorText
		if i == 0 {
			color = platformcore.ColorTitle
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}

// fuseLit reports whether a bomb's fuse light is on; it blinks every 250ms.
func fuseLit(elapsed time.Duration) bool {
	return (elapsed/fuseBlink)%2 == 0
}

// doorGlow returns the active door's glow in [0,1].
func doorGlow(elapsed time.Duration) float64 {
	return math.Abs(math.Sin(float64(elapsed) / float64(doorPulse)))
}

// flameColor cools an explosion down as it fades.
func flameColor(remaining, total time.Duration) platformcore.Color {
	if total <= 0 {
		return platformcore.ColorFlameCool
	}
	life := float64(remaining) / float64(total)
	switch {
	case life > fadeBright:
		return platformcore.ColorFlameHot
	case life > fadeMid:
		return platformcore.ColorFlameWarm
	default:
		return platformcore.ColorFlameCool
	}
}
