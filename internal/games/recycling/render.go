package recycling

import (
	"fmt"
	"strings"

	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/physics"
)

// Visual characters for rendering
const (
	TrashChar = '■'
	CanChar   = '▄'
	FloorChar = '▀'
	HeartChar = '♥'
	WallChar  = '│'
)

// layout places the field on screen. Row 0 is the HUD. Terminal cells are
// about twice as tall as wide, so one row spans twice the field units of
// one column.
type layout struct {
	view     core.Viewport
	tooSmall bool
}

func newLayout(screenW, screenH int, fieldW, fieldH float64) layout {
	if screenW < MinScreenW || screenH < MinScreenH || fieldW <= 0 || fieldH <= 0 {
		return layout{tooSmall: true}
	}

	availW := float64(screenW - 2) // Side walls
	availH := float64(screenH - 1) // HUD

	unit := max(fieldW/availW, fieldH/(2*availH))
	cw := max(int(fieldW/unit), 1)
	ch := max(int(fieldH/(2*unit)), 1)

	x0 := (screenW - cw) / 2
	return layout{
		view: core.Viewport{
			WorldW: fieldW,
			WorldH: fieldH,
			Cells:  core.NewRect(x0, 1, cw, ch),
		},
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.loop.Snapshot()
	cells := g.layout.view.Cells

	// Walls
	for y := cells.Y; y < cells.Bottom(); y++ {
		dst.SetColored(cells.X-1, y, WallChar, core.ColorGray)
		dst.SetColored(cells.Right(), y, WallChar, core.ColorGray)
	}

	for _, b := range snap.Bodies {
		r := g.layout.view.ToCells(b.X, b.Y, b.W/2, b.H/2)
		switch b.Kind {
		case physics.KindFloor:
			dst.DrawRect(clip(r, cells), FloorChar, core.ColorGray)
		case physics.KindCan:
			dst.DrawRect(clip(r, cells), CanChar, core.ColorGreen)
		case physics.KindTrash:
			dst.DrawRect(clip(r, cells), TrashChar, core.ColorOrange)
		}
	}

	// The held item is drawn last so it stays on top.
	if held, ok := snap.Find(snap.DragBody); ok {
		r := g.layout.view.ToCells(held.X, held.Y, held.W/2, held.H/2)
		dst.DrawRect(clip(r, cells), TrashChar, core.ColorYellow)
	}

	g.drawHUD(dst, snap)

	switch {
	case snap.Status == StatusEnded:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case snap.Status == StatusPausedForLevelUp:
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d", snap.Level), "Press Enter to play the next level")
	case snap.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Level: %d ", snap.Score, snap.Level)
	dst.DrawText(0, 0, left)

	hearts := strings.Repeat(string(HeartChar), snap.Lives)
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// clip returns the part of r inside bounds. The result may be empty.
func clip(r, bounds core.Rect) core.Rect {
	if !r.Intersects(bounds) {
		return core.Rect{}
	}
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.Right(), bounds.Right())
	y1 := min(r.Bottom(), bounds.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
