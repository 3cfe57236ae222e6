package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize     = 30
	BoardOffset  = 50
	SidebarWidth = 160
)

var (
	backgroundColor = color.RGBA{16, 16, 20, 255}
	frameColor      = color.RGBA{128, 128, 128, 255}
	gridColor       = color.RGBA{32, 32, 40, 255}
	outlineColor    = color.RGBA{0, 0, 0, 255}
	ghostColor      = color.RGBA{255, 255, 255, 60}
)

// screenSize returns the window size needed for a cols×rows board.
func screenSize(cols, rows int) (int, int) {
	return BoardOffset*2 + cols*CellSize + SidebarWidth, BoardOffset*2 + rows*CellSize
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color, outline bool) {
	drawCellAt(screen, x, y, 0, clr, outline)
}

// drawCellAt draws a cell shifted down by dy pixels.
func drawCellAt(screen *ebiten.Image, x, y int, dy float32, clr color.Color, outline bool) {
	sx := float32(BoardOffset + x*CellSize)
	sy := float32(BoardOffset+y*CellSize) + dy
	vector.DrawFilledRect(screen, sx, sy, CellSize, CellSize, clr, false)
	if outline {
		vector.StrokeRect(screen, sx, sy, CellSize, CellSize, 1, outlineColor, false)
	}
}

func drawPiece(screen *ebiten.Image, piece tetris.PieceView, dy float32, clr color.Color, outline bool) {
	for x, y := range piece.Cells() {
		// cells above the top row are not drawn
		if y < 0 {
			continue
		}
		drawCellAt(screen, x, y, dy, clr, outline)
	}
}

// fallOffset is the pixel distance the active piece is drawn below its cell
// so falls glide between ticks instead of jumping.
func fallOffset(snap tetris.Snapshot) float32 {
	return float32(snap.Fall * CellSize)
}

func drawSnapshot(screen *ebiten.Image, snap tetris.Snapshot) {
	screen.Fill(backgroundColor)

	width := float32(snap.Cols * CellSize)
	height := float32(snap.Rows * CellSize)
	vector.StrokeRect(screen, BoardOffset-2, BoardOffset-2, width+4, height+4, 2, frameColor, false)

	for y, row := range snap.Cells {
		for x, kind := range row {
			if kind == tetris.Empty {
				drawCell(screen, x, y, gridColor, true)
				continue
			}
			drawCell(screen, x, y, tetris.DefinitionOf(kind).Color, true)
		}
	}

	if !snap.GameOver() {
		drawPiece(screen, snap.Ghost, 0, ghostColor, false)
		drawPiece(screen, snap.Active, fallOffset(snap), tetris.DefinitionOf(snap.Active.Kind).Color, true)
	}

	textX := BoardOffset + snap.Cols*CellSize + 20
	ebitenutil.DebugPrintAt(screen, "LINES", textX, BoardOffset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Lines), textX, BoardOffset+16)
	ebitenutil.DebugPrintAt(screen, "PIECES", textX, BoardOffset+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", snap.Locks), textX, BoardOffset+64)
	ebitenutil.DebugPrintAt(screen, "TIME", textX, BoardOffset+96)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", snap.Time), textX, BoardOffset+112)
	ebitenutil.DebugPrintAt(screen, "FALL", textX, BoardOffset+144)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2fs", snap.Cooldown), textX, BoardOffset+160)

	centreY := BoardOffset + snap.Rows*CellSize/2
	switch snap.State {
	case tetris.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", BoardOffset+20, centreY-10)
		ebitenutil.DebugPrintAt(screen, "Esc to resume, R to restart", BoardOffset+20, centreY+10)
	case tetris.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", BoardOffset+20, centreY-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", BoardOffset+20, centreY+10)
	}
}
