package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	// each board cell is two terminal columns wide
	cellWidth = 2
	originX   = 2
	originY   = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(48, 48, 56))
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func kindStyle(kind tetris.Kind) tcell.Style {
	c := tetris.DefinitionOf(kind).Color
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func putCell(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	sx := originX + 1 + x*cellWidth
	sy := originY + 1 + y
	for i := range cellWidth {
		screen.SetContent(sx+i, sy, r, nil, style)
	}
}

func drawFrame(screen tcell.Screen, cols, rows int) {
	right := originX + 1 + cols*cellWidth
	bottom := originY + 1 + rows
	for y := originY + 1; y < bottom; y++ {
		screen.SetContent(originX, y, '│', nil, frameStyle)
		screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := originX + 1; x < right; x++ {
		screen.SetContent(x, originY, '─', nil, frameStyle)
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	screen.SetContent(originX, originY, '┌', nil, frameStyle)
	screen.SetContent(right, originY, '┐', nil, frameStyle)
	screen.SetContent(originX, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func drawPiece(screen tcell.Screen, piece tetris.PieceView, r rune, style tcell.Style) {
	for x, y := range piece.Cells() {
		if y < 0 {
			continue
		}
		putCell(screen, x, y, r, style)
	}
}

// draw renders snap onto screen without calling Show.
func draw(screen tcell.Screen, snap tetris.Snapshot) {
	screen.Clear()
	drawFrame(screen, snap.Cols, snap.Rows)

	for y, row := range snap.Cells {
		for x, kind := range row {
			if kind == tetris.Empty {
				putCell(screen, x, y, '·', emptyStyle)
				continue
			}
			putCell(screen, x, y, '█', kindStyle(kind))
		}
	}

	if !snap.GameOver() {
		drawPiece(screen, snap.Ghost, '░', ghostStyle)
		drawPiece(screen, snap.Active, '█', kindStyle(snap.Active.Kind))
	}

	hudX := originX + snap.Cols*cellWidth + 4
	putString(screen, hudX, originY+1, fmt.Sprintf("Lines  %d", snap.Lines), textStyle)
	putString(screen, hudX, originY+2, fmt.Sprintf("Pieces %d", snap.Locks), textStyle)
	putString(screen, hudX, originY+3, fmt.Sprintf("Time   %.1f", snap.Time), textStyle)
	putString(screen, hudX, originY+4, fmt.Sprintf("Fall   %.2fs", snap.Cooldown), textStyle)

	switch snap.State {
	case tetris.Paused:
		putString(screen, hudX, originY+6, "PAUSED", alertStyle)
	case tetris.GameOver:
		putString(screen, hudX, originY+6, "GAME OVER", alertStyle)
		putString(screen, hudX, originY+7, "r to restart", textStyle)
	}

	putString(screen, hudX, originY+snap.Rows, "q quits", frameStyle)
}
