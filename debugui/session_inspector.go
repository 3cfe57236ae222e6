package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

const inspectorCellSize = 10

// SessionInspector shows the counters of one session, a miniature of its
// board and buttons for the lifecycle commands.
type SessionInspector struct {
	title   string
	session *tetris.Session
}

func NewSessionInspector(title string, session *tetris.Session) *SessionInspector {
	return &SessionInspector{title: title, session: session}
}

// Inspect switches the inspector to another session. nil clears it.
func (si *SessionInspector) Inspect(session *tetris.Session) {
	si.session = session
}

func (si *SessionInspector) Render() {
	if !imgui.BeginV(si.title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	if si.session == nil {
		imgui.Text("No session selected")
		imgui.End()
		return
	}

	snap := si.session.Snapshot()

	imgui.Text(fmt.Sprintf("State: %v", snap.State))
	imgui.Text(fmt.Sprintf("Time: %.3f s (%d ticks, %d frames)", snap.Time, snap.Ticks, snap.Frame))
	imgui.Text(fmt.Sprintf("Lines: %d  Locks: %d", snap.Lines, snap.Locks))
	imgui.Text(fmt.Sprintf("Cooldown: %.3f s", snap.Cooldown))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Active: %v at (%d, %d)", snap.Active.Kind, snap.Active.X, snap.Active.Y))
	imgui.Text(fmt.Sprintf("Ghost:  %v at (%d, %d)", snap.Ghost.Kind, snap.Ghost.X, snap.Ghost.Y))

	if imgui.Button("Pause") {
		si.session.Apply(tetris.TogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		si.session.Apply(tetris.Restart)
	}

	if imgui.TreeNodeStr("Board") {
		drawBoard(snap)
		imgui.TreePop()
	}

	imgui.End()
}

func drawBoard(snap tetris.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	cell := func(x, y int, clr imgui.Vec4) {
		minX := origin.X + float32(x*inspectorCellSize)
		minY := origin.Y + float32(y*inspectorCellSize)
		drawList.AddRectFilled(
			imgui.NewVec2(minX, minY),
			imgui.NewVec2(minX+inspectorCellSize-1, minY+inspectorCellSize-1),
			imgui.ColorU32Vec4(clr),
		)
	}

	for y, row := range snap.Cells {
		for x, kind := range row {
			if kind == tetris.Empty {
				cell(x, y, imgui.NewVec4(0.15, 0.15, 0.15, 1))
				continue
			}
			cell(x, y, kindColor(kind, 1))
		}
	}
	for x, y := range snap.Ghost.Cells() {
		if y >= 0 {
			cell(x, y, kindColor(snap.Ghost.Kind, 0.3))
		}
	}
	for x, y := range snap.Active.Cells() {
		if y >= 0 {
			cell(x, y, kindColor(snap.Active.Kind, 1))
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(snap.Cols*inspectorCellSize), float32(snap.Rows*inspectorCellSize)))
}

func kindColor(kind tetris.Kind, alpha float32) imgui.Vec4 {
	c := tetris.DefinitionOf(kind).Color
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha)
}
