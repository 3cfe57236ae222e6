// Package debugui provides Dear ImGui inspector windows for blockfall sessions.
// Windows are collected on an Overlay whose ImguiSystem runs on a
// sim.Scheduler once per rendered frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sim"
)

// ImguiItem holds a Dear ImGui render function.
// Add items to an Overlay to render them each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Hosts check it before treating keys as game commands.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the world the ImguiSystem runs against.
type Overlay struct {
	Items      []ImguiItem
	InputState ImguiInputState

	scheduler *sim.Scheduler[*Overlay]
}

func NewOverlay() *Overlay {
	o := &Overlay{
		scheduler: sim.NewScheduler[*Overlay](),
	}
	o.scheduler.Register(&ImguiSystem{})
	return o
}

// Add appends a render function to the overlay.
func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, ImguiItem{Render: render})
}

// Once renders every item. It must be called between the backend's
// BeginFrame and EndFrame.
func (o *Overlay) Once(dt float64) {
	o.scheduler.Once(o, dt, 0)
}

// ImguiSystem updates the input state and defers every item's render function.
type ImguiSystem struct{}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *sim.UpdateFrame[*Overlay]) {
	state := &frame.World.InputState
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range frame.World.Items {
		frame.Commands.Defer(item.Render)
	}
}
