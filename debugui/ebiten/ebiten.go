// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend and renders an
// Overlay inside its frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend window and an empty overlay.
// imgui.ini persistence is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		Overlay:       debugui.NewOverlay(),
	}
}

// Update runs one ImGui frame over the overlay. Call it from ebiten's Update.
func (b *ImguiBackend) Update(dt float64) {
	b.BeginFrame()
	b.Overlay.Once(dt)
	b.EndFrame()
}

// WantCaptureKeyboard reports whether ImGui consumed keyboard input last frame.
func (b *ImguiBackend) WantCaptureKeyboard() bool {
	return b.Overlay.InputState.WantCaptureKeyboard
}
