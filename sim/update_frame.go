package sim

// UpdateFrame is handed to every system during a single scheduler pass.
type UpdateFrame[W any] struct {
	DeltaTime float64
	Time      float64
	World     W
	Commands  *Commands
}

func newUpdateFrame[W any](world W, dt, now float64, commands *Commands) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		DeltaTime: dt,
		Time:      now,
		World:     world,
		Commands:  commands,
	}
}
