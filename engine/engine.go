package engine

import "tictac/viz"

type Engine interface {
	// Tick advances the layout by one step unless paused and returns the frame to draw
	Tick(state viz.State) viz.Frame
}
