package physics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"tictac/graph"
)

// StepStats summarizes one step.
type StepStats struct {
	VisibleNodes   int
	VisibleEdges   int
	GridCells      int
	RepulsionPairs int     // ordered pairs within neighboring cells
	KineticEnergy  float64 // after integration, unit mass
}

// Engine advances the layout of a graph. It owns node coordinates and
// velocities while stepping; callers must not mutate them concurrently.
type Engine struct {
	graph  *graph.Graph
	config Config
	forces []r3.Vec
}

func NewEngine(g *graph.Graph, config Config) *Engine {
	return &Engine{
		graph:  g,
		config: config,
		forces: make([]r3.Vec, g.Len()),
	}
}

func (e *Engine) Config() Config {
	return e.config
}

// SetConfig replaces the parameters used from the next step on.
func (e *Engine) SetConfig(config Config) {
	e.config = config
}

// Step advances every node visible under state by one time step.
func (e *Engine) Step(state graph.Visibility) StepStats {
	cfg := e.config
	dt := cfg.TimeStep

	visible := e.graph.VisibleVertices(state)
	view := e.graph.View(visible)
	if len(e.forces) < len(visible) {
		e.forces = make([]r3.Vec, len(visible))
	}
	forces := e.forces[:len(visible)]

	for i, v := range visible {
		forces[i] = r3.Vec{}
		v.Velocity = r3.Scale(cfg.Damping, v.Velocity)
	}

	grid := NewGrid(cfg.CellSize)
	for i, v := range visible {
		grid.Insert(i, v.Coordinates)
	}

	stats := StepStats{VisibleNodes: len(visible), GridCells: grid.Len()}

	// every ordered pair is visited, so each pair is pushed apart from both sides
	for i, v := range visible {
		grid.Near(v.Coordinates, func(j int) {
			if j == i {
				return
			}
			f := RepelForce(v.Coordinates, visible[j].Coordinates, cfg.Repulsion)
			forces[i] = r3.Add(forces[i], f)
			forces[j] = r3.Sub(forces[j], f)
			stats.RepulsionPairs++
		})
	}

	for i, neighbors := range view.Neighbors {
		for _, j := range neighbors {
			if i >= j {
				continue
			}
			f := r3.Scale(dt, SpringForce(visible[i].Coordinates, visible[j].Coordinates, cfg.RestLength, cfg.SpringStiffness))
			forces[i] = r3.Add(forces[i], f)
			forces[j] = r3.Sub(forces[j], f)
			stats.VisibleEdges++
		}
	}

	for i, v := range visible {
		v.Velocity = r3.Add(v.Velocity, forces[i])
		v.Coordinates = r3.Add(v.Coordinates, r3.Scale(dt, v.Velocity))
		stats.KineticEnergy += 0.5 * r3.Norm2(v.Velocity)
	}
	return stats
}
