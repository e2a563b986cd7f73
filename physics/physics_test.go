package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"tictac/game"
	"tictac/graph"
)

type mockVisibility struct {
	rendered int
	isolate  bool
	selected []*game.Node
}

func (m mockVisibility) RenderedCount() int           { return m.rendered }
func (m mockVisibility) IsolateSelected() bool        { return m.isolate }
func (m mockVisibility) SelectedPoints() []*game.Node { return m.selected }

// pair returns a graph of two linked nodes at a and b.
func pair(a, b r3.Vec) (*graph.Graph, *game.Node, *game.Node) {
	n1 := game.NewNode(a, "---------", 0)
	n2 := game.NewNode(b, "----X----", 1)
	game.Link(n1, n2)
	return graph.New([]*game.Node{n1, n2}), n1, n2
}

func TestForces(t *testing.T) {
	t.Run("repulsion is inverse square", func(t *testing.T) {
		f := RepelForce(r3.Vec{X: 2}, r3.Vec{}, 0.3)
		require.InDelta(t, 0.3/4, f.X, 1e-12)
		require.Zero(t, f.Y)
		require.Zero(t, f.Z)
	})

	t.Run("coincident points do not repel", func(t *testing.T) {
		p := r3.Vec{X: 1, Y: 2, Z: 3}
		require.Equal(t, r3.Vec{}, RepelForce(p, p, 0.3))
	})

	t.Run("spring at rest length exerts nothing", func(t *testing.T) {
		f := SpringForce(r3.Vec{}, r3.Vec{Y: 1}, 1, 120)
		require.InDelta(t, 0, r3.Norm(f), 1e-12)
	})

	t.Run("stretched spring pulls, compressed spring pushes", func(t *testing.T) {
		pull := SpringForce(r3.Vec{}, r3.Vec{X: 3}, 1, 120)
		require.InDelta(t, 240, pull.X, 1e-9)
		push := SpringForce(r3.Vec{}, r3.Vec{X: 0.5}, 1, 120)
		require.InDelta(t, -60, push.X, 1e-9)
	})

	t.Run("zero length spring exerts nothing", func(t *testing.T) {
		require.Equal(t, r3.Vec{}, SpringForce(r3.Vec{}, r3.Vec{}, 1, 120))
	})
}

func TestGrid(t *testing.T) {
	require.Equal(t, Cell{0, 0, 0}, CellOf(r3.Vec{X: 4.9, Y: 0, Z: 0.1}, 5))
	require.Equal(t, Cell{-1, 1, 2}, CellOf(r3.Vec{X: -0.1, Y: 5, Z: 12}, 5))

	grid := NewGrid(5)
	grid.Insert(0, r3.Vec{})
	grid.Insert(1, r3.Vec{X: 6})
	grid.Insert(2, r3.Vec{X: 11})
	grid.Insert(3, r3.Vec{X: 1})
	require.Equal(t, 3, grid.Len())

	near := []int{}
	grid.Near(r3.Vec{}, func(j int) { near = append(near, j) })
	require.ElementsMatch(t, []int{0, 1, 3}, near, "Only the adjacent cells should be scanned")
}

func TestStep(t *testing.T) {
	t.Run("repulsion is applied from both sides", func(t *testing.T) {
		g, a, b := pair(r3.Vec{}, r3.Vec{X: 1})
		e := NewEngine(g, DefaultConfig())
		stats := e.Step(mockVisibility{rendered: 2})

		require.Equal(t, StepStats{VisibleNodes: 2, VisibleEdges: 1, GridCells: 1, RepulsionPairs: 2, KineticEnergy: stats.KineticEnergy}, stats)
		require.InDelta(t, -0.6, a.Velocity.X, 1e-12)
		require.InDelta(t, 0.6, b.Velocity.X, 1e-12)
		require.InDelta(t, -0.6*DefaultTimeStep, a.Coordinates.X, 1e-12)
		require.InDelta(t, 1+0.6*DefaultTimeStep, b.Coordinates.X, 1e-12)
		require.InDelta(t, 0.36, stats.KineticEnergy, 1e-12)
	})

	t.Run("springs are scaled by the time step", func(t *testing.T) {
		g, a, b := pair(r3.Vec{}, r3.Vec{X: 100})
		NewEngine(g, DefaultConfig()).Step(mockVisibility{rendered: 2})

		want := DefaultSpringStiffness * 99 * DefaultTimeStep
		require.InDelta(t, want, a.Velocity.X, 1e-9)
		require.InDelta(t, -want, b.Velocity.X, 1e-9)
	})

	t.Run("damping applies before forces", func(t *testing.T) {
		n := game.NewNode(r3.Vec{}, "---------", 0)
		n.Velocity = r3.Vec{X: 1}
		e := NewEngine(graph.New([]*game.Node{n}), DefaultConfig())
		e.Step(mockVisibility{rendered: 1})
		require.InDelta(t, DefaultDamping, n.Velocity.X, 1e-12)
		require.InDelta(t, DefaultDamping*DefaultTimeStep, n.Coordinates.X, 1e-12)
	})

	t.Run("config swaps between steps", func(t *testing.T) {
		n := game.NewNode(r3.Vec{}, "---------", 0)
		n.Velocity = r3.Vec{Z: 1}
		e := NewEngine(graph.New([]*game.Node{n}), DefaultConfig())
		cfg := DefaultConfig()
		cfg.Damping = 0.5
		e.SetConfig(cfg)
		require.Equal(t, 0.5, e.Config().Damping)
		e.Step(mockVisibility{rendered: 1})
		require.InDelta(t, 0.5, n.Velocity.Z, 1e-12)
	})

	t.Run("coincident nodes stay finite", func(t *testing.T) {
		g, a, b := pair(r3.Vec{X: 1}, r3.Vec{X: 1})
		NewEngine(g, DefaultConfig()).Step(mockVisibility{rendered: 2})
		for _, n := range []*game.Node{a, b} {
			require.False(t, math.IsNaN(n.Coordinates.X) || math.IsNaN(n.Velocity.X))
			require.Equal(t, r3.Vec{X: 1}, n.Coordinates)
		}
	})

	t.Run("hidden nodes do not move", func(t *testing.T) {
		g, a, b := pair(r3.Vec{}, r3.Vec{X: 1})
		NewEngine(g, DefaultConfig()).Step(mockVisibility{rendered: 1})
		require.Equal(t, r3.Vec{X: 1}, b.Coordinates)
		require.Equal(t, r3.Vec{}, b.Velocity)
		require.Equal(t, r3.Vec{}, a.Velocity, "A lone visible node feels no force")
	})

	t.Run("isolated selection is the visible set", func(t *testing.T) {
		g, a, b := pair(r3.Vec{}, r3.Vec{X: 1})
		stats := NewEngine(g, DefaultConfig()).Step(mockVisibility{rendered: 2, isolate: true, selected: []*game.Node{b}})
		require.Equal(t, 1, stats.VisibleNodes)
		require.Equal(t, 0, stats.VisibleEdges)
		require.Equal(t, r3.Vec{}, a.Velocity)
	})
}

func TestStepFullGraph(t *testing.T) {
	g := graph.New(game.GetStates(game.WithSeed(3)))
	e := NewEngine(g, DefaultConfig())
	state := mockVisibility{rendered: 6000}

	var stats StepStats
	for range 30 {
		stats = e.Step(state)
	}

	require.Equal(t, g.Len(), stats.VisibleNodes)
	require.Equal(t, len(g.NeighborPairs(g.Vertices())), stats.VisibleEdges)
	require.Positive(t, stats.GridCells)

	var momentum r3.Vec
	for _, v := range g.Vertices() {
		for _, x := range []float64{v.Coordinates.X, v.Coordinates.Y, v.Coordinates.Z} {
			require.False(t, math.IsNaN(x) || math.IsInf(x, 0), "%s should stay finite", v.ID)
		}
		momentum = r3.Add(momentum, v.Velocity)
	}
	require.InDelta(t, 0, r3.Norm(momentum), 1e-3, "Pairwise forces should conserve momentum")
}
