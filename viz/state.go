package viz

import (
	"fmt"

	"tictac/game"
	"tictac/graph"
	"tictac/utils"
)

// ColoringMode selects the scalar that drives node color.
type ColoringMode int

const (
	ColorByDepth ColoringMode = iota
	ColorByProbabilistic
	ColorByMinimax
)

func (m ColoringMode) String() string {
	switch m {
	case ColorByDepth:
		return "depth"
	case ColorByProbabilistic:
		return "probabilistic outcome"
	case ColorByMinimax:
		return "perfect-play outcome (minimax)"
	}
	return "unknown"
}

// ParseColoringMode accepts the short names used in config files.
func ParseColoringMode(name string) (ColoringMode, error) {
	switch name {
	case "depth":
		return ColorByDepth, nil
	case "probabilistic":
		return ColorByProbabilistic, nil
	case "minimax":
		return ColorByMinimax, nil
	}
	return ColorByDepth, fmt.Errorf("unknown coloring mode %q", name)
}

// State is an immutable snapshot of the visualization state. Transitions
// return a new snapshot and leave the receiver untouched, so every step of
// the frame loop sees exactly the state it was handed.
type State struct {
	renderedCount      int
	isolateSelected    bool
	inspectMode        bool
	paused             bool
	selectedPointIndex int
	selectedPoints     []*game.Node
	coloringMode       ColoringMode
}

var _ graph.Visibility = State{}

// NewState returns a snapshot rendering the first renderedCount nodes with
// nothing selected.
func NewState(renderedCount int) State {
	return State{
		renderedCount:      renderedCount,
		selectedPointIndex: -1,
	}
}

func (s State) RenderedCount() int         { return s.renderedCount }
func (s State) IsolateSelected() bool      { return s.isolateSelected }
func (s State) InspectMode() bool          { return s.inspectMode }
func (s State) Paused() bool               { return s.paused }
func (s State) SelectedPointIndex() int    { return s.selectedPointIndex }
func (s State) ColoringMode() ColoringMode { return s.coloringMode }

// SelectedPoints returns a copy of the selection.
func (s State) SelectedPoints() []*game.Node {
	if s.selectedPoints == nil {
		return nil
	}
	selected := make([]*game.Node, len(s.selectedPoints))
	copy(selected, s.selectedPoints)
	return selected
}

// IsSelected reports whether n is part of the selection.
func (s State) IsSelected(n *game.Node) bool {
	return utils.FindIndex(s.selectedPoints, n) >= 0
}

func (s State) ToggleIsolate() State {
	s.isolateSelected = !s.isolateSelected
	return s
}

func (s State) ToggleInspect() State {
	s.inspectMode = !s.inspectMode
	return s
}

func (s State) TogglePause() State {
	s.paused = !s.paused
	return s
}

func (s State) WithColoringMode(mode ColoringMode) State {
	if mode < ColorByDepth || mode > ColorByMinimax {
		return s
	}
	s.coloringMode = mode
	return s
}

func (s State) WithRenderedCount(count int) State {
	s.renderedCount = max(count, 0)
	return s
}

// WithSelection replaces the selection, e.g. with the result of a filter, and
// clears the focused point.
func (s State) WithSelection(nodes []*game.Node) State {
	s.selectedPoints = make([]*game.Node, len(nodes))
	copy(s.selectedPoints, nodes)
	s.selectedPointIndex = -1
	return s
}

// ClearSelection drops the selection and the focused point.
func (s State) ClearSelection() State {
	s.selectedPoints = nil
	s.selectedPointIndex = -1
	return s
}

// Select focuses the index-th node of g. Outside inspect mode the selection
// becomes the node and all of its ancestors. Out of range indices are ignored.
func (s State) Select(g *graph.Graph, index int) State {
	if index < 0 || index >= g.Len() {
		return s
	}
	s.selectedPointIndex = index
	if !s.inspectMode {
		s.selectedPoints = g.Ancestors(g.Vertices()[index])
	}
	return s
}

// SelectedNode returns the focused node of g, or nil.
func (s State) SelectedNode(g *graph.Graph) *game.Node {
	if s.selectedPointIndex < 0 || s.selectedPointIndex >= g.Len() {
		return nil
	}
	return g.Vertices()[s.selectedPointIndex]
}
