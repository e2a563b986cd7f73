package viz

import (
	"tictac/game"
	"tictac/graph"
)

// FrameNode is a visible node as handed to the renderer.
type FrameNode struct {
	ID            string     `json:"id"`
	Depth         int        `json:"depth"`
	Position      [3]float64 `json:"position"`
	Probabilistic float64    `json:"probabilistic"`
	Minimax       float64    `json:"minimax"`
	Evaluated     bool       `json:"evaluated"`
	ColorParam    float64    `json:"colorParam"` // 0 maps to red, 1 to blue
	Alpha         float64    `json:"alpha"`
	Selected      bool       `json:"selected"`
	Focused       bool       `json:"focused"`
}

// FrameEdge is a visible edge between Nodes[I] and Nodes[J] of the frame.
type FrameEdge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	I        int    `json:"i"`
	J        int    `json:"j"`
	Selected bool   `json:"selected"`
}

// Frame is everything the renderer needs to draw one tick.
type Frame struct {
	Nodes         []FrameNode `json:"nodes"`
	Edges         []FrameEdge `json:"edges"`
	SelectedNodes int         `json:"selectedNodes"`
	SelectedEdges int         `json:"selectedEdges"`
	ColorMode     string      `json:"colorMode"`
	InspectMode   bool        `json:"inspectMode"`
	Paused        bool        `json:"paused"`
}

// BuildFrame assembles the visible nodes and edges of g under s.
func BuildFrame(g *graph.Graph, s State) Frame {
	visible := g.VisibleVertices(s)
	view := g.View(visible)
	selected := s.SelectedPoints()
	focused := s.SelectedNode(g)

	minDepth, maxDepth := depthRange(visible)
	mode := s.ColoringMode()

	frame := Frame{
		Nodes:         make([]FrameNode, len(visible)),
		SelectedNodes: len(selected),
		SelectedEdges: len(g.NeighborPairs(selected)),
		ColorMode:     mode.String(),
		InspectMode:   s.InspectMode(),
		Paused:        s.Paused(),
	}

	for i, v := range visible {
		t := ColorParam(mode, v, minDepth, maxDepth)
		frame.Nodes[i] = FrameNode{
			ID:            v.ID,
			Depth:         v.Depth,
			Position:      [3]float64{v.Coordinates.X, v.Coordinates.Y, v.Coordinates.Z},
			Probabilistic: v.Evaluation.Probabilistic,
			Minimax:       v.Evaluation.Minimax,
			Evaluated:     v.Evaluation.Set,
			ColorParam:    t,
			Alpha:         Alpha(mode, t),
			Selected:      s.IsSelected(v),
			Focused:       v == focused,
		}
	}

	pairs := view.Pairs()
	frame.Edges = make([]FrameEdge, len(pairs))
	for k, p := range pairs {
		frame.Edges[k] = FrameEdge{
			Source:   p.A.ID,
			Target:   p.B.ID,
			I:        p.I,
			J:        p.J,
			Selected: frame.Nodes[p.I].Selected && frame.Nodes[p.J].Selected,
		}
	}
	return frame
}

// ColorParam maps a node to [0, 1] under mode: depth normalized over the
// visible range, or an evaluation where X wins map to 0 and O wins to 1.
func ColorParam(mode ColoringMode, n *game.Node, minDepth, maxDepth int) float64 {
	switch mode {
	case ColorByProbabilistic:
		return (1 - n.Evaluation.Probabilistic) * 0.5
	case ColorByMinimax:
		return (1 - n.Evaluation.Minimax) * 0.5
	}
	span := maxDepth - minDepth
	if span == 0 {
		span = 1
	}
	return float64(n.Depth-minDepth) / float64(span)
}

// Alpha fades shallow nodes when coloring by depth, and undecided nodes when
// coloring by evaluation.
func Alpha(mode ColoringMode, t float64) float64 {
	if mode == ColorByDepth {
		return 0.3*t + 1 - t
	}
	return 2.8*(t-0.5)*(t-0.5) + 0.3
}

func depthRange(nodes []*game.Node) (int, int) {
	if len(nodes) == 0 {
		return 0, 0
	}
	lo, hi := nodes[0].Depth, nodes[0].Depth
	for _, n := range nodes[1:] {
		lo = min(lo, n.Depth)
		hi = max(hi, n.Depth)
	}
	return lo, hi
}
