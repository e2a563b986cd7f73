package server

import (
	"github.com/pkg/errors"

	"tictac/graph"
	"tictac/viz"
)

// Command types accepted from clients.
const (
	TogglePause    = "togglePause"
	ToggleIsolate  = "toggleIsolate"
	ToggleInspect  = "toggleInspect"
	ColoringMode   = "coloringMode"
	Select         = "select"
	ClearSelection = "clearSelection"
	RenderedCount  = "renderedCount"
	ApplyFilter    = "filter"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one user interaction, decoded from JSON.
type Command struct {
	Type   string           `json:"type"`
	Mode   viz.ColoringMode `json:"mode,omitempty"`
	Index  int              `json:"index,omitempty"`
	Count  int              `json:"count,omitempty"`
	Filter *viz.Filter      `json:"filter,omitempty"`
}

// Apply returns the state after cmd. On error s is returned unchanged.
func Apply(g *graph.Graph, s viz.State, cmd Command) (viz.State, error) {
	switch cmd.Type {
	case TogglePause:
		return s.TogglePause(), nil
	case ToggleIsolate:
		return s.ToggleIsolate(), nil
	case ToggleInspect:
		return s.ToggleInspect(), nil
	case ColoringMode:
		if cmd.Mode < viz.ColorByDepth || cmd.Mode > viz.ColorByMinimax {
			return s, errors.Errorf("coloring mode %d out of range", cmd.Mode)
		}
		return s.WithColoringMode(cmd.Mode), nil
	case Select:
		if cmd.Index < 0 || cmd.Index >= g.Len() {
			return s, errors.Errorf("node index %d out of range [0, %d)", cmd.Index, g.Len())
		}
		return s.Select(g, cmd.Index), nil
	case ClearSelection:
		return s.ClearSelection(), nil
	case RenderedCount:
		if cmd.Count < 0 {
			return s, errors.Errorf("rendered count %d is negative", cmd.Count)
		}
		return s.WithRenderedCount(cmd.Count), nil
	case ApplyFilter:
		if cmd.Filter == nil {
			return s, errors.Wrap(viz.ErrInvalidFilter, "missing filter")
		}
		return cmd.Filter.ApplyTo(g, s)
	}
	return s, errors.Wrapf(ErrUnknownCommand, "%q", cmd.Type)
}
