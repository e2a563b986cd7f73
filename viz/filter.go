package viz

import (
	"strings"

	"github.com/pkg/errors"

	"tictac/game"
	"tictac/graph"
	"tictac/utils"
)

// ErrInvalidFilter is returned for filters rejected at the boundary.
var ErrInvalidFilter = errors.New("invalid filter")

// PatternAlphabet lists the marks allowed in a filter pattern.
const PatternAlphabet = "*XO-!xo"

// Filter selects nodes by board pattern and/or depth range.
type Filter struct {
	UsePattern bool   `yaml:"use_pattern" json:"usePattern"`
	UseDepth   bool   `yaml:"use_depth" json:"useDepth"`
	Pattern    string `yaml:"pattern" json:"pattern"`
	MinDepth   int    `yaml:"min_depth" json:"minDepth"`
	MaxDepth   int    `yaml:"max_depth" json:"maxDepth"`
}

// DefaultFilter matches everything.
func DefaultFilter() Filter {
	return Filter{
		Pattern:  strings.Repeat(string(graph.Any), game.Cells),
		MinDepth: 0,
		MaxDepth: game.Cells,
	}
}

// Validate checks the parts of f that are in use.
func (f Filter) Validate() error {
	if f.UsePattern {
		if len(f.Pattern) != game.Cells {
			return errors.Wrapf(ErrInvalidFilter, "pattern %q: expected %d marks, got %d", f.Pattern, game.Cells, len(f.Pattern))
		}
		for i, c := range f.Pattern {
			if !strings.ContainsRune(PatternAlphabet, c) {
				return errors.Wrapf(ErrInvalidFilter, "pattern %q: invalid mark %q at %d", f.Pattern, c, i)
			}
		}
	}
	if f.UseDepth {
		if f.MinDepth < 0 || f.MaxDepth > game.Cells {
			return errors.Wrapf(ErrInvalidFilter, "depth range [%d, %d] outside [0, %d]", f.MinDepth, f.MaxDepth, game.Cells)
		}
		if f.MinDepth > f.MaxDepth {
			return errors.Wrapf(ErrInvalidFilter, "depth range [%d, %d] is empty", f.MinDepth, f.MaxDepth)
		}
	}
	return nil
}

// Apply returns the nodes of g passing f, in collection order. A pattern
// matches a board when any of its symmetric images does.
func (f Filter) Apply(g *graph.Graph) ([]*game.Node, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	nodes := g.Vertices()
	if f.UsePattern {
		nodes = g.NodesByAnyPattern(game.Symmetries(f.Pattern))
	}
	if f.UseDepth {
		nodes = utils.Filter(nodes, func(n *game.Node) bool {
			return n.Depth >= f.MinDepth && n.Depth <= f.MaxDepth
		})
	}

	filtered := make([]*game.Node, len(nodes))
	copy(filtered, nodes)
	return filtered, nil
}

// ApplyTo selects the nodes passing f in s.
func (f Filter) ApplyTo(g *graph.Graph, s State) (State, error) {
	nodes, err := f.Apply(g)
	if err != nil {
		return s, err
	}
	return s.WithSelection(nodes), nil
}
