package game

import (
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// Table exclusively owns every node reached by a build, keyed by canonical id.
// All other references to nodes (neighbors, selections, views) are backlinks.
type Table map[string]*Node

type BuildOption func(b *builder)

type builder struct {
	rnd    *rand.Rand
	origin r3.Vec
}

// WithRand draws the placement jitter from rnd.
func WithRand(rnd *rand.Rand) BuildOption {
	return func(b *builder) {
		if rnd != nil {
			b.rnd = rnd
		}
	}
}

// WithSeed makes the placement jitter reproducible.
func WithSeed(seed uint64) BuildOption {
	return func(b *builder) {
		b.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin places the root near origin instead of near zero.
func WithOrigin(origin r3.Vec) BuildOption {
	return func(b *builder) {
		b.origin = origin
	}
}

// item is a pending visit: a board as reached by play and the node it was
// reached from (nil for the root)
type item struct {
	board  Board
	parent *Node
}

// Build explores every position reachable from the empty board with X to move
// and returns the root together with the table owning all nodes.
//
// Positions are merged by canonical id, so the result is a layered graph rather
// than a tree. A position is a leaf when the board is full or decided. Moves are
// generated from the board as reached, not from its canonical image.
func Build(options ...BuildOption) (*Node, Table) {
	b := &builder{}
	for _, option := range options {
		option(b)
	}
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	table := make(Table)
	var root *Node

	stack := arraystack.New()
	stack.Push(item{board: Empty})
	for !stack.Empty() {
		value, _ := stack.Pop()
		it := value.(item)

		id := string(Canonicalize(it.board))
		if node, ok := table[id]; ok {
			Link(it.parent, node)
			continue
		}

		node := NewNode(b.place(it.parent), id, it.board.Depth())
		table[id] = node
		if it.parent == nil {
			root = node
		} else {
			Link(it.parent, node)
		}

		if it.board.IsTerminal() {
			continue
		}
		// Push in reverse so moves are explored in ascending cell order
		moves := it.board.LegalMoves()
		for i := len(moves) - 1; i >= 0; i-- {
			stack.Push(item{board: it.board.Play(moves[i]), parent: node})
		}
	}

	return root, table
}

// BuildGraph builds the game graph and returns its root.
func BuildGraph(options ...BuildOption) *Node {
	root, _ := Build(options...)
	return root
}

// place returns the parent's position plus a uniform offset in [0,1) per axis
func (b *builder) place(parent *Node) r3.Vec {
	base := b.origin
	if parent != nil {
		base = parent.Coordinates
	}
	jitter := r3.Vec{X: b.rnd.Float64(), Y: b.rnd.Float64(), Z: b.rnd.Float64()}
	return r3.Add(base, jitter)
}

// Flatten collects every node reachable from root exactly once, depth first,
// in discovery order.
func Flatten(root *Node) []*Node {
	if root == nil {
		return nil
	}

	visited := make(map[string]struct{})
	nodes := []*Node{}

	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		value, _ := stack.Pop()
		node := value.(*Node)
		if _, ok := visited[node.ID]; ok {
			continue
		}
		visited[node.ID] = struct{}{}
		nodes = append(nodes, node)

		for i := len(node.Neighbors) - 1; i >= 0; i-- {
			if _, ok := visited[node.Neighbors[i].ID]; !ok {
				stack.Push(node.Neighbors[i])
			}
		}
	}
	return nodes
}

// GetStates builds the game graph and returns all of its nodes.
func GetStates(options ...BuildOption) []*Node {
	return Flatten(BuildGraph(options...))
}
