package searcher

import (
	"runtime"
	"sort"
	"time"

	"tictac/game"
	"tictac/graph"
)

type Option func(p *precompute)

// Stats summarizes a bulk evaluation pass.
type Stats struct {
	Nodes    int
	Batches  int
	Duration time.Duration
}

type precompute struct {
	batchSize int
	progress  func(done, total int)
	minimax   *Minimax
}

// WithBatchSize sets how many nodes are evaluated between yields.
func WithBatchSize(size int) Option {
	return func(p *precompute) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// WithProgress reports the number of evaluated nodes after every batch.
func WithProgress(progress func(done, total int)) Option {
	return func(p *precompute) {
		if progress != nil {
			p.progress = progress
		}
	}
}

// WithMinimax reuses the memo table of minimax.
func WithMinimax(minimax *Minimax) Option {
	return func(p *precompute) {
		if minimax != nil {
			p.minimax = minimax
		}
	}
}

// Precompute writes the evaluation pair of every node of g. Nodes are visited
// by decreasing depth so that minimax finds children already memoized, in
// batches separated by a yield to the scheduler. It always runs to completion.
func Precompute(g *graph.Graph, options ...Option) Stats {
	p := &precompute{ // Default values
		batchSize: 1,
		progress:  func(done, total int) {},
		minimax:   NewMinimax(),
	}
	for _, option := range options {
		option(p)
	}

	start := time.Now()
	order := make([]*game.Node, g.Len())
	copy(order, g.Vertices())
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Depth > order[j].Depth
	})

	stats := Stats{Nodes: len(order)}
	for index := 0; index < len(order); {
		end := min(index+p.batchSize, len(order))
		for ; index < end; index++ {
			node := order[index]
			node.Evaluation = game.Evaluation{
				Probabilistic: Probabilistic(g, node),
				Minimax:       p.minimax.Value(node),
				Set:           true,
			}
		}
		stats.Batches++
		p.progress(index, len(order))
		runtime.Gosched()
	}
	stats.Duration = time.Since(start)
	return stats
}
