package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tictac/config"
	"tictac/engine"
	"tictac/experiments/metrics"
	"tictac/game"
	"tictac/graph"
	"tictac/searcher"
	"tictac/viz"
)

// Layout is a built and evaluated graph together with the loop that lays it out.
type Layout struct {
	Seed       uint64
	Graph      *graph.Graph
	Engine     *engine.LocalEngine
	State      viz.State
	Evaluation metrics.EvaluationMetric
}

// Prepare builds the state graph, runs the evaluation pass and sets up the
// layout loop and the initial visualization state from cfg.
func Prepare(cfg *config.Config, collector metrics.Collector) (*Layout, error) {
	mode, err := viz.ParseColoringMode(cfg.View.ColoringMode)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	start := time.Now()
	g := graph.New(game.GetStates(game.WithSeed(seed)))
	log.Info().Msgf("built graph with %d states in %s (seed %d)", g.Len(), time.Since(start), seed)

	nextReport := 0
	stats := searcher.Precompute(g,
		searcher.WithBatchSize(cfg.Evaluation.BatchSize),
		searcher.WithProgress(func(done, total int) {
			collector.Progress(done, total)
			if done >= nextReport {
				log.Debug().Msgf("evaluated %d of %d states", done, total)
				nextReport += max(total/10, 1)
			}
		}),
	)
	log.Info().Msgf("evaluated %d states in %d batches in %s", stats.Nodes, stats.Batches, stats.Duration)

	return &Layout{
		Seed:   seed,
		Graph:  g,
		Engine: engine.NewLocalEngine(g, cfg.Physics, engine.WithCollector(collector)),
		State:  viz.NewState(cfg.View.RenderedCount).WithColoringMode(mode),
		Evaluation: metrics.EvaluationMetric{
			Nodes:    stats.Nodes,
			Batches:  stats.Batches,
			Duration: stats.Duration,
		},
	}, nil
}

// Run advances the layout ticks times, or until ctx is done, and returns the
// last frame.
func (l *Layout) Run(ctx context.Context, ticks int) viz.Frame {
	log.Info().Msgf("starting layout run of %d ticks with %d visible states...", ticks, len(l.Graph.VisibleVertices(l.State)))

	var frame viz.Frame
	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			log.Info().Msgf("layout run interrupted after %d ticks", l.Engine.Ticks())
			return frame
		}
		frame = l.Engine.Tick(l.State)
	}

	log.Info().Msgf("completed layout run of %d ticks", l.Engine.Ticks())
	return frame
}

// WriteRecords stores the run summary and per-tick metrics under outDir and
// returns the run directory.
func (l *Layout) WriteRecords(outDir string) (string, error) {
	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to create run writer: %w", err)
	}

	err = writer.WriteRunRecord(metrics.RunRecord{
		Seed:       l.Seed,
		Nodes:      l.Graph.Len(),
		Edges:      len(l.Graph.NeighborPairs(l.Graph.Vertices())),
		Ticks:      l.Engine.Ticks(),
		Evaluation: l.Evaluation,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store run record: %w", err)
	}
	log.Info().Msg("stored run record")

	err = writer.WriteStepRecords(l.Engine.Records())
	if err != nil {
		return "", fmt.Errorf("failed to store step records: %w", err)
	}
	log.Info().Msg("stored step records")

	return writer.Dir(), nil
}
