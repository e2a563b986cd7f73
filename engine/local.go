package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"tictac/experiments/metrics"
	"tictac/graph"
	"tictac/physics"
	"tictac/viz"
)

type Option func(l *LocalEngine)

// WithCollector records a StepMetric per tick.
func WithCollector(collector metrics.Collector) Option {
	return func(l *LocalEngine) {
		if collector != nil {
			l.collector = collector
		}
	}
}

// LocalEngine runs physics and frame assembly in the caller's goroutine.
// Only SetConfig may be called from other goroutines.
type LocalEngine struct {
	graph     *graph.Graph
	physics   *physics.Engine
	config    atomic.Pointer[physics.Config]
	collector metrics.Collector
	tick      int
	records   []metrics.StepMetric
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(g *graph.Graph, config physics.Config, options ...Option) *LocalEngine {
	e := &LocalEngine{
		graph:     g,
		physics:   physics.NewEngine(g, config),
		collector: metrics.NewDummyCollector(),
	}
	e.config.Store(&config)
	for _, option := range options {
		option(e)
	}
	return e
}

// SetConfig publishes new physics parameters, picked up at the next tick.
func (e *LocalEngine) SetConfig(config physics.Config) {
	e.config.Store(&config)
}

func (e *LocalEngine) Tick(state viz.State) viz.Frame {
	if cfg := *e.config.Load(); cfg != e.physics.Config() {
		log.Info().Msgf("tick %d: applying physics config %+v", e.tick, cfg)
		e.physics.SetConfig(cfg)
	}

	e.collector.Start(e.tick)
	var stats physics.StepStats
	if !state.Paused() {
		stats = e.physics.Step(state)
	}
	frame := viz.BuildFrame(e.graph, state)
	if state.Paused() {
		stats = physics.StepStats{VisibleNodes: len(frame.Nodes), VisibleEdges: len(frame.Edges)}
	}

	e.records = append(e.records, e.collector.Complete(state.Paused(), stats))
	e.tick++
	return frame
}

// Ticks returns the number of frames produced so far.
func (e *LocalEngine) Ticks() int {
	return e.tick
}

// Records returns the collected per-tick metrics.
func (e *LocalEngine) Records() []metrics.StepMetric {
	return e.records
}
