package metrics

import (
	"time"

	"tictac/physics"
)

type StepMetric struct {
	Tick     int
	Duration time.Duration
	Paused   bool
	physics.StepStats
}

type EvaluationMetric struct {
	Nodes    int
	Batches  int
	Duration time.Duration
}

// Collector records one StepMetric per tick and the progress of the
// evaluation pass.
type Collector interface {
	Start(tick int)
	Complete(paused bool, stats physics.StepStats) StepMetric
	Progress(done, total int)
}

type collector struct {
	tick      int
	startTime time.Time
}

// NewCollector returns a collector that also feeds the Prometheus metrics.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(tick int) {
	m.tick = tick
	m.startTime = time.Now()
}

func (m *collector) Complete(paused bool, stats physics.StepStats) StepMetric {
	metric := StepMetric{
		Tick:      m.tick,
		Duration:  time.Since(m.startTime),
		Paused:    paused,
		StepStats: stats,
	}
	Ticks.Inc()
	if !paused {
		StepDuration.Observe(float64(metric.Duration.Microseconds()) / 1000)
	}
	VisibleNodes.Set(float64(stats.VisibleNodes))
	VisibleEdges.Set(float64(stats.VisibleEdges))
	KineticEnergy.Set(stats.KineticEnergy)
	return metric
}

func (m *collector) Progress(done, total int) {
	if total == 0 {
		return
	}
	EvaluationProgress.Set(float64(done) / float64(total))
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(tick int) {}
func (m *dummyCollector) Complete(paused bool, stats physics.StepStats) StepMetric {
	return StepMetric{}
}
func (m *dummyCollector) Progress(done, total int) {}
