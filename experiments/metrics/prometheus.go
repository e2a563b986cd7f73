package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Ticks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictac_layout_ticks_total",
		Help: "Total number of frames produced by the layout loop.",
	})

	StepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictac_physics_step_duration_ms",
		Help:    "Physics step plus frame assembly latency in milliseconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})

	VisibleNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictac_visible_nodes",
		Help: "Nodes visible in the last frame.",
	})

	VisibleEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictac_visible_edges",
		Help: "Edges between visible nodes in the last frame.",
	})

	KineticEnergy = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictac_layout_kinetic_energy",
		Help: "Kinetic energy of the visible nodes after the last step.",
	})

	EvaluationProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictac_evaluation_progress_ratio",
		Help: "Fraction of nodes evaluated by the startup pass (0–1).",
	})
)
