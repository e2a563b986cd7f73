package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"tictac/physics"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("recording a tick", func(t *testing.T) {
		c := NewCollector()
		before := counterValue(t, Ticks)

		c.Start(3)
		stats := physics.StepStats{VisibleNodes: 10, VisibleEdges: 9, GridCells: 2, RepulsionPairs: 40, KineticEnergy: 1.5}
		m := c.Complete(false, stats)

		require.Equal(t, 3, m.Tick)
		require.False(t, m.Paused)
		require.Equal(t, stats, m.StepStats)
		require.GreaterOrEqual(t, m.Duration, time.Duration(0))
		require.Equal(t, before+1, counterValue(t, Ticks))
		require.Equal(t, 10.0, gaugeValue(t, VisibleNodes))
		require.Equal(t, 9.0, gaugeValue(t, VisibleEdges))
		require.Equal(t, 1.5, gaugeValue(t, KineticEnergy))
	})

	t.Run("evaluation progress", func(t *testing.T) {
		c := NewCollector()
		c.Progress(1, 4)
		require.Equal(t, 0.25, gaugeValue(t, EvaluationProgress))
		c.Progress(0, 0)
		require.Equal(t, 0.25, gaugeValue(t, EvaluationProgress), "An empty pass should not divide by zero")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		before := counterValue(t, Ticks)
		c := NewDummyCollector()
		c.Start(1)
		require.Equal(t, StepMetric{}, c.Complete(true, physics.StepStats{VisibleNodes: 5}))
		require.Equal(t, before, counterValue(t, Ticks))
	})
}

func TestWriter(t *testing.T) {
	out := t.TempDir()
	w, err := NewWriter(out)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, w.ID().String()), w.Dir())
	require.DirExists(t, w.Dir())

	t.Run("step records", func(t *testing.T) {
		records := []StepMetric{
			{Tick: 0, Duration: time.Millisecond, StepStats: physics.StepStats{VisibleNodes: 765, VisibleEdges: 2000, GridCells: 30, RepulsionPairs: 9000, KineticEnergy: 0.25}},
			{Tick: 1, Paused: true, StepStats: physics.StepStats{VisibleNodes: 765}},
		}
		require.NoError(t, w.WriteStepRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "steps.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"tick", "duration", "paused", "visible_nodes", "visible_edges", "grid_cells", "repulsion_pairs", "kinetic_energy"}, rows[0])
		require.Equal(t, []string{"0", "1ms", "false", "765", "2000", "30", "9000", "0.25"}, rows[1])
		require.Equal(t, "true", rows[2][2])
	})

	t.Run("run record", func(t *testing.T) {
		record := RunRecord{Seed: 9, Nodes: 765, Edges: 2000, Ticks: 2, Evaluation: EvaluationMetric{Nodes: 765, Batches: 8, Duration: time.Second}}
		require.NoError(t, w.WriteRunRecord(record))

		rows := readCSV(t, filepath.Join(w.Dir(), "run.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{w.ID().String(), "9", "765", "2000", "2", "8", "1s"}, rows[1])
	})

	t.Run("distinct runs get distinct directories", func(t *testing.T) {
		other, err := NewWriter(out)
		require.NoError(t, err)
		require.NotEqual(t, w.Dir(), other.Dir())
	})
}

func TestWriteThroughputRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []ThroughputRecord{{RenderedCount: 100, Ticks: 10, Duration: 20 * time.Millisecond, MeanTick: 2 * time.Millisecond}}
	require.NoError(t, w.WriteThroughputRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "throughput.csv"))
	require.Equal(t, [][]string{
		{"rendered_count", "ticks", "duration", "mean_tick"},
		{"100", "10", "20ms", "2ms"},
	}, rows)
}
