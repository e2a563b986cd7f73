package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tictac/config"
	"tictac/experiments/metrics"
)

// ThroughputCounts are the rendered counts swept by RunThroughputExperiment.
var ThroughputCounts = []int{50, 100, 250, 500, 765}

// RunThroughputExperiment measures the mean tick duration for each rendered
// count on a freshly built graph, and stores the results under outDir.
func RunThroughputExperiment(ctx context.Context, cfg *config.Config, outDir string, counts []int) (string, error) {
	log.Info().Msgf("starting throughput experiment over %d rendered counts...", len(counts))

	records := []metrics.ThroughputRecord{}
	for i, count := range counts {
		run := *cfg
		run.View.RenderedCount = count

		layout, err := Prepare(&run, metrics.NewDummyCollector())
		if err != nil {
			return "", err
		}

		start := time.Now()
		layout.Run(ctx, cfg.Run.Ticks)
		elapsed := time.Since(start)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		record := metrics.ThroughputRecord{
			RenderedCount: count,
			Ticks:         layout.Engine.Ticks(),
			Duration:      elapsed,
		}
		if record.Ticks > 0 {
			record.MeanTick = elapsed / time.Duration(record.Ticks)
		}
		records = append(records, record)
		log.Info().Msgf("completed count %d of %d: %d visible states at %s per tick", i+1, len(counts), count, record.MeanTick)
	}

	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteThroughputRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to store throughput records: %w", err)
	}
	log.Info().Msg("completed throughput experiment")
	return writer.Dir(), nil
}
