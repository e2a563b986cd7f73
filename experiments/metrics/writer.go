package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RunRecord summarizes one layout run.
type RunRecord struct {
	Seed       uint64
	Nodes      int
	Edges      int
	Ticks      int
	Evaluation EvaluationMetric
}

type Writer struct {
	id      uuid.UUID
	baseDir string
}

// NewWriter creates a run directory named by a fresh UUID under outDir.
func NewWriter(outDir string) (*Writer, error) {
	id := uuid.New()
	baseDir := filepath.Join(outDir, id.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		id:      id,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) ID() uuid.UUID {
	return w.id
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunRecord(record RunRecord) error {
	path := filepath.Join(w.baseDir, "run.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run record file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"run", "seed", "nodes", "edges", "ticks", "evaluation_batches", "evaluation_duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run record header: %w", err)
	}

	row := []string{
		w.id.String(),
		strconv.FormatUint(record.Seed, 10),
		strconv.Itoa(record.Nodes),
		strconv.Itoa(record.Edges),
		strconv.Itoa(record.Ticks),
		strconv.Itoa(record.Evaluation.Batches),
		record.Evaluation.Duration.String(),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write run record row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteStepRecords(records []StepMetric) error {
	path := filepath.Join(w.baseDir, "steps.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create step records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"tick", "duration", "paused", "visible_nodes", "visible_edges", "grid_cells", "repulsion_pairs", "kinetic_energy"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write step records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Tick),
			record.Duration.String(),
			strconv.FormatBool(record.Paused),
			strconv.Itoa(record.VisibleNodes),
			strconv.Itoa(record.VisibleEdges),
			strconv.Itoa(record.GridCells),
			strconv.Itoa(record.RepulsionPairs),
			strconv.FormatFloat(record.KineticEnergy, 'g', -1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write step record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type ThroughputRecord struct {
	RenderedCount int
	Ticks         int
	Duration      time.Duration
	MeanTick      time.Duration
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	path := filepath.Join(w.baseDir, "throughput.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create throughput records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"rendered_count", "ticks", "duration", "mean_tick"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write throughput records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.RenderedCount),
			strconv.Itoa(record.Ticks),
			record.Duration.String(),
			record.MeanTick.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write throughput record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
